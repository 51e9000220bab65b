package fitbit

import (
	"github.com/brianvoe/gofakeit/v6"
)

type Gender string

const (
	GenderFemale Gender = "F"
	GenderMale   Gender = "M"
)

// share of female Fitbit users
const femaleShare = 0.4466

type ageBracket struct {
	share    float64
	min, max int
}

// Fitbit user age distribution
var ageBrackets = []ageBracket{
	{share: 0.1579, min: 18, max: 24},
	{share: 0.2593, min: 25, max: 34},
	{share: 0.1940, min: 35, max: 44},
	{share: 0.1608, min: 45, max: 54},
	{share: 0.1294, min: 55, max: 64},
	{share: 0.0987, min: 65, max: 78},
}

type Person struct {
	Age    int    `json:"age"`
	Gender Gender `json:"gender"`
}

// Demographics assigns a synthetic age and gender to each user.
// The assignment is a pure function of (seed, user ID), so every call,
// run and goroutine sees the same person for the same user.
type Demographics struct {
	seed int64
}

func NewDemographics(seed int64) *Demographics {
	return &Demographics{seed: seed}
}

func (d *Demographics) For(userID int64) Person {
	faker := gofakeit.New(d.userSeed(userID))

	bracket := ageBrackets[len(ageBrackets)-1]
	draw := faker.Float64()
	cumulative := 0.0
	for _, b := range ageBrackets {
		cumulative += b.share
		if draw <= cumulative {
			bracket = b
			break
		}
	}

	gender := GenderMale
	if faker.Float64() < femaleShare {
		gender = GenderFemale
	}

	return Person{
		Age:    faker.Number(bracket.min, bracket.max),
		Gender: gender,
	}
}

// userSeed mixes the user ID into the seed. Never returns 0, which would make gofakeit pick a random seed.
func (d *Demographics) userSeed(userID int64) int64 {
	s := d.seed*1_000_003 ^ userID
	if s == 0 {
		return 1
	}
	return s
}
