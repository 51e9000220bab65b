package pkg

import "errors"

var ErrPathNotSet = errors.New("path not set")

var (
	errNotADirectory = errors.New("is not a directory")
	errIsADirectory  = errors.New("is a directory")
)
