package misc

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/2beens/fitbitdash/internal/telemetry/tracing"
	"github.com/2beens/fitbitdash/pkg"

	"github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=misc_test

const (
	StatusOK          = "ok"
	StatusUnavailable = "unavailable"
	StatusDisabled    = "disabled"
)

type redisPinger interface {
	Ping(ctx context.Context) *redis.StatusCmd
}

type dbPinger interface {
	Ping(ctx context.Context) error
}

type HealthResponse struct {
	Status   string `json:"status"`
	Postgres string `json:"postgres"`
	Redis    string `json:"redis"`
	Weather  string `json:"weather"`
	Version  string `json:"version,omitempty"`
}

type Handler struct {
	versionInfo   string
	db            dbPinger
	redis         redisPinger
	weatherLoaded bool
	pingTimeout   time.Duration
}

func NewHandler(versionInfo string, db dbPinger, redis redisPinger, weatherLoaded bool) *Handler {
	return &Handler{
		versionInfo:   versionInfo,
		db:            db,
		redis:         redis,
		weatherLoaded: weatherLoaded,
		pingTimeout:   2 * time.Second,
	}
}

func (handler *Handler) SetupRoutes(mainRouter *mux.Router) {
	mainRouter.HandleFunc("/", handler.handleRoot).Methods("GET", "OPTIONS").Name("root")
	mainRouter.HandleFunc("/version", handler.handleGetVersionInfo).Methods("GET").Name("version")
	mainRouter.HandleFunc("/health", handler.handleHealth).Methods("GET").Name("health")
}

func (handler *Handler) handleRoot(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteTextResponseOK(w, "I'm OK, thanks ;)")
}

func (handler *Handler) handleGetVersionInfo(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteTextResponseOK(w, handler.versionInfo)
}

// handleHealth pings the derived store and redis. Missing weather only disables the weather tab,
// so it is reported but does not fail the check.
func (handler *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "miscHandler.health")
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, handler.pingTimeout)
	defer cancel()

	resp := HealthResponse{
		Status:   StatusOK,
		Postgres: StatusOK,
		Redis:    StatusDisabled,
		Weather:  StatusDisabled,
		Version:  handler.versionInfo,
	}
	if handler.weatherLoaded {
		resp.Weather = StatusOK
	}

	if err := handler.db.Ping(ctx); err != nil {
		log.Errorf("health: postgres ping: %s", err)
		resp.Postgres = StatusUnavailable
		resp.Status = StatusUnavailable
	}
	if handler.redis != nil {
		resp.Redis = StatusOK
		if err := handler.redis.Ping(ctx).Err(); err != nil {
			log.Errorf("health: redis ping: %s", err)
			resp.Redis = StatusUnavailable
			resp.Status = StatusUnavailable
		}
	}
	span.SetAttributes(attribute.String("health.status", resp.Status))

	respJson, err := json.Marshal(resp)
	if err != nil {
		log.Errorf("marshal health response: %s", err)
		http.Error(w, "", http.StatusInternalServerError)
		return
	}

	statusCode := http.StatusOK
	if resp.Status != StatusOK {
		statusCode = http.StatusServiceUnavailable
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, statusCode)
}
