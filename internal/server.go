package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/extra/redisotel/v8"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/2beens/fitbitdash/internal/analytics"
	"github.com/2beens/fitbitdash/internal/config"
	"github.com/2beens/fitbitdash/internal/dashboard"
	"github.com/2beens/fitbitdash/internal/db"
	"github.com/2beens/fitbitdash/internal/fitbit"
	"github.com/2beens/fitbitdash/internal/middleware"
	"github.com/2beens/fitbitdash/internal/misc"
	"github.com/2beens/fitbitdash/internal/telemetry/metrics"
	metricsmiddleware "github.com/2beens/fitbitdash/internal/telemetry/metrics/middleware"
	"github.com/2beens/fitbitdash/internal/telemetry/tracing"
	"github.com/2beens/fitbitdash/internal/weather"
)

const rateLimitRouterName = "dashboard"

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config   *config.Config
	dbPool   *pgxpool.Pool
	analyzer *analytics.Analyzer
	coverage dashboard.Coverage
	// reported by the health check, the dataset is required at start
	weatherLoaded bool

	redisClient *redis.Client

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	VersionInfo             string
	DBPassword              string
	RedisPassword           string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	cfg := params.Config

	coverageStart, coverageEnd, err := cfg.Coverage()
	if err != nil {
		return nil, fmt.Errorf("coverage: %w", err)
	}
	sleepBoundary, err := analytics.ParseDayBoundary(cfg.SleepDayBoundary)
	if err != nil {
		return nil, fmt.Errorf("sleep day boundary: %w", err)
	}

	weatherDataset, err := weather.LoadFile(cfg.WeatherCsvPath)
	if err != nil {
		return nil, fmt.Errorf("load weather dataset: %w", err)
	}
	weatherFrom, weatherTo := weatherDataset.Range()
	log.Debugf("weather dataset loaded: %d hours [%s - %s]", weatherDataset.Len(), weatherFrom, weatherTo)

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "fitbit-dashboard")
	if err != nil {
		return nil, err
	}

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         cfg.PostgresHost,
		DBPort:         cfg.PostgresPort,
		DBName:         cfg.PostgresDBName,
		DBUser:         cfg.PostgresUser,
		DBPassword:     params.DBPassword,
		TracingEnabled: params.HoneycombTracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": cfg.PostgresDBName},
	)
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("fitbitdash", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	var rdb *redis.Client
	if cfg.RedisHost != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
			Password: params.RedisPassword,
			DB:       0, // use default DB
		})
		if params.HoneycombTracingEnabled {
			rdb.AddHook(redisotel.NewTracingHook())
		}

		rdbStatus := rdb.Ping(ctx)
		if err := rdbStatus.Err(); err != nil {
			log.Errorf("--> failed to ping redis: %s", err)
		} else {
			log.Debugf("redis ping: %s", rdbStatus.Val())
		}
	} else {
		log.Warnln("redis host not set, rate limiting disabled")
	}

	return &Server{
		versionInfo:   params.VersionInfo,
		config:        cfg,
		dbPool:        dbPool,
		analyzer:      newAnalyzer(fitbit.NewRepo(dbPool), weatherDataset, sleepBoundary, metricsManager),
		coverage:      dashboard.Coverage{Start: coverageStart, End: coverageEnd},
		weatherLoaded: weatherDataset != nil,
		redisClient:   rdb,

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

// newAnalyzer keeps a missing dataset an untyped nil lookup, so the weather views report ErrNoWeather.
func newAnalyzer(
	repo *fitbit.Repo,
	weatherDataset *weather.Dataset,
	sleepBoundary analytics.DayBoundary,
	metricsManager *metrics.Manager,
) *analytics.Analyzer {
	if weatherDataset == nil {
		return analytics.NewAnalyzer(repo, nil, sleepBoundary, metricsManager)
	}
	return analytics.NewAnalyzer(repo, weatherDataset, sleepBoundary, metricsManager)
}

func (s *Server) routerSetup() (*mux.Router, error) {
	if s.analyzer == nil {
		return nil, errors.New("analyzer not set")
	}

	r := mux.NewRouter()
	r.Use(otelmux.Middleware("dashboard-router"))

	var miscHandler *misc.Handler
	if s.redisClient != nil {
		miscHandler = misc.NewHandler(s.versionInfo, s.dbPool, s.redisClient, s.weatherLoaded)
	} else {
		miscHandler = misc.NewHandler(s.versionInfo, s.dbPool, nil, s.weatherLoaded)
	}
	miscHandler.SetupRoutes(r)

	dashboardHandler := dashboard.NewHandler(s.analyzer, s.coverage)
	dashboardHandler.SetupRoutes(r)

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "OPTIONS").Name("unknown")

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors(s.config.CorsAllowedOrigins...))
	if s.redisClient != nil {
		r.Use(middleware.RateLimit(
			redis_rate.NewLimiter(s.redisClient),
			rateLimitRouterName,
			s.config.RateLimitAllowedPerMin,
			s.metricsManager,
		))
	}
	r.Use(middleware.DrainAndClose())

	return r, nil
}

func (s *Server) metricsRouterSetup() *mux.Router {
	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", otelhttp.NewHandler(
		metricsmiddleware.
			New(s.promRegistry, nil).
			WrapHandler("/metrics", promhttp.HandlerFor(
				s.promRegistry,
				promhttp.HandlerOpts{}),
			),
		"metrics",
	))
	return metricsRouter
}

func (s *Server) Serve(host string, port int) {
	router, err := s.routerSetup()
	if err != nil {
		log.Fatalf("failed to setup router: %s", err)
	}

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
	}

	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: s.metricsRouterSetup(),
	}

	go func() {
		log.Infof(" > dashboard listening on: [%s], coverage [%s]", ipAndPort, s.coverage)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("dashboard service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	// stop taking requests before the pools under them are closed
	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			log.Errorf(" >>> failed to gracefully shutdown http server: %s", err)
		}
		log.Warnln("server shut down")
	}

	if s.metricsHttpServer != nil {
		if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
			log.Errorf(" >>> failed to gracefully shutdown metrics http server: %s", err)
		}
		log.Warnln("metrics server shut down")
	}

	if s.otelShutdown != nil {
		s.otelShutdown()
		log.Trace("otel shut down ...")
	}

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}
}
