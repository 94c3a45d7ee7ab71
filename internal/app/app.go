package app

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	redis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/noah-isme/logistikpro/internal/common"
	"github.com/noah-isme/logistikpro/internal/config"
	"github.com/noah-isme/logistikpro/internal/health"
	"github.com/noah-isme/logistikpro/internal/i18n"
	"github.com/noah-isme/logistikpro/internal/lead"
	"github.com/noah-isme/logistikpro/internal/obs"
	"github.com/noah-isme/logistikpro/internal/quote"
	"github.com/noah-isme/logistikpro/internal/ratelimit"
	"github.com/noah-isme/logistikpro/internal/security"
	"github.com/noah-isme/logistikpro/internal/site"
)

// Dependencies enumerates the collaborators the HTTP surface is built from.
type Dependencies struct {
	Config *config.Config
	Logger zerolog.Logger
	// Redis is optional. Without it rate limits are process-local and
	// Idempotency-Key headers are ignored.
	Redis *redis.Client
	// Metrics enables /metrics and HTTP instrumentation when non-nil.
	Metrics        *obs.HTTPMetrics
	MetricsHandler http.Handler
	Tracing        bool
	Notifiers      []lead.Notifier
	// Extra mounts additional handlers, such as pprof, on the root router.
	Extra map[string]http.Handler
}

// NewRouter assembles the chi router serving the site and API.
func NewRouter(deps Dependencies) (http.Handler, error) {
	cfg := deps.Config
	catalog, err := i18n.NewCatalog(cfg.DefaultLocale)
	if err != nil {
		return nil, err
	}
	validator := common.NewValidator()

	quoteHandler := quote.NewHandler(quote.HandlerConfig{
		Service: quote.NewService(cfg.Calculator(), catalog),
	})
	notifiers := deps.Notifiers
	if len(notifiers) == 0 {
		notifiers = []lead.Notifier{lead.LogNotifier{Logger: deps.Logger.With().Str("component", "lead").Logger()}}
	}
	leadHandler := lead.NewHandler(lead.HandlerConfig{Service: lead.NewService(lead.ServiceConfig{
		Catalog:   catalog,
		Validator: validator,
		Notifiers: notifiers,
		Logger:    deps.Logger,
	})})

	healthHandler := health.Handler{Catalog: catalog, RedisTimeout: 300 * time.Millisecond}
	if deps.Redis != nil {
		healthHandler.Checker = redisChecker{client: deps.Redis}
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(obs.RoutePatternMiddleware)
	if deps.Tracing {
		r.Use(obs.TracingMiddleware)
	}
	if deps.Metrics != nil {
		r.Use(obs.HTTPObs{Metrics: deps.Metrics}.Middleware)
	}
	r.Use(obs.RequestLogger{Logger: deps.Logger}.Middleware)
	r.Use(security.Headers{
		Enable:                cfg.SecurityHeaders,
		EnableHSTS:            cfg.AppEnv == "production",
		ContentSecurityPolicy: security.DefaultContentSecurityPolicy,
	}.Middleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins(cfg),
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "Idempotency-Key", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset", "Retry-After"},
		MaxAge:         300,
	}))

	if deps.Metrics != nil {
		metricsHandler := deps.MetricsHandler
		if metricsHandler == nil {
			metricsHandler = promhttp.Handler()
		}
		r.Handle("/metrics", metricsHandler)
	}
	for pattern, h := range deps.Extra {
		r.Mount(pattern, h)
	}

	site.Handler{Dir: cfg.StaticDir, Index: cfg.StaticIndex}.Mount(r)
	r.Get("/health/live", healthHandler.Live)
	r.Get("/health/ready", healthHandler.Ready)

	limit := newLimiter(deps.Redis)
	bodyLimit := security.BodyLimit{Max: cfg.BodyLimitBytes}
	idem := common.Idem{R: deps.Redis, TTL: cfg.IdempotencyTTL}
	onLimitErr := func(err error) {
		deps.Logger.Warn().Err(err).Msg("rate limiter unavailable")
	}

	r.Route("/api", func(api chi.Router) {
		api.Get("/health", healthHandler.Status)
		api.Route("/calculator", func(c chi.Router) {
			c.Get("/options", quoteHandler.Options)
			c.With(
				bodyLimit.Middleware,
				ratelimit.Handler{Limiter: limit, Config: ratelimit.Config{
					Key:    ratelimit.ByClientIP("calculator"),
					Window: cfg.RateLimitWindow,
					Max:    cfg.RateLimitMax,
				}, OnError: onLimitErr}.Middleware,
			).Post("/", quoteHandler.Calculate)
		})
		api.With(
			bodyLimit.Middleware,
			ratelimit.Handler{Limiter: limit, Config: ratelimit.Config{
				Key:    ratelimit.ByClientIP("request"),
				Window: cfg.RateLimitWindow,
				Max:    cfg.RateLimitMax,
			}, OnError: onLimitErr}.Middleware,
			idem.Middleware,
		).Post("/request", leadHandler.Submit)
	})

	return r, nil
}

// NewMetrics registers HTTP and domain collectors on reg and returns the
// HTTP metrics plus a handler exposing reg.
func NewMetrics(namespace string, buckets []float64, reg *prometheus.Registry) (*obs.HTTPMetrics, http.Handler) {
	if reg == nil {
		obs.MustRegisterDomainMetrics(namespace, nil)
		return obs.NewHTTPMetrics(namespace, buckets, nil), promhttp.Handler()
	}
	obs.MustRegisterDomainMetrics(namespace, reg)
	return obs.NewHTTPMetrics(namespace, buckets, reg), promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

func newLimiter(client *redis.Client) ratelimit.Allower {
	if client != nil {
		return ratelimit.RedisLimiter{Client: client, Prefix: "ratelimit:"}
	}
	return ratelimit.NewMemoryLimiter("ratelimit")
}

func allowedOrigins(cfg *config.Config) []string {
	if len(cfg.CORSAllowedOrigins) == 0 {
		return []string{"*"}
	}
	return cfg.CORSAllowedOrigins
}
