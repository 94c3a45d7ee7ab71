package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"github.com/shopspring/decimal"

	"github.com/noah-isme/logistikpro/internal/i18n"
	"github.com/noah-isme/logistikpro/internal/obs"
	"github.com/noah-isme/logistikpro/internal/pricing"
)

// Config holds application configuration loaded from the environment.
type Config struct {
	AppEnv             string
	Port               string
	RedisURL           string
	CORSAllowedOrigins []string
	StaticDir          string
	StaticIndex        string
	DefaultLocale      i18n.Locale
	SiteName           string
	BodyLimitBytes     int64
	RateLimitWindow    time.Duration
	RateLimitMax       int
	IdempotencyTTL     time.Duration
	SecurityHeaders    bool
	Rates              pricing.Rates
	DefaultDistanceKm  int64
	AppVersion         string
	ShutdownTimeout    time.Duration
	Obs                ObsConfig
}

// ObsConfig groups the OBS_* logging, metrics, tracing and pprof settings.
// MetricsBuckets holds OBS_METRICS_BUCKETS_MS converted to seconds.
type ObsConfig struct {
	LogFormat     string
	LogLevel      string
	LogFile       string
	LogMaxSizeMB  int
	LogMaxBackups int
	LogMaxAgeDays int

	MetricsEnabled   bool
	MetricsNamespace string
	MetricsBuckets   []float64

	TracingEnabled  bool
	TracingExporter string
	OTLPEndpoint    string
	OTLPInsecure    bool
	SamplingRatio   float64

	PprofEnabled bool
	PprofUser    string
	PprofPass    string
}

// Load reads configuration from environment variables and optional .env files.
func Load() (*Config, error) {
	_ = godotenv.Load()

	k := koanf.New(".")
	if err := k.Load(env.Provider("", ".", func(s string) string { return s }), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	cfg := &Config{
		AppEnv:             valueOrDefault(k.String("APP_ENV"), "development"),
		Port:               valueOrDefault(k.String("PORT"), "8080"),
		RedisURL:           strings.TrimSpace(k.String("REDIS_URL")),
		CORSAllowedOrigins: splitAndTrim(k.String("CORS_ALLOWED_ORIGINS")),
		StaticDir:          valueOrDefault(k.String("STATIC_DIR"), "public/static"),
		StaticIndex:        valueOrDefault(k.String("STATIC_INDEX"), "/static/index.html"),
		SiteName:           valueOrDefault(k.String("SITE_NAME"), "LogistikPro"),
		BodyLimitBytes:     parseInt64(k.String("BODY_LIMIT_BYTES"), 1<<20),
		RateLimitWindow:    parseDuration(k.String("RATE_LIMIT_WINDOW"), "1m"),
		RateLimitMax:       int(parseInt64(k.String("RATE_LIMIT_MAX"), 30)),
		IdempotencyTTL:     parseDuration(k.String("IDEMPOTENCY_TTL"), "24h"),
		SecurityHeaders:    parseBoolDefault(k.String("SECURITY_HEADERS"), true),
		DefaultDistanceKm:  parseInt64(k.String("PRICING_DEFAULT_DISTANCE_KM"), pricing.DefaultDistanceKm),
		AppVersion:         valueOrDefault(k.String("APP_VERSION"), "dev"),
		ShutdownTimeout:    time.Duration(parseInt64(k.String("SHUTDOWN_TIMEOUT_SECONDS"), 15)) * time.Second,
		Obs: ObsConfig{
			LogFormat:        valueOrDefault(k.String("OBS_LOG_FORMAT"), "json"),
			LogLevel:         valueOrDefault(k.String("OBS_LOG_LEVEL"), "info"),
			LogFile:          strings.TrimSpace(k.String("OBS_LOG_FILE")),
			LogMaxSizeMB:     int(parseInt64(k.String("OBS_LOG_MAX_SIZE_MB"), 100)),
			LogMaxBackups:    int(parseInt64(k.String("OBS_LOG_MAX_BACKUPS"), 5)),
			LogMaxAgeDays:    int(parseInt64(k.String("OBS_LOG_MAX_AGE_DAYS"), 30)),
			MetricsEnabled:   parseBoolDefault(k.String("OBS_ENABLE_PROMETHEUS"), true),
			MetricsNamespace: valueOrDefault(k.String("OBS_METRICS_NAMESPACE"), "logistikpro"),
			MetricsBuckets:   obs.ParseBucketsCSV(k.String("OBS_METRICS_BUCKETS_MS")),
			TracingEnabled:   parseBoolDefault(k.String("OBS_ENABLE_TRACING"), true),
			TracingExporter:  valueOrDefault(k.String("OBS_TRACING_EXPORTER"), "otlp"),
			OTLPEndpoint:     strings.TrimSpace(k.String("OBS_OTLP_ENDPOINT")),
			OTLPInsecure:     parseBool(k.String("OBS_OTLP_INSECURE")),
			SamplingRatio:    parseRatio(k.String("OBS_TRACING_SAMPLING_RATIO"), 1),
			PprofEnabled:     parseBool(k.String("OBS_ENABLE_PPROF")),
			PprofUser:        strings.TrimSpace(k.String("SECURE_PPROF_BASIC_AUTH_USER")),
			PprofPass:        strings.TrimSpace(k.String("SECURE_PPROF_BASIC_AUTH_PASS")),
		},
	}

	locale, ok := i18n.ParseLocale(valueOrDefault(k.String("DEFAULT_LOCALE"), string(i18n.RU)))
	if !ok {
		return nil, fmt.Errorf("DEFAULT_LOCALE must be one of ru, en: got %q", k.String("DEFAULT_LOCALE"))
	}
	cfg.DefaultLocale = locale

	rates := pricing.DefaultRates()
	rates.PerKgPer100Km = parseDecimal(k.String("PRICING_PER_KG_PER_100KM"), rates.PerKgPer100Km)
	rates.MinimumPrice = parseDecimal(k.String("PRICING_MINIMUM_PRICE"), rates.MinimumPrice)
	rates.VolumetricDensity = parseDecimal(k.String("PRICING_VOLUMETRIC_DENSITY"), rates.VolumetricDensity)
	rates.InsuranceRate = parseDecimal(k.String("PRICING_INSURANCE_RATE"), rates.InsuranceRate)
	rates.PackagingMinimum = parseDecimal(k.String("PRICING_PACKAGING_MINIMUM"), rates.PackagingMinimum)
	rates.PackagingPerKg = parseDecimal(k.String("PRICING_PACKAGING_PER_KG"), rates.PackagingPerKg)
	rates.LoadingMinimum = parseDecimal(k.String("PRICING_LOADING_MINIMUM"), rates.LoadingMinimum)
	rates.LoadingPerKg = parseDecimal(k.String("PRICING_LOADING_PER_KG"), rates.LoadingPerKg)
	rates.DoorToDoorBase = parseDecimal(k.String("PRICING_DOOR_TO_DOOR_BASE"), rates.DoorToDoorBase)
	rates.DoorToDoorPer100Km = parseDecimal(k.String("PRICING_DOOR_TO_DOOR_PER_100KM"), rates.DoorToDoorPer100Km)
	cfg.Rates = rates

	if cfg.RateLimitWindow <= 0 {
		return nil, errors.New("RATE_LIMIT_WINDOW must be positive")
	}

	return cfg, nil
}

// Calculator builds the pricing engine configured by the PRICING_* keys.
func (c *Config) Calculator() *pricing.Calculator {
	return pricing.NewCalculator(pricing.NewDistanceTable(pricing.DefaultLegs(), c.DefaultDistanceKm), c.Rates)
}

// LogOptions maps the OBS_LOG_* keys onto the logger settings.
func (c *Config) LogOptions() obs.LogOptions {
	return obs.LogOptions{
		Format:     c.Obs.LogFormat,
		Level:      c.Obs.LogLevel,
		File:       c.Obs.LogFile,
		MaxSizeMB:  c.Obs.LogMaxSizeMB,
		MaxBackups: c.Obs.LogMaxBackups,
		MaxAgeDays: c.Obs.LogMaxAgeDays,
	}
}

// TracingConfig maps the OBS_*TRACING* and OTLP keys onto the tracer settings.
func (c *Config) TracingConfig(serviceName string) obs.TracingConfig {
	return obs.TracingConfig{
		ServiceName:   serviceName,
		Endpoint:      c.Obs.OTLPEndpoint,
		Exporter:      c.Obs.TracingExporter,
		SamplingRatio: c.Obs.SamplingRatio,
		Environment:   c.AppEnv,
		Version:       c.AppVersion,
		Insecure:      c.Obs.OTLPInsecure,
	}
}

// HasRedis reports whether a Redis instance is configured.
func (c *Config) HasRedis() bool { return c.RedisURL != "" }

// HTTPAddr returns the address the HTTP server should bind to.
func (c *Config) HTTPAddr() string {
	port := strings.TrimSpace(c.Port)
	if port == "" {
		port = "8080"
	}
	if strings.HasPrefix(port, ":") {
		return port
	}
	return ":" + port
}

func splitAndTrim(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func valueOrDefault(value, fallback string) string {
	if strings.TrimSpace(value) != "" {
		return value
	}
	return fallback
}

func parseDuration(value, fallback string) time.Duration {
	base := strings.TrimSpace(value)
	if base == "" {
		base = fallback
	}
	d, err := time.ParseDuration(base)
	if err != nil {
		d, _ = time.ParseDuration(fallback)
	}
	return d
}

func parseBool(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}

func parseBoolDefault(value string, fallback bool) bool {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return parseBool(value)
}

func parseInt64(value string, fallback int64) int64 {
	n, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

// parseRatio accepts values in (0, 1]; anything else keeps fallback.
func parseRatio(value string, fallback float64) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil || f <= 0 || f > 1 {
		return fallback
	}
	return f
}

// parseDecimal accepts non-negative decimals; anything else keeps fallback.
func parseDecimal(value string, fallback decimal.Decimal) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil || d.IsNegative() {
		return fallback
	}
	return d
}

// MustLoad behaves like Load but panics on error. Useful for tests and command entrypoints.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

// LoadForTests allows tests to override environment variables without touching the real environment.
func LoadForTests(env map[string]string) (*Config, error) {
	original := make(map[string]string, len(env))
	for key := range env {
		original[key] = os.Getenv(key)
		if err := setEnvVar(key, env[key]); err != nil {
			return nil, err
		}
	}
	cfg, err := Load()
	restoreErr := restoreEnv(original)
	if err != nil {
		return nil, err
	}
	return cfg, restoreErr
}

func setEnvVar(key, value string) error {
	if value == "" {
		return os.Unsetenv(key)
	}
	return os.Setenv(key, value)
}

func restoreEnv(values map[string]string) error {
	var errs []string
	for key, value := range values {
		if err := setEnvVar(key, value); err != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", key, err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("restore env: %s", strings.Join(errs, "; "))
	}
	return nil
}
