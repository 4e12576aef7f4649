package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pennantrace/sandlot/internal/platform/logging"
)

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv                      string
	ServiceName                 string
	ServiceVersion              string
	HTTPAddr                    string
	StorageDriver               string
	DBURL                       string
	CORSAllowedOrigins          []string
	ReadTimeout                 time.Duration
	WriteTimeout                time.Duration
	PprofEnabled                bool
	PprofAddr                   string
	RosterdBaseURL              string
	RosterdIntrospectURL        string
	RosterdTimeout              time.Duration
	RosterdCircuitFailureCount  int
	RosterdCircuitOpenTimeout   time.Duration
	DiscordWebhookURL           string
	DiscordTimeout              time.Duration
	DiscordCircuitFailureCount  int
	DiscordCircuitOpenTimeout   time.Duration
	NotifyWorkerCount           int
	UptraceEnabled              bool
	UptraceDSN                  string
	PyroscopeEnabled            bool
	PyroscopeServerAddress      string
	PyroscopeAppName            string
	PyroscopeAuthToken          string
	LogLevel                    logging.Level
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	storageDriver := strings.ToLower(strings.TrimSpace(getEnv("STORAGE_DRIVER", StorageMemory)))
	if storageDriver != StorageMemory && storageDriver != StoragePostgres {
		return Config{}, fmt.Errorf("invalid STORAGE_DRIVER %q: valid values are %s, %s", storageDriver, StorageMemory, StoragePostgres)
	}

	dbURL := strings.TrimSpace(getEnv("DB_URL", ""))
	if storageDriver == StoragePostgres && dbURL == "" {
		return Config{}, fmt.Errorf("DB_URL is required when STORAGE_DRIVER=%s", StoragePostgres)
	}

	readTimeout, err := time.ParseDuration(getEnv("HTTP_READ_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse HTTP_READ_TIMEOUT: %w", err)
	}
	writeTimeout, err := time.ParseDuration(getEnv("HTTP_WRITE_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse HTTP_WRITE_TIMEOUT: %w", err)
	}

	pprofEnabled, err := strconv.ParseBool(getEnv("PPROF_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PPROF_ENABLED: %w", err)
	}

	rosterdTimeout, err := time.ParseDuration(getEnv("ROSTERD_TIMEOUT", "3s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse ROSTERD_TIMEOUT: %w", err)
	}
	rosterdFailureCount, err := getEnvAsInt("ROSTERD_CIRCUIT_FAILURE_COUNT", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse ROSTERD_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	rosterdOpenTimeout, err := time.ParseDuration(getEnv("ROSTERD_CIRCUIT_OPEN_TIMEOUT", "30s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse ROSTERD_CIRCUIT_OPEN_TIMEOUT: %w", err)
	}

	discordTimeout, err := time.ParseDuration(getEnv("DISCORD_TIMEOUT", "5s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse DISCORD_TIMEOUT: %w", err)
	}
	discordFailureCount, err := getEnvAsInt("DISCORD_CIRCUIT_FAILURE_COUNT", 3)
	if err != nil {
		return Config{}, fmt.Errorf("parse DISCORD_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	discordOpenTimeout, err := time.ParseDuration(getEnv("DISCORD_CIRCUIT_OPEN_TIMEOUT", "60s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse DISCORD_CIRCUIT_OPEN_TIMEOUT: %w", err)
	}

	notifyWorkerCount, err := getEnvAsInt("NOTIFY_WORKER_COUNT", 4)
	if err != nil {
		return Config{}, fmt.Errorf("parse NOTIFY_WORKER_COUNT: %w", err)
	}
	if notifyWorkerCount <= 0 {
		return Config{}, fmt.Errorf("NOTIFY_WORKER_COUNT must be > 0")
	}

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}

	pyroscopeEnabled, err := strconv.ParseBool(getEnv("PYROSCOPE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_ENABLED: %w", err)
	}
	pyroscopeServer := strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	if pyroscopeEnabled && pyroscopeServer == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}

	serviceName := getEnv("SERVICE_NAME", "sandlot")

	cfg := Config{
		AppEnv:                     appEnv,
		ServiceName:                serviceName,
		ServiceVersion:             getEnv("SERVICE_VERSION", "dev"),
		HTTPAddr:                   getEnv("HTTP_ADDR", ":8080"),
		StorageDriver:              storageDriver,
		DBURL:                      dbURL,
		CORSAllowedOrigins:         parseList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		ReadTimeout:                readTimeout,
		WriteTimeout:               writeTimeout,
		PprofEnabled:               pprofEnabled,
		PprofAddr:                  getEnv("PPROF_ADDR", ":6060"),
		RosterdBaseURL:             strings.TrimSpace(getEnv("ROSTERD_BASE_URL", "")),
		RosterdIntrospectURL:       strings.TrimSpace(getEnv("ROSTERD_INTROSPECT_URL", "")),
		RosterdTimeout:             rosterdTimeout,
		RosterdCircuitFailureCount: rosterdFailureCount,
		RosterdCircuitOpenTimeout:  rosterdOpenTimeout,
		DiscordWebhookURL:          strings.TrimSpace(getEnv("DISCORD_WEBHOOK_URL", "")),
		DiscordTimeout:             discordTimeout,
		DiscordCircuitFailureCount: discordFailureCount,
		DiscordCircuitOpenTimeout:  discordOpenTimeout,
		NotifyWorkerCount:          notifyWorkerCount,
		UptraceEnabled:             uptraceEnabled,
		UptraceDSN:                 uptraceDSN,
		PyroscopeEnabled:           pyroscopeEnabled,
		PyroscopeServerAddress:     pyroscopeServer,
		PyroscopeAppName:           getEnv("PYROSCOPE_APP_NAME", serviceName),
		PyroscopeAuthToken:         strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", "")),
		LogLevel:                   parseLogLevel(getEnv("LOG_LEVEL", "info")),
	}

	return cfg, nil
}

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}

func parseLogLevel(v string) logging.Level {
	level, err := logging.ParseLevel(v)
	if err != nil {
		return logging.LevelInfo
	}
	return level
}

func parseList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}
