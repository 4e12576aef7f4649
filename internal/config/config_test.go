package config

import (
	"testing"
	"time"

	"github.com/pennantrace/sandlot/internal/platform/logging"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("DB_URL", "")
	t.Setenv("STORAGE_DRIVER", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.AppEnv != EnvDev {
		t.Fatalf("unexpected AppEnv: %q", cfg.AppEnv)
	}
	if cfg.StorageDriver != StorageMemory {
		t.Fatalf("unexpected StorageDriver: %q", cfg.StorageDriver)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("unexpected HTTPAddr: %q", cfg.HTTPAddr)
	}
	if cfg.ReadTimeout != 10*time.Second {
		t.Fatalf("unexpected ReadTimeout: %s", cfg.ReadTimeout)
	}
	if cfg.NotifyWorkerCount != 4 {
		t.Fatalf("unexpected NotifyWorkerCount: %d", cfg.NotifyWorkerCount)
	}
	if cfg.LogLevel != logging.LevelInfo {
		t.Fatalf("unexpected LogLevel: %s", cfg.LogLevel)
	}
}

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_PostgresRequiresDBURL(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("STORAGE_DRIVER", StoragePostgres)
	t.Setenv("DB_URL", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when STORAGE_DRIVER=postgres without DB_URL")
	}
}

func TestLoad_InvalidStorageDriver(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("STORAGE_DRIVER", "cassandra")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for unknown STORAGE_DRIVER")
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_PyroscopeRequiresServerWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when PYROSCOPE_ENABLED=true without PYROSCOPE_SERVER_ADDRESS")
	}
}

func TestLoad_RosterdConfigParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvStage)
	t.Setenv("ROSTERD_BASE_URL", "https://rosterd.internal")
	t.Setenv("ROSTERD_INTROSPECT_URL", "https://rosterd.internal/v1/introspect")
	t.Setenv("ROSTERD_TIMEOUT", "2s")
	t.Setenv("ROSTERD_CIRCUIT_FAILURE_COUNT", "7")
	t.Setenv("ROSTERD_CIRCUIT_OPEN_TIMEOUT", "45s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.RosterdBaseURL != "https://rosterd.internal" {
		t.Fatalf("unexpected RosterdBaseURL: %q", cfg.RosterdBaseURL)
	}
	if cfg.RosterdIntrospectURL != "https://rosterd.internal/v1/introspect" {
		t.Fatalf("unexpected RosterdIntrospectURL: %q", cfg.RosterdIntrospectURL)
	}
	if cfg.RosterdTimeout != 2*time.Second {
		t.Fatalf("unexpected RosterdTimeout: %s", cfg.RosterdTimeout)
	}
	if cfg.RosterdCircuitFailureCount != 7 {
		t.Fatalf("unexpected RosterdCircuitFailureCount: %d", cfg.RosterdCircuitFailureCount)
	}
	if cfg.RosterdCircuitOpenTimeout != 45*time.Second {
		t.Fatalf("unexpected RosterdCircuitOpenTimeout: %s", cfg.RosterdCircuitOpenTimeout)
	}
}

func TestLoad_InvalidWorkerCount(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("NOTIFY_WORKER_COUNT", "0")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for NOTIFY_WORKER_COUNT=0")
	}
}

func TestLoad_CORSListParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example ,")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if len(cfg.CORSAllowedOrigins) != 2 {
		t.Fatalf("unexpected origins: %v", cfg.CORSAllowedOrigins)
	}
	if cfg.CORSAllowedOrigins[0] != "https://a.example" || cfg.CORSAllowedOrigins[1] != "https://b.example" {
		t.Fatalf("unexpected origins: %v", cfg.CORSAllowedOrigins)
	}
}
