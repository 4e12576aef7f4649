package app

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pennantrace/sandlot/internal/config"
)

func TestNewHTTPServer_MemoryDriver(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := config.Config{
		HTTPAddr:          ":0",
		StorageDriver:     config.StorageMemory,
		NotifyWorkerCount: 2,
	}

	server, cleanup, err := NewHTTPServer(cfg, logger)
	require.NoError(t, err)
	require.NotNil(t, server)
	require.NotNil(t, server.Handler)
	cleanup()
}

func TestNewHTTPServer_EmptyAddr(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := config.Config{
		StorageDriver:     config.StorageMemory,
		NotifyWorkerCount: 2,
	}

	_, _, err := NewHTTPServer(cfg, logger)
	require.Error(t, err)
}
