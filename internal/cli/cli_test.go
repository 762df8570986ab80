package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"praetordesk/internal/config"
)

func testContext(t *testing.T) *Context {
	t.Helper()
	cfg := config.Default()
	cfg.Database.Path = filepath.Join(t.TempDir(), "nested", "praetordesk.db")
	cfg.Server.Addr = "127.0.0.1:0"
	return &Context{Config: cfg, Logger: log.New(io.Discard)}
}

func TestMigrateCmd_CreatesDatabase(t *testing.T) {
	ctx := testContext(t)

	require.NoError(t, (&MigrateCmd{}).Run(ctx))

	_, err := os.Stat(ctx.Config.Database.Path)
	assert.NoError(t, err, "database file should exist after migrate")
}

func TestMigrateCmd_UnknownDriver(t *testing.T) {
	ctx := testContext(t)
	ctx.Config.Database.Driver = "postgres"

	assert.Error(t, (&MigrateCmd{}).Run(ctx))
}

func TestServeCmd_ShutsDownOnCancel(t *testing.T) {
	ctx := testContext(t)
	runCtx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- (&ServeCmd{}).serve(runCtx, ctx) }()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(shutdownTimeout + time.Second):
		t.Fatal("server did not shut down")
	}
}
