package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"praetordesk/internal/config"
	"praetordesk/internal/store"
)

// Context is passed to every command's Run method.
type Context struct {
	Config config.Config
	Logger *log.Logger
}

// openStore ensures the data directory exists and opens the configured store.
func (c *Context) openStore(ctx context.Context) (*store.SQLiteStore, error) {
	db := c.Config.Database
	if db.Path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(db.Path), 0755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	return store.Open(ctx, store.Options{
		Driver:       db.Driver,
		Path:         db.Path,
		MaxOpenConns: db.MaxOpenConns,
		Logger:       c.Logger,
	})
}
