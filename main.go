package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"praetordesk/internal/cli"
	"praetordesk/internal/config"
	"praetordesk/internal/logger"
)

var version = "v0.1.0"

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Config file path." type:"path" env:"PRAETOR_CONFIG"`
	Debug   bool   `help:"Enable debug logging."`

	Serve   cli.ServeCmd   `cmd:"" help:"Run the HTTP API." default:"withargs"`
	Migrate cli.MigrateCmd `cmd:"" help:"Apply database migrations and exit."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("praetordesk"),
		kong.Description("Local tracker for airdrops, projects, ideas and chores"),
		kong.UsageOnError(),
		kong.Vars{"version": version},
	)

	cfg, err := config.Load(CLI.Config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	log, closer, err := logger.New(logger.Config{
		Level:      cfg.Log.Level,
		Debug:      CLI.Debug,
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	if err := ctx.Run(&cli.Context{Config: cfg, Logger: log}); err != nil {
		log.Error("command failed", "err", err)
		closer.Close()
		os.Exit(1)
	}
}
