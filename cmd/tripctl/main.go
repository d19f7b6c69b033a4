// Package main provides tripctl, a command-line client that works directly on
// the trip planner's state store.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/pkordes/trip-planner/internal/config"
	"github.com/pkordes/trip-planner/internal/format"
	"github.com/pkordes/trip-planner/internal/repo"
	"github.com/pkordes/trip-planner/internal/service"
	"github.com/pkordes/trip-planner/internal/share"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	// Logs go to stderr so stdout stays clean for --json output.
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	a := &app{
		out:    os.Stdout,
		format: format.New(cfg.Locale),
		codec:  share.Codec{BaseURL: cfg.ShareBaseURL, Logger: logger},
		open: func(ctx context.Context, driver, sqlitePath string) (*service.TripService, func(), error) {
			c, err := storeConfig(cfg, driver, sqlitePath)
			if err != nil {
				return nil, nil, err
			}
			store, closeStore, err := repo.Open(ctx, c)
			if err != nil {
				return nil, nil, err
			}
			svc, err := service.Open(ctx, store, service.Options{Key: c.StorageKey, Logger: logger})
			if err != nil {
				closeStore()
				return nil, nil, err
			}
			return svc, closeStore, nil
		},
	}

	if err := rootCmd(a).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// storeConfig applies the --driver and --sqlite overrides to cfg and checks
// the result again, since Load validated the environment's driver only.
func storeConfig(cfg config.Config, driver, sqlitePath string) (config.Config, error) {
	if driver != "" {
		cfg.StorageDriver = strings.ToLower(driver)
	}
	if sqlitePath != "" {
		cfg.SQLitePath = sqlitePath
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// app holds what every subcommand needs. open is called lazily so that
// commands which never touch storage (open <token>) work without a database.
type app struct {
	out    io.Writer
	format *format.Formatter
	codec  share.Codec
	open   func(ctx context.Context, driver, sqlitePath string) (*service.TripService, func(), error)
}
