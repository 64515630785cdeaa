package app

import (
	"github.com/rs/zerolog"

	"ndbc-data/internal/config"
	"ndbc-data/internal/fetcher"
)

// App aggregates configuration and shared dependencies for the CLI commands.
type App struct {
	Config *config.Config
	Logger zerolog.Logger
}

// NewApp constructs a new application handle.
func NewApp(cfg *config.Config, logger zerolog.Logger) *App {
	return &App{Config: cfg, Logger: logger.With().Str("component", "app").Logger()}
}

func (a *App) newClient() *fetcher.Client {
	return fetcher.NewClient(fetcher.Options{
		BaseURL:   a.Config.NDBC.BaseURL,
		Timeout:   a.Config.NDBC.RequestTimeout,
		UserAgent: a.Config.NDBC.UserAgent,
	}, a.Logger)
}
