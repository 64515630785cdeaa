package app

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"ndbc-data/internal/scheduler"
)

// Watch re-runs the fetch pipeline on an aligned interval until interrupted.
// Metadata is refreshed on every cycle so station positions stay current.
func (a *App) Watch(ctx context.Context, opts FetchOptions) error {
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	sched := scheduler.New(scheduler.Options{
		Interval:     a.Config.Watch.Interval,
		AlignToStart: a.Config.Watch.AlignToBucket,
		StartupDelay: a.Config.Watch.StartupDelay,
	}, a.Logger)

	client := a.newClient()

	a.Logger.Info().Dur("interval", a.Config.Watch.Interval).Msg("starting watch loop")
	err := sched.Run(ctx, func(ctx context.Context, _ time.Time) error {
		summary, err := a.fetchWith(ctx, client, client, opts)
		if err != nil {
			return err
		}
		a.reportSummary(summary)
		return nil
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	a.Logger.Info().Msg("watch loop stopped")
	return nil
}
