package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"ndbc-data/internal/fetcher"
	"ndbc-data/internal/metadata"
	"ndbc-data/internal/sink"
	"ndbc-data/internal/stdmet"
)

// FetchOptions select which stations a run processes.
type FetchOptions struct {
	Stations []string
	All      bool
}

// StationFailure records why one station could not be processed.
type StationFailure struct {
	Station string
	Reason  string
}

// FetchSummary reports the outcome of one run.
type FetchSummary struct {
	Succeeded int
	Failures  []StationFailure
}

var errNoDataRows = errors.New("no standard met rows found")

// Fetch downloads station metadata, then retrieves, parses, and writes each
// requested station's feed. Metadata failures abort the run; per-station
// failures are collected and reported without stopping the others.
func (a *App) Fetch(ctx context.Context, opts FetchOptions) error {
	client := a.newClient()
	summary, err := a.fetchWith(ctx, client, client, opts)
	if err != nil {
		return err
	}
	a.reportSummary(summary)
	return nil
}

func (a *App) fetchWith(ctx context.Context, meta fetcher.MetadataFetcher, feeds fetcher.FeedFetcher, opts FetchOptions) (*FetchSummary, error) {
	if err := ensureDataDir(a.Config.Output.Dir, a.Config.Output.UpdateGitignore); err != nil {
		return nil, err
	}

	doc, err := meta.FetchMetadata(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch station metadata: %w", err)
	}

	positions, err := metadata.Scan(doc)
	if err != nil {
		return nil, err
	}
	a.Logger.Info().Int("count", len(positions)).Msg("station metadata retrieved")

	stations := opts.Stations
	if opts.All {
		stations = metadata.StationIDs(positions)
	}
	if len(stations) == 0 {
		return nil, errors.New("no stations requested")
	}

	workers := a.Config.Fetch.Workers
	if workers > len(stations) {
		workers = len(stations)
	}

	jobs := make(chan string)
	results := make(chan StationFailure, len(stations))

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for station := range jobs {
				if err := a.processStation(ctx, feeds, positions, station); err != nil {
					a.Logger.Warn().Str("station", station).Err(err).Msg("failed to process station")
					results <- StationFailure{Station: station, Reason: err.Error()}
				} else {
					results <- StationFailure{Station: station}
				}
			}
		}()
	}

	for _, station := range stations {
		select {
		case <-ctx.Done():
			close(jobs)
			wg.Wait()
			return nil, ctx.Err()
		case jobs <- station:
		}
	}
	close(jobs)
	wg.Wait()
	close(results)

	summary := &FetchSummary{}
	for res := range results {
		if res.Reason == "" {
			summary.Succeeded++
		} else {
			summary.Failures = append(summary.Failures, res)
		}
	}
	return summary, nil
}

// processStation runs the full per-station pipeline: fetch, parse, enrich,
// serialize. Each station is independent; an error here never affects the
// rest of the run.
func (a *App) processStation(ctx context.Context, feeds fetcher.FeedFetcher, positions map[string]metadata.Position, station string) error {
	text, err := feeds.FetchFeed(ctx, station)
	if err != nil {
		return err
	}

	table := stdmet.Parse(text)
	if table.NumRows() == 0 {
		return errNoDataRows
	}

	enrich := sink.Enrichment{StationID: station}
	if pos, ok := positions[station]; ok {
		enrich.Position = &pos
	}

	path := filepath.Join(a.Config.Output.Dir, station+"."+a.Config.Output.Format)
	a.Logger.Info().
		Str("file", path).
		Int("rows", table.NumRows()).
		Msg("writing station table")

	if a.Config.Output.Format == "csv" {
		return sink.WriteCSV(path, table, enrich)
	}
	return sink.WriteParquet(path, table, enrich)
}

func (a *App) reportSummary(summary *FetchSummary) {
	a.Logger.Info().
		Int("successes", summary.Succeeded).
		Int("failures", len(summary.Failures)).
		Msg("done")

	if len(summary.Failures) > 0 {
		fmt.Fprintln(os.Stderr, "Warnings:")
		for _, f := range summary.Failures {
			fmt.Fprintf(os.Stderr, "- %s: %s\n", f.Station, f.Reason)
		}
	}
}
