package app

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ndbc-data/internal/config"
	"ndbc-data/internal/fetcher"
	"ndbc-data/internal/metadata"
)

const stubMetadata = `<stations>
  <station id="42040">
    <history met="y" stop="" lat="29.2" lng="-88.2"/>
  </station>
  <station id="46042">
    <history met="y" stop="" lat="36.8" lng="-122.4"/>
  </station>
</stations>`

const stubFeed = "#YY MM DD hh mm WDIR WSPD\n" +
	"#yr mo dy hr mn degT m/s\n" +
	"2023 01 15 06 30 180 12.3\n"

type stubNDBC struct {
	metadata []byte
	feeds    map[string]string
}

func (s *stubNDBC) FetchMetadata(_ context.Context) ([]byte, error) {
	return s.metadata, nil
}

func (s *stubNDBC) FetchFeed(_ context.Context, station string) (string, error) {
	feed, ok := s.feeds[station]
	if !ok {
		return "", fetcher.ErrNotFound
	}
	return feed, nil
}

func testApp(t *testing.T, format string) *App {
	t.Helper()
	cfg := &config.Config{}
	cfg.Output.Dir = t.TempDir()
	cfg.Output.Format = format
	cfg.Output.UpdateGitignore = false
	cfg.Fetch.Workers = 2
	return NewApp(cfg, zerolog.Nop())
}

func TestFetchWritesEnrichedCSV(t *testing.T) {
	a := testApp(t, "csv")
	stub := &stubNDBC{
		metadata: []byte(stubMetadata),
		feeds:    map[string]string{"42040": stubFeed},
	}

	summary, err := a.fetchWith(context.Background(), stub, stub, FetchOptions{Stations: []string{"42040"}})
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Succeeded)
	assert.Empty(t, summary.Failures)

	file, err := os.Open(filepath.Join(a.Config.Output.Dir, "42040.csv"))
	require.NoError(t, err)
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "42040", rows[1][len(rows[1])-3])
	assert.Equal(t, "29.2", rows[1][len(rows[1])-2])
}

func TestFetchCollectsPerStationFailures(t *testing.T) {
	a := testApp(t, "csv")
	stub := &stubNDBC{
		metadata: []byte(stubMetadata),
		feeds: map[string]string{
			"42040": stubFeed,
			"46042": "no header here\n",
		},
	}

	summary, err := a.fetchWith(context.Background(), stub, stub, FetchOptions{
		Stations: []string{"42040", "46042", "MISSING"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Succeeded)
	require.Len(t, summary.Failures, 2)

	reasons := map[string]string{}
	for _, f := range summary.Failures {
		reasons[f.Station] = f.Reason
	}
	assert.Equal(t, errNoDataRows.Error(), reasons["46042"])
	assert.Equal(t, fetcher.ErrNotFound.Error(), reasons["MISSING"])
}

func TestFetchAllUsesMetadataStations(t *testing.T) {
	a := testApp(t, "csv")
	stub := &stubNDBC{
		metadata: []byte(stubMetadata),
		feeds: map[string]string{
			"42040": stubFeed,
			"46042": stubFeed,
		},
	}

	summary, err := a.fetchWith(context.Background(), stub, stub, FetchOptions{All: true})
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Succeeded)
}

func TestFetchAbortsOnEmptyMetadata(t *testing.T) {
	a := testApp(t, "csv")
	stub := &stubNDBC{metadata: []byte(`<stations/>`)}

	_, err := a.fetchWith(context.Background(), stub, stub, FetchOptions{Stations: []string{"42040"}})
	assert.ErrorIs(t, err, metadata.ErrNoStations)
}

func TestFetchRequiresStations(t *testing.T) {
	a := testApp(t, "csv")
	stub := &stubNDBC{metadata: []byte(stubMetadata)}

	_, err := a.fetchWith(context.Background(), stub, stub, FetchOptions{})
	assert.Error(t, err)
}

func TestStationWithoutPositionGetsNullColumns(t *testing.T) {
	a := testApp(t, "csv")
	// FPKA2 has a feed but no qualifying metadata entry
	stub := &stubNDBC{
		metadata: []byte(stubMetadata),
		feeds:    map[string]string{"FPKA2": stubFeed},
	}

	summary, err := a.fetchWith(context.Background(), stub, stub, FetchOptions{Stations: []string{"FPKA2"}})
	require.NoError(t, err)
	require.Equal(t, 1, summary.Succeeded)

	file, err := os.Open(filepath.Join(a.Config.Output.Dir, "FPKA2.csv"))
	require.NoError(t, err)
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "", rows[1][len(rows[1])-2])
	assert.Equal(t, "", rows[1][len(rows[1])-1])
}
