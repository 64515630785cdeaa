package metadata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanPrefersActiveDeployment(t *testing.T) {
	doc := []byte(`<?xml version="1.0"?>
<root>
  <stations>
    <station id="41001">
      <history met="y" stop="2019-05-01" lat="1" lng="2"/>
      <history met="y" stop="" lat="3" lng="4"/>
    </station>
  </stations>
</root>`)

	got, err := Scan(doc)
	require.NoError(t, err)
	require.Contains(t, got, "41001")
	assert.Equal(t, Position{Lat: 3, Lon: 4}, got["41001"])
}

func TestScanFallsBackToClosedDeployment(t *testing.T) {
	doc := []byte(`<stations>
  <station id="FPKA2">
    <history met="y" stop="2015-01-01" lat="5" lng="6"/>
  </station>
</stations>`)

	got, err := Scan(doc)
	require.NoError(t, err)
	assert.Equal(t, Position{Lat: 5, Lon: 6}, got["FPKA2"])
}

func TestScanActiveEntryDoesNotYieldToLaterClosedEntry(t *testing.T) {
	doc := []byte(`<stations>
  <station id="46042">
    <history met="y" lat="36.8" lng="-122.4"/>
    <history met="y" stop="2010-01-01" lat="0" lng="0"/>
  </station>
</stations>`)

	got, err := Scan(doc)
	require.NoError(t, err)
	// The closed entry must not displace the already-picked position even
	// though the picked one was accepted first.
	assert.Equal(t, Position{Lat: 36.8, Lon: -122.4}, got["46042"])
}

func TestScanSkipsNonMetEntries(t *testing.T) {
	doc := []byte(`<stations>
  <station id="AAMC1">
    <history met="n" stop="" lat="1" lng="2"/>
  </station>
  <station id="42040">
    <history met="y" stop="" lat="29.2" lng="-88.2"/>
  </station>
</stations>`)

	got, err := Scan(doc)
	require.NoError(t, err)
	assert.NotContains(t, got, "AAMC1")
	assert.Contains(t, got, "42040")
}

func TestScanDropsStationsWithoutIDOrPosition(t *testing.T) {
	doc := []byte(`<stations>
  <station>
    <history met="y" stop="" lat="1" lng="2"/>
  </station>
  <station id="NOLOC">
    <history met="y" stop=""/>
  </station>
  <station id="BADNUM">
    <history met="y" stop="" lat="abc" lng="2"/>
  </station>
  <station id="OK1">
    <history met="y" stop="" lat="10" lng="20"/>
  </station>
</stations>`)

	got, err := Scan(doc)
	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Contains(t, got, "OK1")
}

func TestScanIgnoresStationsOutsideContainer(t *testing.T) {
	doc := []byte(`<root>
  <station id="STRAY">
    <history met="y" stop="" lat="1" lng="2"/>
  </station>
  <stations>
    <station id="IN1">
      <history met="y" stop="" lat="3" lng="4"/>
    </station>
  </stations>
</root>`)

	got, err := Scan(doc)
	require.NoError(t, err)
	assert.NotContains(t, got, "STRAY")
	assert.Contains(t, got, "IN1")
}

func TestScanEmptyResultIsAnError(t *testing.T) {
	doc := []byte(`<stations></stations>`)

	_, err := Scan(doc)
	assert.ErrorIs(t, err, ErrNoStations)
}

func TestScanMalformedDocument(t *testing.T) {
	_, err := Scan([]byte(`<stations><station id="X">`))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoStations)
}

func TestStationIDsSorted(t *testing.T) {
	positions := map[string]Position{
		"ZZZ":   {},
		"41001": {},
		"FPKA2": {},
	}
	assert.Equal(t, []string{"41001", "FPKA2", "ZZZ"}, StationIDs(positions))
}
