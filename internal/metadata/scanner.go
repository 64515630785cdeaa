package metadata

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
)

// ErrNoStations indicates the metadata document parsed cleanly but contained
// no station with an active meteorological deployment.
var ErrNoStations = errors.New("no stations with met data found in metadata")

// Position is a station's geographic location in decimal degrees.
type Position struct {
	Lat float64
	Lon float64
}

// Scan walks the station metadata document and returns the position of every
// station that has at least one met-enabled history entry. For stations with
// multiple entries the currently active deployment wins; a closed met-enabled
// deployment is used only when no active one exists.
func Scan(doc []byte) (map[string]Position, error) {
	dec := xml.NewDecoder(bytes.NewReader(doc))

	stations := make(map[string]Position)

	inStations := false
	var currentID string
	var picked *Position

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("station metadata parse error: %w", err)
		}

		switch el := tok.(type) {
		case xml.StartElement:
			switch el.Name.Local {
			case "stations":
				inStations = true
			case "station":
				if !inStations {
					continue
				}
				currentID = attrValue(el, "id")
				picked = nil
			case "history":
				if !inStations {
					continue
				}
				if pos, current, ok := historyCandidate(el); ok {
					if picked == nil || current {
						p := pos
						picked = &p
					}
				}
			}
		case xml.EndElement:
			switch el.Name.Local {
			case "station":
				if currentID != "" && picked != nil {
					stations[currentID] = *picked
				}
				currentID = ""
				picked = nil
			case "stations":
				inStations = false
				if len(stations) == 0 {
					return nil, ErrNoStations
				}
				return stations, nil
			}
		}
	}

	if len(stations) == 0 {
		return nil, ErrNoStations
	}
	return stations, nil
}

// historyCandidate extracts a candidate position from a history element.
// Only met="y" entries qualify. The second return reports whether the entry
// is the currently active deployment, i.e. its stop attribute is absent or
// empty.
func historyCandidate(el xml.StartElement) (Position, bool, bool) {
	met := false
	current := true
	var lat, lon *float64

	for _, attr := range el.Attr {
		switch attr.Name.Local {
		case "met":
			met = attr.Value == "y"
		case "stop":
			current = attr.Value == ""
		case "lat":
			if v, err := strconv.ParseFloat(attr.Value, 64); err == nil {
				lat = &v
			}
		case "lng":
			if v, err := strconv.ParseFloat(attr.Value, 64); err == nil {
				lon = &v
			}
		}
	}

	if !met || lat == nil || lon == nil {
		return Position{}, false, false
	}
	return Position{Lat: *lat, Lon: *lon}, current, true
}

func attrValue(el xml.StartElement, name string) string {
	for _, attr := range el.Attr {
		if attr.Name.Local == name {
			return attr.Value
		}
	}
	return ""
}

// StationIDs returns the ids present in positions, sorted for stable output.
func StationIDs(positions map[string]Position) []string {
	ids := make([]string, 0, len(positions))
	for id := range positions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
