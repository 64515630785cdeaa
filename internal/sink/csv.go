package sink

import (
	"encoding/csv"
	"os"
	"strconv"
	"time"

	"ndbc-data/internal/stdmet"
)

// WriteCSV serializes the enriched table as CSV with the same column layout
// as the Parquet output. Absent readings become empty cells.
func WriteCSV(path string, table *stdmet.Table, enrich Enrichment) error {
	if err := ensureDir(path); err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := make([]string, 0, len(stdmet.FieldNames)+4)
	header = append(header, "time")
	header = append(header, stdmet.FieldNames...)
	header = append(header, "station_id", "latitude", "longitude")
	if err := writer.Write(header); err != nil {
		return err
	}

	lat, lon := "", ""
	if enrich.Position != nil {
		lat = formatFloat(enrich.Position.Lat)
		lon = formatFloat(enrich.Position.Lon)
	}

	cols := table.Columns()
	for row := 0; row < table.NumRows(); row++ {
		record := make([]string, 0, len(header))
		record = append(record, time.UnixMilli(table.Times[row]).UTC().Format(time.RFC3339))
		for _, col := range cols {
			if v, ok := col.Value(row); ok {
				record = append(record, formatFloat(v))
			} else {
				record = append(record, "")
			}
		}
		record = append(record, enrich.StationID, lat, lon)
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	return writer.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
