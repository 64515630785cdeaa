package sink

import (
	"fmt"
	"os"

	"github.com/apache/arrow/go/v17/arrow"
	"github.com/apache/arrow/go/v17/arrow/array"
	"github.com/apache/arrow/go/v17/arrow/memory"
	"github.com/apache/arrow/go/v17/parquet"
	"github.com/apache/arrow/go/v17/parquet/compress"
	"github.com/apache/arrow/go/v17/parquet/pqarrow"

	"ndbc-data/internal/stdmet"
)

// outputSchema is the fixed column layout of every written file: the instant
// first, then the recognized fields in canonical order, then enrichment.
func outputSchema() *arrow.Schema {
	fields := make([]arrow.Field, 0, len(stdmet.FieldNames)+4)
	fields = append(fields, arrow.Field{Name: "time", Type: arrow.FixedWidthTypes.Timestamp_ms})
	for _, name := range stdmet.FieldNames {
		fields = append(fields, arrow.Field{Name: name, Type: arrow.PrimitiveTypes.Float64, Nullable: true})
	}
	fields = append(fields,
		arrow.Field{Name: "station_id", Type: arrow.BinaryTypes.String},
		arrow.Field{Name: "latitude", Type: arrow.PrimitiveTypes.Float64, Nullable: true},
		arrow.Field{Name: "longitude", Type: arrow.PrimitiveTypes.Float64, Nullable: true},
	)
	return arrow.NewSchema(fields, nil)
}

// buildRecord assembles an Arrow record from the table plus enrichment.
// The caller must Release the returned record.
func buildRecord(table *stdmet.Table, enrich Enrichment) arrow.Record {
	schema := outputSchema()
	bld := array.NewRecordBuilder(memory.DefaultAllocator, schema)
	defer bld.Release()

	timeBld := bld.Field(0).(*array.TimestampBuilder)
	for _, ms := range table.Times {
		timeBld.Append(arrow.Timestamp(ms))
	}

	for i, col := range table.Columns() {
		fieldBld := bld.Field(i + 1).(*array.Float64Builder)
		for row := range col.Values {
			if col.Valid[row] {
				fieldBld.Append(col.Values[row])
			} else {
				fieldBld.AppendNull()
			}
		}
	}

	rows := table.NumRows()
	stationBld := bld.Field(len(stdmet.FieldNames) + 1).(*array.StringBuilder)
	latBld := bld.Field(len(stdmet.FieldNames) + 2).(*array.Float64Builder)
	lonBld := bld.Field(len(stdmet.FieldNames) + 3).(*array.Float64Builder)
	for row := 0; row < rows; row++ {
		stationBld.Append(enrich.StationID)
		if enrich.Position != nil {
			latBld.Append(enrich.Position.Lat)
			lonBld.Append(enrich.Position.Lon)
		} else {
			latBld.AppendNull()
			lonBld.AppendNull()
		}
	}

	return bld.NewRecord()
}

// WriteParquet serializes the enriched table to a Parquet file at path,
// replacing any previous file of the same name.
func WriteParquet(path string, table *stdmet.Table, enrich Enrichment) error {
	if err := ensureDir(path); err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	rec := buildRecord(table, enrich)
	defer rec.Release()

	props := parquet.NewWriterProperties(parquet.WithCompression(compress.Codecs.Snappy))
	writer, err := pqarrow.NewFileWriter(rec.Schema(), file, props, pqarrow.DefaultWriterProps())
	if err != nil {
		return fmt.Errorf("create parquet writer: %w", err)
	}

	if err := writer.Write(rec); err != nil {
		writer.Close()
		return fmt.Errorf("write parquet record: %w", err)
	}
	return writer.Close()
}
