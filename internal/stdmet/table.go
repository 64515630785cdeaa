package stdmet

// FieldNames lists the recognized standard met observation fields in their
// canonical output order. Every parsed table carries exactly these columns
// after the time column, regardless of which ones the feed's header declared.
var FieldNames = []string{
	"WDIR", "WSPD", "GST", "WVHT", "DPD", "APD", "MWD",
	"PRES", "ATMP", "WTMP", "DEWP", "VIS", "PTDY", "TIDE",
}

// Column is a nullable float64 column. Values and Valid always have the same
// length; Valid[i] reports whether Values[i] holds a reading.
type Column struct {
	Name   string
	Values []float64
	Valid  []bool
}

// Value returns the i-th entry and whether it is present.
func (c *Column) Value(i int) (float64, bool) {
	if !c.Valid[i] {
		return 0, false
	}
	return c.Values[i], true
}

func (c *Column) append(v float64) {
	c.Values = append(c.Values, v)
	c.Valid = append(c.Valid, true)
}

func (c *Column) appendNull() {
	c.Values = append(c.Values, 0)
	c.Valid = append(c.Valid, false)
}

// Table holds parsed observations in encounter order: one timestamp per row
// plus the fixed set of recognized field columns.
type Table struct {
	// Times are UTC milliseconds since the epoch, one per row.
	Times []int64

	cols map[string]*Column
}

// NewTable returns an empty table with all recognized columns present.
func NewTable() *Table {
	cols := make(map[string]*Column, len(FieldNames))
	for _, name := range FieldNames {
		cols[name] = &Column{Name: name}
	}
	return &Table{cols: cols}
}

// NumRows reports the number of observation rows.
func (t *Table) NumRows() int {
	return len(t.Times)
}

// Column returns the named field column, or nil for unknown names.
func (t *Table) Column(name string) *Column {
	return t.cols[name]
}

// Columns returns the field columns in canonical order.
func (t *Table) Columns() []*Column {
	out := make([]*Column, len(FieldNames))
	for i, name := range FieldNames {
		out[i] = t.cols[name]
	}
	return out
}
