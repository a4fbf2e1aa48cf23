package loader

import (
	"fmt"
	"strings"
)

// Conflict selects how a table resolves duplicate keys.
type Conflict int

const (
	// ConflictDoNothing keeps the first writer's row; later duplicates
	// are silently ignored.
	ConflictDoNothing Conflict = iota
	// ConflictFillAddress fills in ADDRESS when the stored value is
	// absent or empty, never overwriting a present value.
	ConflictFillAddress
)

// Column binds one schema column to the CSV column that feeds it. An
// empty CSV name means the file has no source column; every row gets
// NULL there.
type Column struct {
	Name string
	CSV  string
}

// Columns builds a Column list where schema and CSV names coincide.
func Columns(names ...string) []Column {
	columns := make([]Column, len(names))
	for i, name := range names {
		columns[i] = Column{Name: name, CSV: name}
	}
	return columns
}

// Table describes one insert target for a run. Every table is keyed by
// UNITID; yearly tables additionally carry the run's YEAR as the first
// column.
type Table struct {
	Name     string
	WithYear bool
	Columns  []Column
	Conflict Conflict
}

// columnNames lists the full insert column order, keys included.
func (t Table) columnNames() []string {
	names := make([]string, 0, len(t.Columns)+2)
	if t.WithYear {
		names = append(names, "YEAR")
	}
	names = append(names, "UNITID")
	for _, c := range t.Columns {
		names = append(names, c.Name)
	}
	return names
}

// width is the number of values in one row tuple.
func (t Table) width() int {
	n := len(t.Columns) + 1
	if t.WithYear {
		n++
	}
	return n
}

// insertStatement builds one parameterized multi-row insert for a
// batch of rowCount tuples.
func (t Table) insertStatement(rowCount int) string {
	var b strings.Builder
	b.WriteString("INSERT INTO ")
	b.WriteString(t.Name)
	b.WriteString(" (")
	b.WriteString(strings.Join(t.columnNames(), ", "))
	b.WriteString(") VALUES ")

	width := t.width()
	placeholder := 1
	for row := 0; row < rowCount; row++ {
		if row > 0 {
			b.WriteString(", ")
		}
		b.WriteByte('(')
		for col := 0; col < width; col++ {
			if col > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "$%d", placeholder)
			placeholder++
		}
		b.WriteByte(')')
	}

	switch t.Conflict {
	case ConflictFillAddress:
		fmt.Fprintf(&b,
			" ON CONFLICT (UNITID) DO UPDATE SET ADDRESS = EXCLUDED.ADDRESS WHERE %s.ADDRESS IS NULL OR %s.ADDRESS = ''",
			t.Name, t.Name)
	default:
		b.WriteString(" ON CONFLICT DO NOTHING")
	}
	return b.String()
}
