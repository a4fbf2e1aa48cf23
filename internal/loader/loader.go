package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/jmoiron/sqlx"

	"github.com/college-data/internal/clean"
	"github.com/college-data/internal/guard"
)

// DefaultBatchSize bounds how many rows one insert statement carries.
const DefaultBatchSize = 1000

// Loader streams CSV rows into the target store in bounded batches
// inside a single all-or-nothing transaction.
type Loader struct {
	db        *sqlx.DB
	batchSize int
}

// New creates a loader. A non-positive batch size falls back to the
// default.
func New(db *sqlx.DB, batchSize int) *Loader {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	return &Loader{db: db, batchSize: batchSize}
}

// Run ingests one CSV file for one source. Row-level problems are
// counted and skipped; configuration and store errors abort the run
// and roll back the whole transaction. The report is always produced.
func (l *Loader) Run(src *Source, path string) (*Report, error) {
	report := NewReport(src.Name, path)
	defer report.Log()

	year, err := src.Year(path)
	if err != nil {
		return report, err
	}
	report.Year = year

	file, err := os.Open(path)
	if err != nil {
		return report, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return report, fmt.Errorf("failed to read CSV header: %w", err)
	}

	tables, err := src.Bind(year, header)
	if err != nil {
		return report, err
	}

	index := make(map[string]int, len(header))
	for i, col := range header {
		index[col] = i
	}
	unitidIdx, ok := index["UNITID"]
	if !ok {
		return report, fmt.Errorf("%s file %s has no UNITID column", src.Name, path)
	}

	tx, err := l.db.Beginx()
	if err != nil {
		return report, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var known *guard.Known
	if src.CheckUnitIDs {
		known, err = guard.Load(tx)
		if err != nil {
			return report, err
		}
	}

	accepted := make([][][]interface{}, len(tables))

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			report.RowsSkipped++
			continue
		}
		report.RowsRead++

		if unitidIdx >= len(record) {
			report.RowsSkipped++
			continue
		}
		id, ok := guard.ParseID(record[unitidIdx])
		if !ok {
			report.RowsSkipped++
			continue
		}
		if known != nil && !known.Contains(id) {
			report.RowsSkipped++
			continue
		}

		for ti, table := range tables {
			tuple := make([]interface{}, 0, table.width())
			if table.WithYear {
				tuple = append(tuple, year)
			}
			tuple = append(tuple, id)
			for _, column := range table.Columns {
				value := clean.Absent()
				if column.CSV != "" {
					if idx, ok := index[column.CSV]; ok && idx < len(record) {
						value = clean.Value(record[idx])
					}
				}
				if column.Name == "ADDRESS" && !value.Valid {
					report.NullAddress++
				}
				tuple = append(tuple, value)
			}
			accepted[ti] = append(accepted[ti], tuple)
			report.Prepared[table.Name]++
		}

		if report.RowsRead%1000 == 0 {
			fmt.Printf("Read %d rows...\n", report.RowsRead)
		}
	}

	for ti, table := range tables {
		if err := l.flush(tx, table, accepted[ti]); err != nil {
			return report, err
		}
	}

	if err := tx.Commit(); err != nil {
		return report, fmt.Errorf("failed to commit: %w", err)
	}
	report.Committed = true
	return report, nil
}

// flush writes one table's accepted rows in fixed-size batches, one
// parameterized statement per batch.
func (l *Loader) flush(tx *sqlx.Tx, table Table, rows [][]interface{}) error {
	for start := 0; start < len(rows); start += l.batchSize {
		end := start + l.batchSize
		if end > len(rows) {
			end = len(rows)
		}
		batch := rows[start:end]

		args := make([]interface{}, 0, len(batch)*table.width())
		for _, tuple := range batch {
			args = append(args, tuple...)
		}
		if _, err := tx.Exec(table.insertStatement(len(batch)), args...); err != nil {
			return fmt.Errorf("batch insert into %s failed: %w", table.Name, err)
		}
	}
	return nil
}
