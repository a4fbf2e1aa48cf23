package loader

import (
	"sort"

	log "github.com/sirupsen/logrus"
)

// Report collects per-run counters for operator visibility. It is
// logged at the end of every run, committed or not.
type Report struct {
	Source      string
	File        string
	Year        int
	RowsRead    int
	RowsSkipped int
	Prepared    map[string]int
	NullAddress int
	Committed   bool
}

// NewReport creates an empty report for one run.
func NewReport(source, file string) *Report {
	return &Report{
		Source:   source,
		File:     file,
		Prepared: make(map[string]int),
	}
}

// Tables lists the target tables touched by the run, sorted for stable
// output.
func (r *Report) Tables() []string {
	tables := make([]string, 0, len(r.Prepared))
	for name := range r.Prepared {
		tables = append(tables, name)
	}
	sort.Strings(tables)
	return tables
}

// Log emits the run summary.
func (r *Report) Log() {
	entry := log.WithFields(log.Fields{
		"source":       r.Source,
		"file":         r.File,
		"year":         r.Year,
		"rows_read":    r.RowsRead,
		"rows_skipped": r.RowsSkipped,
		"null_address": r.NullAddress,
		"committed":    r.Committed,
	})
	if r.Committed {
		entry.Info("Load complete")
	} else {
		entry.Warn("Load did not commit")
	}
	for _, table := range r.Tables() {
		log.WithFields(log.Fields{
			"table": table,
			"rows":  r.Prepared[table],
		}).Info("Rows prepared")
	}
}
