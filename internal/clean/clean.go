package clean

import (
	"database/sql"
	"strings"
)

// Sentinel tokens the source vendors use for "no value". PrivacySuppressed
// appears in College Scorecard extracts where a cell was redacted.
var sentinels = map[string]struct{}{
	"":                  {},
	"-999":              {},
	"-2":                {},
	"NULL":              {},
	"PrivacySuppressed": {},
}

// Value maps a raw CSV field onto its stored representation. Sentinel
// tokens become SQL NULL; anything else passes through trimmed. Every
// column goes through this before any downstream use.
func Value(raw string) sql.NullString {
	trimmed := strings.TrimSpace(raw)
	if _, absent := sentinels[trimmed]; absent {
		return sql.NullString{}
	}
	return sql.NullString{String: trimmed, Valid: true}
}

// Absent is the stored representation of a field the file never had.
func Absent() sql.NullString {
	return sql.NullString{}
}
