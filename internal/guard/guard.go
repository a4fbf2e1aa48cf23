package guard

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jmoiron/sqlx"
)

// Known holds the set of institution identifiers already present in
// the store. It is loaded once per run so per-row checks never touch
// the database.
type Known struct {
	ids map[int]struct{}
}

// Load reads every UNITID from the Institutions table within the
// current transaction scope.
func Load(q sqlx.Queryer) (*Known, error) {
	rows, err := q.Query("SELECT UNITID FROM Institutions")
	if err != nil {
		return nil, fmt.Errorf("failed to load institution ids: %w", err)
	}
	defer rows.Close()

	known := &Known{ids: make(map[int]struct{})}
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan institution id: %w", err)
		}
		known.ids[id] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read institution ids: %w", err)
	}
	return known, nil
}

// FromIDs builds a set directly, for tests and callers that already
// hold the identifiers.
func FromIDs(ids ...int) *Known {
	known := &Known{ids: make(map[int]struct{}, len(ids))}
	for _, id := range ids {
		known.ids[id] = struct{}{}
	}
	return known
}

// Len reports how many identifiers were preloaded.
func (k *Known) Len() int {
	return len(k.ids)
}

// Contains reports whether an identifier references a stored institution.
func (k *Known) Contains(id int) bool {
	_, ok := k.ids[id]
	return ok
}

// Check parses a raw identifier and tests membership. Empty,
// non-numeric, or unknown identifiers are rejected; rejection is the
// caller's to count, never a failure.
func (k *Known) Check(raw string) (int, bool) {
	id, ok := ParseID(raw)
	if !ok {
		return 0, false
	}
	return id, k.Contains(id)
}

// ParseID parses a raw UNITID field. Identifiers are typed integers;
// anything empty or non-numeric is malformed.
func ParseID(raw string) (int, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, false
	}
	id, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, false
	}
	return id, true
}
