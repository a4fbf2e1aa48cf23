package loader

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
)

// Source describes one vendor dataset the loader can ingest: how to
// read the year out of a file name, whether rows must reference an
// already-stored institution, and how to bind insert targets against
// the header actually present in the file.
type Source struct {
	Name string

	// FilePattern must capture a 4-digit year as its first group.
	FilePattern *regexp.Regexp

	// CheckUnitIDs rejects rows whose UNITID is not already in the
	// Institutions table. Sources that create institutions leave this
	// off.
	CheckUnitIDs bool

	// Bind resolves the source's tables against a concrete file
	// header. Binding failures are configuration errors and abort the
	// run before any row is read.
	Bind func(year int, header []string) ([]Table, error)
}

// Year extracts the academic year encoded in a data file's name.
func (s *Source) Year(path string) (int, error) {
	base := filepath.Base(path)
	m := s.FilePattern.FindStringSubmatch(base)
	if m == nil {
		return 0, fmt.Errorf("%s file name %q does not match expected pattern %s", s.Name, base, s.FilePattern)
	}
	year, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, fmt.Errorf("%s file name %q has invalid year: %w", s.Name, base, err)
	}
	return year, nil
}
