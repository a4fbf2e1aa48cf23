package ipeds

import (
	"fmt"
	"regexp"
	"sort"

	log "github.com/sirupsen/logrus"
)

// The IPEDS directory file stamps its Carnegie classification columns
// with a two-digit academic-year prefix that the vendor bumps each
// publication cycle (C18BASIC, C21BASIC, ...). The schema keeps one
// stable name per field regardless of which generation a file carries.
var carnegieFields = []struct {
	suffix string
	column string
}{
	{"BASIC", "CCBASIC"},
	{"UGPRF", "CCUGPROF"},
	{"SZSET", "CCSIZSET"},
	{"IPUG", "CCUGINST"},
	{"IPGRD", "CCGIP"},
	{"ENPRF", "CCENPROF"},
}

var carnegiePattern = regexp.MustCompile(`^(C\d{2})(BASIC|UGPRF|SZSET|IPUG|IPGRD|ENPRF)$`)

// Mapping relates stable schema column names to the CSV columns that
// carry them in one file. An empty CSV name means the file has no
// source column for that field.
type Mapping map[string]string

// CarnegiePrefix returns the column prefix expected for a file year.
// The vendor uses the two-digit year preceding the file year: a 2022
// directory file carries C21* columns.
func CarnegiePrefix(year int) string {
	return fmt.Sprintf("C%02d", (year-1)%100)
}

// ResolveCarnegie determines which Carnegie column generation is
// present in a file header and maps each schema column to its source
// column. When the expected generation is absent it falls back to the
// generation actually found and warns; a header with no Carnegie
// columns at all cannot be interpreted.
func ResolveCarnegie(year int, header []string) (Mapping, error) {
	present := make(map[string]struct{}, len(header))
	generations := make(map[string]struct{})
	for _, col := range header {
		present[col] = struct{}{}
		if m := carnegiePattern.FindStringSubmatch(col); m != nil {
			generations[m[1]] = struct{}{}
		}
	}

	if len(generations) == 0 {
		return nil, fmt.Errorf("no Carnegie classification columns in header for year %d (expected prefix %s)", year, CarnegiePrefix(year))
	}

	prefix := CarnegiePrefix(year)
	if _, ok := generations[prefix]; !ok {
		found := make([]string, 0, len(generations))
		for p := range generations {
			found = append(found, p)
		}
		sort.Strings(found)
		log.WithFields(log.Fields{
			"expected": prefix,
			"using":    found[0],
		}).Warn("Expected Carnegie column generation not in header, falling back")
		prefix = found[0]
	}

	mapping := make(Mapping, len(carnegieFields))
	for _, f := range carnegieFields {
		source := prefix + f.suffix
		if _, ok := present[source]; ok {
			mapping[f.column] = source
		} else {
			mapping[f.column] = ""
		}
	}
	return mapping, nil
}

// CarnegieColumns lists the stable schema column names in insert order.
func CarnegieColumns() []string {
	columns := make([]string, len(carnegieFields))
	for i, f := range carnegieFields {
		columns[i] = f.column
	}
	return columns
}
