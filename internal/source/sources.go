package source

import (
	"regexp"

	"github.com/college-data/internal/ipeds"
	"github.com/college-data/internal/loader"
)

// Scorecard ingests a College Scorecard extract. One file fans out to
// four tables: the institution dimension, its location, and the yearly
// financial and admissions records. This source creates the
// institutions, so the referential check stays off.
var Scorecard = &loader.Source{
	Name:        "scorecard",
	FilePattern: regexp.MustCompile(`^MERGED(\d{4})_PP\.csv$`),
	Bind: func(year int, header []string) ([]loader.Table, error) {
		return []loader.Table{
			{
				Name:    "Institutions",
				Columns: loader.Columns("OPEID", "INSTNM", "CONTROL", "ACCREDAGENCY", "PREDDEG", "HIGHDEG"),
			},
			{
				Name:     "Location",
				Columns:  loader.Columns("REGION", "ST_FIPS", "ADDRESS", "CITY", "STABBR", "ZIP"),
				Conflict: loader.ConflictFillAddress,
			},
			{
				Name:     "Financial_Data",
				WithYear: true,
				Columns:  loader.Columns("TUITIONFEE_IN", "TUITIONFEE_OUT", "TUITIONFEE_PROG", "TUITFTE", "AVGFACSAL", "CDR2", "CDR3"),
			},
			{
				Name:     "Admissions_Data",
				WithYear: true,
				Columns:  loader.Columns("ADM_RATE", "GRAD_DEBT_MDN", "SATMTMID", "ACTMTMID"),
			},
		}, nil
	},
}

// IPEDS ingests an IPEDS institutional directory file into the yearly
// directory table. Rows for institutions the store has never seen are
// excluded. The Carnegie classification columns are resolved per file
// because their names carry a year prefix.
var IPEDS = &loader.Source{
	Name:         "ipeds",
	FilePattern:  regexp.MustCompile(`(?i)^hd(\d{4})\.csv$`),
	CheckUnitIDs: true,
	Bind: func(year int, header []string) ([]loader.Table, error) {
		carnegie, err := ipeds.ResolveCarnegie(year, header)
		if err != nil {
			return nil, err
		}

		columns := loader.Columns("CBSA", "CBSATYPE", "CSA")
		for _, name := range ipeds.CarnegieColumns() {
			columns = append(columns, loader.Column{Name: name, CSV: carnegie[name]})
		}
		columns = append(columns, loader.Columns("LATITUDE", "LONGITUD")...)

		return []loader.Table{
			{
				Name:     "IPEDS_Directory",
				WithYear: true,
				Columns:  columns,
			},
		}, nil
	},
}
