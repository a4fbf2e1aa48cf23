package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/college-data/internal/loader"
)

func TestScorecardYear(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		want    int
		wantErr bool
	}{
		{name: "valid file name", path: "MERGED2019_PP.csv", want: 2019},
		{name: "valid file name with directory", path: "/data/MERGED2022_PP.csv", want: 2022},
		{name: "missing year", path: "MERGED_PP.csv", wantErr: true},
		{name: "wrong suffix", path: "MERGED2019.csv", wantErr: true},
		{name: "ipeds file rejected", path: "hd2021.csv", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			year, err := Scorecard.Year(tt.path)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, year)
		})
	}
}

func TestIPEDSYear(t *testing.T) {
	year, err := IPEDS.Year("/data/hd2021.csv")
	require.NoError(t, err)
	assert.Equal(t, 2021, year)

	year, err = IPEDS.Year("HD2019.csv")
	require.NoError(t, err)
	assert.Equal(t, 2019, year)

	_, err = IPEDS.Year("directory2021.csv")
	assert.Error(t, err)
}

func TestScorecardBind(t *testing.T) {
	tables, err := Scorecard.Bind(2019, []string{"UNITID", "INSTNM"})
	require.NoError(t, err)
	require.Len(t, tables, 4)

	names := make([]string, len(tables))
	for i, table := range tables {
		names[i] = table.Name
	}
	assert.Equal(t, []string{"Institutions", "Location", "Financial_Data", "Admissions_Data"}, names)

	assert.False(t, tables[0].WithYear, "institution dimension carries no year")
	assert.True(t, tables[2].WithYear, "financial records are yearly")
	assert.True(t, tables[3].WithYear, "admissions records are yearly")
	assert.Equal(t, loader.ConflictFillAddress, tables[1].Conflict)
	assert.Equal(t, loader.ConflictDoNothing, tables[0].Conflict)
}

func TestIPEDSBind(t *testing.T) {
	header := []string{
		"UNITID", "CBSA", "CBSATYPE", "CSA",
		"C21BASIC", "C21UGPRF", "C21SZSET", "C21IPUG", "C21IPGRD", "C21ENPRF",
		"LATITUDE", "LONGITUD",
	}

	tables, err := IPEDS.Bind(2022, header)
	require.NoError(t, err)
	require.Len(t, tables, 1)

	table := tables[0]
	assert.Equal(t, "IPEDS_Directory", table.Name)
	assert.True(t, table.WithYear)

	sources := make(map[string]string, len(table.Columns))
	for _, column := range table.Columns {
		sources[column.Name] = column.CSV
	}
	assert.Equal(t, "CBSA", sources["CBSA"])
	assert.Equal(t, "C21BASIC", sources["CCBASIC"])
	assert.Equal(t, "C21ENPRF", sources["CCENPROF"])
	assert.Equal(t, "LONGITUD", sources["LONGITUD"])
}

func TestIPEDSBindWithoutCarnegieColumns(t *testing.T) {
	_, err := IPEDS.Bind(2022, []string{"UNITID", "CBSA"})
	assert.Error(t, err)
}
