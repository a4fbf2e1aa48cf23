package ipeds

import (
	"testing"
)

func TestCarnegiePrefix(t *testing.T) {
	tests := []struct {
		year int
		want string
	}{
		{2022, "C21"},
		{2019, "C18"},
		{2016, "C15"},
		{2001, "C00"},
	}

	for _, tt := range tests {
		if got := CarnegiePrefix(tt.year); got != tt.want {
			t.Errorf("CarnegiePrefix(%d) = %q, want %q", tt.year, got, tt.want)
		}
	}
}

func TestResolveCarnegie(t *testing.T) {
	tests := []struct {
		name    string
		year    int
		header  []string
		want    Mapping
		wantErr bool
	}{
		{
			name: "expected generation present",
			year: 2022,
			header: []string{
				"UNITID", "CBSA",
				"C21BASIC", "C21UGPRF", "C21SZSET", "C21IPUG", "C21IPGRD", "C21ENPRF",
			},
			want: Mapping{
				"CCBASIC":  "C21BASIC",
				"CCUGPROF": "C21UGPRF",
				"CCSIZSET": "C21SZSET",
				"CCUGINST": "C21IPUG",
				"CCGIP":    "C21IPGRD",
				"CCENPROF": "C21ENPRF",
			},
		},
		{
			name: "missing suffixes map to no source column",
			year: 2022,
			header: []string{
				"UNITID", "C21BASIC", "C21SZSET",
			},
			want: Mapping{
				"CCBASIC":  "C21BASIC",
				"CCUGPROF": "",
				"CCSIZSET": "C21SZSET",
				"CCUGINST": "",
				"CCGIP":    "",
				"CCENPROF": "",
			},
		},
		{
			name: "falls back to the generation actually found",
			year: 2022,
			header: []string{
				"UNITID",
				"C18BASIC", "C18UGPRF", "C18SZSET", "C18IPUG", "C18IPGRD", "C18ENPRF",
			},
			want: Mapping{
				"CCBASIC":  "C18BASIC",
				"CCUGPROF": "C18UGPRF",
				"CCSIZSET": "C18SZSET",
				"CCUGINST": "C18IPUG",
				"CCGIP":    "C18IPGRD",
				"CCENPROF": "C18ENPRF",
			},
		},
		{
			name:    "no generation at all fails",
			year:    2022,
			header:  []string{"UNITID", "CBSA", "LATITUDE", "LONGITUD"},
			wantErr: true,
		},
		{
			name:    "lookalike columns without a known suffix do not count",
			year:    2022,
			header:  []string{"UNITID", "C21OTHER", "CIPCODE"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveCarnegie(tt.year, tt.header)

			if tt.wantErr {
				if err == nil {
					t.Fatalf("ResolveCarnegie(%d, %v) expected error, got %v", tt.year, tt.header, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ResolveCarnegie(%d, %v) unexpected error: %v", tt.year, tt.header, err)
			}

			if len(got) != len(tt.want) {
				t.Fatalf("ResolveCarnegie() mapped %d columns, want %d", len(got), len(tt.want))
			}
			for column, source := range tt.want {
				if got[column] != source {
					t.Errorf("ResolveCarnegie() %s = %q, want %q", column, got[column], source)
				}
			}
		})
	}
}
