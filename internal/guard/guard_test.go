package guard

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheck(t *testing.T) {
	known := FromIDs(1, 2, 3)

	tests := []struct {
		name       string
		raw        string
		wantID     int
		wantAccept bool
	}{
		{name: "known identifier accepted", raw: "1", wantID: 1, wantAccept: true},
		{name: "unknown identifier rejected", raw: "4", wantAccept: false},
		{name: "empty identifier rejected", raw: "", wantAccept: false},
		{name: "non-numeric identifier rejected", raw: "abc", wantAccept: false},
		{name: "whitespace identifier rejected", raw: "   ", wantAccept: false},
		{name: "padded known identifier accepted", raw: " 2 ", wantID: 2, wantAccept: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := known.Check(tt.raw)
			assert.Equal(t, tt.wantAccept, ok)
			if tt.wantAccept {
				assert.Equal(t, tt.wantID, id)
			}
		})
	}

	// Of the candidates [1, 4, "", "abc"] exactly one passes.
	accepted := 0
	for _, raw := range []string{"1", "4", "", "abc"} {
		if _, ok := known.Check(raw); ok {
			accepted++
		}
	}
	assert.Equal(t, 1, accepted)
}

func TestParseID(t *testing.T) {
	if _, ok := ParseID("100654"); !ok {
		t.Error("ParseID should accept a plain integer")
	}
	if _, ok := ParseID("10.5"); ok {
		t.Error("ParseID should reject a non-integer")
	}
}

func TestLoad(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()
	db := sqlx.NewDb(mockDB, "sqlmock")

	mock.ExpectQuery("SELECT UNITID FROM Institutions").
		WillReturnRows(sqlmock.NewRows([]string{"unitid"}).AddRow(100654).AddRow(100663))

	known, err := Load(db)
	require.NoError(t, err)

	assert.Equal(t, 2, known.Len())
	assert.True(t, known.Contains(100654))
	assert.False(t, known.Contains(999999))
	require.NoError(t, mock.ExpectationsWereMet())
}
