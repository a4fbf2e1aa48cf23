package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })
	return sqlx.NewDb(mockDB, "sqlmock"), mock
}

func TestInstitutionsByType(t *testing.T) {
	db, mock := newMockDB(t)
	handler := &StatsHandler{DB: db, Config: &Config{}}

	mock.ExpectQuery("SELECT inst.CONTROL AS type").
		WithArgs(2021).
		WillReturnRows(sqlmock.NewRows([]string{"type", "num_institutions"}).
			AddRow("1", 1625).
			AddRow("2", 1660).
			AddRow("3", 890))

	req := httptest.NewRequest(http.MethodGet, "/api/institutions/types?year=2021", nil)
	rec := httptest.NewRecorder()
	handler.InstitutionsByType(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"Public"`)
	assert.Contains(t, body, `"Private non-profit"`)
	assert.Contains(t, body, `"Private for-profit"`)
	assert.Contains(t, body, `"year":2021`)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestInstitutionsByTypeRequiresYear(t *testing.T) {
	db, _ := newMockDB(t)
	handler := &StatsHandler{DB: db, Config: &Config{}}

	req := httptest.NewRequest(http.MethodGet, "/api/institutions/types", nil)
	rec := httptest.NewRecorder()
	handler.InstitutionsByType(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestInstitutionsByState(t *testing.T) {
	db, mock := newMockDB(t)
	handler := &StatsHandler{DB: db, Config: &Config{}}

	mock.ExpectQuery("SELECT loc.STABBR AS state, inst.CONTROL AS type").
		WithArgs(2021).
		WillReturnRows(sqlmock.NewRows([]string{"state", "type", "num_institutions"}).
			AddRow("PA", "1", 60).
			AddRow("PA", "2", 90))
	mock.ExpectQuery("SELECT loc.STABBR AS state, COUNT").
		WithArgs(2021).
		WillReturnRows(sqlmock.NewRows([]string{"state", "num_institutions"}).
			AddRow("PA", 150))

	req := httptest.NewRequest(http.MethodGet, "/api/institutions/states?year=2021", nil)
	rec := httptest.NewRecorder()
	handler.InstitutionsByState(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"state_totals"`)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestControlLabel(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"1", "Public"},
		{"2", "Private non-profit"},
		{"3", "Private for-profit"},
		{"4", "Foreign"},
		{"9", "9"},
	}

	for _, tt := range tests {
		if got := ControlLabel(tt.code); got != tt.want {
			t.Errorf("ControlLabel(%q) = %q, want %q", tt.code, got, tt.want)
		}
	}
}
