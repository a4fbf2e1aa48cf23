package handlers

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/jmoiron/sqlx"
)

// ExportHandler streams dashboard extracts as CSV downloads
type ExportHandler struct {
	DB     *sqlx.DB
	Config *Config
}

// ExportRequest represents an export request
type ExportRequest struct {
	Year int `json:"year"`
}

// CorrelationRow is one institution in the correlation extract
type CorrelationRow struct {
	Institution   string   `db:"institution_name" json:"institution_name"`
	InState       *float64 `db:"in_state_tuition" json:"in_state_tuition"`
	OutState      *float64 `db:"out_state_tuition" json:"out_state_tuition"`
	RepaymentRate *float64 `db:"loan_repayment_rate" json:"loan_repayment_rate"`
	FacultySalary *float64 `db:"avg_faculty_salary" json:"avg_faculty_salary"`
}

// correlationExtract fetches the per-institution tuition, repayment,
// and salary figures for one year.
func correlationExtract(db *sqlx.DB, year int) ([]CorrelationRow, error) {
	var rows []CorrelationRow
	err := db.Select(&rows, `
		SELECT
			inst.INSTNM AS institution_name,
			fin.TUITIONFEE_IN AS in_state_tuition,
			fin.TUITIONFEE_OUT AS out_state_tuition,
			fin.CDR3 AS loan_repayment_rate,
			fin.AVGFACSAL AS avg_faculty_salary
		FROM Financial_Data fin
		JOIN Institutions inst ON fin.UNITID = inst.UNITID
		WHERE fin.YEAR = $1
		ORDER BY inst.INSTNM
	`, year)
	return rows, err
}

// ExportData writes the correlation extract for one year as a CSV
// attachment.
func (h *ExportHandler) ExportData(w http.ResponseWriter, r *http.Request) {
	if !h.Config.Features.ExportEnabled {
		http.Error(w, "Export feature disabled", http.StatusForbidden)
		return
	}

	var exportReq ExportRequest
	if err := json.NewDecoder(r.Body).Decode(&exportReq); err != nil {
		http.Error(w, "Invalid JSON request", http.StatusBadRequest)
		return
	}
	if exportReq.Year == 0 {
		http.Error(w, "year is required", http.StatusBadRequest)
		return
	}

	rows, err := correlationExtract(h.DB, exportReq.Year)
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf(`attachment; filename="correlation_%d.csv"`, exportReq.Year))

	writer := csv.NewWriter(w)
	defer writer.Flush()

	writer.Write([]string{
		"institution_name", "in_state_tuition", "out_state_tuition",
		"loan_repayment_rate", "avg_faculty_salary",
	})
	for _, row := range rows {
		writer.Write([]string{
			row.Institution,
			formatFloat(row.InState),
			formatFloat(row.OutState),
			formatFloat(row.RepaymentRate),
			formatFloat(row.FacultySalary),
		})
	}
}

func formatFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
