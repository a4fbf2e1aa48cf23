package handlers

import (
	"net/http"

	"github.com/jmoiron/sqlx"
)

// TuitionHandler serves tuition rate aggregates
type TuitionHandler struct {
	DB     *sqlx.DB
	Config *Config
}

// TuitionSummary is one aggregate bucket. Averages can be NULL when a
// bucket has no priced institutions.
type TuitionSummary struct {
	State          *string  `db:"state" json:"state,omitempty"`
	Classification *string  `db:"carnegie_classification" json:"carnegie_classification"`
	AvgInState     *float64 `db:"avg_in_state_tuition" json:"avg_in_state_tuition"`
	AvgOutState    *float64 `db:"avg_out_state_tuition" json:"avg_out_state_tuition"`
}

// ByState returns average tuition by state and Carnegie classification
// for one year.
func (h *TuitionHandler) ByState(w http.ResponseWriter, r *http.Request) {
	year, err := yearParam(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var summary []TuitionSummary
	err = h.DB.Select(&summary, `
		SELECT
			loc.STABBR AS state,
			ipeds.CCBASIC AS carnegie_classification,
			AVG(fin.TUITIONFEE_IN) AS avg_in_state_tuition,
			AVG(fin.TUITIONFEE_OUT) AS avg_out_state_tuition
		FROM Financial_Data fin
		JOIN Institutions inst ON fin.UNITID = inst.UNITID
		JOIN Location loc ON inst.UNITID = loc.UNITID
		JOIN IPEDS_Directory ipeds ON fin.UNITID = ipeds.UNITID AND fin.YEAR = ipeds.YEAR
		WHERE fin.YEAR = $1
		GROUP BY loc.STABBR, ipeds.CCBASIC
		ORDER BY loc.STABBR, ipeds.CCBASIC
	`, year)
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, map[string]interface{}{
		"year":    year,
		"summary": summary,
	})
}

// ByClassification returns average tuition by Carnegie classification
// for one year.
func (h *TuitionHandler) ByClassification(w http.ResponseWriter, r *http.Request) {
	year, err := yearParam(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var summary []TuitionSummary
	err = h.DB.Select(&summary, `
		SELECT
			ipeds.CCBASIC AS carnegie_classification,
			AVG(fin.TUITIONFEE_IN) AS avg_in_state_tuition,
			AVG(fin.TUITIONFEE_OUT) AS avg_out_state_tuition
		FROM Financial_Data fin
		JOIN Institutions inst ON fin.UNITID = inst.UNITID
		JOIN IPEDS_Directory ipeds ON fin.UNITID = ipeds.UNITID AND fin.YEAR = ipeds.YEAR
		WHERE fin.YEAR = $1
		GROUP BY ipeds.CCBASIC
		ORDER BY ipeds.CCBASIC
	`, year)
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, map[string]interface{}{
		"year":    year,
		"summary": summary,
	})
}
