package handlers

import (
	"net/http"

	"github.com/jmoiron/sqlx"
)

// FinanceHandler serves repayment, salary, debt, and trend aggregates
type FinanceHandler struct {
	DB     *sqlx.DB
	Config *Config
}

// RepaymentExtreme is one institution at either end of the CDR3 range
type RepaymentExtreme struct {
	Institution   string   `db:"institution_name" json:"institution_name"`
	State         *string  `db:"state" json:"state"`
	RepaymentRate *float64 `db:"loan_repayment_rate" json:"loan_repayment_rate"`
	Category      string   `db:"category" json:"category"`
}

// TrendPoint is one yearly average for one institution type
type TrendPoint struct {
	Year  int      `db:"year" json:"year"`
	Type  string   `db:"type" json:"type"`
	Value *float64 `db:"value" json:"value"`
}

// DebtPoint is one yearly median-debt average
type DebtPoint struct {
	Year        int      `db:"year" json:"year"`
	AvgGradDebt *float64 `db:"avg_grad_debt" json:"avg_grad_debt"`
}

// SalaryRow is one institution in the top-salary ranking
type SalaryRow struct {
	Institution   string   `db:"institution_name" json:"institution_name"`
	FacultySalary *float64 `db:"avg_faculty_salary" json:"avg_faculty_salary"`
	InState       *float64 `db:"in_state_tuition" json:"in_state_tuition"`
	OutState      *float64 `db:"out_state_tuition" json:"out_state_tuition"`
	Type          string   `db:"type" json:"type"`
}

// trendQueries maps the metric parameter onto its aggregate column.
var trendQueries = map[string]string{
	"in_state_tuition": `
		SELECT fin.YEAR AS year, inst.CONTROL AS type, AVG(fin.TUITIONFEE_IN) AS value
		FROM Financial_Data fin
		JOIN Institutions inst ON fin.UNITID = inst.UNITID
		GROUP BY fin.YEAR, inst.CONTROL
		ORDER BY fin.YEAR, inst.CONTROL`,
	"out_state_tuition": `
		SELECT fin.YEAR AS year, inst.CONTROL AS type, AVG(fin.TUITIONFEE_OUT) AS value
		FROM Financial_Data fin
		JOIN Institutions inst ON fin.UNITID = inst.UNITID
		GROUP BY fin.YEAR, inst.CONTROL
		ORDER BY fin.YEAR, inst.CONTROL`,
	"repayment": `
		SELECT fin.YEAR AS year, inst.CONTROL AS type, AVG(fin.CDR3) AS value
		FROM Financial_Data fin
		JOIN Institutions inst ON fin.UNITID = inst.UNITID
		GROUP BY fin.YEAR, inst.CONTROL
		ORDER BY fin.YEAR, inst.CONTROL`,
}

// RepaymentExtremes returns the five best and five worst institutions
// by three-year cohort default rate for one year.
func (h *FinanceHandler) RepaymentExtremes(w http.ResponseWriter, r *http.Request) {
	year, err := yearParam(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var extremes []RepaymentExtreme
	err = h.DB.Select(&extremes, `
		(
			SELECT inst.INSTNM AS institution_name, loc.STABBR AS state,
				fin.CDR3 AS loan_repayment_rate, 'Best' AS category
			FROM Institutions inst
			JOIN Location loc ON inst.UNITID = loc.UNITID
			JOIN Financial_Data fin ON inst.UNITID = fin.UNITID
			WHERE fin.YEAR = $1
			ORDER BY fin.CDR3 ASC
			LIMIT 5
		)
		UNION
		(
			SELECT inst.INSTNM AS institution_name, loc.STABBR AS state,
				fin.CDR3 AS loan_repayment_rate, 'Worst' AS category
			FROM Institutions inst
			JOIN Location loc ON inst.UNITID = loc.UNITID
			JOIN Financial_Data fin ON inst.UNITID = fin.UNITID
			WHERE fin.YEAR = $2
			ORDER BY fin.CDR3 DESC
			LIMIT 5
		)
		ORDER BY category, loan_repayment_rate
	`, year, year)
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, map[string]interface{}{
		"year":     year,
		"extremes": extremes,
	})
}

// Trends returns yearly averages of one metric broken down by
// institution type.
func (h *FinanceHandler) Trends(w http.ResponseWriter, r *http.Request) {
	metric := r.URL.Query().Get("metric")
	query, ok := trendQueries[metric]
	if !ok {
		http.Error(w, "Unknown metric; expected in_state_tuition, out_state_tuition, or repayment", http.StatusBadRequest)
		return
	}

	var points []TrendPoint
	if err := h.DB.Select(&points, query); err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	for i := range points {
		points[i].Type = ControlLabel(points[i].Type)
	}

	writeJSON(w, map[string]interface{}{
		"metric": metric,
		"trend":  points,
	})
}

// DebtTrend returns the average median graduate debt per year.
func (h *FinanceHandler) DebtTrend(w http.ResponseWriter, r *http.Request) {
	var points []DebtPoint
	err := h.DB.Select(&points, `
		SELECT YEAR AS year, AVG(GRAD_DEBT_MDN) AS avg_grad_debt
		FROM Admissions_Data
		WHERE GRAD_DEBT_MDN IS NOT NULL
		GROUP BY YEAR
		ORDER BY YEAR
	`)
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, map[string]interface{}{
		"trend": points,
	})
}

// TopSalaries returns the ten institutions with the highest average
// faculty salary, with tuition context.
func (h *FinanceHandler) TopSalaries(w http.ResponseWriter, r *http.Request) {
	var rows []SalaryRow
	err := h.DB.Select(&rows, `
		SELECT
			inst.INSTNM AS institution_name,
			fin.AVGFACSAL AS avg_faculty_salary,
			fin.TUITIONFEE_IN AS in_state_tuition,
			fin.TUITIONFEE_OUT AS out_state_tuition,
			inst.CONTROL AS type
		FROM Financial_Data fin
		JOIN Institutions inst ON fin.UNITID = inst.UNITID
		WHERE fin.AVGFACSAL IS NOT NULL
		ORDER BY fin.AVGFACSAL DESC
		LIMIT 10
	`)
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	for i := range rows {
		rows[i].Type = ControlLabel(rows[i].Type)
	}

	writeJSON(w, map[string]interface{}{
		"top": rows,
	})
}

// Correlation returns the per-institution extract used for the
// tuition / repayment / salary correlation view.
func (h *FinanceHandler) Correlation(w http.ResponseWriter, r *http.Request) {
	year, err := yearParam(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	rows, err := correlationExtract(h.DB, year)
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, map[string]interface{}{
		"year":         year,
		"institutions": rows,
	})
}
