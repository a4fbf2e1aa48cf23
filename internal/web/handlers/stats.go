package handlers

import (
	"net/http"

	"github.com/jmoiron/sqlx"
)

// StatsHandler serves institution count aggregates
type StatsHandler struct {
	DB     *sqlx.DB
	Config *Config
}

// StateTypeCount is one state × institution-type bucket
type StateTypeCount struct {
	State string `db:"state" json:"state"`
	Type  string `db:"type" json:"type"`
	Count int    `db:"num_institutions" json:"num_institutions"`
}

// StateCount is one per-state total
type StateCount struct {
	State string `db:"state" json:"state"`
	Count int    `db:"num_institutions" json:"num_institutions"`
}

// TypeCount is one per-type total
type TypeCount struct {
	Type  string `db:"type" json:"type"`
	Count int    `db:"num_institutions" json:"num_institutions"`
}

// InstitutionsByState returns institution counts grouped by state and
// type, plus per-state totals, for one directory year.
func (h *StatsHandler) InstitutionsByState(w http.ResponseWriter, r *http.Request) {
	year, err := yearParam(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var byStateAndType []StateTypeCount
	err = h.DB.Select(&byStateAndType, `
		SELECT loc.STABBR AS state, inst.CONTROL AS type, COUNT(*) AS num_institutions
		FROM Institutions inst
		JOIN Location loc ON inst.UNITID = loc.UNITID
		JOIN IPEDS_Directory ipeds ON loc.UNITID = ipeds.UNITID
		WHERE ipeds.YEAR = $1
		GROUP BY loc.STABBR, inst.CONTROL
		ORDER BY loc.STABBR
	`, year)
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	for i := range byStateAndType {
		byStateAndType[i].Type = ControlLabel(byStateAndType[i].Type)
	}

	var stateTotals []StateCount
	err = h.DB.Select(&stateTotals, `
		SELECT loc.STABBR AS state, COUNT(*) AS num_institutions
		FROM Institutions inst
		JOIN Location loc ON inst.UNITID = loc.UNITID
		JOIN IPEDS_Directory ipeds ON loc.UNITID = ipeds.UNITID
		WHERE ipeds.YEAR = $1
		GROUP BY loc.STABBR
		ORDER BY loc.STABBR
	`, year)
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, map[string]interface{}{
		"year":              year,
		"by_state_and_type": byStateAndType,
		"state_totals":      stateTotals,
	})
}

// InstitutionsByType returns institution counts per control type for
// one directory year.
func (h *StatsHandler) InstitutionsByType(w http.ResponseWriter, r *http.Request) {
	year, err := yearParam(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var byType []TypeCount
	err = h.DB.Select(&byType, `
		SELECT inst.CONTROL AS type, COUNT(*) AS num_institutions
		FROM Institutions inst
		JOIN IPEDS_Directory ipeds ON inst.UNITID = ipeds.UNITID
		WHERE ipeds.YEAR = $1
		GROUP BY inst.CONTROL
	`, year)
	if err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	for i := range byType {
		byType[i].Type = ControlLabel(byType[i].Type)
	}

	writeJSON(w, map[string]interface{}{
		"year":    year,
		"by_type": byType,
	})
}
