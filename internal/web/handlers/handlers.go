package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
)

// Config represents the web server configuration (simplified)
type Config struct {
	Features struct {
		ExportEnabled bool `json:"export_enabled"`
	} `json:"features"`
}

// CONTROL codes as stored by the Scorecard loader.
var controlLabels = map[string]string{
	"1": "Public",
	"2": "Private non-profit",
	"3": "Private for-profit",
	"4": "Foreign",
}

// ControlLabel maps a stored CONTROL code to its display label.
// Unknown codes pass through unchanged.
func ControlLabel(code string) string {
	if label, ok := controlLabels[code]; ok {
		return label
	}
	return code
}

// yearParam reads the mandatory year query parameter.
func yearParam(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("year")
	if raw == "" {
		return 0, fmt.Errorf("year parameter is required")
	}
	year, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid year %q", raw)
	}
	return year, nil
}

func writeJSON(w http.ResponseWriter, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, "Encoding error", http.StatusInternalServerError)
	}
}
