// Package reference serves the read-only reference tables to the wizard UI.
package reference

import (
	"encoding/json"
	"net/http"

	"sme_valuation/pkg/core/refdata"
)

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

// HandleSectors returns the sector table.
// GET /api/reference/sectors
func HandleSectors(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, refdata.Sectors())
}

// HandleSizes returns the company-size table.
// GET /api/reference/sizes
func HandleSizes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, refdata.Sizes())
}

// HandleScenarios returns the scenario table.
// GET /api/reference/scenarios
func HandleScenarios(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, refdata.Scenarios())
}

// HandleAssumptions returns the global default assumptions.
// GET /api/reference/assumptions
func HandleAssumptions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, refdata.Defaults())
}
