// Package valuation exposes the engine and the history store over HTTP. The
// wizard UI is the only intended consumer; handlers accept fully-parsed
// numeric payloads and never validate business rules (that is the wizard's
// job — the engine degrades gracefully either way).
package valuation

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"sme_valuation/pkg/core/agent"
	"sme_valuation/pkg/core/report"
	"sme_valuation/pkg/core/store"
	"sme_valuation/pkg/core/summary"
	enginepkg "sme_valuation/pkg/core/valuation"
	"sme_valuation/pkg/models"
)

var (
	agentManager *agent.Manager
	historyRepo  *store.HistoryRepo
)

// InitHandler wires the handler dependencies. Pass a nil manager to disable
// the summary endpoint.
func InitHandler(mgr *agent.Manager) {
	agentManager = mgr
	historyRepo = store.NewHistoryRepo()
}

func writeCORS(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-Api-Key")
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

// HandleCalculate runs the engine on the posted profile.
// POST /api/valuation/calculate
func HandleCalculate(w http.ResponseWriter, r *http.Request) {
	writeCORS(w)
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var profile models.CompanyProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result := enginepkg.CalculateValuation(&profile)
	fmt.Printf("[VALUATION] Calculated: sector=%s ev=%.0f score=%d\n",
		profile.Sector, result.EnterpriseValue, result.InvestmentScore.Score)

	writeJSON(w, result)
}

// HandleReport runs the engine and returns the rendered report.
// POST /api/valuation/report -> {markdown, html}
func HandleReport(w http.ResponseWriter, r *http.Request) {
	writeCORS(w)
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var profile models.CompanyProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result := enginepkg.CalculateValuation(&profile)
	md := report.BuildMarkdown(&profile, &result)
	html, err := report.RenderHTML(md)
	if err != nil {
		http.Error(w, fmt.Sprintf("report rendering failed: %v", err), http.StatusInternalServerError)
		return
	}

	writeJSON(w, map[string]string{"markdown": md, "html": html})
}

// HandleSummary runs the engine and asks the LLM provider for a prose
// summary. The session API key comes from the X-Api-Key header and is not
// stored anywhere.
// POST /api/valuation/summary
func HandleSummary(w http.ResponseWriter, r *http.Request) {
	writeCORS(w)
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if agentManager == nil {
		http.Error(w, "summary generation is not configured", http.StatusServiceUnavailable)
		return
	}

	var profile models.CompanyProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result := enginepkg.CalculateValuation(&profile)

	ctx, cancel := context.WithTimeout(r.Context(), 60*time.Second)
	defer cancel()

	s, err := summary.Generate(ctx, agentManager.GetProvider(), r.Header.Get("X-Api-Key"), &profile, &result)
	if err != nil {
		fmt.Printf("[WARNING] Summary generation failed: %v\n", err)
		http.Error(w, fmt.Sprintf("summary failed: %v", err), http.StatusBadGateway)
		return
	}

	writeJSON(w, s)
}

type saveRequest struct {
	Label   string                `json:"label"`
	Profile models.CompanyProfile `json:"profile"`
}

// HandleSave calculates and persists a valuation.
// POST /api/valuation/save
func HandleSave(w http.ResponseWriter, r *http.Request) {
	writeCORS(w)
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req saveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result := enginepkg.CalculateValuation(&req.Profile)
	entry, err := historyRepo.Save(r.Context(), req.Label, &req.Profile, &result)
	if err != nil {
		http.Error(w, fmt.Sprintf("save failed: %v", err), http.StatusInternalServerError)
		return
	}
	fmt.Printf("[VALUATION] Saved: id=%s label=%q\n", entry.ID, entry.Label)

	writeJSON(w, entry)
}

// HandleHistory lists saved valuations, newest first.
// GET /api/valuation/history
func HandleHistory(w http.ResponseWriter, r *http.Request) {
	writeCORS(w)
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}

	entries, err := historyRepo.List(r.Context())
	if err != nil {
		http.Error(w, fmt.Sprintf("history load failed: %v", err), http.StatusInternalServerError)
		return
	}
	writeJSON(w, entries)
}

// HandleHistoryGet returns one saved valuation.
// GET /api/valuation/history/get?id=...
func HandleHistoryGet(w http.ResponseWriter, r *http.Request) {
	writeCORS(w)
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}

	id := r.URL.Query().Get("id")
	if id == "" {
		http.Error(w, "missing id", http.StatusBadRequest)
		return
	}

	entry, err := historyRepo.Get(r.Context(), id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	writeJSON(w, entry)
}

// HandleDelete removes a saved valuation.
// POST /api/valuation/delete {"id": "..."}
func HandleDelete(w http.ResponseWriter, r *http.Request) {
	writeCORS(w)
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := historyRepo.Delete(r.Context(), req.ID); err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	writeJSON(w, map[string]bool{"deleted": true})
}
