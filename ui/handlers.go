package ui

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"fprsim/app"
	"fprsim/domain/core"
	"fprsim/domain/sim"
)

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case core.IsInvalidParameter(err):
		status = http.StatusBadRequest
	case core.IsDegenerateSample(err):
		status = http.StatusUnprocessableEntity
	case core.IsNotFoundError(err):
		status = http.StatusNotFound
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

// runSimulationRequest distinguishes omitted fields, which fall back to the
// configured defaults, from explicit values, which always reach validation.
type runSimulationRequest struct {
	Spec         sim.PopulationSpec `json:"spec"`
	Participants int                `json:"participants"`
	Alpha        *float64           `json:"alpha"`
	Trials       *int               `json:"trials"`
	Seed         int64              `json:"seed"`
}

// handleRunSimulation runs one simulation and returns its result
func (a *App) handleRunSimulation(w http.ResponseWriter, r *http.Request) {
	var body runSimulationRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, core.NewInvalidParameterError("request body", "must be valid JSON"))
		return
	}

	req := app.RunRequest{
		Spec:         body.Spec,
		Participants: body.Participants,
		Alpha:        a.defaults.DefaultAlpha,
		Trials:       a.defaults.DefaultTrials,
		Seed:         body.Seed,
	}
	if body.Alpha != nil {
		req.Alpha = *body.Alpha
	}
	if body.Trials != nil {
		req.Trials = *body.Trials
	}

	result, err := a.simulations.Run(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}

	if a.repository != nil {
		if err := a.repository.SaveResult(r.Context(), result); err != nil {
			writeError(w, err)
			return
		}
	}

	writeJSON(w, http.StatusOK, result)
}

// handleListSimulations returns recent persisted results
func (a *App) handleListSimulations(w http.ResponseWriter, r *http.Request) {
	if a.repository == nil {
		writeError(w, core.NewNotFoundError("result repository", "disabled"))
		return
	}

	limit := 50
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			writeError(w, core.NewInvalidParameterError("limit", "must be a positive integer"))
			return
		}
		limit = parsed
	}

	results, err := a.repository.ListResults(r.Context(), limit)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"results": results})
}

// handleSimulationReport renders the HTML report for one persisted run
func (a *App) handleSimulationReport(w http.ResponseWriter, r *http.Request) {
	if a.repository == nil {
		writeError(w, core.NewNotFoundError("result repository", "disabled"))
		return
	}

	runID, err := core.ParseRunID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}

	result, err := a.repository.GetResult(r.Context(), runID)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(renderHTML(runReportMarkdown(result)))
}

// handleFamilyWise computes the analytic family-wise false-positive rate
func (a *App) handleFamilyWise(w http.ResponseWriter, r *http.Request) {
	alpha, err := strconv.ParseFloat(r.URL.Query().Get("alpha"), 64)
	if err != nil {
		writeError(w, core.NewInvalidParameterError("alpha", "must be a number"))
		return
	}
	k, err := strconv.Atoi(r.URL.Query().Get("k"))
	if err != nil {
		writeError(w, core.NewInvalidParameterError("k", "must be an integer"))
		return
	}

	result, err := sim.NewFamilyWiseResult(alpha, k)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}
