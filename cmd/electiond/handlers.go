package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"electiontracker/lib/elections"
	"electiontracker/services/tracker"
)

func parseFilters(r *http.Request) (elections.Filters, error) {
	q := r.URL.Query()
	f := elections.Filters{
		State:           q.Get("state"),
		OfficeType:      q.Get("office"),
		UncontestedOnly: q.Get("uncontested") == "true",
	}

	if raw := q.Get("min_r_plus"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return f, fmt.Errorf("min_r_plus must be a number, got %q", raw)
		}
		f.MinRPlus = &v
	}
	if raw := q.Get("max_r_plus"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return f, fmt.Errorf("max_r_plus must be a number, got %q", raw)
		}
		f.MaxRPlus = &v
	}
	return f, nil
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("content-type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(body)
	if err != nil {
		slog.Warn("failed to write response", "err", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func handleElections(svc *tracker.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filters, err := parseFilters(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}

		results, err := svc.Query(filters)
		if err != nil {
			slog.ErrorContext(r.Context(), "query failed", "err", err)
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		writeJSON(w, http.StatusOK, results)
	}
}

func handleStats(svc *tracker.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := svc.Statistics()
		if err != nil {
			slog.ErrorContext(r.Context(), "statistics failed", "err", err)
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		writeJSON(w, http.StatusOK, stats)
	}
}

func handleStates(svc *tracker.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		breakdown, err := svc.StateBreakdown()
		if err != nil {
			slog.ErrorContext(r.Context(), "state breakdown failed", "err", err)
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		writeJSON(w, http.StatusOK, breakdown)
	}
}
