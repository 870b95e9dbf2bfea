package handlers

import (
	"context"
	"encoding/json"
	"math/rand"
	"net/http"
	"strconv"
	"time"

	"github.com/bethanyfinesse/bridgemindapp/internal/catalog"
	"github.com/bethanyfinesse/bridgemindapp/internal/models"
	"github.com/bethanyfinesse/bridgemindapp/internal/services"
)

// GetMatchesResponse represents the scored match list for a device
type GetMatchesResponse struct {
	Success bool                     `json:"success"`
	Message string                   `json:"message,omitempty"`
	Matches []models.ScoredCounselor `json:"matches"`
}

// GetSampleMatchesResponse represents the demo sampler output
type GetSampleMatchesResponse struct {
	Success bool               `json:"success"`
	Message string             `json:"message,omitempty"`
	Matches []models.Counselor `json:"matches"`
}

// GetMatches recomputes the ranked counselor list from the device's current
// preferences on every call; nothing is persisted. No saved preferences or
// no scoring counselors both yield an empty list the app renders as an
// empty state.
func GetMatches(w http.ResponseWriter, r *http.Request) {
	deviceID := r.URL.Query().Get("device_id")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	prefs, err := services.LoadPreferences(ctx, deviceID)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(GetMatchesResponse{
			Success: false,
			Message: "Failed to load preferences",
			Matches: []models.ScoredCounselor{},
		})
		return
	}

	matches := services.ComputeMatches(prefs, catalog.Counselors())

	resp := GetMatchesResponse{Success: true, Matches: matches}
	if prefs == nil {
		resp.Message = "No matches yet — fill out your preferences first!"
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// GetSampleMatches returns synthetic counselors tailored to the device's
// preferences. Demo mode only; the profiles are generated, not real
// recommendations.
func GetSampleMatches(w http.ResponseWriter, r *http.Request) {
	deviceID := r.URL.Query().Get("device_id")

	count := 4
	if countStr := r.URL.Query().Get("count"); countStr != "" {
		if parsed, err := strconv.Atoi(countStr); err == nil && parsed > 0 {
			count = parsed
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	prefs, err := services.LoadPreferences(ctx, deviceID)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(GetSampleMatchesResponse{
			Success: false,
			Message: "Failed to load preferences",
			Matches: []models.Counselor{},
		})
		return
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	matches := services.GenerateMatches(prefs, count, rng)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(GetSampleMatchesResponse{
		Success: true,
		Matches: matches,
	})
}
