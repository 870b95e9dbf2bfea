package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/bethanyfinesse/bridgemindapp/internal/catalog"
	"github.com/bethanyfinesse/bridgemindapp/internal/models"
	"github.com/bethanyfinesse/bridgemindapp/internal/services"
)

// SavePreferencesRequest represents the preferences form submission
type SavePreferencesRequest struct {
	DeviceID    string   `json:"device_id"`
	Language    string   `json:"language"`
	Country     string   `json:"country"`
	Struggles   []string `json:"struggles"`
	Gender      string   `json:"gender,omitempty"`
	SessionType string   `json:"session_type,omitempty"`
	Approach    string   `json:"approach,omitempty"`
}

// SavePreferencesResponse represents the response after saving preferences
type SavePreferencesResponse struct {
	Success     bool               `json:"success"`
	Message     string             `json:"message,omitempty"`
	Preferences *models.Preference `json:"preferences,omitempty"`
}

// GetPreferencesResponse represents the response for loading preferences
type GetPreferencesResponse struct {
	Success     bool               `json:"success"`
	Message     string             `json:"message,omitempty"`
	Preferences *models.Preference `json:"preferences"`
}

// PreferenceOptionsResponse lists the values the preferences form can submit
type PreferenceOptionsResponse struct {
	Success      bool     `json:"success"`
	Languages    []string `json:"languages"`
	Countries    []string `json:"countries"`
	Struggles    []string `json:"struggles"`
	Approaches   []string `json:"approaches"`
	Genders      []string `json:"genders"`
	SessionTypes []string `json:"session_types"`
}

// SavePreferences persists the submitted preference record, fully replacing
// any prior one. Incomplete records are refused with no storage mutation.
func SavePreferences(w http.ResponseWriter, r *http.Request) {
	var req SavePreferencesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(SavePreferencesResponse{
			Success: false,
			Message: "Invalid request body",
		})
		return
	}

	if req.DeviceID == "" {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(SavePreferencesResponse{
			Success: false,
			Message: "device_id is required",
		})
		return
	}

	prefs := &models.Preference{
		DeviceID:    req.DeviceID,
		Language:    req.Language,
		Country:     req.Country,
		Struggles:   req.Struggles,
		Gender:      req.Gender,
		SessionType: req.SessionType,
		Approach:    req.Approach,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := services.SavePreferences(ctx, prefs); err != nil {
		if errors.Is(err, services.ErrInvalidPreference) {
			message := "Language, country and at least one struggle are required"
			if err != services.ErrInvalidPreference {
				// Option-list violation; our own message, safe to surface
				message = "Invalid preferences: " + err.Error()
			}
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(SavePreferencesResponse{
				Success: false,
				Message: message,
			})
			return
		}

		// Storage failure: not a client mistake, and the driver error stays
		// out of the response
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(SavePreferencesResponse{
			Success: false,
			Message: "Failed to save preferences",
		})
		return
	}

	services.TouchDevice(ctx, req.DeviceID)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(SavePreferencesResponse{
		Success:     true,
		Message:     "Preferences saved",
		Preferences: prefs,
	})
}

// GetPreferences loads the last-saved record for a device. A device with no
// saved record gets a null preferences field, not an error.
func GetPreferences(w http.ResponseWriter, r *http.Request) {
	deviceID := r.URL.Query().Get("device_id")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	prefs, err := services.LoadPreferences(ctx, deviceID)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(GetPreferencesResponse{
			Success: false,
			Message: "Failed to load preferences",
		})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(GetPreferencesResponse{
		Success:     true,
		Preferences: prefs,
	})
}

// GetPreferenceOptions returns the option lists the form renders.
func GetPreferenceOptions(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(PreferenceOptionsResponse{
		Success:      true,
		Languages:    catalog.Languages,
		Countries:    catalog.Countries,
		Struggles:    catalog.Struggles,
		Approaches:   catalog.Approaches,
		Genders:      catalog.Genders,
		SessionTypes: catalog.SessionTypes,
	})
}
