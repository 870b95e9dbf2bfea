package handlers

import (
	"encoding/json"
	"math/rand"
	"net/http"
	"time"

	"github.com/bethanyfinesse/bridgemindapp/internal/catalog"
	"github.com/bethanyfinesse/bridgemindapp/internal/models"
)

// GetCounselorsResponse represents the regional counselor directory
type GetCounselorsResponse struct {
	Success    bool                       `json:"success"`
	Regions    []string                   `json:"regions"`
	Counselors []models.RegionalCounselor `json:"counselors"`
}

// MatchCounselorRequest represents the "Match Me" request
type MatchCounselorRequest struct {
	Region string `json:"region,omitempty"`
}

// MatchCounselorResponse represents the random pick result
type MatchCounselorResponse struct {
	Success   bool                      `json:"success"`
	Message   string                    `json:"message,omitempty"`
	Counselor *models.RegionalCounselor `json:"counselor,omitempty"`
}

// GetCounselors lists the counselor directory, optionally filtered by region.
func GetCounselors(w http.ResponseWriter, r *http.Request) {
	region := r.URL.Query().Get("region")

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(GetCounselorsResponse{
		Success:    true,
		Regions:    catalog.Regions,
		Counselors: catalog.RegionalCounselors(region),
	})
}

// MatchCounselor picks one counselor uniformly at random from the region's
// directory. An empty region yields "no matches", not an error.
func MatchCounselor(w http.ResponseWriter, r *http.Request) {
	var req MatchCounselorRequest
	if r.Body != nil {
		// An empty body means "All" regions
		json.NewDecoder(r.Body).Decode(&req)
	}

	filtered := catalog.RegionalCounselors(req.Region)
	if len(filtered) == 0 {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(MatchCounselorResponse{
			Success: true,
			Message: "No counselors found for this region.",
		})
		return
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	pick := filtered[rng.Intn(len(filtered))]

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(MatchCounselorResponse{
		Success:   true,
		Counselor: &pick,
	})
}
