package models

// Counselor is one candidate in the matching catalog.
type Counselor struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Languages   []string `json:"languages"`
	Country     string   `json:"country"`
	Specialties []string `json:"specialties"`
	Approach    string   `json:"approach"`

	// Display-only fields
	Rating   float64 `json:"rating"`
	Sessions int     `json:"sessions"`
}

// ScoredCounselor pairs a counselor with its computed match score.
type ScoredCounselor struct {
	Counselor
	Score int `json:"score"`
}

// RegionalCounselor is an entry in the regional counselor directory
// (the "Counselor Match" tab with its region filter and random pick).
type RegionalCounselor struct {
	ID        string `json:"id"`
	Avatar    string `json:"avatar"`
	Name      string `json:"name"`
	Country   string `json:"country"`
	Specialty string `json:"specialty"`
	Bio       string `json:"bio"`
	Region    string `json:"region"`
}
