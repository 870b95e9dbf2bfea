package models

import "time"

// Gender preference options
const (
	GenderMale         = "Male"
	GenderFemale       = "Female"
	GenderNoPreference = "No Preference"
)

// Session type options
const (
	SessionVideo    = "Video"
	SessionChat     = "Chat"
	SessionInPerson = "In-Person"
)

// Preference is the user's saved matching criteria. Saved as a whole record —
// every submit fully replaces the previous one, there is no partial update path.
type Preference struct {
	DeviceID  string    `json:"device_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Language  string   `json:"language"`
	Country   string   `json:"country"`
	Struggles []string `json:"struggles"`

	// Optional filters
	Gender      string `json:"gender,omitempty"`
	SessionType string `json:"session_type,omitempty"`
	Approach    string `json:"approach,omitempty"`
}

// IsComplete reports whether the record is usable for matching:
// language, country and at least one struggle must all be present.
func (p *Preference) IsComplete() bool {
	return p != nil && p.Language != "" && p.Country != "" && len(p.Struggles) > 0
}
