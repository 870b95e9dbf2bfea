package services

import (
	"testing"

	"github.com/bethanyfinesse/bridgemindapp/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestValidatePreferenceAccepts(t *testing.T) {
	p := &models.Preference{
		DeviceID:    "33333333-3333-3333-3333-333333333333",
		Language:    "Mandarin",
		Country:     "China",
		Struggles:   []string{"Anxiety", "Homesickness"},
		Gender:      models.GenderFemale,
		SessionType: models.SessionVideo,
		Approach:    "Mindfulness-Based",
	}
	assert.NoError(t, ValidatePreference(p))
}

func TestValidatePreferenceOptionalFieldsMayBeEmpty(t *testing.T) {
	p := &models.Preference{
		Language:  "Spanish",
		Country:   "Mexico",
		Struggles: []string{"Loneliness"},
	}
	assert.NoError(t, ValidatePreference(p))
}

func TestValidatePreferenceCaseInsensitiveOptions(t *testing.T) {
	p := &models.Preference{
		Language:  "mandarin",
		Country:   "china",
		Struggles: []string{"anxiety"},
	}
	assert.NoError(t, ValidatePreference(p))
}

func TestValidatePreferenceRejectsIncomplete(t *testing.T) {
	tests := []struct {
		name string
		p    *models.Preference
	}{
		{name: "nil", p: nil},
		{name: "missing language", p: &models.Preference{Country: "China", Struggles: []string{"Anxiety"}}},
		{name: "missing country", p: &models.Preference{Language: "Mandarin", Struggles: []string{"Anxiety"}}},
		{name: "no struggles", p: &models.Preference{Language: "Mandarin", Country: "China"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, ValidatePreference(tt.p), ErrInvalidPreference)
		})
	}
}

func TestValidatePreferenceRejectsUnknownOptions(t *testing.T) {
	// Every validation error must wrap ErrInvalidPreference so handlers can
	// tell a client mistake apart from a storage failure.
	base := func() *models.Preference {
		return &models.Preference{
			Language:  "Mandarin",
			Country:   "China",
			Struggles: []string{"Anxiety"},
		}
	}

	p := base()
	p.Language = "Klingon"
	assert.ErrorIs(t, ValidatePreference(p), ErrInvalidPreference)

	p = base()
	p.Country = "Atlantis"
	assert.ErrorIs(t, ValidatePreference(p), ErrInvalidPreference)

	p = base()
	p.Struggles = []string{"Anxiety", "Procrastination"}
	assert.ErrorIs(t, ValidatePreference(p), ErrInvalidPreference)

	p = base()
	p.Gender = "Other"
	assert.ErrorIs(t, ValidatePreference(p), ErrInvalidPreference)

	p = base()
	p.SessionType = "Carrier pigeon"
	assert.ErrorIs(t, ValidatePreference(p), ErrInvalidPreference)

	p = base()
	p.Approach = "Hypnosis"
	assert.ErrorIs(t, ValidatePreference(p), ErrInvalidPreference)
}
