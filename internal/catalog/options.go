package catalog

import (
	"strings"

	"github.com/bethanyfinesse/bridgemindapp/internal/models"
)

// Option lists for the preferences form. The saved record must use values
// from these lists.

var Struggles = []string{
	"Academic Stress", "Anxiety", "Depression", "Homesickness",
	"Cultural Adjustment", "Identity Issues", "Family Issues", "Loneliness",
}

var Languages = []string{
	"English", "Spanish", "Mandarin", "Hindi", "Arabic", "French",
	"Portuguese", "Korean", "Japanese", "German", "Russian", "Vietnamese",
}

var Countries = []string{
	"China", "India", "South Korea", "Saudi Arabia", "Canada", "Vietnam",
	"Taiwan", "Japan", "Mexico", "Brazil", "Nigeria", "Turkey", "Iran",
	"Nepal", "Thailand", "Pakistan", "Indonesia", "Colombia", "Bangladesh",
}

var Approaches = []string{
	"CBT (Cognitive Behavioral)", "Psychodynamic", "Humanistic",
	"Mindfulness-Based", "Solution-Focused", "ACT", "Person-Centered",
}

var Genders = []string{models.GenderMale, models.GenderFemale, models.GenderNoPreference}

var SessionTypes = []string{models.SessionVideo, models.SessionChat, models.SessionInPerson}

// Includes reports whether v is one of the listed options (case-insensitive).
func Includes(list []string, v string) bool {
	for _, item := range list {
		if strings.EqualFold(item, v) {
			return true
		}
	}
	return false
}
