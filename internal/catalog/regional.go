package catalog

import (
	"strings"

	"github.com/bethanyfinesse/bridgemindapp/internal/models"
)

// Regions for the counselor directory filter. "All" disables filtering.
var Regions = []string{"All", "Asia", "Europe", "Latin America", "Africa"}

var regionalCounselors = []models.RegionalCounselor{
	{ID: "c1", Avatar: "female", Name: "Dr. Mei Lin", Country: "China", Specialty: "Acculturation & Anxiety", Bio: "Culturally-informed therapist focusing on acculturation stress and anxiety in international students.", Region: "Asia"},
	{ID: "c2", Avatar: "male", Name: "Mr. Carlos Mendez", Country: "Mexico", Specialty: "Family & Identity", Bio: "Works with first-generation students navigating family expectations and identity.", Region: "Latin America"},
	{ID: "c3", Avatar: "female", Name: "Ms. Aisha Khan", Country: "Pakistan", Specialty: "Depression & Cultural Adjustment", Bio: "Offers short-term coping strategies and culturally-sensitive therapy.", Region: "Asia"},
	{ID: "c4", Avatar: "female", Name: "Dr. Sophie Dubois", Country: "France", Specialty: "Stress & Performance", Bio: "Focuses on academic stress, perfectionism and cross-cultural transitions.", Region: "Europe"},
}

// RegionalCounselors returns the directory filtered by region.
// An empty region or "All" returns every entry.
func RegionalCounselors(region string) []models.RegionalCounselor {
	out := make([]models.RegionalCounselor, 0, len(regionalCounselors))
	for _, c := range regionalCounselors {
		if region == "" || strings.EqualFold(region, "All") || strings.EqualFold(c.Region, region) {
			out = append(out, c)
		}
	}
	return out
}
