package services

import (
	"math"
	"math/rand"
	"strconv"

	"github.com/bethanyfinesse/bridgemindapp/internal/catalog"
	"github.com/bethanyfinesse/bridgemindapp/internal/models"
)

// Bounds for the cosmetic rating and session-count draws.
const (
	generatedRatingBase   = 4.7
	generatedRatingSpread = 0.3
	generatedSessionsBase = 200
	generatedSessionsSpan = 400
	generatedExtraCount   = 2

	minGeneratedMatches = 3
	maxGeneratedMatches = 5
)

// GenerateMatches synthesizes count counselor profiles tailored to the
// preference record: the user's language, country and struggles are copied
// straight into each profile, names rotate through a fixed list and the
// rating/session numbers are cosmetic draws from rng. This is a demo sampler,
// not a recommendation algorithm — every result looks relevant by
// construction.
//
// An incomplete record falls back to a static slice of the real catalog.
func GenerateMatches(p *models.Preference, count int, rng *rand.Rand) []models.Counselor {
	if count < minGeneratedMatches {
		count = minGeneratedMatches
	}
	if count > maxGeneratedMatches {
		count = maxGeneratedMatches
	}

	if !p.IsComplete() {
		fallback := catalog.Counselors()
		if len(fallback) > count {
			fallback = fallback[:count]
		}
		return fallback
	}

	names := catalog.GeneratorNames
	out := make([]models.Counselor, 0, count)
	for i := 0; i < count; i++ {
		languages := []string{p.Language}
		if p.Language != "English" {
			languages = append(languages, "English")
		}

		specialties := append([]string{}, p.Struggles...)
		for _, idx := range rng.Perm(len(catalog.ExtraSpecialties))[:generatedExtraCount] {
			specialties = append(specialties, catalog.ExtraSpecialties[idx])
		}

		approach := "CBT, Mindfulness"
		if p.Approach != "" {
			approach = p.Approach + ", Mindfulness"
		}

		rating := generatedRatingBase + rng.Float64()*generatedRatingSpread
		out = append(out, models.Counselor{
			ID:          strconv.Itoa(i + 1),
			Name:        names[i%len(names)],
			Languages:   languages,
			Country:     p.Country,
			Specialties: specialties,
			Approach:    approach,
			Rating:      math.Round(rating*100) / 100,
			Sessions:    generatedSessionsBase + rng.Intn(generatedSessionsSpan),
		})
	}
	return out
}
