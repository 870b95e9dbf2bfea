package services

import (
	"sort"
	"strings"

	"github.com/bethanyfinesse/bridgemindapp/internal/models"
)

// Weighted scoring criteria. Language carries the most weight, then country,
// then each overlapping specialty, then therapy approach.
const (
	scoreLanguage   = 30
	scoreCountry    = 25
	scoreSpecialty  = 15
	scoreApproach   = 10
	maxMatchResults = 5
)

// ScoreCounselor computes the weighted match score of a single counselor
// against a preference record. A score of zero means no criterion matched.
func ScoreCounselor(p *models.Preference, c models.Counselor) int {
	if p == nil {
		return 0
	}
	score := 0

	if p.Language != "" {
		for _, lang := range c.Languages {
			if strings.EqualFold(lang, p.Language) {
				score += scoreLanguage
				break
			}
		}
	}

	if p.Country != "" && strings.Contains(strings.ToLower(c.Country), strings.ToLower(p.Country)) {
		score += scoreCountry
	}

	for _, struggle := range p.Struggles {
		for _, spec := range c.Specialties {
			if strings.EqualFold(spec, struggle) {
				score += scoreSpecialty
				break
			}
		}
	}

	if p.Approach != "" && strings.Contains(strings.ToLower(c.Approach), strings.ToLower(p.Approach)) {
		score += scoreApproach
	}

	return score
}

// ComputeMatches scores the catalog against the preference record and returns
// the top counselors, highest score first, ties broken by rating. Counselors
// that match nothing are filtered out. An incomplete or absent record yields
// an empty result, which the caller renders as an empty state, not an error.
func ComputeMatches(p *models.Preference, cat []models.Counselor) []models.ScoredCounselor {
	matches := []models.ScoredCounselor{}
	if !p.IsComplete() {
		return matches
	}

	for _, c := range cat {
		score := ScoreCounselor(p, c)
		if score == 0 {
			continue
		}
		matches = append(matches, models.ScoredCounselor{Counselor: c, Score: score})
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		return matches[i].Rating > matches[j].Rating
	})

	if len(matches) > maxMatchResults {
		matches = matches[:maxMatchResults]
	}
	return matches
}
