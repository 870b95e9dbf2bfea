package services

import (
	"testing"

	"github.com/bethanyfinesse/bridgemindapp/internal/catalog"
	"github.com/bethanyfinesse/bridgemindapp/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completePreference() *models.Preference {
	return &models.Preference{
		DeviceID:  "11111111-1111-1111-1111-111111111111",
		Language:  "Korean",
		Country:   "South Korea",
		Struggles: []string{"Academic Stress", "Identity Issues"},
		Approach:  "CBT (Cognitive Behavioral)",
	}
}

func TestScoreCounselorWeights(t *testing.T) {
	p := completePreference()
	c := models.Counselor{
		ID:          "x1",
		Languages:   []string{"Korean", "English"},
		Country:     "South Korea",
		Specialties: []string{"Academic Stress", "Identity Issues", "Social Anxiety"},
		Approach:    "CBT (Cognitive Behavioral)",
	}

	// language 30 + country 25 + two specialties 2*15 + approach 10
	assert.Equal(t, 95, ScoreCounselor(p, c))
}

func TestScoreCounselorPartialMatch(t *testing.T) {
	p := completePreference()

	tests := []struct {
		name string
		c    models.Counselor
		want int
	}{
		{
			name: "language only",
			c:    models.Counselor{Languages: []string{"Korean"}, Country: "Japan"},
			want: 30,
		},
		{
			name: "country only",
			c:    models.Counselor{Languages: []string{"Hindi"}, Country: "South Korea"},
			want: 25,
		},
		{
			name: "one specialty",
			c:    models.Counselor{Country: "Brazil", Specialties: []string{"Identity Issues"}},
			want: 15,
		},
		{
			name: "approach only",
			c:    models.Counselor{Country: "Brazil", Approach: "CBT (Cognitive Behavioral)"},
			want: 10,
		},
		{
			name: "nothing",
			c:    models.Counselor{Languages: []string{"French"}, Country: "Canada", Specialties: []string{"Grief"}, Approach: "ACT"},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ScoreCounselor(p, tt.c))
		})
	}
}

func TestScoreCounselorCaseInsensitive(t *testing.T) {
	p := completePreference()
	p.Language = "korean"
	p.Country = "south korea"
	p.Struggles = []string{"academic stress"}
	p.Approach = "cbt (cognitive behavioral)"

	c := models.Counselor{
		Languages:   []string{"Korean"},
		Country:     "South Korea",
		Specialties: []string{"Academic Stress"},
		Approach:    "CBT (Cognitive Behavioral)",
	}

	assert.Equal(t, 80, ScoreCounselor(p, c))
}

func TestScoreCounselorNilPreference(t *testing.T) {
	assert.Equal(t, 0, ScoreCounselor(nil, models.Counselor{Languages: []string{"English"}}))
}

func TestComputeMatchesFiltersZeroScores(t *testing.T) {
	p := completePreference()
	cat := []models.Counselor{
		{ID: "hit", Languages: []string{"Korean"}, Country: "South Korea", Rating: 4.5},
		{ID: "miss", Languages: []string{"French"}, Country: "Canada", Specialties: []string{"Grief"}, Approach: "ACT", Rating: 5.0},
	}

	matches := ComputeMatches(p, cat)
	require.Len(t, matches, 1)
	assert.Equal(t, "hit", matches[0].ID)
}

func TestComputeMatchesOrdering(t *testing.T) {
	p := completePreference()
	matches := ComputeMatches(p, catalog.Counselors())
	require.NotEmpty(t, matches)

	for i := 1; i < len(matches); i++ {
		assert.GreaterOrEqual(t, matches[i-1].Score, matches[i].Score)
		if matches[i-1].Score == matches[i].Score {
			assert.GreaterOrEqual(t, matches[i-1].Rating, matches[i].Rating)
		}
	}

	// Dr. Min-jun Park matches on every criterion and must lead.
	assert.Equal(t, "m7", matches[0].ID)
}

func TestComputeMatchesTieBrokenByRating(t *testing.T) {
	p := completePreference()
	cat := []models.Counselor{
		{ID: "low", Languages: []string{"Korean"}, Country: "Japan", Rating: 4.2},
		{ID: "high", Languages: []string{"Korean"}, Country: "Japan", Rating: 4.9},
	}

	matches := ComputeMatches(p, cat)
	require.Len(t, matches, 2)
	assert.Equal(t, "high", matches[0].ID)
	assert.Equal(t, "low", matches[1].ID)
}

func TestComputeMatchesCapsResults(t *testing.T) {
	// English is spoken by nearly the whole catalog, so without the cap this
	// would return a dozen counselors.
	p := &models.Preference{
		DeviceID:  "22222222-2222-2222-2222-222222222222",
		Language:  "English",
		Country:   "Canada",
		Struggles: []string{"Anxiety"},
	}

	matches := ComputeMatches(p, catalog.Counselors())
	assert.Len(t, matches, 5)
}

func TestComputeMatchesIncompletePreference(t *testing.T) {
	matches := ComputeMatches(nil, catalog.Counselors())
	assert.NotNil(t, matches)
	assert.Empty(t, matches)

	matches = ComputeMatches(&models.Preference{Language: "English"}, catalog.Counselors())
	assert.Empty(t, matches)
}
