package services

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/bethanyfinesse/bridgemindapp/internal/catalog"
	"github.com/bethanyfinesse/bridgemindapp/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateMatchesDeterministicWithSeed(t *testing.T) {
	p := completePreference()

	a := GenerateMatches(p, 5, rand.New(rand.NewSource(42)))
	b := GenerateMatches(p, 5, rand.New(rand.NewSource(42)))
	assert.Equal(t, a, b)

	c := GenerateMatches(p, 5, rand.New(rand.NewSource(7)))
	assert.NotEqual(t, a, c)
}

func TestGenerateMatchesCountClamped(t *testing.T) {
	p := completePreference()
	rng := rand.New(rand.NewSource(1))

	assert.Len(t, GenerateMatches(p, 0, rng), 3)
	assert.Len(t, GenerateMatches(p, 4, rng), 4)
	assert.Len(t, GenerateMatches(p, 50, rng), 5)
}

func TestGenerateMatchesProfileShape(t *testing.T) {
	p := completePreference()
	out := GenerateMatches(p, 5, rand.New(rand.NewSource(99)))
	require.Len(t, out, 5)

	for i, c := range out {
		assert.Equal(t, catalog.GeneratorNames[i%len(catalog.GeneratorNames)], c.Name)
		assert.Equal(t, p.Country, c.Country)
		assert.Contains(t, c.Languages, p.Language)
		assert.Contains(t, c.Languages, "English")

		// The user's own struggles come first, then two extras.
		require.GreaterOrEqual(t, len(c.Specialties), len(p.Struggles))
		for j, s := range p.Struggles {
			assert.Equal(t, s, c.Specialties[j])
		}
		assert.Len(t, c.Specialties, len(p.Struggles)+2)
		for _, extra := range c.Specialties[len(p.Struggles):] {
			assert.Contains(t, catalog.ExtraSpecialties, extra)
		}

		assert.True(t, strings.HasSuffix(c.Approach, ", Mindfulness"))
		assert.GreaterOrEqual(t, c.Rating, 4.7)
		assert.LessOrEqual(t, c.Rating, 5.0)
		assert.GreaterOrEqual(t, c.Sessions, 200)
		assert.Less(t, c.Sessions, 600)
	}
}

func TestGenerateMatchesEnglishSpeakerSingleLanguage(t *testing.T) {
	p := completePreference()
	p.Language = "English"

	out := GenerateMatches(p, 3, rand.New(rand.NewSource(5)))
	require.NotEmpty(t, out)
	assert.Equal(t, []string{"English"}, out[0].Languages)
}

func TestGenerateMatchesDefaultApproach(t *testing.T) {
	p := completePreference()
	p.Approach = ""

	out := GenerateMatches(p, 3, rand.New(rand.NewSource(5)))
	require.NotEmpty(t, out)
	assert.Equal(t, "CBT, Mindfulness", out[0].Approach)
}

func TestGenerateMatchesFallbackOnIncompletePreference(t *testing.T) {
	out := GenerateMatches(nil, 4, rand.New(rand.NewSource(3)))
	require.Len(t, out, 4)
	assert.Equal(t, catalog.Counselors()[:4], out)

	out = GenerateMatches(&models.Preference{Country: "Brazil"}, 3, rand.New(rand.NewSource(3)))
	require.Len(t, out, 3)
	assert.Equal(t, catalog.Counselors()[:3], out)
}
