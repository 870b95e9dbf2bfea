package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIncludes(t *testing.T) {
	assert.True(t, Includes(Languages, "Mandarin"))
	assert.True(t, Includes(Languages, "mandarin"))
	assert.True(t, Includes(Countries, "SOUTH KOREA"))
	assert.False(t, Includes(Languages, "Klingon"))
	assert.False(t, Includes(Struggles, ""))
}

func TestRegionalCounselorsFilter(t *testing.T) {
	all := RegionalCounselors("")
	require.Len(t, all, 4)
	assert.Equal(t, all, RegionalCounselors("All"))
	assert.Equal(t, all, RegionalCounselors("all"))

	asia := RegionalCounselors("Asia")
	require.Len(t, asia, 2)
	for _, c := range asia {
		assert.Equal(t, "Asia", c.Region)
	}

	assert.Len(t, RegionalCounselors("Europe"), 1)
	assert.Len(t, RegionalCounselors("Latin America"), 1)
	assert.Empty(t, RegionalCounselors("Africa"))
	assert.Empty(t, RegionalCounselors("Antarctica"))
}

func TestCounselorsReturnsCopy(t *testing.T) {
	a := Counselors()
	require.NotEmpty(t, a)
	a[0].Name = "Mutated"

	b := Counselors()
	assert.NotEqual(t, "Mutated", b[0].Name)
}

func TestStudentsReturnsCopy(t *testing.T) {
	a := Students()
	require.NotEmpty(t, a)
	a[0].Name = "Mutated"

	b := Students()
	assert.NotEqual(t, "Mutated", b[0].Name)
}

func TestCounselorOptionConsistency(t *testing.T) {
	// Every catalog counselor must be reachable by at least one preference
	// form value, otherwise it can never score.
	for _, c := range Counselors() {
		found := false
		for _, lang := range c.Languages {
			if Includes(Languages, lang) {
				found = true
				break
			}
		}
		assert.True(t, found, "counselor %s speaks no selectable language", c.ID)

		for _, s := range c.Specialties {
			if !Includes(Struggles, s) && !Includes(ExtraSpecialties, s) {
				t.Errorf("counselor %s has unknown specialty %q", c.ID, s)
			}
		}
	}
}
