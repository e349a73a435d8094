package recommend

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		raw  float64
		want int
	}{
		{raw: -75, want: 0},
		{raw: 0, want: 0},
		{raw: 42.4, want: 42},
		{raw: 42.5, want: 43},
		{raw: 100, want: 100},
		{raw: 140, want: 100},
		{raw: math.NaN(), want: 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Clamp(tt.raw), "Clamp(%v)", tt.raw)
	}
}

func TestRank_StableDescendingAndCapped(t *testing.T) {
	type item struct {
		id    string
		score int
	}
	items := []item{{"a", 10}, {"b", 50}, {"c", 10}, {"d", 50}, {"e", 90}}
	score := func(i item) int { return i.score }

	ranked := Rank(items, score, 4)
	require.Len(t, ranked, 4)
	ids := []string{ranked[0].id, ranked[1].id, ranked[2].id, ranked[3].id}
	assert.Equal(t, []string{"e", "b", "d", "a"}, ids)

	// input is untouched
	assert.Equal(t, "a", items[0].id)

	assert.Len(t, Rank(items, score, 10), 5)
	assert.Empty(t, Rank([]item{}, score, 3))
}

func TestContext_CoupleMoods(t *testing.T) {
	var nilCtx *Context
	assert.Nil(t, nilCtx.CoupleMoods())
	assert.False(t, nilCtx.HasAvailableTime())
	assert.False(t, nilCtx.HasBudget())

	ctx := &Context{PartnerMood: &MoodEntry{Mood: MoodCozy}}
	assert.Nil(t, ctx.CoupleMoods())

	ctx.UserMood = &MoodEntry{Energy: EnergyHigh}
	assert.Nil(t, ctx.CoupleMoods())

	ctx.UserMood = &MoodEntry{Mood: MoodRomantic}
	assert.Equal(t, []Mood{MoodRomantic, MoodCozy}, ctx.CoupleMoods())

	ctx.PartnerMood = nil
	assert.Nil(t, ctx.CoupleMoods())
}

func TestPreferredDifficulty(t *testing.T) {
	assert.Equal(t, DifficultyMedium, PreferredDifficulty(nil))
	assert.Equal(t, DifficultyMedium, PreferredDifficulty(&Context{}))
	assert.Equal(t, DifficultyEasy, PreferredDifficulty(&Context{UserMood: &MoodEntry{Mood: MoodRelaxed, Energy: EnergyLow}}))
	assert.Equal(t, DifficultyHard, PreferredDifficulty(&Context{UserMood: &MoodEntry{Mood: MoodEnergetic, Energy: EnergyHigh}}))
	// only the user's energy counts
	assert.Equal(t, DifficultyMedium, PreferredDifficulty(&Context{PartnerMood: &MoodEntry{Mood: MoodCozy, Energy: EnergyLow}}))
}

func TestTable(t *testing.T) {
	assert.Equal(t, []string{"Romance", "Drama", "Comedy"}, MoodGenres.Tags(MoodRomantic, MoodCozy))
	assert.True(t, MoodAtmospheres.Matches("quiet", MoodHappy, MoodRelaxed))
	assert.False(t, MoodAtmospheres.Matches("quiet", MoodHappy))
	assert.Equal(t, 2, MoodGenres.CountMatches([]string{"Action", "Comedy", "Drama"}, MoodHappy, MoodRelaxed))
	assert.Zero(t, MoodGenres.CountMatches([]string{"Action"}))
	assert.True(t, TimeOfDayVirtualTypes.Matches("movie-sync", Night))
	assert.False(t, TimeOfDayVirtualTypes.Matches("movie-sync", Morning))
}

func TestDietaryRules(t *testing.T) {
	assert.True(t, SatisfiesRestrictions([]string{"vegan"}, []string{"vegetarian"}))
	assert.False(t, SatisfiesRestrictions([]string{"vegetarian"}, []string{"vegan"}))
	assert.True(t, SatisfiesRestrictions(nil, nil))
	assert.False(t, SatisfiesRestrictions([]string{"vegan"}, []string{"vegetarian", "gluten-free"}))

	assert.True(t, HasAllergen([]string{"gluten", "dairy"}, nil, []string{"dairy"}))
	assert.False(t, HasAllergen([]string{"gluten"}, []string{"fish"}, []string{"nuts"}))
	assert.False(t, HasAllergen(nil, []string{"fish"}))
}

func TestSearchHelpers(t *testing.T) {
	assert.True(t, ContainsFold("Inception", "incep"))
	assert.True(t, AnyContainsFold([]string{"Action", "Sci-Fi"}, "sci"))
	assert.False(t, AnyContainsFold(nil, "x"))
	assert.Equal(t, []string{"a", "b"}, Distinct([]string{"a", "b", "a"}))
	assert.Nil(t, Distinct(nil))
}

func TestHaversineMiles(t *testing.T) {
	la := Location{Latitude: 34.0522, Longitude: -118.2437}
	assert.InDelta(t, 0, HaversineMiles(la, la), 1e-9)

	sf := Location{Latitude: 37.7749, Longitude: -122.4194}
	assert.InDelta(t, 347, HaversineMiles(la, sf), 2)

	// 0.01 degrees of latitude is roughly 0.69 miles
	north := Location{Latitude: 34.0622, Longitude: -118.2437}
	assert.InDelta(t, 0.69, HaversineMiles(la, north), 0.01)
}

func TestNewID(t *testing.T) {
	a, b := NewID("wish"), NewID("wish")
	assert.NotEqual(t, a, b)
	assert.Regexp(t, `^wish-[0-9a-f-]{36}$`, a)
}
