package recommend

import "slices"

// Table maps a mood to the tags it favors
type Table map[Mood][]string

// Tags returns the union of tags for the given moods, in table order.
func (t Table) Tags(moods ...Mood) []string {
	var tags []string
	for _, mood := range moods {
		tags = append(tags, t[mood]...)
	}
	return Distinct(tags)
}

// Matches reports whether tag is favored by any of the moods
func (t Table) Matches(tag string, moods ...Mood) bool {
	return slices.Contains(t.Tags(moods...), tag)
}

// CountMatches counts how many of tags are favored by any of the moods
func (t Table) CountMatches(tags []string, moods ...Mood) int {
	count := 0
	for _, tag := range tags {
		if t.Matches(tag, moods...) {
			count++
		}
	}
	return count
}

// TimeTable maps a time of day to the tags it favors
type TimeTable map[TimeOfDay][]string

// Matches reports whether tag is favored at the given time of day
func (t TimeTable) Matches(tag string, at TimeOfDay) bool {
	for _, candidate := range t[at] {
		if candidate == tag {
			return true
		}
	}
	return false
}

// MoodGenres favors movie genres per mood
var MoodGenres = Table{
	MoodRomantic:    {"Romance", "Drama"},
	MoodAdventurous: {"Adventure", "Action"},
	MoodHappy:       {"Comedy", "Animation"},
	MoodRelaxed:     {"Drama", "Romance"},
	MoodEnergetic:   {"Action", "Thriller"},
	MoodCozy:        {"Romance", "Comedy"},
}

// MoodAtmospheres favors restaurant atmospheres per mood
var MoodAtmospheres = Table{
	MoodRomantic:  {"romantic", "quiet"},
	MoodHappy:     {"lively", "casual"},
	MoodRelaxed:   {"quiet", "casual"},
	MoodEnergetic: {"lively"},
	MoodCozy:      {"quiet", "romantic"},
}

// MoodCuisines favors recipe cuisines per mood
var MoodCuisines = Table{
	MoodRomantic:    {"French", "Italian"},
	MoodAdventurous: {"Thai", "Indian", "Mexican"},
	MoodCozy:        {"Italian", "American"},
	MoodEnergetic:   {"Thai", "Mexican"},
}

// MoodGameTypes favors game types per mood
var MoodGameTypes = Table{
	MoodEnergetic:   {"video", "party"},
	MoodRelaxed:     {"board", "card"},
	MoodCompetitive: {"board", "video"},
	MoodCozy:        {"card", "trivia"},
}

// MoodDIYCategories favors home activity categories per mood
var MoodDIYCategories = Table{
	MoodCreative:   {"diy"},
	MoodRomantic:   {"diy"},
	MoodCozy:       {"diy"},
	MoodProductive: {"diy"},
}

// MoodVirtualTypes favors virtual date types per mood
var MoodVirtualTypes = Table{
	MoodRomantic:    {"movie-sync", "video-call", "cooking-together"},
	MoodEnergetic:   {"game-night", "video-call"},
	MoodRelaxed:     {"video-call", "virtual-tour", "movie-sync"},
	MoodAdventurous: {"game-night", "virtual-tour"},
	MoodCozy:        {"movie-sync", "cooking-together", "video-call"},
}

// TimeOfDayVirtualTypes favors virtual date types per time of day
var TimeOfDayVirtualTypes = TimeTable{
	Morning:   {"video-call", "cooking-together"},
	Afternoon: {"virtual-tour", "game-night"},
	Evening:   {"movie-sync", "game-night", "video-call"},
	Night:     {"movie-sync", "virtual-tour"},
}
