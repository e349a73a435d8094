// Package recommend holds the pieces every domain scorer shares: the
// situational context, mood lookup tables, score clamping and ranking,
// text search and dietary rules.
package recommend

// Mood is a partner's current mood category
type Mood string

const (
	MoodHappy       Mood = "happy"
	MoodRomantic    Mood = "romantic"
	MoodAdventurous Mood = "adventurous"
	MoodRelaxed     Mood = "relaxed"
	MoodEnergetic   Mood = "energetic"
	MoodCozy        Mood = "cozy"
	MoodSpontaneous Mood = "spontaneous"
	MoodCompetitive Mood = "competitive"
	MoodCreative    Mood = "creative"
	MoodProductive  Mood = "productive"
)

// Energy is a partner's energy level
type Energy string

const (
	EnergyLow    Energy = "low"
	EnergyMedium Energy = "medium"
	EnergyHigh   Energy = "high"
)

// TimeOfDay buckets the part of the day a date happens in
type TimeOfDay string

const (
	Morning   TimeOfDay = "morning"
	Afternoon TimeOfDay = "afternoon"
	Evening   TimeOfDay = "evening"
	Night     TimeOfDay = "night"
)

// Difficulty is shared by recipes and games
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// MoodEntry is one partner's mood check-in
type MoodEntry struct {
	Mood   Mood   `json:"mood" validate:"required"`
	Energy Energy `json:"energy,omitempty" validate:"omitempty,oneof=low medium high"`
	Notes  string `json:"notes,omitempty"`
}

// Context carries the situational modifiers of one scoring call. Every field
// is optional; a missing field drops the scoring term that depends on it.
type Context struct {
	UserMood      *MoodEntry `json:"user_mood,omitempty" validate:"omitempty"`
	PartnerMood   *MoodEntry `json:"partner_mood,omitempty" validate:"omitempty"`
	Weather       string     `json:"weather,omitempty"`
	TimeOfDay     TimeOfDay  `json:"time_of_day,omitempty" validate:"omitempty,oneof=morning afternoon evening night"`
	DayOfWeek     string     `json:"day_of_week,omitempty"`
	Season        string     `json:"season,omitempty" validate:"omitempty,oneof=spring summer fall winter"`
	AvailableTime int        `json:"available_time,omitempty" validate:"gte=0"` // minutes, 0 = unknown
	Budget        float64    `json:"budget,omitempty" validate:"gte=0"`         // 0 = unknown
	Location      *Location  `json:"location,omitempty" validate:"omitempty"`
}

// CoupleMoods returns the user's and the partner's moods, user first. Mood
// terms only apply when both partners shared a mood, so a context with
// one mood or none yields nil.
func (c *Context) CoupleMoods() []Mood {
	if c == nil || c.UserMood == nil || c.PartnerMood == nil {
		return nil
	}
	if c.UserMood.Mood == "" || c.PartnerMood.Mood == "" {
		return nil
	}
	return []Mood{c.UserMood.Mood, c.PartnerMood.Mood}
}

// HasAvailableTime reports whether a time budget was supplied
func (c *Context) HasAvailableTime() bool {
	return c != nil && c.AvailableTime > 0
}

// HasBudget reports whether a money budget was supplied
func (c *Context) HasBudget() bool {
	return c != nil && c.Budget > 0
}

// PreferredDifficulty maps the user's energy to a difficulty: low energy
// prefers easy, high prefers hard, everything else (including no context)
// prefers medium.
func PreferredDifficulty(c *Context) Difficulty {
	if c == nil || c.UserMood == nil {
		return DifficultyMedium
	}
	switch c.UserMood.Energy {
	case EnergyLow:
		return DifficultyEasy
	case EnergyHigh:
		return DifficultyHard
	default:
		return DifficultyMedium
	}
}
