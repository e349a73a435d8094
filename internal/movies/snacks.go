package movies

import "github.com/imadgeboyega/twogether-backend/internal/recommend"

// MaxSnackRecommendations caps the snack pairing list
const MaxSnackRecommendations = 4

// GenreSnacks pairs movie genres with snack ids
var GenreSnacks = map[string][]string{
	"Action":    {"spicy-nachos", "popcorn-classic"},
	"Comedy":    {"popcorn-classic", "cheese-crackers"},
	"Romance":   {"chocolate-covered-strawberries", "fruit-bowl"},
	"Horror":    {"spicy-nachos", "trail-mix"},
	"Drama":     {"cheese-crackers", "fruit-bowl"},
	"Animation": {"fruit-bowl", "trail-mix"},
}

// PairSnacks picks snacks for a set of genres, skipping anything either
// partner is allergic to. When no genre has a pairing every snack is a
// candidate. Results keep catalog order.
func PairSnacks(snacks []Snack, genres []string, user, partner SnackPreferences) []Snack {
	paired := make(map[string]bool)
	for _, genre := range genres {
		for _, id := range GenreSnacks[genre] {
			paired[id] = true
		}
	}

	result := make([]Snack, 0, MaxSnackRecommendations)
	for _, snack := range snacks {
		if len(paired) > 0 && !paired[snack.ID] {
			continue
		}
		if recommend.HasAllergen(snack.Allergens, user.Allergies, partner.Allergies) {
			continue
		}
		result = append(result, snack)
		if len(result) == MaxSnackRecommendations {
			break
		}
	}
	return result
}
