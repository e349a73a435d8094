package home

import (
	"strings"

	"github.com/imadgeboyega/twogether-backend/internal/recommend"
)

// ScoreRecipe weighs difficulty against the user's energy, cook time,
// dietary restrictions, allergies and mood cuisines.
func ScoreRecipe(recipe Recipe, user, partner Preferences, rctx *recommend.Context) int {
	score := 0.0

	if recipe.Difficulty == recommend.PreferredDifficulty(rctx) {
		score += 25
	}

	if rctx.HasAvailableTime() {
		if recipe.CookTime <= rctx.AvailableTime {
			score += 20
		} else {
			score -= 10
		}
	}

	restrictions := append(append([]string{}, user.Cooking.DietaryRestrictions...), partner.Cooking.DietaryRestrictions...)
	if len(restrictions) > 0 {
		if recommend.SatisfiesRestrictions(recipe.DietaryTags, restrictions) {
			score += 15
		} else {
			score -= 20
		}
	}

	if recommend.HasAllergen(recipe.Allergens, user.Cooking.Allergies, partner.Cooking.Allergies) {
		score -= 50
	}

	if recommend.MoodCuisines.Matches(recipe.Cuisine, rctx.CoupleMoods()...) {
		score += 10
	}

	return recommend.Clamp(score)
}

// IsTwoPlayer reports whether a player count string admits two players
func IsTwoPlayer(players string) bool {
	return players == "2" || strings.Contains(players, "2")
}

func ScoreGame(game Game, user, partner Preferences, rctx *recommend.Context) int {
	score := 0.0

	if IsTwoPlayer(game.Players) {
		score += 30
	}

	if rctx.HasAvailableTime() {
		switch {
		case game.Duration <= rctx.AvailableTime:
			score += 20
		case game.Duration <= rctx.AvailableTime+30:
			score += 10
		default:
			score -= 15
		}
	}

	if game.Difficulty == recommend.PreferredDifficulty(rctx) {
		score += 15
	}

	if recommend.Contains(user.Games.GameTypes, game.Type) || recommend.Contains(partner.Games.GameTypes, game.Type) {
		score += 20
	}

	if recommend.MoodGameTypes.Matches(game.Type, rctx.CoupleMoods()...) {
		score += 10
	}

	return recommend.Clamp(score)
}

func ScoreActivity(activity Activity, user, partner Preferences, rctx *recommend.Context) int {
	score := 0.0

	if activity.SkillLevel == AverageSkill(user.Craft.SkillLevel, partner.Craft.SkillLevel) {
		score += 25
	}

	if rctx.HasAvailableTime() {
		if activity.Duration <= rctx.AvailableTime {
			score += 20
		} else {
			score -= 10
		}
	}

	if rctx.HasBudget() {
		if activity.EstimatedCost <= rctx.Budget {
			score += 15
		} else {
			score -= 20
		}
	}

	if recommend.MoodDIYCategories.Matches(activity.Category, rctx.CoupleMoods()...) {
		score += 10
	}

	return recommend.Clamp(score)
}

// AverageSkill floors the mean of both partners' skill ordinals. An empty
// or unknown level counts as beginner.
func AverageSkill(a, b SkillLevel) SkillLevel {
	return skillLevels[(skillOrdinal(a)+skillOrdinal(b))/2]
}

func skillOrdinal(level SkillLevel) int {
	for i, l := range skillLevels {
		if l == level {
			return i
		}
	}
	return 0
}
