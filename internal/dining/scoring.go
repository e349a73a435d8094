package dining

import (
	"math"
	"strings"

	"github.com/imadgeboyega/twogether-backend/internal/recommend"
)

const (
	dislikePenalty      = -50.0
	bothLikeBonus       = 30.0
	oneLikeBonus        = 15.0
	priceMax            = 25.0
	pricePerTier        = 8.0
	bothAtmosphereBonus = 20.0
	oneAtmosphereBonus  = 10.0
	dietaryWeight       = 15.0
	distanceWeight      = 10.0
	ratingMultiplier    = 2.0
	moodAtmosphereBonus = 5.0
)

// CalculateScore scores one restaurant for the couple. userLocation may be
// nil, in which case distance is neither scored nor reported.
func CalculateScore(restaurant Restaurant, user, partner Preferences, userLocation *recommend.Location, rctx *recommend.Context) (int, ScoreFactors, *float64) {
	factors := ScoreFactors{
		Cuisine:    cuisineScore(restaurant.CuisineType, user, partner),
		Price:      priceScore(restaurant.PriceRange, user.PriceRange, partner.PriceRange),
		Atmosphere: atmosphereScore(restaurant.Atmosphere, user.AtmospherePreference, partner.AtmospherePreference),
		Dietary:    dietaryScore(restaurant.DietaryAccommodations, user, partner),
		Rating:     restaurant.Rating * ratingMultiplier,
	}

	var distance *float64
	if userLocation != nil {
		miles := recommend.HaversineMiles(*userLocation, restaurant.Location)
		distance = &miles
		factors.Distance = distanceScore(miles, math.Max(user.MaxDistance, partner.MaxDistance))
	}

	if moods := rctx.CoupleMoods(); len(moods) > 0 {
		factors.Mood = float64(recommend.MoodAtmospheres.CountMatches(restaurant.Atmosphere, moods...)) * moodAtmosphereBonus
	}

	return recommend.Clamp(factors.Total()), factors, distance
}

// cuisineScore applies the dislike penalty and the like bonus independently;
// both land when a cuisine is liked by one partner and disliked by the other.
func cuisineScore(cuisine string, user, partner Preferences) float64 {
	score := 0.0
	if recommend.Contains(user.DislikedCuisines, cuisine) || recommend.Contains(partner.DislikedCuisines, cuisine) {
		score += dislikePenalty
	}

	userLikes := recommend.Contains(user.CuisineTypes, cuisine)
	partnerLikes := recommend.Contains(partner.CuisineTypes, cuisine)
	switch {
	case userLikes && partnerLikes:
		score += bothLikeBonus
	case userLikes || partnerLikes:
		score += oneLikeBonus
	}
	return score
}

// priceScore decays with the mean tier distance between each partner's
// preferred tier and the restaurant's.
func priceScore(tier, userTier, partnerTier PriceRange) float64 {
	restaurant := tier.Ordinal()
	userDiff := math.Abs(float64(userTier.Ordinal() - restaurant))
	partnerDiff := math.Abs(float64(partnerTier.Ordinal() - restaurant))
	avgDiff := (userDiff + partnerDiff) / 2

	return math.Max(0, priceMax-avgDiff*pricePerTier)
}

func atmosphereScore(atmosphere []string, userPref, partnerPref string) float64 {
	userMatch := recommend.Contains(atmosphere, userPref)
	partnerMatch := recommend.Contains(atmosphere, partnerPref)
	switch {
	case userMatch && partnerMatch:
		return bothAtmosphereBonus
	case userMatch || partnerMatch:
		return oneAtmosphereBonus
	default:
		return 0
	}
}

// dietaryScore is the share of distinct restriction types that show up as a
// substring of one of the restaurant's accommodation notes.
func dietaryScore(accommodations []string, user, partner Preferences) float64 {
	restrictions := recommend.Distinct(append(user.RestrictionTypes(), partner.RestrictionTypes()...))

	matches := 0
	for _, restriction := range restrictions {
		for _, accommodation := range accommodations {
			if strings.Contains(accommodation, restriction) {
				matches++
				break
			}
		}
	}

	return float64(matches) / math.Max(1, float64(len(restrictions))) * dietaryWeight
}

func distanceScore(miles, maxDistance float64) float64 {
	if maxDistance <= 0 || miles > maxDistance {
		return 0
	}
	return math.Max(0, distanceWeight-(miles/maxDistance)*distanceWeight)
}

// FilterMenu flags each menu item with whether it suits both partners: no
// allergen from either allergy list and every restriction type honored.
// Suitable items come first; relative order is otherwise unchanged.
func FilterMenu(menu []MenuItem, user, partner Preferences) []MenuItem {
	restrictions := append(user.RestrictionTypes(), partner.RestrictionTypes()...)

	matching := make([]MenuItem, 0, len(menu))
	rest := make([]MenuItem, 0)
	for _, item := range menu {
		ok := !recommend.HasAllergen(item.Allergens, user.Allergies, partner.Allergies) &&
			recommend.SatisfiesRestrictions(item.DietaryTags, restrictions)
		item.MatchesPreferences = &ok
		if ok {
			matching = append(matching, item)
		} else {
			rest = append(rest, item)
		}
	}
	return append(matching, rest...)
}
