package dining

import (
	"time"

	"github.com/imadgeboyega/twogether-backend/internal/recommend"
)

// PriceRange is the four-tier restaurant price scale
type PriceRange string

const (
	PriceBudget     PriceRange = "budget"
	PriceModerate   PriceRange = "moderate"
	PriceUpscale    PriceRange = "upscale"
	PriceFineDining PriceRange = "fine-dining"
)

// Ordinal positions the tier on a 0-3 scale, -1 when unknown
func (p PriceRange) Ordinal() int {
	switch p {
	case PriceBudget:
		return 0
	case PriceModerate:
		return 1
	case PriceUpscale:
		return 2
	case PriceFineDining:
		return 3
	default:
		return -1
	}
}

type Restaurant struct {
	ID                    string             `json:"id"`
	Name                  string             `json:"name"`
	CuisineType           string             `json:"cuisine_type"`
	PriceRange            PriceRange         `json:"price_range"`
	Atmosphere            []string           `json:"atmosphere"`
	Rating                float64            `json:"rating"`
	ReviewCount           int                `json:"review_count"`
	Location              recommend.Location `json:"location"`
	Photos                []string           `json:"photos,omitempty"`
	Menu                  []MenuItem         `json:"menu"`
	AvailableReservations []ReservationSlot  `json:"available_reservations"`
	DietaryAccommodations []string           `json:"dietary_accommodations"`

	// Set only on scored copies
	Distance   *float64      `json:"distance,omitempty"` // miles
	MatchScore *int          `json:"match_score,omitempty"`
	Factors    *ScoreFactors `json:"factors,omitempty"`
}

type MenuItem struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	Description        string   `json:"description"`
	Price              float64  `json:"price"`
	Category           string   `json:"category"`
	DietaryTags        []string `json:"dietary_tags"`
	Allergens          []string `json:"allergens"`
	Image              string   `json:"image,omitempty"`
	MatchesPreferences *bool    `json:"matches_preferences,omitempty"`
}

type ReservationSlot struct {
	ID        string    `json:"id"`
	Date      time.Time `json:"date"`
	Time      string    `json:"time"`
	PartySize int       `json:"party_size"`
	Available bool      `json:"available"`
	Price     float64   `json:"price,omitempty"` // premium slots
}

type DietaryRestriction struct {
	Type   string `json:"type" validate:"required,oneof=vegetarian vegan gluten-free keto halal kosher other"`
	Strict bool   `json:"strict"`
	Notes  string `json:"notes,omitempty"`
}

// Preferences is one partner's dining profile
type Preferences struct {
	CuisineTypes         []string             `json:"cuisine_types"`
	DislikedCuisines     []string             `json:"disliked_cuisines"`
	PriceRange           PriceRange           `json:"price_range" validate:"omitempty,oneof=budget moderate upscale fine-dining"`
	AtmospherePreference string               `json:"atmosphere_preference" validate:"omitempty,oneof=casual romantic lively quiet"`
	DietaryRestrictions  []DietaryRestriction `json:"dietary_restrictions" validate:"dive"`
	Allergies            []string             `json:"allergies"`
	MaxDistance          float64              `json:"max_distance" validate:"gte=0"` // miles
}

// RestrictionTypes lists the restriction types in the profile
func (p Preferences) RestrictionTypes() []string {
	types := make([]string, 0, len(p.DietaryRestrictions))
	for _, r := range p.DietaryRestrictions {
		types = append(types, r.Type)
	}
	return types
}

// ScoreFactors breaks a restaurant's match score down by term
type ScoreFactors struct {
	Cuisine    float64 `json:"cuisine"`
	Price      float64 `json:"price"`
	Atmosphere float64 `json:"atmosphere"`
	Dietary    float64 `json:"dietary"`
	Distance   float64 `json:"distance"`
	Rating     float64 `json:"rating"`
	Mood       float64 `json:"mood"`
}

// Total is the raw, unclamped sum of all terms
func (f ScoreFactors) Total() float64 {
	return f.Cuisine + f.Price + f.Atmosphere + f.Dietary + f.Distance + f.Rating + f.Mood
}

// Catalog is the seed data for this domain
type Catalog struct {
	Restaurants []Restaurant `json:"restaurants"`
}
