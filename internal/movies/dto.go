package movies

import "github.com/imadgeboyega/twogether-backend/internal/recommend"

// DTOs for API requests

type RecommendationRequestDTO struct {
	User    Preferences        `json:"user" validate:"required"`
	Partner Preferences        `json:"partner" validate:"required"`
	Context *recommend.Context `json:"context,omitempty" validate:"omitempty"`
}

type SnackRequestDTO struct {
	Genres  []string         `json:"genres"`
	User    SnackPreferences `json:"user"`
	Partner SnackPreferences `json:"partner"`
}
