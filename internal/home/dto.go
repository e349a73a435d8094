package home

import "github.com/imadgeboyega/twogether-backend/internal/recommend"

type RecommendationRequestDTO struct {
	User    Preferences        `json:"user"`
	Partner Preferences        `json:"partner"`
	Context *recommend.Context `json:"context,omitempty" validate:"omitempty"`
}
