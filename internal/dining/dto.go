package dining

import "github.com/imadgeboyega/twogether-backend/internal/recommend"

// DTOs for API requests

type RecommendationRequestDTO struct {
	User         Preferences         `json:"user" validate:"required"`
	Partner      Preferences         `json:"partner" validate:"required"`
	UserLocation *recommend.Location `json:"user_location,omitempty" validate:"omitempty"`
	Context      *recommend.Context  `json:"context,omitempty" validate:"omitempty"`
}

type MenuRequestDTO struct {
	User    Preferences `json:"user"`
	Partner Preferences `json:"partner"`
}

type ReservationRequestDTO struct {
	PartySize int `json:"party_size" validate:"required,min=1,max=20"`
}
