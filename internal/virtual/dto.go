package virtual

import (
	"time"

	"github.com/imadgeboyega/twogether-backend/internal/recommend"
)

// DTOs for API requests

type RecommendationRequestDTO struct {
	User    Preferences        `json:"user"`
	Partner Preferences        `json:"partner"`
	Context *recommend.Context `json:"context,omitempty" validate:"omitempty"`
}

type AddWishlistItemDTO struct {
	Title         string              `json:"title" validate:"required,max=200"`
	Description   string              `json:"description,omitempty" validate:"max=1000"`
	Category      string              `json:"category" validate:"required,oneof=activity restaurant movie travel gift"`
	Priority      Priority            `json:"priority" validate:"required,oneof=low medium high"`
	EstimatedCost float64             `json:"estimated_cost,omitempty" validate:"gte=0"`
	Location      *recommend.Location `json:"location,omitempty" validate:"omitempty"`
	AddedBy       string              `json:"added_by" validate:"required"`
	Notes         string              `json:"notes,omitempty" validate:"max=1000"`
}

func (d AddWishlistItemDTO) toNew() NewWishlistItem {
	return NewWishlistItem{
		Title:         d.Title,
		Description:   d.Description,
		Category:      d.Category,
		Priority:      d.Priority,
		EstimatedCost: d.EstimatedCost,
		Location:      d.Location,
		AddedBy:       d.AddedBy,
		Notes:         d.Notes,
	}
}

type CreatePlanDTO struct {
	Title         string    `json:"title" validate:"required,max=200"`
	Description   string    `json:"description" validate:"max=1000"`
	ScheduledDate time.Time `json:"scheduled_date" validate:"required"`
	ScheduledTime string    `json:"scheduled_time" validate:"required,datetime=15:04"`
	Timezone1     string    `json:"timezone_1" validate:"required"`
	Timezone2     string    `json:"timezone_2" validate:"required"`
	Type          string    `json:"type" validate:"required,oneof=virtual in-person simultaneous"`
	Participants  []string  `json:"participants" validate:"max=2"`
}

func (d CreatePlanDTO) toNew() NewPlan {
	return NewPlan{
		Title:         d.Title,
		Description:   d.Description,
		ScheduledDate: d.ScheduledDate,
		ScheduledTime: d.ScheduledTime,
		Timezone1:     d.Timezone1,
		Timezone2:     d.Timezone2,
		Type:          d.Type,
		Participants:  d.Participants,
	}
}

type UpdatePlanStatusDTO struct {
	Status PlanStatus `json:"status" validate:"required,oneof=planned confirmed completed cancelled"`
}
