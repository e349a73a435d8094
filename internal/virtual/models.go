package virtual

import (
	"time"

	"github.com/imadgeboyega/twogether-backend/internal/recommend"
)

type VirtualDate struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	Type             string   `json:"type"` // movie-sync, game-night, cooking-together, virtual-tour, video-call
	Duration         int      `json:"duration"`
	Instructions     []string `json:"instructions"`
	RequiredApps     []string `json:"required_apps"`
	TimezoneFlexible bool     `json:"timezone_flexible"`
	MatchScore       *int     `json:"match_score,omitempty"`
}

// Preferences is one partner's long-distance profile
type Preferences struct {
	ActivityTypes []string `json:"activity_types" validate:"dive,oneof=movie-sync game-night cooking-together virtual-tour video-call"`
	Timezone      string   `json:"timezone"`
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) rank() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}

type WishlistItem struct {
	ID            string              `json:"id"`
	Title         string              `json:"title"`
	Description   string              `json:"description,omitempty"`
	Category      string              `json:"category"` // activity, restaurant, movie, travel, gift
	Priority      Priority            `json:"priority"`
	EstimatedCost float64             `json:"estimated_cost,omitempty"`
	Location      *recommend.Location `json:"location,omitempty"`
	AddedBy       string              `json:"added_by"`
	Completed     bool                `json:"completed"`
	CompletedDate *time.Time          `json:"completed_date,omitempty"`
	Notes         string              `json:"notes,omitempty"`
}

type PlanStatus string

const (
	StatusPlanned   PlanStatus = "planned"
	StatusConfirmed PlanStatus = "confirmed"
	StatusCompleted PlanStatus = "completed"
	StatusCancelled PlanStatus = "cancelled"
)

// planTransitions lists the statuses reachable from each status
var planTransitions = map[PlanStatus][]PlanStatus{
	StatusPlanned:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
}

// CanTransition reports whether a plan may move from one status to another
func CanTransition(from, to PlanStatus) bool {
	return recommend.Contains(planTransitions[from], to)
}

type Reminder struct {
	ID         string     `json:"id"`
	Message    string     `json:"message"`
	TimeOffset int        `json:"time_offset"` // minutes before the plan
	Sent       bool       `json:"sent"`
	SentAt     *time.Time `json:"sent_at,omitempty"`
}

// Plan is a date scheduled across both partners' timezones
type Plan struct {
	ID             string     `json:"id"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	ScheduledDate  time.Time  `json:"scheduled_date"`
	ScheduledTime  string     `json:"scheduled_time"`
	Timezone1      string     `json:"timezone_1"`
	Timezone2      string     `json:"timezone_2"`
	ConvertedTime1 string     `json:"converted_time_1"`
	ConvertedTime2 string     `json:"converted_time_2"`
	Type           string     `json:"type"` // virtual, in-person, simultaneous
	Participants   []string   `json:"participants"`
	Reminders      []Reminder `json:"reminders"`
	Status         PlanStatus `json:"status"`
}

// Catalog is the seed data for this domain
type Catalog struct {
	VirtualDates []VirtualDate  `json:"virtual_dates"`
	Wishlist     []WishlistItem `json:"wishlist"`
	Plans        []Plan         `json:"plans"`
}
