// internal/virtual/service.go

package virtual

import (
	"cmp"
	"fmt"
	"slices"
	"time"

	"github.com/imadgeboyega/twogether-backend/internal/recommend"
)

// MaxRecommendations caps the ranked virtual date list
const MaxRecommendations = 8

const (
	domain         = "virtual"
	reminderOffset = 30 // minutes
)

// NewWishlistItem is the caller-supplied part of a wishlist entry
type NewWishlistItem struct {
	Title         string
	Description   string
	Category      string
	Priority      Priority
	EstimatedCost float64
	Location      *recommend.Location
	AddedBy       string
	Notes         string
}

// NewPlan is the caller-supplied part of a plan
type NewPlan struct {
	Title         string
	Description   string
	ScheduledDate time.Time
	ScheduledTime string
	Timezone1     string
	Timezone2     string
	Type          string
	Participants  []string
}

type Service interface {
	GetRecommendations(user, partner Preferences, rctx *recommend.Context) []VirtualDate
	GetVirtualDate(id string) (VirtualDate, bool)
	Search(query string) []VirtualDate
	ConvertTime(hhmm, from, to string) (string, error)

	AddToWishlist(item NewWishlistItem) WishlistItem
	GetWishlist() []WishlistItem
	GetWishlistItem(id string) (WishlistItem, bool)
	SearchWishlist(query string) []WishlistItem
	Complete(id string) (WishlistItem, error)
	CompleteWishlistItem(id string) bool
	RemoveFromWishlist(id string) bool

	CreatePlan(plan NewPlan) (Plan, error)
	GetPlans() []Plan
	GetPlan(id string) (Plan, bool)
	TransitionPlan(id string, status PlanStatus) (Plan, error)
	UpdatePlanStatus(id string, status PlanStatus) bool

	DispatchReminders(now time.Time) []DueReminder
}

type service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) Service {
	return &service{repo: repo, now: time.Now}
}

func (s *service) GetRecommendations(user, partner Preferences, rctx *recommend.Context) []VirtualDate {
	started := time.Now()

	dates := s.repo.ListVirtualDates()
	for i := range dates {
		dates[i].MatchScore = recommend.ScorePtr(ScoreVirtualDate(dates[i], user, partner, rctx))
	}
	ranked := recommend.Rank(dates, func(d VirtualDate) int { return recommend.ScoreOf(d.MatchScore) }, MaxRecommendations)

	scores := make([]int, len(ranked))
	for i, d := range ranked {
		scores[i] = *d.MatchScore
	}
	recommend.RecordRecommendations(domain, started, scores)

	return ranked
}

func (s *service) GetVirtualDate(id string) (VirtualDate, bool) {
	return s.repo.GetVirtualDate(id)
}

// Search matches title, description and type
func (s *service) Search(query string) []VirtualDate {
	results := []VirtualDate{}
	for _, date := range s.repo.ListVirtualDates() {
		if recommend.ContainsFold(date.Title, query) ||
			recommend.ContainsFold(date.Description, query) ||
			recommend.ContainsFold(date.Type, query) {
			results = append(results, date)
		}
	}
	return results
}

func (s *service) ConvertTime(hhmm, from, to string) (string, error) {
	return ConvertTime(hhmm, from, to)
}

func (s *service) AddToWishlist(item NewWishlistItem) WishlistItem {
	added := s.repo.AddWishlistItem(WishlistItem{
		ID:            recommend.NewID("wish"),
		Title:         item.Title,
		Description:   item.Description,
		Category:      item.Category,
		Priority:      item.Priority,
		EstimatedCost: item.EstimatedCost,
		Location:      item.Location,
		AddedBy:       item.AddedBy,
		Notes:         item.Notes,
	})
	recommend.RecordMutation("wishlist_add", true)
	return added
}

// GetWishlist lists items high priority first, insertion order within a tier
func (s *service) GetWishlist() []WishlistItem {
	items := s.repo.ListWishlist()
	slices.SortStableFunc(items, func(a, b WishlistItem) int {
		return cmp.Compare(b.Priority.rank(), a.Priority.rank())
	})
	return items
}

func (s *service) GetWishlistItem(id string) (WishlistItem, bool) {
	return s.repo.GetWishlistItem(id)
}

// SearchWishlist matches title, description and category
func (s *service) SearchWishlist(query string) []WishlistItem {
	results := []WishlistItem{}
	for _, item := range s.repo.ListWishlist() {
		if recommend.ContainsFold(item.Title, query) ||
			recommend.ContainsFold(item.Description, query) ||
			recommend.ContainsFold(item.Category, query) {
			results = append(results, item)
		}
	}
	return results
}

func (s *service) Complete(id string) (WishlistItem, error) {
	item, err := s.repo.CompleteWishlistItem(id, s.now().UTC())
	recommend.RecordMutation("wishlist_complete", err == nil)
	return item, err
}

func (s *service) CompleteWishlistItem(id string) bool {
	_, err := s.Complete(id)
	return err == nil
}

func (s *service) RemoveFromWishlist(id string) bool {
	ok := s.repo.RemoveWishlistItem(id)
	recommend.RecordMutation("wishlist_remove", ok)
	return ok
}

// CreatePlan localizes the scheduled time for both partners and attaches a
// reminder half an hour before the start.
func (s *service) CreatePlan(plan NewPlan) (Plan, error) {
	time1, err := ConvertTime(plan.ScheduledTime, plan.Timezone1, plan.Timezone1)
	if err != nil {
		return Plan{}, err
	}
	time2, err := ConvertTime(plan.ScheduledTime, plan.Timezone1, plan.Timezone2)
	if err != nil {
		return Plan{}, err
	}

	created := s.repo.AddPlan(Plan{
		ID:             recommend.NewID("sync"),
		Title:          plan.Title,
		Description:    plan.Description,
		ScheduledDate:  plan.ScheduledDate,
		ScheduledTime:  plan.ScheduledTime,
		Timezone1:      plan.Timezone1,
		Timezone2:      plan.Timezone2,
		ConvertedTime1: time1,
		ConvertedTime2: time2,
		Type:           plan.Type,
		Participants:   slices.Clone(plan.Participants),
		Reminders: []Reminder{{
			ID:         recommend.NewID("rem"),
			Message:    fmt.Sprintf("%s starting in %d minutes!", plan.Title, reminderOffset),
			TimeOffset: reminderOffset,
		}},
		Status: StatusPlanned,
	})
	recommend.RecordMutation("plan_create", true)
	return created, nil
}

// GetPlans lists plans by scheduled date, earliest first
func (s *service) GetPlans() []Plan {
	plans := s.repo.ListPlans()
	slices.SortStableFunc(plans, func(a, b Plan) int {
		return a.ScheduledDate.Compare(b.ScheduledDate)
	})
	return plans
}

func (s *service) GetPlan(id string) (Plan, bool) {
	return s.repo.GetPlan(id)
}

func (s *service) TransitionPlan(id string, status PlanStatus) (Plan, error) {
	plan, err := s.repo.UpdatePlanStatus(id, status)
	recommend.RecordMutation("plan_status", err == nil)
	return plan, err
}

func (s *service) UpdatePlanStatus(id string, status PlanStatus) bool {
	_, err := s.TransitionPlan(id, status)
	return err == nil
}
