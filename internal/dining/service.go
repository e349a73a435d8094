// internal/dining/service.go

package dining

import (
	"time"

	"github.com/imadgeboyega/twogether-backend/internal/recommend"
)

// MaxRecommendations caps the ranked restaurant list
const MaxRecommendations = 10

const domain = "restaurants"

type Service interface {
	GetRecommendations(user, partner Preferences, userLocation *recommend.Location, rctx *recommend.Context) []Restaurant
	GetRestaurant(id string) (Restaurant, bool)
	Search(query string) []Restaurant
	GetMenuRecommendations(restaurantID string, user, partner Preferences) []MenuItem
	GetAvailableReservations(restaurantID string, date time.Time, partySize int) []ReservationSlot
	Reserve(restaurantID, slotID string, partySize int) (ReservationSlot, error)
	MakeReservation(restaurantID, slotID string, partySize int) bool
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// GetRecommendations scores every restaurant for the couple. When
// userLocation is set each returned copy carries its distance in miles.
func (s *service) GetRecommendations(user, partner Preferences, userLocation *recommend.Location, rctx *recommend.Context) []Restaurant {
	started := time.Now()

	catalog := s.repo.ListRestaurants()
	scored := make([]Restaurant, 0, len(catalog))
	for _, restaurant := range catalog {
		score, factors, distance := CalculateScore(restaurant, user, partner, userLocation, rctx)
		restaurant.MatchScore = recommend.ScorePtr(score)
		restaurant.Factors = &factors
		restaurant.Distance = distance
		scored = append(scored, restaurant)
	}

	ranked := recommend.Rank(scored, func(r Restaurant) int { return recommend.ScoreOf(r.MatchScore) }, MaxRecommendations)

	scores := make([]int, len(ranked))
	for i, r := range ranked {
		scores[i] = *r.MatchScore
	}
	recommend.RecordRecommendations(domain, started, scores)

	return ranked
}

func (s *service) GetRestaurant(id string) (Restaurant, bool) {
	return s.repo.GetRestaurant(id)
}

// Search matches name, cuisine and any menu item name or description
func (s *service) Search(query string) []Restaurant {
	results := []Restaurant{}
	for _, restaurant := range s.repo.ListRestaurants() {
		if recommend.ContainsFold(restaurant.Name, query) ||
			recommend.ContainsFold(restaurant.CuisineType, query) ||
			menuMatches(restaurant.Menu, query) {
			results = append(results, restaurant)
		}
	}
	return results
}

func menuMatches(menu []MenuItem, query string) bool {
	for _, item := range menu {
		if recommend.ContainsFold(item.Name, query) || recommend.ContainsFold(item.Description, query) {
			return true
		}
	}
	return false
}

func (s *service) GetMenuRecommendations(restaurantID string, user, partner Preferences) []MenuItem {
	restaurant, ok := s.repo.GetRestaurant(restaurantID)
	if !ok {
		return []MenuItem{}
	}
	return FilterMenu(restaurant.Menu, user, partner)
}

// GetAvailableReservations lists open slots on the same UTC calendar day
// that seat at least partySize.
func (s *service) GetAvailableReservations(restaurantID string, date time.Time, partySize int) []ReservationSlot {
	slots := []ReservationSlot{}
	restaurant, ok := s.repo.GetRestaurant(restaurantID)
	if !ok {
		return slots
	}

	for _, slot := range restaurant.AvailableReservations {
		if slot.Available && slot.PartySize >= partySize && sameDay(slot.Date, date) {
			slots = append(slots, slot)
		}
	}
	return slots
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}

func (s *service) Reserve(restaurantID, slotID string, partySize int) (ReservationSlot, error) {
	slot, err := s.repo.Reserve(restaurantID, slotID, partySize)
	recommend.RecordMutation("reservation", err == nil)
	return slot, err
}

// MakeReservation is Reserve reduced to success or failure
func (s *service) MakeReservation(restaurantID, slotID string, partySize int) bool {
	_, err := s.Reserve(restaurantID, slotID, partySize)
	return err == nil
}
