package dining

import (
	"errors"
	"slices"
	"sync"
)

var (
	ErrRestaurantNotFound = errors.New("restaurant not found")
	ErrSlotNotFound       = errors.New("reservation slot not found")
	ErrSlotUnavailable    = errors.New("reservation slot is no longer available")
	ErrInvalidPartySize   = errors.New("party size must be at least 1")
)

// Repository serves the restaurant catalog. Reserve is the only mutation.
type Repository interface {
	ListRestaurants() []Restaurant
	GetRestaurant(id string) (Restaurant, bool)
	Reserve(restaurantID, slotID string, partySize int) (ReservationSlot, error)
}

type memoryRepository struct {
	mu          sync.RWMutex
	restaurants []Restaurant
}

// NewMemoryRepository takes ownership of a deep copy of the catalog so one
// store's bookings never leak into another.
func NewMemoryRepository(catalog Catalog) Repository {
	restaurants := make([]Restaurant, len(catalog.Restaurants))
	for i, r := range catalog.Restaurants {
		restaurants[i] = cloneRestaurant(r)
	}
	return &memoryRepository{restaurants: restaurants}
}

func (r *memoryRepository) ListRestaurants() []Restaurant {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Restaurant, len(r.restaurants))
	for i, restaurant := range r.restaurants {
		out[i] = cloneRestaurant(restaurant)
	}
	return out
}

func (r *memoryRepository) GetRestaurant(id string) (Restaurant, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, restaurant := range r.restaurants {
		if restaurant.ID == id {
			return cloneRestaurant(restaurant), true
		}
	}
	return Restaurant{}, false
}

// Reserve books a slot for partySize guests. A slot flips to unavailable
// exactly once; booking it again fails and leaves it untouched.
func (r *memoryRepository) Reserve(restaurantID, slotID string, partySize int) (ReservationSlot, error) {
	if partySize < 1 {
		return ReservationSlot{}, ErrInvalidPartySize
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	idx := slices.IndexFunc(r.restaurants, func(rest Restaurant) bool { return rest.ID == restaurantID })
	if idx < 0 {
		return ReservationSlot{}, ErrRestaurantNotFound
	}

	slots := r.restaurants[idx].AvailableReservations
	slotIdx := slices.IndexFunc(slots, func(s ReservationSlot) bool { return s.ID == slotID })
	if slotIdx < 0 {
		return ReservationSlot{}, ErrSlotNotFound
	}
	if !slots[slotIdx].Available {
		return ReservationSlot{}, ErrSlotUnavailable
	}

	slots[slotIdx].Available = false
	slots[slotIdx].PartySize = partySize
	return slots[slotIdx], nil
}

func cloneRestaurant(r Restaurant) Restaurant {
	r.Atmosphere = slices.Clone(r.Atmosphere)
	r.Photos = slices.Clone(r.Photos)
	r.DietaryAccommodations = slices.Clone(r.DietaryAccommodations)
	r.AvailableReservations = slices.Clone(r.AvailableReservations)
	r.Menu = slices.Clone(r.Menu)
	return r
}
