package virtual

import (
	"errors"
	"slices"
	"sync"
	"time"
)

var (
	ErrWishlistItemNotFound = errors.New("wishlist item not found")
	ErrAlreadyCompleted     = errors.New("wishlist item already completed")
	ErrPlanNotFound         = errors.New("plan not found")
	ErrInvalidTransition    = errors.New("invalid plan status transition")
)

// Repository owns the virtual date catalog and the couple's shared
// wishlist and plans.
type Repository interface {
	ListVirtualDates() []VirtualDate
	GetVirtualDate(id string) (VirtualDate, bool)

	ListWishlist() []WishlistItem
	GetWishlistItem(id string) (WishlistItem, bool)
	AddWishlistItem(item WishlistItem) WishlistItem
	CompleteWishlistItem(id string, at time.Time) (WishlistItem, error)
	RemoveWishlistItem(id string) bool

	ListPlans() []Plan
	GetPlan(id string) (Plan, bool)
	AddPlan(plan Plan) Plan
	UpdatePlanStatus(id string, status PlanStatus) (Plan, error)
	MarkReminderSent(planID, reminderID string, at time.Time) bool
}

type memoryRepository struct {
	dates []VirtualDate

	mu       sync.RWMutex
	wishlist []WishlistItem
	plans    []Plan
}

// NewMemoryRepository copies the seed so each repository has its own
// wishlist and plans.
func NewMemoryRepository(catalog Catalog) Repository {
	r := &memoryRepository{
		dates:    slices.Clone(catalog.VirtualDates),
		wishlist: make([]WishlistItem, 0, len(catalog.Wishlist)),
		plans:    make([]Plan, 0, len(catalog.Plans)),
	}
	for _, item := range catalog.Wishlist {
		r.wishlist = append(r.wishlist, cloneWishlistItem(item))
	}
	for _, plan := range catalog.Plans {
		r.plans = append(r.plans, clonePlan(plan))
	}
	return r
}

func (r *memoryRepository) ListVirtualDates() []VirtualDate {
	return slices.Clone(r.dates)
}

func (r *memoryRepository) GetVirtualDate(id string) (VirtualDate, bool) {
	if i := slices.IndexFunc(r.dates, func(d VirtualDate) bool { return d.ID == id }); i >= 0 {
		return r.dates[i], true
	}
	return VirtualDate{}, false
}

func (r *memoryRepository) ListWishlist() []WishlistItem {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]WishlistItem, len(r.wishlist))
	for i, item := range r.wishlist {
		items[i] = cloneWishlistItem(item)
	}
	return items
}

func (r *memoryRepository) GetWishlistItem(id string) (WishlistItem, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if i := r.wishlistIndex(id); i >= 0 {
		return cloneWishlistItem(r.wishlist[i]), true
	}
	return WishlistItem{}, false
}

func (r *memoryRepository) AddWishlistItem(item WishlistItem) WishlistItem {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.wishlist = append(r.wishlist, cloneWishlistItem(item))
	return item
}

// CompleteWishlistItem marks an item completed once. The first completion
// timestamp is kept.
func (r *memoryRepository) CompleteWishlistItem(id string, at time.Time) (WishlistItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.wishlistIndex(id)
	if i < 0 {
		return WishlistItem{}, ErrWishlistItemNotFound
	}
	if r.wishlist[i].Completed {
		return cloneWishlistItem(r.wishlist[i]), ErrAlreadyCompleted
	}

	r.wishlist[i].Completed = true
	r.wishlist[i].CompletedDate = &at
	return cloneWishlistItem(r.wishlist[i]), nil
}

func (r *memoryRepository) RemoveWishlistItem(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.wishlistIndex(id)
	if i < 0 {
		return false
	}
	r.wishlist = slices.Delete(r.wishlist, i, i+1)
	return true
}

func (r *memoryRepository) wishlistIndex(id string) int {
	return slices.IndexFunc(r.wishlist, func(item WishlistItem) bool { return item.ID == id })
}

func (r *memoryRepository) ListPlans() []Plan {
	r.mu.RLock()
	defer r.mu.RUnlock()

	plans := make([]Plan, len(r.plans))
	for i, plan := range r.plans {
		plans[i] = clonePlan(plan)
	}
	return plans
}

func (r *memoryRepository) GetPlan(id string) (Plan, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if i := r.planIndex(id); i >= 0 {
		return clonePlan(r.plans[i]), true
	}
	return Plan{}, false
}

func (r *memoryRepository) AddPlan(plan Plan) Plan {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.plans = append(r.plans, clonePlan(plan))
	return plan
}

func (r *memoryRepository) UpdatePlanStatus(id string, status PlanStatus) (Plan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.planIndex(id)
	if i < 0 {
		return Plan{}, ErrPlanNotFound
	}
	if !CanTransition(r.plans[i].Status, status) {
		return clonePlan(r.plans[i]), ErrInvalidTransition
	}

	r.plans[i].Status = status
	return clonePlan(r.plans[i]), nil
}

// MarkReminderSent flips a reminder to sent. It reports false when the
// reminder does not exist or was already sent.
func (r *memoryRepository) MarkReminderSent(planID, reminderID string, at time.Time) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.planIndex(planID)
	if i < 0 {
		return false
	}
	reminders := r.plans[i].Reminders
	j := slices.IndexFunc(reminders, func(rem Reminder) bool { return rem.ID == reminderID })
	if j < 0 || reminders[j].Sent {
		return false
	}

	reminders[j].Sent = true
	reminders[j].SentAt = &at
	return true
}

func (r *memoryRepository) planIndex(id string) int {
	return slices.IndexFunc(r.plans, func(p Plan) bool { return p.ID == id })
}

func cloneWishlistItem(item WishlistItem) WishlistItem {
	if item.Location != nil {
		loc := *item.Location
		item.Location = &loc
	}
	if item.CompletedDate != nil {
		at := *item.CompletedDate
		item.CompletedDate = &at
	}
	return item
}

func clonePlan(plan Plan) Plan {
	plan.Participants = slices.Clone(plan.Participants)
	plan.Reminders = slices.Clone(plan.Reminders)
	return plan
}
