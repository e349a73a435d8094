// internal/virtual/reminders.go

package virtual

import (
	"context"
	"time"

	"github.com/imadgeboyega/twogether-backend/internal/logging"
	"github.com/imadgeboyega/twogether-backend/internal/recommend"
)

// DueReminder is a reminder that has just been marked sent
type DueReminder struct {
	PlanID   string    `json:"plan_id"`
	Title    string    `json:"title"`
	Reminder Reminder  `json:"reminder"`
	StartsAt time.Time `json:"starts_at"`
}

// DispatchReminders marks every reminder whose window has opened as sent and
// returns them. A reminder is due from TimeOffset minutes before the plan
// starts until the start itself; plans that are cancelled or completed, or
// that already started, are skipped.
func (s *service) DispatchReminders(now time.Time) []DueReminder {
	var due []DueReminder

	for _, plan := range s.repo.ListPlans() {
		if plan.Status != StatusPlanned && plan.Status != StatusConfirmed {
			continue
		}
		startsAt, err := plan.StartsAt()
		if err != nil || !now.Before(startsAt) {
			continue
		}

		for _, reminder := range plan.Reminders {
			if reminder.Sent {
				continue
			}
			opensAt := startsAt.Add(-time.Duration(reminder.TimeOffset) * time.Minute)
			if now.Before(opensAt) {
				continue
			}
			if !s.repo.MarkReminderSent(plan.ID, reminder.ID, now) {
				continue
			}

			reminder.Sent = true
			reminder.SentAt = &now
			due = append(due, DueReminder{PlanID: plan.ID, Title: plan.Title, Reminder: reminder, StartsAt: startsAt})
			recommend.RecordMutation("reminder_dispatch", true)
		}
	}
	return due
}

// ReminderScheduler periodically dispatches due plan reminders
type ReminderScheduler struct {
	service  Service
	interval time.Duration
	now      func() time.Time
}

// NewReminderScheduler creates a scheduler; a zero interval means one minute
func NewReminderScheduler(service Service, interval time.Duration) *ReminderScheduler {
	if interval == 0 {
		interval = time.Minute
	}

	return &ReminderScheduler{
		service:  service,
		interval: interval,
		now:      time.Now,
	}
}

// Start runs until ctx is cancelled
func (s *ReminderScheduler) Start(ctx context.Context) {
	logger := logging.WithComponent("reminders")
	logger.Info().Dur("interval", s.interval).Msg("starting reminder scheduler")

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	// Run immediately on start
	s.dispatch()

	for {
		select {
		case <-ticker.C:
			s.dispatch()
		case <-ctx.Done():
			logger.Info().Msg("context cancelled, stopping reminder scheduler")
			return
		}
	}
}

func (s *ReminderScheduler) dispatch() {
	logger := logging.WithComponent("reminders")
	for _, due := range s.service.DispatchReminders(s.now().UTC()) {
		logger.Info().
			Str("plan_id", due.PlanID).
			Str("reminder_id", due.Reminder.ID).
			Time("starts_at", due.StartsAt).
			Msg(due.Reminder.Message)
	}
}
