// services/reminder_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"caregiver-backend/models"
	"caregiver-backend/utils"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// ScheduleStore is the slice of the data store the reminder engine reads.
type ScheduleStore interface {
	DistinctTimezones(ctx context.Context) ([]string, error)
	DueSchedules(ctx context.Context, timezone, timeOfDay string) ([]models.MedicationSchedule, error)
	SubscriptionsByUser(ctx context.Context, userID uuid.UUID) ([]models.PushSubscription, error)
	DeleteSubscriptions(ctx context.Context, ids []uuid.UUID) error
}

// PushSender delivers one payload to one subscription. Implementations return
// ErrSubscriptionGone when the endpoint is permanently invalid.
type PushSender interface {
	Send(ctx context.Context, sub models.PushSubscription, title, body string) error
	Configured() bool
}

// ReminderService checks every minute which medication schedules are due in
// their own timezone and fans reminders out to the owning user's push
// subscriptions.
type ReminderService struct {
	store  ScheduleStore
	sender PushSender
	log    *zap.Logger
	cron   *cron.Cron
}

func NewReminderService(store ScheduleStore, sender PushSender, log *zap.Logger) *ReminderService {
	return &ReminderService{
		store:  store,
		sender: sender,
		log:    log,
	}
}

// StartScheduler registers the minute tick on a UTC cron and starts it.
func (s *ReminderService) StartScheduler() {
	c := cron.New(cron.WithLocation(time.UTC))

	if _, err := c.AddFunc("* * * * *", func() {
		s.RunTick(context.Background(), time.Now().UTC())
	}); err != nil {
		s.log.Error("failed to register reminder tick", zap.Error(err))
		return
	}

	c.Start()
	s.cron = c
	s.log.Info("reminder scheduler started")
}

// Stop halts the cron trigger. Does not wait for an in-flight tick.
func (s *ReminderService) Stop() {
	if s.cron != nil {
		s.cron.Stop()
		s.log.Info("reminder scheduler stopped")
	}
}

// RunTick runs one reminder cycle for the given UTC instant. A failure in one
// timezone never aborts the others, and nothing escapes to the caller.
//
// Matching is by exact local minute: a tick skipped for a minute is never
// replayed, and a clock-back DST transition that repeats a wall-clock minute
// can deliver the same reminder twice. Both are accepted limits of
// minute-granularity matching.
func (s *ReminderService) RunTick(ctx context.Context, now time.Time) {
	zones, err := s.store.DistinctTimezones(ctx)
	if err != nil {
		s.log.Error("reminder tick: listing timezones failed", zap.Error(err))
		return
	}
	if len(zones) == 0 {
		s.log.Debug("reminder tick: no schedules with a timezone")
		return
	}

	for _, zone := range zones {
		s.processTimezone(ctx, now, zone)
	}
}

func (s *ReminderService) processTimezone(ctx context.Context, now time.Time, zone string) {
	localTime, weekday, err := utils.LocalClock(now, zone)
	if err != nil {
		s.log.Warn("skipping unresolvable timezone",
			zap.String("timezone", zone),
			zap.Error(err))
		return
	}

	schedules, err := s.store.DueSchedules(ctx, zone, localTime)
	if err != nil {
		s.log.Error("fetching due schedules failed",
			zap.String("timezone", zone),
			zap.Error(err))
		return
	}

	for _, sched := range schedules {
		if !recurrenceDue(sched, weekday) {
			continue
		}
		if sched.Medication == nil {
			s.log.Warn("schedule references a missing medication, skipping",
				zap.String("schedule_id", sched.ID.String()),
				zap.String("timezone", zone))
			continue
		}
		if sched.UserID == nil {
			// The store predicate already excludes these.
			continue
		}

		body := fmt.Sprintf("It's time to take %s (%s).", sched.Medication.Name, sched.Medication.Dosage)
		sent, failed := s.NotifyUser(ctx, *sched.UserID, "Medication Reminder", body)

		s.log.Info("reminder dispatched",
			zap.String("schedule_id", sched.ID.String()),
			zap.String("timezone", zone),
			zap.Int("sent", sent),
			zap.Int("failed", failed),
		)
	}
}

// recurrenceDue decides whether a schedule that already matches the local
// minute should fire on the given weekday. Unrecognized rules (including
// "custom") never fire.
func recurrenceDue(sched models.MedicationSchedule, weekday string) bool {
	switch sched.RecurrenceRule {
	case models.RecurrenceDaily:
		return true
	case models.RecurrenceWeekly:
		return sched.DayOfWeek != nil && *sched.DayOfWeek == weekday
	default:
		return false
	}
}

// NotifyUser sends title/body to every subscription the user holds and returns
// (successes, failures). Endpoints reported permanently gone are deleted in a
// single batch after the loop; a failed delete is logged and never loses the
// counts already computed.
func (s *ReminderService) NotifyUser(ctx context.Context, userID uuid.UUID, title, body string) (int, int) {
	if !s.sender.Configured() {
		s.log.Error("push transport not configured, dropping notification",
			zap.String("user_id", userID.String()))
		return 0, 0
	}

	subs, err := s.store.SubscriptionsByUser(ctx, userID)
	if err != nil {
		s.log.Error("loading subscriptions failed",
			zap.String("user_id", userID.String()),
			zap.Error(err))
		return 0, 0
	}
	if len(subs) == 0 {
		return 0, 0
	}

	var sent, failed int
	var gone []uuid.UUID

	for _, sub := range subs {
		err := s.sender.Send(ctx, sub, title, body)
		switch {
		case err == nil:
			sent++
		case errors.Is(err, ErrSubscriptionGone):
			failed++
			gone = append(gone, sub.ID)
			s.log.Info("push endpoint gone, pruning subscription",
				zap.String("subscription_id", sub.ID.String()))
		default:
			failed++
			s.log.Warn("push delivery failed",
				zap.String("subscription_id", sub.ID.String()),
				zap.Error(err))
		}
	}

	if len(gone) > 0 {
		if err := s.store.DeleteSubscriptions(ctx, gone); err != nil {
			s.log.Error("pruning dead subscriptions failed", zap.Error(err))
		}
	}

	return sent, failed
}
