package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"caregiver-backend/models"
)

// ── test fakes ──

type fakeStore struct {
	schedules []models.MedicationSchedule
	subs      map[uuid.UUID][]models.PushSubscription
	tzErr     error
	dueErrs   map[string]error // per-timezone query failures
	deleteErr error
	deleted   []uuid.UUID
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		subs:    make(map[uuid.UUID][]models.PushSubscription),
		dueErrs: make(map[string]error),
	}
}

func (f *fakeStore) DistinctTimezones(_ context.Context) ([]string, error) {
	if f.tzErr != nil {
		return nil, f.tzErr
	}
	seen := make(map[string]bool)
	var zones []string
	for _, s := range f.schedules {
		if s.Timezone != nil && !seen[*s.Timezone] {
			seen[*s.Timezone] = true
			zones = append(zones, *s.Timezone)
		}
	}
	return zones, nil
}

func (f *fakeStore) DueSchedules(_ context.Context, timezone, timeOfDay string) ([]models.MedicationSchedule, error) {
	if err := f.dueErrs[timezone]; err != nil {
		return nil, err
	}
	var due []models.MedicationSchedule
	for _, s := range f.schedules {
		if s.Active && s.UserID != nil && s.Timezone != nil &&
			*s.Timezone == timezone && s.TimeOfDay == timeOfDay {
			due = append(due, s)
		}
	}
	return due, nil
}

func (f *fakeStore) SubscriptionsByUser(_ context.Context, userID uuid.UUID) ([]models.PushSubscription, error) {
	return f.subs[userID], nil
}

func (f *fakeStore) DeleteSubscriptions(_ context.Context, ids []uuid.UUID) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, ids...)
	drop := make(map[uuid.UUID]bool)
	for _, id := range ids {
		drop[id] = true
	}
	for userID, subs := range f.subs {
		var kept []models.PushSubscription
		for _, s := range subs {
			if !drop[s.ID] {
				kept = append(kept, s)
			}
		}
		f.subs[userID] = kept
	}
	return nil
}

type sentPush struct {
	endpoint string
	title    string
	body     string
}

type fakeSender struct {
	unconfigured bool
	failures     map[string]error // endpoint -> forced error
	sent         []sentPush
}

func newFakeSender() *fakeSender {
	return &fakeSender{failures: make(map[string]error)}
}

func (f *fakeSender) Configured() bool { return !f.unconfigured }

func (f *fakeSender) Send(_ context.Context, sub models.PushSubscription, title, body string) error {
	if err := f.failures[sub.Endpoint]; err != nil {
		return err
	}
	f.sent = append(f.sent, sentPush{endpoint: sub.Endpoint, title: title, body: body})
	return nil
}

// ── helpers ──

func newEngine(store *fakeStore, sender *fakeSender) *ReminderService {
	return NewReminderService(store, sender, zap.NewNop())
}

func scheduleFor(userID uuid.UUID, rule string, day *string, tz, timeOfDay string) models.MedicationSchedule {
	return models.MedicationSchedule{
		ID:             uuid.New(),
		MedicationID:   uuid.New(),
		UserID:         &userID,
		TimeOfDay:      timeOfDay,
		RecurrenceRule: rule,
		DayOfWeek:      day,
		Timezone:       &tz,
		Active:         true,
		Medication:     &models.Medication{Name: "Lisinopril", Dosage: "10mg"},
	}
}

func addSubscription(store *fakeStore, userID uuid.UUID, endpoint string) models.PushSubscription {
	sub := models.PushSubscription{
		ID:       uuid.New(),
		UserID:   userID,
		Endpoint: endpoint,
		P256dh:   "p256dh-key",
		Auth:     "auth-secret",
	}
	store.subs[userID] = append(store.subs[userID], sub)
	return sub
}

func strPtr(s string) *string { return &s }

// 2026-01-05 14:00 UTC is Monday 08:00 in America/Chicago (CST, UTC-6).
var chicagoMorning = time.Date(2026, time.January, 5, 14, 0, 0, 0, time.UTC)

// ── tick driver + matcher ──

func TestDailyScheduleFiresAtMatchingLocalMinute(t *testing.T) {
	store := newFakeStore()
	sender := newFakeSender()
	userID := uuid.New()

	store.schedules = []models.MedicationSchedule{
		scheduleFor(userID, models.RecurrenceDaily, nil, "America/Chicago", "08:00"),
	}
	addSubscription(store, userID, "https://push.example/device-1")

	engine := newEngine(store, sender)
	engine.RunTick(context.Background(), chicagoMorning)

	if len(sender.sent) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(sender.sent))
	}
	if sender.sent[0].title != "Medication Reminder" {
		t.Errorf("unexpected title %q", sender.sent[0].title)
	}
	if sender.sent[0].body != "It's time to take Lisinopril (10mg)." {
		t.Errorf("unexpected body %q", sender.sent[0].body)
	}

	// One minute later the local time no longer matches.
	engine.RunTick(context.Background(), chicagoMorning.Add(time.Minute))
	if len(sender.sent) != 1 {
		t.Errorf("expected no extra notification, got %d total", len(sender.sent))
	}
}

func TestDailyScheduleHonorsDSTOffset(t *testing.T) {
	store := newFakeStore()
	sender := newFakeSender()
	userID := uuid.New()

	store.schedules = []models.MedicationSchedule{
		scheduleFor(userID, models.RecurrenceDaily, nil, "America/Chicago", "08:00"),
	}
	addSubscription(store, userID, "https://push.example/device-1")

	engine := newEngine(store, sender)

	// In July, Chicago is on CDT (UTC-5): 13:00 UTC is 08:00 local...
	engine.RunTick(context.Background(), time.Date(2026, time.July, 6, 13, 0, 0, 0, time.UTC))
	if len(sender.sent) != 1 {
		t.Fatalf("expected 1 notification at 13:00 UTC, got %d", len(sender.sent))
	}

	// ...and the winter offset's instant must not fire.
	engine.RunTick(context.Background(), time.Date(2026, time.July, 6, 14, 0, 0, 0, time.UTC))
	if len(sender.sent) != 1 {
		t.Errorf("expected no notification at 14:00 UTC, got %d total", len(sender.sent))
	}
}

func TestWeeklyScheduleFiresOnlyOnItsWeekday(t *testing.T) {
	store := newFakeStore()
	sender := newFakeSender()
	userID := uuid.New()

	store.schedules = []models.MedicationSchedule{
		scheduleFor(userID, models.RecurrenceWeekly, strPtr("monday"), "America/Chicago", "08:00"),
	}
	addSubscription(store, userID, "https://push.example/device-1")

	engine := newEngine(store, sender)

	engine.RunTick(context.Background(), chicagoMorning) // Monday
	if len(sender.sent) != 1 {
		t.Fatalf("expected 1 notification on monday, got %d", len(sender.sent))
	}

	engine.RunTick(context.Background(), chicagoMorning.AddDate(0, 0, 1)) // Tuesday, same local time
	if len(sender.sent) != 1 {
		t.Errorf("expected no notification on tuesday, got %d total", len(sender.sent))
	}
}

func TestCustomRecurrenceNeverFires(t *testing.T) {
	store := newFakeStore()
	sender := newFakeSender()
	userID := uuid.New()

	store.schedules = []models.MedicationSchedule{
		scheduleFor(userID, models.RecurrenceCustom, nil, "America/Chicago", "08:00"),
	}
	addSubscription(store, userID, "https://push.example/device-1")

	newEngine(store, sender).RunTick(context.Background(), chicagoMorning)

	if len(sender.sent) != 0 {
		t.Errorf("custom recurrence should never fire, got %d notifications", len(sender.sent))
	}
}

func TestUnknownTimezoneSkippedWithoutAbortingOthers(t *testing.T) {
	store := newFakeStore()
	sender := newFakeSender()
	userID := uuid.New()

	// The broken zone sorts first in the distinct list.
	store.schedules = []models.MedicationSchedule{
		scheduleFor(userID, models.RecurrenceDaily, nil, "Mars/Olympus", "08:00"),
		scheduleFor(userID, models.RecurrenceDaily, nil, "America/Chicago", "08:00"),
	}
	addSubscription(store, userID, "https://push.example/device-1")

	newEngine(store, sender).RunTick(context.Background(), chicagoMorning)

	if len(sender.sent) != 1 {
		t.Errorf("expected the valid timezone to fire, got %d notifications", len(sender.sent))
	}
}

func TestStoreFailureIsolatedPerTimezone(t *testing.T) {
	store := newFakeStore()
	sender := newFakeSender()
	userID := uuid.New()

	store.schedules = []models.MedicationSchedule{
		scheduleFor(userID, models.RecurrenceDaily, nil, "America/New_York", "09:00"),
		scheduleFor(userID, models.RecurrenceDaily, nil, "America/Chicago", "08:00"),
	}
	store.dueErrs["America/New_York"] = errors.New("connection reset")
	addSubscription(store, userID, "https://push.example/device-1")

	newEngine(store, sender).RunTick(context.Background(), chicagoMorning)

	if len(sender.sent) != 1 {
		t.Errorf("expected the healthy timezone to fire, got %d notifications", len(sender.sent))
	}
}

func TestMissingMedicationSkipped(t *testing.T) {
	store := newFakeStore()
	sender := newFakeSender()
	userID := uuid.New()

	sched := scheduleFor(userID, models.RecurrenceDaily, nil, "America/Chicago", "08:00")
	sched.Medication = nil
	store.schedules = []models.MedicationSchedule{sched}
	addSubscription(store, userID, "https://push.example/device-1")

	newEngine(store, sender).RunTick(context.Background(), chicagoMorning)

	if len(sender.sent) != 0 {
		t.Errorf("schedule without a medication should not send, got %d", len(sender.sent))
	}
}

// ── dispatcher ──

func TestNotifyUserFansOutToAllDevices(t *testing.T) {
	store := newFakeStore()
	sender := newFakeSender()
	userID := uuid.New()

	addSubscription(store, userID, "https://push.example/device-1")
	addSubscription(store, userID, "https://push.example/device-2")

	sent, failed := newEngine(store, sender).NotifyUser(context.Background(), userID, "t", "b")

	if sent != 2 || failed != 0 {
		t.Errorf("expected (2,0), got (%d,%d)", sent, failed)
	}
}

func TestNotifyUserWithoutSubscriptions(t *testing.T) {
	store := newFakeStore()
	sender := newFakeSender()

	sent, failed := newEngine(store, sender).NotifyUser(context.Background(), uuid.New(), "t", "b")

	if sent != 0 || failed != 0 {
		t.Errorf("expected (0,0), got (%d,%d)", sent, failed)
	}
	if len(store.deleted) != 0 {
		t.Errorf("expected no store mutation, got %d deletions", len(store.deleted))
	}
}

func TestNotifyUserPrunesGoneSubscription(t *testing.T) {
	store := newFakeStore()
	sender := newFakeSender()
	userID := uuid.New()

	dead := addSubscription(store, userID, "https://push.example/dead")
	alive := addSubscription(store, userID, "https://push.example/alive")
	sender.failures[dead.Endpoint] = ErrSubscriptionGone

	sent, failed := newEngine(store, sender).NotifyUser(context.Background(), userID, "t", "b")

	if sent != 1 || failed != 1 {
		t.Errorf("expected (1,1), got (%d,%d)", sent, failed)
	}
	if len(store.deleted) != 1 || store.deleted[0] != dead.ID {
		t.Errorf("expected only the dead subscription pruned, got %v", store.deleted)
	}
	remaining := store.subs[userID]
	if len(remaining) != 1 || remaining[0].ID != alive.ID {
		t.Errorf("expected the live subscription to survive, got %v", remaining)
	}
}

func TestNotifyUserKeepsSubscriptionOnTransientFailure(t *testing.T) {
	store := newFakeStore()
	sender := newFakeSender()
	userID := uuid.New()

	flaky := addSubscription(store, userID, "https://push.example/flaky")
	addSubscription(store, userID, "https://push.example/ok")
	sender.failures[flaky.Endpoint] = errors.New("503 service unavailable")

	sent, failed := newEngine(store, sender).NotifyUser(context.Background(), userID, "t", "b")

	if sent != 1 || failed != 1 {
		t.Errorf("expected (1,1), got (%d,%d)", sent, failed)
	}
	if len(store.deleted) != 0 {
		t.Errorf("transient failure must not prune, got %v", store.deleted)
	}
}

func TestNotifyUserDeleteFailureKeepsCounts(t *testing.T) {
	store := newFakeStore()
	sender := newFakeSender()
	userID := uuid.New()

	dead := addSubscription(store, userID, "https://push.example/dead")
	addSubscription(store, userID, "https://push.example/alive")
	sender.failures[dead.Endpoint] = ErrSubscriptionGone
	store.deleteErr = errors.New("deadlock detected")

	sent, failed := newEngine(store, sender).NotifyUser(context.Background(), userID, "t", "b")

	if sent != 1 || failed != 1 {
		t.Errorf("expected (1,1) despite delete failure, got (%d,%d)", sent, failed)
	}
}

func TestNotifyUserUnconfiguredTransport(t *testing.T) {
	store := newFakeStore()
	sender := newFakeSender()
	sender.unconfigured = true
	userID := uuid.New()

	addSubscription(store, userID, "https://push.example/device-1")

	sent, failed := newEngine(store, sender).NotifyUser(context.Background(), userID, "t", "b")

	if sent != 0 || failed != 0 {
		t.Errorf("expected (0,0) when unconfigured, got (%d,%d)", sent, failed)
	}
	if len(sender.sent) != 0 {
		t.Errorf("expected no delivery attempts, got %d", len(sender.sent))
	}
}
