// services/reminder_store.go
package services

import (
	"context"

	"caregiver-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormScheduleStore backs the reminder engine with the application database.
// Every method is one short query; the engine never holds a transaction open
// across a tick.
type gormScheduleStore struct {
	db *gorm.DB
}

func NewGormScheduleStore(db *gorm.DB) ScheduleStore {
	return &gormScheduleStore{db: db}
}

func (s *gormScheduleStore) DistinctTimezones(ctx context.Context) ([]string, error) {
	var zones []string
	err := s.db.WithContext(ctx).
		Model(&models.MedicationSchedule{}).
		Where("timezone IS NOT NULL").
		Distinct().
		Pluck("timezone", &zones).Error
	return zones, err
}

func (s *gormScheduleStore) DueSchedules(ctx context.Context, timezone, timeOfDay string) ([]models.MedicationSchedule, error) {
	var schedules []models.MedicationSchedule
	err := s.db.WithContext(ctx).
		Preload("Medication").
		Where("active = ? AND user_id IS NOT NULL AND timezone = ? AND time_of_day = ?",
			true, timezone, timeOfDay).
		Find(&schedules).Error
	return schedules, err
}

func (s *gormScheduleStore) SubscriptionsByUser(ctx context.Context, userID uuid.UUID) ([]models.PushSubscription, error) {
	var subs []models.PushSubscription
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&subs).Error
	return subs, err
}

func (s *gormScheduleStore) DeleteSubscriptions(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).
		Where("id IN ?", ids).
		Delete(&models.PushSubscription{}).Error
}
