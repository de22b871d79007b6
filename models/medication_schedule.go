// models/medication_schedule.go
package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Recurrence rules. "custom" is accepted and stored but the reminder engine
// treats it as never due.
const (
	RecurrenceDaily  = "daily"
	RecurrenceWeekly = "weekly"
	RecurrenceCustom = "custom"
)

// MedicationSchedule is a recurring reminder rule. TimeOfDay is a local
// "HH:MM" wall-clock string in Timezone; schedules with a null timezone are
// never picked up by the reminder engine.
type MedicationSchedule struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	MedicationID uuid.UUID  `gorm:"type:uuid;index;not null" json:"medication_id"`
	UserID       *uuid.UUID `gorm:"type:uuid;index" json:"user_id,omitempty"`
	PatientID    *uuid.UUID `gorm:"type:uuid;index" json:"patient_id,omitempty"`

	TimeOfDay      string  `gorm:"type:varchar(5);not null" json:"time_of_day"`             // "HH:MM"
	RecurrenceRule string  `gorm:"type:varchar(20);default:'daily'" json:"recurrence_rule"` // daily | weekly | custom
	DayOfWeek      *string `gorm:"type:varchar(10)" json:"day_of_week,omitempty"`           // lowercase full name, weekly only
	Timezone       *string `gorm:"type:varchar(64);index" json:"timezone,omitempty"`        // IANA identifier
	Active         bool    `gorm:"default:true" json:"active"`

	Medication *Medication `gorm:"foreignKey:MedicationID" json:"medication,omitempty"`

	gorm.Model `json:"-"`
}

func (s *MedicationSchedule) BeforeCreate(tx *gorm.DB) (err error) {
	s.ID = uuid.New()
	return
}

// Normalize keeps day_of_week consistent with the recurrence rule: only
// weekly schedules carry a weekday, and it is stored lowercase.
func (s *MedicationSchedule) Normalize() {
	if s.RecurrenceRule != RecurrenceWeekly {
		s.DayOfWeek = nil
		return
	}
	if s.DayOfWeek != nil {
		day := strings.ToLower(strings.TrimSpace(*s.DayOfWeek))
		s.DayOfWeek = &day
	}
}

func (s *MedicationSchedule) BeforeSave(tx *gorm.DB) (err error) {
	s.Normalize()
	return
}
