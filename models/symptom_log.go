// models/symptom_log.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SymptomLog struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	PatientID uuid.UUID  `gorm:"type:uuid;index;not null" json:"patient_id"`
	UserID    *uuid.UUID `gorm:"type:uuid;index" json:"user_id,omitempty"`

	Symptom    string    `gorm:"not null" json:"symptom"`
	Severity   int       `gorm:"not null" json:"severity"` // 1 (mild) to 5 (severe)
	Notes      string    `gorm:"type:text" json:"notes"`
	ObservedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"observed_at"`

	Patient *Patient `gorm:"foreignKey:PatientID" json:"-"`

	gorm.Model `json:"-"`
}

func (s *SymptomLog) BeforeCreate(tx *gorm.DB) (err error) {
	s.ID = uuid.New()
	if s.ObservedAt.IsZero() {
		s.ObservedAt = time.Now().UTC()
	}
	return
}
