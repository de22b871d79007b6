// models/adherence_log.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AdherenceLog struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	ScheduleID   *uuid.UUID `gorm:"type:uuid;index" json:"schedule_id,omitempty"`
	MedicationID uuid.UUID  `gorm:"type:uuid;index;not null" json:"medication_id"`
	UserID       *uuid.UUID `gorm:"type:uuid;index" json:"user_id,omitempty"`

	Status  string    `gorm:"type:varchar(20);not null" json:"status"` // taken, skipped, missed
	Notes   string    `gorm:"type:text" json:"notes"`
	TakenAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"taken_at"`

	Medication *Medication `gorm:"foreignKey:MedicationID" json:"medication,omitempty"`

	gorm.Model `json:"-"`
}

func (a *AdherenceLog) BeforeCreate(tx *gorm.DB) (err error) {
	a.ID = uuid.New()
	if a.TakenAt.IsZero() {
		a.TakenAt = time.Now().UTC()
	}
	return
}
