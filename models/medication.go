package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Medication struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	PatientID uuid.UUID `gorm:"type:uuid;index;not null" json:"patient_id"`

	Name      string `gorm:"not null" json:"name"`
	Dosage    string `gorm:"not null" json:"dosage"`
	Frequency string `json:"frequency"` // free-text, e.g. "twice daily with food"
	Active    bool   `gorm:"default:true" json:"active"`

	Schedules []MedicationSchedule `gorm:"foreignKey:MedicationID" json:"-"`

	gorm.Model `json:"-"`
}

func (m *Medication) BeforeCreate(tx *gorm.DB) (err error) {
	m.ID = uuid.New()
	return
}
