package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Deprecated - single-row patient summary kept for backward compatibility
// with older frontend builds. New code should use Patient.
type PatientInfo struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name             string    `gorm:"not null" json:"name"`
	Age              *int      `json:"age,omitempty"`
	Allergies        string    `json:"allergies"`
	EmergencyContact string    `json:"emergency_contact"`
	Doctor           string    `json:"doctor"`

	gorm.Model `json:"-"`
}

func (p *PatientInfo) BeforeCreate(tx *gorm.DB) (err error) {
	p.ID = uuid.New()
	return
}
