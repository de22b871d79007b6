package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Patient struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name             string    `gorm:"not null" json:"name"`
	Age              *int      `json:"age,omitempty"`
	Allergies        string    `json:"allergies"`
	EmergencyContact string    `json:"emergency_contact"`
	Doctor           string    `json:"doctor"`

	Medications []Medication `gorm:"foreignKey:PatientID" json:"-"`
	CheckIns    []CheckIn    `gorm:"foreignKey:PatientID" json:"-"`

	gorm.Model `json:"-"`
}

func (p *Patient) BeforeCreate(tx *gorm.DB) (err error) {
	p.ID = uuid.New()
	return
}
