package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CheckIn struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	UserID    *uuid.UUID `gorm:"type:uuid;index" json:"user_id,omitempty"`
	PatientID uuid.UUID  `gorm:"type:uuid;index;not null" json:"patient_id"`

	Category  string    `gorm:"not null" json:"category"` // e.g. "meals", "mobility", "mood"
	Data      JSONB     `gorm:"type:jsonb;not null;default:'{}'" json:"data"`
	Timestamp time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"timestamp"`

	User    *User    `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Patient *Patient `gorm:"foreignKey:PatientID" json:"-"`

	gorm.Model `json:"-"`
}

func (ci *CheckIn) BeforeCreate(tx *gorm.DB) (err error) {
	ci.ID = uuid.New()
	if ci.Timestamp.IsZero() {
		ci.Timestamp = time.Now().UTC()
	}
	return
}

// Custom JSONB type for the free-form check-in payload
type JSONB map[string]interface{}

func (j JSONB) Value() (driver.Value, error) {
	return json.Marshal(j)
}

func (j *JSONB) Scan(value interface{}) error {
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(b, &j)
}
