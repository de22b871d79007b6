// models/push_subscription.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PushSubscription holds one browser push endpoint for a user. A user can
// hold several (one per device); Endpoint is the natural key for dedup.
//
// No DeletedAt here: rows are removed for real when an endpoint is pruned or
// the user unsubscribes. A soft-deleted row would keep occupying the
// (user_id, endpoint) unique index and block the same device from ever
// subscribing again.
type PushSubscription struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;index;not null;uniqueIndex:idx_user_endpoint,priority:1" json:"user_id"`

	Endpoint string `gorm:"not null;uniqueIndex:idx_user_endpoint,priority:2" json:"endpoint"`
	P256dh   string `gorm:"not null" json:"-"` // public key for payload encryption
	Auth     string `gorm:"not null" json:"-"` // auth secret

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (p *PushSubscription) BeforeCreate(tx *gorm.DB) (err error) {
	p.ID = uuid.New()
	return
}
