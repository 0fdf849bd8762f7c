package domain

import "time"

// Notification types.
const (
	NotifySystem      = "SYSTEM"
	NotifyJob         = "JOB"
	NotifyApplication = "APPLICATION"
	NotifyMessage     = "MESSAGE"
	NotifyPayment     = "PAYMENT"
)

// Notification is an in-app message for one user, delivered live over the
// notifications gateway when the user is connected and persisted regardless.
type Notification struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	UserID    string    `gorm:"index;not null"     json:"userId"`
	Message   string    `gorm:"not null"           json:"message"`
	Type      string    `gorm:"not null;default:SYSTEM" json:"type"`
	Read      bool      `gorm:"not null;default:false"  json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}
