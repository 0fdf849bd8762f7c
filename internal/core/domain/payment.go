package domain

import "time"

// Payment statuses.
const (
	PaymentPending   = "PENDING"
	PaymentSucceeded = "SUCCEEDED"
	PaymentFailed    = "FAILED"
)

// Payment records one payment intent. Provider integration is stubbed; the
// row is the system of record for admin revenue reporting.
type Payment struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	UserID       string    `gorm:"index;not null"     json:"userId"`
	Amount       float64   `gorm:"not null"           json:"amount"`
	Currency     string    `gorm:"not null;default:USD" json:"currency"`
	Status       string    `gorm:"not null;default:PENDING" json:"status"`
	ClientSecret string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
