package domain

import "time"

// Session binds one refresh-token grant to a user so that otherwise-stateless
// JWTs can be revoked server side. At most one live row exists per refresh
// token; a successful refresh deletes the row and inserts a replacement.
type Session struct {
	ID           string    `gorm:"primaryKey;size:36"   json:"id"`
	UserID       string    `gorm:"index;not null"       json:"userId"`
	RefreshToken string    `gorm:"uniqueIndex;not null" json:"-"`
	AccessToken  string    `gorm:"uniqueIndex;not null" json:"-"`
	IPAddress    string    `json:"ipAddress"`
	UserAgent    string    `json:"userAgent"`
	ExpiresAt    time.Time `gorm:"index;not null"       json:"expiresAt"`
	Valid        bool      `gorm:"not null;default:true" json:"valid"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Usable reports whether the session may still be exchanged at instant now.
func (s *Session) Usable(now time.Time) bool {
	return s.Valid && s.ExpiresAt.After(now)
}

// QR login pairing states.
const (
	QRStatusPending  = "pending"
	QRStatusVerified = "verified"
)

// QRSession is a short-lived, single-use pairing token used to log in a second
// device by polling. It lives in Redis and never touches the relational store.
type QRSession struct {
	Token  string `json:"token"`
	Status string `json:"status"`
	UserID string `json:"userId,omitempty"`
}
