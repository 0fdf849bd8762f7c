package domain

import "time"

// Review is a rating left by one user about another after working together.
type Review struct {
	ID         string    `gorm:"primaryKey;size:36" json:"id"`
	Rating     int       `gorm:"not null"           json:"rating"`
	Comment    string    `json:"comment,omitempty"`
	ReviewerID string    `gorm:"index;not null"     json:"reviewerId"`
	RevieweeID string    `gorm:"index;not null"     json:"revieweeId"`
	CreatedAt  time.Time `json:"createdAt"`

	Reviewer *User `gorm:"foreignKey:ReviewerID" json:"reviewer,omitempty"`
}
