package domain

import "time"

// Message types.
const (
	MessageText = "TEXT"
	MessageFile = "FILE"
)

// Message is one direct chat message between two users.
type Message struct {
	ID         string    `gorm:"primaryKey;size:36" json:"id"`
	Content    string    `gorm:"not null"           json:"content"`
	Type       string    `gorm:"not null;default:TEXT" json:"type"`
	FileURL    string    `json:"fileUrl,omitempty"`
	SenderID   string    `gorm:"index;not null"     json:"senderId"`
	ReceiverID string    `gorm:"index;not null"     json:"receiverId"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`

	Sender   *User `gorm:"foreignKey:SenderID"   json:"sender,omitempty"`
	Receiver *User `gorm:"foreignKey:ReceiverID" json:"receiver,omitempty"`
}
