package domain

import "time"

// Roles a user can hold on the platform.
const (
	RoleFreelancer = "FREELANCER"
	RoleEmployer   = "EMPLOYER"
	RoleAdmin      = "ADMIN"
)

// ValidRole reports whether s is one of the known user roles.
func ValidRole(s string) bool {
	return s == RoleFreelancer || s == RoleEmployer || s == RoleAdmin
}

// User models an account on the platform. The password hash is never
// serialised; OAuth accounts carry an empty hash.
type User struct {
	ID           string    `gorm:"primaryKey;size:36"       json:"id"`
	Email        string    `gorm:"uniqueIndex;not null"     json:"email"`
	PasswordHash string    `gorm:"not null"                 json:"-"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Role         string    `gorm:"not null;default:FREELANCER" json:"role"`
	Avatar       string    `json:"avatar,omitempty"`
	Bio          string    `json:"bio,omitempty"`
	Location     string    `json:"location,omitempty"`
	Skills       []string  `gorm:"serializer:json"          json:"skills,omitempty"`
	HourlyRate   float64   `json:"hourlyRate,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`

	JobsPosted []Job    `gorm:"foreignKey:PosterID"   json:"jobsPosted,omitempty"`
	Reviews    []Review `gorm:"foreignKey:RevieweeID" json:"reviews,omitempty"`
}

// PublicProfile is the reviewer/sender summary embedded in other payloads.
type PublicProfile struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Avatar    string `json:"avatar,omitempty"`
}

// Profile returns the embeddable public summary of u.
func (u *User) Profile() PublicProfile {
	return PublicProfile{ID: u.ID, FirstName: u.FirstName, LastName: u.LastName, Avatar: u.Avatar}
}
