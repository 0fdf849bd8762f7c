package domain

import "time"

// Job lifecycle statuses.
const (
	JobStatusOpen       = "OPEN"
	JobStatusInProgress = "IN_PROGRESS"
	JobStatusCompleted  = "COMPLETED"
	JobStatusCancelled  = "CANCELLED"
)

// ValidJobStatus reports whether s is a known job status.
func ValidJobStatus(s string) bool {
	switch s {
	case JobStatusOpen, JobStatusInProgress, JobStatusCompleted, JobStatusCancelled:
		return true
	}
	return false
}

// Budget types.
const (
	BudgetFixed  = "FIXED"
	BudgetHourly = "HOURLY"
)

// Job is a posting created by an employer.
type Job struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	Title       string    `gorm:"not null"           json:"title"`
	Description string    `gorm:"not null"           json:"description"`
	Category    string    `gorm:"index;not null"     json:"category"`
	Skills      []string  `gorm:"serializer:json"    json:"skills"`
	Budget      float64   `gorm:"not null"           json:"budget"`
	BudgetType  string    `gorm:"not null"           json:"budgetType"`
	Status      string    `gorm:"index;not null;default:OPEN" json:"status"`
	Location    string    `json:"location,omitempty"`
	Remote      bool      `json:"remote"`
	PosterID    string    `gorm:"index;not null"     json:"posterId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	Poster *User `gorm:"foreignKey:PosterID" json:"poster,omitempty"`
}
