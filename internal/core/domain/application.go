package domain

import "time"

// Application statuses.
const (
	ApplicationPending  = "PENDING"
	ApplicationAccepted = "ACCEPTED"
	ApplicationRejected = "REJECTED"
)

// ValidApplicationStatus reports whether s is a known application status.
func ValidApplicationStatus(s string) bool {
	return s == ApplicationPending || s == ApplicationAccepted || s == ApplicationRejected
}

// Application is a freelancer's proposal for a job. One per applicant per job.
type Application struct {
	ID            string    `gorm:"primaryKey;size:36" json:"id"`
	JobID         string    `gorm:"uniqueIndex:idx_job_applicant;not null" json:"jobId"`
	ApplicantID   string    `gorm:"uniqueIndex:idx_job_applicant;not null" json:"applicantId"`
	CoverLetter   string    `gorm:"not null"           json:"coverLetter"`
	ProposedRate  float64   `gorm:"not null"           json:"proposedRate"`
	EstimatedTime string    `json:"estimatedTime,omitempty"`
	Status        string    `gorm:"not null;default:PENDING" json:"status"`
	AIMatchScore  float64   `gorm:"column:ai_match_score" json:"aiMatchScore"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`

	Job       *Job  `gorm:"foreignKey:JobID"       json:"job,omitempty"`
	Applicant *User `gorm:"foreignKey:ApplicantID" json:"applicant,omitempty"`
}
