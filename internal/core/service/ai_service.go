package service

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/talentlink/freelance-platform/internal/core/ports"
)

// AIService scores applicant fit and drafts job descriptions. Both run on
// local heuristics; the interface leaves room for a model-backed provider.
type AIService struct {
	applications ports.ApplicationRepository
	jobs         ports.JobRepository
	users        ports.UserRepository
}

func NewAIService(applications ports.ApplicationRepository, jobs ports.JobRepository, users ports.UserRepository) *AIService {
	return &AIService{applications: applications, jobs: jobs, users: users}
}

// MatchJob scores how well an applicant's skills cover the job's required
// skills on a 0..100 scale and persists the score on their application.
func (s *AIService) MatchJob(ctx context.Context, jobID, applicantID string) (*ports.MatchResult, error) {
	job, err := s.jobs.FindByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	applicant, err := s.users.FindByID(ctx, applicantID)
	if err != nil {
		return nil, err
	}
	app, err := s.applications.FindByJobAndApplicant(ctx, jobID, applicantID)
	if err != nil {
		return nil, err
	}

	score := matchScore(job.Skills, applicant.Skills)
	if err := s.applications.UpdateMatchScore(ctx, app.ID, score); err != nil {
		return nil, err
	}

	return &ports.MatchResult{JobID: jobID, ApplicantID: applicantID, Score: score}, nil
}

// matchScore is the covered fraction of required skills, scaled to 0..100.
// A job with no listed skills scores a neutral 50 for everyone.
func matchScore(required, offered []string) float64 {
	if len(required) == 0 {
		return 50
	}

	have := make(map[string]struct{}, len(offered))
	for _, skill := range offered {
		have[normalizeSkill(skill)] = struct{}{}
	}

	matched := 0
	for _, skill := range required {
		if _, ok := have[normalizeSkill(skill)]; ok {
			matched++
		}
	}
	return math.Round(float64(matched) / float64(len(required)) * 100)
}

func normalizeSkill(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

var categorySkills = map[string][]string{
	"web development":    {"JavaScript", "TypeScript", "React", "Node.js", "CSS"},
	"mobile development": {"Swift", "Kotlin", "React Native", "Flutter"},
	"design":             {"Figma", "Adobe XD", "Illustration", "Typography"},
	"data science":       {"Python", "SQL", "Pandas", "Machine Learning"},
	"devops":             {"Docker", "Kubernetes", "Terraform", "CI/CD"},
	"writing":            {"Copywriting", "Editing", "SEO", "Research"},
	"marketing":          {"SEO", "Content Strategy", "Google Ads", "Analytics"},
}

// GenerateDescription drafts a posting body from the title and category.
func (s *AIService) GenerateDescription(_ context.Context, title, category string) (*ports.GeneratedDescription, error) {
	skills, ok := categorySkills[strings.ToLower(strings.TrimSpace(category))]
	if !ok {
		skills = []string{"Communication", "Time Management", "Problem Solving"}
	}

	description := fmt.Sprintf(
		"We are looking for an experienced professional for \"%s\". "+
			"You will own the work end to end: clarifying requirements, delivering in agreed milestones "+
			"and communicating progress along the way. Relevant experience in %s is expected. "+
			"Please include similar past work in your proposal.",
		strings.TrimSpace(title), strings.Join(skills, ", "),
	)

	return &ports.GeneratedDescription{
		Description:     description,
		SuggestedSkills: skills,
	}, nil
}
