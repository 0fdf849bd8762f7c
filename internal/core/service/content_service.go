package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/talentlink/freelance-platform/internal/core/domain"
	"github.com/talentlink/freelance-platform/internal/core/ports"
)

// ContentService exposes the marketing content pages and seeds them with
// defaults on first start so a fresh install renders complete pages.
type ContentService struct {
	repo ports.ContentRepository
	log  zerolog.Logger
}

func NewContentService(repo ports.ContentRepository, log zerolog.Logger) *ContentService {
	return &ContentService{repo: repo, log: log}
}

// Repo exposes the underlying store for the admin CRUD endpoints.
func (s *ContentService) Repo() ports.ContentRepository {
	return s.repo
}

func (s *ContentService) Plans(ctx context.Context) ([]domain.PricingPlan, error) {
	return s.repo.ListPlans(ctx)
}

// SalaryGuide returns the categories with their roles plus the insight cards.
func (s *ContentService) SalaryGuide(ctx context.Context) ([]domain.SalaryCategory, []domain.SalaryInsight, error) {
	categories, err := s.repo.ListSalaryCategories(ctx)
	if err != nil {
		return nil, nil, err
	}
	insights, err := s.repo.ListSalaryInsights(ctx)
	if err != nil {
		return nil, nil, err
	}
	return categories, insights, nil
}

// HiringSolutions returns the offerings, headline stats and plan tiers.
func (s *ContentService) HiringSolutions(ctx context.Context) ([]domain.HiringSolution, []domain.HiringStat, []domain.HiringPlan, error) {
	solutions, err := s.repo.ListSolutions(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	stats, err := s.repo.ListHiringStats(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	plans, err := s.repo.ListHiringPlans(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	return solutions, stats, plans, nil
}

// EmployerResources returns the categories, guides, downloads and FAQs.
func (s *ContentService) EmployerResources(ctx context.Context) ([]domain.EmployerResourceCategory, []domain.EmployerGuide, []domain.EmployerDownload, []domain.EmployerFAQ, error) {
	categories, err := s.repo.ListResourceCategories(ctx)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	guides, err := s.repo.ListGuides(ctx)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	downloads, err := s.repo.ListDownloads(ctx)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	faqs, err := s.repo.ListFAQs(ctx)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	return categories, guides, downloads, faqs, nil
}

// Seed fills every empty content group with its defaults. Existing rows are
// never touched, so edits made through the admin console survive restarts.
func (s *ContentService) Seed(ctx context.Context) error {
	if err := s.seedPlans(ctx); err != nil {
		return err
	}
	if err := s.seedSalaryGuide(ctx); err != nil {
		return err
	}
	if err := s.seedHiringSolutions(ctx); err != nil {
		return err
	}
	return s.seedEmployerResources(ctx)
}

func (s *ContentService) seedPlans(ctx context.Context) error {
	n, err := s.repo.CountPlans(ctx)
	if err != nil || n > 0 {
		return err
	}
	s.log.Info().Msg("seeding pricing plans")

	plans := []domain.PricingPlan{
		{
			Name: "Starter", Price: 0,
			Description: "For freelancers trying out the platform",
			Features:    []string{"Up to 5 proposals per month", "Basic profile", "Community support"},
			CTA:         "Get started", Href: "/register", Order: 1,
		},
		{
			Name: "Professional", Price: 19,
			Description: "For freelancers working full time",
			Features:    []string{"Unlimited proposals", "Profile analytics", "Priority support", "Skill badges"},
			Highlight:   true, CTA: "Go Professional", Href: "/register?plan=pro", Badge: "Most popular", Order: 2,
		},
		{
			Name: "Business", Price: 49,
			Description: "For teams hiring at scale",
			Features:    []string{"Team accounts", "Dedicated manager", "Invoicing", "API access"},
			CTA:         "Contact sales", Href: "/contact", Order: 3,
		},
	}
	for i := range plans {
		if _, err := s.repo.CreatePlan(ctx, &plans[i]); err != nil {
			return err
		}
	}
	return nil
}

func (s *ContentService) seedSalaryGuide(ctx context.Context) error {
	n, err := s.repo.CountSalaryCategories(ctx)
	if err != nil || n > 0 {
		return err
	}
	s.log.Info().Msg("seeding salary guide")

	categories := []struct {
		name  string
		roles []domain.SalaryRole
	}{
		{"Development & IT", []domain.SalaryRole{
			{Title: "Full-Stack Developer", Range: "$60 - $120 / hr", Experience: "3+ years"},
			{Title: "DevOps Engineer", Range: "$70 - $140 / hr", Experience: "4+ years"},
			{Title: "Mobile Developer", Range: "$55 - $110 / hr", Experience: "2+ years"},
		}},
		{"Design & Creative", []domain.SalaryRole{
			{Title: "Product Designer", Range: "$50 - $100 / hr", Experience: "3+ years"},
			{Title: "Brand Designer", Range: "$45 - $90 / hr", Experience: "2+ years"},
		}},
		{"Marketing & Sales", []domain.SalaryRole{
			{Title: "SEO Specialist", Range: "$40 - $85 / hr", Experience: "2+ years"},
			{Title: "Content Strategist", Range: "$45 - $95 / hr", Experience: "3+ years"},
		}},
	}
	for i, c := range categories {
		created, err := s.repo.CreateSalaryCategory(ctx, &domain.SalaryCategory{Name: c.name, Order: i + 1})
		if err != nil {
			return err
		}
		for j := range c.roles {
			c.roles[j].CategoryID = created.ID
			if _, err := s.repo.CreateSalaryRole(ctx, &c.roles[j]); err != nil {
				return err
			}
		}
	}

	insights := []domain.SalaryInsight{
		{Icon: "trending-up", Title: "Rates are rising", Description: "Average hourly rates grew 8% year over year.", Color: "green", Bg: "green-50", Order: 1},
		{Icon: "globe", Title: "Remote pays", Description: "Remote-friendly roles command a 12% premium.", Color: "blue", Bg: "blue-50", Order: 2},
		{Icon: "award", Title: "Specialists win", Description: "Niche skills earn up to 2x the generalist rate.", Color: "purple", Bg: "purple-50", Order: 3},
	}
	for i := range insights {
		if _, err := s.repo.CreateSalaryInsight(ctx, &insights[i]); err != nil {
			return err
		}
	}
	return nil
}

func (s *ContentService) seedHiringSolutions(ctx context.Context) error {
	n, err := s.repo.CountSolutions(ctx)
	if err != nil || n > 0 {
		return err
	}
	s.log.Info().Msg("seeding hiring solutions")

	solutions := []domain.HiringSolution{
		{Title: "On-demand talent", Description: "Post a job and receive vetted proposals within hours.", Icon: "zap",
			Features: []string{"AI-ranked applicants", "Escrow payments", "Direct messaging"}, Order: 1},
		{Title: "Managed teams", Description: "We assemble and manage a dedicated team for your project.", Icon: "users",
			Features: []string{"Dedicated manager", "Weekly reporting", "Flexible scaling"}, Order: 2},
		{Title: "Enterprise", Description: "Compliance, invoicing and SSO for large organisations.", Icon: "building",
			Features: []string{"SSO", "Custom contracts", "Priority support"}, Order: 3},
	}
	for i := range solutions {
		if _, err := s.repo.CreateSolution(ctx, &solutions[i]); err != nil {
			return err
		}
	}

	stats := []domain.HiringStat{
		{Label: "Average time to hire", Value: "48 hours", Order: 1},
		{Label: "Rehire rate", Value: "89%", Order: 2},
		{Label: "Vetted freelancers", Value: "12,000+", Order: 3},
	}
	for i := range stats {
		if _, err := s.repo.CreateHiringStat(ctx, &stats[i]); err != nil {
			return err
		}
	}

	plans := []domain.HiringPlan{
		{Name: "Marketplace", Price: "Free", Features: []string{"Unlimited job posts", "AI matching", "Standard support"}, Order: 1},
		{Name: "Business Plus", Price: "$499/mo", Features: []string{"Talent sourcing", "Account manager", "Consolidated billing"}, Order: 2},
		{Name: "Enterprise", Price: "Custom", Features: []string{"SSO & compliance", "Custom workflows", "SLA support"}, Order: 3},
	}
	for i := range plans {
		if _, err := s.repo.CreateHiringPlan(ctx, &plans[i]); err != nil {
			return err
		}
	}
	return nil
}

func (s *ContentService) seedEmployerResources(ctx context.Context) error {
	n, err := s.repo.CountResourceCategories(ctx)
	if err != nil || n > 0 {
		return err
	}
	s.log.Info().Msg("seeding employer resources")

	categories := []domain.EmployerResourceCategory{
		{Name: "Hiring guides", Icon: "book-open", Count: 12, Order: 1},
		{Name: "Templates", Icon: "file-text", Count: 8, Order: 2},
		{Name: "Legal & compliance", Icon: "shield", Count: 5, Order: 3},
	}
	for i := range categories {
		if _, err := s.repo.CreateResourceCategory(ctx, &categories[i]); err != nil {
			return err
		}
	}

	guides := []domain.EmployerGuide{
		{Title: "How to write a job post that attracts top talent", Description: "Structure, budget signals and the screening questions that work.", ReadTime: "8 min", Href: "/resources/job-post-guide", Order: 1},
		{Title: "Evaluating freelance portfolios", Description: "What to look for beyond the highlight reel.", ReadTime: "6 min", Href: "/resources/portfolio-guide", Order: 2},
		{Title: "Onboarding a remote contractor", Description: "Access, expectations and the first-week checklist.", ReadTime: "10 min", Href: "/resources/onboarding-guide", Order: 3},
	}
	for i := range guides {
		if _, err := s.repo.CreateGuide(ctx, &guides[i]); err != nil {
			return err
		}
	}

	downloads := []domain.EmployerDownload{
		{Title: "Freelance contract template", Format: "PDF", Href: "/downloads/contract-template.pdf", Order: 1},
		{Title: "Project brief worksheet", Format: "DOCX", Href: "/downloads/project-brief.docx", Order: 2},
		{Title: "Rate benchmarking sheet", Format: "XLSX", Href: "/downloads/rate-benchmarks.xlsx", Order: 3},
	}
	for i := range downloads {
		if _, err := s.repo.CreateDownload(ctx, &downloads[i]); err != nil {
			return err
		}
	}

	faqs := []domain.EmployerFAQ{
		{Question: "How are freelancers vetted?", Answer: "Profiles combine identity verification, skill assessments and reviewed work history.", Order: 1},
		{Question: "What does posting a job cost?", Answer: "Posting is free; a service fee applies on successful contracts.", Order: 2},
		{Question: "Can I hire a freelancer full time?", Answer: "Yes, conversion is supported after 90 days on the platform.", Order: 3},
	}
	for i := range faqs {
		if _, err := s.repo.CreateFAQ(ctx, &faqs[i]); err != nil {
			return err
		}
	}
	return nil
}
