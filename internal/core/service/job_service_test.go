package service

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/talentlink/freelance-platform/internal/core/domain"
	"github.com/talentlink/freelance-platform/internal/core/ports"
)

type stubJobRepo struct {
	byID map[string]*domain.Job
}

func newStubJobRepo() *stubJobRepo {
	return &stubJobRepo{byID: make(map[string]*domain.Job)}
}

func (r *stubJobRepo) Create(_ context.Context, job *domain.Job) (*domain.Job, error) {
	if job.ID == "" {
		job.ID = uuid.NewString()
	}
	r.byID[job.ID] = job
	return job, nil
}

func (r *stubJobRepo) FindByID(_ context.Context, id string) (*domain.Job, error) {
	if job, ok := r.byID[id]; ok {
		return job, nil
	}
	return nil, domain.ErrJobNotFound
}

func (r *stubJobRepo) ListOpen(_ context.Context) ([]domain.Job, error) {
	var out []domain.Job
	for _, job := range r.byID {
		if job.Status == domain.JobStatusOpen {
			out = append(out, *job)
		}
	}
	return out, nil
}

func (r *stubJobRepo) List(_ context.Context, _, _ int, _ string) ([]domain.Job, int64, error) {
	var out []domain.Job
	for _, job := range r.byID {
		out = append(out, *job)
	}
	return out, int64(len(out)), nil
}

func (r *stubJobRepo) UpdateStatus(_ context.Context, id, status string) (*domain.Job, error) {
	job, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrJobNotFound
	}
	job.Status = status
	return job, nil
}

func (r *stubJobRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.byID)), nil
}

func (r *stubJobRepo) CountByStatus(_ context.Context) (map[string]int64, error) {
	out := make(map[string]int64)
	for _, job := range r.byID {
		out[job.Status]++
	}
	return out, nil
}

type stubJobIndex struct {
	indexed []string
	deleted []string
	results []string
	err     error
}

func (i *stubJobIndex) Index(_ context.Context, job *domain.Job) error {
	i.indexed = append(i.indexed, job.ID)
	return i.err
}

func (i *stubJobIndex) Delete(_ context.Context, jobID string) error {
	i.deleted = append(i.deleted, jobID)
	return nil
}

func (i *stubJobIndex) Search(_ context.Context, _ string) ([]string, error) {
	return i.results, i.err
}

func TestJobService_Create(t *testing.T) {
	repo := newStubJobRepo()
	index := &stubJobIndex{}
	svc := NewJobService(repo, index, nil, zerolog.Nop())

	job, err := svc.Create(context.Background(), "poster-1", ports.CreateJobInput{
		Title:       "Build a booking API",
		Description: "REST API with payments",
		Category:    "Web Development",
		Skills:      []string{"Go", "PostgreSQL"},
		Budget:      4000,
		BudgetType:  "bogus",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if job.Status != domain.JobStatusOpen {
		t.Fatalf("new jobs must be OPEN, got %s", job.Status)
	}
	if job.BudgetType != domain.BudgetFixed {
		t.Fatalf("unknown budget type must default to FIXED, got %s", job.BudgetType)
	}
	if len(index.indexed) != 1 || index.indexed[0] != job.ID {
		t.Fatalf("job must be indexed, got %v", index.indexed)
	}
}

func TestJobService_CreateSurvivesIndexFailure(t *testing.T) {
	repo := newStubJobRepo()
	index := &stubJobIndex{err: errors.New("cluster down")}
	svc := NewJobService(repo, index, nil, zerolog.Nop())

	job, err := svc.Create(context.Background(), "poster-1", ports.CreateJobInput{
		Title: "t", Description: "d", Category: "c", Budget: 1, BudgetType: domain.BudgetHourly,
	})
	if err != nil {
		t.Fatalf("indexing failure must not fail the posting: %v", err)
	}
	if _, err := repo.FindByID(context.Background(), job.ID); err != nil {
		t.Fatalf("job must be persisted: %v", err)
	}
}

func TestJobService_SearchPreservesRelevanceOrder(t *testing.T) {
	repo := newStubJobRepo()
	first, _ := repo.Create(context.Background(), &domain.Job{Title: "a", Status: domain.JobStatusOpen})
	second, _ := repo.Create(context.Background(), &domain.Job{Title: "b", Status: domain.JobStatusOpen})

	index := &stubJobIndex{results: []string{second.ID, "gone-from-db", first.ID}}
	svc := NewJobService(repo, index, nil, zerolog.Nop())

	jobs, err := svc.Search(context.Background(), "api")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(jobs) != 2 {
		t.Fatalf("stale hits must be dropped, got %d jobs", len(jobs))
	}
	if jobs[0].ID != second.ID || jobs[1].ID != first.ID {
		t.Fatalf("relevance order not preserved: %v, %v", jobs[0].ID, jobs[1].ID)
	}
}

func TestJobService_SearchDropsClosedJobs(t *testing.T) {
	repo := newStubJobRepo()
	open, _ := repo.Create(context.Background(), &domain.Job{Title: "open", Status: domain.JobStatusOpen})
	closed, _ := repo.Create(context.Background(), &domain.Job{Title: "closed", Status: domain.JobStatusCompleted})

	index := &stubJobIndex{results: []string{closed.ID, open.ID}}
	svc := NewJobService(repo, index, nil, zerolog.Nop())

	jobs, err := svc.Search(context.Background(), "api")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(jobs) != 1 || jobs[0].ID != open.ID {
		t.Fatalf("closed jobs must not surface in search, got %+v", jobs)
	}
}

func TestJobService_EmptyQueryListsOpenJobs(t *testing.T) {
	repo := newStubJobRepo()
	_, _ = repo.Create(context.Background(), &domain.Job{Title: "open", Status: domain.JobStatusOpen})
	_, _ = repo.Create(context.Background(), &domain.Job{Title: "done", Status: domain.JobStatusCompleted})

	svc := NewJobService(repo, &stubJobIndex{}, nil, zerolog.Nop())

	jobs, err := svc.Search(context.Background(), "")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(jobs) != 1 || jobs[0].Title != "open" {
		t.Fatalf("expected only the open job, got %+v", jobs)
	}
}

type stubAppRepo struct {
	byID map[string]*domain.Application
}

func newStubAppRepo() *stubAppRepo {
	return &stubAppRepo{byID: make(map[string]*domain.Application)}
}

func (r *stubAppRepo) Create(_ context.Context, app *domain.Application) (*domain.Application, error) {
	for _, existing := range r.byID {
		if existing.JobID == app.JobID && existing.ApplicantID == app.ApplicantID {
			return nil, domain.ErrAlreadyApplied
		}
	}
	if app.ID == "" {
		app.ID = uuid.NewString()
	}
	r.byID[app.ID] = app
	return app, nil
}

func (r *stubAppRepo) FindByID(_ context.Context, id string) (*domain.Application, error) {
	if app, ok := r.byID[id]; ok {
		return app, nil
	}
	return nil, domain.ErrApplicationNotFound
}

func (r *stubAppRepo) FindByJobAndApplicant(_ context.Context, jobID, applicantID string) (*domain.Application, error) {
	for _, app := range r.byID {
		if app.JobID == jobID && app.ApplicantID == applicantID {
			return app, nil
		}
	}
	return nil, domain.ErrApplicationNotFound
}

func (r *stubAppRepo) ListForJob(_ context.Context, jobID string) ([]domain.Application, error) {
	var out []domain.Application
	for _, app := range r.byID {
		if app.JobID == jobID {
			out = append(out, *app)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AIMatchScore > out[j].AIMatchScore })
	return out, nil
}

func (r *stubAppRepo) List(_ context.Context, _, _ int) ([]domain.Application, int64, error) {
	var out []domain.Application
	for _, app := range r.byID {
		out = append(out, *app)
	}
	return out, int64(len(out)), nil
}

func (r *stubAppRepo) UpdateStatus(_ context.Context, id, status string) (*domain.Application, error) {
	app, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrApplicationNotFound
	}
	app.Status = status
	return app, nil
}

func (r *stubAppRepo) UpdateMatchScore(_ context.Context, id string, score float64) error {
	app, ok := r.byID[id]
	if !ok {
		return domain.ErrApplicationNotFound
	}
	app.AIMatchScore = score
	return nil
}

func (r *stubAppRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.byID)), nil
}

type recordedNotification struct {
	UserID  string
	Message string
	Type    string
}

type stubNotificationService struct {
	sent []recordedNotification
}

func (s *stubNotificationService) Notify(_ context.Context, userID, message, typ string) {
	s.sent = append(s.sent, recordedNotification{UserID: userID, Message: message, Type: typ})
}

func (s *stubNotificationService) ListForUser(_ context.Context, _ string) ([]domain.Notification, error) {
	return nil, nil
}

func (s *stubNotificationService) MarkRead(_ context.Context, _, _ string) (*domain.Notification, error) {
	return nil, domain.ErrNotificationNotFound
}

func applicationFixture(t *testing.T) (*ApplicationService, *stubJobRepo, *stubAppRepo, *stubUserRepo, *stubNotificationService) {
	t.Helper()
	jobs := newStubJobRepo()
	apps := newStubAppRepo()
	users := newStubUserRepo()
	notifs := &stubNotificationService{}
	matcher := NewAIService(apps, jobs, users)
	svc := NewApplicationService(apps, jobs, notifs, matcher, nil, zerolog.Nop())
	return svc, jobs, apps, users, notifs
}

func TestApplicationService_Apply(t *testing.T) {
	svc, jobs, _, users, notifs := applicationFixture(t)
	ctx := context.Background()

	_, _ = users.Create(ctx, &domain.User{ID: "dev-1", Email: "dev@example.com", Skills: []string{"Go", "PostgreSQL"}})
	job, _ := jobs.Create(ctx, &domain.Job{
		Title: "Build a booking API", Status: domain.JobStatusOpen,
		PosterID: "emp-1", Skills: []string{"go", "postgresql", "docker", "kafka"},
	})

	app, err := svc.Apply(ctx, "dev-1", job.ID, ports.CreateApplicationInput{
		CoverLetter: "I built three of these.", ProposedRate: 80,
	})
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	if app.Status != domain.ApplicationPending {
		t.Fatalf("new applications must be PENDING, got %s", app.Status)
	}
	// 2 of 4 required skills covered.
	if app.AIMatchScore != 50 {
		t.Fatalf("expected match score 50, got %v", app.AIMatchScore)
	}
	if len(notifs.sent) != 1 || notifs.sent[0].UserID != "emp-1" || notifs.sent[0].Type != domain.NotifyApplication {
		t.Fatalf("poster must be notified, got %+v", notifs.sent)
	}
}

func TestApplicationService_ApplyGuards(t *testing.T) {
	svc, jobs, _, users, _ := applicationFixture(t)
	ctx := context.Background()

	_, _ = users.Create(ctx, &domain.User{ID: "dev-1", Email: "dev@example.com"})
	closed, _ := jobs.Create(ctx, &domain.Job{Title: "closed", Status: domain.JobStatusCompleted, PosterID: "emp-1"})
	open, _ := jobs.Create(ctx, &domain.Job{Title: "open", Status: domain.JobStatusOpen, PosterID: "emp-1"})

	if _, err := svc.Apply(ctx, "dev-1", closed.ID, ports.CreateApplicationInput{}); !errors.Is(err, domain.ErrJobClosed) {
		t.Fatalf("expected ErrJobClosed, got %v", err)
	}
	if _, err := svc.Apply(ctx, "emp-1", open.ID, ports.CreateApplicationInput{}); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("poster applying to own job: expected ErrForbidden, got %v", err)
	}
	if _, err := svc.Apply(ctx, "dev-1", "no-such-job", ports.CreateApplicationInput{}); !errors.Is(err, domain.ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}

	if _, err := svc.Apply(ctx, "dev-1", open.ID, ports.CreateApplicationInput{}); err != nil {
		t.Fatalf("first apply failed: %v", err)
	}
	if _, err := svc.Apply(ctx, "dev-1", open.ID, ports.CreateApplicationInput{}); !errors.Is(err, domain.ErrAlreadyApplied) {
		t.Fatalf("expected ErrAlreadyApplied, got %v", err)
	}
}

func TestApplicationService_ListForJobIsPosterOnly(t *testing.T) {
	svc, jobs, apps, _, _ := applicationFixture(t)
	ctx := context.Background()

	job, _ := jobs.Create(ctx, &domain.Job{Title: "t", Status: domain.JobStatusOpen, PosterID: "emp-1"})
	_, _ = apps.Create(ctx, &domain.Application{JobID: job.ID, ApplicantID: "dev-1", AIMatchScore: 20})
	_, _ = apps.Create(ctx, &domain.Application{JobID: job.ID, ApplicantID: "dev-2", AIMatchScore: 90})

	if _, err := svc.ListForJob(ctx, job.ID, "dev-1"); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for non-poster, got %v", err)
	}

	list, err := svc.ListForJob(ctx, job.ID, "emp-1")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(list) != 2 || list[0].ApplicantID != "dev-2" {
		t.Fatalf("expected best match first, got %+v", list)
	}
}

func TestAIService_GenerateDescription(t *testing.T) {
	svc := NewAIService(newStubAppRepo(), newStubJobRepo(), newStubUserRepo())

	gen, err := svc.GenerateDescription(context.Background(), "Landing page redesign", "Design")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if gen.Description == "" || len(gen.SuggestedSkills) == 0 {
		t.Fatalf("expected a draft with skills, got %+v", gen)
	}

	fallback, err := svc.GenerateDescription(context.Background(), "Something niche", "Underwater Basket Weaving")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if len(fallback.SuggestedSkills) == 0 {
		t.Fatal("unknown categories must still suggest generic skills")
	}
}
