package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/talentlink/freelance-platform/internal/api/metrics"
	"github.com/talentlink/freelance-platform/internal/core/ports"
)

type JobHandler struct {
	jobs         ports.JobService
	applications ports.ApplicationService
}

func NewJobHandler(jobs ports.JobService, applications ports.ApplicationService) *JobHandler {
	return &JobHandler{jobs: jobs, applications: applications}
}

type createJobRequest struct {
	Title       string   `json:"title"       validate:"required,min=3"`
	Description string   `json:"description" validate:"required,min=10"`
	Category    string   `json:"category"    validate:"required"`
	Skills      []string `json:"skills"`
	Budget      float64  `json:"budget"      validate:"required,gt=0"`
	BudgetType  string   `json:"budgetType"  validate:"omitempty,oneof=FIXED HOURLY"`
	Location    string   `json:"location"`
	Remote      bool     `json:"remote"`
}

type applyRequest struct {
	CoverLetter   string  `json:"coverLetter"  validate:"required,min=10"`
	ProposedRate  float64 `json:"proposedRate" validate:"required,gt=0"`
	EstimatedTime string  `json:"estimatedTime"`
}

// Create posts a new job. Employer only.
func (h *JobHandler) Create(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req createJobRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	job, err := h.jobs.Create(c.Request().Context(), userID, ports.CreateJobInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Skills:      req.Skills,
		Budget:      req.Budget,
		BudgetType:  req.BudgetType,
		Location:    req.Location,
		Remote:      req.Remote,
	})
	if err != nil {
		return err
	}

	metrics.JobsCreatedTotal.WithLabelValues(req.Category).Inc()
	return c.JSON(http.StatusCreated, job)
}

// List returns open jobs, optionally filtered by a full-text query.
func (h *JobHandler) List(c echo.Context) error {
	jobs, err := h.jobs.Search(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, jobs)
}

func (h *JobHandler) Get(c echo.Context) error {
	job, err := h.jobs.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, job)
}

// Apply submits a proposal for a job. Freelancer only.
func (h *JobHandler) Apply(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req applyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	app, err := h.applications.Apply(c.Request().Context(), userID, c.Param("id"), ports.CreateApplicationInput{
		CoverLetter:   req.CoverLetter,
		ProposedRate:  req.ProposedRate,
		EstimatedTime: req.EstimatedTime,
	})
	if err != nil {
		return err
	}

	metrics.ApplicationsSubmittedTotal.Inc()
	return c.JSON(http.StatusCreated, app)
}

// Applications returns a job's applications to its poster, best match first.
func (h *JobHandler) Applications(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	apps, err := h.applications.ListForJob(c.Request().Context(), c.Param("id"), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, apps)
}
