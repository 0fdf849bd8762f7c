package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/talentlink/freelance-platform/internal/api/handler"
	"github.com/talentlink/freelance-platform/internal/api/middleware"
	"github.com/talentlink/freelance-platform/internal/core/domain"
	"github.com/talentlink/freelance-platform/internal/core/ports"
	"github.com/talentlink/freelance-platform/internal/core/service"
	"github.com/talentlink/freelance-platform/internal/infrastructure/config"
	"github.com/talentlink/freelance-platform/internal/infrastructure/oauth"
	"github.com/talentlink/freelance-platform/internal/infrastructure/ws"
)

// Dependencies carries everything the router needs, already constructed.
type Dependencies struct {
	Config *config.Config
	Log    zerolog.Logger

	DB    *gorm.DB
	Redis *redis.Client
	Hub   *ws.Hub
	OAuth *oauth.Manager

	Auth          ports.AuthService
	QR            ports.QRService
	Users         ports.UserService
	Jobs          ports.JobService
	Applications  ports.ApplicationService
	Reviews       ports.ReviewService
	Messaging     ports.MessagingService
	Notifications ports.NotificationService
	Payments      ports.PaymentService
	AI            ports.AIService
	Admin         ports.AdminService
	Content       *service.ContentService
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     []string{deps.Config.FrontendURL},
		AllowCredentials: true,
	}))
	e.Use(echoprometheus.NewMiddleware("talentlink"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.Auth, deps.QR, deps.Users, deps.OAuth, deps.Config.Production(), deps.Config.FrontendURL)
	userHandler := handler.NewUserHandler(deps.Users)
	jobHandler := handler.NewJobHandler(deps.Jobs, deps.Applications)
	reviewHandler := handler.NewReviewHandler(deps.Reviews)
	messageHandler := handler.NewMessageHandler(deps.Messaging)
	notificationHandler := handler.NewNotificationHandler(deps.Notifications)
	paymentHandler := handler.NewPaymentHandler(deps.Payments)
	aiHandler := handler.NewAIHandler(deps.AI)
	contentHandler := handler.NewContentHandler(deps.Content)
	adminHandler := handler.NewAdminHandler(deps.Admin)
	adminContentHandler := handler.NewAdminContentHandler(deps.Content)
	wsHandler := handler.NewWSHandler(deps.Hub, deps.Auth, deps.Messaging, deps.Log)

	authed := middleware.Auth(deps.Auth)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.DB, deps.Redis)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	api := e.Group("/api")

	// --- Auth ---
	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.Refresh)
	auth.POST("/logout", authHandler.Logout)
	auth.GET("/me", authHandler.Me, authed)

	auth.POST("/qr/start", authHandler.QRStart)
	auth.POST("/qr/approve", authHandler.QRApprove, authed)
	auth.GET("/qr/poll/:token", authHandler.QRPoll)

	auth.GET("/:provider", authHandler.OAuthRedirect)
	auth.GET("/:provider/callback", authHandler.OAuthCallback)

	// --- Public content pages ---
	api.GET("/pricing", contentHandler.Pricing)
	api.GET("/salary-guide", contentHandler.SalaryGuide)
	api.GET("/hiring-solutions", contentHandler.HiringSolutions)
	api.GET("/employer-resources", contentHandler.EmployerResources)

	// --- Users ---
	api.GET("/users/:id", userHandler.Profile)
	api.PUT("/users/me", userHandler.UpdateMe, authed)

	// --- Jobs and applications ---
	api.GET("/jobs", jobHandler.List)
	api.GET("/jobs/:id", jobHandler.Get)
	api.POST("/jobs", jobHandler.Create, authed, middleware.RBAC(domain.RoleEmployer, domain.RoleAdmin))
	api.POST("/jobs/:id/apply", jobHandler.Apply, authed, middleware.RBAC(domain.RoleFreelancer))
	api.GET("/jobs/:id/applications", jobHandler.Applications, authed)

	// --- Reviews ---
	api.GET("/users/:id/reviews", reviewHandler.ListForUser)
	api.POST("/reviews", reviewHandler.Create, authed)

	// --- Messaging ---
	messages := api.Group("/messages", authed)
	messages.POST("", messageHandler.Send)
	messages.GET("/conversations", messageHandler.Conversations)
	messages.GET("/conversations/:userId", messageHandler.History)
	messages.DELETE("/conversations/:userId", messageHandler.DeleteConversation)
	messages.PUT("/:id", messageHandler.Update)
	messages.DELETE("/:id", messageHandler.Delete)

	// --- Notifications ---
	notifications := api.Group("/notifications", authed)
	notifications.GET("", notificationHandler.List)
	notifications.PUT("/:id/read", notificationHandler.MarkRead)

	// --- Payments ---
	api.POST("/payments/intent", paymentHandler.CreateIntent, authed)

	// --- AI helpers ---
	ai := api.Group("/ai", authed)
	ai.POST("/match", aiHandler.Match)
	ai.POST("/generate-description", aiHandler.GenerateDescription)

	// --- Admin console ---
	admin := api.Group("/admin", authed, middleware.RBAC(domain.RoleAdmin))
	admin.GET("/stats", adminHandler.Stats)
	admin.GET("/users", adminHandler.Users)
	admin.POST("/users", adminHandler.CreateUser)
	admin.PUT("/users/:id", adminHandler.UpdateUser)
	admin.PUT("/users/:id/role", adminHandler.UpdateUserRole)
	admin.DELETE("/users/:id", adminHandler.DeleteUser)
	admin.GET("/jobs", adminHandler.Jobs)
	admin.PUT("/jobs/:id/status", adminHandler.UpdateJobStatus)
	admin.GET("/applications", adminHandler.Applications)
	admin.PUT("/applications/:id/status", adminHandler.UpdateApplicationStatus)
	admin.GET("/payments", adminHandler.Payments)
	admin.GET("/reviews", adminHandler.Reviews)
	admin.DELETE("/reviews/:id", adminHandler.DeleteReview)
	admin.GET("/settings", adminHandler.Settings)
	admin.PUT("/settings", adminHandler.UpdateSettings)

	// Marketing content CRUD
	admin.POST("/content/plans", adminContentHandler.CreatePlan)
	admin.PUT("/content/plans/:id", adminContentHandler.UpdatePlan)
	admin.DELETE("/content/plans/:id", adminContentHandler.DeletePlan)
	admin.POST("/content/salary-categories", adminContentHandler.CreateSalaryCategory)
	admin.PUT("/content/salary-categories/:id", adminContentHandler.UpdateSalaryCategory)
	admin.DELETE("/content/salary-categories/:id", adminContentHandler.DeleteSalaryCategory)
	admin.POST("/content/salary-roles", adminContentHandler.CreateSalaryRole)
	admin.PUT("/content/salary-roles/:id", adminContentHandler.UpdateSalaryRole)
	admin.DELETE("/content/salary-roles/:id", adminContentHandler.DeleteSalaryRole)
	admin.POST("/content/salary-insights", adminContentHandler.CreateSalaryInsight)
	admin.PUT("/content/salary-insights/:id", adminContentHandler.UpdateSalaryInsight)
	admin.DELETE("/content/salary-insights/:id", adminContentHandler.DeleteSalaryInsight)
	admin.POST("/content/solutions", adminContentHandler.CreateSolution)
	admin.PUT("/content/solutions/:id", adminContentHandler.UpdateSolution)
	admin.DELETE("/content/solutions/:id", adminContentHandler.DeleteSolution)
	admin.POST("/content/hiring-stats", adminContentHandler.CreateHiringStat)
	admin.PUT("/content/hiring-stats/:id", adminContentHandler.UpdateHiringStat)
	admin.DELETE("/content/hiring-stats/:id", adminContentHandler.DeleteHiringStat)
	admin.POST("/content/hiring-plans", adminContentHandler.CreateHiringPlan)
	admin.PUT("/content/hiring-plans/:id", adminContentHandler.UpdateHiringPlan)
	admin.DELETE("/content/hiring-plans/:id", adminContentHandler.DeleteHiringPlan)
	admin.POST("/content/resource-categories", adminContentHandler.CreateResourceCategory)
	admin.PUT("/content/resource-categories/:id", adminContentHandler.UpdateResourceCategory)
	admin.DELETE("/content/resource-categories/:id", adminContentHandler.DeleteResourceCategory)
	admin.POST("/content/guides", adminContentHandler.CreateGuide)
	admin.PUT("/content/guides/:id", adminContentHandler.UpdateGuide)
	admin.DELETE("/content/guides/:id", adminContentHandler.DeleteGuide)
	admin.POST("/content/downloads", adminContentHandler.CreateDownload)
	admin.PUT("/content/downloads/:id", adminContentHandler.UpdateDownload)
	admin.DELETE("/content/downloads/:id", adminContentHandler.DeleteDownload)
	admin.POST("/content/faqs", adminContentHandler.CreateFAQ)
	admin.PUT("/content/faqs/:id", adminContentHandler.UpdateFAQ)
	admin.DELETE("/content/faqs/:id", adminContentHandler.DeleteFAQ)

	// --- WebSocket streams ---
	e.GET("/ws/notifications", wsHandler.Notifications)
	e.GET("/ws/chat", wsHandler.Chat)

	return e
}
