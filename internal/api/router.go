package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/fitrack/fitrack-api/internal/api/handler"
	"github.com/fitrack/fitrack-api/internal/api/middleware"
	"github.com/fitrack/fitrack-api/internal/core/domain"
	"github.com/fitrack/fitrack-api/internal/core/service"
	"github.com/fitrack/fitrack-api/internal/infrastructure/payments"

	fitmongo "github.com/fitrack/fitrack-api/internal/infrastructure/db/mongo"
	fitredis "github.com/fitrack/fitrack-api/internal/infrastructure/db/redis"
)

// Options carries everything the router needs to wire the application.
type Options struct {
	DB              *mongo.Database
	Redis           *redis.Client
	JWTSecret       string
	TokenTTL        time.Duration
	StripeSecretKey string
	Logger          zerolog.Logger
}

// route binds one endpoint to its handler and its access policy. The policy
// table below is the single authority on who may call what; handlers contain
// no authorization logic of their own.
type route struct {
	method  string
	path    string
	handler echo.HandlerFunc
	policy  middleware.Policy
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(opts Options) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(opts.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("fitrack"))

	// --- Repositories ---
	userRepo := fitmongo.NewUserRepository(opts.DB)
	trainerRepo := fitmongo.NewTrainerRepository(opts.DB)
	classRepo := fitmongo.NewClassRepository(opts.DB)
	forumRepo := fitmongo.NewForumRepository(opts.DB)
	reviewRepo := fitmongo.NewReviewRepository(opts.DB)
	newsletterRepo := fitmongo.NewNewsletterRepository(opts.DB)
	paymentRepo := fitmongo.NewPaymentRepository(opts.DB)

	// --- Services ---
	authService := service.NewAuthService(userRepo, opts.JWTSecret, opts.TokenTTL)
	userService := service.NewUserService(userRepo, opts.Logger)
	trainerService := service.NewTrainerService(trainerRepo, userRepo, opts.Logger)
	classService := service.NewClassService(classRepo, opts.Logger)
	forumService := service.NewForumService(forumRepo, fitredis.NewVoteGuard(opts.Redis), opts.Logger)
	reviewService := service.NewReviewService(reviewRepo)
	newsletterService := service.NewNewsletterService(newsletterRepo)
	paymentService := service.NewPaymentService(
		payments.NewStripeGateway(opts.StripeSecretKey), paymentRepo, classRepo, opts.Logger)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	trainerHandler := handler.NewTrainerHandler(trainerService)
	classHandler := handler.NewClassHandler(classService)
	forumHandler := handler.NewForumHandler(forumService, userService)
	reviewHandler := handler.NewReviewHandler(reviewService)
	newsletterHandler := handler.NewNewsletterHandler(newsletterService)
	paymentHandler := handler.NewPaymentHandler(paymentService, userService)
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(opts.DB, opts.Redis)

	guard := middleware.NewGuard(opts.JWTSecret, userService)

	public := middleware.Policy{Public: true}
	authenticated := middleware.Policy{}
	adminOnly := middleware.Policy{Roles: []string{domain.RoleAdmin}}
	adminOrTrainer := middleware.Policy{Roles: []string{domain.RoleAdmin, domain.RoleTrainer}}

	// --- Route policy table ---
	routes := []route{
		{http.MethodGet, "/health", healthHandler.Liveness, public},
		{http.MethodGet, "/health/ready", readinessHandler.Readiness, public},
		{http.MethodGet, "/metrics", echoprometheus.NewHandler(), public},

		{http.MethodPost, "/auth/register", authHandler.Register, public},
		{http.MethodPost, "/auth/login", authHandler.Login, public},
		{http.MethodPost, "/auth/token", authHandler.Token, public},

		{http.MethodGet, "/users", userHandler.List, adminOnly},
		{http.MethodGet, "/users/admin/:email", userHandler.AdminStatus, middleware.Policy{SelfParam: "email"}},
		{http.MethodGet, "/users/trainer/:email", userHandler.TrainerStatus, middleware.Policy{SelfParam: "email"}},
		{http.MethodPatch, "/users/:id/role", userHandler.SetRole, adminOnly},
		{http.MethodDelete, "/users/:id", userHandler.Delete, adminOnly},

		{http.MethodPost, "/trainers/applications", trainerHandler.Apply, authenticated},
		{http.MethodGet, "/trainers/applications", trainerHandler.ListApplications, adminOnly},
		{http.MethodGet, "/trainers/applications/:id", trainerHandler.GetApplication, adminOnly},
		{http.MethodPatch, "/trainers/applications/:id/approve", trainerHandler.Approve, adminOnly},
		{http.MethodPatch, "/trainers/applications/:id/reject", trainerHandler.Reject, adminOnly},
		{http.MethodGet, "/trainers", trainerHandler.ListTrainers, public},
		{http.MethodDelete, "/trainers/:id", trainerHandler.Remove, adminOnly},

		{http.MethodPost, "/classes", classHandler.Create, adminOrTrainer},
		{http.MethodGet, "/classes", classHandler.List, public},
		{http.MethodGet, "/classes/featured", classHandler.Featured, public},

		{http.MethodPost, "/forum/posts", forumHandler.CreatePost, adminOrTrainer},
		{http.MethodGet, "/forum/posts", forumHandler.ListPosts, public},
		{http.MethodPatch, "/forum/posts/:id/vote", forumHandler.Vote, authenticated},

		{http.MethodPost, "/reviews", reviewHandler.Create, authenticated},
		{http.MethodGet, "/reviews", reviewHandler.List, public},

		{http.MethodPost, "/newsletter", newsletterHandler.Subscribe, public},
		{http.MethodGet, "/newsletter", newsletterHandler.ListSubscribers, adminOnly},

		{http.MethodPost, "/payments/intent", paymentHandler.CreateIntent, authenticated},
		{http.MethodPost, "/payments", paymentHandler.Record, authenticated},
		{http.MethodGet, "/payments", paymentHandler.List, authenticated},
	}

	for _, r := range routes {
		e.Add(r.method, r.path, r.handler, guard.Wrap(r.policy)...)
	}

	return e
}
