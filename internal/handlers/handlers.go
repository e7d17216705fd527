package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"opatija/backend/internal/cache"
	"opatija/backend/internal/config"
	"opatija/backend/internal/i18n"
	"opatija/backend/internal/middleware"
	"opatija/backend/internal/models"
	"opatija/backend/internal/pages"
	"opatija/backend/internal/queue"
	"opatija/backend/internal/repository"
	"opatija/backend/internal/service"
)

type HandlerSet struct {
	log         zerolog.Logger
	cfg         *config.AppConfig
	db          *pgxpool.Pool
	cache       *redis.Client
	users       *repository.UserRepository
	sessions    *repository.SessionRepository
	authService *service.AuthService
	contacts    service.Contacts
	flights     service.Flights
	pages       *pages.Builder
	bundle      *i18n.Bundle
}

func NewHandlerSet(log zerolog.Logger, db *pgxpool.Pool, redisClient *redis.Client, cfg *config.AppConfig) HandlerSet {
	userRepo := repository.NewUserRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	contactRepo := repository.NewContactRepository(db)
	flightRepo := repository.NewFlightRepository(db)

	store := cache.NewStore(redisClient, 0)
	producer := queue.NewProducer(redisClient, cfg.Redis.Stream)
	bundle := i18n.NewBundle()

	auth := service.NewAuthService(userRepo, sessionRepo, cfg, log)
	contacts := service.NewContactService(contactRepo, producer, log)
	flights := service.NewFlightService(flightRepo, store, log)

	return HandlerSet{
		log:         log,
		cfg:         cfg,
		db:          db,
		cache:       redisClient,
		users:       userRepo,
		sessions:    sessionRepo,
		authService: auth,
		contacts:    contacts,
		flights:     flights,
		pages:       pages.NewBuilder(bundle),
		bundle:      bundle,
	}
}

func (h HandlerSet) Register(engine *gin.Engine) {
	engine.GET("/", h.PageHome)
	engine.GET("/services", h.PageServices)
	engine.GET("/experiences", h.PageExperiences)
	engine.GET("/gallery", h.PageGallery)
	engine.GET("/about", h.PageAbout)
	engine.GET("/contact", h.PageContact)
	engine.GET("/personal", h.PagePersonal)
	engine.GET("/elite-journeys", h.PageEliteJourneys)
	engine.GET("/private-flights", h.PagePrivateFlights)
	engine.GET("/boutique", h.PageBoutique)

	engine.NoRoute(h.PageNotFound)

	functions := engine.Group(middleware.PublicFunctionsPrefix)
	functions.Use(middleware.PublicCORS())
	functions.POST("/submit-contact", h.SubmitContact)
	functions.OPTIONS("/submit-contact", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	api := engine.Group("/api")
	api.GET("/healthz", h.Health)

	v1 := api.Group("/v1")
	{
		v1.POST("/contact", h.SubmitContact)
		v1.GET("/flights", h.PublicFlights)
		v1.POST("/locale", h.SetLocale)

		auth := v1.Group("/auth")
		auth.POST("/login", h.Login)
		auth.POST("/refresh", h.Refresh)

		protected := v1.Group("/auth")
		protected.Use(middleware.Auth(h.cfg, h.users, h.sessions))
		protected.POST("/logout", h.Logout)
		protected.GET("/me", h.Me)

		admin := v1.Group("/admin")
		admin.Use(
			middleware.Auth(h.cfg, h.users, h.sessions),
			middleware.RequireRoles(models.UserRoleAdmin, models.UserRoleSuperAdmin),
		)
		admin.GET("/contacts", h.AdminListContacts)
		admin.GET("/contacts/:id", h.AdminGetContact)
		admin.PATCH("/contacts/:id/status", h.AdminUpdateContactStatus)
		admin.DELETE("/contacts/:id", h.AdminDeleteContact)

		admin.GET("/flights", h.AdminListFlights)
		admin.POST("/flights", h.AdminCreateFlight)
		admin.PUT("/flights/:id", h.AdminUpdateFlight)
		admin.DELETE("/flights/:id", h.AdminDeleteFlight)
	}
}

// respondError maps service and repository sentinels onto HTTP statuses.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, repository.ErrSubmissionNotFound),
		errors.Is(err, repository.ErrFlightNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
