package server

import (
	"context"
	"net/http"
	"strings"
	"time"

	"boxgym/internal/api"
	"boxgym/internal/auth"
	"boxgym/internal/booking"
	"boxgym/internal/catalog"
	"boxgym/internal/config"
	"boxgym/internal/contact"
	"boxgym/internal/email"
	"boxgym/internal/occupancy"
	"boxgym/internal/profile"
	"boxgym/internal/schedule"
	"boxgym/internal/seed"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const adminRole = "admin"

type Server struct {
	router *gin.Engine
	http   *http.Server
	config *config.Config
	seeder *seed.Seeder
}

func New(cfg *config.Config, rdb redis.Cmdable, resolver auth.TokenResolver, emailService *email.Service) *Server {
	api.UseJSONFieldNames()

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestLoggingMiddleware())
	router.Use(MetricsMiddleware())
	router.Use(corsMiddleware(cfg.CORSOrigins))

	catalogRepo := catalog.NewRepository(rdb)
	scheduleRepo := schedule.NewRepository(rdb)

	catalogService := catalog.NewService(catalogRepo)
	scheduleService := schedule.NewService(scheduleRepo, catalogService)
	var (
		bookingNotifier booking.Notifier
		contactNotifier contact.Notifier
		queue           QueueGauge
	)
	if emailService != nil {
		bookingNotifier = emailService
		contactNotifier = emailService
		queue = emailService
	}

	profileRepo := profile.NewRepository(rdb)
	bookingService := booking.NewService(booking.NewRepository(rdb), scheduleService, bookingNotifier, profile.NewNameLookup(profileRepo))
	profileService := profile.NewService(profileRepo, bookingService)
	contactService := contact.NewService(contact.NewRepository(rdb), contactNotifier)
	seeder := seed.New(catalogRepo, scheduleRepo)

	catalogHandler := catalog.NewHandler(catalogService)
	scheduleHandler := schedule.NewHandler(scheduleService)
	bookingHandler := booking.NewHandler(bookingService)
	profileHandler := profile.NewHandler(profileService)
	contactHandler := contact.NewHandler(contactService)
	estimator := occupancy.NewEstimator()

	writeLimit := RateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst)
	authMiddleware := auth.AuthMiddleware(resolver)

	base := router.Group(basePath(cfg.APIBasePath))

	public := base.Group("")
	{
		public.GET("/health", Health)
		public.GET("/metrics", Metrics(queue))
		public.GET("/classes", catalogHandler.ListClasses)
		public.GET("/trainers", catalogHandler.ListTrainers)
		public.GET("/testimonials", catalogHandler.ListTestimonials)
		public.GET("/schedule", scheduleHandler.ListSchedule)
		public.GET("/schedule/:slotID", scheduleHandler.GetSlot)
		public.GET("/occupancy", estimator.GetOccupancy)
		public.POST("/contact", writeLimit, contactHandler.SubmitContact)
		public.POST("/newsletter", writeLimit, contactHandler.SubscribeNewsletter)
	}

	protected := base.Group("")
	protected.Use(authMiddleware)
	{
		protected.GET("/profile", profileHandler.GetProfile)
		protected.POST("/profile", writeLimit, profileHandler.CreateProfile)
		protected.GET("/bookings", bookingHandler.ListMyBookings)
		protected.POST("/bookings", writeLimit, bookingHandler.BookClass)
		protected.POST("/bookings/:bookingID/cancel", writeLimit, bookingHandler.CancelBooking)
	}

	admin := base.Group("/admin")
	admin.Use(authMiddleware, auth.RequireRole(adminRole))
	{
		admin.POST("/schedule", scheduleHandler.CreateSlot)
		admin.GET("/schedule/:slotID/bookings", bookingHandler.ListSlotBookings)
		admin.POST("/seed", seeder.HandleSeed)
	}

	SetupSwagger(base)

	return &Server{
		router: router,
		config: cfg,
		seeder: seeder,
		http: &http.Server{
			Addr:              ":" + cfg.Port,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) Seeder() *seed.Seeder {
	return s.seeder
}

// Start blocks until the server stops. After Shutdown it returns http.ErrServerClosed.
func (s *Server) Start() error {
	return s.http.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

// basePath normalizes API_BASE_PATH to "/" or "/prefix" without a trailing slash.
func basePath(p string) string {
	p = strings.Trim(strings.TrimSpace(p), "/")
	if p == "" {
		return "/"
	}
	return "/" + p
}

func corsMiddleware(origins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}

	allowAll := len(origins) == 0
	for _, o := range origins {
		if strings.TrimSpace(o) == "*" {
			allowAll = true
		}
	}
	if allowAll {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}

	return cors.New(cfg)
}
