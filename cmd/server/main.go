package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"anonprint-backend/internal/config"
	"anonprint-backend/internal/database"
	"anonprint-backend/internal/handlers"
	"anonprint-backend/internal/mailer"
	"anonprint-backend/internal/metrics"
	"anonprint-backend/internal/middleware"
	"anonprint-backend/internal/ratelimit"
	"anonprint-backend/internal/recaptcha"
	"anonprint-backend/internal/submission"
	"anonprint-backend/internal/supabase"
)

func main() {
	// A missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("invalid configuration")
	}
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}

	if cfg.DatabaseURL != "" {
		runMigrations(cfg.DatabaseURL, log)
	} else {
		log.Warn("DATABASE_URL not set, skipping migrations")
	}

	storageClient, err := supabase.NewStorageClient(cfg.SupabaseURL, cfg.SupabaseServiceKey, cfg.StorageBucket)
	if err != nil {
		log.WithError(err).Fatal("failed to initialize storage client")
	}
	orderStore, err := supabase.NewOrderStore(cfg.SupabaseURL, cfg.SupabaseServiceKey)
	if err != nil {
		log.WithError(err).Fatal("failed to initialize order store")
	}

	limiter := ratelimit.NewFixedWindow(ratelimit.Config{
		Requests: cfg.RateLimitRequests,
		Window:   cfg.RateLimitWindow,
	})
	cleanupCtx, stopCleanup := context.WithCancel(context.Background())
	defer stopCleanup()
	go limiter.StartCleanup(cleanupCtx)

	var notifier submission.Notifier
	if cfg.ResendAPIKey != "" {
		notifier = mailer.New(cfg.ResendAPIKey, cfg.EmailFrom, cfg.NotifyEmail)
	} else {
		log.Warn("RESEND_API_KEY not set, email notifications disabled")
	}

	m := metrics.New()
	pipeline := submission.New(
		storageClient,
		orderStore,
		limiter,
		recaptcha.NewClient(cfg.RecaptchaSecretKey),
		notifier,
		m,
		log,
	)

	router := newRouter(cfg, pipeline, m, log)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
	}

	go func() {
		log.WithField("port", cfg.Port).Info("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Error("forced shutdown")
	}
	log.Info("server stopped")
}

func runMigrations(dbURL string, log *logrus.Logger) {
	migrator, err := database.NewMigrator(dbURL, log)
	if err != nil {
		log.WithError(err).Warn("could not connect for migrations, continuing without them")
		return
	}
	defer migrator.Close()
	if err := migrator.Run(); err != nil {
		log.WithError(err).Warn("migrations failed, continuing with existing schema")
	}
}

func newRouter(cfg *config.Config, pipeline *submission.Pipeline, m *metrics.Metrics, log *logrus.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.Metrics(m))
	router.LoadHTMLGlob("web/templates/*.html")

	pages := handlers.NewPageHandler(cfg.RecaptchaSiteKey)
	pricingHandler := handlers.NewPricingHandler()
	orderHandler := handlers.NewOrderHandler(pipeline, log)

	router.GET("/", pages.Index)
	router.GET("/health", handlers.HealthCheck)
	router.GET("/metrics", gin.WrapH(m.Handler()))

	v1 := router.Group("/api/v1")
	{
		v1.GET("/pricing", pricingHandler.GetPricing)
		v1.GET("/quote", pricingHandler.GetQuote)
		v1.POST("/orders", orderHandler.SubmitOrder)
	}

	return router
}
