package main

// @title LeadRevive API
// @version 1.0
// @description SMS lead reactivation campaigns. Upload dormant leads, revive them on autopilot.

// @contact.name API Support
// @contact.email support@leadrevive.io

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @securityDefinitions.apikey CronSecret
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the cron secret.

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/danielmv/leadrevive/config"
	"github.com/danielmv/leadrevive/pkg/api/handlers"
	custommw "github.com/danielmv/leadrevive/pkg/api/middleware"
	"github.com/danielmv/leadrevive/pkg/audit"
	"github.com/danielmv/leadrevive/pkg/billing"
	"github.com/danielmv/leadrevive/pkg/cache"
	"github.com/danielmv/leadrevive/pkg/campaign"
	"github.com/danielmv/leadrevive/pkg/compliance"
	"github.com/danielmv/leadrevive/pkg/database"
	"github.com/danielmv/leadrevive/pkg/dispatch"
	"github.com/danielmv/leadrevive/pkg/email"
	"github.com/danielmv/leadrevive/pkg/inbound"
	"github.com/danielmv/leadrevive/pkg/jobs"
	"github.com/danielmv/leadrevive/pkg/logger"
	"github.com/danielmv/leadrevive/pkg/metrics"
	custommiddleware "github.com/danielmv/leadrevive/pkg/middleware"
	"github.com/danielmv/leadrevive/pkg/twilio"
)

// twilioProvider adapts the Twilio REST client to the dispatch engine
type twilioProvider struct {
	client *twilio.Client
}

func (p *twilioProvider) SendSMS(ctx context.Context, to, from, body string) (*dispatch.SendResult, error) {
	msg, err := p.client.SendMessage(ctx, to, from, body)
	if err != nil {
		return nil, err
	}
	return &dispatch.SendResult{SID: msg.SID, Status: msg.Status}, nil
}

func main() {
	// Load configuration
	cfg := config.Load()
	log.Printf("🔧 Configuration loaded (environment: %s)", cfg.APIEnvironment)

	// Initialize Sentry for error tracking
	if cfg.SentryDSN != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			Environment:      cfg.SentryEnvironment,
			TracesSampleRate: 1.0,
			AttachStacktrace: true,
		})
		if err != nil {
			log.Printf("⚠️  Failed to initialize Sentry: %v", err)
		} else {
			log.Printf("✅ Sentry initialized (environment: %s)", cfg.SentryEnvironment)
			defer sentry.Flush(2 * time.Second)
		}
	} else {
		log.Printf("ℹ️  Sentry disabled (no DSN configured)")
	}

	// Initialize database
	db, err := database.NewClient(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Initialize Redis cache
	redisClient, err := cache.NewClient(cfg.RedisURL)
	if err != nil {
		log.Fatalf("❌ Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	// Initialize Prometheus metrics
	prometheusMetrics := metrics.New()
	log.Printf("✅ Prometheus metrics initialized")

	// Service logger (structured JSON)
	svcLog := logger.New(cfg.LogLevel)

	// Initialize Echo
	e := echo.New()
	e.HideBanner = true

	// Rate limiters
	globalRateLimiter := custommiddleware.NewRateLimiter(cfg.RateLimitRequestsPerMinute, cfg.RateLimitBurst)
	webhookRateLimiter := custommiddleware.NewRateLimiter(300, 50) // carriers burst on delivery receipts

	// Global middleware
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Printf("[%s] %s - Status: %d", c.Request().Method, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(middleware.Recover())

	if cfg.SentryDSN != "" {
		e.Use(sentryecho.New(sentryecho.Options{
			Repanic: true,
		}))
	}

	e.Use(prometheusMetrics.Middleware())
	e.Use(middleware.CORSWithConfig(custommiddleware.CORSConfig()))
	e.Use(middleware.Gzip())
	e.Use(middleware.Secure())
	e.Use(globalRateLimiter.RateLimitMiddleware())

	// Health check endpoints (public)
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]any{
			"name":        "LeadRevive API",
			"version":     "0.1.0",
			"status":      "running",
			"environment": cfg.APIEnvironment,
			"timestamp":   time.Now().Unix(),
		})
	})

	e.GET("/health", func(c echo.Context) error {
		if err := db.Ping(c.Request().Context()); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]any{
				"status":   "unhealthy",
				"database": "down",
			})
		}
		if _, err := redisClient.Redis.Ping(c.Request().Context()).Result(); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]any{
				"status": "unhealthy",
				"cache":  "down",
			})
		}
		return c.JSON(http.StatusOK, map[string]any{
			"status":   "healthy",
			"database": "up",
			"cache":    "up",
		})
	})

	// Prometheus metrics endpoint (public)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Initialize email service
	emailService := email.NewService(
		cfg.EmailFrom,
		cfg.EmailFromName,
		cfg.FrontendURL,
		cfg.SendGridAPIKey,
	)

	// Initialize audit trail
	auditService := audit.NewService(db.Ent, svcLog)
	log.Printf("✅ Audit trail initialized")

	// Initialize Twilio client (master account)
	twilioClient := twilio.NewClient(cfg.TwilioAccountSID, cfg.TwilioAuthToken)
	verifier := func(ctx context.Context, accountSID, authToken string) (bool, []string, error) {
		client := twilio.NewClient(accountSID, authToken)
		ok, err := client.VerifyCredentials(ctx)
		if err != nil || !ok {
			return false, nil, err
		}
		incoming, err := client.ListIncomingNumbers(ctx)
		if err != nil {
			// Verified account with no readable numbers still connects;
			// the user supplies the number explicitly instead
			log.Printf("⚠️  Could not list numbers for %s: %v", accountSID, err)
			return true, nil, nil
		}
		numbers := make([]string, 0, len(incoming))
		for _, n := range incoming {
			numbers = append(numbers, n.PhoneNumber)
		}
		return true, numbers, nil
	}

	// Initialize services
	billingService := billing.NewService(db.Ent, &billing.StripeConfig{
		SecretKey:     cfg.StripeSecretKey,
		WebhookSecret: cfg.StripeWebhookSecret,
		PriceStarter:  cfg.StripePriceStarter,
		PricePro:      cfg.StripePricePro,
		PriceGrowth:   cfg.StripePriceGrowth,
		SuccessURL:    cfg.FrontendURL + "/dashboard/billing?success=true",
		CancelURL:     cfg.FrontendURL + "/dashboard/billing?canceled=true",
	})
	billingService.SetEmailSender(emailService)

	complianceService := compliance.NewService(db.Ent, twilioClient, verifier, cfg.TwilioCallbackURL, svcLog)
	campaignService := campaign.NewService(db.Ent, billingService, complianceService, auditService, prometheusMetrics, svcLog)

	numberSource := compliance.NewChainNumberSource(
		compliance.NewA2PNumberSource(db.Ent),
		compliance.NewConnectedNumberSource(db.Ent),
	)
	dispatchService := dispatch.NewService(
		db.Ent,
		campaignService,
		billingService,
		complianceService,
		numberSource,
		&twilioProvider{client: twilioClient},
		prometheusMetrics,
		svcLog,
	)
	inboundService := inbound.NewService(db.Ent, campaignService, redisClient, auditService, prometheusMetrics, svcLog)
	log.Printf("✅ Services initialized")

	// Initialize cron manager for dispatch and drip admission
	cronManager := jobs.NewCronManager(dispatchService, campaignService, cfg.DispatchBatchLimit, log.Default())
	if err := cronManager.SetupJobs(cfg.DispatchEverySpec, cfg.AdmissionCronSpec); err != nil {
		log.Fatalf("❌ Failed to setup cron jobs: %v", err)
	}
	cronManager.Start()
	log.Printf("✅ Cron jobs started successfully")

	// Initialize handlers
	campaignHandler := handlers.NewCampaignHandler(campaignService)
	billingHandler := handlers.NewBillingHandler(billingService)
	complianceHandler := handlers.NewComplianceHandler(complianceService)
	webhookHandler := handlers.NewWebhookHandler(inboundService)
	automationHandler := handlers.NewAutomationHandler(dispatchService, campaignService, cfg.DispatchBatchLimit)

	// API v1 routes
	v1 := e.Group("/api/v1")

	v1.GET("/ping", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"message": "pong",
		})
	})

	// Protected routes (require JWT)
	protected := v1.Group("")
	protected.Use(custommw.JWTMiddleware(cfg.JWTSecret))
	{
		campaignsGroup := protected.Group("/campaigns")
		{
			campaignsGroup.POST("", campaignHandler.Create)
			campaignsGroup.GET("", campaignHandler.List)
			campaignsGroup.GET("/:id", campaignHandler.Get)
			campaignsGroup.GET("/:id/stats", campaignHandler.Stats)
			campaignsGroup.POST("/:id/start", campaignHandler.Start)
			campaignsGroup.POST("/:id/pause", campaignHandler.Pause)
			campaignsGroup.POST("/:id/resume", campaignHandler.Resume)
			campaignsGroup.DELETE("/:id", campaignHandler.Delete)
		}

		billingGroup := protected.Group("/billing")
		{
			billingGroup.GET("/status", billingHandler.GetStatus)
			billingGroup.POST("/checkout", billingHandler.CreateCheckout)
			billingGroup.POST("/a2p-payment", billingHandler.CreateA2PPayment)
		}

		complianceGroup := protected.Group("/compliance")
		{
			complianceGroup.GET("/status", complianceHandler.GetStatus)
			complianceGroup.POST("/brand", complianceHandler.RegisterBrand)
			complianceGroup.POST("/campaign", complianceHandler.RegisterCampaign)
			complianceGroup.POST("/number", complianceHandler.BuyNumber)
			complianceGroup.POST("/connect", complianceHandler.ConnectAccount)
		}
	}

	// Automation routes (cron secret)
	automationGroup := v1.Group("/automation")
	automationGroup.Use(custommw.CronSecretMiddleware(cfg.CronSecret))
	{
		automationGroup.POST("/process-queue", automationHandler.ProcessQueue)
		automationGroup.POST("/admit-batches", automationHandler.AdmitBatches)
	}

	// Carrier and payment webhooks (public, rate limited)
	v1.POST("/webhooks/twilio", webhookHandler.HandleTwilio, webhookRateLimiter.RateLimitMiddleware())
	v1.POST("/webhooks/stripe", billingHandler.HandleWebhook, webhookRateLimiter.RateLimitMiddleware())

	// Start server
	address := fmt.Sprintf("%s:%s", cfg.APIHost, cfg.APIPort)
	log.Printf("🚀 LeadRevive API starting on %s", address)
	log.Printf("🛡️  Rate limiting: %d req/min (burst: %d)", cfg.RateLimitRequestsPerMinute, cfg.RateLimitBurst)
	log.Printf("⏰ Cron: dispatch %s, drip admission %s (batch limit %d)",
		cfg.DispatchEverySpec, cfg.AdmissionCronSpec, cfg.DispatchBatchLimit)

	// Graceful shutdown
	go func() {
		if err := e.Start(address); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	cronManager.Stop()
	log.Println("✅ Cron jobs stopped")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server gracefully stopped")
}
