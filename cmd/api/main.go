// cmd/api/main.go
// Main entry point for the application
// This file bootstraps all components and starts the server

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/campusmatch/campusmatch-backend/internal/auth"
	"github.com/campusmatch/campusmatch-backend/internal/cache"
	"github.com/campusmatch/campusmatch-backend/internal/common/database"
	"github.com/campusmatch/campusmatch-backend/internal/common/utils"
	"github.com/campusmatch/campusmatch-backend/internal/config"
	"github.com/campusmatch/campusmatch-backend/internal/discover"
	"github.com/campusmatch/campusmatch-backend/internal/likes"
	"github.com/campusmatch/campusmatch-backend/internal/matches"
	"github.com/campusmatch/campusmatch-backend/internal/otp"
	"github.com/campusmatch/campusmatch-backend/internal/profile"
)

func main() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	log.Println("========================================")
	log.Println("🚀 Starting CampusMatch API")
	log.Println("========================================")

	// 1. Load environment variables
	log.Println("📁 Step 1: Loading .env file...")
	if err := godotenv.Load(); err != nil {
		log.Printf("⚠️  Warning: No .env file found (%v), using environment variables", err)
	} else {
		log.Println("✅ .env file loaded successfully")
	}

	// 2. Load configuration
	log.Println("📋 Step 2: Loading configuration...")
	cfg := config.Load()
	log.Printf("✅ Configuration loaded (environment: %s)", cfg.Environment)

	// 3. Validate configuration
	log.Println("✔️  Step 3: Validating configuration...")
	if err := cfg.Validate(); err != nil {
		log.Fatal("❌ Configuration validation failed: ", err)
	}
	log.Println("✅ Configuration is valid")

	// 4. Connect to PostgreSQL
	log.Println("🗄️  Step 4: Connecting to PostgreSQL...")
	db, err := database.NewPostgresDBFromURL(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("❌ Failed to connect to PostgreSQL: ", err)
	}
	defer db.Close()
	log.Println("✅ Connected to PostgreSQL successfully")

	// 5. Connect to Redis and pick the ephemeral store
	log.Println("📮 Step 5: Setting up the ephemeral store...")
	var redisClient *redis.Client
	var store cache.Store

	if cfg.UseRedisCache {
		redisClient, err = database.NewRedisClientFromURL(cfg.RedisURL)
		if err != nil {
			log.Fatal("❌ Failed to connect to Redis: ", err)
		}
		defer redisClient.Close()
		store = cache.NewRedisStore(redisClient, "campusmatch")
		log.Println("✅ Connected to Redis successfully")
	} else {
		store = cache.NewMemoryStore()
		log.Println("⚠️  Redis cache disabled, using in-process store")
	}

	// 6. Run database migrations
	log.Println("🔨 Step 6: Running database migrations...")
	if err := runMigrations(db); err != nil {
		log.Fatal("❌ Failed to run migrations: ", err)
	}
	log.Println("✅ Database migrations completed")

	// 7. Initialize OTP delivery providers
	log.Println("📱 Step 7: Initializing OTP system...")

	var emailProvider otp.EmailProvider
	switch cfg.EmailProvider {
	case "sendgrid":
		emailProvider = otp.NewSendGridEmailProvider(cfg.SendGridAPIKey, cfg.EmailFrom)
		log.Println("   ✅ Using SendGrid for emails")
	case "smtp":
		emailProvider = otp.NewSMTPEmailProvider(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.EmailFrom)
		log.Println("   ✅ Using SMTP for emails")
	default:
		emailProvider = otp.NewMockEmailProvider()
		log.Println("   ⚠️  Using mock email provider (development mode)")
	}

	var smsProvider otp.SMSProvider
	switch cfg.SMSProvider {
	case "twilio":
		smsProvider = otp.NewTwilioSMSProvider(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioFromNumber)
		log.Println("   ✅ Using Twilio for SMS")
	default:
		smsProvider = otp.NewMockSMSProvider()
		log.Println("   ⚠️  Using mock SMS provider (development mode)")
	}

	otpService := otp.NewService(store, emailProvider, smsProvider, &otp.Config{
		Length:       cfg.OTPLength,
		Expiry:       cfg.OTPExpiry,
		MaxAttempts:  cfg.MaxOTPAttempts,
		ResendMax:    cfg.OTPResendMax,
		ResendWindow: cfg.OTPResendWindow,
	})
	log.Println("✅ OTP system initialized")

	// 8. Initialize repositories and services
	log.Println("🧩 Step 8: Initializing services...")

	transactor := database.NewTransactor(db)

	profileRepo := profile.NewPostgresRepository(db)
	likeRepo := likes.NewPostgresRepository(db)
	matchRepo := matches.NewPostgresRepository(db)

	profileService := profile.NewService(profileRepo)
	discoverService := discover.NewService(profileRepo, likeRepo, matchRepo)
	likeService := likes.NewService(likeRepo, matchRepo, profileRepo, transactor)
	matchService := matches.NewService(matchRepo)
	log.Println("✅ Services initialized")

	// 9. Set up authentication
	log.Println("🔐 Step 9: Setting up authentication...")
	verifier := auth.NewJWTVerifier(cfg.JWTSecret)
	authMiddleware := auth.NewMiddleware(verifier)
	log.Println("✅ Authentication configured")

	// 10. Set up routes
	log.Println("🛣️  Step 10: Setting up routes...")
	router := mux.NewRouter()

	profile.RegisterRoutes(router, profile.NewHandler(profileService), authMiddleware)
	discover.RegisterRoutes(router, discover.NewHandler(discoverService), authMiddleware)
	likes.RegisterRoutes(router, likes.NewHandler(likeService), authMiddleware)
	matches.RegisterRoutes(router, matches.NewHandler(matchService), authMiddleware)
	otp.RegisterRoutes(router, otp.NewHandler(otpService))

	router.Handle("/metrics", promhttp.Handler()).Methods("GET")
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			utils.RespondWithError(w, http.StatusServiceUnavailable, "database unreachable")
			return
		}
		utils.RespondWithJSON(w, http.StatusOK, map[string]string{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	}).Methods("GET")
	log.Println("✅ Routes configured")

	// 11. Start the server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Println("========================================")
		log.Printf("🎉 CampusMatch API listening on port %s", cfg.Port)
		log.Println("========================================")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("❌ Server failed: ", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("❌ Server forced to shutdown: ", err)
	}

	log.Println("👋 Server exited")
}
