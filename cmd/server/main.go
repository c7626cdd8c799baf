package main

import (
	"log"
	"os"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"account_backend/internal/app/router"
	authadapters "account_backend/internal/feature/auth/adapters"
	authhandler "account_backend/internal/feature/auth/transport/handler"
	authusecase "account_backend/internal/feature/auth/usecase"
	mediaadapters "account_backend/internal/feature/media/adapters"
	mediahandler "account_backend/internal/feature/media/transport/handler"
	mediausecase "account_backend/internal/feature/media/usecase"
	notificationadapters "account_backend/internal/feature/notifications/adapters"
	notificationhandler "account_backend/internal/feature/notifications/transport/handler"
	notificationusecase "account_backend/internal/feature/notifications/usecase"
	projectadapters "account_backend/internal/feature/projects/adapters"
	projecthandler "account_backend/internal/feature/projects/transport/handler"
	projectusecase "account_backend/internal/feature/projects/usecase"
	supportadapters "account_backend/internal/feature/support/adapters"
	supporthandler "account_backend/internal/feature/support/transport/handler"
	supportusecase "account_backend/internal/feature/support/usecase"
	"account_backend/internal/platform/cache"
	platformdb "account_backend/internal/platform/db"
	"account_backend/internal/platform/hash"
	jwtmw "account_backend/internal/platform/jwt"
	"account_backend/internal/platform/notify"
	platformredis "account_backend/internal/platform/redis"
	"account_backend/internal/platform/storage"
	"account_backend/internal/shared/ratelimiter"
)

const (
	defaultAccessTTL  = 15 * time.Minute
	defaultRefreshTTL = 7 * 24 * time.Hour
	bcryptCost        = 10
)

func ttlFromEnv(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
		log.Printf("[WARN] invalid %s, using default %v", key, fallback)
	}
	return fallback
}

func main() {
	// db
	db := platformdb.OpenDB()

	// Redis
	var rdb *redisv9.Client
	if tmp, err := platformredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Token signer
	accessSecret := os.Getenv("JWT_ACCESS_SECRET")
	refreshSecret := os.Getenv("JWT_REFRESH_SECRET")
	if accessSecret == "" || refreshSecret == "" {
		log.Println("[WARN] JWT secrets are not set. Set strong secrets in production.")
	}
	accessTTL := ttlFromEnv("JWT_ACCESS_TTL", defaultAccessTTL)
	refreshTTL := ttlFromEnv("JWT_REFRESH_TTL", defaultRefreshTTL)
	signer := jwtmw.NewSigner(accessSecret, refreshSecret, accessTTL, refreshTTL)

	hasher := hash.NewHasher(bcryptCost)

	// Outbound senders, throttled per provider quota
	mail := notify.NewLogEmailSender(ratelimiter.NewRateLimiter(60, time.Minute))
	sms := notify.NewLogSMSSender(ratelimiter.NewRateLimiter(30, time.Minute))

	// Repository
	userRepo := authadapters.NewUserPostgres(db)
	sessionRepo := authadapters.NewSessionPostgres(db)
	verificationRepo := authadapters.NewVerificationPostgres(db)
	loginCodeRepo := authadapters.NewLoginCodePostgres(db)
	phoneCodeRepo := authadapters.NewPhoneCodePostgres(db)
	deviceRepo := authadapters.NewDeviceTokenPostgres(db)
	projectRepo := projectadapters.NewProjectRepository(db)
	mediaRepo := mediaadapters.NewMediaRepository(db)
	ticketRepo := supportadapters.NewTicketRepository(db)

	// Notification reads go through the Redis cache
	notificationRepo := cache.NewCachingNotificationRepository(
		rdb, 5*time.Minute, notificationadapters.NewNotificationRepository(db), "notifications")

	// Usecase
	authUC := authusecase.NewAuthUsecase(
		userRepo, sessionRepo, verificationRepo, loginCodeRepo, phoneCodeRepo, deviceRepo,
		signer, hasher, mail, sms, refreshTTL)
	projectUC := projectusecase.NewProjectUsecase(projectRepo)
	mediaUC := mediausecase.NewMediaUsecase(mediaRepo, storage.NewLocalSigner())
	notificationUC := notificationusecase.NewNotificationUsecase(notificationRepo)
	supportUC := supportusecase.NewSupportUsecase(ticketRepo)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	projectH := projecthandler.NewProjectHandler(projectUC)
	mediaH := mediahandler.NewMediaHandler(mediaUC)
	notificationH := notificationhandler.NewNotificationHandler(notificationUC)
	supportH := supporthandler.NewSupportHandler(supportUC)

	r := router.NewRouter(signer, authH, projectH, mediaH, notificationH, supportH)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
