// Package db opens the application database connection.
package db

import (
	"fmt"
	"log"
	"os"
	"time"

	gpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	authadapters "account_backend/internal/feature/auth/adapters"
	authentity "account_backend/internal/feature/auth/domain/entity"
	mediaentity "account_backend/internal/feature/media/domain/entity"
	notificationentity "account_backend/internal/feature/notifications/domain/entity"
	projectentity "account_backend/internal/feature/projects/domain/entity"
	supportentity "account_backend/internal/feature/support/domain/entity"
)

// OpenDB connects to Postgres using environment configuration, retrying for
// up to a minute so the service survives a database that is still starting.
// Startup cannot proceed without a database, so failures here are fatal.
func OpenDB() *gorm.DB {
	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	user := os.Getenv("DB_USER")
	pass := os.Getenv("DB_PASSWORD")
	name := os.Getenv("DB_NAME")
	sslmode := os.Getenv("DB_SSLMODE")
	if sslmode == "" {
		sslmode = "disable"
	}

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, pass, name, sslmode)

	var (
		db  *gorm.DB
		err error
	)

	deadline := time.Now().Add(60 * time.Second)
	for {
		// TranslateError turns driver-specific unique violations into
		// gorm.ErrDuplicatedKey, which the user repository relies on.
		db, err = gorm.Open(gpostgres.Open(dsn), &gorm.Config{TranslateError: true})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("DB connect failed after 60s: %v", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	if os.Getenv("RUN_MIGRATIONS") == "true" {
		if err := db.AutoMigrate(
			&authentity.User{},
			&authadapters.SessionModel{},
			&authadapters.VerificationModel{},
			&authentity.LoginCode{},
			&authentity.PhoneVerificationCode{},
			&authentity.DeviceToken{},
			&projectentity.Project{},
			&mediaentity.MediaObject{},
			&notificationentity.Notification{},
			&supportentity.Ticket{},
		); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}
