// Command cleanup purges expired short-lived auth rows. The API deletes
// these lazily on access; this job sweeps the rows nobody came back for.
// Intended to run on a schedule (cron or a container job).
package main

import (
	"context"
	"log"
	"time"

	"account_backend/internal/feature/auth/adapters"
	"account_backend/internal/feature/auth/domain/entity"
	"account_backend/internal/platform/db"
)

func main() {
	conn := db.OpenDB()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	now := time.Now()
	sweeps := []struct {
		name  string
		model any
	}{
		{"login_codes", &entity.LoginCode{}},
		{"phone_verification_codes", &entity.PhoneVerificationCode{}},
		{"device_tokens", &entity.DeviceToken{}},
	}

	for _, s := range sweeps {
		result := conn.WithContext(ctx).Where("expires_at < ?", now).Delete(s.model)
		if result.Error != nil {
			log.Fatalf("failed to sweep %s: %v", s.name, result.Error)
		}
		log.Printf("swept %s: %d expired rows", s.name, result.RowsAffected)
	}

	// Sessions are kept as an audit trail; only flip stale active ones to
	// expired rather than deleting them.
	result := conn.WithContext(ctx).Model(&adapters.SessionModel{}).
		Where("status = ? AND expires_at < ?", entity.SessionActive, now).
		Update("status", entity.SessionExpired)
	if result.Error != nil {
		log.Fatalf("failed to expire stale sessions: %v", result.Error)
	}
	log.Printf("expired %d stale sessions", result.RowsAffected)

	if sqlDB, err := conn.DB(); err == nil {
		_ = sqlDB.Close()
	}
	log.Println("cleanup ok")
}
