// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"account_backend/internal/feature/notifications/domain/entity"
	"account_backend/internal/feature/notifications/usecase"
)

// CachingNotificationRepository decorates a NotificationRepository with Redis
// caching of the per-user notification list. It implements the decorator
// pattern, transparently adding caching without modifying the underlying
// repository. Mutations invalidate the owner's cached list synchronously so
// a follow-up read never serves a stale entry.
type CachingNotificationRepository struct {
	inner     usecase.NotificationRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ usecase.NotificationRepository = (*CachingNotificationRepository)(nil)

// NewCachingNotificationRepository decorates a NotificationRepository with
// Redis caching. If ttl is 0, it defaults to 5 minutes. If namespace is
// empty, it uses "notifications".
func NewCachingNotificationRepository(rdb *redis.Client, ttl time.Duration, inner usecase.NotificationRepository, namespace string) *CachingNotificationRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "notifications"
	}
	return &CachingNotificationRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// Create inserts the notification and invalidates the owner's cached list.
func (c *CachingNotificationRepository) Create(ctx context.Context, n *entity.Notification) error {
	if err := c.inner.Create(ctx, n); err != nil {
		return err
	}
	c.invalidate(ctx, n.UserID)
	return nil
}

// ListByUserID retrieves the user's notifications, checking cache first then
// falling back to the database.
func (c *CachingNotificationRepository) ListByUserID(ctx context.Context, userID uint) ([]entity.Notification, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.ListByUserID(ctx, userID)
	}

	key := c.cacheKey(userID)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.Notification
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to database
	out, err := c.inner.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// MarkRead flips one notification to read and invalidates the owner's
// cached list.
func (c *CachingNotificationRepository) MarkRead(ctx context.Context, userID, id uint) error {
	if err := c.inner.MarkRead(ctx, userID, id); err != nil {
		return err
	}
	c.invalidate(ctx, userID)
	return nil
}

// MarkAllRead flips every unread notification to read and invalidates the
// owner's cached list.
func (c *CachingNotificationRepository) MarkAllRead(ctx context.Context, userID uint) error {
	if err := c.inner.MarkAllRead(ctx, userID); err != nil {
		return err
	}
	c.invalidate(ctx, userID)
	return nil
}

// invalidate drops the cached list for one user. Best effort: a failed
// deletion only costs a stale read until the TTL runs out.
func (c *CachingNotificationRepository) invalidate(ctx context.Context, userID uint) {
	if c.rdb == nil {
		return
	}
	_ = c.rdb.Del(ctx, c.cacheKey(userID)).Err()
}

// cacheKey generates the cache key for a user's notification list.
func (c *CachingNotificationRepository) cacheKey(userID uint) string {
	return fmt.Sprintf("%s:user:%d", c.namespace, userID)
}
