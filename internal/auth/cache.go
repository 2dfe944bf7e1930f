package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"time"

	"boxgym/internal/logger"

	"github.com/redis/go-redis/v9"
)

const tokenCachePrefix = "auth:token:"

// CachingResolver memoizes successful resolutions in Redis so repeated
// requests with the same token skip the provider round trip. Rejections are
// never cached.
type CachingResolver struct {
	next TokenResolver
	rdb  redis.Cmdable
	ttl  time.Duration
	now  func() time.Time
}

// NewCachingResolver returns next unchanged when caching is disabled.
func NewCachingResolver(next TokenResolver, rdb redis.Cmdable, ttl time.Duration) TokenResolver {
	if rdb == nil || ttl <= 0 {
		return next
	}
	return &CachingResolver{next: next, rdb: rdb, ttl: ttl, now: time.Now}
}

func (r *CachingResolver) ResolveToken(ctx context.Context, token string) (*Identity, error) {
	if token == "" {
		return nil, ErrMissingToken
	}
	key := tokenCacheKey(token)

	raw, err := r.rdb.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var identity Identity
		if jsonErr := json.Unmarshal(raw, &identity); jsonErr == nil && identity.UserID != "" {
			if identity.ExpiresAt.IsZero() || identity.ExpiresAt.After(r.now()) {
				return &identity, nil
			}
		}
	case !errors.Is(err, redis.Nil):
		logger.Warn("token cache read failed", "error", err)
	}

	identity, err := r.next.ResolveToken(ctx, token)
	if err != nil {
		return nil, err
	}

	ttl := r.ttl
	if !identity.ExpiresAt.IsZero() {
		if remaining := identity.ExpiresAt.Sub(r.now()); remaining < ttl {
			ttl = remaining
		}
	}
	if ttl > 0 {
		if encoded, jsonErr := json.Marshal(identity); jsonErr == nil {
			if setErr := r.rdb.Set(ctx, key, encoded, ttl).Err(); setErr != nil {
				logger.Warn("token cache write failed", "error", setErr)
			}
		}
	}

	return identity, nil
}

func tokenCacheKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return tokenCachePrefix + hex.EncodeToString(sum[:])
}
