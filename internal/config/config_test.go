package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, AuthProviderJWT, cfg.AuthProvider)
	assert.Equal(t, "authenticated", cfg.JWTAudience)
	assert.Equal(t, 5*time.Minute, cfg.AuthCacheTTL)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.True(t, cfg.SeedOnStart)
	assert.False(t, cfg.IsProduction())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("PORT", "9090")
	t.Setenv("APP_ENV", "production")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("AUTH_CACHE_TTL", "30s")
	t.Setenv("RATE_LIMIT_BURST", "2")
	t.Setenv("SEED_ON_START", "false")
	t.Setenv("API_BASE_PATH", "/make-server")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, 3, cfg.RedisDB)
	assert.Equal(t, 30*time.Second, cfg.AuthCacheTTL)
	assert.Equal(t, 2, cfg.RateLimitBurst)
	assert.False(t, cfg.SeedOnStart)
	assert.Equal(t, "/make-server", cfg.APIBasePath)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr error
	}{
		{"jwt with secret", Config{AuthProvider: AuthProviderJWT, JWTSecret: "s"}, nil},
		{"jwt without secret", Config{AuthProvider: AuthProviderJWT}, ErrEmptyJWTSecret},
		{"firebase with creds", Config{AuthProvider: AuthProviderFirebase, FirebaseCredentialsFile: "sa.json"}, nil},
		{"firebase without creds", Config{AuthProvider: AuthProviderFirebase}, ErrMissingFirebaseCreds},
		{"unknown provider", Config{AuthProvider: "ldap"}, ErrUnsupportedAuthProvider},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
