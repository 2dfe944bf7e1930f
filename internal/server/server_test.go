package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"boxgym/internal/auth"
	"boxgym/internal/booking"
	"boxgym/internal/config"
	"boxgym/internal/email"
	"boxgym/internal/profile"
	"boxgym/internal/schedule"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "server-test-secret"

func testConfig() *config.Config {
	return &config.Config{
		Port:           "0",
		Env:            "test",
		APIBasePath:    "/api",
		AuthProvider:   config.AuthProviderJWT,
		JWTSecret:      testSecret,
		RateLimitRPS:   100,
		RateLimitBurst: 100,
		CORSOrigins:    []string{"*"},
	}
}

func setupServer(t *testing.T) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	resolver, err := auth.NewJWTResolver(testSecret, "", "")
	require.NoError(t, err)

	return New(testConfig(), rdb, resolver, email.New(email.Config{}, rdb))
}

func token(t *testing.T, userID, role string) string {
	t.Helper()
	tok, err := auth.IssueToken(testSecret, "", "", auth.Identity{UserID: userID, Email: userID + "@example.com", Role: role}, time.Hour)
	require.NoError(t, err)
	return tok
}

func call(s *Server, method, path, tok, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	return serve(s.Handler(), req)
}

func TestHealth(t *testing.T) {
	s := setupServer(t)

	w := call(s, http.MethodGet, "/api/health", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, serviceName, body["service"])
	assert.NotEmpty(t, body["timestamp"])
}

func TestAdminRoutesRequireAdminRole(t *testing.T) {
	s := setupServer(t)

	assert.Equal(t, http.StatusUnauthorized, call(s, http.MethodPost, "/api/admin/seed", "", "").Code)
	assert.Equal(t, http.StatusForbidden, call(s, http.MethodPost, "/api/admin/seed", token(t, "user-1", "member"), "").Code)
	assert.Equal(t, http.StatusOK, call(s, http.MethodPost, "/api/admin/seed", token(t, "coach", "admin"), "").Code)
}

func TestBookingRoundTrip(t *testing.T) {
	s := setupServer(t)
	_, err := s.Seeder().Run(context.Background())
	require.NoError(t, err)

	member := token(t, "user-1", "member")

	w := call(s, http.MethodGet, "/api/schedule?day=Monday", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	var list schedule.ScheduleResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list.Schedule, 2)

	w = call(s, http.MethodPost, "/api/bookings", member, `{"scheduleSlotId":"mon-6am-beginner"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var booked booking.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &booked))

	w = call(s, http.MethodGet, "/api/schedule/mon-6am-beginner", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	var slot schedule.SlotResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &slot))
	assert.Equal(t, 9, slot.Slot.CurrentBookings)
	assert.Equal(t, 11, slot.Slot.SpotsAvailable)

	assert.Equal(t, http.StatusConflict, call(s, http.MethodPost, "/api/bookings", member, `{"scheduleSlotId":"mon-6am-beginner"}`).Code)

	w = call(s, http.MethodPost, "/api/profile", member, `{"name":"Sam"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = call(s, http.MethodGet, "/api/profile", member, "")
	require.Equal(t, http.StatusOK, w.Code)
	var prof profile.ProfileResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &prof))
	assert.Equal(t, "user-1@example.com", prof.Profile.Email)
	require.Len(t, prof.Profile.Bookings, 1)
	assert.Equal(t, booked.Booking.ID, prof.Profile.Bookings[0].ID)

	w = call(s, http.MethodPost, "/api/bookings/"+booked.Booking.ID+"/cancel", member, "")
	require.Equal(t, http.StatusOK, w.Code)

	w = call(s, http.MethodGet, "/api/schedule/mon-6am-beginner", "", "")
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &slot))
	assert.Equal(t, 8, slot.Slot.CurrentBookings)
}

func TestPublicEndpoints(t *testing.T) {
	s := setupServer(t)
	_, err := s.Seeder().Run(context.Background())
	require.NoError(t, err)

	for _, path := range []string{"/api/classes", "/api/trainers", "/api/testimonials", "/api/occupancy", "/api/swagger/index.html"} {
		assert.Equal(t, http.StatusOK, call(s, http.MethodGet, path, "", "").Code, path)
	}

	w := call(s, http.MethodPost, "/api/contact", "", `{"name":"Ana","email":"ana@example.com","message":"Do you offer trial classes?"}`)
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = call(s, http.MethodPost, "/api/newsletter", "", `{"email":"not-an-email"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = call(s, http.MethodGet, "/api/metrics", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "boxgym_")
}

func TestUnknownRouteIs404(t *testing.T) {
	s := setupServer(t)
	assert.Equal(t, http.StatusNotFound, call(s, http.MethodGet, "/api/does-not-exist", "", "").Code)
	assert.Equal(t, http.StatusNotFound, call(s, http.MethodGet, "/health", "", "").Code)
}
