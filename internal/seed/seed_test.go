package seed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"boxgym/internal/catalog"
	"boxgym/internal/schedule"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (*Seeder, *redis.Client, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return New(catalog.NewRepository(rdb), schedule.NewRepository(rdb)), rdb, mr
}

func TestFixturesAreConsistent(t *testing.T) {
	classes := map[string]catalog.ClassDefinition{}
	for _, c := range Classes() {
		assert.True(t, c.Level.Valid(), c.ID)
		classes[c.ID] = c
	}
	trainers := map[string]bool{}
	for _, tr := range Trainers() {
		trainers[tr.ID] = true
	}

	for _, s := range Slots() {
		class, ok := classes[s.ClassID]
		require.True(t, ok, s.ID)
		assert.True(t, trainers[s.InstructorID], s.ID)
		assert.True(t, s.Day.Valid(), s.ID)
		assert.Equal(t, class.MaxCapacity, s.MaxCapacity, s.ID)
		assert.LessOrEqual(t, s.CurrentBookings, s.MaxCapacity, s.ID)
	}
	for _, c := range Classes() {
		assert.True(t, trainers[c.InstructorID], c.ID)
	}
}

func TestRun(t *testing.T) {
	seeder, rdb, _ := setup(t)
	ctx := context.Background()

	res, err := seeder.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, &Result{Classes: true, Trainers: true, Testimonials: true, Slots: 4}, res)

	slot, err := schedule.NewRepository(rdb).GetSlot(ctx, "mon-6am-beginner")
	require.NoError(t, err)
	assert.Equal(t, 12, slot.SpotsAvailable())
}

func TestRunIsNonDestructive(t *testing.T) {
	seeder, rdb, _ := setup(t)
	ctx := context.Background()

	_, err := seeder.Run(ctx)
	require.NoError(t, err)

	slots := schedule.NewRepository(rdb)
	_, err = slots.CreateSlot(ctx, schedule.Slot{ID: "sat-10am-open", ClassID: "beginner-fog-cutter", Day: "Saturday", Time: "10:00", MaxCapacity: 20})
	require.NoError(t, err)
	rdb.HSet(ctx, "schedule", "wed-6pm-advanced", `{"id":"wed-6pm-advanced","classId":"advanced-twin-peaks","day":"Wednesday","time":"18:00","maxCapacity":12,"currentBookings":11}`)

	res, err := seeder.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, &Result{}, res)

	slot, err := slots.GetSlot(ctx, "wed-6pm-advanced")
	require.NoError(t, err)
	assert.Equal(t, 11, slot.CurrentBookings)

	all, err := slots.ListSlots(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 5)
}

func TestRunAsyncLogsFailure(t *testing.T) {
	seeder, _, mr := setup(t)
	mr.SetError("server down")

	<-seeder.RunAsync(context.Background())
}

func TestHandleSeed(t *testing.T) {
	gin.SetMode(gin.TestMode)
	seeder, _, mr := setup(t)

	router := gin.New()
	router.POST("/admin/seed", seeder.HandleSeed)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/admin/seed", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Data initialized successfully")

	mr.SetError("server down")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/admin/seed", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
