package catalog

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupRouter(repo *MockRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(NewService(repo))

	router := gin.New()
	router.GET("/classes", h.ListClasses)
	router.GET("/trainers", h.ListTrainers)
	router.GET("/testimonials", h.ListTestimonials)
	return router
}

func TestHandler_ListClasses(t *testing.T) {
	repo := new(MockRepository)
	repo.On("GetClasses", mock.Anything).Return([]ClassDefinition{{ID: "beginner-fog-cutter", Level: LevelBeginner}}, nil)

	w := httptest.NewRecorder()
	setupRouter(repo).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/classes", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var body ClassesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Classes, 1)
	assert.Equal(t, LevelBeginner, body.Classes[0].Level)
}

func TestHandler_ListTrainersEmpty(t *testing.T) {
	repo := new(MockRepository)
	repo.On("GetTrainers", mock.Anything).Return([]Trainer{}, nil)

	w := httptest.NewRecorder()
	setupRouter(repo).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/trainers", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"trainers":[]}`, w.Body.String())
}

func TestHandler_StorageFailure(t *testing.T) {
	repo := new(MockRepository)
	repo.On("GetTestimonials", mock.Anything).Return(nil, errors.New("redis down"))

	w := httptest.NewRecorder()
	setupRouter(repo).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/testimonials", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Failed to fetch testimonials"}`, w.Body.String())
}
