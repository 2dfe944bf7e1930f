package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signup struct {
	Email string `json:"email" binding:"required,email" validate:"required,email"`
	Name  string `json:"name" binding:"max=5" validate:"max=5"`
}

func TestValidateStruct(t *testing.T) {
	errs := ValidateStruct(signup{Email: "nope", Name: "toolongname"})
	require.Len(t, errs, 2)
	assert.Equal(t, ValidationError{Field: "email", Tag: "email", Message: "email must be a valid email address"}, errs[0])
	assert.Equal(t, "name must be at most 5 characters", errs[1].Message)

	assert.Empty(t, ValidateStruct(signup{Email: "a@b.co"}))
}

func TestFormatValidationErrorsIgnoresOtherErrors(t *testing.T) {
	assert.Nil(t, FormatValidationErrors(errors.New("boom")))
	assert.Nil(t, FormatValidationErrors(nil))
}

func TestRespondBindError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	UseJSONFieldNames()

	router := gin.New()
	router.POST("/", func(c *gin.Context) {
		var req signup
		if err := c.ShouldBindJSON(&req); err != nil {
			RespondBindError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	})

	tests := []struct {
		name        string
		body        string
		wantStatus  int
		wantDetails int
	}{
		{name: "valid", body: `{"email":"a@b.co"}`, wantStatus: http.StatusNoContent},
		{name: "missing email", body: `{}`, wantStatus: http.StatusBadRequest, wantDetails: 1},
		{name: "malformed", body: `{"email":`, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			require.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus != http.StatusBadRequest {
				return
			}

			var body ValidationErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Len(t, body.Details, tt.wantDetails)
			if tt.wantDetails > 0 {
				assert.Equal(t, "email", body.Details[0].Field)
			}
		})
	}
}
