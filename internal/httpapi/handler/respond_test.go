package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"shelfmate/internal/httpapi/apperr"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRespondError_StatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name string
		err  error
		want int
	}{
		{"not found", apperr.NotFoundf("book 1 not found"), http.StatusNotFound},
		{"conflict", apperr.Conflictf("email already registered"), http.StatusConflict},
		{"invalid argument", apperr.InvalidArgumentf("rating must be between 1 and 5"), http.StatusBadRequest},
		{"auth failed", apperr.AuthFailedf("invalid credentials"), http.StatusUnauthorized},
		{"unknown", assert.AnError, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			respondError(c, tc.err)
			assert.Equal(t, tc.want, w.Code)
		})
	}
}

func TestPathUserID_MatchesAuthenticatedUser(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("userID", "user-id")
	c.Params = gin.Params{{Key: "userId", Value: "user-id"}}

	userID, ok := pathUserID(c)

	assert.True(t, ok)
	assert.Equal(t, "user-id", userID)
}

func TestPathUserID_MismatchReadsAsNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("userID", "user-id")
	c.Params = gin.Params{{Key: "userId", Value: "someone-else"}}

	_, ok := pathUserID(c)

	assert.False(t, ok)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPathUserID_Unauthenticated(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "userId", Value: "user-id"}}

	_, ok := pathUserID(c)

	assert.False(t, ok)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
