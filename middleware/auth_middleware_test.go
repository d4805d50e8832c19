package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func newAuthRouter(apiToken string) (*gin.Engine, *int) {
	gin.SetMode(gin.TestMode)
	hits := 0

	router := gin.New()
	router.POST("/protected", NewAuthHandler(apiToken).AuthMiddleware(), func(c *gin.Context) {
		hits++
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return router, &hits
}

func TestAuthMiddlewareRejections(t *testing.T) {
	cases := []struct {
		name   string
		header string
		want   string
	}{
		{"missing header", "", "No token provided"},
		{"not bearer", "Basic abc123", "Invalid token format"},
		{"wrong token", "Bearer wrong", "Invalid token"},
		{"empty bearer token", "Bearer ", "Invalid token"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			router, hits := newAuthRouter("secret-token")

			req := httptest.NewRequest(http.MethodPost, "/protected", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			require.Equal(t, http.StatusUnauthorized, rec.Code)
			require.JSONEq(t, `{"error":"`+tc.want+`"}`, rec.Body.String())
			require.Zero(t, *hits)
		})
	}
}

func TestAuthMiddlewarePassesValidToken(t *testing.T) {
	router, hits := newAuthRouter("secret-token")

	req := httptest.NewRequest(http.MethodPost, "/protected", nil)
	req.Header.Set("Authorization", "Bearer secret-token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, 1, *hits)
}
