package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"podcast-gateway/application/ports/outbound"
)

const (
	SessionCookieName   = "pg_session"
	ContextSessionIDKey = "sessionID"

	sessionTokenTTL = 7 * 24 * time.Hour
)

type SessionHandler interface {
	SessionMiddleware() gin.HandlerFunc
}

type sessionHandler struct {
	logger outbound.LoggerPort
	secret []byte
}

// NewSessionHandler signs session identifiers with the server secret so a
// client keeps the same session across requests. An absent or tampered
// token gets a fresh session rather than an error.
func NewSessionHandler(secret string, logger outbound.LoggerPort) SessionHandler {
	return &sessionHandler{
		logger: logger,
		secret: []byte(secret),
	}
}

func (h *sessionHandler) SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if sessionID, ok := h.sessionFromCookie(c); ok {
			c.Set(ContextSessionIDKey, sessionID)
			c.Next()
			return
		}

		sessionID := uuid.NewString()
		token, err := h.issueToken(sessionID)
		if err != nil {
			h.logger.Error(err, "Failed to sign session token")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "session setup failed"})
			return
		}

		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(SessionCookieName, token, int(sessionTokenTTL.Seconds()), "/", "", false, true)
		c.Set(ContextSessionIDKey, sessionID)
		c.Next()
	}
}

func (h *sessionHandler) sessionFromCookie(c *gin.Context) (string, bool) {
	raw, err := c.Cookie(SessionCookieName)
	if err != nil || raw == "" {
		return "", false
	}

	var claims jwt.RegisteredClaims
	token, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (interface{}, error) {
		return h.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}))
	if err != nil || !token.Valid || claims.Subject == "" {
		return "", false
	}

	return claims.Subject, true
}

func (h *sessionHandler) issueToken(sessionID string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   sessionID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(sessionTokenTTL)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(h.secret)
}

// SessionID returns the session identifier placed by SessionMiddleware.
func SessionID(c *gin.Context) string {
	return c.GetString(ContextSessionIDKey)
}
