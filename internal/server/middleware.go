package server

import (
	"net/http"
	"strings"
	"time"

	"offer-auction/internal/auctionerrors"
	"offer-auction/internal/auth"
	"offer-auction/services/bidding/helpers"
	"offer-auction/utils"

	"github.com/gin-gonic/gin"
)

// RequestLoggerMiddleware logs incoming requests with timing
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next() // process request

	utils.Info("HTTP Request", map[string]any{
		"method":  c.Request.Method,
		"path":    c.Request.URL.Path,
		"status":  c.Writer.Status(),
		"latency": time.Since(start).String(),
	})
}

// RequireAuth verifies the bearer token and stores the resulting identity
// on the request context. Requests without a valid token are rejected with
// 401 before reaching the handler.
func RequireAuth(verifier auth.TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			utils.JSONError(c, http.StatusUnauthorized, auctionerrors.ErrUnauthenticated, "missing or invalid credentials")
			c.Abort()
			return
		}

		id, err := verifier.Verify(token)
		if err != nil {
			utils.JSONError(c, http.StatusUnauthorized, err, "missing or invalid credentials")
			utils.Warn("RequireAuth: token rejected", map[string]any{"path": c.Request.URL.Path})
			c.Abort()
			return
		}

		helpers.SetIdentity(c, id)
		c.Next()
	}
}
