// middlewares/auth_middleware.go
package middlewares

import (
	"log"
	"net/http"

	"github.com/hukuhuku/shot-tracker/services"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware gates a route group behind bearer-token verification.
// Every failure — missing header, wrong scheme, rejected token — produces
// the same fixed 401 body; the underlying cause is only logged here. On
// success the verified user ID is stored in the context under "userID".
func AuthMiddleware(verifier services.TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")

		userID, err := verifier.VerifyToken(c.Request.Context(), authHeader)
		if err != nil {
			log.Printf("Authentication failed (%s %s): %v", c.Request.Method, c.Request.URL.Path, err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid Token"})
			return
		}

		c.Set("userID", userID)
		c.Next()
	}
}

// CurrentUserID reads the verified user ID set by AuthMiddleware.
func CurrentUserID(c *gin.Context) string {
	return c.MustGet("userID").(string)
}
