package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"travelworld-backend/config"
)

func MiddlewareContentTypeSet(c *gin.Context) {
	c.Header("Content-Type", "application/json")
	c.Next()
}

// AdminAuth gates admin routes on the X-Admin-Key header, compared with
// bcrypt against ADMIN_KEY_HASH. With no hash configured the routes are
// closed, not open.
func AdminAuth(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cfg.AdminKeyHash == "" {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Admin access not configured"})
			c.Abort()
			return
		}

		key := c.GetHeader("X-Admin-Key")
		if key == "" || bcrypt.CompareHashAndPassword([]byte(cfg.AdminKeyHash), []byte(key)) != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized."})
			c.Abort()
			return
		}
		c.Next()
	}
}
