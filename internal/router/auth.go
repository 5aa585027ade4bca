package router

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/githubocto/good-day-azure/internal/config"
)

// TokenAuth verifies the shared webhook token the recorder bot presents as a
// bearer header. Only the bcrypt hash of the token is configured, never the
// token itself.
func TokenAuth(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		hash := config.Conf.Server.WebhookTokenHash
		if hash == "" {
			log.Error("Webhook token hash not configured, rejecting request")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "server misconfigured"})
			return
		}

		token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		if token == "" || bcrypt.CompareHashAndPassword([]byte(hash), []byte(token)) != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Next()
	}
}
