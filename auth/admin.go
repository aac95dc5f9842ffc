package auth

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"doctors_portal_go/models"
)

// RoleLookup fetches the stored user record for an email. A missing record is
// reported as (nil, nil), not an error.
type RoleLookup func(ctx context.Context, email string) (*models.User, error)

// VerifyAdmin gates a route on the requester's stored role being admin. It
// must run after VerifyJWT. The role is looked up freshly on every request,
// since it can change between requests.
func VerifyAdmin(lookup RoleLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		email, ok := EmailFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Access Forbidden"})
			return
		}

		user, err := lookup(c.Request.Context(), email)
		if err != nil {
			zap.L().Error("role lookup failed", zap.String("email", email), zap.Error(err))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		if !user.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Access Forbidden"})
			return
		}

		c.Next()
	}
}
