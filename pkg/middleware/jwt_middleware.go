package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"polisure/internal/models/db_models"
	"polisure/pkg/authz"
	"polisure/pkg/utils"
)

const (
	ctxUserID = "user_id"
	ctxRole   = "role"
)

func JWTAuthMiddleware(tm *utils.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(c, http.StatusUnauthorized, "Authorization header missing or invalid")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := tm.ValidateToken(tokenString)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		userID, err := uuid.Parse(claims.UserID)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set(ctxUserID, userID)
		c.Set(ctxRole, db_models.Role(claims.Role))
		c.Next()
	}
}

// RequireRole gates a route group to one role. Runs after JWTAuthMiddleware.
func RequireRole(required db_models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := c.Get(ctxRole)
		if !ok || role.(db_models.Role) != required {
			utils.RespondError(c, http.StatusForbidden, "Forbidden: insufficient permissions")
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentActor returns the authenticated principal for the request.
func CurrentActor(c *gin.Context) (authz.Actor, bool) {
	id, okID := c.Get(ctxUserID)
	role, okRole := c.Get(ctxRole)
	if !okID || !okRole {
		return authz.Actor{}, false
	}
	return authz.Actor{ID: id.(uuid.UUID), Role: role.(db_models.Role)}, true
}
