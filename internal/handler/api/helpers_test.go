//go:build unit

package api_test

import (
	"hotel-booking/internal/domain/user"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// fakeAuth stands in for the auth middleware: any bearer token authenticates
// the request as userID with role, and no token leaves it anonymous.
func fakeAuth(userID uuid.UUID, role user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") != "" {
			c.Set("user_id", userID)
			c.Set("user_role", role)
		}
		c.Next()
	}
}

func ptr[T any](v T) *T { return &v }
