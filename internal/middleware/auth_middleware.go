package middleware

import (
	"fmt"
	"strings"

	"github.com/fadilmartias/career-platform/internal/config"
	"github.com/fadilmartias/career-platform/internal/model"
	"github.com/fadilmartias/career-platform/internal/usecase"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

const StaffLocalKey = "staff"

// RequireAuth validates the bearer token against the injected config and
// loads the staff record into c.Locals under StaffLocalKey.
func RequireAuth(authUc *usecase.AuthUsecase, authCfg *config.AuthConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(header, "Bearer ") {
			return fiber.NewError(fiber.StatusUnauthorized, "missing bearer token")
		}
		tokenString := strings.TrimPrefix(header, "Bearer ")

		claims := &jwt.RegisteredClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return []byte(authCfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid token")
		}

		staff, err := authUc.GetStaff(c.Context(), claims.Subject)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "unknown staff")
		}
		c.Locals(StaffLocalKey, staff)
		return c.Next()
	}
}

// RequireAdmin gates admin-only mutations. Must run after RequireAuth. A
// non-admin is rejected before any work happens.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		staff := CurrentStaff(c)
		if staff == nil {
			return fiber.NewError(fiber.StatusUnauthorized, "missing bearer token")
		}
		if !staff.IsAdmin {
			return fiber.NewError(fiber.StatusForbidden, "admins only")
		}
		return c.Next()
	}
}

// CurrentStaff returns the authenticated staff member, or nil.
func CurrentStaff(c *fiber.Ctx) *model.Staff {
	staff, _ := c.Locals(StaffLocalKey).(*model.Staff)
	return staff
}
