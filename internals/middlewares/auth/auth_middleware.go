// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"namur_backend/internals/configs"
	"namur_backend/internals/constants"
)

// AuthMiddleware validates the bearer token and stores actor identity
// in locals (actor_id, actor_email, actor_role, actor_name).
func AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}

		secret := configs.JWTSecret
		if secret == "" {
			return fiber.NewError(fiber.StatusInternalServerError, "Missing JWT secret")
		}

		claims := jwt.MapClaims{}
		if _, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
			}
			return []byte(secret), nil
		}); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - invalid token")
		}

		if err := validateExpiry(claims); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - token expired")
		}

		if id, ok := claims["id"].(float64); ok {
			c.Locals("actor_id", uint(id))
		}
		if email, ok := claims["email"].(string); ok {
			c.Locals("actor_email", email)
		}
		if name, ok := claims["name"].(string); ok {
			c.Locals("actor_name", name)
		}
		role, _ := claims["role"].(string)
		if !constants.IsCreatorRole(role) {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - unknown role")
		}
		c.Locals("actor_role", role)

		return c.Next()
	}
}

// RequireRoles gates a route group to the given roles. Must run after
// AuthMiddleware.
func RequireRoles(feature string, roles ...string) fiber.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("actor_role").(string)
		if _, ok := allowed[role]; !ok {
			return fiber.NewError(fiber.StatusForbidden, constants.RoleErrorStaff(feature))
		}
		return c.Next()
	}
}

func extractBearerToken(c *fiber.Ctx) (string, error) {
	auth := strings.TrimSpace(c.Get("Authorization"))
	if auth == "" {
		if cookieTok := c.Cookies("access_token"); cookieTok != "" {
			auth = "Bearer " + cookieTok
		}
	}
	if auth == "" {
		return "", fmt.Errorf("unauthorized - no token provided")
	}
	fields := strings.Fields(auth)
	if len(fields) < 2 || !strings.EqualFold(fields[0], "Bearer") {
		return "", fmt.Errorf("unauthorized - invalid token format")
	}
	return fields[1], nil
}

func validateExpiry(claims jwt.MapClaims) error {
	exp, ok := claims["exp"].(float64)
	if !ok {
		return fmt.Errorf("missing exp claim")
	}
	if time.Now().After(time.Unix(int64(exp), 0).Add(30 * time.Second)) {
		return fmt.Errorf("token expired")
	}
	return nil
}
