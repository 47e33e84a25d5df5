package auth

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rodrigospisila/parish-backend/internals/configs"
	helper "github.com/rodrigospisila/parish-backend/internals/helpers"
)

// AuthMiddleware verifies the access token and stores its claims in Locals
// for the controllers and the hierarchy resolver.
func AuthMiddleware(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
		}

		if configs.JWTSecret == "" {
			configs.Log.Error("JWT_SECRET is empty")
			return helper.JsonError(c, fiber.StatusInternalServerError, "Missing JWT secret")
		}

		claims := jwt.MapClaims{}
		if _, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(configs.JWTSecret), nil
		}); err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid or expired token")
		}

		userID, err := extractUserID(claims)
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid or missing user id")
		}

		if err := ensureUserActive(db, userID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.JsonError(c, fiber.StatusUnauthorized, "User not found")
			}
			if errors.Is(err, errUserInactive) {
				return helper.JsonError(c, fiber.StatusForbidden, "Account is deactivated")
			}
			configs.Log.WithError(err).Error("active-user check failed")
			return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
		}

		c.Locals(helper.LocUserID, userID.String())
		storeClaimString(c, claims, "email", helper.LocUserEmail)
		storeClaimString(c, claims, "role", helper.LocUserRole)
		storeClaimString(c, claims, "diocese_id", helper.LocDioceseID)
		storeClaimString(c, claims, "parish_id", helper.LocParishID)
		storeClaimString(c, claims, "community_id", helper.LocCommunityID)

		return c.Next()
	}
}

var errUserInactive = errors.New("user inactive")

func extractBearerToken(c *fiber.Ctx) (string, error) {
	auth := strings.TrimSpace(c.Get("Authorization"))
	if auth == "" {
		if cookieTok := c.Cookies("access_token"); cookieTok != "" {
			auth = "Bearer " + cookieTok
		}
	}
	if auth == "" {
		return "", fmt.Errorf("no token provided")
	}

	fields := strings.Fields(auth)
	if len(fields) < 2 || !strings.EqualFold(fields[0], "Bearer") {
		return "", fmt.Errorf("invalid token format")
	}
	tok := strings.Trim(strings.TrimSpace(fields[1]), "\"'")
	if tok == "" {
		return "", fmt.Errorf("empty token")
	}
	return tok, nil
}

func extractUserID(claims jwt.MapClaims) (uuid.UUID, error) {
	raw, ok := claims["sub"].(string)
	if !ok || raw == "" {
		return uuid.Nil, fmt.Errorf("no user id in token")
	}
	return uuid.Parse(strings.TrimSpace(raw))
}

func ensureUserActive(db *gorm.DB, userID uuid.UUID) error {
	var row struct {
		IsActive bool
	}
	if err := db.Table("users").Select("is_active").Where("id = ?", userID).First(&row).Error; err != nil {
		return err
	}
	if !row.IsActive {
		return errUserInactive
	}
	return nil
}

func storeClaimString(c *fiber.Ctx, claims jwt.MapClaims, claim, key string) {
	if v, ok := claims[claim].(string); ok && v != "" {
		c.Locals(key, v)
	}
}
