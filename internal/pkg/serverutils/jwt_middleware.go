package serverutils

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	LocalUserID  = "user_id"
	LocalRole    = "role"
	LocalIsStaff = "is_staff"
)

var ErrMissingUser = errors.New("no authenticated user in context")

// ParseToken validates an HS256 token and returns its claims.
func ParseToken(secret, tokenStr string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid claims")
	}
	return claims, nil
}

// NewJwtMiddleware requires a valid bearer token and stores its claims in Locals.
func NewJwtMiddleware(secret string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		authHeader := ctx.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(fiber.StatusUnauthorized, "Missing token"))
		}

		claims, err := ParseToken(secret, strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(fiber.StatusUnauthorized, "Invalid or expired token"))
		}

		ctx.Locals(LocalUserID, claims["user_id"])
		ctx.Locals(LocalRole, claims["role"])
		isStaff, _ := claims["is_staff"].(bool)
		ctx.Locals(LocalIsStaff, isStaff)
		return ctx.Next()
	}
}

// StaffMiddleware must run after NewJwtMiddleware.
func StaffMiddleware(ctx *fiber.Ctx) error {
	isStaff, _ := ctx.Locals(LocalIsStaff).(bool)
	if !isStaff {
		return ctx.Status(fiber.StatusForbidden).JSON(ErrorResponse(fiber.StatusForbidden, "Access denied: staff only"))
	}
	return ctx.Next()
}

// UserIDFromCtx reads the authenticated user id set by NewJwtMiddleware.
func UserIDFromCtx(ctx *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := ctx.Locals(LocalUserID).(string)
	if !ok {
		return uuid.Nil, ErrMissingUser
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, ErrMissingUser
	}
	return id, nil
}
