// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"ponselku_backend/internals/configs"
)

// AdminSession adalah hasil autentikasi yang sudah divalidasi.
// Handler admin membaca struct ini, bukan flag lepas di Locals.
type AdminSession struct {
	AdminID uuid.UUID
	Email   string
}

const sessionKey = "admin_session"

// SessionFromCtx mengambil AdminSession yang dipasang AdminOnly.
func SessionFromCtx(c *fiber.Ctx) (*AdminSession, bool) {
	sess, ok := c.Locals(sessionKey).(*AdminSession)
	return sess, ok
}

// AdminOnly memverifikasi Bearer JWT dan menaruh AdminSession yang typed di Locals.
// Semua route /api/a digerbang di layer routing lewat middleware ini.
func AdminOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}

		secretKey := configs.JWTSecret
		if secretKey == "" {
			log.Println("[ERROR] JWT_SECRET kosong")
			return fiber.NewError(fiber.StatusInternalServerError, "Missing JWT Secret")
		}

		claims := jwt.MapClaims{}
		if _, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("metode signing tidak didukung")
			}
			return []byte(secretKey), nil
		}); err != nil {
			log.Println("[ERROR] Gagal parse token:", err)
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token tidak valid")
		}

		sess, err := sessionFromClaims(claims)
		if err != nil {
			log.Println("[ERROR] Klaim token:", err)
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Klaim token tidak valid")
		}

		c.Locals(sessionKey, sess)
		return c.Next()
	}
}

// IssueAdminToken membuat JWT untuk admin yang berhasil login.
func IssueAdminToken(adminID uuid.UUID, email string, ttl time.Duration) (string, error) {
	if configs.JWTSecret == "" {
		return "", errors.New("JWT_SECRET kosong")
	}
	claims := jwt.MapClaims{
		"sub":   adminID.String(),
		"email": email,
		"role":  "admin",
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.JWTSecret))
}

func extractBearerToken(c *fiber.Ctx) (string, error) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return "", errors.New("Authorization header kosong")
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", errors.New("format Authorization harus 'Bearer <token>'")
	}
	return parts[1], nil
}

func sessionFromClaims(claims jwt.MapClaims) (*AdminSession, error) {
	if role, _ := claims["role"].(string); role != "admin" {
		return nil, errors.New("bukan token admin")
	}

	sub, _ := claims["sub"].(string)
	adminID, err := uuid.Parse(sub)
	if err != nil {
		return nil, errors.New("sub bukan UUID")
	}

	// exp divalidasi ulang secara eksplisit (ParseWithClaims sudah cek, ini guard klaim hilang)
	if _, ok := claims["exp"]; !ok {
		return nil, errors.New("exp tidak ada")
	}

	email, _ := claims["email"].(string)
	return &AdminSession{AdminID: adminID, Email: email}, nil
}
