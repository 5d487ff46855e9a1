package helper

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

const LocRawToken = "raw_token"

// GetRawAccessToken mengembalikan access token dari:
// 1) cookie "access_token"
// 2) Locals("raw_token") yang diset middleware
// 3) Authorization header "Bearer <token>"
func GetRawAccessToken(c *fiber.Ctx) string {
	if v := strings.TrimSpace(c.Cookies("access_token")); v != "" {
		return v
	}
	if v, ok := c.Locals(LocRawToken).(string); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	const p = "Bearer "
	auth := c.Get("Authorization")
	if len(auth) > len(p) && strings.HasPrefix(auth, p) {
		return strings.TrimSpace(auth[len(p):])
	}
	return ""
}

// SetRawAccessToken menyimpan raw token ke Locals dari middleware auth.
func SetRawAccessToken(c *fiber.Ctx, raw string) {
	if strings.TrimSpace(raw) != "" {
		c.Locals(LocRawToken, strings.TrimSpace(raw))
	}
}

// CreateAccessToken membuat JWT dengan klaim role (+ mosque_id untuk supervisor).
// mosqueID boleh kosong untuk token admin.
func CreateAccessToken(secret, role, mosqueID, displayName string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"role": role,
		"name": displayName,
		"iat":  now.Unix(),
		"exp":  now.Add(ttl).Unix(),
	}
	if mosqueID != "" {
		claims["mosque_id"] = mosqueID
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// GetUserRole mengambil role yang diset auth middleware. Default supervisor
// kalau tidak ada (route publik yang opsional auth).
func GetUserRole(c *fiber.Ctx) string {
	if v, ok := c.Locals("userRole").(string); ok && v != "" {
		return v
	}
	return ""
}

// GetUserMosqueID mengambil scope masjid dari token supervisor.
func GetUserMosqueID(c *fiber.Ctx) string {
	if v, ok := c.Locals("mosqueId").(string); ok {
		return v
	}
	return ""
}

// GetUserName mengambil display name dari klaim token.
func GetUserName(c *fiber.Ctx) string {
	if v, ok := c.Locals("userName").(string); ok {
		return v
	}
	return ""
}
