// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"ramadanku_backend/internals/configs"
	helper "ramadanku_backend/internals/helpers"
)

// AuthMiddleware memverifikasi JWT dan menyimpan klaim ke Locals.
// Role (supervisor/admin) dan scope masjid dibawa di klaim token,
// bukan flag sesi di sisi klien.
func AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		// 1) Ambil Authorization (atau cookie)
		tokenString := helper.GetRawAccessToken(c)
		if tokenString == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Missing token")
		}

		// 2) Parse & verifikasi JWT
		secretKey := configs.JWTSecret
		if secretKey == "" {
			log.Println("[ERROR] JWT_SECRET kosong")
			return fiber.NewError(fiber.StatusInternalServerError, "Missing JWT Secret")
		}

		claims := jwt.MapClaims{}
		parser := jwt.Parser{SkipClaimsValidation: true}
		if _, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			return []byte(secretKey), nil
		}); err != nil {
			log.Println("[ERROR] Gagal parse token:", err)
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token parse error")
		}

		// 3) Validasi exp (toleransi skew 30 detik)
		if err := validateTokenExpiry(claims, 30*time.Second); err != nil {
			log.Println("[ERROR] Exp validation:", err)
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token expired")
		}

		// 4) Simpan klaim ke context
		storeClaimsToLocals(c, claims)
		helper.SetRawAccessToken(c, tokenString)

		return c.Next()
	}
}

func validateTokenExpiry(claims jwt.MapClaims, leeway time.Duration) error {
	expRaw, ok := claims["exp"]
	if !ok {
		return errors.New("klaim exp tidak ada")
	}
	expFloat, ok := expRaw.(float64)
	if !ok {
		return errors.New("klaim exp bukan angka")
	}
	expTime := time.Unix(int64(expFloat), 0)
	if time.Now().After(expTime.Add(leeway)) {
		return errors.New("token kedaluwarsa")
	}
	return nil
}

func storeClaimsToLocals(c *fiber.Ctx, claims jwt.MapClaims) {
	if role, ok := claims["role"].(string); ok {
		c.Locals("userRole", role)
	}
	if name, ok := claims["name"].(string); ok {
		c.Locals("userName", name)
	}
	if mosqueID, ok := claims["mosque_id"].(string); ok {
		c.Locals("mosqueId", mosqueID)
	}
}
