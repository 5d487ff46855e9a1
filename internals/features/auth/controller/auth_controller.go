package controller

import (
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"ramadanku_backend/internals/configs"
	"ramadanku_backend/internals/constants"
	"ramadanku_backend/internals/features/auth/dto"
	helper "ramadanku_backend/internals/helpers"
	"ramadanku_backend/internals/store"
)

var validate = validator.New()

const accessTokenTTL = 12 * time.Hour

type AuthController struct {
	Store store.Store
}

func NewAuthController(st store.Store) *AuthController {
	return &AuthController{Store: st}
}

// 🟢 POST /api/auth/login-admin
func (ctrl *AuthController) AdminLogin(c *fiber.Ctx) error {
	var req dto.AdminLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	if configs.AdminPasswordHash == "" {
		return helper.Error(c, fiber.StatusServiceUnavailable, "Login admin belum dikonfigurasi")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(configs.AdminPasswordHash), []byte(req.Password)); err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Password salah")
	}

	token, err := helper.CreateAccessToken(configs.JWTSecret, constants.RoleAdmin, "", "admin", accessTokenTTL)
	if err != nil {
		log.Printf("[ERROR] Gagal membuat token admin: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat token")
	}
	setAccessCookie(c, token)

	log.Println("[SUCCESS] Admin login")
	return helper.Success(c, "Login admin berhasil", dto.LoginResponse{
		AccessToken: token,
		Role:        constants.RoleAdmin,
	})
}

// 🟢 POST /api/auth/login-supervisor
func (ctrl *AuthController) SupervisorLogin(c *fiber.Ctx) error {
	var req dto.SupervisorLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	snap, err := ctrl.Store.GetAll(c.Context())
	if err != nil {
		log.Printf("[ERROR] Gagal ambil snapshot saat login: %v", err)
		return helper.Error(c, fiber.StatusBadGateway, "Gagal mengambil data masjid")
	}

	mosque := snap.FindMosque(req.MosqueID)
	// pesan sama untuk masjid tak dikenal & password salah, jangan bocorkan
	// masjid mana yang ada
	if mosque == nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Masjid atau password salah")
	}
	if err := bcrypt.CompareHashAndPassword(
		[]byte(mosque.MosqueSupervisorPasswordHash), []byte(req.Password)); err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Masjid atau password salah")
	}

	token, err := helper.CreateAccessToken(
		configs.JWTSecret, constants.RoleSupervisor, mosque.MosqueID, req.SupervisorName, accessTokenTTL)
	if err != nil {
		log.Printf("[ERROR] Gagal membuat token supervisor: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat token")
	}
	setAccessCookie(c, token)

	log.Printf("[SUCCESS] Supervisor %s login untuk masjid %s", req.SupervisorName, mosque.MosqueID)
	return helper.Success(c, "Login supervisor berhasil", dto.LoginResponse{
		AccessToken:    token,
		Role:           constants.RoleSupervisor,
		MosqueID:       mosque.MosqueID,
		SupervisorName: req.SupervisorName,
	})
}

// 🟢 POST /api/auth/logout
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})
	return helper.Success(c, "Logout berhasil", nil)
}

func setAccessCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    token,
		Expires:  time.Now().Add(accessTokenTTL),
		HTTPOnly: true,
		SameSite: "Lax",
	})
}
