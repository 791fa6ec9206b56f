package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"ponselku_backend/internals/features/admins/dto"
	"ponselku_backend/internals/features/admins/model"
	helper "ponselku_backend/internals/helpers"
	"ponselku_backend/internals/middlewares/auth"
)

const tokenTTL = 12 * time.Hour

type AdminController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAdminController(db *gorm.DB) *AdminController {
	return &AdminController{DB: db, Validate: validator.New()}
}

// 🟢 POST /api/auth/login
func (ctrl *AdminController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Email dan password wajib diisi")
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var admin model.AdminModel
	err := ctrl.DB.WithContext(c.UserContext()).
		First(&admin, "lower(admin_email) = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
	}
	if err != nil {
		log.Printf("❌ [AUTH] lookup admin gagal: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Terjadi kesalahan pada server")
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.AdminPassword), []byte(req.Password)) != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
	}

	token, err := auth.IssueAdminToken(admin.AdminID, admin.AdminEmail, tokenTTL)
	if err != nil {
		log.Printf("❌ [AUTH] terbit token gagal: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Terjadi kesalahan pada server")
	}

	return helper.JsonOK(c, "Login berhasil", dto.LoginResponse{
		Token: token,
		Admin: dto.AdminSummary{
			AdminID:   admin.AdminID.String(),
			AdminName: admin.AdminName,
			Email:     admin.AdminEmail,
		},
	})
}

// 🟢 GET /api/a/me — identitas admin dari token yang sedang dipakai
func (ctrl *AdminController) Me(c *fiber.Ctx) error {
	session, ok := auth.SessionFromCtx(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Sesi tidak ditemukan")
	}

	var admin model.AdminModel
	err := ctrl.DB.WithContext(c.UserContext()).
		First(&admin, "admin_id = ?", session.AdminID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Akun admin tidak ditemukan")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Terjadi kesalahan pada server")
	}

	return helper.JsonOK(c, "Data admin berhasil diambil", dto.AdminSummary{
		AdminID:   admin.AdminID.String(),
		AdminName: admin.AdminName,
		Email:     admin.AdminEmail,
	})
}
