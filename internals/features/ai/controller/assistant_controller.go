package controller

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"ponselku_backend/internals/features/ai"
	helper "ponselku_backend/internals/helpers"
)

// Generator adalah operasi AI yang diekspos langsung sebagai endpoint,
// tanpa lapisan cache di antaranya.
type Generator interface {
	GenerateComparison(ctx context.Context, names []string) (*ai.ComparisonPayload, error)
	GenerateMatch(ctx context.Context, prefs ai.MatchPreferences) (*ai.MatchPayload, error)
	Chat(ctx context.Context, history []ai.ChatMessage, message string) (string, error)
}

type CompareRequest struct {
	PhoneNames []string `json:"phone_names" validate:"required,min=2,max=3,dive,min=2,max=120"`
}

type MatchRequest struct {
	Activities     []string `json:"activities" validate:"max=10,dive,max=60"`
	CameraPriority string   `json:"camera_priority" validate:"max=60"`
	Budget         string   `json:"budget" validate:"max=60"`
	Notes          string   `json:"notes" validate:"max=500"`
}

type ChatRequest struct {
	Message string           `json:"message" validate:"required,min=1,max=1000"`
	History []ai.ChatMessage `json:"history" validate:"max=20,dive"`
}

type AssistantController struct {
	Gen      Generator
	Validate *validator.Validate
}

func NewAssistantController(gen Generator) *AssistantController {
	return &AssistantController{Gen: gen, Validate: validator.New()}
}

// 🟢 POST /api/public/compare
func (ctrl *AssistantController) Compare(c *fiber.Ctx) error {
	var req CompareRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Masukkan 2 sampai 3 nama HP untuk dibandingkan")
	}
	for i := range req.PhoneNames {
		req.PhoneNames[i] = strings.TrimSpace(req.PhoneNames[i])
	}

	payload, err := ctrl.Gen.GenerateComparison(c.UserContext(), req.PhoneNames)
	if err != nil {
		return ctrl.aiError(c, "COMPARE", err)
	}
	return helper.JsonOK(c, "Perbandingan berhasil dibuat", payload)
}

// 🟢 POST /api/public/match — rekomendasi HP sesuai preferensi user
func (ctrl *AssistantController) Match(c *fiber.Ctx) error {
	var req MatchRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Preferensi tidak valid")
	}

	payload, err := ctrl.Gen.GenerateMatch(c.UserContext(), ai.MatchPreferences{
		Activities:     req.Activities,
		CameraPriority: req.CameraPriority,
		Budget:         req.Budget,
		Notes:          req.Notes,
	})
	if err != nil {
		return ctrl.aiError(c, "MATCH", err)
	}
	return helper.JsonOK(c, "Rekomendasi berhasil dibuat", payload)
}

// 🟢 POST /api/public/chat
func (ctrl *AssistantController) Chat(c *fiber.Ctx) error {
	var req ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Pesan wajib diisi")
	}

	reply, err := ctrl.Gen.Chat(c.UserContext(), req.History, req.Message)
	if err != nil {
		return ctrl.aiError(c, "CHAT", err)
	}
	return helper.JsonOK(c, "Balasan berhasil dibuat", fiber.Map{
		"reply": reply,
	})
}

func (ctrl *AssistantController) aiError(c *fiber.Ctx, tag string, err error) error {
	if errors.Is(err, ai.ErrGenerate) {
		return helper.JsonError(c, fiber.StatusBadGateway, "AI sedang sibuk. Silakan coba lagi.")
	}
	log.Printf("❌ [%s] %v", tag, err)
	return helper.JsonError(c, fiber.StatusInternalServerError, "Terjadi kesalahan pada server")
}
