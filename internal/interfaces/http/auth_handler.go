package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Taller-console/internal/application/auth"
	"github.com/jhoicas/Taller-console/internal/application/dto"
)

// AuthHandler maneja login, logout e identidad de la consola.
type AuthHandler struct {
	uc *auth.UseCase
}

// NewAuthHandler construye el handler.
func NewAuthHandler(uc *auth.UseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login POST /api/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	user, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(fiber.Map{"user": user})
}

// Logout POST /api/auth/logout
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.uc.Logout(c.UserContext())
	return c.JSON(fiber.Map{"redirect": LoginPath})
}

// Me GET /api/auth/me (protegido: el guard ya resolvió al usuario)
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	return c.JSON(GetUser(c))
}
