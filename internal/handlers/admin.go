package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/pawrest/pawrest-server/internal/store"
)

// AdminHandler serves the back-office operations.
type AdminHandler struct {
	Store store.Store
}

func NewAdminHandler(st store.Store) *AdminHandler {
	return &AdminHandler{Store: st}
}

func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.Store.GetAllUsers(c.Context())
	if err != nil {
		logrus.WithError(err).Error("user listing failed")
		return fiber.ErrInternalServerError
	}
	return c.JSON(fiber.Map{"success": true, "data": users})
}

// VerifyProvider marks a provider as verified. Verifying an already verified
// user is a no-op, not an error.
func (h *AdminHandler) VerifyProvider(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid user id")
	}

	user, err := h.Store.VerifyProvider(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "User not found")
		}
		logrus.WithError(err).Error("provider verification failed")
		return fiber.ErrInternalServerError
	}

	return c.JSON(fiber.Map{"success": true, "data": user})
}

func (h *AdminHandler) ListBookings(c *fiber.Ctx) error {
	bookings, err := h.Store.GetAllBookings(c.Context())
	if err != nil {
		logrus.WithError(err).Error("booking listing failed")
		return fiber.ErrInternalServerError
	}
	return c.JSON(fiber.Map{"success": true, "data": bookings})
}
