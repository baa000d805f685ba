package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/pawrest/pawrest-server/internal/middleware"
	"github.com/pawrest/pawrest-server/internal/models"
	"github.com/pawrest/pawrest-server/internal/store"
)

// ProviderHandler serves the service-management and booking operations of the
// provider role.
type ProviderHandler struct {
	Store store.Store
}

func NewProviderHandler(st store.Store) *ProviderHandler {
	return &ProviderHandler{Store: st}
}

func (h *ProviderHandler) ListServices(c *fiber.Ctx) error {
	user := middleware.UserFromCtx(c)

	services, err := h.Store.GetServicesByProviderID(c.Context(), user.ID)
	if err != nil {
		logrus.WithError(err).Error("service listing failed")
		return fiber.ErrInternalServerError
	}
	return c.JSON(fiber.Map{"success": true, "data": services})
}

type CreateServiceReq struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int    `json:"price"`
	Duration    int    `json:"duration"`
	ImageURL    string `json:"imageUrl"`
	IsActive    *bool  `json:"isActive"`
}

func (h *ProviderHandler) CreateService(c *fiber.Ctx) error {
	user := middleware.UserFromCtx(c)

	var req CreateServiceReq
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}

	errs := FieldErrors{}
	if req.Name == "" {
		errs.Add("name", "Name is required")
	}
	if req.Description == "" {
		errs.Add("description", "Description is required")
	}
	if req.Price <= 0 {
		errs.Add("price", "Price must be positive")
	}
	if req.Duration <= 0 {
		errs.Add("duration", "Duration must be positive")
	}
	if len(errs) > 0 {
		return validationFail(c, errs)
	}

	svc, err := h.Store.CreateService(c.Context(), store.InsertService{
		ProviderID:  user.ID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Duration:    req.Duration,
		ImageURL:    req.ImageURL,
		IsActive:    req.IsActive,
	})
	if err != nil {
		logrus.WithError(err).Error("service creation failed")
		return fiber.ErrInternalServerError
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": svc})
}

type UpdateServiceReq struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Price       *int    `json:"price"`
	Duration    *int    `json:"duration"`
	ImageURL    *string `json:"imageUrl"`
	IsActive    *bool   `json:"isActive"`
}

// UpdateService applies a partial update; absent fields keep their prior
// values.
func (h *ProviderHandler) UpdateService(c *fiber.Ctx) error {
	user := middleware.UserFromCtx(c)

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid service id")
	}

	var req UpdateServiceReq
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	if req.Price != nil && *req.Price <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "price must be positive")
	}
	if req.Duration != nil && *req.Duration <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "duration must be positive")
	}

	svc, err := h.Store.GetService(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Service not found")
		}
		logrus.WithError(err).Error("service lookup failed")
		return fiber.ErrInternalServerError
	}
	if svc.ProviderID != user.ID && user.Role != models.RoleAdmin {
		return fiber.NewError(fiber.StatusForbidden, "Access denied")
	}

	updated, err := h.Store.UpdateService(c.Context(), svc.ID, store.ServiceUpdate{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Duration:    req.Duration,
		ImageURL:    req.ImageURL,
		IsActive:    req.IsActive,
	})
	if err != nil {
		logrus.WithError(err).Error("service update failed")
		return fiber.ErrInternalServerError
	}

	return c.JSON(fiber.Map{"success": true, "data": updated})
}

func (h *ProviderHandler) ListBookings(c *fiber.Ctx) error {
	user := middleware.UserFromCtx(c)

	bookings, err := h.Store.GetBookingsByProviderID(c.Context(), user.ID)
	if err != nil {
		logrus.WithError(err).Error("booking listing failed")
		return fiber.ErrInternalServerError
	}
	return c.JSON(fiber.Map{"success": true, "data": bookings})
}

type UpdateBookingStatusReq struct {
	Status string `json:"status"`
}

func (h *ProviderHandler) UpdateBookingStatus(c *fiber.Ctx) error {
	user := middleware.UserFromCtx(c)

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid booking id")
	}

	var req UpdateBookingStatusReq
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	if !models.ValidBookingStatus(req.Status) {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid booking status")
	}

	booking, err := h.Store.GetBooking(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Booking not found")
		}
		logrus.WithError(err).Error("booking lookup failed")
		return fiber.ErrInternalServerError
	}
	if booking.ProviderID != user.ID && user.Role != models.RoleAdmin {
		return fiber.NewError(fiber.StatusForbidden, "Access denied")
	}

	updated, err := h.Store.UpdateBookingStatus(c.Context(), booking.ID, models.BookingStatus(req.Status))
	if err != nil {
		logrus.WithError(err).Error("booking status update failed")
		return fiber.ErrInternalServerError
	}

	return c.JSON(fiber.Map{"success": true, "data": updated})
}
