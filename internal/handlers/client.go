package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/pawrest/pawrest-server/internal/middleware"
	"github.com/pawrest/pawrest-server/internal/models"
	"github.com/pawrest/pawrest-server/internal/store"
)

// ClientHandler serves the booking and review operations of the client role.
type ClientHandler struct {
	Store store.Store
}

func NewClientHandler(st store.Store) *ClientHandler {
	return &ClientHandler{Store: st}
}

func (h *ClientHandler) ListBookings(c *fiber.Ctx) error {
	user := middleware.UserFromCtx(c)

	bookings, err := h.Store.GetBookingsByClientID(c.Context(), user.ID)
	if err != nil {
		logrus.WithError(err).Error("booking listing failed")
		return fiber.ErrInternalServerError
	}
	return c.JSON(fiber.Map{"success": true, "data": bookings})
}

type CreateBookingReq struct {
	ServiceID     uint      `json:"serviceId"`
	ScheduledDate time.Time `json:"scheduledDate"`
	Notes         string    `json:"notes"`
}

func (h *ClientHandler) CreateBooking(c *fiber.Ctx) error {
	user := middleware.UserFromCtx(c)

	var req CreateBookingReq
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	if req.ServiceID == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "serviceId is required")
	}
	if req.ScheduledDate.IsZero() {
		return fiber.NewError(fiber.StatusBadRequest, "scheduledDate is required")
	}

	svc, err := h.Store.GetService(c.Context(), req.ServiceID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Service not found")
		}
		logrus.WithError(err).Error("service lookup failed")
		return fiber.ErrInternalServerError
	}
	if !svc.IsActive {
		return fiber.NewError(fiber.StatusBadRequest, "Service is not available")
	}

	// Provider and price come from the referenced service, not the request;
	// the stored price is a snapshot that does not follow later edits.
	booking, err := h.Store.CreateBooking(c.Context(), store.InsertBooking{
		ClientID:      user.ID,
		ProviderID:    svc.ProviderID,
		ServiceID:     svc.ID,
		ScheduledDate: req.ScheduledDate,
		Notes:         req.Notes,
		TotalPrice:    svc.Price,
	})
	if err != nil {
		logrus.WithError(err).Error("booking creation failed")
		return fiber.ErrInternalServerError
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": booking})
}

type CreateReviewReq struct {
	BookingID uint   `json:"bookingId"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
}

func (h *ClientHandler) CreateReview(c *fiber.Ctx) error {
	user := middleware.UserFromCtx(c)

	var req CreateReviewReq
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	if req.BookingID == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "bookingId is required")
	}
	if req.Rating < 1 || req.Rating > 5 {
		return fiber.NewError(fiber.StatusBadRequest, "rating must be between 1 and 5")
	}

	booking, err := h.Store.GetBooking(c.Context(), req.BookingID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Booking not found")
		}
		logrus.WithError(err).Error("booking lookup failed")
		return fiber.ErrInternalServerError
	}
	if booking.ClientID != user.ID && user.Role != models.RoleAdmin {
		return fiber.NewError(fiber.StatusForbidden, "Access denied")
	}
	if booking.Status != models.BookingCompleted {
		return fiber.NewError(fiber.StatusBadRequest, "Only completed bookings can be reviewed")
	}

	if _, err := h.Store.GetReviewByBookingID(c.Context(), booking.ID); err == nil {
		return fiber.NewError(fiber.StatusConflict, "Booking has already been reviewed")
	} else if !errors.Is(err, store.ErrNotFound) {
		logrus.WithError(err).Error("review lookup failed")
		return fiber.ErrInternalServerError
	}

	review, err := h.Store.CreateReview(c.Context(), store.InsertReview{
		BookingID:  booking.ID,
		ClientID:   booking.ClientID,
		ProviderID: booking.ProviderID,
		Rating:     req.Rating,
		Comment:    req.Comment,
	})
	if err != nil {
		logrus.WithError(err).Error("review creation failed")
		return fiber.ErrInternalServerError
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": review})
}
