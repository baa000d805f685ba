package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/pawrest/pawrest-server/internal/models"
	"github.com/pawrest/pawrest-server/internal/store"
)

// CatalogHandler serves the public, unauthenticated reads.
type CatalogHandler struct {
	Store store.Store
}

func NewCatalogHandler(st store.Store) *CatalogHandler {
	return &CatalogHandler{Store: st}
}

func (h *CatalogHandler) ServiceTypes(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"success": true, "data": models.ServiceTypes})
}

func (h *CatalogHandler) Testimonials(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"success": true, "data": models.Testimonials})
}

func (h *CatalogHandler) FAQs(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"success": true, "data": models.FAQs})
}

// ProviderReviews lists the reviews written about a provider.
func (h *CatalogHandler) ProviderReviews(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid provider id")
	}

	reviews, err := h.Store.GetReviewsByProviderID(c.Context(), uint(id))
	if err != nil {
		logrus.WithError(err).Error("review listing failed")
		return fiber.ErrInternalServerError
	}

	out := make([]fiber.Map, 0, len(reviews))
	for _, r := range reviews {
		reviewer := "Anonymous"
		if r.Client != nil {
			reviewer = r.Client.FullName
		}
		out = append(out, fiber.Map{
			"id":        r.ID,
			"rating":    r.Rating,
			"comment":   r.Comment,
			"createdAt": r.CreatedAt,
			"reviewer":  reviewer,
		})
	}

	return c.JSON(fiber.Map{"success": true, "data": out})
}
