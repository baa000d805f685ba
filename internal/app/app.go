package app

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/sirupsen/logrus"

	"github.com/pawrest/pawrest-server/internal/auth"
	"github.com/pawrest/pawrest-server/internal/handlers"
	"github.com/pawrest/pawrest-server/internal/middleware"
	"github.com/pawrest/pawrest-server/internal/models"
	"github.com/pawrest/pawrest-server/internal/store"
)

type Options struct {
	Store       store.Store
	Sessions    *auth.SessionManager
	CORSOrigins string
	IsProd      bool
}

// New builds the Fiber application with all middleware and routes wired.
func New(opts Options) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: errorHandler(opts.IsProd),
	})

	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     opts.CORSOrigins,
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept",
		AllowCredentials: true, // session cookie
	}))

	authH := handlers.NewAuthHandler(opts.Store, opts.Sessions, opts.IsProd)
	catalogH := handlers.NewCatalogHandler(opts.Store)
	clientH := handlers.NewClientHandler(opts.Store)
	providerH := handlers.NewProviderHandler(opts.Store)
	adminH := handlers.NewAdminHandler(opts.Store)

	api := app.Group("/api")

	// public
	api.Post("/register", authH.Register)
	api.Post("/login", authH.Login)
	api.Post("/logout", authH.Logout)
	api.Get("/services", catalogH.ServiceTypes)
	api.Get("/testimonials", catalogH.Testimonials)
	api.Get("/faqs", catalogH.FAQs)
	api.Get("/providers/:id/reviews", catalogH.ProviderReviews)

	// session-gated
	protected := api.Group("/", middleware.RequireAuth(opts.Sessions, opts.Store, opts.IsProd))
	protected.Get("/user", authH.CurrentUser)

	client := protected.Group("/client", middleware.RequireRoles(models.RoleClient))
	client.Get("/bookings", clientH.ListBookings)
	client.Post("/bookings", clientH.CreateBooking)
	client.Post("/reviews", clientH.CreateReview)

	provider := protected.Group("/provider", middleware.RequireRoles(models.RoleProvider))
	provider.Get("/services", providerH.ListServices)
	provider.Post("/services", providerH.CreateService)
	provider.Patch("/services/:id", providerH.UpdateService)
	provider.Get("/bookings", providerH.ListBookings)
	provider.Patch("/bookings/:id", providerH.UpdateBookingStatus)

	admin := protected.Group("/admin", middleware.RequireRoles(models.RoleAdmin))
	admin.Get("/users", adminH.ListUsers)
	admin.Patch("/users/:id/verify", adminH.VerifyProvider)
	admin.Get("/bookings", adminH.ListBookings)

	return app
}

// errorHandler renders every error as the JSON envelope. Unclassified errors
// become a generic 500; details reach the body only outside production.
func errorHandler(isProd bool) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "Internal server error"

		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
			message = fe.Message
		} else if !isProd {
			message = err.Error()
		}

		if code >= 500 {
			logrus.WithError(err).WithField("path", c.Path()).Error("request failed")
		}

		return c.Status(code).JSON(fiber.Map{
			"success": false,
			"message": message,
		})
	}
}
