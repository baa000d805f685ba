package store

import (
	"context"
	"errors"
	"time"

	"github.com/pawrest/pawrest-server/internal/models"
)

// ErrNotFound is returned by every lookup and mutation that targets an id
// with no backing row.
var ErrNotFound = errors.New("record not found")

// InsertUser is the registration draft accepted by CreateUser. Password must
// already be hashed.
type InsertUser struct {
	Username      string
	Password      string
	Email         string
	FirstName     string
	LastName      string
	Role          models.Role
	ProfileImage  string
	PhoneNumber   string
	Address       string
	BusinessInfo  *models.BusinessInfo
	TermsAccepted bool
}

type InsertService struct {
	ProviderID  uint
	Name        string
	Description string
	Price       int
	Duration    int
	ImageURL    string
	IsActive    *bool // nil means active
}

// ServiceUpdate is a partial update; nil fields keep their prior values.
type ServiceUpdate struct {
	Name        *string
	Description *string
	Price       *int
	Duration    *int
	ImageURL    *string
	IsActive    *bool
}

type InsertBooking struct {
	ClientID      uint
	ProviderID    uint
	ServiceID     uint
	ScheduledDate time.Time
	Notes         string
	TotalPrice    int
}

type InsertReview struct {
	BookingID  uint
	ClientID   uint
	ProviderID uint
	Rating     int
	Comment    string
}

// Store is the narrow persistence interface the route layer depends on.
type Store interface {
	GetUser(ctx context.Context, id uint) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	CreateUser(ctx context.Context, draft InsertUser) (*models.User, error)
	GetAllUsers(ctx context.Context) ([]models.User, error)
	VerifyProvider(ctx context.Context, id uint) (*models.User, error)
	UpdateUserPassword(ctx context.Context, id uint, hashed string) error

	GetService(ctx context.Context, id uint) (*models.Service, error)
	GetServicesByProviderID(ctx context.Context, providerID uint) ([]models.Service, error)
	CreateService(ctx context.Context, draft InsertService) (*models.Service, error)
	UpdateService(ctx context.Context, id uint, upd ServiceUpdate) (*models.Service, error)

	GetBooking(ctx context.Context, id uint) (*models.Booking, error)
	GetBookingsByClientID(ctx context.Context, clientID uint) ([]models.Booking, error)
	GetBookingsByProviderID(ctx context.Context, providerID uint) ([]models.Booking, error)
	CreateBooking(ctx context.Context, draft InsertBooking) (*models.Booking, error)
	UpdateBookingStatus(ctx context.Context, id uint, status models.BookingStatus) (*models.Booking, error)
	GetAllBookings(ctx context.Context) ([]models.Booking, error)

	GetReview(ctx context.Context, id uint) (*models.Review, error)
	GetReviewByBookingID(ctx context.Context, bookingID uint) (*models.Review, error)
	GetReviewsByProviderID(ctx context.Context, providerID uint) ([]models.Review, error)
	CreateReview(ctx context.Context, draft InsertReview) (*models.Review, error)
}
