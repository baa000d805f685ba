package store

import (
	"context"
	"errors"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/pawrest/pawrest-server/internal/models"
)

// GormStore implements Store over a GORM connection. Uniqueness of username
// and email is enforced by the unique indexes on the users table; callers
// pre-check to produce friendly conflicts, the index is the backstop under
// concurrent registration.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// --- users ---

func (s *GormStore) GetUser(ctx context.Context, id uint) (*models.User, error) {
	var u models.User
	if err := s.db.WithContext(ctx).First(&u, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

func (s *GormStore) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var u models.User
	if err := s.db.WithContext(ctx).First(&u, "username = ?", username).Error; err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

func (s *GormStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := s.db.WithContext(ctx).First(&u, "email = ?", email).Error; err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

func (s *GormStore) CreateUser(ctx context.Context, draft InsertUser) (*models.User, error) {
	role := models.NormalizeRole(string(draft.Role))

	u := models.User{
		Username:      draft.Username,
		Password:      draft.Password,
		Email:         draft.Email,
		FirstName:     draft.FirstName,
		LastName:      draft.LastName,
		FullName:      draft.FirstName + " " + draft.LastName,
		Role:          role,
		ProfileImage:  draft.ProfileImage,
		PhoneNumber:   draft.PhoneNumber,
		Address:       draft.Address,
		IsVerified:    role == models.RoleAdmin,
		TermsAccepted: draft.TermsAccepted,
	}

	if role == models.RoleProvider {
		info := models.BusinessInfo{}
		if draft.BusinessInfo != nil {
			info = *draft.BusinessInfo
		}
		j := datatypes.NewJSONType(info)
		u.BusinessInfo = &j
	}

	if err := s.db.WithContext(ctx).Create(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *GormStore) GetAllUsers(ctx context.Context) ([]models.User, error) {
	users := []models.User{}
	if err := s.db.WithContext(ctx).Order("id").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (s *GormStore) VerifyProvider(ctx context.Context, id uint) (*models.User, error) {
	u, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}
	if !u.IsVerified {
		if err := s.db.WithContext(ctx).Model(u).Update("is_verified", true).Error; err != nil {
			return nil, err
		}
		u.IsVerified = true
	}
	return u, nil
}

func (s *GormStore) UpdateUserPassword(ctx context.Context, id uint, hashed string) error {
	res := s.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Update("password", hashed)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// --- services ---

func (s *GormStore) GetService(ctx context.Context, id uint) (*models.Service, error) {
	var svc models.Service
	if err := s.db.WithContext(ctx).First(&svc, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return &svc, nil
}

func (s *GormStore) GetServicesByProviderID(ctx context.Context, providerID uint) ([]models.Service, error) {
	services := []models.Service{}
	if err := s.db.WithContext(ctx).Where("provider_id = ?", providerID).Order("id").Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

func (s *GormStore) CreateService(ctx context.Context, draft InsertService) (*models.Service, error) {
	active := true
	if draft.IsActive != nil {
		active = *draft.IsActive
	}
	svc := models.Service{
		ProviderID:  draft.ProviderID,
		Name:        draft.Name,
		Description: draft.Description,
		Price:       draft.Price,
		Duration:    draft.Duration,
		ImageURL:    draft.ImageURL,
		IsActive:    active,
	}
	if err := s.db.WithContext(ctx).Create(&svc).Error; err != nil {
		return nil, err
	}
	return &svc, nil
}

func (s *GormStore) UpdateService(ctx context.Context, id uint, upd ServiceUpdate) (*models.Service, error) {
	svc, err := s.GetService(ctx, id)
	if err != nil {
		return nil, err
	}

	changes := map[string]any{}
	if upd.Name != nil {
		changes["name"] = *upd.Name
	}
	if upd.Description != nil {
		changes["description"] = *upd.Description
	}
	if upd.Price != nil {
		changes["price"] = *upd.Price
	}
	if upd.Duration != nil {
		changes["duration"] = *upd.Duration
	}
	if upd.ImageURL != nil {
		changes["image_url"] = *upd.ImageURL
	}
	if upd.IsActive != nil {
		changes["is_active"] = *upd.IsActive
	}
	if len(changes) == 0 {
		return svc, nil
	}

	if err := s.db.WithContext(ctx).Model(svc).Updates(changes).Error; err != nil {
		return nil, err
	}
	return s.GetService(ctx, id)
}

// --- bookings ---

func (s *GormStore) GetBooking(ctx context.Context, id uint) (*models.Booking, error) {
	var b models.Booking
	if err := s.db.WithContext(ctx).First(&b, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return &b, nil
}

func (s *GormStore) GetBookingsByClientID(ctx context.Context, clientID uint) ([]models.Booking, error) {
	bookings := []models.Booking{}
	if err := s.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Preload("Service").
		Order("created_at DESC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (s *GormStore) GetBookingsByProviderID(ctx context.Context, providerID uint) ([]models.Booking, error) {
	bookings := []models.Booking{}
	if err := s.db.WithContext(ctx).
		Where("provider_id = ?", providerID).
		Preload("Service").
		Order("created_at DESC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (s *GormStore) CreateBooking(ctx context.Context, draft InsertBooking) (*models.Booking, error) {
	b := models.Booking{
		ClientID:      draft.ClientID,
		ProviderID:    draft.ProviderID,
		ServiceID:     draft.ServiceID,
		Status:        models.BookingPending,
		ScheduledDate: draft.ScheduledDate,
		Notes:         draft.Notes,
		TotalPrice:    draft.TotalPrice,
	}
	if err := s.db.WithContext(ctx).Create(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (s *GormStore) UpdateBookingStatus(ctx context.Context, id uint, status models.BookingStatus) (*models.Booking, error) {
	b, err := s.GetBooking(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Model(b).Update("status", status).Error; err != nil {
		return nil, err
	}
	b.Status = status
	return b, nil
}

func (s *GormStore) GetAllBookings(ctx context.Context) ([]models.Booking, error) {
	bookings := []models.Booking{}
	if err := s.db.WithContext(ctx).
		Preload("Service").
		Order("created_at DESC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// --- reviews ---

func (s *GormStore) GetReview(ctx context.Context, id uint) (*models.Review, error) {
	var r models.Review
	if err := s.db.WithContext(ctx).First(&r, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return &r, nil
}

func (s *GormStore) GetReviewByBookingID(ctx context.Context, bookingID uint) (*models.Review, error) {
	var r models.Review
	if err := s.db.WithContext(ctx).First(&r, "booking_id = ?", bookingID).Error; err != nil {
		return nil, notFound(err)
	}
	return &r, nil
}

func (s *GormStore) GetReviewsByProviderID(ctx context.Context, providerID uint) ([]models.Review, error) {
	reviews := []models.Review{}
	if err := s.db.WithContext(ctx).
		Where("provider_id = ?", providerID).
		Preload("Client").
		Order("created_at DESC").
		Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

func (s *GormStore) CreateReview(ctx context.Context, draft InsertReview) (*models.Review, error) {
	r := models.Review{
		BookingID:  draft.BookingID,
		ClientID:   draft.ClientID,
		ProviderID: draft.ProviderID,
		Rating:     draft.Rating,
		Comment:    draft.Comment,
	}
	if err := s.db.WithContext(ctx).Create(&r).Error; err != nil {
		return nil, err
	}
	return &r, nil
}
