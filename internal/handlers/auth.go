package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/pawrest/pawrest-server/internal/auth"
	"github.com/pawrest/pawrest-server/internal/middleware"
	"github.com/pawrest/pawrest-server/internal/models"
	"github.com/pawrest/pawrest-server/internal/store"
)

// invalidCredentials is the single message for every login failure so the
// response never reveals whether the username exists.
const invalidCredentials = "Invalid username or password"

type AuthHandler struct {
	Store    store.Store
	Sessions *auth.SessionManager
	Secure   bool
}

func NewAuthHandler(st store.Store, sessions *auth.SessionManager, secure bool) *AuthHandler {
	return &AuthHandler{Store: st, Sessions: sessions, Secure: secure}
}

type FieldErrors map[string][]string

func (e FieldErrors) Add(field, msg string) {
	e[field] = append(e[field], msg)
}

func validationFail(c *fiber.Ctx, errs FieldErrors) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"success": false,
		"message": "Validation error",
		"errors":  errs,
	})
}

type RegisterReq struct {
	Username      string               `json:"username"`
	Email         string               `json:"email"`
	Password      string               `json:"password"`
	FirstName     string               `json:"firstName"`
	LastName      string               `json:"lastName"`
	Role          string               `json:"role"` // client / provider (admin is seeded, never registered)
	PhoneNumber   string               `json:"phoneNumber"`
	Address       string               `json:"address"`
	ProfileImage  string               `json:"profileImage"`
	BusinessInfo  *models.BusinessInfo `json:"businessInfo"`
	TermsAccepted bool                 `json:"termsAccepted"`
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req RegisterReq
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}

	username := strings.TrimSpace(req.Username)
	email := strings.ToLower(strings.TrimSpace(req.Email))
	password := req.Password

	errs := FieldErrors{}
	if username == "" {
		errs.Add("username", "Username is required")
	}
	if email == "" {
		errs.Add("email", "Email is required")
	} else if !strings.Contains(email, "@") {
		errs.Add("email", "Invalid email format")
	}
	if password == "" {
		errs.Add("password", "Password is required")
	} else if len(password) < 8 {
		errs.Add("password", "Password must be at least 8 characters long")
	}
	if strings.TrimSpace(req.FirstName) == "" {
		errs.Add("firstName", "First name is required")
	}
	if strings.TrimSpace(req.LastName) == "" {
		errs.Add("lastName", "Last name is required")
	}
	if len(errs) > 0 {
		return validationFail(c, errs)
	}

	// Public registration creates clients and providers only; anything else,
	// including "admin", lands on the default role.
	role := models.NormalizeRole(req.Role)
	if role == models.RoleAdmin {
		role = models.RoleClient
	}

	if _, err := h.Store.GetUserByUsername(c.Context(), username); err == nil {
		return fiber.NewError(fiber.StatusConflict, "Username already exists")
	} else if !errors.Is(err, store.ErrNotFound) {
		logrus.WithError(err).Error("username lookup failed")
		return fiber.ErrInternalServerError
	}

	if _, err := h.Store.GetUserByEmail(c.Context(), email); err == nil {
		return fiber.NewError(fiber.StatusConflict, "Email already exists")
	} else if !errors.Is(err, store.ErrNotFound) {
		logrus.WithError(err).Error("email lookup failed")
		return fiber.ErrInternalServerError
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		logrus.WithError(err).Error("password hashing failed")
		return fiber.ErrInternalServerError
	}

	user, err := h.Store.CreateUser(c.Context(), store.InsertUser{
		Username:      username,
		Password:      hashed,
		Email:         email,
		FirstName:     strings.TrimSpace(req.FirstName),
		LastName:      strings.TrimSpace(req.LastName),
		Role:          role,
		ProfileImage:  req.ProfileImage,
		PhoneNumber:   strings.TrimSpace(req.PhoneNumber),
		Address:       req.Address,
		BusinessInfo:  req.BusinessInfo,
		TermsAccepted: req.TermsAccepted,
	})
	if err != nil {
		// Backstop for registrations racing past the pre-checks.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fiber.NewError(fiber.StatusConflict, "Username or email already exists")
		}
		logrus.WithError(err).Error("user creation failed")
		return fiber.ErrInternalServerError
	}

	sid, err := h.Sessions.Create(c.Context(), user.ID, user.Role)
	if err != nil {
		logrus.WithError(err).Error("session creation failed")
		return fiber.ErrInternalServerError
	}
	h.setSessionCookie(c, sid)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    user,
	})
}

type LoginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginReq
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}

	username := strings.TrimSpace(req.Username)
	if username == "" || req.Password == "" {
		return fiber.NewError(fiber.StatusUnauthorized, invalidCredentials)
	}

	user, err := h.Store.GetUserByUsername(c.Context(), username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fiber.NewError(fiber.StatusUnauthorized, invalidCredentials)
		}
		logrus.WithError(err).Error("user lookup failed")
		return fiber.ErrInternalServerError
	}

	if !auth.CheckPassword(req.Password, user.Password) {
		return fiber.NewError(fiber.StatusUnauthorized, invalidCredentials)
	}

	// Rotate the session id on login.
	if old := c.Cookies(auth.SessionCookie); old != "" {
		_ = h.Sessions.Destroy(c.Context(), old)
	}
	sid, err := h.Sessions.Create(c.Context(), user.ID, user.Role)
	if err != nil {
		logrus.WithError(err).Error("session creation failed")
		return fiber.ErrInternalServerError
	}
	h.setSessionCookie(c, sid)

	return c.JSON(fiber.Map{
		"success": true,
		"data":    user,
	})
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sid := c.Cookies(auth.SessionCookie)
	if sid != "" {
		if err := h.Sessions.Destroy(c.Context(), sid); err != nil {
			logrus.WithError(err).Error("session destroy failed")
			return fiber.ErrInternalServerError
		}
	}
	h.clearSessionCookie(c)

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Logged out successfully",
	})
}

// CurrentUser runs behind RequireAuth.
func (h *AuthHandler) CurrentUser(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success": true,
		"data":    middleware.UserFromCtx(c),
	})
}

func (h *AuthHandler) setSessionCookie(c *fiber.Ctx, sid string) {
	c.Cookie(auth.NewSessionCookie(sid, h.Sessions.TTL(), h.Secure))
}

func (h *AuthHandler) clearSessionCookie(c *fiber.Ctx) {
	c.Cookie(auth.ExpiredSessionCookie(h.Secure))
}
