package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/raves21/azura-backend/internal/apperrors"
	"github.com/raves21/azura-backend/internal/auth"
	"github.com/raves21/azura-backend/internal/middleware"
	"github.com/raves21/azura-backend/internal/models"
	"github.com/raves21/azura-backend/internal/repositories"
	"github.com/raves21/azura-backend/pkg/config"
)

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	accountRepository repositories.AccountRepository
	sessionManager    *auth.SessionManager
	verifier          auth.CredentialVerifier
	cfg               *config.Config
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(accountRepo repositories.AccountRepository, sessionManager *auth.SessionManager, verifier auth.CredentialVerifier, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		accountRepository: accountRepo,
		sessionManager:    sessionManager,
		verifier:          verifier,
		cfg:               cfg,
	}
}

// RegisterAuthRoutes registers authentication-related routes
func (h *AuthHandler) RegisterAuthRoutes(g *echo.Group) {
	g.POST("/login", h.Login)
	g.POST("/signup", h.Signup)
	g.POST("/logout", h.Logout)
	g.GET("/check-handle", h.CheckHandleAvailability)
	g.GET("/check-email", h.CheckEmailAvailability)
}

// Login verifies credentials and creates a session, or returns the detached
// mode response when the session limit is reached.
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "Login Invalid. Please provide all needed credentials.")
	}

	device := models.DeviceInfo{
		Browser:  c.Request().Header.Get("X-Client-Browser"),
		OS:       c.Request().Header.Get("X-Client-OS"),
		Platform: c.Request().Header.Get("X-Client-Platform"),
	}

	result, err := h.sessionManager.Login(req.Email, req.Password, device)
	if err != nil {
		return httpError(err)
	}

	if result.IsDetachedMode {
		return c.JSON(http.StatusOK, echo.Map{
			"message":        "Maximum session limit reached.",
			"isDetachedMode": true,
			"data": echo.Map{
				"user":     result.Account,
				"sessions": result.Sessions,
			},
		})
	}

	middleware.SetSessionCookie(c, result.Token, h.cfg.SessionTokenDuration, h.cfg.IsProd)

	return c.JSON(http.StatusOK, echo.Map{
		"message": "You are now logged in as " + result.Account.Username,
		"data": echo.Map{
			"user":           result.Account,
			"session":        result.Session,
			"isDetachedMode": false,
		},
	})
}

// Signup registers a new account with a hashed password.
func (h *AuthHandler) Signup(c echo.Context) error {
	var req models.SignupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "Signup invalid. Please provide all the needed credentials.")
	}

	hashed, err := h.verifier.Hash(req.Password)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to hash password")
	}

	account := &models.Account{
		Username: req.Username,
		Email:    req.Email,
		Handle:   req.Handle,
		Password: hashed,
	}
	if err := h.accountRepository.CreateAccount(account); err != nil {
		return httpError(apperrors.Conflict("This email or handle is already associated with another account."))
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message": "success, new user created",
		"data":    account.BasicInfo(),
	})
}

// Logout deletes the session named by the cookie. Logging out an already
// dead session is still success.
func (h *AuthHandler) Logout(c echo.Context) error {
	cookie, err := c.Cookie(middleware.SessionCookieName)
	if err == nil && cookie.Value != "" {
		if err := h.sessionManager.Logout(cookie.Value); err != nil {
			return httpError(err)
		}
	}
	middleware.ClearSessionCookie(c, h.cfg.IsProd)
	return c.JSON(http.StatusOK, echo.Map{"message": "Successfully logged out."})
}

// CheckHandleAvailability reports whether a handle is free to register.
func (h *AuthHandler) CheckHandleAvailability(c echo.Context) error {
	handle := c.QueryParam("handle")
	if handle == "" {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "Handle not provided.")
	}

	_, err := h.accountRepository.GetAccountByHandle(handle)
	if err == nil {
		return httpError(apperrors.Conflict("This handle is already associated with another account."))
	}
	if err != gorm.ErrRecordNotFound {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "handle is available."})
}

// CheckEmailAvailability reports whether an email is free to register.
func (h *AuthHandler) CheckEmailAvailability(c echo.Context) error {
	email := c.QueryParam("email")
	if email == "" {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "No email provided.")
	}

	_, err := h.accountRepository.GetAccountByEmail(email)
	if err == nil {
		return httpError(apperrors.Conflict("This email is already associated with another account."))
	}
	if err != gorm.ErrRecordNotFound {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "email is available."})
}

// UpdatePassword rehashes and stores a new password for the authenticated
// account. Registered under the JWT-protected group.
func (h *AuthHandler) UpdatePassword(c echo.Context) error {
	principal := getPrincipal(c)
	if principal == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Unauthenticated")
	}

	var req models.UpdatePasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	hashed, err := h.verifier.Hash(req.NewPassword)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to hash password")
	}

	if err := h.accountRepository.UpdatePassword(principal.UserID, hashed); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "Password updated successfully."})
}
