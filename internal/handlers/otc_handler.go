package handlers

import (
	"fmt"
	"math/rand"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/raves21/azura-backend/internal/apperrors"
	"github.com/raves21/azura-backend/internal/auth"
	"github.com/raves21/azura-backend/internal/models"
	"github.com/raves21/azura-backend/internal/repositories"
	"github.com/raves21/azura-backend/pkg/mailer"
)

// otcLifetime is how long a one-time code stays valid.
const otcLifetime = time.Hour

// OTCHandler handles one-time verification codes sent by email
type OTCHandler struct {
	otcRepository repositories.OTCRepository
	mailer        mailer.Mailer
	verifier      auth.CredentialVerifier
	log           *logrus.Logger
}

// NewOTCHandler creates a new OTCHandler
func NewOTCHandler(otcRepo repositories.OTCRepository, m mailer.Mailer, verifier auth.CredentialVerifier, log *logrus.Logger) *OTCHandler {
	return &OTCHandler{
		otcRepository: otcRepo,
		mailer:        m,
		verifier:      verifier,
		log:           log,
	}
}

// RegisterOTCRoutes registers one-time-code routes
func (h *OTCHandler) RegisterOTCRoutes(g *echo.Group) {
	g.POST("/otc", h.SendOTC)
	g.GET("/otc/verify", h.VerifyOTC)
}

// SendOTC mails a 6-digit code and stores its hash. Only persists the code
// after the mail went out, and replaces any previous code for the email.
func (h *OTCHandler) SendOTC(c echo.Context) error {
	var req models.SendOTCRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "No email given.")
	}

	code := fmt.Sprintf("%06d", 100000+rand.Intn(900000))

	if err := h.mailer.SendOTC(c.Request().Context(), req.Email, code); err != nil {
		h.log.WithError(err).WithField("email", req.Email).Error("Failed to send verification code")
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to send verification code")
	}

	if err := h.otcRepository.DeleteOTCByEmail(req.Email); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	hashed, err := h.verifier.Hash(code)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if err := h.otcRepository.CreateOTC(&models.OTC{
		Email:     req.Email,
		Code:      hashed,
		ExpiresAt: time.Now().Add(otcLifetime),
	}); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "otc sent."})
}

// VerifyOTC checks a submitted code and consumes it on success.
func (h *OTCHandler) VerifyOTC(c echo.Context) error {
	email := c.QueryParam("email")
	code := c.QueryParam("otc")
	if email == "" || code == "" {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "Please provide all credentials.")
	}

	record, err := h.otcRepository.GetOTCByEmail(email)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return httpError(apperrors.ErrResourceNotFound)
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if record.ExpiresAt.Before(time.Now()) {
		if err := h.otcRepository.DeleteOTCByID(record.ID); err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
		return httpError(apperrors.ErrOTCExpired)
	}

	if !h.verifier.Verify(code, record.Code) {
		return httpError(apperrors.ErrOTCInvalid)
	}

	if err := h.otcRepository.DeleteOTCByID(record.ID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "success. the otc is correct."})
}
