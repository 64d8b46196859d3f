package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"github.com/raves21/azura-backend/internal/apperrors"
	"github.com/raves21/azura-backend/internal/models"
	"github.com/raves21/azura-backend/internal/repositories"
	"github.com/raves21/azura-backend/pkg/metrics"
)

// TokenService mints and parses the short-lived access tokens presented on
// every authenticated API call. Renewal runs on a much hotter path than
// login and never re-verifies the password; a live session is the only
// requirement.
type TokenService struct {
	sessions repositories.SessionRepository
	accounts repositories.AccountRepository
	secret   []byte
	ttl      time.Duration
	metrics  *metrics.Metrics
}

// NewTokenService creates a new TokenService.
func NewTokenService(
	sessions repositories.SessionRepository,
	accounts repositories.AccountRepository,
	secret string,
	ttl time.Duration,
	m *metrics.Metrics,
) *TokenService {
	return &TokenService{
		sessions: sessions,
		accounts: accounts,
		secret:   []byte(secret),
		ttl:      ttl,
		metrics:  m,
	}
}

// RenewResult carries the freshly minted access token and the account it
// identifies.
type RenewResult struct {
	Account     models.AccountBasicInfo `json:"currentUserBasicInfo"`
	AccessToken string                  `json:"accessToken"`
}

// Renew exchanges a valid session secret for a new access token. A secret
// matching no session means the session was logged out elsewhere; an expired
// session is deleted before the failure is surfaced.
func (t *TokenService) Renew(sessionToken string) (*RenewResult, error) {
	session, err := t.sessions.GetSessionByToken(sessionToken)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			t.metrics.TokenRenewals.WithLabelValues("not_found").Inc()
			return nil, apperrors.ErrSessionNotFound
		}
		return nil, err
	}

	if session.IsExpired(time.Now()) {
		if _, err := t.sessions.DeleteSessionByID(session.ID); err != nil {
			return nil, err
		}
		t.metrics.TokenRenewals.WithLabelValues("expired").Inc()
		return nil, apperrors.ErrSessionExpired
	}

	account, err := t.accounts.GetAccountByID(session.AccountID)
	if err != nil {
		return nil, err
	}

	accessToken, err := t.Mint(account, session.ID)
	if err != nil {
		return nil, err
	}

	t.metrics.TokenRenewals.WithLabelValues("success").Inc()
	return &RenewResult{
		Account:     account.BasicInfo(),
		AccessToken: accessToken,
	}, nil
}

// Mint signs an access token embedding the account and session identity.
func (t *TokenService) Mint(account *models.Account, sessionID string) (string, error) {
	claims := &models.AccessTokenClaims{
		UserID:    account.ID,
		SessionID: sessionID,
		Email:     account.Email,
		Handle:    account.Handle,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(t.ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// Parse validates an access token and returns its claims. Expired and
// malformed tokens both come back as ErrUnauthenticated.
func (t *TokenService) Parse(tokenString string) (*models.AccessTokenClaims, error) {
	claims := &models.AccessTokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperrors.ErrUnauthenticated
		}
		return t.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, apperrors.ErrUnauthenticated
	}
	return claims, nil
}
