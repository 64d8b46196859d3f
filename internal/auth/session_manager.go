package auth

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/raves21/azura-backend/internal/apperrors"
	"github.com/raves21/azura-backend/internal/models"
	"github.com/raves21/azura-backend/internal/repositories"
	"github.com/raves21/azura-backend/pkg/metrics"
)

// SessionManager orchestrates the per-account session lifecycle: login with
// the concurrent-session limit, the logout family, and session enumeration.
type SessionManager struct {
	accounts     repositories.AccountRepository
	sessions     repositories.SessionRepository
	verifier     CredentialVerifier
	sessionLimit int
	sessionTTL   time.Duration
	metrics      *metrics.Metrics
	log          *logrus.Logger
}

// NewSessionManager creates a new SessionManager.
func NewSessionManager(
	accounts repositories.AccountRepository,
	sessions repositories.SessionRepository,
	verifier CredentialVerifier,
	sessionLimit int,
	sessionTTL time.Duration,
	m *metrics.Metrics,
	log *logrus.Logger,
) *SessionManager {
	return &SessionManager{
		accounts:     accounts,
		sessions:     sessions,
		verifier:     verifier,
		sessionLimit: sessionLimit,
		sessionTTL:   sessionTTL,
		metrics:      m,
		log:          log,
	}
}

// LoginResult is the outcome of a successful credential check. In detached
// mode no session was created and Sessions lists the ones blocking the limit.
type LoginResult struct {
	Account        models.AccountBasicInfo `json:"user"`
	Session        *models.Session         `json:"session,omitempty"`
	Sessions       []models.Session        `json:"sessions,omitempty"`
	Token          string                  `json:"-"`
	IsDetachedMode bool                    `json:"isDetachedMode"`
}

// Login verifies credentials and creates a session, subject to the
// concurrent-session limit. Wrong email and wrong password are reported
// identically so callers cannot probe which emails have accounts.
//
// The limit check and the session insert are not atomic across requests:
// two concurrent logins can both pass the check and transiently exceed the
// limit by one. That is accepted; the expiry sweep reclaims the overshoot.
func (m *SessionManager) Login(email, password string, device models.DeviceInfo) (*LoginResult, error) {
	account, err := m.accounts.GetAccountByEmail(email)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			m.metrics.Logins.WithLabelValues("invalid").Inc()
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !m.verifier.Verify(password, account.Password) {
		m.metrics.Logins.WithLabelValues("invalid").Inc()
		return nil, apperrors.ErrInvalidCredentials
	}

	now := time.Now()
	sessions, err := m.sessions.ListSessionsByAccount(account.ID)
	if err != nil {
		return nil, err
	}

	if len(sessions) >= m.sessionLimit {
		expired := 0
		for _, s := range sessions {
			if s.IsExpired(now) {
				expired++
			}
		}

		// No expired session to reclaim: the caller must explicitly log one
		// out before a new session can be created.
		if expired == 0 {
			m.metrics.Logins.WithLabelValues("detached").Inc()
			return &LoginResult{
				Account:        account.BasicInfo(),
				Sessions:       sessions,
				IsDetachedMode: true,
			}, nil
		}

		deleted, err := m.sessions.DeleteExpiredBefore(now, account.ID)
		if err != nil {
			return nil, err
		}
		m.metrics.SessionsEvicted.Add(float64(deleted))
		m.log.WithFields(logrus.Fields{
			"account_id": account.ID,
			"deleted":    deleted,
		}).Info("Reclaimed expired sessions at login")
	}

	token, err := generateSessionToken()
	if err != nil {
		return nil, err
	}

	session := &models.Session{
		AccountID: account.ID,
		Token:     token,
		Browser:   device.Browser,
		OS:        device.OS,
		Platform:  device.Platform,
		ExpiresAt: now.Add(m.sessionTTL),
	}
	if err := m.sessions.CreateSession(session); err != nil {
		return nil, err
	}

	m.metrics.Logins.WithLabelValues("success").Inc()
	m.log.WithFields(logrus.Fields{
		"account_id": account.ID,
		"session_id": session.ID,
	}).Info("Session created")

	return &LoginResult{
		Account: account.BasicInfo(),
		Session: session,
		Token:   token,
	}, nil
}

// Logout deletes the session carrying the given secret. A secret that
// matches no session is already logged out, which is success, not an error.
func (m *SessionManager) Logout(token string) error {
	session, err := m.sessions.GetSessionByToken(token)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil
		}
		return err
	}
	_, err = m.sessions.DeleteSessionByID(session.ID)
	return err
}

// LogoutSessionByID deletes one session by id, e.g. picked from the
// detached-mode list.
func (m *SessionManager) LogoutSessionByID(sessionID string) error {
	deleted, err := m.sessions.DeleteSessionByID(sessionID)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return apperrors.ErrResourceNotFound
	}
	return nil
}

// LogoutOtherSessions deletes every session of the account except the
// current one.
func (m *SessionManager) LogoutOtherSessions(accountID, currentSessionID string) (int64, error) {
	return m.sessions.DeleteAllExceptID(accountID, currentSessionID)
}

// ListSessions returns the account's sessions with the current one marked.
func (m *SessionManager) ListSessions(accountID, currentSessionID string) ([]models.SessionInfo, error) {
	sessions, err := m.sessions.ListSessionsByAccount(accountID)
	if err != nil {
		return nil, err
	}
	infos := make([]models.SessionInfo, len(sessions))
	for i, s := range sessions {
		infos[i] = models.SessionInfo{
			SessionID:        s.ID,
			AccountID:        s.AccountID,
			Browser:          s.Browser,
			OS:               s.OS,
			Platform:         s.Platform,
			CreatedAt:        s.CreatedAt,
			ExpiresAt:        s.ExpiresAt,
			IsCurrentSession: s.ID == currentSessionID,
		}
	}
	return infos, nil
}

// generateSessionToken returns 64 cryptographically random bytes hex-encoded.
func generateSessionToken() (string, error) {
	buf := make([]byte, 64)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
