package auth

import (
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/raves21/azura-backend/internal/apperrors"
	"github.com/raves21/azura-backend/internal/repositories"
	"github.com/raves21/azura-backend/pkg/metrics"
)

func newTestTokenService(db *gorm.DB, ttl time.Duration) *TokenService {
	return NewTokenService(
		repositories.NewPostgresSessionRepository(db),
		repositories.NewPostgresAccountRepository(db),
		"test-secret",
		ttl,
		metrics.NewNop(),
	)
}

func TestRenew_UnknownToken(t *testing.T) {
	db := newTestDB(t)
	tokens := newTestTokenService(db, 30*time.Minute)

	if _, err := tokens.Renew("no-such-token"); err != apperrors.ErrSessionNotFound {
		t.Fatalf("got %v, want ErrSessionNotFound", err)
	}
}

func TestRenew_ExpiredSessionIsDeleted(t *testing.T) {
	db := newTestDB(t)
	manager := newTestManager(t, db, 2)
	tokens := newTestTokenService(db, 30*time.Minute)
	signupAccount(t, db, "a@x.com", "hunter2")

	login, err := manager.Login("a@x.com", "hunter2", device("d1"))
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if err := db.Model(login.Session).Update("expires_at", time.Now().Add(-time.Minute)).Error; err != nil {
		t.Fatalf("expire session: %v", err)
	}

	if _, err := tokens.Renew(login.Token); err != apperrors.ErrSessionExpired {
		t.Fatalf("got %v, want ErrSessionExpired", err)
	}

	// The dead session must be gone: a retry now reports not-found.
	if _, err := tokens.Renew(login.Token); err != apperrors.ErrSessionNotFound {
		t.Fatalf("retry got %v, want ErrSessionNotFound", err)
	}
}

func TestRenew_MintsParsableAccessToken(t *testing.T) {
	db := newTestDB(t)
	manager := newTestManager(t, db, 2)
	tokens := newTestTokenService(db, 30*time.Minute)
	account := signupAccount(t, db, "a@x.com", "hunter2")

	login, err := manager.Login("a@x.com", "hunter2", device("d1"))
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	result, err := tokens.Renew(login.Token)
	if err != nil {
		t.Fatalf("Renew: %v", err)
	}
	if result.Account.ID != account.ID {
		t.Fatalf("renewed account = %s, want %s", result.Account.ID, account.ID)
	}

	claims, err := tokens.Parse(result.AccessToken)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if claims.UserID != account.ID {
		t.Fatalf("claims.UserID = %s, want %s", claims.UserID, account.ID)
	}
	if claims.SessionID != login.Session.ID {
		t.Fatalf("claims.SessionID = %s, want %s", claims.SessionID, login.Session.ID)
	}
	if claims.Email != account.Email || claims.Handle != account.Handle {
		t.Fatalf("claims identity does not match the account")
	}
}

func TestParse_RejectsExpiredAndTampered(t *testing.T) {
	db := newTestDB(t)
	manager := newTestManager(t, db, 2)
	signupAccount(t, db, "a@x.com", "hunter2")

	login, err := manager.Login("a@x.com", "hunter2", device("d1"))
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	expiredTokens := newTestTokenService(db, -time.Minute)
	expired, err := expiredTokens.Renew(login.Token)
	if err != nil {
		t.Fatalf("Renew: %v", err)
	}
	if _, err := expiredTokens.Parse(expired.AccessToken); err != apperrors.ErrUnauthenticated {
		t.Fatalf("expired token: got %v, want ErrUnauthenticated", err)
	}

	otherSecret := NewTokenService(
		repositories.NewPostgresSessionRepository(db),
		repositories.NewPostgresAccountRepository(db),
		"a-different-secret",
		30*time.Minute,
		metrics.NewNop(),
	)
	valid, err := otherSecret.Renew(login.Token)
	if err != nil {
		t.Fatalf("Renew: %v", err)
	}
	wrongKey := newTestTokenService(db, 30*time.Minute)
	if _, err := wrongKey.Parse(valid.AccessToken); err != apperrors.ErrUnauthenticated {
		t.Fatalf("wrong key: got %v, want ErrUnauthenticated", err)
	}
	if _, err := wrongKey.Parse("not.a.jwt"); err != apperrors.ErrUnauthenticated {
		t.Fatalf("garbage token: got %v, want ErrUnauthenticated", err)
	}
}
