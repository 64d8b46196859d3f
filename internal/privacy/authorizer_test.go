package privacy

import (
	"errors"
	"testing"

	"github.com/raves21/azura-backend/internal/apperrors"
	"github.com/raves21/azura-backend/internal/models"
)

type fakeFriendChecker struct {
	friends bool
	err     error
	calls   int
}

func (f *fakeFriendChecker) AreFriends(accountA, accountB string) (bool, error) {
	f.calls++
	return f.friends, f.err
}

func TestAuthorize(t *testing.T) {
	tests := []struct {
		name          string
		currentUserID string
		ownerID       string
		privacy       models.Privacy
		friends       bool
		wantErr       error
		wantOwned     bool
	}{
		{
			name:          "owner sees own ONLY_ME resource",
			currentUserID: "u1",
			ownerID:       "u1",
			privacy:       models.PrivacyOnlyMe,
			wantOwned:     true,
		},
		{
			name:          "anyone sees PUBLIC",
			currentUserID: "u2",
			ownerID:       "u1",
			privacy:       models.PrivacyPublic,
		},
		{
			name:          "friend sees FRIENDS_ONLY",
			currentUserID: "u2",
			ownerID:       "u1",
			privacy:       models.PrivacyFriendsOnly,
			friends:       true,
		},
		{
			name:          "non-friend denied FRIENDS_ONLY as not-found",
			currentUserID: "u2",
			ownerID:       "u1",
			privacy:       models.PrivacyFriendsOnly,
			wantErr:       apperrors.ErrResourceNotFound,
		},
		{
			name:          "friend still denied ONLY_ME",
			currentUserID: "u2",
			ownerID:       "u1",
			privacy:       models.PrivacyOnlyMe,
			friends:       true,
			wantErr:       apperrors.ErrResourceNotFound,
		},
		{
			name:          "unknown privacy level stays owner-only",
			currentUserID: "u2",
			ownerID:       "u1",
			privacy:       models.Privacy("SOMETHING_NEW"),
			friends:       true,
			wantErr:       apperrors.ErrResourceNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checker := &fakeFriendChecker{friends: tt.friends}
			decision, err := NewAuthorizer(checker).Authorize(tt.currentUserID, tt.ownerID, tt.privacy)
			if err != tt.wantErr {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if decision.IsOwnedByCurrentUser != tt.wantOwned {
				t.Fatalf("IsOwnedByCurrentUser = %v, want %v", decision.IsOwnedByCurrentUser, tt.wantOwned)
			}
		})
	}
}

func TestAuthorize_OwnerSkipsFriendshipLookup(t *testing.T) {
	checker := &fakeFriendChecker{err: errors.New("must not be called")}
	if _, err := NewAuthorizer(checker).Authorize("u1", "u1", models.PrivacyFriendsOnly); err != nil {
		t.Fatalf("Authorize: %v", err)
	}
	if checker.calls != 0 {
		t.Fatalf("friendship was checked %d times for the owner, want 0", checker.calls)
	}
}

func TestAuthorize_FriendshipErrorPropagates(t *testing.T) {
	lookupErr := errors.New("store unavailable")
	checker := &fakeFriendChecker{err: lookupErr}
	if _, err := NewAuthorizer(checker).Authorize("u2", "u1", models.PrivacyFriendsOnly); err != lookupErr {
		t.Fatalf("err = %v, want the lookup error", err)
	}
}
