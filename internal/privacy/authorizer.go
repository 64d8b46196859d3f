// Package privacy decides whether a requester may view a privacy-scoped
// resource. A denied requester gets the same answer as for a resource that
// does not exist, so private resources cannot be enumerated.
package privacy

import (
	"github.com/raves21/azura-backend/internal/apperrors"
	"github.com/raves21/azura-backend/internal/models"
)

// FriendChecker reports whether two accounts mutually follow each other.
type FriendChecker interface {
	AreFriends(accountA, accountB string) (bool, error)
}

// Authorizer gates read access by ownership and friendship.
type Authorizer struct {
	friends FriendChecker
}

// NewAuthorizer creates a new Authorizer.
func NewAuthorizer(friends FriendChecker) *Authorizer {
	return &Authorizer{friends: friends}
}

// Decision is the outcome of a visibility check.
type Decision struct {
	IsOwnedByCurrentUser bool
}

// Authorize decides whether currentUserID may view a resource owned by
// ownerID at the given privacy level. Denial is always
// apperrors.ErrResourceNotFound, never a forbidden-style error: an
// unauthorized caller must not be able to tell a hidden resource from an
// absent one.
func (a *Authorizer) Authorize(currentUserID, ownerID string, privacy models.Privacy) (Decision, error) {
	if currentUserID == ownerID {
		return Decision{IsOwnedByCurrentUser: true}, nil
	}

	switch privacy {
	case models.PrivacyPublic:
		return Decision{}, nil
	case models.PrivacyFriendsOnly:
		friends, err := a.friends.AreFriends(currentUserID, ownerID)
		if err != nil {
			return Decision{}, err
		}
		if friends {
			return Decision{}, nil
		}
		return Decision{}, apperrors.ErrResourceNotFound
	default:
		// ONLY_ME and anything unknown stays owner-only.
		return Decision{}, apperrors.ErrResourceNotFound
	}
}
