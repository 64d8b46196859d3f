package repositories

import (
	"testing"

	"github.com/raves21/azura-backend/internal/models"
)

func TestAreFriends(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresFollowRepository(db)
	a := createAccount(t, db, "a@x.com", "a")
	b := createAccount(t, db, "b@x.com", "b")

	assertFriends := func(want bool) {
		t.Helper()
		got, err := repo.AreFriends(a.ID, b.ID)
		if err != nil {
			t.Fatalf("AreFriends: %v", err)
		}
		if got != want {
			t.Fatalf("AreFriends(a,b) = %v, want %v", got, want)
		}
		// symmetric regardless of argument order
		gotRev, err := repo.AreFriends(b.ID, a.ID)
		if err != nil {
			t.Fatalf("AreFriends reversed: %v", err)
		}
		if gotRev != got {
			t.Fatalf("AreFriends is not symmetric: %v vs %v", got, gotRev)
		}
	}

	// no edges
	assertFriends(false)

	// one direction only
	if err := repo.CreateFollow(&models.Follow{FollowerID: a.ID, FollowedID: b.ID}); err != nil {
		t.Fatalf("CreateFollow: %v", err)
	}
	assertFriends(false)

	// both directions
	if err := repo.CreateFollow(&models.Follow{FollowerID: b.ID, FollowedID: a.ID}); err != nil {
		t.Fatalf("CreateFollow back: %v", err)
	}
	assertFriends(true)

	// removing either edge breaks the friendship
	if _, err := repo.DeleteFollow(a.ID, b.ID); err != nil {
		t.Fatalf("DeleteFollow: %v", err)
	}
	assertFriends(false)
}

func TestDeleteFollow_ReportsMissingEdge(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresFollowRepository(db)
	a := createAccount(t, db, "a@x.com", "a")
	b := createAccount(t, db, "b@x.com", "b")

	deleted, err := repo.DeleteFollow(a.ID, b.ID)
	if err != nil {
		t.Fatalf("DeleteFollow: %v", err)
	}
	if deleted != 0 {
		t.Fatalf("got %d deleted, want 0", deleted)
	}

	if err := repo.CreateFollow(&models.Follow{FollowerID: a.ID, FollowedID: b.ID}); err != nil {
		t.Fatalf("CreateFollow: %v", err)
	}
	deleted, err = repo.DeleteFollow(a.ID, b.ID)
	if err != nil {
		t.Fatalf("DeleteFollow: %v", err)
	}
	if deleted != 1 {
		t.Fatalf("got %d deleted, want 1", deleted)
	}
}

func TestIsFollowing_IsDirectional(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresFollowRepository(db)
	a := createAccount(t, db, "a@x.com", "a")
	b := createAccount(t, db, "b@x.com", "b")

	if err := repo.CreateFollow(&models.Follow{FollowerID: a.ID, FollowedID: b.ID}); err != nil {
		t.Fatalf("CreateFollow: %v", err)
	}

	forward, err := repo.IsFollowing(a.ID, b.ID)
	if err != nil {
		t.Fatalf("IsFollowing: %v", err)
	}
	if !forward {
		t.Fatalf("expected a to follow b")
	}

	backward, err := repo.IsFollowing(b.ID, a.ID)
	if err != nil {
		t.Fatalf("IsFollowing reversed: %v", err)
	}
	if backward {
		t.Fatalf("did not expect b to follow a")
	}
}
