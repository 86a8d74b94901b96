package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weddinginvitation/internal/domain"
)

// seedChain creates user -> wedding -> invitation -> guest and returns their ids.
func seedChain(t *testing.T, s *Store, email, slug string) (userID, weddingID, invitationID, guestID string) {
	t.Helper()
	ctx := context.Background()

	u := domain.NewUser("Owner", email, "hash", domain.RoleUser)
	require.NoError(t, s.Users().Create(ctx, u))
	w := &domain.Wedding{UserID: u.ID, GroomName: "G", BrideName: "B"}
	require.NoError(t, s.Weddings().Create(ctx, w))
	inv := &domain.Invitation{WeddingID: w.ID, Slug: slug, Status: domain.InvitationStatusDraft}
	require.NoError(t, s.Invitations().Create(ctx, inv))
	g := &domain.Guest{InvitationID: inv.ID, GuestName: "Citra"}
	require.NoError(t, s.Guests().Create(ctx, g))
	return u.ID, w.ID, inv.ID, g.ID
}

func TestStore_constraints(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	seedChain(t, s, "a@x.com", "ana-budi")

	err := s.Users().Create(ctx, domain.NewUser("Other", "a@x.com", "hash", domain.RoleUser))
	assert.ErrorIs(t, err, domain.ErrDuplicateEmail)

	_, weddingID, _, _ := seedChain(t, s, "b@x.com", "second")
	err = s.Invitations().Create(ctx, &domain.Invitation{WeddingID: weddingID, Slug: "ana-budi"})
	assert.ErrorIs(t, err, domain.ErrDuplicateSlug)

	err = s.RSVPs().Create(ctx, &domain.RSVP{GuestID: "missing", Attendance: domain.AttendanceMaybe})
	assert.ErrorIs(t, err, domain.ErrParentNotFound)
	err = s.Wishes().Create(ctx, &domain.Wish{GuestID: "missing", Message: "hi"})
	assert.ErrorIs(t, err, domain.ErrParentNotFound)
	err = s.Gifts().Create(ctx, &domain.Gift{WeddingID: "missing"})
	assert.ErrorIs(t, err, domain.ErrParentNotFound)
}

func TestStore_lists_are_scoped_to_owner(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	userA, weddingA, invA, guestA := seedChain(t, s, "a@x.com", "ana-budi")
	userB, _, _, _ := seedChain(t, s, "b@x.com", "citra-dodi")

	require.NoError(t, s.RSVPs().Create(ctx, &domain.RSVP{GuestID: guestA, Attendance: domain.AttendanceAttending, TotalGuest: 2}))
	require.NoError(t, s.Wishes().Create(ctx, &domain.Wish{GuestID: guestA, Message: "congrats"}))
	require.NoError(t, s.Gallery().Create(ctx, &domain.GalleryItem{WeddingID: weddingA, MediaType: domain.MediaTypeImage, FileURL: "u"}))
	require.NoError(t, s.LoveStories().Create(ctx, &domain.LoveStory{WeddingID: weddingA, Title: "First met"}))
	require.NoError(t, s.Gifts().Create(ctx, &domain.Gift{WeddingID: weddingA, BankName: "BCA", AccountName: "A", AccountNumber: "1"}))

	invs, err := s.Invitations().ListByUserID(ctx, userA)
	require.NoError(t, err)
	require.Len(t, invs, 1)
	assert.Equal(t, invA, invs[0].ID)

	rsvps, err := s.RSVPs().ListByUserID(ctx, userA)
	require.NoError(t, err)
	assert.Len(t, rsvps, 1)

	foreignRSVPs, err := s.RSVPs().ListByUserID(ctx, userB)
	require.NoError(t, err)
	assert.Empty(t, foreignRSVPs)

	foreignWishes, err := s.Wishes().ListByUserID(ctx, userB)
	require.NoError(t, err)
	assert.Empty(t, foreignWishes)

	foreignGallery, err := s.Gallery().ListByUserID(ctx, userB)
	require.NoError(t, err)
	assert.Empty(t, foreignGallery)

	foreignStories, err := s.LoveStories().ListByUserID(ctx, userB)
	require.NoError(t, err)
	assert.Empty(t, foreignStories)

	foreignGifts, err := s.Gifts().ListByUserID(ctx, userB)
	require.NoError(t, err)
	assert.Empty(t, foreignGifts)

	weddings, err := s.Weddings().ListByUserID(ctx, "nobody")
	require.NoError(t, err)
	assert.NotNil(t, weddings)
	assert.Empty(t, weddings)
}

func TestStore_ownership(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	userA, weddingA, invA, guestA := seedChain(t, s, "a@x.com", "ana-budi")
	userB, _, _, _ := seedChain(t, s, "b@x.com", "citra-dodi")
	own := s.Ownership()

	ok, err := own.WeddingOwnedBy(ctx, weddingA, userA)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = own.WeddingOwnedBy(ctx, weddingA, userB)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = own.InvitationOwnedBy(ctx, invA, userB)
	require.NoError(t, err)
	assert.False(t, ok)

	owner, err := own.GuestOwner(ctx, guestA)
	require.NoError(t, err)
	assert.Equal(t, userA, owner.ID)
	assert.Empty(t, owner.PasswordHash)

	_, err = own.GuestOwner(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStore_returns_copies(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	_, _, _, _ = seedChain(t, s, "a@x.com", "ana-budi")

	inv, err := s.Invitations().GetBySlug(ctx, "ana-budi")
	require.NoError(t, err)
	inv.Slug = "mutated"

	_, err = s.Invitations().GetBySlug(ctx, "ana-budi")
	require.NoError(t, err)
}
