// Package memory holds in-process implementations of the repository ports.
// It backs STORE=memory runs and end-to-end tests; data is lost on exit.
package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	"weddinginvitation/internal/domain"
)

// Store keeps every table in insertion order behind a single mutex.
// Foreign keys and unique constraints are checked the way Postgres would.
type Store struct {
	mu sync.RWMutex

	users       []*domain.User
	weddings    []*domain.Wedding
	invitations []*domain.Invitation
	guests      []*domain.Guest
	rsvps       []*domain.RSVP
	wishes      []*domain.Wish
	gallery     []*domain.GalleryItem
	stories     []*domain.LoveStory
	gifts       []*domain.Gift
}

func NewStore() *Store {
	return &Store{}
}

// PingContext always succeeds; it lets the store back the health check.
func (s *Store) PingContext(ctx context.Context) error {
	return nil
}

func (s *Store) Users() domain.UserRepository             { return userRepository{s} }
func (s *Store) Weddings() domain.WeddingRepository       { return weddingRepository{s} }
func (s *Store) Invitations() domain.InvitationRepository { return invitationRepository{s} }
func (s *Store) Guests() domain.GuestRepository           { return guestRepository{s} }
func (s *Store) RSVPs() domain.RSVPRepository             { return rsvpRepository{s} }
func (s *Store) Wishes() domain.WishRepository            { return wishRepository{s} }
func (s *Store) Gallery() domain.GalleryRepository        { return galleryRepository{s} }
func (s *Store) LoveStories() domain.LoveStoryRepository  { return loveStoryRepository{s} }
func (s *Store) Gifts() domain.GiftRepository             { return giftRepository{s} }
func (s *Store) Ownership() domain.OwnershipRepository    { return ownershipRepository{s} }

// The lookups below assume s.mu is held.

func (s *Store) userByID(id string) *domain.User {
	for _, u := range s.users {
		if u.ID == id {
			return u
		}
	}
	return nil
}

func (s *Store) weddingByID(id string) *domain.Wedding {
	for _, w := range s.weddings {
		if w.ID == id {
			return w
		}
	}
	return nil
}

func (s *Store) invitationByID(id string) *domain.Invitation {
	for _, inv := range s.invitations {
		if inv.ID == id {
			return inv
		}
	}
	return nil
}

func (s *Store) guestByID(id string) *domain.Guest {
	for _, g := range s.guests {
		if g.ID == id {
			return g
		}
	}
	return nil
}

func (s *Store) weddingOwnedBy(weddingID, userID string) bool {
	w := s.weddingByID(weddingID)
	return w != nil && w.UserID == userID
}

func (s *Store) invitationOwnedBy(invitationID, userID string) bool {
	inv := s.invitationByID(invitationID)
	return inv != nil && s.weddingOwnedBy(inv.WeddingID, userID)
}

func (s *Store) guestOwnedBy(guestID, userID string) bool {
	g := s.guestByID(guestID)
	return g != nil && s.invitationOwnedBy(g.InvitationID, userID)
}

type userRepository struct{ s *Store }

func (r userRepository) Create(ctx context.Context, user *domain.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if strings.EqualFold(u.Email, user.Email) {
			return domain.ErrDuplicateEmail
		}
	}
	user.ID = uuid.NewString()
	c := *user
	r.s.users = append(r.s.users, &c)
	return nil
}

func (r userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, u := range r.s.users {
		if u.Email == email {
			c := *u
			return &c, nil
		}
	}
	return nil, domain.ErrNotFound
}

type weddingRepository struct{ s *Store }

func (r weddingRepository) Create(ctx context.Context, wedding *domain.Wedding) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.userByID(wedding.UserID) == nil {
		return domain.ErrParentNotFound
	}
	wedding.ID = uuid.NewString()
	c := *wedding
	r.s.weddings = append(r.s.weddings, &c)
	return nil
}

func (r weddingRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.Wedding, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*domain.Wedding, 0)
	for _, w := range r.s.weddings {
		if w.UserID == userID {
			c := *w
			out = append(out, &c)
		}
	}
	return out, nil
}

type invitationRepository struct{ s *Store }

func (r invitationRepository) Create(ctx context.Context, invitation *domain.Invitation) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.weddingByID(invitation.WeddingID) == nil {
		return domain.ErrParentNotFound
	}
	for _, inv := range r.s.invitations {
		if inv.Slug == invitation.Slug {
			return domain.ErrDuplicateSlug
		}
	}
	invitation.ID = uuid.NewString()
	c := *invitation
	r.s.invitations = append(r.s.invitations, &c)
	return nil
}

func (r invitationRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.Invitation, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*domain.Invitation, 0)
	for _, inv := range r.s.invitations {
		if r.s.weddingOwnedBy(inv.WeddingID, userID) {
			c := *inv
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r invitationRepository) GetBySlug(ctx context.Context, slug string) (*domain.Invitation, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, inv := range r.s.invitations {
		if inv.Slug == slug {
			c := *inv
			return &c, nil
		}
	}
	return nil, domain.ErrNotFound
}

type guestRepository struct{ s *Store }

func (r guestRepository) Create(ctx context.Context, guest *domain.Guest) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.invitationByID(guest.InvitationID) == nil {
		return domain.ErrParentNotFound
	}
	guest.ID = uuid.NewString()
	c := *guest
	r.s.guests = append(r.s.guests, &c)
	return nil
}

func (r guestRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.Guest, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*domain.Guest, 0)
	for _, g := range r.s.guests {
		if r.s.invitationOwnedBy(g.InvitationID, userID) {
			c := *g
			out = append(out, &c)
		}
	}
	return out, nil
}

type rsvpRepository struct{ s *Store }

func (r rsvpRepository) Create(ctx context.Context, rsvp *domain.RSVP) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.guestByID(rsvp.GuestID) == nil {
		return domain.ErrParentNotFound
	}
	rsvp.ID = uuid.NewString()
	c := *rsvp
	r.s.rsvps = append(r.s.rsvps, &c)
	return nil
}

func (r rsvpRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.RSVP, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*domain.RSVP, 0)
	for _, v := range r.s.rsvps {
		if r.s.guestOwnedBy(v.GuestID, userID) {
			c := *v
			out = append(out, &c)
		}
	}
	return out, nil
}

type wishRepository struct{ s *Store }

func (r wishRepository) Create(ctx context.Context, wish *domain.Wish) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.guestByID(wish.GuestID) == nil {
		return domain.ErrParentNotFound
	}
	wish.ID = uuid.NewString()
	c := *wish
	r.s.wishes = append(r.s.wishes, &c)
	return nil
}

func (r wishRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.Wish, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*domain.Wish, 0)
	for _, w := range r.s.wishes {
		if r.s.guestOwnedBy(w.GuestID, userID) {
			c := *w
			out = append(out, &c)
		}
	}
	return out, nil
}

type galleryRepository struct{ s *Store }

func (r galleryRepository) Create(ctx context.Context, item *domain.GalleryItem) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.weddingByID(item.WeddingID) == nil {
		return domain.ErrParentNotFound
	}
	item.ID = uuid.NewString()
	c := *item
	r.s.gallery = append(r.s.gallery, &c)
	return nil
}

func (r galleryRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.GalleryItem, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*domain.GalleryItem, 0)
	for _, item := range r.s.gallery {
		if r.s.weddingOwnedBy(item.WeddingID, userID) {
			c := *item
			out = append(out, &c)
		}
	}
	return out, nil
}

type loveStoryRepository struct{ s *Store }

func (r loveStoryRepository) Create(ctx context.Context, story *domain.LoveStory) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.weddingByID(story.WeddingID) == nil {
		return domain.ErrParentNotFound
	}
	story.ID = uuid.NewString()
	c := *story
	r.s.stories = append(r.s.stories, &c)
	return nil
}

func (r loveStoryRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.LoveStory, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*domain.LoveStory, 0)
	for _, st := range r.s.stories {
		if r.s.weddingOwnedBy(st.WeddingID, userID) {
			c := *st
			out = append(out, &c)
		}
	}
	return out, nil
}

type giftRepository struct{ s *Store }

func (r giftRepository) Create(ctx context.Context, gift *domain.Gift) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.weddingByID(gift.WeddingID) == nil {
		return domain.ErrParentNotFound
	}
	gift.ID = uuid.NewString()
	c := *gift
	r.s.gifts = append(r.s.gifts, &c)
	return nil
}

func (r giftRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.Gift, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*domain.Gift, 0)
	for _, g := range r.s.gifts {
		if r.s.weddingOwnedBy(g.WeddingID, userID) {
			c := *g
			out = append(out, &c)
		}
	}
	return out, nil
}

type ownershipRepository struct{ s *Store }

func (r ownershipRepository) WeddingOwnedBy(ctx context.Context, weddingID, userID string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.weddingOwnedBy(weddingID, userID), nil
}

func (r ownershipRepository) InvitationOwnedBy(ctx context.Context, invitationID, userID string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.invitationOwnedBy(invitationID, userID), nil
}

func (r ownershipRepository) GuestOwner(ctx context.Context, guestID string) (*domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	g := r.s.guestByID(guestID)
	if g == nil {
		return nil, domain.ErrNotFound
	}
	inv := r.s.invitationByID(g.InvitationID)
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	w := r.s.weddingByID(inv.WeddingID)
	if w == nil {
		return nil, domain.ErrNotFound
	}
	u := r.s.userByID(w.UserID)
	if u == nil {
		return nil, domain.ErrNotFound
	}
	c := *u
	c.PasswordHash = ""
	return &c, nil
}
