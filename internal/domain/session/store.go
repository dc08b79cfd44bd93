// Package session keeps the signed-in user's record and card list in memory.
//
// A Store is owned by exactly one user. It changes only through events,
// and every event replaces the affected slice wholesale, so a Snapshot is
// always internally consistent.
package session

import (
	"sync"

	"loopcard/internal/domain/entity"

	"github.com/google/uuid"
)

// Event is a state transition applied to a Store.
type Event interface {
	apply(s *state)
}

// SignedIn hydrates the store. Cards are expected newest first.
type SignedIn struct {
	User  *entity.User
	Cards []*entity.Card
}

// TierChanged records a settings change of the subscription tier.
type TierChanged struct {
	Tier entity.Tier
}

// CardCreated prepends a card the gateway has confirmed.
type CardCreated struct {
	Card *entity.Card
}

// CardUpdated replaces the card with the same ID.
type CardUpdated struct {
	Card *entity.Card
}

// CardDeleted drops the card with CardID.
type CardDeleted struct {
	CardID uuid.UUID
}

// Snapshot is an immutable copy of a Store.
type Snapshot struct {
	User    *entity.User   `json:"user"`
	Cards   []*entity.Card `json:"cards"`
	Loading bool           `json:"loading"`
}

type state struct {
	user    *entity.User
	cards   []*entity.Card
	loading bool
}

// Store is the in-memory session of one user.
type Store struct {
	mu sync.RWMutex
	st state
}

func newStore() *Store {
	return &Store{st: state{loading: true, cards: []*entity.Card{}}}
}

// Apply runs ev against the store.
func (s *Store) Apply(ev Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ev.apply(&s.st)
}

// Snapshot returns a deep copy of the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := Snapshot{
		Cards:   cloneCards(s.st.cards),
		Loading: s.st.loading,
	}
	if s.st.user != nil {
		u := *s.st.user
		snap.User = &u
	}

	return snap
}

// Tier returns the mirrored subscription tier. ok is false until the store
// has been hydrated with a user.
func (s *Store) Tier() (tier entity.Tier, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.st.loading || s.st.user == nil {
		return "", false
	}

	return s.st.user.Tier, true
}

// CardCount returns the number of cards currently mirrored.
func (s *Store) CardCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.st.cards)
}

func (e SignedIn) apply(s *state) {
	if e.User != nil {
		u := *e.User
		s.user = &u
	}
	s.cards = cloneCards(e.Cards)
	s.loading = false
}

func (e TierChanged) apply(s *state) {
	if s.user == nil {
		return
	}
	u := *s.user
	u.Tier = e.Tier
	s.user = &u
}

func (e CardCreated) apply(s *state) {
	next := make([]*entity.Card, 0, len(s.cards)+1)
	next = append(next, cloneCard(e.Card))
	next = append(next, s.cards...)
	s.cards = next
}

func (e CardUpdated) apply(s *state) {
	next := make([]*entity.Card, len(s.cards))
	for i, c := range s.cards {
		if c.ID == e.Card.ID {
			next[i] = cloneCard(e.Card)

			continue
		}
		next[i] = c
	}
	s.cards = next
}

func (e CardDeleted) apply(s *state) {
	next := make([]*entity.Card, 0, len(s.cards))
	for _, c := range s.cards {
		if c.ID != e.CardID {
			next = append(next, c)
		}
	}
	s.cards = next
}

func cloneCards(cards []*entity.Card) []*entity.Card {
	out := make([]*entity.Card, 0, len(cards))
	for _, c := range cards {
		out = append(out, cloneCard(c))
	}

	return out
}

func cloneCard(c *entity.Card) *entity.Card {
	cp := *c
	cp.Socials = append([]entity.SocialLink(nil), c.Socials...)
	cp.Gallery = append([]string(nil), c.Gallery...)
	cp.Normalize()

	return &cp
}
