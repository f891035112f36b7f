package auth

import (
	"fmt"
	"sync"

	"offer-auction/internal/auctionerrors"
	model "offer-auction/internal/models"
	"offer-auction/utils"
)

// Identity is a verified (user, role) pair. Handlers receive it from the
// auth middleware and never re-derive the role from untyped strings.
type Identity struct {
	UserID string
	Role   model.Role
}

// TokenVerifier checks an opaque bearer token and returns the identity it
// was issued for.
type TokenVerifier interface {
	Verify(token string) (Identity, error)
}

// MemoryTokenStore issues and verifies opaque bearer tokens. It stands in
// for the marketplace's session service.
type MemoryTokenStore struct {
	mu     sync.RWMutex
	tokens map[string]Identity
}

// NewMemoryTokenStore creates a new in-memory token store instance
func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{
		tokens: make(map[string]Identity),
	}
}

// Issue creates a new opaque token bound to the given identity
func (s *MemoryTokenStore) Issue(id Identity) string {
	token := utils.GenerateID()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[token] = id

	return token
}

// Verify returns the identity a token was issued for
func (s *MemoryTokenStore) Verify(token string) (Identity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.tokens[token]
	if !ok {
		return Identity{}, fmt.Errorf("verify token: %w", auctionerrors.ErrUnauthenticated)
	}
	return id, nil
}

// Revoke invalidates a previously issued token
func (s *MemoryTokenStore) Revoke(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, token)
}
