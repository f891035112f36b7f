package directory

import (
	"fmt"
	"sync"

	"offer-auction/internal/auctionerrors"
	model "offer-auction/internal/models"
)

// UserDirectory resolves user display names for bid listings. Nothing
// beyond the name is ever handed to callers.
type UserDirectory interface {
	GetUser(userID string) (model.User, error)
}

// MemoryDirectory is a concurrency-safe in-memory user store standing in
// for the marketplace's user service.
type MemoryDirectory struct {
	mu    sync.RWMutex
	users map[string]model.User
}

// NewMemoryDirectory creates a new in-memory directory instance
func NewMemoryDirectory() *MemoryDirectory {
	return &MemoryDirectory{
		users: make(map[string]model.User),
	}
}

// GetUser returns the user with the given ID
func (d *MemoryDirectory) GetUser(userID string) (model.User, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	user, ok := d.users[userID]
	if !ok {
		return model.User{}, fmt.Errorf("get user %s: %w", userID, auctionerrors.ErrUserNotFound)
	}
	return user, nil
}

// AddUser adds or replaces a user in the directory
func (d *MemoryDirectory) AddUser(user model.User) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.users[user.UserID] = user
}
