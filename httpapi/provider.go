package httpapi

import (
	"context"
	"sync"

	"github.com/authgate/authgate"
)

// StaticUserProvider is an in-memory credential table for examples and
// tests. Not for production use.
type StaticUserProvider struct {
	mu    sync.RWMutex
	users map[string]authgate.UserRecord
}

// NewStaticUserProvider returns an empty provider; seed it with [Add].
func NewStaticUserProvider() *StaticUserProvider {
	return &StaticUserProvider{users: make(map[string]authgate.UserRecord)}
}

// Add inserts or replaces a user record.
func (p *StaticUserProvider) Add(record authgate.UserRecord) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.users[record.Identifier] = record
}

// GetUserByIdentifier implements authgate.UserProvider.
func (p *StaticUserProvider) GetUserByIdentifier(ctx context.Context, identifier string) (authgate.UserRecord, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	u, ok := p.users[identifier]
	if !ok {
		return authgate.UserRecord{}, authgate.ErrUserNotFound
	}
	return u, nil
}
