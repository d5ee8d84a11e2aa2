package cache

import (
	"strings"
	"sync"
	"time"

	"snippets/internal/domain"
)

// entry holds a cached value with expiration metadata.
type entry[V any] struct {
	value     V
	expiresAt time.Time
}

// ttlMap is a sync.Map of expiring entries swept by a background ticker.
type ttlMap[V any] struct {
	items sync.Map
	ttl   time.Duration
	now   func() time.Time
	stop  chan struct{}
	once  sync.Once
}

func newTTLMap[V any](ttl time.Duration, sweep time.Duration) *ttlMap[V] {
	m := &ttlMap[V]{ttl: ttl, now: time.Now, stop: make(chan struct{})}
	go m.cleanup(sweep)
	return m
}

func (m *ttlMap[V]) load(key string) (V, bool) {
	var zero V
	value, ok := m.items.Load(key)
	if !ok {
		return zero, false
	}
	e := value.(*entry[V])
	if m.now().After(e.expiresAt) {
		m.items.CompareAndDelete(key, value)
		return zero, false
	}
	return e.value, true
}

func (m *ttlMap[V]) store(key string, v V) {
	m.items.Store(key, &entry[V]{value: v, expiresAt: m.now().Add(m.ttl)})
}

func (m *ttlMap[V]) take(key string) (V, bool) {
	var zero V
	value, ok := m.items.LoadAndDelete(key)
	if !ok {
		return zero, false
	}
	e := value.(*entry[V])
	if m.now().After(e.expiresAt) {
		return zero, false
	}
	return e.value, true
}

func (m *ttlMap[V]) cleanup(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-m.stop:
			return
		case <-ticker.C:
			now := m.now()
			m.items.Range(func(key, value any) bool {
				if now.After(value.(*entry[V]).expiresAt) {
					m.items.CompareAndDelete(key, value)
				}
				return true
			})
		}
	}
}

func (m *ttlMap[V]) close() {
	m.once.Do(func() { close(m.stop) })
}

// UserCache keeps the freshest known view of each user. Reads from
// different endpoints report different subsets of a profile, so saves
// merge instead of replacing.
type UserCache struct {
	mu    sync.Mutex
	users *ttlMap[domain.User]
}

// NewUserCache creates a user cache whose entries live for ttl.
func NewUserCache(ttl time.Duration) *UserCache {
	return &UserCache{users: newTTLMap[domain.User](ttl, time.Minute)}
}

// NormalizedKey returns the cache key for a handle: lower case, no '@'.
func NormalizedKey(handle string) string {
	return strings.ToLower(strings.TrimPrefix(strings.TrimSpace(handle), "@"))
}

// Get returns the cached user, if present and not expired.
func (c *UserCache) Get(handle string) (domain.User, bool) {
	return c.users.load(NormalizedKey(handle))
}

// Save merges u into the cached entry and returns the result. Users
// without a handle are returned unchanged and not stored.
func (c *UserCache) Save(u domain.User) domain.User {
	key := NormalizedKey(u.Handle)
	if key == "" {
		return u
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	known, _ := c.users.load(key)
	merged := known.Merge(u)
	c.users.store(key, merged)
	return merged
}

// SetFollowing records the follow flag as the server reported it. Unlike
// Save, false overwrites a cached true.
func (c *UserCache) SetFollowing(handle string, following bool) {
	key := NormalizedKey(handle)
	if key == "" {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	u, ok := c.users.load(key)
	if !ok {
		u = domain.User{Handle: handle}
	}
	u.IsFollowing = following
	c.users.store(key, u)
}

// Close stops the background sweeper.
func (c *UserCache) Close() {
	c.users.close()
}

// AuthorizationStore holds Micropub authorizations waiting for their
// callback, keyed by the OAuth state.
type AuthorizationStore struct {
	pending *ttlMap[domain.RemoteEndpoint]
}

// NewAuthorizationStore creates a store whose entries expire after ttl.
func NewAuthorizationStore(ttl time.Duration) *AuthorizationStore {
	return &AuthorizationStore{pending: newTTLMap[domain.RemoteEndpoint](ttl, time.Minute)}
}

// Put remembers ep under its state.
func (s *AuthorizationStore) Put(ep domain.RemoteEndpoint) {
	s.pending.store(ep.State, ep)
}

// Take returns and forgets the endpoint issued with state. A state can be
// redeemed once.
func (s *AuthorizationStore) Take(state string) (domain.RemoteEndpoint, bool) {
	return s.pending.take(state)
}

// Close stops the background sweeper.
func (s *AuthorizationStore) Close() {
	s.pending.close()
}
