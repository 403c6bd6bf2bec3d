package user

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/LondonTravel_Go/internal/domain"
	"github.com/osse101/LondonTravel_Go/internal/metrics"
)

// CacheConfig sizes the token lookup cache
type CacheConfig struct {
	Size int
	TTL  time.Duration
}

// cachedUserEntry wraps a user with version metadata for cache invalidation
type cachedUserEntry struct {
	Version  string
	User     domain.User
	CachedAt time.Time
}

// tokenCache caches preferences API lookups by Alexa access token
// with time-based expiration and version-based invalidation to prevent stale data.
//
// epoch advances on every invalidation. A lookup that read the repository
// before an invalidation must not repopulate the cache afterwards.
type tokenCache struct {
	lru *expirable.LRU[string, *cachedUserEntry]

	mu    sync.Mutex
	epoch uint64
}

func newTokenCache(cfg CacheConfig) *tokenCache {
	if cfg.Size <= 0 {
		cfg.Size = DefaultCacheSize
	}
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultCacheTTL
	}
	return &tokenCache{
		lru: expirable.NewLRU[string, *cachedUserEntry](cfg.Size, nil, cfg.TTL),
	}
}

// Get returns a copy of the cached user for token
func (c *tokenCache) Get(token string) (*domain.User, bool) {
	entry, found := c.lru.Get(token)
	if !found {
		metrics.UserCacheLookupsTotal.WithLabelValues(metrics.ResultMiss).Inc()
		return nil, false
	}

	if entry.Version != CacheSchemaVersion {
		c.lru.Remove(token)
		metrics.UserCacheLookupsTotal.WithLabelValues(metrics.ResultMiss).Inc()
		return nil, false
	}

	metrics.UserCacheLookupsTotal.WithLabelValues(metrics.ResultHit).Inc()
	u := cloneUser(entry.User)
	return &u, true
}

// Epoch returns the current invalidation epoch
func (c *tokenCache) Epoch() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.epoch
}

// Set stores a copy of user under token
func (c *tokenCache) Set(token string, user *domain.User) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.add(token, user)
}

// SetIfUnchanged stores user only when no invalidation happened since epoch
func (c *tokenCache) SetIfUnchanged(token string, user *domain.User, epoch uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.epoch != epoch {
		return false
	}
	c.add(token, user)
	return true
}

func (c *tokenCache) add(token string, user *domain.User) {
	c.lru.Add(token, &cachedUserEntry{
		Version:  CacheSchemaVersion,
		User:     cloneUser(*user),
		CachedAt: time.Now(),
	})
}

// InvalidateUser removes every entry belonging to userID
func (c *tokenCache) InvalidateUser(userID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.epoch++
	for _, key := range c.lru.Keys() {
		if entry, ok := c.lru.Peek(key); ok && entry.User.ID == userID {
			c.lru.Remove(key)
		}
	}
}

// Len returns the number of cached entries
func (c *tokenCache) Len() int {
	return c.lru.Len()
}

func cloneUser(u domain.User) domain.User {
	if u.FavoriteLines != nil {
		u.FavoriteLines = append(make([]string, 0, len(u.FavoriteLines)), u.FavoriteLines...)
	}
	if u.Logins != nil {
		u.Logins = append(make([]domain.ExternalLogin, 0, len(u.Logins)), u.Logins...)
	}
	if u.AlexaToken != nil {
		token := *u.AlexaToken
		u.AlexaToken = &token
	}
	return u
}
