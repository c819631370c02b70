package documents

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/goccy/go-json"

	"sedrouting/internal/domain"
	platformredis "sedrouting/internal/platform/redis"
)

// CachedFetcher decorates a Fetcher with short-lived, time-evicted reuse
// of case document sets. The same case is typically read several times in
// quick succession while its events land; nothing here survives the TTL.
// Cache failures only cost a refetch; they are logged at debug and never
// surfaced.
type CachedFetcher struct {
	next   Fetcher
	redis  *platformredis.Client
	ttl    time.Duration
	logger *slog.Logger

	mu  sync.Mutex
	mem map[string]memEntry
}

type memEntry struct {
	docs    []Stored
	expires time.Time
}

// NewCached wraps next. redis may be nil; the cache then lives in process
// memory.
func NewCached(next Fetcher, redis *platformredis.Client, ttl time.Duration, logger *slog.Logger) *CachedFetcher {
	return &CachedFetcher{
		next:   next,
		redis:  redis,
		ttl:    ttl,
		logger: logger,
		mem:    make(map[string]memEntry),
	}
}

func (c *CachedFetcher) CaseDocuments(ctx context.Context, caseID string) ([]Stored, error) {
	if docs, ok := c.lookup(ctx, caseID); ok {
		return docs, nil
	}

	docs, err := c.next.CaseDocuments(ctx, caseID)
	if err != nil {
		return nil, err
	}
	c.store(ctx, caseID, docs)
	return docs, nil
}

// Document bypasses the cache: single-document reads are rare and always
// want the live version.
func (c *CachedFetcher) Document(ctx context.Context, caseID, documentID string) (*domain.Document, error) {
	return c.next.Document(ctx, caseID, documentID)
}

type cachedPayload struct {
	ID      string           `json:"id"`
	Content *domain.Document `json:"content"`
}

func cacheKey(caseID string) string {
	return "sedrouting:case:" + caseID
}

func (c *CachedFetcher) lookup(ctx context.Context, caseID string) ([]Stored, bool) {
	if c.redis == nil {
		c.mu.Lock()
		defer c.mu.Unlock()
		entry, ok := c.mem[caseID]
		if !ok || time.Now().After(entry.expires) {
			delete(c.mem, caseID)
			return nil, false
		}
		return entry.docs, true
	}

	raw, err := c.redis.Get(ctx, cacheKey(caseID)).Bytes()
	if err != nil {
		return nil, false
	}
	var payload []cachedPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		c.logger.Debug("document cache entry undecodable, refetching", "case_id", caseID, "error", err)
		return nil, false
	}
	docs := make([]Stored, 0, len(payload))
	for _, p := range payload {
		docs = append(docs, Stored{ID: p.ID, Document: p.Content})
	}
	return docs, true
}

func (c *CachedFetcher) store(ctx context.Context, caseID string, docs []Stored) {
	if c.redis == nil {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.evictExpiredLocked()
		c.mem[caseID] = memEntry{docs: docs, expires: time.Now().Add(c.ttl)}
		return
	}

	payload := make([]cachedPayload, 0, len(docs))
	for _, d := range docs {
		payload = append(payload, cachedPayload{ID: d.ID, Content: d.Document})
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		c.logger.Debug("document cache marshal failed", "case_id", caseID, "error", err)
		return
	}
	if err := c.redis.Set(ctx, cacheKey(caseID), raw, c.ttl).Err(); err != nil {
		c.logger.Debug("document cache write failed", "case_id", caseID, "error", err)
	}
}

// evictExpiredLocked keeps the in-memory map from growing unbounded.
func (c *CachedFetcher) evictExpiredLocked() {
	now := time.Now()
	for key, entry := range c.mem {
		if now.After(entry.expires) {
			delete(c.mem, key)
		}
	}
}

var _ Fetcher = (*CachedFetcher)(nil)
