package llm

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"strconv"
)

// Cache stores model replies by prompt key.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// Cached answers repeated prompts from a Cache. Cache failures are logged
// and never fail generation. Only replies the prompt accepts are stored, and
// a stored reply it no longer accepts counts as a miss, so an unusable reply
// is regenerated on the next call.
type Cached struct {
	next  Generator
	cache Cache
	log   *slog.Logger
}

// NewCached wraps next with cache.
func NewCached(next Generator, cache Cache, logger *slog.Logger) *Cached {
	return &Cached{next: next, cache: cache, log: logger.With("component", "llm_cache")}
}

// Generate implements Generator.
func (c *Cached) Generate(ctx context.Context, p Prompt) (string, error) {
	key := promptKey(p)

	reply, ok, err := c.cache.Get(ctx, key)
	switch {
	case err != nil:
		c.log.WarnContext(ctx, "cache read failed", slog.String("error", err.Error()))
	case ok && p.accepted(reply):
		c.log.DebugContext(ctx, "cache hit", slog.String("key", key[:12]))
		return reply, nil
	}

	reply, err = c.next.Generate(ctx, p)
	if err != nil {
		return "", err
	}

	if p.accepted(reply) {
		if err := c.cache.Set(ctx, key, reply); err != nil {
			c.log.WarnContext(ctx, "cache write failed", slog.String("error", err.Error()))
		}
	}
	return reply, nil
}

func promptKey(p Prompt) string {
	h := sha256.New()
	h.Write([]byte(p.System))
	h.Write([]byte{0})
	h.Write([]byte(p.User))
	h.Write([]byte{0})
	h.Write([]byte(strconv.FormatFloat(float64(p.Temperature), 'f', 2, 32)))
	return hex.EncodeToString(h.Sum(nil))
}
