package editor

import (
	"context"
	"strconv"
	"time"

	"github.com/zjrosen/inkwell/internal/cachemanager"
	"github.com/zjrosen/inkwell/internal/highlight"
	"github.com/zjrosen/inkwell/internal/log"
)

// docKey is the options fingerprint followed by the document text.
type docKey string

// HighlightCache memoizes highlighting by document text, so undo, redo and
// reloads of a document seen before skip the highlight pass.
type HighlightCache struct {
	hl    highlight.Highlighter
	cache *cachemanager.ReadThroughCache[docKey, []highlight.Line, string]
	ttl   time.Duration
}

// NewHighlightCache creates a cache for hl. A disabled cache highlights on
// every call.
func NewHighlightCache(hl highlight.Highlighter, enabled bool, ttl time.Duration) *HighlightCache {
	if ttl <= 0 {
		ttl = cachemanager.DefaultExpiration
	}
	store := cachemanager.NewInMemoryCacheManager[docKey, []highlight.Line](
		"highlight", ttl, cachemanager.DefaultCleanupInterval)
	compute := func(_ context.Context, doc string) ([]highlight.Line, error) {
		start := time.Now()
		lines := hl.Lines(doc)
		log.Debug(log.CatHighlight, "Highlighted document",
			"lines", len(lines), "took", time.Since(start))
		return lines, nil
	}
	return &HighlightCache{
		hl:    hl,
		cache: cachemanager.NewReadThroughCache(store, compute, !enabled),
		ttl:   ttl,
	}
}

// Lines returns the highlighted lines of doc.
func (c *HighlightCache) Lines(doc string) []highlight.Line {
	key := docKey(strconv.FormatBool(c.hl.Options.InlineHeadings) + "\x00" + doc)
	lines, err := c.cache.GetWithRefresh(context.Background(), key, doc, c.ttl)
	if err != nil {
		// unreachable while compute cannot fail
		log.ErrorErr(log.CatCache, "Highlight cache lookup failed", err)
		return c.hl.Lines(doc)
	}
	return lines
}

// Stats returns cache hits and misses.
func (c *HighlightCache) Stats() (hits, misses int64) {
	return c.cache.Stats()
}
