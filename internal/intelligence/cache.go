package intelligence

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

const cacheDateLayout = "2006-01-02"

// cacheEntry is the single-slot on-disk cache format.
type cacheEntry struct {
	Date    string `json:"date"`
	Content string `json:"content"`
}

// RecommendationCache stores at most one recommendation, valid only on
// the calendar day it was written. It is not keyed by project set: only
// a new day or a forced refresh invalidates it.
type RecommendationCache struct {
	path string
	mu   sync.Mutex
}

// NewRecommendationCache creates a cache backed by the given file.
func NewRecommendationCache(path string) *RecommendationCache {
	return &RecommendationCache{path: path}
}

// DefaultCachePath resolves the cache file location:
// MUXDASH_CACHE_FILE, else ~/.muxdash/recommendation.json.
func DefaultCachePath() (string, error) {
	if path := os.Getenv("MUXDASH_CACHE_FILE"); path != "" {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".muxdash", "recommendation.json"), nil
}

// Load returns the cached content iff an entry exists whose stored date
// equals today. Anything else (missing file, unreadable JSON, another
// date) is a miss, never an error.
func (c *RecommendationCache) Load(today time.Time) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, err := os.ReadFile(c.path)
	if err != nil {
		return "", false
	}
	var entry cacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return "", false
	}
	if entry.Date != today.Format(cacheDateLayout) || entry.Content == "" {
		return "", false
	}
	return entry.Content, true
}

// Save overwrites the slot with today's entry. Caching is best-effort:
// write failures are swallowed so they never surface to the user. The
// write is a single atomic replace, so readers never observe a partial
// entry.
func (c *RecommendationCache) Save(today time.Time, content string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry := cacheEntry{Date: today.Format(cacheDateLayout), Content: content}
	data, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		return
	}
	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return
	}
	tmp := c.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return
	}
	_ = os.Rename(tmp, c.path)
}
