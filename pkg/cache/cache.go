// Package cache is the on-disk fetch cache: one file per processed source,
// holding either the extraction result or a tombstone recording that the
// page was fetched once and yielded nothing.
//
// Entries are keyed by the source URL only, not by which extractors produced
// them. Re-running with a different extractor set returns the stale cached
// value; delete the entry (or run `jobsift cache clear`) to force a re-fetch.
package cache

import (
	"encoding/json"
	"fmt"
	"hash/fnv"
	"os"
	"path/filepath"
	"strconv"

	"github.com/jobsift/jobsift/models"
)

// entry is the serialized form of one cache file.
type entry struct {
	// NoData marks a tombstone: the page was fetched but no extractor
	// produced anything usable.
	NoData bool             `json:"no_data"`
	Page   *models.PageData `json:"page,omitempty"`
}

// Cache is a directory of per-source entry files.
type Cache struct {
	root string
}

// New creates the cache directory if needed and returns a Cache over it.
func New(root string) (*Cache, error) {
	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory %s: %w", root, err)
	}
	return &Cache{root: root}, nil
}

// key derives the entry filename from the source URL: a decimal rendering of
// a 64-bit FNV-1a hash. Fast and non-cryptographic; a collision would alias
// two sources onto one entry, which is accepted — the cache is not a
// security boundary.
func (c *Cache) key(url string) string {
	h := fnv.New64a()
	h.Write([]byte(url))
	return strconv.FormatUint(h.Sum64(), 10)
}

// Path returns the file an entry for url lives at, whether or not it exists.
func (c *Cache) Path(url string) string {
	return filepath.Join(c.root, c.key(url))
}

// Lookup reads the entry for url. Returns (nil, false, nil) when no entry
// exists, (nil, true, nil) for a tombstone, and (page, true, nil) for a
// stored result. A present but unreadable or corrupt entry is an error, not
// a miss: silently re-fetching would mask the broken file forever.
func (c *Cache) Lookup(url string) (*models.PageData, bool, error) {
	path := c.Path(url)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read cache entry %s: %w (delete it to force a re-fetch)", path, err)
	}

	var e entry
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, false, fmt.Errorf("corrupt cache entry %s: %w (delete it to force a re-fetch)", path, err)
	}

	if e.NoData {
		return nil, true, nil
	}
	if e.Page == nil {
		return nil, false, fmt.Errorf("corrupt cache entry %s: no page data and no tombstone marker (delete it to force a re-fetch)", path)
	}
	if e.Page.Keywords == nil {
		e.Page.Keywords = make(models.KeywordSet)
	}
	return e.Page, true, nil
}

// Store writes the entry for url. A nil page stores the tombstone. Entries
// for distinct URLs land in distinct files, so concurrent stores for
// different sources never contend; a same-key race is last-write-wins.
func (c *Cache) Store(url string, page *models.PageData) error {
	e := entry{NoData: page == nil, Page: page}

	data, err := json.Marshal(&e)
	if err != nil {
		return fmt.Errorf("failed to encode cache entry for %s: %w", url, err)
	}

	path := c.Path(url)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write cache entry %s: %w", path, err)
	}
	return nil
}

// Remove deletes the entry for url. Removing an absent entry is a no-op.
func (c *Cache) Remove(url string) error {
	err := os.Remove(c.Path(url))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove cache entry for %s: %w", url, err)
	}
	return nil
}

// Clear deletes every entry in the cache directory.
func (c *Cache) Clear() error {
	entries, err := os.ReadDir(c.root)
	if err != nil {
		return fmt.Errorf("failed to list cache directory %s: %w", c.root, err)
	}
	for _, de := range entries {
		if de.IsDir() {
			continue
		}
		if err := os.Remove(filepath.Join(c.root, de.Name())); err != nil {
			return fmt.Errorf("failed to clear cache entry %s: %w", de.Name(), err)
		}
	}
	return nil
}
