package textformat

import (
	"regexp"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultPatternCacheCapacity bounds the number of compiled number patterns kept in memory.
const DefaultPatternCacheCapacity = 30

type patternCache struct {
	mu    sync.RWMutex
	cache *lru.Cache[string, *regexp.Regexp]
}

var numberPatterns = newPatternCache(DefaultPatternCacheCapacity)

func newPatternCache(capacity int) *patternCache {
	pc := &patternCache{}
	pc.resize(capacity)
	return pc
}

func (pc *patternCache) resize(capacity int) {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	if capacity <= 0 {
		pc.cache = nil
		return
	}
	cache, err := lru.New[string, *regexp.Regexp](capacity)
	if err != nil {
		pc.cache = nil
		return
	}
	pc.cache = cache
}

// get returns the cached pattern for key, compiling and storing it when absent.
func (pc *patternCache) get(key string, compile func() *regexp.Regexp) *regexp.Regexp {
	pc.mu.RLock()
	cache := pc.cache
	pc.mu.RUnlock()

	if cache == nil {
		return compile()
	}
	if re, ok := cache.Get(key); ok {
		return re
	}
	re := compile()
	cache.Add(key, re)
	return re
}

func (pc *patternCache) len() int {
	pc.mu.RLock()
	defer pc.mu.RUnlock()
	if pc.cache == nil {
		return 0
	}
	return pc.cache.Len()
}

// SetPatternCacheCapacity resizes the shared cache of compiled number
// patterns. A capacity of zero or less disables caching.
func SetPatternCacheCapacity(capacity int) {
	numberPatterns.resize(capacity)
}
