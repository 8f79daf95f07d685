package service

import (
	"sync"

	"github.com/mwhite7112/woodpantry-drinks/internal/metrics"
)

// drinkCache maps normalized names to records. Entries are never evicted.
type drinkCache struct {
	mu      sync.Mutex
	entries map[string]DrinkRecord
}

func newDrinkCache() *drinkCache {
	return &drinkCache{entries: make(map[string]DrinkRecord)}
}

func (c *drinkCache) get(key string) (DrinkRecord, bool) {
	c.mu.Lock()
	rec, ok := c.entries[key]
	c.mu.Unlock()

	if ok {
		metrics.DrinkCacheLookups.WithLabelValues("hit").Inc()
	} else {
		metrics.DrinkCacheLookups.WithLabelValues("miss").Inc()
	}
	return rec, ok
}

// put stores rec under its own normalized name and under every extra key,
// overwriting whatever was there.
func (c *drinkCache) put(rec DrinkRecord, aliases ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[Normalize(rec.Name)] = rec
	for _, a := range aliases {
		if k := Normalize(a); k != "" {
			c.entries[k] = rec
		}
	}
	metrics.DrinkCacheEntries.Set(float64(len(c.entries)))
}

func (c *drinkCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// referenceSets holds the names listed by the alcoholic and non-alcoholic
// filters. They are fetched once; a failed load is retried on the next call.
type referenceSets struct {
	mu           sync.Mutex
	loaded       bool
	alcoholic    map[string]struct{}
	nonAlcoholic map[string]struct{}
}
