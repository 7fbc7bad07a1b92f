package calendar

import (
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Cache memoises grid shapes. Grids are deterministic in (month, firstWeekday,
// zone), so entries never go stale and live until evicted by the janitor.
type Cache struct {
	c *gocache.Cache
}

// NewCache returns a cache whose entries expire after ttl of inactivity.
func NewCache(ttl time.Duration) *Cache {
	return &Cache{c: gocache.New(ttl, 2*ttl)}
}

// Grid returns the cached grid for month, building it on a miss.
func (c *Cache) Grid(month time.Time, firstWeekday time.Weekday) Grid {
	key := fmt.Sprintf("%04d-%02d/%d/%s", month.Year(), month.Month(), firstWeekday, month.Location())
	if v, ok := c.c.Get(key); ok {
		return v.(Grid).clone()
	}
	g := BuildMonthGrid(month, firstWeekday)
	c.c.Set(key, g, gocache.DefaultExpiration)
	return g.clone()
}

// Len reports how many grids are cached.
func (c *Cache) Len() int {
	return c.c.ItemCount()
}
