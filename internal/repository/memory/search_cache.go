package memory

import (
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
)

// SearchCache memoizes catalog listing responses per unique parameter
// combination. It sits at the query boundary: the scoring pipeline itself
// stays pure, and the whole cache is flushed on any catalog mutation.
type SearchCache struct {
	cache *cache.Cache
}

func NewSearchCache() *SearchCache {
	// Short default expiration; the back-office edits rarely, the storefront
	// reads often.
	c := cache.New(5*time.Minute, 10*time.Minute)
	return &SearchCache{
		cache: c,
	}
}

// ListingKey identifies one page of one filtered listing.
func ListingKey(query string, page, pageSize int, categoryID string) string {
	return fmt.Sprintf("listing:%s:%d:%d:%s", query, page, pageSize, categoryID)
}

func (c *SearchCache) Get(key string) (interface{}, bool) {
	return c.cache.Get(key)
}

func (c *SearchCache) Set(key string, value interface{}) {
	c.cache.Set(key, value, cache.DefaultExpiration)
}

// Flush drops every cached listing. Called after create/update/delete so
// stale pages never outlive a catalog change.
func (c *SearchCache) Flush() {
	c.cache.Flush()
}
