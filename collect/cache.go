package collect

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"
)

// CacheFetch keeps fetched pages for a while; several feeds read the
// same page.
type CacheFetch struct {
	Fetcher
	pages *cache.Cache
}

func NewCacheFetch(f Fetcher, ttl time.Duration) *CacheFetch {
	return &CacheFetch{
		Fetcher: f,
		pages:   cache.New(ttl, 2*ttl),
	}
}

func (c *CacheFetch) Get(ctx context.Context, url string) ([]byte, error) {
	if body, ok := c.pages.Get(url); ok {
		return body.([]byte), nil
	}

	body, err := c.Fetcher.Get(ctx, url)
	if err != nil {
		return nil, err
	}
	c.pages.SetDefault(url, body)

	return body, nil
}
