package compare

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"
)

// SampleSource fetches sample sequences by file name.
type SampleSource interface {
	SampleData(ctx context.Context, name string) (string, error)
}

// SampleLoader caches sample data fetched from a SampleSource.
type SampleLoader struct {
	src   SampleSource
	cache *cache.Cache
}

// NewSampleLoader wraps src with an in-memory cache. A ttl of zero disables
// caching.
func NewSampleLoader(src SampleSource, ttl time.Duration) *SampleLoader {
	l := &SampleLoader{src: src}
	if ttl > 0 {
		l.cache = cache.New(ttl, 2*ttl)
	}
	return l
}

// SampleData returns the named sample, from cache when possible.
func (l *SampleLoader) SampleData(ctx context.Context, name string) (string, error) {
	if l.cache != nil {
		if v, ok := l.cache.Get(name); ok {
			return v.(string), nil
		}
	}

	data, err := l.src.SampleData(ctx, name)
	if err != nil {
		return "", err
	}

	if l.cache != nil {
		l.cache.Set(name, data, cache.DefaultExpiration)
	}
	return data, nil
}
