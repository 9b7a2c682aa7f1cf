package cache

import (
	"time"

	cache "github.com/Code-Hex/go-generics-cache"
	"github.com/Code-Hex/go-generics-cache/policy/lru"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var cacheMetrics = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "api_cache",
		Help: "Number of cache lookups per cache name and result",
	},
	[]string{
		"name",
		"result",
	},
)

// Cache is an LRU cache whose items expire after ttl. A zero ttl keeps items until they are evicted.
type Cache[K comparable, V any] struct {
	cache      *cache.Cache[K, V]
	metricName string
	size       int
	ttl        time.Duration
}

func NewLRUCache[K comparable, V any](size int, metricName string, ttl time.Duration) Cache[K, V] {
	return Cache[K, V]{
		cache:      cache.New(cache.AsLRU[K, V](lru.WithCapacity(size))),
		metricName: metricName,
		size:       size,
		ttl:        ttl,
	}
}

func (c *Cache[K, V]) Get(key K) (V, bool) {
	val, ok := c.cache.Get(key)
	if ok {
		cacheMetrics.WithLabelValues(c.metricName, "hit").Inc()
		return val, ok
	}
	cacheMetrics.WithLabelValues(c.metricName, "miss").Inc()
	return val, ok
}

func (c *Cache[K, V]) Set(key K, val V, opts ...cache.ItemOption) {
	if c.ttl > 0 {
		opts = append([]cache.ItemOption{WithExpiration(c.ttl)}, opts...)
	}
	c.cache.Set(key, val, opts...)
}

var WithExpiration = cache.WithExpiration
