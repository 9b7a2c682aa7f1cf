package api

import (
	"time"

	"github.com/go-faster/errors"
	"go.uber.org/zap"

	"github.com/tonkeeper/wallet-activity/pkg/activity"
	"github.com/tonkeeper/wallet-activity/pkg/cache"
)

const (
	defaultCacheSize = 10_000
	defaultCacheTTL  = 10 * time.Second
)

type Handler struct {
	logger      *zap.Logger
	source      eventSource
	mapper      *activity.Mapper
	defaultLang string
	history     cache.Cache[historyKey, History]
}

// Options configures the Handler.
type Options struct {
	source      eventSource
	mapper      *activity.Mapper
	defaultLang string
	cacheSize   int
	cacheTTL    time.Duration
}

type Option func(o *Options)

func WithEventSource(source eventSource) Option {
	return func(o *Options) {
		o.source = source
	}
}

func WithMapper(mapper *activity.Mapper) Option {
	return func(o *Options) {
		o.mapper = mapper
	}
}

// WithDefaultLang sets the language used when a request doesn't ask for one.
func WithDefaultLang(lang string) Option {
	return func(o *Options) {
		o.defaultLang = lang
	}
}

// WithCache configures the cache of mapped history pages.
func WithCache(size int, ttl time.Duration) Option {
	return func(o *Options) {
		o.cacheSize = size
		o.cacheTTL = ttl
	}
}

func NewHandler(logger *zap.Logger, opts ...Option) (*Handler, error) {
	options := &Options{
		defaultLang: "en",
		cacheSize:   defaultCacheSize,
		cacheTTL:    defaultCacheTTL,
	}
	for _, o := range opts {
		o(options)
	}
	if options.source == nil {
		return nil, errors.New("event source is not configured")
	}
	if options.mapper == nil {
		options.mapper = activity.NewMapper(activity.WithLogger(logger))
	}
	return &Handler{
		logger:      logger,
		source:      options.source,
		mapper:      options.mapper,
		defaultLang: options.defaultLang,
		history:     cache.NewLRUCache[historyKey, History](options.cacheSize, "history", options.cacheTTL),
	}, nil
}
