package addressbook

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/go-faster/errors"
	"github.com/tonkeeper/tongo"
	"go.uber.org/zap"
	"golang.org/x/exp/maps"
)

const (
	DefaultAddressPath     = "https://raw.githubusercontent.com/tonkeeper/ton-assets/main/accounts.json"
	defaultRefreshInterval = 10 * time.Minute
)

// KnownAddress represents additional manually crafted information about a particular account in the blockchain.
type KnownAddress struct {
	IsScam  bool   `json:"is_scam,omitempty"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Image   string `json:"image,omitempty"`
}

type Option func(o *Options)

type Options struct {
	refreshInterval time.Duration
	client          *http.Client
}

func WithRefreshInterval(interval time.Duration) Option {
	return func(o *Options) {
		o.refreshInterval = interval
	}
}

func WithHTTPClient(client *http.Client) Option {
	return func(o *Options) {
		o.client = client
	}
}

// Book holds information about known accounts manually crafted by the tonkeeper team and the community.
type Book struct {
	mu        sync.RWMutex
	addresses map[tongo.AccountID]KnownAddress

	cancel context.CancelFunc
	done   chan struct{}
}

func (b *Book) GetAddressInfoByAddress(a tongo.AccountID) (KnownAddress, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	address, ok := b.addresses[a]
	return address, ok
}

func (b *Book) GetKnownAddresses() map[tongo.AccountID]KnownAddress {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return maps.Clone(b.addresses)
}

// NewAddressBook starts loading the list of known accounts from addressPath in background
// and refreshes it periodically until Close is called.
func NewAddressBook(logger *zap.Logger, addressPath string, opts ...Option) *Book {
	options := Options{
		refreshInterval: defaultRefreshInterval,
		client:          &http.Client{Timeout: time.Minute},
	}
	for _, opt := range opts {
		opt(&options)
	}
	ctx, cancel := context.WithCancel(context.Background())
	book := &Book{
		addresses: make(map[tongo.AccountID]KnownAddress),
		cancel:    cancel,
		done:      make(chan struct{}),
	}
	go func() {
		defer close(book.done)
		ticker := time.NewTicker(options.refreshInterval)
		defer ticker.Stop()
		for {
			book.refreshAddresses(ctx, logger, options.client, addressPath)
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}
	}()
	return book
}

// Close stops refreshing and waits for the background loop to exit.
func (b *Book) Close() {
	b.cancel()
	<-b.done
}

func (b *Book) refreshAddresses(ctx context.Context, logger *zap.Logger, client *http.Client, addressPath string) {
	addresses, err := downloadJson[KnownAddress](ctx, client, addressPath)
	if err != nil {
		if ctx.Err() == nil {
			logger.Warn("failed to load accounts.json", zap.Error(err))
		}
		return
	}
	known := make(map[tongo.AccountID]KnownAddress, len(addresses))
	for _, item := range addresses {
		account, err := tongo.ParseAddress(item.Address)
		if err != nil {
			continue
		}
		item.Address = account.ID.ToRaw()
		known[account.ID] = item
	}
	b.mu.Lock()
	b.addresses = known
	b.mu.Unlock()
}

func downloadJson[T any](ctx context.Context, client *http.Client, url string) ([]T, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	response, err := client.Do(request)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()
	if response.StatusCode >= 300 {
		return nil, errors.Errorf("invalid status code %v", response.StatusCode)
	}
	var data []T
	if err = json.NewDecoder(response.Body).Decode(&data); err != nil {
		return nil, errors.Wrap(err, "decode")
	}
	return data, nil
}
