package tonapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/avast/retry-go"
	"github.com/go-faster/errors"
	"github.com/tonkeeper/tongo"
	"go.uber.org/ratelimit"

	"github.com/tonkeeper/wallet-activity/pkg/core"
)

const (
	TonApiURL = "https://tonapi.io"
	// TestnetTonApiURL is an endpoint to work with testnet.
	TestnetTonApiURL = "https://testnet.tonapi.io"

	defaultLimit = 20
	maxLimit     = 100
)

// StatusError is returned when tonapi responds with an unexpected status code.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e StatusError) Error() string {
	return "tonapi: status " + strconv.Itoa(e.StatusCode) + ": " + e.Message
}

// Client fetches account events from tonapi v2.
type Client struct {
	endpoint   string
	token      string
	attempts   uint
	delay      time.Duration
	httpClient *http.Client
	limiter    ratelimit.Limiter
}

type Option func(c *Client)

// WithToken configures client to use tonApiKey for authorization.
// When working with tonapi.io, you should consider getting an API key at https://tonconsole.com/.
func WithToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

func WithAttempts(attempts uint) Option {
	return func(c *Client) {
		c.attempts = attempts
	}
}

func WithRetryDelay(delay time.Duration) Option {
	return func(c *Client) {
		c.delay = delay
	}
}

func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithRateLimit limits the number of requests per second sent to tonapi.
func WithRateLimit(rps int) Option {
	return func(c *Client) {
		if rps > 0 {
			c.limiter = ratelimit.New(rps)
		}
	}
}

func NewClient(endpoint string, opts ...Option) *Client {
	if endpoint == "" {
		endpoint = TonApiURL
	}
	c := &Client{
		endpoint:   strings.TrimRight(endpoint, "/"),
		attempts:   3,
		delay:      100 * time.Millisecond,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		limiter:    ratelimit.NewUnlimited(),
	}
	for _, o := range opts {
		o(c)
	}
	if c.attempts == 0 {
		c.attempts = 1
	}
	return c
}

type EventsParams struct {
	// Limit is the number of events to return, 20 by default.
	Limit int
	// BeforeLt returns events older than the given logical time, 0 means the latest events.
	BeforeLt       int64
	AcceptLanguage string
}

// GetAccountEvents returns a page of account events, the newest first.
// It returns core.ErrEntityNotFound if tonapi doesn't know the account.
func (c *Client) GetAccountEvents(ctx context.Context, account tongo.AccountID, params EventsParams) (*core.AccountEvents, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))
	if params.BeforeLt > 0 {
		query.Set("before_lt", strconv.FormatInt(params.BeforeLt, 10))
	}
	u := c.endpoint + "/v2/accounts/" + url.PathEscape(account.ToRaw()) + "/events?" + query.Encode()

	var events core.AccountEvents
	err := c.retry(ctx, func() error {
		events = core.AccountEvents{}
		return c.get(ctx, "get_account_events", u, params.AcceptLanguage, &events)
	})
	if err != nil {
		return nil, err
	}
	return &events, nil
}

// GetAccountEvent returns one event as seen by the account.
// It returns core.ErrEntityNotFound if there is no such event.
func (c *Client) GetAccountEvent(ctx context.Context, account tongo.AccountID, eventID string, acceptLanguage string) (*core.AccountEvent, error) {
	u := c.endpoint + "/v2/accounts/" + url.PathEscape(account.ToRaw()) + "/events/" + url.PathEscape(eventID)
	var event core.AccountEvent
	err := c.retry(ctx, func() error {
		event = core.AccountEvent{}
		return c.get(ctx, "get_account_event", u, acceptLanguage, &event)
	})
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (c *Client) retry(ctx context.Context, f retry.RetryableFunc) error {
	return retry.Do(f,
		retry.Attempts(c.attempts),
		retry.Delay(c.delay),
		retry.RetryIf(isRetryable),
		retry.LastErrorOnly(true),
		retry.Context(ctx),
	)
}

func (c *Client) get(ctx context.Context, method, u, acceptLanguage string, dest any) error {
	c.limiter.Take()
	timer := time.Now()
	status := "error"
	defer func() {
		observeRequest(method, status, time.Since(timer))
	}()

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	request.Header.Set("Accept", "application/json")
	if c.token != "" {
		request.Header.Set("Authorization", "Bearer "+c.token)
	}
	if acceptLanguage != "" {
		request.Header.Set("Accept-Language", acceptLanguage)
	}
	response, err := c.httpClient.Do(request)
	if err != nil {
		return err
	}
	defer response.Body.Close()
	status = strconv.Itoa(response.StatusCode)

	if response.StatusCode == http.StatusNotFound {
		return core.ErrEntityNotFound
	}
	if response.StatusCode != http.StatusOK {
		var body struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(response.Body).Decode(&body)
		return StatusError{StatusCode: response.StatusCode, Message: body.Error}
	}
	if err := json.NewDecoder(response.Body).Decode(dest); err != nil {
		return errors.Wrap(err, "decode response")
	}
	return nil
}

func isRetryable(err error) bool {
	var statusErr StatusError
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode == http.StatusTooManyRequests || statusErr.StatusCode >= 500
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var urlErr *url.Error
	return errors.As(err, &urlErr)
}
