package openlp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/charmbracelet/log"
)

const (
	PathPoll        = "/api/poll"
	PathLiveText    = "/api/controller/live/text"
	PathServiceList = "/api/service/list"
)

const (
	defaultUserAgent      = "openlplink/0.1"
	DefaultRequestTimeout = time.Second
	DefaultRetryInterval  = 5 * time.Second
)

var errMissingResults = errors.New("response has no results")

// Client talks to the OpenLP remote API and tracks connection health.
// It is not safe for concurrent use.
type Client struct {
	baseURL       *url.URL
	http          *http.Client
	userAgent     string
	retryInterval time.Duration
	now           func() time.Time
	logger        *log.Logger
	health        Health
}

// Option customizes a Client.
type Option func(*Client)

// WithRequestTimeout bounds every request.
func WithRequestTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

// WithRetryInterval sets how long the client pauses after repeated failures.
func WithRetryInterval(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.retryInterval = d
		}
	}
}

// WithClock replaces time.Now for pause deadlines.
func WithClock(now func() time.Time) Option {
	return func(c *Client) {
		if now != nil {
			c.now = now
		}
	}
}

// WithLogger sets the logger used for health transitions.
func WithLogger(l *log.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewClient builds a Client for the remote at baseURL.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	normalized, err := NormalizeBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	base, err := url.Parse(normalized)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	c := &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: DefaultRequestTimeout,
		},
		userAgent:     defaultUserAgent,
		retryInterval: DefaultRetryInterval,
		now:           time.Now,
		logger:        log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the normalized remote address.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// Health returns the current connection health.
func (c *Client) Health() Health {
	return c.health
}

// Check probes /api/poll without touching connection health. It is used to
// validate a URL before the client goes into service.
func (c *Client) Check(ctx context.Context) error {
	if err := c.fetch(ctx, PathPoll, nil); err != nil {
		return &RequestError{Path: PathPoll, Err: err}
	}
	return nil
}

// Poll fetches the remote's live state. While the client is paused after
// repeated failures it returns ErrPaused without touching the network.
func (c *Client) Poll(ctx context.Context) (Poll, error) {
	if !c.health.ready(c.now()) {
		return Poll{}, ErrPaused
	}
	var poll Poll
	if err := c.Get(ctx, PathPoll, &poll); err != nil {
		return Poll{}, err
	}
	return poll, nil
}

// FetchItem downloads the full item with the given id and classifies it.
// The empty id yields the empty item without any request. ErrRace and
// ErrLookup failures leave connection health unchanged.
func (c *Client) FetchItem(ctx context.Context, id string) (Item, error) {
	if id == "" {
		return Item{}, nil
	}

	var live LiveText
	if err := c.Get(ctx, PathLiveText, &live); err != nil {
		return Item{}, err
	}
	if live.Item != id {
		return Item{}, fmt.Errorf("%w: live text is %q, want %q", ErrRace, live.Item, id)
	}

	var list ServiceList
	if err := c.Get(ctx, PathServiceList, &list); err != nil {
		return Item{}, err
	}
	var matches []ServiceItem
	for _, entry := range list.Items {
		if entry.ID == id {
			matches = append(matches, entry)
		}
	}
	if len(matches) != 1 {
		return Item{}, fmt.Errorf("%w: %d service items match %q", ErrLookup, len(matches), id)
	}

	return Classify(matches[0].withSlides(live.Slides)), nil
}

// Get requests path and decodes the results member of the response envelope
// into dest. Every failure counts against connection health except one
// caused by the caller cancelling ctx.
func (c *Client) Get(ctx context.Context, path string, dest any) error {
	if err := c.fetch(ctx, path, dest); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("openlp %s: %w", path, ctxErr)
		}
		c.recordFailure(path, err)
		return &RequestError{Path: path, Err: err}
	}
	c.recordSuccess()
	return nil
}

func (c *Client) recordFailure(path string, err error) {
	prev := c.health.State
	c.health.fail(c.now(), c.retryInterval)
	if c.health.State != prev {
		c.logger.Warn("connection degraded", "state", c.health.State, "path", path, "err", err)
	}
}

func (c *Client) recordSuccess() {
	if c.health.State != HealthOK {
		c.logger.Info("connection restored", "was", c.health.State)
	}
	c.health.succeed()
}

func (c *Client) fetch(ctx context.Context, path string, dest any) error {
	reqURL := c.baseURL.ResolveReference(&url.URL{Path: path})
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("api %s returned status %d", path, resp.StatusCode)
	}

	var envelope struct {
		Results json.RawMessage `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	if len(envelope.Results) == 0 || string(envelope.Results) == "null" {
		return errMissingResults
	}
	if dest == nil {
		return nil
	}
	if err := json.Unmarshal(envelope.Results, dest); err != nil {
		return fmt.Errorf("decode results: %w", err)
	}
	return nil
}
