package railapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/aalvaropc/railinfo/internal/domain"
	"github.com/aalvaropc/railinfo/internal/infra/httpclient"
	"github.com/aalvaropc/railinfo/internal/ports"
)

const (
	apiSchedule      = "trainschedule"
	apiLiveStatus    = "livetrainstatus"
	apiSeats         = "checkseatavailability"
	apiFare          = "trainfare"
	apiCoachLayout   = "coachlayout"
	apiCoachPosition = "coachposition"

	successCode = "200"
)

// Client talks to the railway-information HTTP API. Every call is a single
// synchronous GET; there are no retries and nothing is cached.
type Client struct {
	baseURL string
	apiKey  string
	exec    *httpclient.Executor
	log     *slog.Logger
	metrics *metrics
}

type Option func(*Client)

// WithExecutor sets the HTTP executor (tests point it at httptest servers).
func WithExecutor(e *httpclient.Executor) Option {
	return func(c *Client) { c.exec = e }
}

func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.log = l }
}

// New builds a Client for baseURL authenticated with apiKey.
func New(baseURL, apiKey string, opts ...Option) (*Client, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, &domain.OpError{
			Op:   "railapi.new",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("base url is required: %w", domain.ErrInvalidConfig),
		}
	}
	if strings.TrimSpace(apiKey) == "" {
		return nil, &domain.OpError{
			Op:   "railapi.new",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("api key is required: %w", domain.ErrInvalidConfig),
		}
	}

	c := &Client{
		baseURL: strings.TrimSpace(baseURL),
		apiKey:  strings.TrimSpace(apiKey),
		exec:    httpclient.NewExecutor(),
		log:     slog.New(slog.NewJSONHandler(io.Discard, nil)),
		metrics: newMetrics(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

var _ ports.RailInfo = (*Client)(nil)

// Registry exposes the client's request and error counters.
func (c *Client) Registry() *prometheus.Registry {
	return c.metrics.registry
}

func (c *Client) Schedule(ctx context.Context, train domain.TrainNumber) (domain.Schedule, error) {
	doc, err := c.get(ctx, apiSchedule, "trainnumber", train.String())
	if err != nil {
		return domain.Schedule{}, err
	}
	s, err := mapSchedule(train, doc)
	c.observe(apiSchedule, err)
	return s, err
}

func (c *Client) LiveStatus(ctx context.Context, train domain.TrainNumber, date string) (domain.LiveStatus, error) {
	doc, err := c.get(ctx, apiLiveStatus, "trainnumber", train.String(), "date", date)
	if err != nil {
		return domain.LiveStatus{}, err
	}
	ls, err := mapLiveStatus(doc)
	c.observe(apiLiveStatus, err)
	return ls, err
}

func (c *Client) SeatAvailability(ctx context.Context, q domain.JourneyQuery) (domain.SeatAvailability, error) {
	doc, err := c.get(ctx, apiSeats,
		"trainnumber", q.Train.String(),
		"trainStartDate", q.Date,
		"from", q.From,
		"to", q.To,
		"classcode", q.Class,
	)
	if err != nil {
		return domain.SeatAvailability{}, err
	}
	sa, err := mapSeatAvailability(doc)
	c.observe(apiSeats, err)
	return sa, err
}

func (c *Client) Fare(ctx context.Context, q domain.JourneyQuery) (domain.Fare, error) {
	quota := q.Quota
	if quota == "" {
		quota = domain.DefaultQuota
	}
	doc, err := c.get(ctx, apiFare,
		"trainnumber", q.Train.String(),
		"from", q.From,
		"to", q.To,
		"classcode", q.Class,
		"quota", quota,
	)
	if err != nil {
		return domain.Fare{}, err
	}
	f, err := mapFare(doc)
	c.observe(apiFare, err)
	return f, err
}

func (c *Client) CoachLayout(ctx context.Context, train domain.TrainNumber, coach string) (domain.CoachLayout, error) {
	doc, err := c.get(ctx, apiCoachLayout, "trainnumber", train.String(), "coachnumber", coach)
	if err != nil {
		return domain.CoachLayout{}, err
	}
	cl, err := mapCoachLayout(doc)
	c.observe(apiCoachLayout, err)
	return cl, err
}

func (c *Client) CoachPosition(ctx context.Context, train domain.TrainNumber, coach, date string) (domain.CoachPosition, error) {
	doc, err := c.get(ctx, apiCoachPosition, "trainnumber", train.String(), "coachnumber", coach, "traindate", date)
	if err != nil {
		return domain.CoachPosition{}, err
	}
	cp, err := mapCoachPosition(doc)
	c.observe(apiCoachPosition, err)
	return cp, err
}

// get performs the request and validates the response envelope. Errors are
// already counted when get returns them.
func (c *Client) get(ctx context.Context, api string, segments ...string) (any, error) {
	c.metrics.requests.WithLabelValues(api).Inc()

	u := buildURL(c.baseURL, api, c.apiKey, segments...)
	safeURL := redact(u, c.apiKey)
	op := "railapi." + api

	resp, err := c.exec.Get(ctx, u)
	if err != nil {
		runErr := domain.NewRunError(err)
		runErr.Message = redact(runErr.Message, c.apiKey)
		c.log.Warn("railapi.request.failed",
			"api", api,
			"url", safeURL,
			"kind", string(runErr.Kind),
			"message", runErr.Message,
			"duration_ms", resp.Duration.Milliseconds(),
		)
		return nil, c.fail(api, &domain.OpError{
			Op:   op,
			Kind: domain.KindTransport,
			Path: safeURL,
			Err:  fmt.Errorf("%w: %w", domain.ErrTransport, runErr),
		})
	}

	c.log.Debug("railapi.request",
		"api", api,
		"url", safeURL,
		"status", resp.Status,
		"duration_ms", resp.Duration.Milliseconds(),
		"body_bytes", len(resp.BodyBytes),
		"truncated", resp.Truncated,
	)

	if resp.Status < 200 || resp.Status > 299 {
		runErr := &domain.RunError{
			Kind:    domain.RunErrorHTTP,
			Message: fmt.Sprintf("HTTP %d", resp.Status),
		}
		return nil, c.fail(api, &domain.OpError{
			Op:   op,
			Kind: domain.KindTransport,
			Path: safeURL,
			Err:  fmt.Errorf("%w: %w", domain.ErrTransport, runErr),
		})
	}

	if resp.Truncated {
		c.log.Warn("railapi.response.truncated", "api", api, "url", safeURL, "body_bytes", len(resp.BodyBytes))
		return nil, c.fail(api, &domain.OpError{
			Op:   op,
			Kind: domain.KindAPI,
			Path: safeURL,
			Err:  fmt.Errorf("response body exceeds %d bytes: %w", len(resp.BodyBytes), domain.ErrAPI),
		})
	}

	var doc any
	if err := json.Unmarshal(resp.BodyBytes, &doc); err != nil {
		return nil, c.fail(api, &domain.OpError{
			Op:   op,
			Kind: domain.KindAPI,
			Path: safeURL,
			Err:  fmt.Errorf("response body is not valid JSON: %w", domain.ErrAPI),
		})
	}

	code, _ := required(doc, "$.ResponseCode")
	if code != successCode {
		msg := optional(doc, "$.Message", "Unknown error")
		c.log.Warn("railapi.response.error", "api", api, "url", safeURL, "code", code, "message", msg)
		return nil, c.fail(api, &domain.OpError{
			Op:   op,
			Kind: domain.KindAPI,
			Path: safeURL,
			Err:  fmt.Errorf("%s: %w", msg, domain.ErrAPI),
		})
	}

	return doc, nil
}

func (c *Client) fail(api string, err error) error {
	c.observe(api, err)
	return err
}

func (c *Client) observe(api string, err error) {
	if err == nil {
		return
	}
	c.metrics.errors.WithLabelValues(api, string(domain.KindOf(err))).Inc()
}
