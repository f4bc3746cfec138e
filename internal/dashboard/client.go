// Podium - Paralympics Data API and Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/podium

package dashboard

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"github.com/sony/gobreaker/v2"

	"github.com/tomtom215/podium/internal/config"
	"github.com/tomtom215/podium/internal/logging"
	"github.com/tomtom215/podium/internal/metrics"
)

// BreakerName labels the backend circuit breaker in metrics and logs.
const BreakerName = "backend-api"

// maxResponseBytes bounds how much of the records response is read.
const maxResponseBytes = 16 << 20

// ErrNonSuccessStatus is matched by StatusError.
var ErrNonSuccessStatus = errors.New("non-success status")

// StatusError is returned when the backend answers with anything but 200.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("Failed to fetch data: %d", e.Code)
}

// Is reports whether target is ErrNonSuccessStatus.
func (e *StatusError) Is(target error) bool {
	return target == ErrNonSuccessStatus
}

// ConnectError covers everything else that can go wrong between the dashboard
// and the backend: dial failures, timeouts, an open breaker and a body that
// is not a JSON array of records.
type ConnectError struct {
	Err error
}

func (e *ConnectError) Error() string {
	return fmt.Sprintf("Error connecting to backend: %v", e.Err)
}

func (e *ConnectError) Unwrap() error {
	return e.Err
}

// decodeError marks a response body that could not be decoded.
type decodeError struct {
	err error
}

func (e *decodeError) Error() string { return "decode records: " + e.err.Error() }
func (e *decodeError) Unwrap() error { return e.err }

// Client fetches the flattened records from the backend through a circuit
// breaker so a dead backend is not hammered on every page render.
type Client struct {
	endpoint   string
	httpClient *http.Client
	cb         *gobreaker.CircuitBreaker[[]map[string]any]
}

// NewClient creates a client for the records endpoint described by cfg.
func NewClient(cfg *config.DashboardConfig) *Client {
	return NewClientWithHTTP(cfg.DataEndpointURL(), &http.Client{Timeout: cfg.FetchTimeout})
}

// NewClientWithHTTP creates a client for endpoint using httpClient.
func NewClientWithHTTP(endpoint string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}

	settings := gobreaker.Settings{
		Name:        BreakerName,
		MaxRequests: 3,                // Allow 3 requests in half-open state
		Interval:    time.Minute,      // Reset failure count every minute
		Timeout:     30 * time.Second, // Stay open for 30 seconds
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			// Open after 5 requests with at least 60% failures
			if counts.Requests < 5 {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return failureRatio >= 0.6
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logging.Warn().
				Str("name", name).
				Str("from", stateToString(from)).
				Str("to", stateToString(to)).
				Msg("Circuit breaker state changed")

			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, stateToString(from), stateToString(to)).Inc()

			if to == gobreaker.StateClosed {
				metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)
			}
		},
	}

	metrics.CircuitBreakerState.WithLabelValues(BreakerName).Set(0)

	return &Client{
		endpoint:   endpoint,
		httpClient: httpClient,
		cb:         gobreaker.NewCircuitBreaker[[]map[string]any](settings),
	}
}

// Endpoint returns the URL the client fetches.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// State returns the current breaker state.
func (c *Client) State() gobreaker.State {
	return c.cb.State()
}

// FetchRecords performs one GET of the records endpoint and decodes the body
// into loosely typed records. Numbers are kept as json.Number.
//
// The returned error is a *StatusError for a non-200 answer and a
// *ConnectError for anything else.
func (c *Client) FetchRecords(ctx context.Context) ([]map[string]any, error) {
	start := time.Now()
	records, err := c.execute(func() ([]map[string]any, error) {
		return c.get(ctx)
	})
	metrics.RecordBackendFetch(fetchResult(err), time.Since(start))

	if err != nil {
		var statusErr *StatusError
		if errors.As(err, &statusErr) {
			return nil, statusErr
		}
		return nil, &ConnectError{Err: err}
	}
	return records, nil
}

func (c *Client) get(ctx context.Context) ([]map[string]any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, http.NoBody)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		//nolint:errcheck // drain so the connection can be reused
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{Code: resp.StatusCode}
	}

	var records []map[string]any
	dec := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes))
	dec.UseNumber()
	if err := dec.Decode(&records); err != nil {
		return nil, &decodeError{err: err}
	}
	return records, nil
}

// execute runs fn through the breaker and keeps the breaker metrics current.
func (c *Client) execute(fn func() ([]map[string]any, error)) ([]map[string]any, error) {
	result, err := c.cb.Execute(fn)

	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.CircuitBreakerRequests.WithLabelValues(BreakerName, "rejected").Inc()
		} else {
			metrics.CircuitBreakerRequests.WithLabelValues(BreakerName, "failure").Inc()
			counts := c.cb.Counts()
			metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(BreakerName).Set(float64(counts.ConsecutiveFailures))
		}
		return nil, err
	}

	metrics.CircuitBreakerRequests.WithLabelValues(BreakerName, "success").Inc()
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(BreakerName).Set(0)
	return result, nil
}

// fetchResult maps a fetch error to the dashboard_backend_fetch_total label.
func fetchResult(err error) string {
	var decodeErr *decodeError
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, ErrNonSuccessStatus):
		return "status"
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return "rejected"
	case errors.As(err, &decodeErr):
		return "decode"
	default:
		return "network"
	}
}

// stateToFloat converts circuit breaker state to float for Prometheus
func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

// stateToString converts circuit breaker state to string
func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}
