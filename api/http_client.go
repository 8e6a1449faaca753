// api/http_client.go
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/sony/gobreaker/v2"
)

// ErrUnexpectedStatus is wrapped by StatusError for non-2xx responses.
var ErrUnexpectedStatus = errors.New("unexpected status code")

// ErrCircuitOpen is returned while the breaker rejects calls.
var ErrCircuitOpen = errors.New("room service circuit open")

// StatusError carries the status of a failed response.
type StatusError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: %s", ErrUnexpectedStatus, e.Status)
}

func (e *StatusError) Unwrap() error {
	return ErrUnexpectedStatus
}

// BreakerSettings tunes the circuit breaker wrapped around every request.
type BreakerSettings struct {
	Name             string
	FailureThreshold uint32
	OpenTimeout      time.Duration
}

// HTTPClient struct to hold base URL and HTTP client configuration
type HTTPClient struct {
	BaseURL    string
	HTTPClient *http.Client
	breaker    *gobreaker.CircuitBreaker[any]
}

// NewHTTPClient creates a new instance of HTTPClient with default settings
func NewHTTPClient(baseURL string) *HTTPClient {
	return NewHTTPClientWithBreaker(baseURL, 10*time.Second, BreakerSettings{
		Name:             "room-api",
		FailureThreshold: 5,
		OpenTimeout:      30 * time.Second,
	})
}

// NewHTTPClientWithBreaker creates an HTTPClient whose calls trip a breaker
// after FailureThreshold consecutive transport or 5xx failures.
func NewHTTPClientWithBreaker(baseURL string, timeout time.Duration, bs BreakerSettings) *HTTPClient {
	settings := gobreaker.Settings{
		Name:    bs.Name,
		Timeout: bs.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= bs.FailureThreshold
		},
		// 4xx means the request was wrong, not that the service is down.
		IsSuccessful: func(err error) bool {
			var se *StatusError
			if errors.As(err, &se) {
				return se.StatusCode < 500
			}
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Printf("[HTTPClient] circuit breaker %s: %s -> %s", name, from, to)
		},
	}

	return &HTTPClient{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: timeout, // Set a timeout for requests
		},
		breaker: gobreaker.NewCircuitBreaker[any](settings),
	}
}

// Request makes an HTTP request to the API and decodes the response
func (c *HTTPClient) Request(ctx context.Context, method, endpoint string, headers map[string]string, body interface{}, response interface{}) error {
	_, err := c.breaker.Execute(func() (any, error) {
		return nil, c.do(ctx, method, endpoint, headers, body, response)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return fmt.Errorf("%w: %s %s", ErrCircuitOpen, method, endpoint)
	}
	return err
}

func (c *HTTPClient) do(ctx context.Context, method, endpoint string, headers map[string]string, body interface{}, response interface{}) error {
	var requestBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		requestBody = bytes.NewReader(jsonBody)
	}

	url := c.BaseURL + endpoint
	req, err := http.NewRequestWithContext(ctx, method, url, requestBody)
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	res, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return err
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return &StatusError{StatusCode: res.StatusCode, Status: res.Status, Body: string(resBody)}
	}

	if response != nil && len(resBody) > 0 {
		if err := json.Unmarshal(resBody, response); err != nil {
			return fmt.Errorf("failed to decode response from %s: %w", endpoint, err)
		}
	}

	return nil
}
