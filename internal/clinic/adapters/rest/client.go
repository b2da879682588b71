// Package rest provides repository implementations backed by the HTTP API of
// an upstream clinicdesk instance.
package rest

import (
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPError is returned when the upstream responds with a non-2xx status.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("upstream returned status %d: %s", e.StatusCode, e.Body)
}

// Client wraps the resty client shared by the REST repositories.
type Client struct {
	http *resty.Client
}

// NewClient creates a client against the given base URL, e.g.
// "https://clinic.example.com/api/v1".
func NewClient(baseURL string, timeout time.Duration) *Client {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &Client{http: client}
}

// SetAuthToken attaches a bearer token to every upstream request.
func (c *Client) SetAuthToken(token string) {
	c.http.SetAuthToken(token)
}

func httpError(resp *resty.Response) *HTTPError {
	return &HTTPError{
		StatusCode: resp.StatusCode(),
		Body:       string(resp.Body()),
	}
}
