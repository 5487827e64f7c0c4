package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-resty/resty/v2"
)

// Client is a thin typed wrapper over the backend's REST surface. Every
// endpoint returns a JSON envelope with a success flag; failures carry an
// error field that is surfaced to the user verbatim.
type Client struct {
	http *resty.Client
}

// New creates a client against the given base URL, e.g.
// "http://localhost:5000/api".
func New(baseURL string) *Client {
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Content-Type", "application/json")

	return &Client{http: httpClient}
}

// SetAuthToken attaches a bearer token to all subsequent requests.
func (c *Client) SetAuthToken(token string) {
	c.http.SetAuthToken(token)
}

// APIError is a backend-reported failure: the request completed but the
// response carried success=false or an HTTP error status.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}

// ErrorMessage returns the backend's error text when err is an APIError
// with a message, else the given fallback. Transport errors and empty
// backend errors both fall back.
func ErrorMessage(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

// envelope is embedded in every response type.
type envelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (e envelope) succeeded() bool { return e.Success }

func (e envelope) errorText() string {
	if e.Error != "" {
		return e.Error
	}
	return e.Message
}

type response interface {
	succeeded() bool
	errorText() string
}

// do executes one request and decodes the envelope. A transport failure is
// returned as-is; a decoded non-success envelope becomes an *APIError.
func (c *Client) do(ctx context.Context, method, path string, query map[string]string, body interface{}, out response) error {
	req := c.http.R().SetContext(ctx)
	if query != nil {
		req.SetQueryParams(query)
	}
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("failed to unmarshal response: %v", err)
	}

	if !out.succeeded() {
		return &APIError{StatusCode: resp.StatusCode(), Message: out.errorText()}
	}
	return nil
}
