package client

import (
	"context"
	"net/http"

	"coursehub/models"
)

type authResponse struct {
	envelope
	User  *models.AuthUser `json:"user"`
	Token string           `json:"token"`
}

// Login authenticates by email and returns the account identity. When the
// backend issues a token it is attached to subsequent requests.
func (c *Client) Login(ctx context.Context, email, password string) (*models.AuthUser, error) {
	body := map[string]string{"email": email, "password": password}

	var out authResponse
	if err := c.do(ctx, http.MethodPost, "/login", nil, body, &out); err != nil {
		return nil, err
	}
	if out.Token != "" {
		c.SetAuthToken(out.Token)
	}
	return out.User, nil
}

// Signup creates a new account. Role defaults to student on the backend.
func (c *Client) Signup(ctx context.Context, name, email, password, role string) (*models.AuthUser, error) {
	body := map[string]string{"name": name, "email": email, "password": password, "role": role}

	var out authResponse
	if err := c.do(ctx, http.MethodPost, "/signup", nil, body, &out); err != nil {
		return nil, err
	}
	return out.User, nil
}

type healthResponse struct {
	envelope
	Status string `json:"status"`
}

func (e healthResponse) succeeded() bool { return e.Status == "ok" || e.Success }

// Health pings the backend.
func (c *Client) Health(ctx context.Context) error {
	var out healthResponse
	return c.do(ctx, http.MethodGet, "/health", nil, nil, &out)
}
