package client

import (
	"context"
	"net/http"

	"storefront/internal/models"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userPayload struct {
	User *models.User `json:"user"`
}

// Login authenticates and stores the session cookie in the client's jar.
func (c *Client) Login(ctx context.Context, email, password string) (*models.User, error) {
	var payload userPayload
	if err := c.do(ctx, http.MethodPost, "/auth/login", nil, loginRequest{Email: email, Password: password}, &payload); err != nil {
		return nil, err
	}
	return payload.User, nil
}

// Logout ends the session server-side and drops the cookie.
func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/auth/logout", nil, nil, nil)
}

// Me returns the user behind the current session.
func (c *Client) Me(ctx context.Context) (*models.User, error) {
	var payload userPayload
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, nil, &payload); err != nil {
		return nil, err
	}
	return payload.User, nil
}
