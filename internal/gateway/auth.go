package gateway

import (
	"context"
	"net/http"

	"storefront/internal/models"
)

type loginRequest struct {
	UsernameOrEmail string `json:"usernameOrEmail"`
	Password        string `json:"password"`
}

func (c *Client) Login(ctx context.Context, usernameOrEmail, password string) (*models.AuthResponse, error) {
	var resp models.AuthResponse

	req := loginRequest{UsernameOrEmail: usernameOrEmail, Password: password}
	if err := c.do(ctx, http.MethodPost, "/auth/login", "/auth/login", nil, req, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

func (c *Client) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	var resp models.AuthResponse

	if err := c.do(ctx, http.MethodPost, "/auth/register", "/auth/register", nil, req, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

// Me validates the currently attached token against the identity
// endpoint and returns the profile it maps to.
func (c *Client) Me(ctx context.Context) (*models.User, error) {
	var user models.User

	if err := c.do(ctx, http.MethodGet, "/auth/me", "/auth/me", nil, nil, &user); err != nil {
		return nil, err
	}

	return &user, nil
}
