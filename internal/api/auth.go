package api

import (
	"context"
	"net/url"
)

// TokenResponse is the login payload. The token is decoded client-side
// for display only; the backend re-derives everything from it.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type,omitempty"`
}

// LoginCredentials authenticates with form-encoded credentials, per
// the backend's OAuth2 password-flow contract.
func (c *Client) LoginCredentials(ctx context.Context, email, password string) (TokenResponse, error) {
	values := url.Values{}
	values.Set("username", email)
	values.Set("password", password)

	var out TokenResponse
	if err := c.PostForm(ctx, "/auth/login", values, &out); err != nil {
		return TokenResponse{}, err
	}
	return out, nil
}

// RequestPasswordReset asks the backend to send a reset token to the
// given address. Always answers 2xx for unknown addresses.
func (c *Client) RequestPasswordReset(ctx context.Context, email string) error {
	return c.Post(ctx, "/auth/password-reset/request", map[string]string{"email": email}, nil)
}

// ResetPassword completes a password reset with the emailed token.
func (c *Client) ResetPassword(ctx context.Context, token, newPassword string) error {
	body := map[string]string{"token": token, "new_password": newPassword}
	return c.Post(ctx, "/auth/reset-password", body, nil)
}

// ChangePassword rotates the current operator's password.
func (c *Client) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	body := map[string]string{"old_password": oldPassword, "new_password": newPassword}
	return c.Post(ctx, "/auth/change-password", body, nil)
}
