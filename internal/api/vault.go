package api

import (
	"context"
	"fmt"
)

// CreateVaultRequestParams carries the fields of a reveal request.
type CreateVaultRequestParams struct {
	SecretID     int64  `json:"secret_id"`
	Reason       string `json:"reason,omitempty"`
	ValidMinutes int    `json:"valid_minutes,omitempty"`
}

func (c *Client) ListVaultRequests(ctx context.Context) ([]VaultRequest, error) {
	var out []VaultRequest
	if err := c.Get(ctx, "/vault/requests/", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateVaultRequest(ctx context.Context, params CreateVaultRequestParams) (VaultRequest, error) {
	var out VaultRequest
	if err := c.Post(ctx, "/vault/requests/", params, &out); err != nil {
		return VaultRequest{}, err
	}
	return out, nil
}

func (c *Client) ApproveVaultRequest(ctx context.Context, id int64) error {
	return c.Post(ctx, fmt.Sprintf("/vault/requests/%d/approve", id), nil, nil)
}

func (c *Client) DenyVaultRequest(ctx context.Context, id int64) error {
	return c.Post(ctx, fmt.Sprintf("/vault/requests/%d/deny", id), nil, nil)
}

func (c *Client) CancelVaultRequest(ctx context.Context, id int64) error {
	return c.Post(ctx, fmt.Sprintf("/vault/requests/%d/cancel", id), nil, nil)
}

// RevealApprovedSecret fetches the secret value for an approved
// request. The backend enforces the approval and validity window.
func (c *Client) RevealApprovedSecret(ctx context.Context, secretID int64) (RevealedSecret, error) {
	var out RevealedSecret
	if err := c.Post(ctx, fmt.Sprintf("/vault/requests/secrets/%d/reveal-approved", secretID), nil, &out); err != nil {
		return RevealedSecret{}, err
	}
	return out, nil
}
