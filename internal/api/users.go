package api

import (
	"context"
	"fmt"
)

// CreateUserParams carries the fields of a user create request.
type CreateUserParams struct {
	Email    string  `json:"email"`
	Password string  `json:"password"`
	RoleIDs  []int64 `json:"role_ids,omitempty"`
}

func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	var out []User
	if err := c.Get(ctx, "/users/", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateUser(ctx context.Context, params CreateUserParams) (User, error) {
	var out User
	if err := c.Post(ctx, "/users/", params, &out); err != nil {
		return User{}, err
	}
	return out, nil
}

// Me returns the authenticated operator's full profile. The backend
// refuses this call while a password reset is pending.
func (c *Client) Me(ctx context.Context) (User, error) {
	var out User
	if err := c.Get(ctx, "/users/me", &out); err != nil {
		return User{}, err
	}
	return out, nil
}

func (c *Client) ResetUserPassword(ctx context.Context, id int64) error {
	return c.Post(ctx, fmt.Sprintf("/users/%d/reset-password", id), nil, nil)
}

// ActivateUser and DeactivateUser keep the backend's doubled path
// segment; the router mounts the users module under its own prefix.
func (c *Client) ActivateUser(ctx context.Context, id int64) error {
	return c.Post(ctx, fmt.Sprintf("/users/users/%d/activate", id), nil, nil)
}

func (c *Client) DeactivateUser(ctx context.Context, id int64) error {
	return c.Post(ctx, fmt.Sprintf("/users/users/%d/deactivate", id), nil, nil)
}

func (c *Client) DeleteUser(ctx context.Context, id int64) error {
	return c.Delete(ctx, fmt.Sprintf("/users/%d", id))
}
