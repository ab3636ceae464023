package api

import (
	"context"
	"fmt"
)

func (c *Client) ListRoles(ctx context.Context) ([]Role, error) {
	var out []Role
	if err := c.Get(ctx, "/roles/", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateRole(ctx context.Context, name string) (Role, error) {
	var out Role
	if err := c.Post(ctx, "/roles/", map[string]string{"name": name}, &out); err != nil {
		return Role{}, err
	}
	return out, nil
}

func (c *Client) UpdateRole(ctx context.Context, id int64, name string) (Role, error) {
	var out Role
	if err := c.Patch(ctx, fmt.Sprintf("/roles/%d", id), map[string]string{"name": name}, &out); err != nil {
		return Role{}, err
	}
	return out, nil
}

func (c *Client) DeleteRole(ctx context.Context, id int64) error {
	return c.Delete(ctx, fmt.Sprintf("/roles/%d", id))
}

// Role to policy relationship endpoints.

func (c *Client) AddPolicyToRole(ctx context.Context, roleID, policyID int64) error {
	return c.Post(ctx, fmt.Sprintf("/roles/%d/add_policy/%d", roleID, policyID), nil, nil)
}

func (c *Client) RemovePolicyFromRole(ctx context.Context, roleID, policyID int64) error {
	return c.Post(ctx, fmt.Sprintf("/roles/%d/remove_policy/%d", roleID, policyID), nil, nil)
}

// Permission catalog and role to permission relationship endpoints.

func (c *Client) ListPermissions(ctx context.Context) ([]Permission, error) {
	var out []Permission
	if err := c.Get(ctx, "/permissions/", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) AddPermissionToRole(ctx context.Context, roleID, permissionID int64) error {
	return c.Post(ctx, fmt.Sprintf("/permissions/%d/add/%d", roleID, permissionID), nil, nil)
}

func (c *Client) RemovePermissionFromRole(ctx context.Context, roleID, permissionID int64) error {
	return c.Post(ctx, fmt.Sprintf("/permissions/%d/remove/%d", roleID, permissionID), nil, nil)
}
