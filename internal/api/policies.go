package api

import (
	"context"
	"fmt"
)

// PolicyParams carries the writable fields of a policy create. The
// session limit and MFA flag always go out: 0 and false are meaningful
// initial values, not absences.
type PolicyParams struct {
	Name         string `json:"name"`
	Type         string `json:"type,omitempty"`
	Status       string `json:"status,omitempty"`
	TimeStart    string `json:"time_start,omitempty"`
	TimeEnd      string `json:"time_end,omitempty"`
	IPRange      string `json:"ip_range,omitempty"`
	SessionLimit int    `json:"session_limit"`
	RequireMFA   bool   `json:"require_mfa"`
}

// PolicyPatch is a partial policy update. Nil fields stay untouched on
// the backend; a set field is sent even at its zero value, so a patch
// can disable MFA or lift a session limit.
type PolicyPatch struct {
	Name         *string `json:"name,omitempty"`
	Type         *string `json:"type,omitempty"`
	Status       *string `json:"status,omitempty"`
	TimeStart    *string `json:"time_start,omitempty"`
	TimeEnd      *string `json:"time_end,omitempty"`
	IPRange      *string `json:"ip_range,omitempty"`
	SessionLimit *int    `json:"session_limit,omitempty"`
	RequireMFA   *bool   `json:"require_mfa,omitempty"`
}

func (c *Client) ListPolicies(ctx context.Context) ([]Policy, error) {
	var out []Policy
	if err := c.Get(ctx, "/policies/", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreatePolicy(ctx context.Context, params PolicyParams) (Policy, error) {
	var out Policy
	if err := c.Post(ctx, "/policies/", params, &out); err != nil {
		return Policy{}, err
	}
	return out, nil
}

func (c *Client) UpdatePolicy(ctx context.Context, id int64, patch PolicyPatch) (Policy, error) {
	var out Policy
	if err := c.Patch(ctx, fmt.Sprintf("/policies/%d", id), patch, &out); err != nil {
		return Policy{}, err
	}
	return out, nil
}

func (c *Client) DeletePolicy(ctx context.Context, id int64) error {
	return c.Delete(ctx, fmt.Sprintf("/policies/%d", id))
}
