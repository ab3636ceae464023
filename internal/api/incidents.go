package api

import (
	"context"
	"fmt"
)

func (c *Client) GetIncident(ctx context.Context, id int64) (Incident, error) {
	var out Incident
	if err := c.Get(ctx, fmt.Sprintf("/incidents/%d", id), &out); err != nil {
		return Incident{}, err
	}
	return out, nil
}

// GetIncidentTimeline fetches the v3 correlated timeline used by the
// SOC investigation view and the playbook heuristic.
func (c *Client) GetIncidentTimeline(ctx context.Context, id int64) ([]TimelineEvent, error) {
	var out []TimelineEvent
	if err := c.Get(ctx, fmt.Sprintf("/incidents/%d/timeline/v3", id), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) SetIncidentStatus(ctx context.Context, id int64, status string) (Incident, error) {
	var out Incident
	if err := c.Patch(ctx, fmt.Sprintf("/incidents/%d/status", id), map[string]string{"status": status}, &out); err != nil {
		return Incident{}, err
	}
	return out, nil
}

// SOC response actions. The backend performs the actual blocking and
// isolation; these are requests, not local decisions.

func (c *Client) BlockUser(ctx context.Context, userID int64, reason string) error {
	body := map[string]any{"user_id": userID, "reason": reason}
	return c.Post(ctx, "/soc/actions/block-user", body, nil)
}

func (c *Client) IsolateSession(ctx context.Context, sessionID, reason string) error {
	body := map[string]any{"session_id": sessionID, "reason": reason}
	return c.Post(ctx, "/soc/actions/isolate-session", body, nil)
}
