package api

import "context"

// StartSessionParams carries the fields of a session start request.
type StartSessionParams struct {
	Target   string `json:"target"`
	Protocol string `json:"protocol,omitempty"`
	Reason   string `json:"reason,omitempty"`
}

// Session endpoints keep the backend's doubled path segment; the
// sessions module is mounted under its own prefix.

func (c *Client) ListSessions(ctx context.Context) ([]Session, error) {
	var out []Session
	if err := c.Get(ctx, "/sessions/sessions/", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) StartSession(ctx context.Context, params StartSessionParams) (Session, error) {
	var out Session
	if err := c.Post(ctx, "/sessions/sessions/start", params, &out); err != nil {
		return Session{}, err
	}
	return out, nil
}

func (c *Client) TerminateSession(ctx context.Context, id string) error {
	return c.Post(ctx, "/sessions/sessions/terminate/"+id, nil, nil)
}
