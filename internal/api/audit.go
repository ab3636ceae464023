package api

import (
	"context"
	"net/url"
	"strconv"
	"strings"
)

// AuditLogFilter narrows the audit log listing. Zero values are omitted.
type AuditLogFilter struct {
	Category   string
	IncidentID int64
	Limit      int
}

func (c *Client) ListAuditLogs(ctx context.Context, filter AuditLogFilter) ([]AuditLog, error) {
	values := url.Values{}
	if category := strings.TrimSpace(filter.Category); category != "" {
		values.Set("category", category)
	}
	if filter.IncidentID > 0 {
		values.Set("incident_id", strconv.FormatInt(filter.IncidentID, 10))
	}
	if filter.Limit > 0 {
		values.Set("limit", strconv.Itoa(filter.Limit))
	}

	path := "/audit/logs"
	if len(values) > 0 {
		path += "?" + values.Encode()
	}

	var out []AuditLog
	if err := c.Get(ctx, path, &out); err != nil {
		return nil, err
	}
	return out, nil
}
