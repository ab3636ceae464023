package api

import "context"

func (c *Client) GetSettings(ctx context.Context) (Settings, error) {
	var out Settings
	if err := c.Get(ctx, "/settings", &out); err != nil {
		return Settings{}, err
	}
	return out, nil
}

// Settings are patched per section; the backend validates keys.

func (c *Client) UpdateGeneralSettings(ctx context.Context, values map[string]any) error {
	return c.Patch(ctx, "/settings/general", values, nil)
}

func (c *Client) UpdateSecuritySettings(ctx context.Context, values map[string]any) error {
	return c.Patch(ctx, "/settings/security", values, nil)
}

func (c *Client) UpdateIntegrationSettings(ctx context.Context, values map[string]any) error {
	return c.Patch(ctx, "/settings/integrations", values, nil)
}
