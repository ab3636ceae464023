package main

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/open-pam/console/internal/api"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "View and patch backend configuration sections.",
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show all configuration sections.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, _, client, err := newSession()
		if err != nil {
			return err
		}

		ctx, cancel := signalContext()
		defer cancel()

		settings, err := client.GetSettings(ctx)
		if err != nil {
			return err
		}

		printSettingsSection(cmd, "general", settings.General)
		printSettingsSection(cmd, "security", settings.Security)
		printSettingsSection(cmd, "integrations", settings.Integrations)
		return nil
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <section> <key=value> [key=value ...]",
	Short: "Patch keys in one section: general, security or integrations.",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		section := strings.ToLower(strings.TrimSpace(args[0]))
		var patch func(*api.Client, context.Context, map[string]any) error
		switch section {
		case "general":
			patch = (*api.Client).UpdateGeneralSettings
		case "security":
			patch = (*api.Client).UpdateSecuritySettings
		case "integrations":
			patch = (*api.Client).UpdateIntegrationSettings
		default:
			return fmt.Errorf("unknown settings section %q", args[0])
		}

		values := make(map[string]any, len(args)-1)
		for _, pair := range args[1:] {
			key, value, ok := strings.Cut(pair, "=")
			if !ok || strings.TrimSpace(key) == "" {
				return fmt.Errorf("invalid assignment %q, want key=value", pair)
			}
			values[strings.TrimSpace(key)] = coerceSettingValue(value)
		}

		_, _, client, err := newSession()
		if err != nil {
			return err
		}

		ctx, cancel := signalContext()
		defer cancel()

		if err := patch(client, ctx, values); err != nil {
			return err
		}
		cmd.Printf("%s settings updated (%d keys)\n", section, len(values))
		return nil
	},
}

// coerceSettingValue keeps bools and numbers typed so the backend
// does not receive everything as strings.
func coerceSettingValue(raw string) any {
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return raw
	}
	switch v.(type) {
	case bool, float64, nil:
		return v
	default:
		return raw
	}
}

func printSettingsSection(cmd *cobra.Command, name string, values map[string]any) {
	cmd.Printf("[%s]\n", name)
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		cmd.Printf("  %s = %v\n", key, values[key])
	}
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd, settingsSetCmd)
}
