package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/open-pam/console/internal/access"
)

var permissionsCmd = &cobra.Command{
	Use:   "permissions",
	Short: "Inspect the permission catalog and effective grants.",
}

var permissionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the permission catalog.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, _, client, err := newSession()
		if err != nil {
			return err
		}

		ctx, cancel := signalContext()
		defer cancel()

		perms, err := client.ListPermissions(ctx)
		if err != nil {
			return err
		}

		rows := make([][]string, 0, len(perms))
		for _, perm := range perms {
			description := perm.Description
			if description == "" {
				description = access.Describe(perm.Code)
			}
			rows = append(rows, []string{
				strconv.FormatInt(perm.ID, 10),
				perm.Code,
				orDash(description),
			})
		}
		printTable(cmd, []string{"ID", "CODE", "DESCRIPTION"}, rows)
		return nil
	},
}

var permissionsEffectiveCmd = &cobra.Command{
	Use:   "effective <user-id>",
	Short: "Show a user's effective permissions with contributing roles and policies.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID("user", args[0])
		if err != nil {
			return err
		}

		_, _, client, err := newSession()
		if err != nil {
			return err
		}

		ctx, cancel := signalContext()
		defer cancel()

		users, err := client.ListUsers(ctx)
		if err != nil {
			return err
		}
		found := false
		var entries []access.Entry
		for _, user := range users {
			if user.ID != id {
				continue
			}
			found = true
			catalog, err := client.ListPermissions(ctx)
			if err != nil {
				return err
			}
			entries = access.EffectivePermissions(user.Roles, catalog)
			break
		}
		if !found {
			return fmt.Errorf("user %d not found", id)
		}

		rows := make([][]string, 0, len(entries))
		for _, entry := range entries {
			status := "granted"
			if !entry.Granted {
				status = "denied"
			}
			rows = append(rows, []string{
				entry.Code,
				status,
				orDash(strings.Join(entry.Roles, ",")),
				orDash(strings.Join(entry.Policies, ",")),
				orDash(entry.Description),
			})
		}
		printTable(cmd, []string{"CODE", "STATUS", "ROLES", "POLICIES", "DESCRIPTION"}, rows)
		return nil
	},
}

func init() {
	permissionsCmd.AddCommand(permissionsListCmd, permissionsEffectiveCmd)
}
