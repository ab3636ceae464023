package main

import (
	"context"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/open-pam/console/internal/api"
)

var rolesCmd = &cobra.Command{
	Use:   "roles",
	Short: "Manage roles and their policy and permission bindings.",
}

var rolesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List roles.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, _, client, err := newSession()
		if err != nil {
			return err
		}

		ctx, cancel := signalContext()
		defer cancel()

		roles, err := client.ListRoles(ctx)
		if err != nil {
			return err
		}

		rows := make([][]string, 0, len(roles))
		for _, role := range roles {
			policies := make([]string, 0, len(role.Policies))
			for _, policy := range role.Policies {
				policies = append(policies, policy.Name)
			}
			perms := make([]string, 0, len(role.Permissions))
			for _, perm := range role.Permissions {
				perms = append(perms, perm.Code)
			}
			rows = append(rows, []string{
				strconv.FormatInt(role.ID, 10),
				role.Name,
				orDash(strings.Join(policies, ",")),
				orDash(strings.Join(perms, ",")),
			})
		}
		printTable(cmd, []string{"ID", "NAME", "POLICIES", "PERMISSIONS"}, rows)
		return nil
	},
}

var rolesCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a role.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, _, client, err := newSession()
		if err != nil {
			return err
		}

		ctx, cancel := signalContext()
		defer cancel()

		role, err := client.CreateRole(ctx, strings.TrimSpace(args[0]))
		if err != nil {
			return err
		}
		cmd.Printf("created role %d (%s)\n", role.ID, role.Name)
		return nil
	},
}

var rolesRenameCmd = &cobra.Command{
	Use:   "rename <role-id> <name>",
	Short: "Rename a role.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID("role", args[0])
		if err != nil {
			return err
		}

		_, _, client, err := newSession()
		if err != nil {
			return err
		}

		ctx, cancel := signalContext()
		defer cancel()

		role, err := client.UpdateRole(ctx, id, strings.TrimSpace(args[1]))
		if err != nil {
			return err
		}
		cmd.Printf("role %d renamed to %s\n", role.ID, role.Name)
		return nil
	},
}

var rolesDeleteCmd = &cobra.Command{
	Use:   "delete <role-id>",
	Short: "Delete a role.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID("role", args[0])
		if err != nil {
			return err
		}

		_, _, client, err := newSession()
		if err != nil {
			return err
		}

		ctx, cancel := signalContext()
		defer cancel()

		if err := client.DeleteRole(ctx, id); err != nil {
			return err
		}
		cmd.Printf("role %d deleted\n", id)
		return nil
	},
}

var rolesAttachPolicyCmd = &cobra.Command{
	Use:   "attach-policy <role-id> <policy-id>",
	Short: "Attach a policy to a role.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRoleBinding(cmd, args, "policy", "attached to", (*api.Client).AddPolicyToRole)
	},
}

var rolesDetachPolicyCmd = &cobra.Command{
	Use:   "detach-policy <role-id> <policy-id>",
	Short: "Detach a policy from a role.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRoleBinding(cmd, args, "policy", "detached from", (*api.Client).RemovePolicyFromRole)
	},
}

var rolesGrantCmd = &cobra.Command{
	Use:   "grant <role-id> <permission-id>",
	Short: "Grant a direct permission to a role.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRoleBinding(cmd, args, "permission", "granted to", (*api.Client).AddPermissionToRole)
	},
}

var rolesRevokeCmd = &cobra.Command{
	Use:   "revoke <role-id> <permission-id>",
	Short: "Revoke a direct permission from a role.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRoleBinding(cmd, args, "permission", "revoked from", (*api.Client).RemovePermissionFromRole)
	},
}

func runRoleBinding(cmd *cobra.Command, args []string, kind, verb string, fn func(*api.Client, context.Context, int64, int64) error) error {
	roleID, err := parseID("role", args[0])
	if err != nil {
		return err
	}
	otherID, err := parseID(kind, args[1])
	if err != nil {
		return err
	}

	_, _, client, err := newSession()
	if err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	if err := fn(client, ctx, roleID, otherID); err != nil {
		return err
	}
	cmd.Printf("%s %d %s role %d\n", kind, otherID, verb, roleID)
	return nil
}

func init() {
	rolesCmd.AddCommand(rolesListCmd, rolesCreateCmd, rolesRenameCmd, rolesDeleteCmd,
		rolesAttachPolicyCmd, rolesDetachPolicyCmd, rolesGrantCmd, rolesRevokeCmd)
}
