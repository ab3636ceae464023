package main

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/open-pam/console/internal/api"
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Manage console operators and managed accounts.",
}

var usersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List users.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
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

		rows := make([][]string, 0, len(users))
		for _, user := range users {
			names := make([]string, 0, len(user.Roles))
			for _, role := range user.Roles {
				names = append(names, role.Name)
			}
			rows = append(rows, []string{
				strconv.FormatInt(user.ID, 10),
				user.Email,
				yesNo(user.IsActive),
				orDash(strings.Join(names, ",")),
			})
		}
		printTable(cmd, []string{"ID", "EMAIL", "ACTIVE", "ROLES"}, rows)
		return nil
	},
}

var (
	userCreateEmail    string
	userCreatePassword string
	userCreateRoleIDs  []int64
)

var usersCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a user.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		email := strings.TrimSpace(userCreateEmail)
		if email == "" {
			return errors.New("--email is required")
		}

		_, _, client, err := newSession()
		if err != nil {
			return err
		}

		password := userCreatePassword
		if password == "" {
			password, err = promptNewPassword(cmd)
			if err != nil {
				return err
			}
		}

		ctx, cancel := signalContext()
		defer cancel()

		user, err := client.CreateUser(ctx, api.CreateUserParams{
			Email:    email,
			Password: password,
			RoleIDs:  userCreateRoleIDs,
		})
		if err != nil {
			return err
		}
		cmd.Printf("created user %d (%s)\n", user.ID, user.Email)
		return nil
	},
}

var usersActivateCmd = &cobra.Command{
	Use:   "activate <user-id>",
	Short: "Re-enable a deactivated user.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runUserStateChange(cmd, args[0], "activated", (*api.Client).ActivateUser)
	},
}

var usersDeactivateCmd = &cobra.Command{
	Use:   "deactivate <user-id>",
	Short: "Disable a user without deleting it.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runUserStateChange(cmd, args[0], "deactivated", (*api.Client).DeactivateUser)
	},
}

var usersResetPasswordCmd = &cobra.Command{
	Use:   "reset-password <user-id>",
	Short: "Force a password reset for a user.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runUserStateChange(cmd, args[0], "password reset requested", (*api.Client).ResetUserPassword)
	},
}

var usersDeleteCmd = &cobra.Command{
	Use:   "delete <user-id>",
	Short: "Delete a user.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runUserStateChange(cmd, args[0], "deleted", (*api.Client).DeleteUser)
	},
}

func init() {
	usersCreateCmd.Flags().StringVar(&userCreateEmail, "email", "", "Email address of the new user")
	usersCreateCmd.Flags().StringVar(&userCreatePassword, "password", "", "Initial password (prompted when omitted)")
	usersCreateCmd.Flags().Int64SliceVar(&userCreateRoleIDs, "role", nil, "Role ID to assign (repeatable)")
	_ = usersCreateCmd.MarkFlagRequired("email")

	usersCmd.AddCommand(usersListCmd, usersCreateCmd, usersActivateCmd, usersDeactivateCmd, usersResetPasswordCmd, usersDeleteCmd)
}

func runUserStateChange(cmd *cobra.Command, arg, verb string, fn func(*api.Client, context.Context, int64) error) error {
	id, err := parseID("user", arg)
	if err != nil {
		return err
	}

	_, _, client, err := newSession()
	if err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	if err := fn(client, ctx, id); err != nil {
		return err
	}
	cmd.Printf("user %d %s\n", id, verb)
	return nil
}
