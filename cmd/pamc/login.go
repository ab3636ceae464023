package main

import (
	"bufio"
	"errors"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/open-pam/console/internal/auth"
)

var (
	loginEmail         string
	loginPasswordStdin bool
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate against the PAM backend and store the session token.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		email := strings.ToLower(strings.TrimSpace(loginEmail))
		if email == "" {
			return errors.New("--email is required")
		}

		password, err := resolvePassword(cmd, "Password: ", loginPasswordStdin)
		if err != nil {
			return err
		}

		_, store, client, err := newSession()
		if err != nil {
			return err
		}

		ctx, cancel := signalContext()
		defer cancel()

		resp, err := client.LoginCredentials(ctx, email, password)
		if err != nil {
			return err
		}
		if err := store.Login(ctx, client, resp.AccessToken); err != nil {
			return err
		}

		if store.MustChangePassword {
			cmd.Println("logged in; password change required before anything else (run: pamc change-password)")
			return nil
		}
		cmd.Printf("logged in as %s\n", email)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Discard the stored session token.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, store, _, err := newSession()
		if err != nil {
			return err
		}
		if err := store.Logout(); err != nil {
			return err
		}
		cmd.Println("logged out")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current operator profile.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, store, client, err := newSession()
		if err != nil {
			return err
		}
		if store.Token == "" {
			return auth.ErrNotLoggedIn
		}

		ctx, cancel := signalContext()
		defer cancel()

		if store.MustChangePassword {
			cmd.Println("password change pending; profile unavailable until it completes")
			return nil
		}

		user, err := client.Me(ctx)
		if err != nil {
			return err
		}

		cmd.Printf("id:     %d\n", user.ID)
		cmd.Printf("email:  %s\n", user.Email)
		cmd.Printf("active: %s\n", yesNo(user.IsActive))
		if len(user.Roles) > 0 {
			names := make([]string, 0, len(user.Roles))
			for _, role := range user.Roles {
				names = append(names, role.Name)
			}
			cmd.Printf("roles:  %s\n", strings.Join(names, ", "))
		}
		return nil
	},
}

var changePasswordCmd = &cobra.Command{
	Use:   "change-password",
	Short: "Rotate the current operator's password.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, store, client, err := newSession()
		if err != nil {
			return err
		}
		if store.Token == "" {
			return auth.ErrNotLoggedIn
		}

		oldPassword, err := resolvePassword(cmd, "Current password: ", false)
		if err != nil {
			return err
		}
		newPassword, err := promptNewPassword(cmd)
		if err != nil {
			return err
		}

		ctx, cancel := signalContext()
		defer cancel()

		if err := client.ChangePassword(ctx, oldPassword, newPassword); err != nil {
			return err
		}

		// The backend invalidates the old token on rotation; drop the
		// local session without waiting for confirmation.
		if err := store.Logout(); err != nil {
			return err
		}
		cmd.Println("password changed; log in again")
		return nil
	},
}

var (
	resetPasswordToken string
)

var resetPasswordCmd = &cobra.Command{
	Use:   "reset-password",
	Short: "Request or complete a password reset.",
}

var resetPasswordRequestCmd = &cobra.Command{
	Use:   "request <email>",
	Short: "Ask the backend to send a reset token.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, _, client, err := newSession()
		if err != nil {
			return err
		}

		ctx, cancel := signalContext()
		defer cancel()

		if err := client.RequestPasswordReset(ctx, strings.TrimSpace(args[0])); err != nil {
			return err
		}
		cmd.Println("reset requested; check the mailbox for a token")
		return nil
	},
}

var resetPasswordConfirmCmd = &cobra.Command{
	Use:   "confirm",
	Short: "Complete a reset with the emailed token.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		token := strings.TrimSpace(resetPasswordToken)
		if token == "" {
			return errors.New("--token is required")
		}

		_, _, client, err := newSession()
		if err != nil {
			return err
		}

		newPassword, err := promptNewPassword(cmd)
		if err != nil {
			return err
		}

		ctx, cancel := signalContext()
		defer cancel()

		if err := client.ResetPassword(ctx, token, newPassword); err != nil {
			return err
		}
		cmd.Println("password reset; log in with the new password")
		return nil
	},
}

// resolvePassword reads a password from stdin (piped) or an
// interactive no-echo prompt.
func resolvePassword(cmd *cobra.Command, prompt string, fromStdin bool) (string, error) {
	if fromStdin {
		raw, err := readLineFromStdin()
		if err != nil {
			return "", err
		}
		password := strings.TrimRight(raw, "\r\n")
		if password == "" {
			return "", errors.New("password is empty")
		}
		return password, nil
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return "", errors.New("no password provided (use --password-stdin when piping)")
	}

	cmd.Print(prompt)
	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	cmd.Println()
	if err != nil {
		return "", err
	}
	if len(raw) == 0 {
		return "", errors.New("password is empty")
	}
	return string(raw), nil
}

func promptNewPassword(cmd *cobra.Command) (string, error) {
	pass1, err := resolvePassword(cmd, "New password: ", false)
	if err != nil {
		return "", err
	}
	pass2, err := resolvePassword(cmd, "Confirm new password: ", false)
	if err != nil {
		return "", err
	}
	if pass1 != pass2 {
		return "", errors.New("passwords do not match")
	}
	return pass1, nil
}

func readLineFromStdin() (string, error) {
	in, err := os.Stdin.Stat()
	if err != nil {
		return "", err
	}
	if in.Mode()&os.ModeCharDevice != 0 {
		return "", errors.New("stdin is a terminal; omit --password-stdin to prompt")
	}

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", err
		}
		return "", nil
	}
	return scanner.Text(), nil
}

func init() {
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "Email address to authenticate as")
	loginCmd.Flags().BoolVar(&loginPasswordStdin, "password-stdin", false, "Read the password from stdin")
	_ = loginCmd.MarkFlagRequired("email")

	resetPasswordConfirmCmd.Flags().StringVar(&resetPasswordToken, "token", "", "Reset token from the notification email")
	_ = resetPasswordConfirmCmd.MarkFlagRequired("token")

	resetPasswordCmd.AddCommand(resetPasswordRequestCmd, resetPasswordConfirmCmd)
}
