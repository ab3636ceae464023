package main

import "github.com/spf13/cobra"

var rootCmd = &cobra.Command{
	Use:           "pamc",
	Short:         "pamc is the operator console for the Open-PAM backend.",
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return bootstrapCommandLogging(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(
		loginCmd, logoutCmd, whoamiCmd, changePasswordCmd, resetPasswordCmd,
		usersCmd, rolesCmd, policiesCmd, permissionsCmd,
		sessionsCmd, vaultCmd, auditCmd, incidentsCmd, socCmd,
		settingsCmd, notificationsCmd,
		serveCmd, versionCmd,
	)
}
