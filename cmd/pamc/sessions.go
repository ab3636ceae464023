package main

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/open-pam/console/internal/api"
	"github.com/open-pam/console/internal/soc"
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "Monitor and control privileged sessions.",
}

var sessionsActiveOnly bool

var sessionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List privileged sessions.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, _, client, err := newSession()
		if err != nil {
			return err
		}

		ctx, cancel := signalContext()
		defer cancel()

		sessions, err := client.ListSessions(ctx)
		if err != nil {
			return err
		}

		rows := make([][]string, 0, len(sessions))
		for _, session := range sessions {
			if sessionsActiveOnly && session.Status != api.SessionStatusActive {
				continue
			}
			risk := session.Risk
			if risk == "" {
				risk = soc.RiskLabel(session.RiskScore)
			}
			rows = append(rows, []string{
				session.ID,
				session.User,
				session.Target,
				orDash(session.Protocol),
				orDash(session.IP),
				session.Status,
				risk,
				orDash(session.Duration),
			})
		}
		printTable(cmd, []string{"ID", "USER", "TARGET", "PROTO", "IP", "STATUS", "RISK", "DURATION"}, rows)
		return nil
	},
}

var (
	sessionStartProtocol string
	sessionStartReason   string
)

var sessionsStartCmd = &cobra.Command{
	Use:   "start <target>",
	Short: "Request a new privileged session to a target.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		target := strings.TrimSpace(args[0])
		if target == "" {
			return errors.New("target is empty")
		}

		_, _, client, err := newSession()
		if err != nil {
			return err
		}

		ctx, cancel := signalContext()
		defer cancel()

		session, err := client.StartSession(ctx, api.StartSessionParams{
			Target:   target,
			Protocol: sessionStartProtocol,
			Reason:   sessionStartReason,
		})
		if err != nil {
			return err
		}
		cmd.Printf("session %s started on %s (%s)\n", session.ID, session.Target, session.Status)
		return nil
	},
}

var sessionsTerminateCmd = &cobra.Command{
	Use:   "terminate <session-id>",
	Short: "Terminate a running session.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := strings.TrimSpace(args[0])
		if id == "" {
			return errors.New("session id is empty")
		}

		_, _, client, err := newSession()
		if err != nil {
			return err
		}

		ctx, cancel := signalContext()
		defer cancel()

		if err := client.TerminateSession(ctx, id); err != nil {
			return err
		}
		cmd.Printf("session %s terminated\n", id)
		return nil
	},
}

func init() {
	sessionsListCmd.Flags().BoolVar(&sessionsActiveOnly, "active", false, "Show only active sessions")

	sessionsStartCmd.Flags().StringVar(&sessionStartProtocol, "protocol", "", "Session protocol (ssh, rdp)")
	sessionsStartCmd.Flags().StringVar(&sessionStartReason, "reason", "", "Business reason for the session")

	sessionsCmd.AddCommand(sessionsListCmd, sessionsStartCmd, sessionsTerminateCmd)
}
