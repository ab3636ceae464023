package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/open-pam/console/internal/api"
	"github.com/open-pam/console/internal/soc"
)

var incidentsCmd = &cobra.Command{
	Use:   "incidents",
	Short: "Investigate SOC incidents.",
}

var incidentsShowCmd = &cobra.Command{
	Use:   "show <incident-id>",
	Short: "Show an incident with its UEBA signals.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID("incident", args[0])
		if err != nil {
			return err
		}

		_, _, client, err := newSession()
		if err != nil {
			return err
		}

		ctx, cancel := signalContext()
		defer cancel()

		incident, err := client.GetIncident(ctx, id)
		if err != nil {
			return err
		}

		cmd.Printf("incident:    %d\n", incident.ID)
		cmd.Printf("status:      %s\n", incident.Status)
		cmd.Printf("severity:    %s\n", orDash(incident.Severity))
		cmd.Printf("risk:        %.0f (%s)\n", incident.RiskScore, soc.RiskLabel(incident.RiskScore))
		if incident.CorrelationID != "" {
			cmd.Printf("correlation: %s\n", incident.CorrelationID)
		}
		if len(incident.Signals) > 0 {
			cmd.Println("signals:")
			for _, signal := range incident.Signals {
				cmd.Printf("  %-30s %6.1f  %s\n", signal.Name, signal.Score, orDash(signal.Severity))
			}
		}
		return nil
	},
}

var incidentsTimelineCmd = &cobra.Command{
	Use:   "timeline <incident-id>",
	Short: "Show the correlated event timeline of an incident.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID("incident", args[0])
		if err != nil {
			return err
		}

		_, _, client, err := newSession()
		if err != nil {
			return err
		}

		ctx, cancel := signalContext()
		defer cancel()

		timeline, err := client.GetIncidentTimeline(ctx, id)
		if err != nil {
			return err
		}

		rows := make([][]string, 0, len(timeline))
		for _, event := range timeline {
			rows = append(rows, []string{
				event.Time,
				event.Action,
				orDash(event.User),
				orDash(event.Details),
			})
		}
		printTable(cmd, []string{"TIME", "ACTION", "USER", "DETAILS"}, rows)

		if playbook := soc.SuggestPlaybook(timeline); playbook != "" {
			cmd.Printf("\nsuggested playbook: %s\n", playbook)
		}
		return nil
	},
}

var incidentsSuggestPlaybookCmd = &cobra.Command{
	Use:   "suggest-playbook <incident-id>",
	Short: "Run the burst heuristics over the timeline and print the playbook, if any.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID("incident", args[0])
		if err != nil {
			return err
		}

		_, _, client, err := newSession()
		if err != nil {
			return err
		}

		ctx, cancel := signalContext()
		defer cancel()

		timeline, err := client.GetIncidentTimeline(ctx, id)
		if err != nil {
			return err
		}

		playbook := soc.SuggestPlaybook(timeline)
		if playbook == "" {
			cmd.Println("no playbook suggested")
			return nil
		}
		cmd.Println(playbook)
		return nil
	},
}

var incidentsSetStatusCmd = &cobra.Command{
	Use:   "set-status <incident-id> <status>",
	Short: "Move an incident to OPEN, INVESTIGATING, RESOLVED or CLOSED.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID("incident", args[0])
		if err != nil {
			return err
		}
		status := strings.ToUpper(strings.TrimSpace(args[1]))
		switch status {
		case api.IncidentOpen, api.IncidentInvestigating, api.IncidentResolved, api.IncidentClosed:
		default:
			return fmt.Errorf("unknown incident status %q", args[1])
		}

		_, _, client, err := newSession()
		if err != nil {
			return err
		}

		ctx, cancel := signalContext()
		defer cancel()

		incident, err := client.SetIncidentStatus(ctx, id, status)
		if err != nil {
			return err
		}
		cmd.Printf("incident %d is now %s\n", incident.ID, incident.Status)
		return nil
	},
}

var socCmd = &cobra.Command{
	Use:   "soc",
	Short: "SOC response actions.",
}

var socReason string

var socBlockUserCmd = &cobra.Command{
	Use:   "block-user <user-id>",
	Short: "Block a user as an incident response action.",
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

		if err := client.BlockUser(ctx, id, socReason); err != nil {
			return err
		}
		cmd.Printf("user %d blocked\n", id)
		return nil
	},
}

var socIsolateSessionCmd = &cobra.Command{
	Use:   "isolate-session <session-id>",
	Short: "Isolate a session as an incident response action.",
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

		if err := client.IsolateSession(ctx, id, socReason); err != nil {
			return err
		}
		cmd.Printf("session %s isolated\n", id)
		return nil
	},
}

func init() {
	incidentsCmd.AddCommand(incidentsShowCmd, incidentsTimelineCmd, incidentsSuggestPlaybookCmd, incidentsSetStatusCmd)

	socCmd.PersistentFlags().StringVar(&socReason, "reason", "", "Reason recorded with the response action")
	socCmd.AddCommand(socBlockUserCmd, socIsolateSessionCmd)
}
