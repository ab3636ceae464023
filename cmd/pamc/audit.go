package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/open-pam/console/internal/api"
)

var (
	auditCategory   string
	auditIncidentID int64
	auditLimit      int
	auditRaw        bool
)

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Browse backend audit logs.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, _, client, err := newSession()
		if err != nil {
			return err
		}

		ctx, cancel := signalContext()
		defer cancel()

		logs, err := client.ListAuditLogs(ctx, api.AuditLogFilter{
			Category:   auditCategory,
			IncidentID: auditIncidentID,
			Limit:      auditLimit,
		})
		if err != nil {
			return err
		}

		rows := make([][]string, 0, len(logs))
		for _, log := range logs {
			details := "-"
			if auditRaw && len(log.Details) > 0 {
				details = string(log.Details)
			}
			rows = append(rows, []string{
				strconv.FormatInt(log.ID, 10),
				log.Timestamp,
				orDash(log.User),
				log.Action,
				orDash(log.Category),
				details,
			})
		}
		printTable(cmd, []string{"ID", "TIMESTAMP", "USER", "ACTION", "CATEGORY", "DETAILS"}, rows)
		return nil
	},
}

func init() {
	auditCmd.Flags().StringVar(&auditCategory, "category", "", "Filter by category (auth, access, soc, vault)")
	auditCmd.Flags().Int64Var(&auditIncidentID, "incident", 0, "Filter by correlated incident ID")
	auditCmd.Flags().IntVar(&auditLimit, "limit", 0, "Max records to return, 0 for the backend default")
	auditCmd.Flags().BoolVar(&auditRaw, "raw-details", false, "Show the raw details blob per record")
}
