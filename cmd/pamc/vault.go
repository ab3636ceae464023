package main

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/open-pam/console/internal/api"
)

var vaultCmd = &cobra.Command{
	Use:   "vault",
	Short: "Work with approval-gated secret reveal requests.",
}

var vaultRequestsCmd = &cobra.Command{
	Use:   "requests",
	Short: "List reveal requests.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, _, client, err := newSession()
		if err != nil {
			return err
		}

		ctx, cancel := signalContext()
		defer cancel()

		requests, err := client.ListVaultRequests(ctx)
		if err != nil {
			return err
		}

		rows := make([][]string, 0, len(requests))
		for _, request := range requests {
			rows = append(rows, []string{
				strconv.FormatInt(request.ID, 10),
				strconv.FormatInt(request.SecretID, 10),
				request.Requester,
				request.Status,
				orDash(request.Approver),
				orDash(request.ValidUntil),
				orDash(request.Reason),
			})
		}
		printTable(cmd, []string{"ID", "SECRET", "REQUESTER", "STATUS", "APPROVER", "VALID UNTIL", "REASON"}, rows)
		return nil
	},
}

var (
	vaultRequestReason  string
	vaultRequestMinutes int
)

var vaultRequestCmd = &cobra.Command{
	Use:   "request <secret-id>",
	Short: "Request a reveal of a stored secret.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		secretID, err := parseID("secret", args[0])
		if err != nil {
			return err
		}

		_, _, client, err := newSession()
		if err != nil {
			return err
		}

		ctx, cancel := signalContext()
		defer cancel()

		request, err := client.CreateVaultRequest(ctx, api.CreateVaultRequestParams{
			SecretID:     secretID,
			Reason:       vaultRequestReason,
			ValidMinutes: vaultRequestMinutes,
		})
		if err != nil {
			return err
		}
		cmd.Printf("request %d created for secret %d (%s)\n", request.ID, request.SecretID, request.Status)
		return nil
	},
}

var vaultApproveCmd = &cobra.Command{
	Use:   "approve <request-id>",
	Short: "Approve a pending reveal request.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runVaultDecision(cmd, args[0], "approved", (*api.Client).ApproveVaultRequest)
	},
}

var vaultDenyCmd = &cobra.Command{
	Use:   "deny <request-id>",
	Short: "Deny a pending reveal request.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runVaultDecision(cmd, args[0], "denied", (*api.Client).DenyVaultRequest)
	},
}

var vaultCancelCmd = &cobra.Command{
	Use:   "cancel <request-id>",
	Short: "Cancel your own pending reveal request.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runVaultDecision(cmd, args[0], "cancelled", (*api.Client).CancelVaultRequest)
	},
}

var vaultRevealCmd = &cobra.Command{
	Use:   "reveal <secret-id>",
	Short: "Print an approved secret value. The reveal is single use.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		secretID, err := parseID("secret", args[0])
		if err != nil {
			return err
		}

		_, _, client, err := newSession()
		if err != nil {
			return err
		}

		ctx, cancel := signalContext()
		defer cancel()

		secret, err := client.RevealApprovedSecret(ctx, secretID)
		if err != nil {
			return err
		}
		// Only the value goes to stdout so it can be piped without
		// scraping table output.
		cmd.Println(secret.Value)
		return nil
	},
}

func runVaultDecision(cmd *cobra.Command, arg, verb string, fn func(*api.Client, context.Context, int64) error) error {
	id, err := parseID("request", arg)
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
	cmd.Printf("request %d %s\n", id, verb)
	return nil
}

func init() {
	vaultRequestCmd.Flags().StringVar(&vaultRequestReason, "reason", "", "Business reason for the reveal")
	vaultRequestCmd.Flags().IntVar(&vaultRequestMinutes, "valid-minutes", 0, "Requested validity window in minutes")

	vaultCmd.AddCommand(vaultRequestsCmd, vaultRequestCmd, vaultApproveCmd, vaultDenyCmd, vaultCancelCmd, vaultRevealCmd)
}
