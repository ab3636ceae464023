package main

import (
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/open-pam/console/internal/api"
)

var policiesCmd = &cobra.Command{
	Use:   "policies",
	Short: "Manage access policies.",
}

var policiesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List policies.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, _, client, err := newSession()
		if err != nil {
			return err
		}

		ctx, cancel := signalContext()
		defer cancel()

		policies, err := client.ListPolicies(ctx)
		if err != nil {
			return err
		}

		rows := make([][]string, 0, len(policies))
		for _, policy := range policies {
			window := "-"
			if policy.TimeStart != "" || policy.TimeEnd != "" {
				window = orDash(policy.TimeStart) + ".." + orDash(policy.TimeEnd)
			}
			rows = append(rows, []string{
				strconv.FormatInt(policy.ID, 10),
				policy.Name,
				orDash(policy.Type),
				orDash(policy.Status),
				window,
				orDash(policy.IPRange),
				yesNo(policy.RequireMFA),
			})
		}
		printTable(cmd, []string{"ID", "NAME", "TYPE", "STATUS", "WINDOW", "IP RANGE", "MFA"}, rows)
		return nil
	},
}

var policyParamFlags = struct {
	name         string
	policyType   string
	status       string
	timeStart    string
	timeEnd      string
	ipRange      string
	sessionLimit int
	requireMFA   bool
}{}

func policyParamsFromFlags() api.PolicyParams {
	return api.PolicyParams{
		Name:         policyParamFlags.name,
		Type:         policyParamFlags.policyType,
		Status:       policyParamFlags.status,
		TimeStart:    policyParamFlags.timeStart,
		TimeEnd:      policyParamFlags.timeEnd,
		IPRange:      policyParamFlags.ipRange,
		SessionLimit: policyParamFlags.sessionLimit,
		RequireMFA:   policyParamFlags.requireMFA,
	}
}

// policyPatchFromFlags includes exactly the flags the operator set, so
// `--require-mfa=false` and `--session-limit 0` reach the backend
// instead of vanishing as zero values.
func policyPatchFromFlags(flags *pflag.FlagSet) api.PolicyPatch {
	var patch api.PolicyPatch
	if flags.Changed("name") {
		patch.Name = &policyParamFlags.name
	}
	if flags.Changed("type") {
		patch.Type = &policyParamFlags.policyType
	}
	if flags.Changed("status") {
		patch.Status = &policyParamFlags.status
	}
	if flags.Changed("time-start") {
		patch.TimeStart = &policyParamFlags.timeStart
	}
	if flags.Changed("time-end") {
		patch.TimeEnd = &policyParamFlags.timeEnd
	}
	if flags.Changed("ip-range") {
		patch.IPRange = &policyParamFlags.ipRange
	}
	if flags.Changed("session-limit") {
		patch.SessionLimit = &policyParamFlags.sessionLimit
	}
	if flags.Changed("require-mfa") {
		patch.RequireMFA = &policyParamFlags.requireMFA
	}
	return patch
}

func registerPolicyParamFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&policyParamFlags.name, "name", "", "Policy name")
	cmd.Flags().StringVar(&policyParamFlags.policyType, "type", "", "Policy type (time, network, mfa)")
	cmd.Flags().StringVar(&policyParamFlags.status, "status", "", "Policy status (active, disabled)")
	cmd.Flags().StringVar(&policyParamFlags.timeStart, "time-start", "", "Allowed window start, HH:MM")
	cmd.Flags().StringVar(&policyParamFlags.timeEnd, "time-end", "", "Allowed window end, HH:MM")
	cmd.Flags().StringVar(&policyParamFlags.ipRange, "ip-range", "", "Allowed source CIDR")
	cmd.Flags().IntVar(&policyParamFlags.sessionLimit, "session-limit", 0, "Max concurrent sessions, 0 for unlimited")
	cmd.Flags().BoolVar(&policyParamFlags.requireMFA, "require-mfa", false, "Require MFA for covered sessions")
}

var policiesCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a policy.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, _, client, err := newSession()
		if err != nil {
			return err
		}

		ctx, cancel := signalContext()
		defer cancel()

		policy, err := client.CreatePolicy(ctx, policyParamsFromFlags())
		if err != nil {
			return err
		}
		cmd.Printf("created policy %d (%s)\n", policy.ID, policy.Name)
		return nil
	},
}

var policiesUpdateCmd = &cobra.Command{
	Use:   "update <policy-id>",
	Short: "Update a policy; omitted flags keep their current values.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID("policy", args[0])
		if err != nil {
			return err
		}

		_, _, client, err := newSession()
		if err != nil {
			return err
		}

		ctx, cancel := signalContext()
		defer cancel()

		policy, err := client.UpdatePolicy(ctx, id, policyPatchFromFlags(cmd.Flags()))
		if err != nil {
			return err
		}
		cmd.Printf("policy %d updated\n", policy.ID)
		return nil
	},
}

var policiesDeleteCmd = &cobra.Command{
	Use:   "delete <policy-id>",
	Short: "Delete a policy.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID("policy", args[0])
		if err != nil {
			return err
		}

		_, _, client, err := newSession()
		if err != nil {
			return err
		}

		ctx, cancel := signalContext()
		defer cancel()

		if err := client.DeletePolicy(ctx, id); err != nil {
			return err
		}
		cmd.Printf("policy %d deleted\n", id)
		return nil
	},
}

func init() {
	registerPolicyParamFlags(policiesCreateCmd)
	_ = policiesCreateCmd.MarkFlagRequired("name")
	registerPolicyParamFlags(policiesUpdateCmd)

	policiesCmd.AddCommand(policiesListCmd, policiesCreateCmd, policiesUpdateCmd, policiesDeleteCmd)
}
