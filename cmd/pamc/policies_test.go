package main

import (
	"testing"

	"github.com/spf13/cobra"
)

func TestPolicyPatchFromFlags_IncludesChangedZeroValues(t *testing.T) {
	cmd := &cobra.Command{Use: "update"}
	registerPolicyParamFlags(cmd)

	if err := cmd.Flags().Set("require-mfa", "false"); err != nil {
		t.Fatalf("Set(require-mfa) error = %v", err)
	}
	if err := cmd.Flags().Set("session-limit", "0"); err != nil {
		t.Fatalf("Set(session-limit) error = %v", err)
	}

	patch := policyPatchFromFlags(cmd.Flags())
	if patch.RequireMFA == nil || *patch.RequireMFA {
		t.Fatalf("RequireMFA = %v, want explicit false", patch.RequireMFA)
	}
	if patch.SessionLimit == nil || *patch.SessionLimit != 0 {
		t.Fatalf("SessionLimit = %v, want explicit 0", patch.SessionLimit)
	}
	if patch.Name != nil || patch.Status != nil || patch.IPRange != nil {
		t.Fatalf("unset flags leaked into patch: %+v", patch)
	}
}

func TestPolicyPatchFromFlags_EmptyWithoutChanges(t *testing.T) {
	cmd := &cobra.Command{Use: "update"}
	registerPolicyParamFlags(cmd)

	patch := policyPatchFromFlags(cmd.Flags())
	if patch.Name != nil || patch.Type != nil || patch.Status != nil ||
		patch.TimeStart != nil || patch.TimeEnd != nil || patch.IPRange != nil ||
		patch.SessionLimit != nil || patch.RequireMFA != nil {
		t.Fatalf("patch without changed flags = %+v, want all nil", patch)
	}
}
