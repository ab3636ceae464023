package soc

import (
	"testing"
	"time"

	"github.com/open-pam/console/internal/api"
)

func events(action string, clocks ...string) []api.TimelineEvent {
	out := make([]api.TimelineEvent, 0, len(clocks))
	for _, clock := range clocks {
		out = append(out, api.TimelineEvent{
			Time:   "2026-03-14 " + clock,
			Action: action,
		})
	}
	return out
}

func TestMaxActionsInWindow_SlidingWindow(t *testing.T) {
	timeline := events(ActionMFAFail, "10:00:00", "10:01:00", "10:09:00", "10:11:00")

	got := MaxActionsInWindow(timeline, ActionMFAFail, 10*time.Minute)
	if got != 3 {
		t.Fatalf("MaxActionsInWindow() = %d, want 3", got)
	}
}

func TestMaxActionsInWindow_IgnoresOtherActions(t *testing.T) {
	timeline := append(
		events(ActionMFAFail, "10:00:00"),
		events(ActionLoginFail, "10:01:00", "10:02:00")...,
	)

	if got := MaxActionsInWindow(timeline, ActionMFAFail, 10*time.Minute); got != 1 {
		t.Fatalf("MaxActionsInWindow(MFA_FAIL) = %d, want 1", got)
	}
}

func TestMaxActionsInWindow_UnsortedAndMalformed(t *testing.T) {
	timeline := events(ActionLoginFail, "10:09:00", "10:00:00", "10:01:00")
	timeline = append(timeline, api.TimelineEvent{Time: "not-a-timestamp", Action: ActionLoginFail})

	if got := MaxActionsInWindow(timeline, ActionLoginFail, 10*time.Minute); got != 3 {
		t.Fatalf("MaxActionsInWindow() = %d, want 3", got)
	}
}

func TestSuggestPlaybook_MFABurst(t *testing.T) {
	timeline := events(ActionMFAFail, "10:00:00", "10:01:00", "10:09:00", "10:11:00")

	if got := SuggestPlaybook(timeline); got != PlaybookMFAFailBurst {
		t.Fatalf("SuggestPlaybook() = %q, want %q", got, PlaybookMFAFailBurst)
	}
}

func TestSuggestPlaybook_LoginBurstBoundary(t *testing.T) {
	five := events(ActionLoginFail, "10:00:00", "10:01:00", "10:02:00", "10:03:00", "10:04:00")
	if got := SuggestPlaybook(five); got != "" {
		t.Fatalf("SuggestPlaybook(5 failures) = %q, want none", got)
	}

	six := append(five, events(ActionLoginFail, "10:05:00")...)
	if got := SuggestPlaybook(six); got != PlaybookLoginFailBurst {
		t.Fatalf("SuggestPlaybook(6 failures) = %q, want %q", got, PlaybookLoginFailBurst)
	}
}

func TestSuggestPlaybook_MFAWinsWhenBothQualify(t *testing.T) {
	timeline := append(
		events(ActionMFAFail, "10:00:00", "10:01:00", "10:02:00"),
		events(ActionLoginFail, "10:00:00", "10:01:00", "10:02:00", "10:03:00", "10:04:00", "10:05:00")...,
	)

	if got := SuggestPlaybook(timeline); got != PlaybookMFAFailBurst {
		t.Fatalf("SuggestPlaybook() = %q, want %q", got, PlaybookMFAFailBurst)
	}
}

func TestSuggestPlaybook_EmptyTimeline(t *testing.T) {
	if got := SuggestPlaybook(nil); got != "" {
		t.Fatalf("SuggestPlaybook(nil) = %q, want none", got)
	}
}

func TestRiskLabel(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{score: 0, want: RiskLow},
		{score: 39.9, want: RiskLow},
		{score: 40, want: RiskMedium},
		{score: 70, want: RiskHigh},
		{score: 90, want: RiskCritical},
	}
	for _, tc := range tests {
		if got := RiskLabel(tc.score); got != tc.want {
			t.Fatalf("RiskLabel(%v) = %q, want %q", tc.score, got, tc.want)
		}
	}
}
