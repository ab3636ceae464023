// Package soc carries the console-side triage heuristics for the SOC
// investigation view. Everything here is a display hint; blocking and
// isolation stay backend decisions taken by the operator.
package soc

import (
	"sort"
	"strings"
	"time"

	"github.com/open-pam/console/internal/api"
)

// Timeline timestamps arrive in a fixed backend format.
const timeLayout = "2006-01-02 15:04:05"

// Burst window and thresholds for the static playbooks.
const (
	burstWindow = 10 * time.Minute

	mfaFailThreshold   = 3
	loginFailThreshold = 6
)

const (
	ActionMFAFail   = "MFA_FAIL"
	ActionLoginFail = "LOGIN_FAIL"

	PlaybookMFAFailBurst   = "MFA_FAIL_BURST"
	PlaybookLoginFailBurst = "LOGIN_FAIL_BURST"
)

// MaxActionsInWindow returns the maximum number of events tagged with
// the given action inside any window-sized span of the timeline.
// Events with unparseable timestamps are skipped.
func MaxActionsInWindow(timeline []api.TimelineEvent, action string, window time.Duration) int {
	times := make([]time.Time, 0, len(timeline))
	for _, event := range timeline {
		if !strings.EqualFold(strings.TrimSpace(event.Action), action) {
			continue
		}
		ts, err := time.Parse(timeLayout, strings.TrimSpace(event.Time))
		if err != nil {
			continue
		}
		times = append(times, ts)
	}
	if len(times) == 0 {
		return 0
	}
	sort.Slice(times, func(i, j int) bool { return times[i].Before(times[j]) })

	best := 0
	left := 0
	for right := range times {
		for times[right].Sub(times[left]) > window {
			left++
		}
		if count := right - left + 1; count > best {
			best = count
		}
	}
	return best
}

// SuggestPlaybook picks the response playbook for a timeline, or ""
// when no burst threshold is met. An MFA failure burst wins over a
// login failure burst when both qualify.
func SuggestPlaybook(timeline []api.TimelineEvent) string {
	if MaxActionsInWindow(timeline, ActionMFAFail, burstWindow) >= mfaFailThreshold {
		return PlaybookMFAFailBurst
	}
	if MaxActionsInWindow(timeline, ActionLoginFail, burstWindow) >= loginFailThreshold {
		return PlaybookLoginFailBurst
	}
	return ""
}
