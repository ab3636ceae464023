package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/open-pam/console/internal/api"
	"github.com/open-pam/console/internal/notify"
)

func TestStreamNotifications_DrainsBufferedEventsOnClose(t *testing.T) {
	events := make(chan notify.Event, 16)
	done := make(chan error, 1)

	events <- notify.Event{Type: "notification", Notification: &api.Notification{
		ID:        1,
		Action:    "CUSTOM_EVENT_A",
		CreatedAt: "2026-01-01 10:00:00",
	}}
	events <- notify.Event{Type: "notification", Notification: &api.Notification{
		ID:        2,
		Action:    "CUSTOM_EVENT_B",
		CreatedAt: "2026-01-01 10:00:01",
	}}
	// Socket already closed: the watcher settled before the loop ran.
	done <- nil

	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)

	if err := streamNotifications(cmd, &notify.Context{}, events, done); err != nil {
		t.Fatalf("streamNotifications() error = %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "Событие: CUSTOM_EVENT_A") {
		t.Fatalf("output missing first buffered event: %q", got)
	}
	if !strings.Contains(got, "Событие: CUSTOM_EVENT_B") {
		t.Fatalf("output missing second buffered event: %q", got)
	}
}

func TestStreamNotifications_SkipsEventsWithoutPayload(t *testing.T) {
	events := make(chan notify.Event, 2)
	done := make(chan error, 1)

	events <- notify.Event{Type: "ping"}
	done <- nil

	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)

	if err := streamNotifications(cmd, &notify.Context{}, events, done); err != nil {
		t.Fatalf("streamNotifications() error = %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("payload-less event produced output: %q", out.String())
	}
}
