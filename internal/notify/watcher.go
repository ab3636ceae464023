package notify

import (
	"context"
	"errors"
	"net/url"
	"strings"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/open-pam/console/internal/api"
	"github.com/open-pam/console/internal/metrics"
)

// Event is one message on the notification channel. The backend tags
// pushes with a type; only "notification" events carry a payload.
type Event struct {
	Type         string            `json:"type"`
	Notification *api.Notification `json:"notification,omitempty"`
}

// Watch dials the backend notification WebSocket and delivers events
// to the channel until the context is canceled or the socket closes.
// There is no automatic reconnect: a dropped socket ends the watch and
// the caller decides whether to start a new one.
func Watch(ctx context.Context, wsBase, token string, events chan<- Event) error {
	endpoint := strings.TrimRight(wsBase, "/") + "/ws/notifications?token=" + url.QueryEscape(token)

	conn, _, err := websocket.Dial(ctx, endpoint, nil)
	if err != nil {
		return err
	}
	defer conn.Close(websocket.StatusNormalClosure, "watch ended")

	for {
		var event Event
		if err := wsjson.Read(ctx, conn, &event); err != nil {
			if websocket.CloseStatus(err) == websocket.StatusNormalClosure || errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		}
		metrics.NotificationEventsTotal.WithLabelValues(event.Type).Inc()

		select {
		case events <- event:
		case <-ctx.Done():
			return nil
		}
	}
}
