package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/open-pam/console/internal/auth"
	"github.com/open-pam/console/internal/notify"
)

var notificationsCmd = &cobra.Command{
	Use:     "notifications",
	Aliases: []string{"notify"},
	Short:   "Read and follow the operator notification feed.",
}

var notificationsUnreadOnly bool

var notificationsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List notifications with resolved descriptions.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, _, client, err := newSession()
		if err != nil {
			return err
		}

		ctx, cancel := signalContext()
		defer cancel()

		notifications, err := client.ListNotifications(ctx)
		if err != nil {
			return err
		}

		cache := &notify.Context{}
		cache.Load(ctx, client)

		rows := make([][]string, 0, len(notifications))
		for _, notification := range notifications {
			if notificationsUnreadOnly && notification.Read {
				continue
			}
			read := ""
			if !notification.Read {
				read = "*"
			}
			rows = append(rows, []string{
				strconv.FormatInt(notification.ID, 10),
				read,
				orDash(notification.CreatedAt),
				notify.Resolve(notification.Action, notification.Details, cache),
			})
		}
		printTable(cmd, []string{"ID", "", "CREATED", "EVENT"}, rows)
		return nil
	},
}

var notificationsReadCmd = &cobra.Command{
	Use:   "read <notification-id>",
	Short: "Mark one notification as read.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID("notification", args[0])
		if err != nil {
			return err
		}

		_, _, client, err := newSession()
		if err != nil {
			return err
		}

		ctx, cancel := signalContext()
		defer cancel()

		if err := client.MarkNotificationRead(ctx, id); err != nil {
			return err
		}
		cmd.Printf("notification %d marked read\n", id)
		return nil
	},
}

var notificationsReadAllCmd = &cobra.Command{
	Use:   "read-all",
	Short: "Mark every notification as read.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, _, client, err := newSession()
		if err != nil {
			return err
		}

		ctx, cancel := signalContext()
		defer cancel()

		if err := client.MarkAllNotificationsRead(ctx); err != nil {
			return err
		}
		cmd.Println("all notifications marked read")
		return nil
	},
}

var notificationsWatchCmd = &cobra.Command{
	Use:         "watch",
	Short:       "Follow live notifications until interrupted.",
	Args:        cobra.NoArgs,
	Annotations: structuredLogAnnotation(),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, store, client, err := newSession()
		if err != nil {
			return err
		}
		if store.Token == "" {
			return auth.ErrNotLoggedIn
		}

		ctx, cancel := signalContext()
		defer cancel()

		cache := &notify.Context{}
		cache.Load(ctx, client)

		events := make(chan notify.Event, 16)
		done := make(chan error, 1)
		go func() {
			done <- notify.Watch(ctx, cfg.WSBaseURL, store.Token, events)
		}()

		return streamNotifications(cmd, cache, events, done)
	},
}

// streamNotifications prints resolved events until the watcher ends,
// then drains anything still buffered so notifications received just
// before a socket close are not lost.
func streamNotifications(cmd *cobra.Command, cache *notify.Context, events <-chan notify.Event, done <-chan error) error {
	printEvent := func(event notify.Event) {
		if event.Notification == nil {
			return
		}
		n := event.Notification
		cmd.Printf("%s  %s\n", orDash(n.CreatedAt), notify.Resolve(n.Action, n.Details, cache))
	}

	for {
		select {
		case event := <-events:
			printEvent(event)
		case err := <-done:
			for {
				select {
				case event := <-events:
					printEvent(event)
				default:
					return err
				}
			}
		}
	}
}

func init() {
	notificationsListCmd.Flags().BoolVar(&notificationsUnreadOnly, "unread", false, "Show only unread notifications")

	notificationsCmd.AddCommand(notificationsListCmd, notificationsReadCmd, notificationsReadAllCmd, notificationsWatchCmd)
}
