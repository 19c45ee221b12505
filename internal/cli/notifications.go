package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newNotificationsCmd(app *App) *cobra.Command {
	notifications := &cobra.Command{
		Use:   "notifications",
		Short: "Read the notification feed",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "Show the feed",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireLogin(); err != nil {
				return err
			}

			feed, err := app.Notifications.Refresh(cmd.Context())
			if err != nil {
				return userError(err, "refresh notifications")
			}

			rows := make([][]string, len(feed))
			for i, n := range feed {
				read := "unread"
				if n.IsRead {
					read = ""
				}
				rows[i] = []string{n.ID, string(n.Type), n.OrderID, read}
			}
			table(cmd.OutOrStdout(), []string{"ID", "TYPE", "ORDER", ""}, rows)
			return nil
		},
	}

	markRead := &cobra.Command{
		Use:   "read <notification-id>",
		Short: "Mark one notification as read",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireLogin(); err != nil {
				return err
			}

			if err := app.Notifications.MarkRead(cmd.Context(), args[0]); err != nil {
				return userError(err, "mark the notification read")
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Marked read")
			return nil
		},
	}

	readAll := &cobra.Command{
		Use:   "read-all",
		Short: "Mark the whole feed as read",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireLogin(); err != nil {
				return err
			}

			if err := app.Notifications.ReadAll(cmd.Context()); err != nil {
				return userError(err, "mark all notifications read")
			}
			fmt.Fprintln(cmd.OutOrStdout(), "All read")
			return nil
		},
	}

	notifications.AddCommand(list, markRead, readAll)
	return notifications
}
