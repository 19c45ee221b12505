package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newChatCmd(app *App) *cobra.Command {
	chat := &cobra.Command{
		Use:   "chat",
		Short: "Message the other side of an order",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List your conversations",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireLogin(); err != nil {
				return err
			}

			chats, err := app.Chat.List(cmd.Context())
			if err != nil {
				return userError(err, "list chats")
			}

			rows := make([][]string, len(chats))
			for i, c := range chats {
				rows[i] = []string{c.ID, c.ClientPhone, c.VendorPhone, c.BusinessID, c.OrderID}
			}
			table(cmd.OutOrStdout(), []string{"ID", "CLIENT", "VENDOR", "BUSINESS", "ORDER"}, rows)
			return nil
		},
	}

	var orderID string
	open := &cobra.Command{
		Use:   "open <other-phone> <business-id>",
		Short: "Open the conversation with a counterparty, showing its history",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireLogin(); err != nil {
				return err
			}

			conversation, history, err := app.Chat.Open(cmd.Context(), args[0], args[1], orderID)
			if err != nil {
				return userError(err, "open the chat")
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Chat %s\n", conversation.ID)
			for _, msg := range history {
				fmt.Fprintf(out, "  [%s] %s: %s\n", strings.ToLower(string(msg.SenderType)), msg.SenderPhone, msg.Message)
			}

			// The send control state is queried fresh on every open.
			canSend, err := app.Chat.VendorGate(cmd.Context(), conversation.ID)
			if err != nil {
				return userError(err, "check send permission")
			}
			if !canSend {
				fmt.Fprintln(out, "  (sending disabled until the client writes first)")
			}
			return nil
		},
	}
	open.Flags().StringVar(&orderID, "order", "", "scope the conversation to an order")

	var sendOrderID string
	send := &cobra.Command{
		Use:   "send <other-phone> <business-id> <message...>",
		Short: "Send a message to a counterparty",
		Args:  cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireLogin(); err != nil {
				return err
			}

			conversation, _, err := app.Chat.Open(cmd.Context(), args[0], args[1], sendOrderID)
			if err != nil {
				return userError(err, "open the chat")
			}

			text := strings.Join(args[2:], " ")
			if _, err := app.Chat.Send(cmd.Context(), conversation, text); err != nil {
				return userError(err, "send the message")
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Sent")
			return nil
		},
	}
	send.Flags().StringVar(&sendOrderID, "order", "", "scope the conversation to an order")

	chat.AddCommand(list, open, send)
	return chat
}
