package cli

import (
	"fmt"
	"time"

	"github.com/pal-lokesh/storefront/internal/model"

	"github.com/spf13/cobra"
)

func newCheckoutCmd(app *App) *cobra.Command {
	var (
		address      string
		phone        string
		deliveryDate string
		instructions string
	)

	checkout := &cobra.Command{
		Use:   "checkout",
		Short: "Submit the cart as an order",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireLogin(); err != nil {
				return err
			}
			// Validation failures stop here, before any request goes out.
			if address == "" {
				return fmt.Errorf("--address is required")
			}
			if phone == "" {
				phone = app.Session.User().Phone
			}

			delivery := model.DeliveryInfo{
				Address:      address,
				Phone:        phone,
				Instructions: instructions,
			}
			if deliveryDate != "" {
				when, err := time.Parse(bookingDateLayout, deliveryDate)
				if err != nil {
					return fmt.Errorf("invalid delivery date %q, expected YYYY-MM-DD", deliveryDate)
				}
				delivery.DeliveryDate = when
			}

			order, err := app.Orders.Checkout(cmd.Context(), delivery)
			if err != nil {
				return userError(err, "place the order")
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Order %s placed, total %s\n", order.ID, order.TotalAmount.StringFixed(2))
			return nil
		},
	}

	checkout.Flags().StringVar(&address, "address", "", "delivery address")
	checkout.Flags().StringVar(&phone, "phone", "", "contact phone (defaults to the account phone)")
	checkout.Flags().StringVar(&deliveryDate, "delivery-date", "", "requested delivery date (YYYY-MM-DD)")
	checkout.Flags().StringVar(&instructions, "instructions", "", "delivery instructions")
	return checkout
}

func newOrdersCmd(app *App) *cobra.Command {
	orders := &cobra.Command{
		Use:   "orders",
		Short: "List and track orders",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List your orders",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireLogin(); err != nil {
				return err
			}

			result, err := app.Orders.Refresh(cmd.Context())
			if err != nil {
				return userError(err, "refresh orders")
			}

			rows := make([][]string, len(result))
			for i, o := range result {
				rows[i] = []string{
					o.ID,
					string(o.Status),
					o.TotalAmount.StringFixed(2),
					o.OrderDate.Format(bookingDateLayout),
				}
			}
			table(cmd.OutOrStdout(), []string{"ID", "STATUS", "TOTAL", "PLACED"}, rows)
			return nil
		},
	}

	status := &cobra.Command{
		Use:   "status <order-id>",
		Short: "Show an order's progress",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireLogin(); err != nil {
				return err
			}

			order, err := app.Orders.Get(cmd.Context(), args[0])
			if err != nil {
				return userError(err, "load the order")
			}

			renderProgression(cmd, order)
			return nil
		},
	}

	cancel := &cobra.Command{
		Use:   "cancel <order-id>",
		Short: "Cancel an order while it is still pending or confirmed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireLogin(); err != nil {
				return err
			}

			order, err := app.Orders.Cancel(cmd.Context(), args[0])
			if err != nil {
				return userError(err, "cancel the order")
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Order %s cancelled\n", order.ID)
			return nil
		},
	}

	orders.AddCommand(list, status, cancel)
	return orders
}

func renderProgression(cmd *cobra.Command, order *model.Order) {
	out := cmd.OutOrStdout()
	progression := model.ProgressionFor(order.Status)

	fmt.Fprintf(out, "Order %s (total %s)\n", order.ID, order.TotalAmount.StringFixed(2))
	for _, step := range progression.Steps {
		mark := "[ ]"
		switch {
		case progression.Cancelled:
			// Every step renders incomplete when the order was cancelled.
		case step.Current:
			mark = "[>]"
		case step.Complete:
			mark = "[x]"
		}
		fmt.Fprintf(out, "  %s %s\n", mark, step.Label)
	}
	if progression.Cancelled {
		fmt.Fprintln(out, "  order was cancelled")
	}
}
