package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pal-lokesh/storefront/internal/model"

	"github.com/spf13/cobra"
)

const bookingDateLayout = "2006-01-02"

func newCartCmd(app *App) *cobra.Command {
	cartCmd := &cobra.Command{
		Use:   "cart",
		Short: "Manage the shopping cart",
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Show the cart contents",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireLogin(); err != nil {
				return err
			}

			items := app.Cart.Items()
			if len(items) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Cart is empty")
				return nil
			}

			rows := make([][]string, len(items))
			for i, item := range items {
				date := ""
				if !item.BookingDate.IsZero() {
					date = item.BookingDate.Format(bookingDateLayout)
				}
				rows[i] = []string{
					item.ID,
					string(item.Type),
					item.Name,
					fmt.Sprintf("x%d", item.Quantity),
					item.Subtotal().StringFixed(2),
					date,
				}
			}
			table(cmd.OutOrStdout(), []string{"ID", "TYPE", "NAME", "QTY", "SUBTOTAL", "BOOKED"}, rows)
			fmt.Fprintf(cmd.OutOrStdout(), "Total: %s (%s)\n", app.Cart.Total().StringFixed(2), items[0].BusinessName)
			return nil
		},
	}

	var (
		qty    int
		date   string
		notify bool
	)
	add := &cobra.Command{
		Use:   "add <item-id> <item-type>",
		Short: "Add an item to the cart, optionally with a booking date",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireLogin(); err != nil {
				return err
			}

			itemType, err := model.ParseItemType(args[1])
			if err != nil {
				return err
			}
			if qty < 1 {
				return errors.New(model.ErrInvalidQuantity.Message)
			}

			item, err := app.lookupItem(cmd.Context(), args[0], itemType)
			if err != nil {
				return userError(err, "look up the item")
			}
			item.Quantity = qty

			if date == "" {
				if err := app.Cart.Add(*item); err != nil {
					return userError(err, "add to cart")
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Added %s to the cart\n", item.Name)
				return nil
			}

			when, err := time.Parse(bookingDateLayout, date)
			if err != nil {
				return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", date)
			}

			err = app.Availability.AddWithDate(cmd.Context(), *item, when)
			if errors.Is(err, model.ErrDateUnavailable) {
				if notify {
					app.Availability.NotifyWhenAvailable(cmd.Context(), model.NotifyRequest{
						ItemID:         item.ID,
						ItemType:       item.Type,
						BusinessID:     item.BusinessID,
						RecipientPhone: app.Session.User().Phone,
					})
					fmt.Fprintln(cmd.OutOrStdout(), "Date unavailable; you will be notified when it frees up")
					return nil
				}
				return userError(err, "book the date")
			}
			if err != nil {
				return userError(err, "add to cart")
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added %s for %s\n", item.Name, date)
			return nil
		},
	}
	add.Flags().IntVar(&qty, "qty", 1, "quantity to add")
	add.Flags().StringVar(&date, "date", "", "booking date (YYYY-MM-DD); checked for availability before the add")
	add.Flags().BoolVar(&notify, "notify", false, "when the date is unavailable, ask to be notified instead of failing")

	remove := &cobra.Command{
		Use:   "remove <item-id> <item-type>",
		Short: "Remove an item from the cart",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireLogin(); err != nil {
				return err
			}

			itemType, err := model.ParseItemType(args[1])
			if err != nil {
				return err
			}
			if err := app.Cart.Remove(args[0], itemType); err != nil {
				return userError(err, "remove from cart")
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Removed")
			return nil
		},
	}

	clear := &cobra.Command{
		Use:   "clear",
		Short: "Empty the cart",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireLogin(); err != nil {
				return err
			}

			if err := app.Cart.Clear(); err != nil {
				return userError(err, "clear the cart")
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Cart cleared")
			return nil
		},
	}

	cartCmd.AddCommand(show, add, remove, clear)
	return cartCmd
}

// lookupItem resolves a catalogue item of any type into a cart line with
// its current price and business.
func (a *App) lookupItem(ctx context.Context, itemID string, itemType model.ItemType) (*model.CartItem, error) {
	item := &model.CartItem{ID: itemID, Type: itemType}

	switch itemType {
	case model.ItemTypeTheme:
		theme, err := a.Themes.Get(ctx, itemID)
		if err != nil {
			return nil, err
		}
		item.Name = theme.Name
		item.Price = theme.Price
		item.BusinessID = theme.BusinessID
	case model.ItemTypeInventory:
		inv, err := a.Inventory.Get(ctx, itemID)
		if err != nil {
			return nil, err
		}
		item.Name = inv.Name
		item.Price = inv.Price
		item.BusinessID = inv.BusinessID
	case model.ItemTypeDish:
		dish, err := a.Dishes.Get(ctx, itemID)
		if err != nil {
			return nil, err
		}
		item.Name = dish.Name
		item.Price = dish.Price
		item.BusinessID = dish.BusinessID
	default:
		return nil, fmt.Errorf("invalid item type %q", itemType)
	}

	business, err := a.Businesses.Get(ctx, item.BusinessID)
	if err != nil {
		return nil, err
	}
	item.BusinessName = business.Name

	return item, nil
}
