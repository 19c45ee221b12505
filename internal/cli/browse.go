package cli

import (
	"github.com/pal-lokesh/storefront/internal/model"

	"github.com/spf13/cobra"
)

func newBrowseCmd(app *App) *cobra.Command {
	browse := &cobra.Command{
		Use:   "browse",
		Short: "Browse businesses and their catalogues",
	}

	businesses := &cobra.Command{
		Use:   "businesses",
		Short: "List all businesses",
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := app.Businesses.List(cmd.Context())
			if err != nil {
				return userError(err, "list businesses")
			}

			rows := make([][]string, len(list))
			for i, b := range list {
				rows[i] = []string{b.ID, b.Name, b.Category, b.Address}
			}
			table(cmd.OutOrStdout(), []string{"ID", "NAME", "CATEGORY", "ADDRESS"}, rows)
			return nil
		},
	}

	themes := &cobra.Command{
		Use:   "themes <business-id>",
		Short: "List a business's themes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := app.Themes.ListByBusiness(cmd.Context(), args[0])
			if err != nil {
				return userError(err, "list themes")
			}

			rows := make([][]string, len(list))
			for i, t := range list {
				rows[i] = []string{t.ID, t.Name, t.Price.StringFixed(2)}
			}
			table(cmd.OutOrStdout(), []string{"ID", "NAME", "PRICE"}, rows)
			return nil
		},
	}

	inventory := &cobra.Command{
		Use:   "inventory <business-id>",
		Short: "List a business's inventory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := app.Inventory.ListByBusiness(cmd.Context(), args[0])
			if err != nil {
				return userError(err, "list inventory")
			}

			rows := make([][]string, len(list))
			for i, item := range list {
				rows[i] = []string{item.ID, item.Name, item.Price.StringFixed(2)}
			}
			table(cmd.OutOrStdout(), []string{"ID", "NAME", "PRICE"}, rows)
			return nil
		},
	}

	dishes := &cobra.Command{
		Use:   "dishes <business-id>",
		Short: "List a business's dishes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := app.Dishes.ListByBusiness(cmd.Context(), args[0])
			if err != nil {
				return userError(err, "list dishes")
			}

			rows := make([][]string, len(list))
			for i, d := range list {
				rows[i] = []string{d.ID, d.Name, d.Price.StringFixed(2), d.Category}
			}
			table(cmd.OutOrStdout(), []string{"ID", "NAME", "PRICE", "CATEGORY"}, rows)
			return nil
		},
	}

	images := &cobra.Command{
		Use:   "images <item-id> <item-type>",
		Short: "List an item's images",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			itemType, err := model.ParseItemType(args[1])
			if err != nil {
				return err
			}

			list, err := app.Images.ListForItem(cmd.Context(), args[0], itemType)
			if err != nil {
				return userError(err, "list images")
			}

			rows := make([][]string, len(list))
			for i, img := range list {
				primary := ""
				if img.IsPrimary {
					primary = "primary"
				}
				rows[i] = []string{img.ID, app.Client.AbsoluteURL(img.Path), primary}
			}
			table(cmd.OutOrStdout(), []string{"ID", "URL", ""}, rows)
			return nil
		},
	}

	browse.AddCommand(businesses, themes, inventory, dishes, images)
	return browse
}
