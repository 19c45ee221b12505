package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pal-lokesh/storefront/internal/model"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// newCatalogCmd is the vendor-side surface: create and update sellable
// items and manage their image sets.
func newCatalogCmd(app *App) *cobra.Command {
	catalog := &cobra.Command{
		Use:   "catalog",
		Short: "Manage your business's items (vendor)",
	}

	var (
		price     string
		imagePath string
	)
	addItem := &cobra.Command{
		Use:   "add <item-type> <business-id> <name>",
		Short: "Create an item, optionally uploading its first image",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireLogin(); err != nil {
				return err
			}

			itemType, err := model.ParseItemType(args[0])
			if err != nil {
				return err
			}
			amount, err := decimal.NewFromString(price)
			if err != nil || amount.IsNegative() {
				return fmt.Errorf("invalid --price %q", price)
			}

			itemID, err := app.createItem(cmd, itemType, args[1], args[2], amount)
			if err != nil {
				return userError(err, "create the item")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s %s\n", args[0], itemID)

			// The item exists regardless of what happens to its image; a
			// failed upload is reported on its own, not as a failed create.
			if imagePath != "" {
				if err := app.attachImage(cmd, itemID, itemType, imagePath); err != nil {
					fmt.Fprintf(cmd.OutOrStdout(), "Item created, but the image upload failed: %v\n", userError(err, "upload the image"))
				}
			}
			return nil
		},
	}
	addItem.Flags().StringVar(&price, "price", "0", "item price")
	addItem.Flags().StringVar(&imagePath, "image", "", "path of an image to upload and attach")

	upload := &cobra.Command{
		Use:   "upload <item-id> <item-type> <file>",
		Short: "Upload an image and attach it to an existing item",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireLogin(); err != nil {
				return err
			}

			itemType, err := model.ParseItemType(args[1])
			if err != nil {
				return err
			}

			if err := app.attachImage(cmd, args[0], itemType, args[2]); err != nil {
				return userError(err, "upload the image")
			}
			return nil
		},
	}

	setPrimary := &cobra.Command{
		Use:   "set-primary <image-id>",
		Short: "Mark an image as the item's featured image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireLogin(); err != nil {
				return err
			}

			if err := app.Images.SetPrimary(cmd.Context(), args[0]); err != nil {
				return userError(err, "set the primary image")
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Primary image updated")
			return nil
		},
	}

	removeItem := &cobra.Command{
		Use:   "remove <item-id> <item-type>",
		Short: "Delete an item",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireLogin(); err != nil {
				return err
			}

			itemType, err := model.ParseItemType(args[1])
			if err != nil {
				return err
			}

			switch itemType {
			case model.ItemTypeTheme:
				err = app.Themes.Delete(cmd.Context(), args[0])
			case model.ItemTypeInventory:
				err = app.Inventory.Delete(cmd.Context(), args[0])
			case model.ItemTypeDish:
				err = app.Dishes.Delete(cmd.Context(), args[0])
			}
			if err != nil {
				return userError(err, "delete the item")
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Deleted")
			return nil
		},
	}

	catalog.AddCommand(addItem, upload, setPrimary, removeItem)
	return catalog
}

func (a *App) createItem(cmd *cobra.Command, itemType model.ItemType, businessID, name string, price decimal.Decimal) (string, error) {
	ctx := cmd.Context()

	switch itemType {
	case model.ItemTypeTheme:
		created, err := a.Themes.Create(ctx, &model.Theme{BusinessID: businessID, Name: name, Price: price})
		if err != nil {
			return "", err
		}
		return created.ID, nil
	case model.ItemTypeInventory:
		created, err := a.Inventory.Create(ctx, &model.InventoryItem{BusinessID: businessID, Name: name, Price: price})
		if err != nil {
			return "", err
		}
		return created.ID, nil
	default:
		created, err := a.Dishes.Create(ctx, &model.Dish{BusinessID: businessID, Name: name, Price: price})
		if err != nil {
			return "", err
		}
		return created.ID, nil
	}
}

func (a *App) attachImage(cmd *cobra.Command, itemID string, itemType model.ItemType, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	serverPath, err := a.Files.Upload(cmd.Context(), filepath.Base(path), file)
	if err != nil {
		return err
	}

	image, err := a.Images.Create(cmd.Context(), &model.Image{
		ItemID:   itemID,
		ItemType: itemType,
		Path:     serverPath,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Image %s attached (%s)\n", image.ID, a.Client.AbsoluteURL(serverPath))
	return nil
}
