package cli

import (
	"fmt"
	"strconv"

	"github.com/pal-lokesh/storefront/internal/model"

	"github.com/spf13/cobra"
)

func newRateCmd(app *App) *cobra.Command {
	var comment string

	rate := &cobra.Command{
		Use:   "rate <item-id> <item-type> <business-id> <stars>",
		Short: "Rate an item you received",
		Long:  "Rate an item 1-5. Clients may rate only items from a delivered order; submitting again updates the existing rating.",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireLogin(); err != nil {
				return err
			}

			itemType, err := model.ParseItemType(args[1])
			if err != nil {
				return err
			}

			stars, err := strconv.Atoi(args[3])
			if err != nil || !model.ValidStars(stars) {
				// Caught before any request is sent.
				return fmt.Errorf("%s", model.ErrInvalidRating.Message)
			}

			rating, err := app.Ratings.Submit(cmd.Context(), args[0], itemType, args[2], stars, comment)
			if err != nil {
				return userError(err, "submit the rating")
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Rated %d/5 (rating %s)\n", rating.Rating, rating.ID)
			return nil
		},
	}
	rate.Flags().StringVar(&comment, "comment", "", "optional review text")

	ratings := &cobra.Command{
		Use:   "ratings <item-id> <item-type>",
		Short: "Show an item's ratings",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			itemType, err := model.ParseItemType(args[1])
			if err != nil {
				return err
			}

			list, err := app.Ratings.ListForItem(cmd.Context(), args[0], itemType)
			if err != nil {
				return userError(err, "list ratings")
			}

			rows := make([][]string, len(list))
			for i, r := range list {
				rows[i] = []string{r.ClientPhone, fmt.Sprintf("%d/5", r.Rating), r.Comment}
			}
			table(cmd.OutOrStdout(), []string{"CLIENT", "STARS", "COMMENT"}, rows)
			return nil
		},
	}

	rate.AddCommand(ratings)
	return rate
}
