package cli

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/pal-lokesh/storefront/internal/api"
	"github.com/pal-lokesh/storefront/internal/model"
)

// userError rewrites an error for display. Domain errors carry their own
// message; a 403 becomes a denial naming the attempted action; a session
// expiry tells the user to log in again. Everything else surfaces the
// backend's own message with a hint that an explicit retry may help.
func userError(err error, action string) error {
	var domainErr *model.DomainError
	if errors.As(err, &domainErr) {
		return errors.New(domainErr.Message)
	}

	if api.IsForbidden(err) {
		return fmt.Errorf("you are not allowed to %s", action)
	}

	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		return fmt.Errorf("%s failed: %s (run the command again to retry)", action, apiErr.Message)
	}

	return fmt.Errorf("%s failed: %w", action, err)
}

// table renders rows with aligned columns.
func table(w io.Writer, header []string, rows [][]string) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	printRow(tw, header)
	for _, row := range rows {
		printRow(tw, row)
	}
	_ = tw.Flush()
}

func printRow(w io.Writer, cells []string) {
	for i, cell := range cells {
		if i > 0 {
			fmt.Fprint(w, "\t")
		}
		fmt.Fprint(w, cell)
	}
	fmt.Fprintln(w)
}
