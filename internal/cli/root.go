// Package cli is the user-facing surface of the storefront: it parses
// input, calls exactly one service per command, renders the result, and
// maps domain errors to human-readable messages.
package cli

import (
	"fmt"

	"github.com/pal-lokesh/storefront/internal/api"
	"github.com/pal-lokesh/storefront/internal/cart"
	"github.com/pal-lokesh/storefront/internal/config"
	"github.com/pal-lokesh/storefront/internal/service"
	"github.com/pal-lokesh/storefront/internal/session"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// App holds the wired application graph shared by every command.
type App struct {
	Config  *config.Config
	Logger  zerolog.Logger
	Session *session.Session
	Cart    *cart.Cart

	Users         api.UserAPI
	Businesses    api.BusinessAPI
	Themes        api.ThemeAPI
	Inventory     api.InventoryAPI
	Dishes        api.DishAPI
	Images        api.ImageAPI
	Files         api.FileAPI
	Client        *api.Client
	Availability  service.AvailabilityService
	Orders        service.OrderService
	Chat          service.ChatService
	Ratings       service.RatingService
	Notifications service.NotificationService
}

// init wires the application graph once flags are parsed.
func (a *App) init(cfgFile string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	a.Config = cfg

	a.Logger = config.NewLogger(cfg.Logger)

	token, err := cfg.Auth.BearerToken()
	if err != nil {
		return err
	}

	a.Session, err = session.New(token, a.Logger)
	if err != nil {
		return err
	}

	a.Client = api.NewClient(
		cfg.Backend.BaseURL,
		cfg.Backend.Timeout,
		a.Session,
		a.Logger,
		api.WithOnUnauthorized(a.Session.Logout),
	)

	a.Users = api.NewUserAPI(a.Client, a.Logger)
	a.Businesses = api.NewBusinessAPI(a.Client, a.Logger)
	a.Themes = api.NewThemeAPI(a.Client, a.Logger)
	a.Inventory = api.NewInventoryAPI(a.Client, a.Logger)
	a.Dishes = api.NewDishAPI(a.Client, a.Logger)
	a.Images = api.NewImageAPI(a.Client, a.Logger)
	a.Files = api.NewFileAPI(a.Client, a.Logger)
	orderAPI := api.NewOrderAPI(a.Client, a.Logger)
	chatAPI := api.NewChatAPI(a.Client, a.Logger)
	ratingAPI := api.NewRatingAPI(a.Client, a.Logger)
	notificationAPI := api.NewNotificationAPI(a.Client, a.Logger)

	// The cart exists only for a logged-in user; it is keyed by phone.
	if user := a.Session.User(); user != nil {
		store := cart.NewFileStore(afero.NewOsFs(), cfg.Storage.Dir, a.Logger)
		a.Cart, err = cart.New(user.Phone, store, a.Logger)
		if err != nil {
			return err
		}
	}

	a.Availability = service.NewAvailabilityService(api.NewAvailabilityAPI(a.Client, a.Logger), a.Cart, a.Logger)
	a.Orders = service.NewOrderService(orderAPI, a.Cart, a.Session, a.Logger)
	a.Chat = service.NewChatService(chatAPI, a.Session, a.Logger)
	a.Ratings = service.NewRatingService(ratingAPI, orderAPI, a.Businesses, a.Session, a.Logger)
	a.Notifications = service.NewNotificationService(notificationAPI, a.Session, a.Logger)

	return nil
}

// requireLogin guards commands that need an authenticated session.
func (a *App) requireLogin() error {
	if !a.Session.LoggedIn() {
		return fmt.Errorf("not logged in: set STOREFRONT_AUTH_TOKEN or auth.token_file in the config")
	}
	return nil
}

// NewRootCmd builds the full command tree.
func NewRootCmd() *cobra.Command {
	app := &App{}
	var cfgFile string

	root := &cobra.Command{
		Use:           "storefront",
		Short:         "Terminal client for the marketplace backend",
		Long:          "storefront browses businesses, manages the cart, places and tracks orders, chats with vendors, rates items, and reads notifications against the remote marketplace backend.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.init(cfgFile)
		},
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.config/storefront/storefront.yaml)")

	root.AddCommand(
		newBrowseCmd(app),
		newCartCmd(app),
		newCheckoutCmd(app),
		newOrdersCmd(app),
		newChatCmd(app),
		newRateCmd(app),
		newNotificationsCmd(app),
		newCatalogCmd(app),
	)

	return root
}
