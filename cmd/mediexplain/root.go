package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"mediexplain/internal/app"
	"mediexplain/internal/config"
	"mediexplain/internal/models"
	"mediexplain/internal/storage"
)

var errNotLoggedIn = errors.New("not logged in; run `mediexplain login` or `mediexplain demo` first")

type cli struct {
	configFile string
}

func newRootCmd() *cobra.Command {
	c := &cli{}
	root := &cobra.Command{
		Use:          "mediexplain",
		Short:        "Understand your medical reports in plain language",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&c.configFile, "config", "", "path to a config file")

	root.AddCommand(
		c.serveCmd(),
		c.loginCmd(false),
		c.loginCmd(true),
		c.demoCmd(),
		c.logoutCmd(),
		c.whoamiCmd(),
		c.analyzeCmd(),
		c.historyCmd(),
		c.dashboardCmd(),
		c.knowledgeCmd(),
	)
	return root
}

// profileDefaults points local commands at a JSON file in the user's home,
// the command line counterpart of browser storage.
func profileDefaults() []config.Default {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return []config.Default{
		{Key: "storage.driver", Value: storage.DriverFile},
		{Key: "storage.path", Value: filepath.Join(dir, "mediexplain", "profile.json")},
	}
}

// open builds the local app for one command run.
func (c *cli) open(ctx context.Context) (*app.App, error) {
	cfg, err := config.Load(c.configFile, profileDefaults()...)
	if err != nil {
		return nil, err
	}
	return app.New(ctx, cfg)
}

// withApp runs fn against a freshly opened app and closes it afterwards.
func (c *cli) withApp(cmd *cobra.Command, fn func(ctx context.Context, a *app.App) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	a, err := c.open(ctx)
	if err != nil {
		return err
	}
	defer a.Close()
	return fn(ctx, a)
}

func requireUser(ctx context.Context, a *app.App) (models.User, error) {
	user, ok, err := a.Sessions.Load(ctx)
	if err != nil {
		return models.User{}, err
	}
	if !ok {
		return models.User{}, errNotLoggedIn
	}
	return user, nil
}

func (c *cli) serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(c.configFile)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return app.Serve(ctx, cfg)
		},
	}
}
