package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/parts-pile/carfinder/cache"
	"github.com/parts-pile/carfinder/config"
	"github.com/parts-pile/carfinder/handlers"
	"github.com/parts-pile/carfinder/server"
	"github.com/parts-pile/carfinder/ui"
	"github.com/parts-pile/carfinder/vehicle"
)

const (
	ServeCmdName  = "serve"
	ServeCmdShort = "Start the car finder web server"
	ServeCmdLong  = "Start the HTTP server that renders the year, make and model widgets and the JSON API."
)

type loadFunc func(cmd *cobra.Command) (*config.Config, error)

func newServeCmd(v *viper.Viper, load loadFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   ServeCmdName,
		Short: ServeCmdShort,
		Long:  ServeCmdLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load(cmd)
			if err != nil {
				return err
			}
			return serve(cmd, cfg)
		},
	}

	cmd.Flags().IntP("port", "p", 8080, "port to listen on")
	v.BindPFlag("server.port", cmd.Flags().Lookup("port"))
	return cmd
}

func serve(cmd *cobra.Command, cfg *config.Config) error {
	log.Printf("Started serve cmd")

	finder, err := buildFinder(cfg.Catalog)
	if err != nil {
		return err
	}
	log.Printf("[catalog] %d vehicles across %d years (%s)", finder.Len(), len(finder.Years()), cfg.Catalog.Driver)

	lookupCache, err := cache.New[[]string]("Vehicle Lookup Cache", cfg.Cache.TTL, nil)
	if err != nil {
		return fmt.Errorf("failed to initialize vehicle cache: %w", err)
	}
	defer lookupCache.Close()
	log.Printf("[vehicle-cache] Cache initialized successfully")

	h := handlers.New(
		vehicle.NewCachedFinder(finder, lookupCache),
		handlers.WithCache(lookupCache),
		handlers.WithAssets(ui.Assets{
			HTMXURL:        cfg.UI.HTMXURL,
			TailwindCSSURL: cfg.UI.TailwindCSSURL,
		}),
	)

	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.Run(ctx, cfg.Server, server.New(cfg.Server, h))
}
