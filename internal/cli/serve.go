package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"revenueplatform/internal/api"
	"revenueplatform/internal/log"
	"revenueplatform/internal/server"
	"revenueplatform/internal/util"
)

const shutdownTimeout = 5 * time.Second

func serveCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the dashboard server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, opts)
		},
	}
	cmd.Flags().IntVar(&opts.port, "port", 0, "listen port (ignored when config.toml sets one)")
	cmd.Flags().BoolVar(&opts.devMode, "dev", false, "development mode")
	cmd.Flags().BoolVar(&opts.noBrowser, "no-browser", false, "do not open the browser")
	return cmd
}

func runServe(cmd *cobra.Command, opts *options) error {
	rt, err := setup(cmd, opts)
	if err != nil {
		return err
	}
	defer rt.Close()

	log.SetDefault(rt.logger)

	handler := api.NewHandler(rt.app, rt.store, rt.coord, rt.format, rt.logger)
	srv := server.NewServer(rt.cfg, handler, rt.logger)

	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", rt.cfg.Server.Port),
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	url := fmt.Sprintf("http://localhost:%d", rt.cfg.Server.Port)

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, titleStyle.Render("Revenue Platform"))
	fmt.Fprintf(out, "Listening on %s\n", url)

	g, ctx := errgroup.WithContext(cmd.Context())

	g.Go(func() error {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		rt.logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})

	if rt.cfg.Server.OpenBrowser && !rt.cfg.Server.DevMode {
		if err := util.OpenBrowserWithFallback(url); err != nil {
			fmt.Fprintf(out, "Could not open a browser, visit %s\n", url)
		}
	}

	return g.Wait()
}
