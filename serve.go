package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/envelope-zero/tracker/pkg/router"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var errAPIURLMissing = errors.New("environment variable API_URL must be set")

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Run the HTTP API.

API_URL must be set to the URL the API is reachable at. Amounts are displayed
in the currency set in CURRENCY, the database is stored in DATA_DIR.`,
		Args: cobra.NoArgs,
		RunE: runServe,
	}

	cmd.Flags().String("port", "", "port to listen on (default from PORT or 8080)")
	_ = viper.BindPFlag("PORT", cmd.Flags().Lookup("port"))

	return cmd
}

// apiURL returns the parsed API_URL.
func apiURL() (*url.URL, error) {
	raw := viper.GetString("API_URL")
	if raw == "" {
		return nil, errAPIURLMissing
	}

	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("environment variable API_URL is not a valid URL: %w", err)
	}

	return u, nil
}

func runServe(cmd *cobra.Command, _ []string) error {
	u, err := apiURL()
	if err != nil {
		return err
	}

	err = connectDatabase()
	if err != nil {
		return err
	}

	r, teardown, err := router.Config(u)
	if err != nil {
		return err
	}
	defer teardown()
	router.AttachRoutes(r.Group("/"))

	srv := &http.Server{
		Addr:              ":" + viper.GetString("PORT"),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Msg(err.Error())
		}
	}()
	log.Info().Str("addr", srv.Addr).Msg("tracker startup complete")

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}
