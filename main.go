package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/envelope-zero/tracker/pkg/models"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "tracker",
	Short: "Expense tracking with budgets, dashboards and CSV import",
	Long: `tracker stores expenses and incomes, tracks budgets against them and
serves the data for dashboards through a JSON API.

Configuration is read from the environment and an optional .env file.`,
	PersistentPreRunE: initConfig,
	SilenceUsage:      true,
}

func init() {
	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(importCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initConfig loads the .env file, sets configuration defaults and
// configures logging.
func initConfig(_ *cobra.Command, _ []string) error {
	err := godotenv.Load()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env file: %w", err)
	}

	viper.AutomaticEnv()
	viper.SetDefault("DATA_DIR", "data")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("CURRENCY", "USD")

	setupLogging(os.Stdout)
	return nil
}

// setupLogging configures gin mode and the global logger.
func setupLogging(out io.Writer) {
	// gin uses debug as the default mode, we use release for
	// security reasons
	ginMode := viper.GetString("GIN_MODE")
	if ginMode == "" {
		ginMode = gin.ReleaseMode
	}
	gin.SetMode(ginMode)

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	logFormat := viper.GetString("LOG_FORMAT")
	output := out
	if (logFormat == "" && gin.IsDebugging()) || logFormat == "human" {
		output = zerolog.ConsoleWriter{Out: out}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()
}

// connectDatabase creates the data directory and connects to the database in it.
func connectDatabase() error {
	dataDir := viper.GetString("DATA_DIR")
	err := os.MkdirAll(dataDir, os.ModePerm)
	if err != nil {
		return fmt.Errorf("could not create data directory: %w", err)
	}

	return models.Connect(filepath.Join(dataDir, "tracker.db"))
}
