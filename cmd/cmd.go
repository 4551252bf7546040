package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pharmalife/timetracker/internal"
)

var (
	seedYear int
	seedDemo bool
)

var rootCmd = &cobra.Command{
	Use:   "timetracker",
	Short: "TimeTracker",
	Long:  `Time tracking and payroll status service for a small team.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func loadConfig(path string) (*internal.Config, error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yml")
	v.SetEnvPrefix("TT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.read_header_timeout", 5*time.Second)
	v.SetDefault("http_server.read_timeout", 10*time.Second)
	v.SetDefault("http_server.write_timeout", 30*time.Second)
	v.SetDefault("http_server.idle_timeout", 60*time.Second)
	v.SetDefault("storage.backend", internal.StorageBackendFile)
	v.SetDefault("storage.data_dir", "data")
	v.SetDefault("storage.sqlite_path", "data/timetracker.db")
	v.SetDefault("security.token_ttl", 12*time.Hour)
	v.SetDefault("security.bcrypt_cost", 10)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine; env vars and defaults cover it.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg internal.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("error validating config: %w", err)
	}

	return &cfg, nil
}

func init() {
	seedCmd.Flags().IntVar(&seedYear, "year", 0, "Year to generate periods for (default: current year)")
	seedCmd.Flags().BoolVar(&seedDemo, "demo", false, "Also seed demo resources")

	rootCmd.AddCommand(httpServerCmd)
	rootCmd.AddCommand(seedCmd)
}
