// Package commands implements the CLI commands for menuharvest.
package commands

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "menuharvest",
	Short: "Extract structured restaurant menus from web pages",
	Long: `Menuharvest recovers structured menus (items, prices, categories)
from restaurant websites and mapping-service listings.

It runs three extraction strategies in priority order - embedded
schema.org metadata, menu-container markup, and plain text patterns -
and merges their output into one deduplicated menu document.

Examples:
  # Extract a menu from a restaurant homepage
  menuharvest scrape -u "https://example-kebap.com.tr"

  # Use a browser snapshot for a script-rendered page
  menuharvest scrape -u "https://maps.example.com/place/..." \
      --fetch-mode snapshot --source google_maps

  # Run against a saved page, no network at all
  menuharvest scrape --input page.html --url "https://example.com"`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default $HOME/.menuharvest.yaml)")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress progress output")

	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
}

func initConfig() {
	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigName(".menuharvest")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("MENUHARVEST")
	viper.AutomaticEnv()

	// Read config file (ignore error if not found)
	_ = viper.ReadInConfig()
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
