package cli

import (
	"fmt"
	"os"

	"github.com/cachar666/PluginRevit-V1/internal/model"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "takeoff",
	Short: "Takeoff - quantity extraction from BIM model snapshots",
	Long: `Takeoff extracts per-element and per-material quantities from a BIM
model snapshot and writes them to a styled Excel workbook.

It groups the model's elements into a category/family selection tree,
filters families and materials by their Keynote and Assembly Code
classification tags, resolves a configurable set of exportable
properties per element, and aggregates face area and approximate
volume per material across each element's geometry.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Display the version number and build information for Takeoff.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("takeoff v0.1.0")
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.takeoff/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	// Bind flags to viper
	_ = viper.BindPFlag("output.verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
}

// initConfig reads in config file and ENV variables
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			return
		}

		// Search for config in home directory
		viper.AddConfigPath(home + "/.takeoff")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	// Read in environment variables that match TAKEOFF_*
	viper.SetEnvPrefix("TAKEOFF")
	viper.AutomaticEnv()

	// If a config file is found, read it in
	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}

// loadConfig layers the config file over the built-in defaults.
func loadConfig() *model.Config {
	cfg := model.DefaultConfig()
	if v := viper.GetString("filter"); v != "" {
		cfg.Filter = v
	}
	if v := viper.GetString("output.dir"); v != "" {
		cfg.Output.Dir = v
	}
	if v := viper.GetString("export.sheet_name"); v != "" {
		cfg.Export.SheetName = v
	}
	if v := viper.GetString("export.title"); v != "" {
		cfg.Export.Title = v
	}
	cfg.Output.Verbose = verbose || viper.GetBool("output.verbose")
	return cfg
}
