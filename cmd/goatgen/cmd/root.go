package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pepconf/goatgen/pkg/logger"
)

var (
	cfgFile  string
	logLevel string
	noColor  bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "goatgen",
	Short: "ORCA GOAT input generator",
	Long: `goatgen prepares ORCA GOAT conformational-search runs for batches of
molecules: it collects the run configuration, validates method/solvation
compatibility, and generates the ORCA input files, SLURM job scripts, and
batch submission helper for each selected XYZ file.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./goatgen.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	// Add commands
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(presetCmd)
	rootCmd.AddCommand(submitCmd)
	rootCmd.AddCommand(statusCmd)
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// initConfig configures logging and reads the config file and environment
func initConfig() {
	logger.SetLevel(logger.ParseLevel(logLevel))
	if noColor {
		logger.SetNoColor(true)
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/.goatgen")
		viper.SetConfigType("yaml")
		viper.SetConfigName("goatgen")
	}

	viper.SetEnvPrefix("GOATGEN")
	viper.AutomaticEnv()

	_ = viper.ReadInConfig()
}
