package main

import (
	"github.com/spf13/cobra"

	"github.com/pthm/relnorm/internal/cli"
)

var (
	// Global state set during PersistentPreRunE
	cfg        *cli.Config
	configPath string

	// Persistent flags
	cfgFile string
	verbose int
	quiet   bool
)

var rootCmd = &cobra.Command{
	Use:   "relnorm",
	Short: "Relational schema normalization",
	Long: `relnorm - Relational Schema Normalization

Relnorm analyzes relation schemas against their functional dependencies,
classifies them from 1NF to BCNF, and decomposes violating schemas into
lossless BCNF fragments ready to apply to PostgreSQL.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip config loading for help/completion/version commands
		if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "version" {
			return nil
		}

		var err error
		cfg, configPath, err = cli.LoadConfig(cfgFile)
		if err != nil {
			return cli.ConfigError("loading configuration", err)
		}

		return nil
	},
	SilenceUsage:  true, // Don't show usage on errors
	SilenceErrors: true, // We handle errors ourselves
}

// Command group IDs
const (
	groupAnalysis = "analysis"
	groupExport   = "export"
	groupUtility  = "utility"
)

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: auto-discover relnorm.yaml)")
	rootCmd.PersistentFlags().CountVarP(&verbose, "verbose", "v", "increase verbosity (can be repeated)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-error output")

	// Define command groups
	rootCmd.AddGroup(
		&cobra.Group{ID: groupAnalysis, Title: "Analysis:"},
		&cobra.Group{ID: groupExport, Title: "Export:"},
		&cobra.Group{ID: groupUtility, Title: "Utility:"},
	)

	// Analysis commands
	analyzeCmd.GroupID = groupAnalysis
	closureCmd.GroupID = groupAnalysis
	keysCmd.GroupID = groupAnalysis
	decomposeCmd.GroupID = groupAnalysis
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(closureCmd)
	rootCmd.AddCommand(keysCmd)
	rootCmd.AddCommand(decomposeCmd)

	// Export commands
	ddlCmd.GroupID = groupExport
	graphCmd.GroupID = groupExport
	applyCmd.GroupID = groupExport
	rootCmd.AddCommand(ddlCmd)
	rootCmd.AddCommand(graphCmd)
	rootCmd.AddCommand(applyCmd)

	// Utility commands
	exampleCmd.GroupID = groupUtility
	configCmd.GroupID = groupUtility
	versionCmd.GroupID = groupUtility
	rootCmd.AddCommand(exampleCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		cli.ExitWithError(err)
	}
}

// resolveString returns the first non-empty string from the provided values.
// Used to implement precedence: flag > config > default.
func resolveString(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// resolveBool returns true if any of the provided values is true.
// Used for boolean flags where any true value should win.
func resolveBool(values ...bool) bool {
	for _, v := range values {
		if v {
			return true
		}
	}
	return false
}
