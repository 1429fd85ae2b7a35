// Root command for the larder CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/larder/internal/paths"
	"github.com/mesh-intelligence/larder/pkg/larder"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagRules     string
	flagJSON      bool
)

// Values loaded from config.yaml by PersistentPreRunE so all subcommands
// can use them.
var (
	configDataDir   string
	configRulesPath string
)

var rootCmd = &cobra.Command{
	Use:     "larder",
	Short:   "Larder estimates how long food stays usable",
	Version: larder.Version,
	Long: `Larder estimates how long a food item remains safe to use given its
preparation state, storage method, and situational modifiers, using a
static rules dataset. Estimates are heuristic guidance, never a
food-safety guarantee.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		configDataDir = cfg.GetString(cfgKeyDataDir)
		configRulesPath = cfg.GetString(cfgKeyRulesPath)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "history data directory (default: $(CWD)/.larder-db)")
	rootCmd.PersistentFlags().StringVar(&flagRules, "rules", "", "rules dataset file (default: built-in dataset)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(estimateCmd)
	rootCmd.AddCommand(foodsCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(modifiersCmd)
	rootCmd.AddCommand(sensoryCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(historyCmd)
}

// resolveDataDir returns the history data directory following the precedence:
// --data-dir flag > config.yaml data_dir > LARDER_DATA_DIR env > default.
func resolveDataDir() (string, error) {
	return paths.ResolveDataDir(flagDataDir, configDataDir)
}

// resolveConfigDir returns the configuration directory following the
// precedence: --config-dir flag > LARDER_CONFIG_DIR env > platform default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}

// resolveRulesPath returns the rules file path, empty for the built-in
// dataset, following the precedence: --rules flag > config.yaml rules_path >
// LARDER_RULES env.
func resolveRulesPath() (string, error) {
	return paths.ResolveRulesPath(flagRules, configRulesPath)
}
