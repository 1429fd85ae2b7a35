// Init command creates the configuration directory and default config.yaml.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the larder configuration",
	Long:  `Init creates the configuration directory and a default config.yaml.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, "init:", err)
			os.Exit(exitSysError)
		}

		// PersistentPreRunE already created the directory and default file;
		// init just confirms the location.
		fmt.Printf("Configuration ready at %s\n", filepath.Join(configDir, configFileExt))
		return nil
	},
}
