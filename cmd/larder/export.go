// Export command serializes the active rules dataset back to its file format.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/larder/internal/rules"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the full rules dataset as JSON",
	Long: `Export serializes the active rules dataset back to the rules file format.
The output is byte-for-byte reproducible: exporting, reloading, and
exporting again yields identical bytes.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := loadDataset()
		if err != nil {
			fmt.Fprintln(os.Stderr, "export:", err)
			os.Exit(exitSysError)
		}

		out, err := rules.Export(ds)
		if err != nil {
			fmt.Fprintln(os.Stderr, "export:", err)
			os.Exit(exitSysError)
		}

		if exportOut == "" {
			fmt.Print(string(out))
			return nil
		}

		if err := os.WriteFile(exportOut, out, 0o644); err != nil {
			fmt.Fprintln(os.Stderr, "write export:", err)
			os.Exit(exitSysError)
		}
		fmt.Printf("Exported rules dataset to %s\n", exportOut)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportOut, "out", "", "write to file instead of stdout")
}
