// Modifiers and sensory commands list the dataset's adjustment factors and
// spoilage signs.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var modifiersCmd = &cobra.Command{
	Use:   "modifiers",
	Short: "List situational modifiers and their factors",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := loadDataset()
		if err != nil {
			fmt.Fprintln(os.Stderr, "modifiers:", err)
			os.Exit(exitSysError)
		}

		if flagJSON {
			mods := make([]any, 0, len(ds.Modifiers))
			for _, key := range ds.ModifierKeys() {
				mods = append(mods, ds.Modifiers[key])
			}
			out, err := json.MarshalIndent(mods, "", "  ")
			if err != nil {
				fmt.Fprintln(os.Stderr, "marshal JSON:", err)
				os.Exit(exitSysError)
			}
			fmt.Println(string(out))
			return nil
		}

		for _, key := range ds.ModifierKeys() {
			mod := ds.Modifiers[key]
			fmt.Printf("%s  %s (x%g)\n", mod.Key, mod.Label, mod.Factor)
		}
		return nil
	},
}

var sensoryCmd = &cobra.Command{
	Use:   "sensory",
	Short: "List observable spoilage signs",
	Long: `Sensory lists the observable spoilage signs from the rules dataset.
Selecting any of them on estimate overrides the numeric result with a
discard directive.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := loadDataset()
		if err != nil {
			fmt.Fprintln(os.Stderr, "sensory:", err)
			os.Exit(exitSysError)
		}

		if flagJSON {
			flags := make([]any, 0, len(ds.SensoryFlags))
			for _, key := range ds.SensoryKeys() {
				flags = append(flags, ds.SensoryFlags[key])
			}
			out, err := json.MarshalIndent(flags, "", "  ")
			if err != nil {
				fmt.Fprintln(os.Stderr, "marshal JSON:", err)
				os.Exit(exitSysError)
			}
			fmt.Println(string(out))
			return nil
		}

		for _, key := range ds.SensoryKeys() {
			flag := ds.SensoryFlags[key]
			fmt.Printf("%s  %s\n", flag.Key, flag.Label)
		}
		return nil
	},
}
