// Foods command lists the foods available in the rules dataset.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var foodsCmd = &cobra.Command{
	Use:   "foods",
	Short: "List foods in the rules dataset",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := loadDataset()
		if err != nil {
			fmt.Fprintln(os.Stderr, "foods:", err)
			os.Exit(exitSysError)
		}

		keys := ds.FoodKeys()
		if flagJSON {
			out, err := json.MarshalIndent(keys, "", "  ")
			if err != nil {
				fmt.Fprintln(os.Stderr, "marshal JSON:", err)
				os.Exit(exitSysError)
			}
			fmt.Println(string(out))
			return nil
		}

		for _, key := range keys {
			fmt.Println(key)
		}
		return nil
	},
}
