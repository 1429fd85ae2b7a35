// Show command displays the shelf-life table for one food.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/larder/internal/engine"
)

var showCmd = &cobra.Command{
	Use:   "show <food>",
	Short: "Display a food with its shelf-life table",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		foodKey := args[0]

		ds, err := loadDataset()
		if err != nil {
			fmt.Fprintln(os.Stderr, "show:", err)
			os.Exit(exitSysError)
		}

		food, ok := ds.Foods[foodKey]
		if !ok {
			fmt.Fprintf(os.Stderr, "unknown food %q (see: larder foods)\n", foodKey)
			os.Exit(exitUserError)
		}

		if flagJSON {
			out, err := json.MarshalIndent(food, "", "  ")
			if err != nil {
				fmt.Fprintln(os.Stderr, "marshal JSON:", err)
				os.Exit(exitSysError)
			}
			fmt.Println(string(out))
			return nil
		}

		fmt.Printf("Food:     %s\n", foodKey)
		fmt.Printf("States:   %v\n", food.States)
		fmt.Printf("Storages: %v\n", food.Storages)

		fmt.Println("\nBase shelf life:")
		for _, state := range food.States {
			for _, storage := range food.Storages {
				hours, ok := food.BaseHours(state, storage)
				if !ok {
					fmt.Printf("  %s / %s: no data\n", state, storage)
					continue
				}
				fmt.Printf("  %s / %s: %s\n", state, storage, engine.FormatHours(hours))
			}
		}
		return nil
	},
}
