// History commands for the estimate log.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/larder/internal/engine"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Manage the estimate history log",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded estimates, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, err := attachBackend()
		if err != nil {
			fmt.Fprintln(os.Stderr, "history:", err)
			os.Exit(exitSysError)
		}
		defer backend.Detach()

		records, err := backend.List(historyLimit)
		if err != nil {
			fmt.Fprintln(os.Stderr, "list history:", err)
			os.Exit(exitSysError)
		}

		if flagJSON {
			out, err := json.MarshalIndent(records, "", "  ")
			if err != nil {
				fmt.Fprintln(os.Stderr, "marshal JSON:", err)
				os.Exit(exitSysError)
			}
			fmt.Println(string(out))
			return nil
		}

		if len(records) == 0 {
			fmt.Println("No recorded estimates.")
			return nil
		}
		for _, rec := range records {
			fmt.Printf("[%s] %s (%s, %s): %s - %s, %s\n",
				rec.CreatedAt.Format("2006-01-02 15:04:05"),
				rec.Food, rec.State, rec.Storage,
				engine.FormatHours(rec.LowerHours),
				engine.FormatHours(rec.UpperHours),
				rec.Risk,
			)
		}
		return nil
	},
}

var historyShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Display one recorded estimate",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, err := attachBackend()
		if err != nil {
			fmt.Fprintln(os.Stderr, "history:", err)
			os.Exit(exitSysError)
		}
		defer backend.Detach()

		rec, err := backend.Get(args[0])
		if err != nil {
			if isRecordNotFound(err) {
				fmt.Fprintf(os.Stderr, "estimate %q not found\n", args[0])
				os.Exit(exitUserError)
			}
			fmt.Fprintln(os.Stderr, "get estimate:", err)
			os.Exit(exitSysError)
		}

		if flagJSON {
			out, err := json.MarshalIndent(rec, "", "  ")
			if err != nil {
				fmt.Fprintln(os.Stderr, "marshal JSON:", err)
				os.Exit(exitSysError)
			}
			fmt.Println(string(out))
			return nil
		}

		fmt.Printf("ID:            %s\n", rec.EstimateID)
		fmt.Printf("Food:          %s (%s, %s)\n", rec.Food, rec.State, rec.Storage)
		if len(rec.Modifiers) > 0 {
			fmt.Printf("Modifiers:     %v\n", rec.Modifiers)
		}
		fmt.Printf("Base life:     %s\n", engine.FormatHours(rec.BaseHours))
		fmt.Printf("Usable window: %s - %s\n", engine.FormatHours(rec.LowerHours), engine.FormatHours(rec.UpperHours))
		fmt.Printf("Risk level:    %s\n", rec.Risk)
		fmt.Printf("Recorded:      %s\n", rec.CreatedAt.Format("2006-01-02 15:04:05"))
		return nil
	},
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all recorded estimates",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, err := attachBackend()
		if err != nil {
			fmt.Fprintln(os.Stderr, "history:", err)
			os.Exit(exitSysError)
		}
		defer backend.Detach()

		if err := backend.Clear(); err != nil {
			fmt.Fprintln(os.Stderr, "clear history:", err)
			os.Exit(exitSysError)
		}
		fmt.Println("History cleared.")
		return nil
	},
}

func init() {
	historyListCmd.Flags().IntVar(&historyLimit, "limit", 0, "maximum records to list (0 = all)")

	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyClearCmd)
}
