// Estimate command: the main entry into the estimation engine.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/larder/internal/engine"
	"github.com/mesh-intelligence/larder/pkg/sqlite"
	"github.com/mesh-intelligence/larder/pkg/types"
)

var (
	estimateModifiers []string
	estimateSensory   []string
	estimateRecord    bool
)

var estimateCmd = &cobra.Command{
	Use:   "estimate <food> <state> <storage>",
	Short: "Estimate the usable shelf-life window for a food",
	Long: `Estimate computes a conservative shelf-life window for a food in a given
preparation state and storage method, adjusted by selected modifiers.

Selecting any sensory flag (--sensory) overrides the numeric estimate with
a discard directive.

Example:
  larder estimate cooked_rice cooked refrigerated
  larder estimate cooked_rice cooked refrigerated --modifier reheated_once
  larder estimate fish raw refrigerated --sensory off_odor`,
	Args: cobra.ExactArgs(3),
	RunE: runEstimate,
}

func init() {
	estimateCmd.Flags().StringArrayVar(&estimateModifiers, "modifier", nil, "modifier key (repeatable)")
	estimateCmd.Flags().StringArrayVar(&estimateSensory, "sensory", nil, "observed sensory flag key (repeatable)")
	estimateCmd.Flags().BoolVar(&estimateRecord, "record", false, "append the result to the estimate history")
}

func runEstimate(cmd *cobra.Command, args []string) error {
	ds, err := loadDataset()
	if err != nil {
		fmt.Fprintln(os.Stderr, "estimate:", err)
		os.Exit(exitSysError)
	}

	req := engine.Request{
		Food:      args[0],
		State:     args[1],
		Storage:   args[2],
		Modifiers: estimateModifiers,
		Sensory:   estimateSensory,
	}

	outcome, err := engine.Assess(ds, req)
	if err != nil {
		if isFoodNotFound(err) {
			fmt.Fprintf(os.Stderr, "unknown food %q (see: larder foods)\n", req.Food)
			os.Exit(exitUserError)
		}
		fmt.Fprintln(os.Stderr, "estimate:", err)
		os.Exit(exitSysError)
	}

	if estimateRecord && outcome.Available {
		if err := recordEstimate(req, outcome.Result); err != nil {
			fmt.Fprintln(os.Stderr, "record estimate:", err)
			os.Exit(exitSysError)
		}
	}

	if flagJSON {
		out, err := json.MarshalIndent(outcome, "", "  ")
		if err != nil {
			fmt.Fprintln(os.Stderr, "marshal JSON:", err)
			os.Exit(exitSysError)
		}
		fmt.Println(string(out))
		return nil
	}

	printOutcome(ds, req, outcome)
	return nil
}

// printOutcome renders the human-readable estimate report.
func printOutcome(ds *types.RulesDataset, req engine.Request, outcome engine.Outcome) {
	if outcome.Discard {
		fmt.Println(outcome.Directive)
		return
	}
	if !outcome.Available {
		fmt.Println("No data available for this combination of state and storage.")
		return
	}

	result := outcome.Result
	fmt.Printf("Food:          %s (%s, %s)\n", req.Food, req.State, req.Storage)
	fmt.Printf("Base life:     %s\n", engine.FormatHours(result.BaseHours))
	fmt.Printf("Usable window: %s - %s\n", engine.FormatHours(result.LowerHours), engine.FormatHours(result.UpperHours))
	fmt.Printf("Risk level:    %s\n", result.Risk)

	if ds.Notes.Disclaimer != "" {
		fmt.Printf("\n%s\n", ds.Notes.Disclaimer)
	}
}

// recordEstimate appends a computed result to the history backend.
func recordEstimate(req engine.Request, result types.EstimateResult) error {
	backend, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	_, err = backend.Record(sqlite.HistoryRecord{
		Food:       req.Food,
		State:      req.State,
		Storage:    req.Storage,
		Modifiers:  req.Modifiers,
		BaseHours:  result.BaseHours,
		LowerHours: result.LowerHours,
		UpperHours: result.UpperHours,
		Risk:       result.Risk,
	})
	return err
}
