package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newLowCmd() *cobra.Command {
	var threshold int

	cmd := &cobra.Command{
		Use:   "low",
		Short: "List items whose stock is below the low-stock threshold",
		Long: `Low lists every item whose quantity is strictly below the threshold,
in the order the items were first added. The threshold comes from
config.yaml (default 5) unless overridden with --threshold.

Example:
  pantry low
  pantry low --threshold 3
  pantry low --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLow(cmd, threshold)
		},
	}
	cmd.Flags().IntVar(&threshold, "threshold", 0, "low-stock threshold (default: from config)")
	return cmd
}

func runLow(cmd *cobra.Command, threshold int) error {
	store, cfg, err := attachStore()
	if err != nil {
		return exitError(exitSysError, err.Error())
	}
	defer store.Detach()

	inv, loadErr := store.Load()
	reportLoadIssue(cmd.ErrOrStderr(), cfg, loadErr)

	if threshold <= 0 {
		threshold = cfg.EffectiveThreshold()
	}
	low := inv.LowStock(threshold)

	if flags.jsonMode {
		out, err := json.MarshalIndent(low, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal low items: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	}

	if len(low) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No items below threshold.")
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Low items: %s\n", strings.Join(low, ", "))
	return nil
}
