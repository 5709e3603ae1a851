package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/pantry/pkg/types"
)

func newReportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Print a report of all items and their quantities",
		Long: `Report prints every item with its stocked quantity, one line per
item, in the order the items were first added.

Example:
  pantry report
  pantry report --json`,
		RunE: runReport,
	}
}

func runReport(cmd *cobra.Command, args []string) error {
	store, cfg, err := attachStore()
	if err != nil {
		return exitError(exitSysError, err.Error())
	}
	defer store.Detach()

	inv, loadErr := store.Load()
	reportLoadIssue(cmd.ErrOrStderr(), cfg, loadErr)

	if flags.jsonMode {
		out, err := json.MarshalIndent(inv.Items(), "", "  ")
		if err != nil {
			return fmt.Errorf("marshal items: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	}

	writeReport(cmd.OutOrStdout(), inv)
	return nil
}

// writeReport prints the items report: header, one "<item> -> <qty>" line
// per item in insertion order (or a placeholder when empty), footer.
func writeReport(w io.Writer, inv *types.Inventory) {
	fmt.Fprintln(w, "--- Items Report ---")
	if inv.Len() == 0 {
		fmt.Fprintln(w, "Inventory is empty.")
	}
	for _, item := range inv.Items() {
		fmt.Fprintf(w, "%s -> %d\n", item.Name, item.Qty)
	}
	fmt.Fprintln(w, "--------------------")
}
