package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/pantry/pkg/types"
)

func newQtyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "qty <item>",
		Short: "Print the stocked quantity of an item",
		Long: `Qty prints the stocked quantity of an item, or 0 if the item is
not in the inventory.

Example:
  pantry qty apple
  pantry qty apple --json`,
		Args: cobra.ExactArgs(1),
		RunE: runQty,
	}
}

func runQty(cmd *cobra.Command, args []string) error {
	store, cfg, err := attachStore()
	if err != nil {
		return exitError(exitSysError, err.Error())
	}
	defer store.Detach()

	inv, loadErr := store.Load()
	reportLoadIssue(cmd.ErrOrStderr(), cfg, loadErr)

	item := args[0]
	qty := inv.Qty(item)

	if flags.jsonMode {
		out, err := json.MarshalIndent(types.Item{Name: item, Qty: qty}, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal item: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s -> %d\n", item, qty)
	return nil
}
