package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <item> <qty>",
		Short: "Remove a quantity of an item from the inventory",
		Long: `Remove decreases the stocked quantity of an item. When the quantity
drops to zero or below, the item is deleted entirely. Removing an item
that is not in stock is a no-op, not an error.

Example:
  pantry remove apple 3`,
		Args: cobra.ExactArgs(2),
		RunE: runRemove,
	}
}

func runRemove(cmd *cobra.Command, args []string) error {
	store, cfg, err := attachStore()
	if err != nil {
		return exitError(exitSysError, err.Error())
	}
	defer store.Detach()

	item := args[0]
	qty, convErr := strconv.Atoi(args[1])
	if convErr != nil {
		reportInvalidQtyArg(cmd.ErrOrStderr(), item, args[1])
		return nil
	}

	inv, loadErr := store.Load()
	reportLoadIssue(cmd.ErrOrStderr(), cfg, loadErr)

	existed := inv.Has(item)
	if err := inv.Remove(item, qty); err != nil {
		reportInvalidInput(cmd.ErrOrStderr(), item, qty, err)
		return nil
	}
	if !existed {
		// Missing item is a silent no-op by policy; nothing to persist.
		return nil
	}

	if err := store.Save(inv); err != nil {
		reportSaveIssue(cmd.ErrOrStderr(), err)
		return nil
	}

	if inv.Has(item) {
		fmt.Fprintf(cmd.OutOrStdout(), "Removed %d of %s (now %d)\n", qty, item, inv.Qty(item))
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "Removed %s (out of stock)\n", item)
	}
	return nil
}
