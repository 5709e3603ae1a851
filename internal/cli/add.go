package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <item> <qty>",
		Short: "Add a quantity of an item to the inventory",
		Long: `Add increases the stocked quantity of an item, creating it if absent.

Example:
  pantry add apple 10
  pantry add "olive oil" 2`,
		Args: cobra.ExactArgs(2),
		RunE: runAdd,
	}
}

func runAdd(cmd *cobra.Command, args []string) error {
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

	if err := inv.Add(item, qty); err != nil {
		reportInvalidInput(cmd.ErrOrStderr(), item, qty, err)
		return nil
	}

	if err := store.Save(inv); err != nil {
		reportSaveIssue(cmd.ErrOrStderr(), err)
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Added %d of %s (now %d)\n", qty, item, inv.Qty(item))
	return nil
}
