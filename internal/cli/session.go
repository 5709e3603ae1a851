package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/pantry/pkg/types"
)

func newSessionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "session",
		Short: "Run the demonstration session",
		Long: `Session runs a fixed sequence of inventory operations end to end:
load the inventory, print the initial report, apply a series of adds
and removes (including deliberately invalid calls that exercise
validation), print query results and the final report, dump the
transaction log, and save the inventory back.

This is a demonstration driver, not a general command interface; it
reads no external input and exits 0 even when diagnostics occur.`,
		RunE: runSession,
	}
}

func runSession(cmd *cobra.Command, args []string) error {
	store, cfg, err := attachStore()
	if err != nil {
		return exitError(exitSysError, err.Error())
	}
	defer store.Detach()

	out := cmd.OutOrStdout()
	errw := cmd.ErrOrStderr()

	inv, loadErr := store.Load()
	reportLoadIssue(errw, cfg, loadErr)

	fmt.Fprintln(out, "Initial inventory:")
	writeReport(out, inv)

	var journal types.Journal

	fmt.Fprintln(out, "\n--- Processing Transactions ---")
	sessionAdd(errw, inv, &journal, "apple", 10)
	sessionAdd(errw, inv, &journal, "banana", 15)

	// Deliberately invalid calls; handled as diagnostics, not failures.
	sessionAdd(errw, inv, &journal, "banana", -2)
	sessionAdd(errw, inv, &journal, "", 10)

	sessionRemove(errw, inv, "apple", 3)
	sessionRemove(errw, inv, "orange", 1) // not in stock: silent no-op
	sessionRemove(errw, inv, "banana", 0) // invalid quantity

	fmt.Fprintf(out, "\nApple stock: %d\n", inv.Qty("apple"))
	low := inv.LowStock(cfg.EffectiveThreshold())
	fmt.Fprintf(out, "Low items: %s\n", strings.Join(low, ", "))

	writeReport(out, inv)

	fmt.Fprintln(out, "\n--- Transaction Log ---")
	if journal.Len() == 0 {
		fmt.Fprintln(out, "No transactions logged.")
	} else {
		for _, entry := range journal.Entries() {
			fmt.Fprintln(out, entry)
		}
	}

	if err := store.Save(inv); err != nil {
		reportSaveIssue(errw, err)
		return nil
	}
	fmt.Fprintf(out, "\nInventory saved to %q.\n", storeLocation(cfg))
	return nil
}

// sessionAdd applies one addition, journaling it on success and rendering
// a diagnostic on invalid input.
func sessionAdd(errw io.Writer, inv *types.Inventory, journal *types.Journal, item string, qty int) {
	if err := inv.Add(item, qty); err != nil {
		reportInvalidInput(errw, item, qty, err)
		return
	}
	journal.Record(item, qty)
}

// sessionRemove applies one removal, rendering a diagnostic on invalid
// input. A missing item stays silent.
func sessionRemove(errw io.Writer, inv *types.Inventory, item string, qty int) {
	if err := inv.Remove(item, qty); err != nil {
		reportInvalidInput(errw, item, qty, err)
	}
}
