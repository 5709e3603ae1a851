// Diagnostic rendering for the pantry CLI. Every storage and validation
// failure is converted to a human-readable message on the error stream;
// nothing propagates as a fatal error out of a running command.
package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/mesh-intelligence/pantry/pkg/types"
)

// reportLoadIssue renders a Load diagnostic. A missing file is the
// expected first-run state and is reported as informational; everything
// else is an error. Either way the caller continues with the empty
// inventory Load returned.
func reportLoadIssue(w io.Writer, cfg types.Config, err error) {
	if err == nil {
		return
	}
	if errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(w, "Info: %q not found. Starting with empty inventory.\n", storeLocation(cfg))
		return
	}
	fmt.Fprintf(w, "Error: could not load inventory: %s. Starting with empty inventory.\n", err)
}

// reportSaveIssue renders a Save diagnostic. No retry, no partial-success
// signaling beyond the message.
func reportSaveIssue(w io.Writer, err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(w, "Error: could not save inventory: %s\n", err)
}

// reportInvalidInput renders a validation diagnostic for a rejected
// add/remove call. The inventory was left unchanged.
func reportInvalidInput(w io.Writer, item string, qty int, err error) {
	switch {
	case errors.Is(err, types.ErrItemNameEmpty):
		fmt.Fprintf(w, "Error: Item name %q is invalid. Must be a non-empty string.\n", item)
	case errors.Is(err, types.ErrQtyNotPositive):
		fmt.Fprintf(w, "Error: Quantity %d for item %q is invalid. Must be a positive integer.\n", qty, item)
	default:
		fmt.Fprintf(w, "Error: %s\n", err)
	}
}

// reportInvalidQtyArg renders the diagnostic for a quantity argument that
// is not an integer at all.
func reportInvalidQtyArg(w io.Writer, item, raw string) {
	fmt.Fprintf(w, "Error: Quantity %q for item %q is invalid. Must be a positive integer.\n", raw, item)
}
