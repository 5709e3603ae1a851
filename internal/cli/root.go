// Package cli implements the pantry command-line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Exit codes. Validation and save diagnostics inside a session are
// best-effort and leave the exit status at zero.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	file      string
	dataDir   string
	jsonMode  bool
}

var flags rootFlags

// NewRootCmd creates the top-level "pantry" command with global flags and
// all subcommands registered.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "pantry",
		Short: "A file-backed inventory tracker",
		Long: "Pantry tracks item quantities in a single JSON inventory file\n" +
			"(or a SQLite database), with add/remove/query verbs and a\n" +
			"demonstration session driver.",
		// Do not print usage on errors returned by subcommands.
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&flags.configDir, "config-dir", "", "configuration directory (default: .pantry)")
	root.PersistentFlags().StringVar(&flags.file, "file", "", "inventory file path (default: inventory.json)")
	root.PersistentFlags().StringVar(&flags.dataDir, "data-dir", "", "sqlite data directory (default: .pantry-db)")
	root.PersistentFlags().BoolVar(&flags.jsonMode, "json", false, "output in JSON format")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd())
	root.AddCommand(newAddCmd())
	root.AddCommand(newRemoveCmd())
	root.AddCommand(newQtyCmd())
	root.AddCommand(newLowCmd())
	root.AddCommand(newReportCmd())
	root.AddCommand(newSessionCmd())

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		os.Exit(exitUserError)
	}
}

// exitError prints the message to stderr and exits with the given code.
func exitError(code int, msg string) error {
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(code)
	return nil // unreachable
}
