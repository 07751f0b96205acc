// Package display holds output helpers shared by the CLI commands.
package display

import (
	"github.com/spf13/cobra"
)

// ShouldOutputJSON reports whether a command should print JSON: an explicit
// --json flag wins, otherwise the configured log.json value is used.
func ShouldOutputJSON(cmd *cobra.Command, configured bool) bool {
	if cmd == nil {
		return configured
	}

	if cmd.Flags().Changed("json") {
		jsonFlag, _ := cmd.Flags().GetBool("json")
		return jsonFlag
	}
	return configured
}
