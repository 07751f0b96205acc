package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/teranos/scaffold/am"
	"github.com/teranos/scaffold/cmd/scaffold/commands"
	"github.com/teranos/scaffold/errors"
	"github.com/teranos/scaffold/logger"
)

var rootCmd = &cobra.Command{
	Use:   "scaffold",
	Short: "scaffold - Organism component scaffolding generator",
	Long: `scaffold - Generate the six-file skeleton of every organism component.

For each component in the catalog, scaffold writes a types module, a React
component, a CSS module, a test suite, a README and an index file into
<base_dir>/<Name>/.

Running scaffold without a command runs 'generate' with the configured defaults.

Available commands:
  generate - Write component files for the catalog (default)
  check    - Report generated files that are missing or stale
  watch    - Regenerate when the catalog or project config changes
  catalog  - List, export and validate component catalogs
  am       - Manage scaffold configuration ("I am")
  version  - Show version information

Examples:
  scaffold                              # Generate all 16 organisms
  scaffold generate -s 'Facebook*'      # Only the Facebook organisms
  scaffold generate --dry-run -v        # Show what would change
  scaffold check --diff                 # Diff disk against the templates
  scaffold catalog export -o org.yaml   # Start a custom catalog`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbosity, _ := cmd.Flags().GetCount("verbose")
		jsonOutput, _ := cmd.Flags().GetBool("json")
		if !jsonOutput {
			jsonOutput = am.GetBool("log.json")
		}
		if err := logger.Initialize(jsonOutput, verbosity); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return commands.RunDefault(cmd)
	},
}

func init() {
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv, -vvv)")
	rootCmd.PersistentFlags().Bool("json", false, "Emit JSON events and logs instead of human output")

	rootCmd.AddCommand(commands.GenerateCmd)
	rootCmd.AddCommand(commands.CheckCmd)
	rootCmd.AddCommand(commands.WatchCmd)
	rootCmd.AddCommand(commands.CatalogCmd)
	rootCmd.AddCommand(commands.AmCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	logger.Cleanup()

	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		if hint := errors.FlattenHints(err); hint != "" {
			fmt.Fprintln(os.Stderr, "Hint:", hint)
		}
		os.Exit(1)
	}
}
