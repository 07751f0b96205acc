package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/scaffold/am"
	"github.com/teranos/scaffold/display"
	"github.com/teranos/scaffold/errors"
	"github.com/teranos/scaffold/scaffold"
	"github.com/teranos/scaffold/scaffold/artifacts"
	"github.com/teranos/scaffold/sym"
)

// CheckCmd compares generated files on disk with a fresh rendering
var CheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Report generated files that are missing or stale",
	Long: `Render the catalog in memory and compare every file with what is on disk.
Nothing is written. Exits non-zero when any file is missing or differs.

Examples:
  scaffold check            # List missing and stale files
  scaffold check --diff     # Include unified diffs for stale files`,
	RunE: runCheck,
}

var checkDiff bool

func init() {
	CheckCmd.Flags().StringP("output", "o", am.DefaultBaseDir, "Base directory holding one directory per component")
	CheckCmd.Flags().StringP("catalog", "c", "", "Catalog file or URL (default: built-in organisms)")
	CheckCmd.Flags().StringSliceP("select", "s", nil, "Only check components matching these globs (repeatable)")
	CheckCmd.Flags().BoolVar(&checkDiff, "diff", false, "Print unified diffs for stale files")
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	result, err := check(cmd.Context(), cfg, checkDiff)
	if err != nil {
		return err
	}

	if display.ShouldOutputJSON(cmd, cfg.Log.JSON) {
		if err := display.OutputJSON(cmd.OutOrStdout(), result); err != nil {
			return err
		}
	} else {
		printCheck(cmd.OutOrStdout(), result, verbosityOf(cmd))
	}
	return result.Err()
}

func check(ctx context.Context, cfg *am.Config, withDiff bool) (*scaffold.CheckResult, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}
	cat, _, err := openCatalog(ctx, cfg)
	if err != nil {
		return nil, err
	}

	g := artifacts.NewGenerator(scaffold.RenderOptionsFromConfig(cfg.Render))
	return g.Check(cat, cfg.Output.BaseDir, withDiff)
}

func printCheck(out io.Writer, result *scaffold.CheckResult, verbosity int) {
	for _, entry := range result.Entries {
		switch entry.Status {
		case scaffold.CheckMissing:
			pterm.Fprintln(out, pterm.Red(sym.Fail+" missing ")+entry.Path)
		case scaffold.CheckStale:
			pterm.Fprintln(out, pterm.Yellow(sym.Stale+" stale   ")+entry.Path)
			if entry.Diff != "" {
				pterm.Fprint(out, entry.Diff)
			}
		default:
			if verbosity > 0 {
				pterm.Fprintln(out, pterm.Gray(sym.Step+" ok      ")+entry.Path)
			}
		}
	}

	problems := len(result.Problems())
	if problems == 0 {
		pterm.Fprintln(out, pterm.Green(fmt.Sprintf("%s %d generated files are up to date", sym.Done, len(result.Entries))))
		return
	}
	pterm.Fprintln(out, fmt.Sprintf("%d of %d files need regenerating", problems, len(result.Entries)))
}
