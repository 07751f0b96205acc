package commands

import (
	"context"
	"io"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/scaffold/am"
	"github.com/teranos/scaffold/catalog"
	"github.com/teranos/scaffold/errors"
	"github.com/teranos/scaffold/logger"
	"github.com/teranos/scaffold/scaffold"
	"github.com/teranos/scaffold/scaffold/artifacts"
	"github.com/teranos/scaffold/version"
)

// GenerateCmd writes the component files for every catalog entry
var GenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Write component files for the catalog",
	Long: `Write the six files of every catalog component into <base_dir>/<Name>/.

Existing files are handled by the overwrite policy:
  overwrite - replace them, warning about files with local changes (default)
  skip      - keep files that differ from the rendered content
  prompt    - ask once per component that has local changes

Files whose content already matches are never rewritten.

Examples:
  scaffold generate                          # Built-in catalog, configured base dir
  scaffold generate -o web/src/organisms     # Different base dir
  scaffold generate -c ./organisms.toml      # Custom catalog
  scaffold generate -s 'Facebook*' -s Video  # Subset by glob
  scaffold generate --overwrite skip --mkdir # Keep edits, create directories`,
	RunE: runGenerate,
}

var (
	generateDryRun bool
	generateYes    bool
)

func init() {
	GenerateCmd.Flags().StringP("output", "o", am.DefaultBaseDir, "Base directory holding one directory per component")
	GenerateCmd.Flags().StringP("catalog", "c", "", "Catalog file or URL (default: built-in organisms)")
	GenerateCmd.Flags().StringSliceP("select", "s", nil, "Only generate components matching these globs (repeatable)")
	GenerateCmd.Flags().String("overwrite", am.OverwriteAlways, "Existing file policy: overwrite, skip, prompt")
	GenerateCmd.Flags().Bool("mkdir", false, "Create missing component directories")
	GenerateCmd.Flags().BoolVar(&generateDryRun, "dry-run", false, "Show what would be written without touching disk")
	GenerateCmd.Flags().BoolVarP(&generateYes, "yes", "y", false, "Overwrite without prompting")
}

// generateOptions carries the per-invocation settings that are not config keys
type generateOptions struct {
	DryRun    bool
	Yes       bool
	JSON      bool
	Verbosity int
	Confirm   scaffold.ConfirmFunc
	Stdout    io.Writer
	Stderr    io.Writer
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	opts := generateOptions{
		DryRun:    generateDryRun,
		Yes:       generateYes,
		JSON:      cfg.Log.JSON,
		Verbosity: verbosityOf(cmd),
		Stdout:    cmd.OutOrStdout(),
		Stderr:    cmd.ErrOrStderr(),
	}
	if !opts.JSON {
		opts.Confirm = confirm
	}

	_, err = generate(cmd.Context(), cfg, opts)
	return err
}

// RunDefault generates with the configured defaults. The root command runs
// it when no subcommand is given.
func RunDefault(cmd *cobra.Command) error {
	cfg, _, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	opts := generateOptions{
		JSON:      cfg.Log.JSON,
		Verbosity: verbosityOf(cmd),
		Stdout:    cmd.OutOrStdout(),
		Stderr:    cmd.ErrOrStderr(),
	}
	if !opts.JSON {
		opts.Confirm = confirm
	}

	_, err = generate(cmd.Context(), cfg, opts)
	return err
}

func generate(ctx context.Context, cfg *am.Config, opts generateOptions) (*scaffold.Report, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	cat, name, err := openCatalog(ctx, cfg)
	if err != nil {
		return nil, err
	}

	policy, err := scaffold.ParsePolicy(cfg.Output.Overwrite)
	if err != nil {
		return nil, err
	}
	if opts.Yes {
		policy = scaffold.PolicyOverwrite
	}

	writer := scaffold.NewWriter(policy, cfg.Output.CreateDirs, opts.DryRun)
	writer.Confirm = opts.Confirm

	g := artifacts.NewGenerator(scaffold.RenderOptionsFromConfig(cfg.Render))
	report, err := g.Generate(ctx, cat, scaffold.RunOptions{
		BaseDir:     cfg.Output.BaseDir,
		CatalogName: name,
		Writer:      writer,
		Emitter:     newEmitter(opts),
	})
	if err != nil {
		return report, err
	}

	if !opts.DryRun {
		written := report.Written()
		if cfg.Output.FormatCommand != "" && len(written) > 0 {
			logger.Infow("Running format command",
				logger.FieldCommand, cfg.Output.FormatCommand,
				logger.FieldCount, len(written))
		}
		if err := scaffold.RunFormatCommand(ctx, cfg.Output.FormatCommand, written, opts.Stdout, opts.Stderr); err != nil {
			return report, err
		}
	}
	return report, nil
}

// openCatalog loads the configured catalog, checks it against this build and
// applies catalog.select.
func openCatalog(ctx context.Context, cfg *am.Config) (*catalog.Catalog, string, error) {
	cat, name, err := catalog.Open(ctx, cfg.Catalog.Path)
	if err != nil {
		return nil, "", err
	}
	if err := cat.CheckCompatibility(version.Get().Version); err != nil {
		return nil, "", errors.Wrapf(err, "catalog %s", name)
	}

	selected, err := cat.Select(cfg.Catalog.Select)
	if err != nil {
		return nil, "", err
	}
	return selected, name, nil
}

func newEmitter(opts generateOptions) scaffold.ProgressEmitter {
	if opts.JSON {
		return scaffold.NewJSONEmitterTo(opts.Stdout)
	}
	return scaffold.NewCLIEmitterTo(opts.Stdout, opts.Verbosity)
}

func confirm(prompt string) (bool, error) {
	return pterm.DefaultInteractiveConfirm.WithDefaultValue(false).Show(prompt)
}
