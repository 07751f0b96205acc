package commands

import (
	"context"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/scaffold/am"
	"github.com/teranos/scaffold/catalog"
	"github.com/teranos/scaffold/errors"
	"github.com/teranos/scaffold/logger"
	"github.com/teranos/scaffold/sym"
)

// WatchCmd regenerates whenever the catalog or project config changes
var WatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Regenerate when the catalog or project config changes",
	Long: `Generate once, then watch the catalog file and the project scaffold.toml.
Each change reloads the configuration and regenerates. Press Ctrl+C to stop.

The built-in catalog and remote catalogs cannot be watched; with neither a
local catalog nor a project config there is nothing to watch.

Examples:
  scaffold watch -c organisms.yaml
  scaffold watch --overwrite skip`,
	RunE: runWatch,
}

func init() {
	WatchCmd.Flags().StringP("output", "o", am.DefaultBaseDir, "Base directory holding one directory per component")
	WatchCmd.Flags().StringP("catalog", "c", "", "Catalog file (default: built-in organisms)")
	WatchCmd.Flags().StringSliceP("select", "s", nil, "Only generate components matching these globs (repeatable)")
	WatchCmd.Flags().String("overwrite", am.OverwriteAlways, "Existing file policy: overwrite, skip")
	WatchCmd.Flags().Bool("mkdir", false, "Create missing component directories")
}

func runWatch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, _, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	files, err := watchedFiles(ctx, cfg)
	if err != nil {
		return err
	}

	regenerate := func(ctx context.Context, path string) error {
		if path != "" {
			logger.Infow("Change detected", logger.FieldFile, path)
			pterm.Fprintln(cmd.OutOrStdout(), pterm.Cyan(sym.Reload+" "+path+" changed"))
		}

		am.Reset()
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
		// nobody is at the keyboard between saves
		if cfg.Output.Overwrite == am.OverwritePrompt {
			cfg.Output.Overwrite = am.OverwriteSkip
		}
		_, err = generate(ctx, cfg, opts)
		return err
	}

	if err := regenerate(ctx, ""); err != nil {
		// a broken catalog is fixed by the next save
		logger.Errorw("Generation failed", logger.FieldError, err)
	}

	w, err := catalog.NewWatcher(files, regenerate)
	if err != nil {
		return err
	}
	for _, f := range files {
		pterm.Fprintln(cmd.OutOrStdout(), pterm.Gray(sym.Watch+" watching "+f))
	}

	return w.Run(ctx)
}

// watchedFiles returns the local catalog and the project config, whichever exist
func watchedFiles(ctx context.Context, cfg *am.Config) ([]string, error) {
	var files []string

	if cfg.Catalog.Path != "" {
		remote, err := catalog.IsRemote(cfg.Catalog.Path)
		if err != nil {
			return nil, err
		}
		if remote {
			err := errors.Newf("cannot watch remote catalog %s", cfg.Catalog.Path)
			return nil, errors.WithHint(err, "download it and pass the local path with --catalog")
		}
		src, err := catalog.Resolve(ctx, cfg.Catalog.Path)
		if err != nil {
			return nil, err
		}
		src.Cleanup()
		files = append(files, src.LocalPath)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get working directory")
	}
	if project := am.FindProjectConfig(workDir); project != "" {
		files = append(files, project)
	}

	if len(files) == 0 {
		err := errors.New("nothing to watch: using the built-in catalog without a project config")
		return nil, errors.WithHint(err, "pass --catalog <file> or run 'scaffold am init'")
	}
	return files, nil
}
