package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/scaffold/am"
	"github.com/teranos/scaffold/catalog"
	"github.com/teranos/scaffold/display"
	"github.com/teranos/scaffold/errors"
	"github.com/teranos/scaffold/sym"
	"github.com/teranos/scaffold/version"
)

// CatalogCmd groups the catalog subcommands
var CatalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: sym.Catalog + " List, export and validate component catalogs",
	Long: `Inspect the component table that drives generation.

Without --catalog the built-in organism table is used. Catalog files may be
YAML, TOML, JSON or CUE; remote sources (https://, git::, s3::) are fetched
with go-getter.

Examples:
  scaffold catalog list                        # Built-in organisms
  scaffold catalog list -c ./organisms.toml    # A custom catalog
  scaffold catalog export -o organisms.yaml    # Start a custom catalog
  scaffold catalog validate organisms.yaml     # Check a catalog file`,
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog components in generation order",
	RunE:  runCatalogList,
}

var catalogExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the catalog as yaml, toml or json",
	Long: `Write the catalog to stdout or a file. The format follows --format, or
the file extension when --output is given without --format.`,
	RunE: runCatalogExport,
}

var catalogValidateCmd = &cobra.Command{
	Use:   "validate [file|url...]",
	Short: "Validate catalog files",
	Long:  "Decode, validate and compatibility-check each catalog. Without arguments the configured catalog is checked.",
	RunE:  runCatalogValidate,
}

var (
	exportFormat string
	exportOutput string
	exportForce  bool
)

func init() {
	CatalogCmd.PersistentFlags().StringP("catalog", "c", "", "Catalog file or URL (default: built-in organisms)")
	catalogListCmd.Flags().StringSliceP("select", "s", nil, "Only list components matching these globs (repeatable)")
	catalogExportCmd.Flags().StringSliceP("select", "s", nil, "Only export components matching these globs (repeatable)")
	catalogExportCmd.Flags().StringVarP(&exportFormat, "format", "f", "", "Output format: yaml, toml, json (default: yaml or the --output extension)")
	catalogExportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Write to this file instead of stdout")
	catalogExportCmd.Flags().BoolVar(&exportForce, "force", false, "Replace an existing output file")

	CatalogCmd.AddCommand(catalogListCmd)
	CatalogCmd.AddCommand(catalogExportCmd)
	CatalogCmd.AddCommand(catalogValidateCmd)
}

func runCatalogList(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	cat, name, err := openCatalog(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	if display.ShouldOutputJSON(cmd, cfg.Log.JSON) {
		return display.OutputJSON(cmd.OutOrStdout(), cat)
	}
	return printCatalog(cmd.OutOrStdout(), cat, name)
}

func printCatalog(out io.Writer, cat *catalog.Catalog, name string) error {
	data := pterm.TableData{{"#", "Name", "Description", "Composition", "Props"}}
	for i, spec := range cat.Components {
		data = append(data, []string{
			strconv.Itoa(i + 1),
			spec.Name,
			spec.Description,
			spec.Compose,
			strconv.Itoa(len(spec.Props)),
		})
	}

	pterm.Fprintln(out, fmt.Sprintf("%s: %d components", name, cat.Len()))
	return pterm.DefaultTable.WithHasHeader().WithWriter(out).WithData(data).Render()
}

func runCatalogExport(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	cat, _, err := openCatalog(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	format, err := exportFormatFor(exportFormat, exportOutput)
	if err != nil {
		return err
	}
	data, err := catalog.Encode(cat, format)
	if err != nil {
		return err
	}

	if exportOutput == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if err := writeExport(exportOutput, data, exportForce); err != nil {
		return err
	}
	pterm.Fprintln(cmd.ErrOrStderr(), fmt.Sprintf("%s Wrote %d components to %s", sym.Step, cat.Len(), exportOutput))
	return nil
}

// exportFormatFor resolves --format, falling back to the output extension, then yaml
func exportFormatFor(flag, output string) (catalog.Format, error) {
	if flag != "" {
		return catalog.ParseFormat(flag)
	}
	if output != "" {
		return catalog.FormatFromPath(output)
	}
	return catalog.FormatYAML, nil
}

func writeExport(path string, data []byte, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		err := errors.Newf("%s already exists", path)
		return errors.WithHint(err, "pass --force to replace it")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, am.DefaultDirPermissions); err != nil {
			return errors.ClassifyIO(err, dir)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.ClassifyIO(err, path)
	}
	return nil
}

func runCatalogValidate(cmd *cobra.Command, args []string) error {
	inputs := args
	if len(inputs) == 0 {
		cfg, _, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		inputs = []string{cfg.Catalog.Path}
	}

	failed := 0
	for _, input := range inputs {
		name, n, err := validateCatalog(cmd, input)
		if err != nil {
			failed++
			pterm.Fprintln(cmd.OutOrStdout(), pterm.Red(sym.Fail+" ")+err.Error())
			if hint := errors.FlattenHints(err); hint != "" {
				pterm.Fprintln(cmd.OutOrStdout(), pterm.Gray("  hint: "+hint))
			}
			continue
		}
		pterm.Fprintln(cmd.OutOrStdout(), pterm.Green(sym.Step+" ")+fmt.Sprintf("%s is valid (%d components)", name, n))
	}

	if failed > 0 {
		return errors.Mark(errors.Newf("%d of %d catalogs failed validation", failed, len(inputs)), errors.ErrInvalidCatalog)
	}
	return nil
}

func validateCatalog(cmd *cobra.Command, input string) (string, int, error) {
	cat, name, err := catalog.Open(cmd.Context(), input)
	if err != nil {
		return input, 0, err
	}
	if err := cat.CheckCompatibility(version.Get().Version); err != nil {
		return name, 0, errors.Wrapf(err, "catalog %s", name)
	}
	return name, cat.Len(), nil
}
