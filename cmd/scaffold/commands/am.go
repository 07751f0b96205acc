package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/scaffold/am"
	"github.com/teranos/scaffold/errors"
	"github.com/teranos/scaffold/sym"
)

// AmCmd represents the am (configuration) command
var AmCmd = &cobra.Command{
	Use:   "am",
	Short: sym.AM + " Manage scaffold configuration",
	Long: sym.AM + ` am - Manage scaffold configuration ("I am")

Display and manage the settings generation runs with.

Configuration sources (in order of precedence):
1. Command line flags
2. Environment variables (SCAFFOLD_* prefix)
3. Project config (./scaffold.toml, searched upward)
4. User config (~/.scaffold/config.toml)
5. Default values

Examples:
  scaffold am show                      # Show current configuration
  scaffold am show --format json        # Show configuration in JSON format
  scaffold am show --sources            # Show where every value came from
  scaffold am init                      # Write ./scaffold.toml from current settings
  scaffold am set output.overwrite skip # Change one project setting`,
}

var amShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Long:  "Display the effective scaffold configuration from all sources",
	RunE:  runAmShow,
}

var amValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate current configuration",
	RunE:  runAmValidate,
}

var amWhereCmd = &cobra.Command{
	Use:   "where",
	Short: "Show where configuration is loaded from",
	Long: `Show the configuration cascade and which files were checked.

Lists every config file location in order of precedence, marking the ones
that exist and were merged.`,
	RunE: runAmWhere,
}

var amInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a project scaffold.toml holding the current settings",
	RunE:  runAmInit,
}

var amSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set one value in the project scaffold.toml",
	Long: `Set one dotted key (e.g. output.overwrite, render.tier) in the nearest
project scaffold.toml, creating ./scaffold.toml when none exists. The previous
file is kept as .back1 (up to .back3).`,
	Args: cobra.ExactArgs(2),
	RunE: runAmSet,
}

var (
	configFormat string
	showSources  bool
	initForce    bool
)

func init() {
	amShowCmd.Flags().StringVar(&configFormat, "format", "toml", "Output format: toml, json, yaml")
	amShowCmd.Flags().BoolVar(&showSources, "sources", false, "Show the source of every setting")
	amInitCmd.Flags().BoolVar(&initForce, "force", false, "Replace an existing scaffold.toml")

	AmCmd.AddCommand(amShowCmd)
	AmCmd.AddCommand(amValidateCmd)
	AmCmd.AddCommand(amWhereCmd)
	AmCmd.AddCommand(amInitCmd)
	AmCmd.AddCommand(amSetCmd)
}

func runAmShow(cmd *cobra.Command, args []string) error {
	cfg, changed, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if showSources {
		return printSources(cmd.OutOrStdout(), am.Introspect(am.GetViper(), changed))
	}

	data, err := am.Marshal(cfg, configFormat)
	if err != nil {
		return errors.Wrap(err, "failed to marshal config")
	}
	out := cmd.OutOrStdout()
	if configFormat != "json" {
		fmt.Fprintln(out, "# scaffold configuration")
	}
	_, err = out.Write(data)
	return err
}

func printSources(out io.Writer, settings []am.SettingInfo) error {
	data := pterm.TableData{{"Key", "Value", "Source", "From"}}
	for _, s := range settings {
		value := fmt.Sprintf("%v", s.Value)
		// Truncate long values
		if len(value) > 50 {
			value = value[:47] + "..."
		}
		data = append(data, []string{s.Key, value, string(s.Source), s.SourcePath})
	}
	return pterm.DefaultTable.WithHasHeader().WithWriter(out).WithData(data).Render()
}

func runAmValidate(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "configuration validation failed")
	}

	fmt.Fprintln(cmd.OutOrStdout(), sym.Step+" Configuration is valid")
	return nil
}

func runAmWhere(cmd *cobra.Command, args []string) error {
	workDir, err := os.Getwd()
	if err != nil {
		return errors.Wrap(err, "failed to get working directory")
	}
	homeDir, _ := os.UserHomeDir()
	if _, _, err := loadConfig(cmd); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Configuration cascade (later overrides earlier):")
	fmt.Fprintln(out, "  1. [DEFAULT]  Built-in defaults")
	fmt.Fprintf(out, "  2. [USER]     ~/%s/%s\n", am.UserConfigDir, am.UserConfigName)
	fmt.Fprintf(out, "  3. [PROJECT]  ./%s (searches up directories)\n", am.ProjectConfigName)
	fmt.Fprintf(out, "  4. [ENV]      %s_* environment variables\n", am.EnvPrefix)
	fmt.Fprintln(out, "  5. [FLAG]     command line flags")
	fmt.Fprintln(out)

	used := make(map[string]bool)
	for _, path := range am.UsedFiles() {
		used[path] = true
	}

	candidates := []string{}
	if homeDir != "" {
		candidates = append(candidates, filepath.Join(homeDir, am.UserConfigDir, am.UserConfigName))
	}
	project := am.FindProjectConfig(workDir)
	if project == "" {
		project = filepath.Join(workDir, am.ProjectConfigName)
	}
	candidates = append(candidates, project)

	fmt.Fprintln(out, "Files:")
	for _, path := range candidates {
		switch {
		case used[path]:
			fmt.Fprintf(out, "  %s %s\n", sym.Step, path)
		default:
			fmt.Fprintf(out, "  - %s (not found)\n", path)
		}
	}

	for _, warning := range am.LoadWarnings() {
		fmt.Fprintf(out, "  %s %v\n", sym.Warn, warning)
	}
	return nil
}

func runAmInit(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "configuration validation failed")
	}

	workDir, err := os.Getwd()
	if err != nil {
		return errors.Wrap(err, "failed to get working directory")
	}
	path := filepath.Join(workDir, am.ProjectConfigName)
	if err := am.WriteProjectConfig(path, cfg, initForce); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s Wrote %s\n", sym.Step, path)
	return nil
}

func runAmSet(cmd *cobra.Command, args []string) error {
	workDir, err := os.Getwd()
	if err != nil {
		return errors.Wrap(err, "failed to get working directory")
	}
	path := am.FindProjectConfig(workDir)
	if path == "" {
		path = filepath.Join(workDir, am.ProjectConfigName)
	}

	key, value := args[0], args[1]
	if err := am.SetProjectValue(path, key, value); err != nil {
		return err
	}
	am.Reset()

	fmt.Fprintf(cmd.OutOrStdout(), "%s %s = %s (%s)\n", sym.Step, key, value, path)
	return nil
}
