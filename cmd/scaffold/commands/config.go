package commands

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/teranos/scaffold/am"
	"github.com/teranos/scaffold/errors"
	"github.com/teranos/scaffold/logger"
)

// flagKeys maps CLI flags to the config keys they override
var flagKeys = map[string]string{
	"output":    "output.base_dir",
	"overwrite": "output.overwrite",
	"mkdir":     "output.create_dirs",
	"catalog":   "catalog.path",
	"select":    "catalog.select",
	"json":      "log.json",
}

// loadConfig binds the flags cmd defines to the global viper instance and
// returns the effective configuration plus the keys set on the command line.
func loadConfig(cmd *cobra.Command) (*am.Config, map[string]bool, error) {
	v := am.GetViper()
	changed, err := bindFlags(cmd, v)
	if err != nil {
		return nil, nil, err
	}

	cfg, err := am.LoadWithViper(v)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to load config")
	}

	for _, warning := range am.LoadWarnings() {
		logger.Warnw("Config file skipped", logger.FieldError, warning)
	}
	for _, path := range am.UsedFiles() {
		logger.Infow("Config loaded", logger.FieldPath, path)
	}
	return cfg, changed, nil
}

func bindFlags(cmd *cobra.Command, v *viper.Viper) (map[string]bool, error) {
	changed := make(map[string]bool)
	for name, key := range flagKeys {
		flag := cmd.Flags().Lookup(name)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return nil, errors.Wrapf(err, "failed to bind --%s", name)
		}
		if flag.Changed {
			changed[key] = true
		}
	}
	return changed, nil
}

func verbosityOf(cmd *cobra.Command) int {
	verbosity, _ := cmd.Flags().GetCount("verbose")
	return verbosity
}
