package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

const (
	configName = ".agat-table"
	envPrefix  = "AGAT_TABLE"
)

// setting is one configurable key and the flag that overrides it.
type setting struct {
	key      string
	flag     string
	def      string
	validate func(string) error
}

// settings lists every key agat-table reads, in display order.
var settings = []setting{
	{key: "output", flag: "output", def: ""},
	{key: "log.level", flag: "log-level", def: "warn", validate: validateLogLevel},
}

func lookupSetting(key string) (setting, error) {
	for _, s := range settings {
		if s.key == key {
			return s, nil
		}
	}
	known := make([]string, len(settings))
	for i, s := range settings {
		known[i] = s.key
	}
	return setting{}, fmt.Errorf("unknown key %q (known keys: %s)", key, strings.Join(known, ", "))
}

func validateLogLevel(level string) error {
	if _, err := zapcore.ParseLevel(level); err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return nil
}

func envName(key string) string {
	return envPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

// initConfig loads defaults, environment and the config file into v.
// A missing default config file is not an error. Values are not validated
// here so that a bad file can still be repaired with "config set".
func initConfig(v *viper.Viper, cfgFile string) error {
	for _, s := range settings {
		v.SetDefault(s.key, s.def)
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.SetConfigName(configName)
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("reading config: %w", err)
	}
	return nil
}

// configPath returns the file "config set" writes to.
func configPath(v *viper.Viper) (string, error) {
	if used := v.ConfigFileUsed(); used != "" {
		return used, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, configName+".yaml"), nil
}

// source names where the effective value of s comes from.
func source(cmd *cobra.Command, v *viper.Viper, s setting) string {
	if f := cmd.Flags().Lookup(s.flag); f != nil && f.Changed {
		return "flag --" + s.flag
	}
	if val, ok := os.LookupEnv(envName(s.key)); ok && val != "" {
		return "env " + envName(s.key)
	}
	if v.InConfig(s.key) {
		return "file " + v.ConfigFileUsed()
	}
	return "default"
}

func newConfigCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage agat-table configuration",
		Long: `Show, get, or set configuration values. Config is stored in ~/.agat-table.yaml.

Keys:
  output      Output file for the table (empty: stdout)
  log.level   Diagnostic log level: debug, info, warn, error`,
		Example: `  agat-table config                       # show effective config
  agat-table config set log.level debug   # enable debug logging
  agat-table config get output            # get a value`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigShow(cmd, v)
		},
	}

	cmd.AddCommand(newConfigSetCmd(v))
	cmd.AddCommand(newConfigGetCmd(v))

	return cmd
}

func newConfigSetCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigSet(cmd, v, args[0], args[1])
		},
	}
}

func newConfigGetCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Get a configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigGet(cmd, v, args[0])
		},
	}
}

// runConfigShow prints each key with its effective value and origin.
func runConfigShow(cmd *cobra.Command, v *viper.Viper) error {
	out := cmd.OutOrStdout()
	for _, s := range settings {
		fmt.Fprintf(out, "%-10s %q\t# %s\n", s.key, v.GetString(s.key), source(cmd, v, s))
	}
	return nil
}

// runConfigSet validates value and stores it in the config file. Only the
// file's own keys are written, not defaults or environment overrides.
func runConfigSet(cmd *cobra.Command, v *viper.Viper, key, value string) error {
	s, err := lookupSetting(key)
	if err != nil {
		return err
	}
	if s.validate != nil {
		if err := s.validate(value); err != nil {
			return err
		}
	}

	path, err := configPath(v)
	if err != nil {
		return err
	}

	file := viper.New()
	file.SetConfigFile(path)
	file.SetConfigType("yaml")
	if _, err := os.Stat(path); err == nil {
		if err := file.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config: %w", err)
		}
	}
	file.Set(key, value)

	if err := file.WriteConfigAs(path); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s in %s\n", key, value, path)
	return nil
}

func runConfigGet(cmd *cobra.Command, v *viper.Viper, key string) error {
	if _, err := lookupSetting(key); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), v.GetString(key))
	return nil
}
