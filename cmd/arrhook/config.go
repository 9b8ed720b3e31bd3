package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vmunix/arrhook/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration management",
}

var configTestCmd = &cobra.Command{
	Use:   "test",
	Short: "Validate configuration",
	Long:  "Validates the config file (or --config), flag overrides and environment variable substitution without contacting the organizer.",
	Args:  cobra.NoArgs,
	RunE:  runConfigTest,
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write an example config file",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runConfigInit,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configTestCmd)
	configCmd.AddCommand(configInitCmd)
}

func runConfigTest(cmd *cobra.Command, args []string) error {
	w := cmd.OutOrStdout()

	cfg, err := loadConfig()
	if err == nil {
		if errs := cfg.Validate(); len(errs) > 0 {
			err = &config.ConfigError{Path: configPath, Errors: errs}
		}
	}
	if err != nil {
		var configErr *config.ConfigError
		if errors.As(err, &configErr) {
			printConfigErrors(w, configErr)
			return fmt.Errorf("configuration invalid")
		}
		return fmt.Errorf("failed to load config: %w", err)
	}

	printConfigSummary(w, cfg)
	fmt.Fprintln(w, "\nConfiguration valid!")
	return nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := config.DefaultPath()
	if len(args) > 0 {
		path = args[0]
	}
	if err := config.WriteDefault(path); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}

func printConfigErrors(w io.Writer, e *config.ConfigError) {
	if len(e.Missing) > 0 {
		fmt.Fprintln(w, "Missing environment variables:")
		for _, m := range e.Missing {
			fmt.Fprintf(w, "  - %s\n", m)
		}
		fmt.Fprintln(w)
	}

	if len(e.Errors) > 0 {
		fmt.Fprintln(w, "Validation errors:")
		for _, err := range e.Errors {
			fmt.Fprintf(w, "  - %s\n", err)
		}
		fmt.Fprintln(w)
	}
}

func printConfigSummary(w io.Writer, cfg *config.Config) {
	history := cfg.History.Path
	if history == "" {
		history = "disabled"
	}
	fmt.Fprintln(w, "Configuration Summary:")
	fmt.Fprintf(w, "  Organizer:  %s at %s (timeout %s)\n", cfg.Arr.Kind, cfg.Arr.Host, cfg.Arr.Timeout)
	fmt.Fprintf(w, "  Logging:    %s, %s\n", cfg.Log.Level, cfg.Log.Format)
	fmt.Fprintf(w, "  History:    %s\n", history)
}
