// Package main provides the CLI entry point for fixturegen.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/ukaji3/finfixture-go/internal/config"
	"github.com/ukaji3/finfixture-go/pkg/finfixture"
	"github.com/ukaji3/finfixture-go/pkg/finfixture/output"
	"github.com/ukaji3/finfixture-go/pkg/logging"
	"go.uber.org/zap"
)

var success = color.New(color.FgGreen)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := config.New()

	rootCmd := &cobra.Command{
		Use:   "fixturegen",
		Short: "Generate the sample finance spreadsheet fixture",
		Long: `fixturegen writes test_import.xlsx, a one-sheet workbook with monthly
finance figures used to drive spreadsheet import tests.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
	}
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runGenerate(cmd, v)
	}

	rootCmd.Flags().StringP("output", "o", finfixture.DefaultOutputPath, "Output file path")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().String("log-format", "console", "Log format: console, json")
	rootCmd.PersistentFlags().String("log-output", "stderr", "Log destination: stderr, stdout or a file path")

	v.BindPFlag("output", rootCmd.Flags().Lookup("output"))
	v.BindPFlag("logger.level", rootCmd.PersistentFlags().Lookup("log-level"))
	v.BindPFlag("logger.format", rootCmd.PersistentFlags().Lookup("log-format"))
	v.BindPFlag("logger.output", rootCmd.PersistentFlags().Lookup("log-output"))

	rootCmd.AddCommand(newInspectCmd(v))
	return rootCmd
}

func setup(v *viper.Viper) (*config.Config, *zap.Logger, func(), error) {
	cfg, err := config.Load(v)
	if err != nil {
		return nil, nil, nil, err
	}
	logger, cleanup, err := logging.NewLogger(logging.Config{
		Level:  cfg.Logger.Level,
		Output: cfg.Logger.Output,
		Format: cfg.Logger.Format,
	})
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return cfg, logger, cleanup, nil
}

func runGenerate(cmd *cobra.Command, v *viper.Viper) error {
	cfg, logger, cleanup, err := setup(v)
	if err != nil {
		return err
	}
	defer cleanup()

	path, err := finfixture.Generate(cfg.Output, finfixture.Options{Logger: logger})
	if err != nil {
		return err
	}

	return printCreated(cmd.OutOrStdout(), path)
}

func printCreated(w io.Writer, path string) error {
	_, err := success.Fprintf(w, "Test file created: %s\n", path)
	return err
}

func newInspectCmd(v *viper.Viper) *cobra.Command {
	var pretty, check bool

	cmd := &cobra.Command{
		Use:   "inspect <input.xlsx>",
		Short: "Preview the first sheet of a workbook as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, logger, cleanup, err := setup(v)
			if err != nil {
				return err
			}
			defer cleanup()

			opts := finfixture.Options{Logger: logger}
			preview, err := finfixture.Inspect(args[0], opts)
			if err != nil {
				return err
			}

			jsonData, err := output.PreviewToJSON(preview, pretty)
			if err != nil {
				return fmt.Errorf("serialization failed: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))

			if check {
				return finfixture.Verify(args[0], finfixture.Finances(), opts)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	cmd.Flags().BoolVar(&check, "check", false, "Fail unless the workbook matches the built-in fixture")
	return cmd
}
