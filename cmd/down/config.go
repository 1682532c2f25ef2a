package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-down/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration the game would run with, as YAML.

Search order: --config, ~/.down/configs/down.yaml, ./configs/down.yaml,
then the built-in defaults. The output is a complete file that can be
edited and passed back with --config.

Examples:
  down config > my-down.yaml
  down config --config ./my-down.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, _ []string) error {
	cfg, source, err := config.LoadDown(flagConfig)
	if err != nil {
		return err
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}

	return writeConfig(cmd.OutOrStdout(), source, data)
}

func writeConfig(w io.Writer, source string, data []byte) error {
	if _, err := fmt.Fprintf(w, "# source: %s\n", source); err != nil {
		return err
	}
	_, err := w.Write(data)
	return err
}
