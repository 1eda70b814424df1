package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/swiftbox/internal/config"
	"github.com/vovakirdan/swiftbox/internal/games/t2048"
)

var flagConfigResolved bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the 2048 configuration",
	Long: `Print the built-in 2048 configuration, ready to save as
~/.swiftbox/configs/t2048.yaml. With --resolved, print the configuration
after the config search and --difficulty are applied.

Examples:
  swiftbox config > ~/.swiftbox/configs/t2048.yaml
  swiftbox config --resolved --difficulty hard`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigResolved, "resolved", false, "Print the effective configuration")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	if !flagConfigResolved {
		_, err := out.Write(config.GetDefaultYAML(t2048.GameID))
		return err
	}

	cfg, err := loadTuning()
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	_, err = out.Write(data)
	return err
}
