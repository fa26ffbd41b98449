package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/missile-protector/internal/config"
)

var (
	flagWriteConfig bool
	flagForce       bool
)

var configCmd = &cobra.Command{
	Use:   "config <variant>",
	Short: "Print or write variant configuration",
	Long: `Print the configuration a variant would run with, after the search
path and the difficulty preset are applied.

Search order:
  --config <path>
  ~/.protector/configs/<variant>.yaml
  ./configs/<variant>.yaml
  built-in defaults

With --write the built-in defaults are written to
~/.protector/configs/<variant>.yaml as a starting point for edits.

Examples:
  protector config protector
  protector config shield --difficulty hard
  protector config bowl --write`,
	Args: cobra.ExactArgs(1),
	Run:  runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	configCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	configCmd.Flags().BoolVar(&flagWriteConfig, "write", false, "Write the default config to the user config directory")
	configCmd.Flags().BoolVar(&flagForce, "force", false, "Overwrite an existing file with --write")
}

func runConfig(_ *cobra.Command, args []string) {
	variant := args[0]

	if flagWriteConfig {
		path, err := writeDefaultConfig(variant)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s\n", path)
		return
	}

	cfg, source, err := config.LoadWithSource(variant, flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	config.ApplyPreset(&cfg, preset)

	data, err := config.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("# %s (source: %s, difficulty: %s)\n", variant, source, preset)
	fmt.Print(string(data))
}

func writeDefaultConfig(variant string) (string, error) {
	data := config.GetDefaultYAML(variant)
	if data == nil {
		return "", fmt.Errorf("unknown variant %q", variant)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot get home directory: %w", err)
	}
	path := filepath.Join(home, ".protector", "configs", variant+".yaml")

	if _, err := os.Stat(path); err == nil && !flagForce {
		return "", fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("cannot create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("cannot write %s: %w", path, err)
	}
	return path, nil
}
