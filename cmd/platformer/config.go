package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective level config",
	Long: `Loads the level config the same way "play" does, applies the
difficulty preset and prints the result as YAML. The output is a valid
config file.

Examples:
  platformer config
  platformer config --difficulty hard
  platformer config --config ./my-level.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(cmd *cobra.Command, args []string) {
	cfg, err := loadLevel()
	if err != nil {
		fail("%v", err)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		fail("encoding config: %v", err)
	}
	fmt.Print(string(data))
}

// loadLevel loads and validates the level config selected by the flags
// and applies the difficulty preset.
func loadLevel() (config.PlatformerConfig, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.PlatformerConfig{}, err
	}

	cfg, err := config.LoadPlatformer(flagConfig)
	if err != nil {
		return config.PlatformerConfig{}, err
	}

	config.ApplyPreset(&cfg, preset)
	return cfg, nil
}
