package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadPlatformer loads the platformer configuration.
// Search order: customPath -> ~/.platformer/configs/platformer.yaml -> ./configs/platformer.yaml -> embedded default
// Only a custom path that cannot be read or parsed is an error; the other
// locations are skipped when missing or malformed. The result is validated.
func LoadPlatformer(customPath string) (PlatformerConfig, error) {
	cfg, err := loadPlatformerRaw(customPath)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func loadPlatformerRaw(customPath string) (PlatformerConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return PlatformerConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parsePlatformer(data)
		if err != nil {
			return PlatformerConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("platformer.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parsePlatformer(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/platformer.yaml"); err == nil {
		if cfg, err := parsePlatformer(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parsePlatformer(defaultPlatformerYAML)
	if err != nil {
		return DefaultPlatformerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parsePlatformer decodes YAML on top of the built-in defaults, so a file
// only needs the keys it changes. A file that lists platforms replaces the
// whole default level layout.
func parsePlatformer(data []byte) (PlatformerConfig, error) {
	cfg := DefaultPlatformerConfig()
	cfg.World.Platforms = nil
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return PlatformerConfig{}, err
	}
	if cfg.World.Platforms == nil {
		cfg.World.Platforms = DefaultPlatformerConfig().World.Platforms
	}
	return cfg, nil
}

// Marshal renders the config as YAML.
func Marshal(cfg PlatformerConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".platformer", "configs", filename)
}

// ApplyPreset modifies the physics based on a difficulty preset.
// Easy jumps higher and falls slower; hard runs faster with heavier gravity.
func ApplyPreset(cfg *PlatformerConfig, preset DifficultyPreset) {
	def := DefaultPlatformerConfig().Physics
	switch preset {
	case DifficultyEasy:
		cfg.Physics.Speed = def.Speed
		cfg.Physics.JumpForce = def.JumpForce * 1.15
		cfg.Physics.Gravity = def.Gravity * 0.85
	case DifficultyNormal:
		cfg.Physics = def
	case DifficultyHard:
		cfg.Physics.Speed = def.Speed * 1.4
		cfg.Physics.JumpForce = def.JumpForce
		cfg.Physics.Gravity = def.Gravity * 1.1
	}
}
