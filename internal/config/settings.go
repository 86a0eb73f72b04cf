package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Defaults of the upstream disassembly project.
const (
	DefaultDisassemblyRepo = "git@github.com:pret/pokered.git"
	DefaultDisassemblyPath = "src/terminal_dex_scraper/gen_1/red_and_blue/disassembly"
)

// Environment variables that override the settings file.
const (
	EnvDisassemblyRepo = "POKEMON_RED_AND_BLUE_DISASSEMBLY_REPO"
	EnvDisassemblyPath = "POKEMON_RED_AND_BLUE_DISASSEMBLY_PATH"
)

const (
	constantsDir      = "constants"
	itemConstantsFile = "item_constants.asm"
)

// Settings describes where the disassembly sources are located.
type Settings struct {
	DisassemblyRepo string `toml:"disassembly_repo"`
	DisassemblyPath string `toml:"disassembly_path"`
}

// DefaultSettings returns the settings pointing at the upstream project.
func DefaultSettings() Settings {
	return Settings{
		DisassemblyRepo: DefaultDisassemblyRepo,
		DisassemblyPath: DefaultDisassemblyPath,
	}
}

// LoadSettings returns the default settings, overwritten by the values of the
// optional TOML file and then by the environment.
func LoadSettings(fileName string) (Settings, error) {
	settings := DefaultSettings()

	if fileName != "" {
		if _, err := toml.DecodeFile(fileName, &settings); err != nil {
			return Settings{}, fmt.Errorf("decoding settings file '%s': %w", fileName, err)
		}
	}

	if value, ok := os.LookupEnv(EnvDisassemblyRepo); ok && value != "" {
		settings.DisassemblyRepo = value
	}
	if value, ok := os.LookupEnv(EnvDisassemblyPath); ok && value != "" {
		settings.DisassemblyPath = value
	}
	return settings, nil
}

// ItemConstantsPath returns the path of the item constants source file.
func (s Settings) ItemConstantsPath() string {
	return filepath.Join(s.DisassemblyPath, constantsDir, itemConstantsFile)
}

// SourcePath resolves a file name relative to the disassembly path.
// Absolute paths are returned unchanged.
func (s Settings) SourcePath(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(s.DisassemblyPath, name)
}
