package internal

import (
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds the optional CLI settings read from a lako.toml file.
type Config struct {
	Prompt string `toml:"prompt"`
	Color  bool   `toml:"color"`
	Debug  bool   `toml:"debug"`
}

func DefaultConfig() Config {
	return Config{
		Prompt: "> ",
		Color:  true,
	}
}

// LoadConfig reads the config file at path. A missing file is not an
// error, the defaults apply.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, ioError(err)
	}
	return cfg, nil
}
