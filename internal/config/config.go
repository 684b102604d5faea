package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/ilyakaznacheev/cleanenv"
)

const configFileName = "config.yml"

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	LogLevel        string        `yaml:"log-level" env:"TICTACTOE_LOG_LEVEL" env-default:"info"`
	WindowTitle     string        `yaml:"window-title" env:"TICTACTOE_WINDOW_TITLE" env-default:"Tic-Tac-Toe"`
	WindowSize      int           `yaml:"window-size" env:"TICTACTOE_WINDOW_SIZE" env-default:"512"`
	BorderThickness int           `yaml:"border-thickness" env:"TICTACTOE_BORDER_THICKNESS" env-default:"10"`
	BoardSize       int           `yaml:"board-size" env:"TICTACTOE_BOARD_SIZE" env-default:"3"`
	FreezeDuration  time.Duration `yaml:"freeze-duration" env:"TICTACTOE_FREEZE_DURATION" env-default:"2s"`
	TickRate        int           `yaml:"tick-rate" env:"TICTACTOE_TICK_RATE" env-default:"60"`
}

// MustLoad - load all configurations from the given file, or from the first
// config.yml found, or from the environment alone.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config: %w", err))
	}

	return config
}

// Load - reads the config file at path when one is given. Otherwise it looks
// for config.yml in the working directory and then under the user config
// directory; without a file, environment variables and defaults apply.
func Load(path string) (*Config, error) {
	config := &Config{}

	if path == "" {
		path = lookupConfigFile()
	}

	if path == "" {
		if err := cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read environment: %w", err)
		}

		return config, config.validate()
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, config.validate()
}

func lookupConfigFile() string {
	if _, err := os.Stat(configFileName); err == nil {
		return configFileName
	}

	xdgPath := filepath.Join(xdg.ConfigHome, "tictactoe-desktop", configFileName)
	if _, err := os.Stat(xdgPath); err == nil {
		return xdgPath
	}

	return ""
}

// validate - checks the values the window layout cannot check itself.
func (that *Config) validate() error {
	if that.TickRate < 1 {
		return fmt.Errorf("%w: tick-rate must be positive, got %d", ErrInvalidConfig, that.TickRate)
	}

	if that.FreezeDuration < 0 {
		return fmt.Errorf("%w: freeze-duration cannot be negative, got %s", ErrInvalidConfig, that.FreezeDuration)
	}

	return nil
}
