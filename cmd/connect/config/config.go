// Package config loads the settings for the connect game from flags,
// environment variables and an optional config file.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, so --drop-delay is
// read from CONNECT_DROP_DELAY.
const EnvPrefix = "CONNECT"

// Config represents the settings for the game.
type Config struct {
	Player1    string
	Player2    string
	Height     int
	Width      int
	Animate    bool
	DropDelay  time.Duration
	LogFile    string
	Debug      bool
	PictureDir string
}

// Load parses the command line arguments. Settings are taken from the flags
// first, then the environment, then the file named by --config, then the
// defaults.
func Load(args []string) (Config, error) {
	fs := pflag.NewFlagSet("connect", pflag.ContinueOnError)

	fs.String("player1", "Red", "name or colour of the player who moves first")
	fs.String("player2", "Yellow", "name or colour of the second player")
	fs.Int("height", 6, "number of rows on the board")
	fs.Int("width", 7, "number of columns on the board")
	fs.Bool("animate", true, "animate pieces as they drop")
	fs.Duration("drop-delay", 60*time.Millisecond, "time a piece spends on each row while dropping")
	fs.String("log-file", "connect.log", "file to write logs to, empty disables logging")
	fs.Bool("debug", false, "log every move")
	fs.String("picture-dir", "", "directory to save a PNG of each finished game")
	fs.String("config", "", "optional config file (yaml, json or toml)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(fs); err != nil {
		return Config{}, fmt.Errorf("bind flags: %w", err)
	}

	if file := v.GetString("config"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %q: %w", file, err)
		}
	}

	cfg := Config{
		Player1:    strings.TrimSpace(v.GetString("player1")),
		Player2:    strings.TrimSpace(v.GetString("player2")),
		Height:     v.GetInt("height"),
		Width:      v.GetInt("width"),
		Animate:    v.GetBool("animate"),
		DropDelay:  v.GetDuration("drop-delay"),
		LogFile:    v.GetString("log-file"),
		Debug:      v.GetBool("debug"),
		PictureDir: v.GetString("picture-dir"),
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks the settings can start a game.
func (cfg Config) Validate() error {
	var errs []error

	if cfg.Height <= 0 || cfg.Width <= 0 {
		errs = append(errs, fmt.Errorf("board size %dx%d must be positive", cfg.Height, cfg.Width))
	}

	if cfg.Player1 == "" || cfg.Player2 == "" {
		errs = append(errs, errors.New("both players need a name"))
	}

	if strings.EqualFold(cfg.Player1, cfg.Player2) && cfg.Player1 != "" {
		errs = append(errs, fmt.Errorf("players must be distinct, both are %q", cfg.Player1))
	}

	if cfg.DropDelay < 0 {
		errs = append(errs, fmt.Errorf("drop delay %v must not be negative", cfg.DropDelay))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	return nil
}
