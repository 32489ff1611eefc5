package config

import (
	"os"
	"strconv"
)

const (
	EnvConfigPath = "TD_CONFIG"
	EnvMute       = "TD_MUTE"
)

// PathFromEnv returns flagValue, or TD_CONFIG when the flag was left empty.
func PathFromEnv(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return os.Getenv(EnvConfigPath)
}

// ApplyEnv applies environment overrides on top of cfg.
func ApplyEnv(cfg Config) Config {
	if v, ok := os.LookupEnv(EnvMute); ok {
		if muted, err := strconv.ParseBool(v); err == nil {
			cfg.Audio.Muted = muted
		}
	}
	return cfg
}

// Resolve loads the config named by the flag or TD_CONFIG, falling back to
// Default when neither is set, then applies environment overrides.
func Resolve(flagValue string) (Config, error) {
	cfg := Default()
	if path := PathFromEnv(flagValue); path != "" {
		loaded, err := Load(path)
		if err != nil {
			return Config{}, err
		}
		cfg = loaded
	}
	return ApplyEnv(cfg), nil
}
