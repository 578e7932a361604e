package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// appConfig holds client configuration. Everything has a sane default; a
// missing config file is not an error.
type appConfig struct {
	AuthBaseURL    string
	ContentBaseURL string
	RowsPerPage    int
	DebugLog       bool
	DataDir        string
}

func defaultDataDir() string {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return filepath.Join(dir, "snapgrid")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".snapgrid")
	}
	return filepath.Join(home, ".local", "share", "snapgrid")
}

// loadConfig reads configuration from file and env. Env var overrides use
// prefix SNAPGRID_ (e.g. SNAPGRID_SERVER_CONTENT_URL).
func loadConfig() (appConfig, error) {
	v := viper.New()

	v.SetDefault("server.auth_url", "https://auth.snapgrid.dev")
	v.SetDefault("server.content_url", "https://api.snapgrid.dev/v1")
	v.SetDefault("ui.rows_per_page", 12)
	v.SetDefault("log.debug", false)
	v.SetDefault("data.dir", defaultDataDir())

	v.SetConfigType("toml")
	v.SetConfigName("config")

	if cfgPath := os.Getenv("SNAPGRID_CONFIG"); cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, "snapgrid"))
	}

	v.SetEnvPrefix("SNAPGRID")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return appConfig{}, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := appConfig{
		AuthBaseURL:    v.GetString("server.auth_url"),
		ContentBaseURL: v.GetString("server.content_url"),
		RowsPerPage:    v.GetInt("ui.rows_per_page"),
		DebugLog:       v.GetBool("log.debug"),
		DataDir:        v.GetString("data.dir"),
	}
	return normalizeConfig(cfg), nil
}

// normalizeConfig clamps and cleans raw config values.
func normalizeConfig(cfg appConfig) appConfig {
	cfg.AuthBaseURL = strings.TrimRight(strings.TrimSpace(cfg.AuthBaseURL), "/")
	cfg.ContentBaseURL = strings.TrimRight(strings.TrimSpace(cfg.ContentBaseURL), "/")
	if cfg.RowsPerPage < 4 || cfg.RowsPerPage > 50 {
		cfg.RowsPerPage = 12
	}
	if strings.TrimSpace(cfg.DataDir) == "" {
		cfg.DataDir = defaultDataDir()
	}
	return cfg
}
