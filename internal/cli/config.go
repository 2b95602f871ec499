// Config loading for the zarrconv CLI.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	envPrefix      = "ZARRCONV"

	cfgKeyCatalogPath = "catalog_path"

	defaultConfigDir   = ".zarrconv"
	defaultCatalogFile = "catalog.db"
)

// resolveConfigDir returns the config directory from flag, env, or default.
func resolveConfigDir() string {
	if flags.configDir != "" {
		return flags.configDir
	}
	if v := os.Getenv(envPrefix + "_CONFIG_DIR"); v != "" {
		return v
	}
	return defaultConfigDir
}

// loadConfig reads config.yaml from the config directory using Viper.
// A missing config file or directory is not an error.
func loadConfig(configDir string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(cfgKeyCatalogPath, filepath.Join(configDir, defaultCatalogFile))
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}

// resolveCatalogPath returns the catalog file path from flag, env, config,
// or default, in that order of precedence.
func resolveCatalogPath() (string, error) {
	if flags.catalogPath != "" {
		return flags.catalogPath, nil
	}
	v, err := loadConfig(resolveConfigDir())
	if err != nil {
		return "", err
	}
	return v.GetString(cfgKeyCatalogPath), nil
}
