// The init command creates the configuration directory and catalog file.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/zarr-experimental/conventions-go/internal/catalog"
)

// configFile holds the structure written to config.yaml.
type configFile struct {
	CatalogPath string `yaml:"catalog_path"`
}

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize the configuration directory and catalog",
		Long:  "Create the configuration directory, write config.yaml, and create an empty convention catalog.",
		Args:  cobra.NoArgs,
		RunE:  runInit,
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	configDir := resolveConfigDir()

	catalogPath := flags.catalogPath
	if catalogPath == "" {
		catalogPath = loadCatalogPathFromConfig(configDir)
	}
	if catalogPath == "" {
		catalogPath = filepath.Join(configDir, defaultCatalogFile)
	}

	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	configPath := filepath.Join(configDir, configFileName+"."+configFileType)
	if err := writeConfigIfMissing(configPath, catalogPath); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	// Opening the store creates the catalog file and its schema.
	store, err := catalog.Open(catalogPath)
	if err != nil {
		return fmt.Errorf("initialize catalog: %w", err)
	}
	if err := store.Close(); err != nil {
		return fmt.Errorf("finalize catalog: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), "initialized", configDir)
	return nil
}

// writeConfigIfMissing creates config.yaml with default values if the file
// does not exist. If it already exists, the function returns nil (idempotent).
func writeConfigIfMissing(path, catalogPath string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	cfg := configFile{CatalogPath: catalogPath}

	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0o644)
}

// loadCatalogPathFromConfig reads catalog_path from an existing config.yaml.
// Returns empty string if the file does not exist or cannot be read.
func loadCatalogPathFromConfig(configDir string) string {
	path := filepath.Join(configDir, configFileName+"."+configFileType)
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}

	var cfg configFile
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return ""
	}
	return cfg.CatalogPath
}
