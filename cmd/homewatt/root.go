package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jgoulah/homewatt/internal/catalog"
	"github.com/jgoulah/homewatt/internal/config"
	"github.com/jgoulah/homewatt/internal/ledger"
	"github.com/jgoulah/homewatt/internal/store"
)

var (
	cfgFile   string
	storePath string
)

var rootCmd = &cobra.Command{
	Use:   "homewatt",
	Short: "Track household appliance energy usage",
	Long: `Homewatt is a CLI tool to estimate daily household energy consumption.
Add your appliances with their power draw and daily usage hours, and homewatt
totals the kWh, compares it against the national average, and keeps the ledger
in a local SQLite store between runs.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().StringVar(&storePath, "db", "", "ledger store file (default is ./homewatt.db)")
}

// getConfigPath returns the config file path
func getConfigPath() string {
	if cfgFile != "" {
		return cfgFile
	}
	return config.DefaultConfigPath()
}

// loadConfig loads the configuration file
func loadConfig() (*config.Config, error) {
	return config.Load(getConfigPath())
}

// getStorePath returns the ledger store path, --db flag winning over config
func getStorePath(cfg *config.Config) string {
	if storePath != "" {
		return storePath
	}
	return cfg.GetStorePath()
}

// openStore opens the ledger store
func openStore(cfg *config.Config) (*store.Store, error) {
	path := getStorePath(cfg)

	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating store directory: %w", err)
	}

	return store.New(path)
}

// loadLedger restores the persisted ledger. Missing or malformed state falls
// back to an empty ledger; malformed state additionally prints a warning.
func loadLedger(s *store.Store) (*ledger.Ledger, error) {
	data, ok, err := s.Get(store.LedgerKey)
	if err != nil {
		return nil, fmt.Errorf("reading ledger: %w", err)
	}
	if !ok {
		return ledger.New(), nil
	}

	l, err := ledger.Deserialize([]byte(data))
	if err != nil {
		fmt.Printf("⚠ Stored ledger could not be parsed, starting empty: %v\n", err)
		return ledger.New(), nil
	}
	return l, nil
}

// saveLedger persists the ledger under the fixed store key
func saveLedger(s *store.Store, l *ledger.Ledger) error {
	data, err := l.Serialize()
	if err != nil {
		return fmt.Errorf("serializing ledger: %w", err)
	}
	if err := s.Set(store.LedgerKey, string(data)); err != nil {
		return fmt.Errorf("saving ledger: %w", err)
	}
	return nil
}

// loadCatalog loads the appliance catalog, with config-file overrides if set
func loadCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	if cfg.CatalogPath == "" {
		return catalog.Default(), nil
	}
	return catalog.Load(cfg.CatalogPath)
}
