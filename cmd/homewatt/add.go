package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	addWatts float64
	addHours float64
)

var addCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Add an appliance to the ledger",
	Long: `Adds an appliance usage entry to the ledger and persists it.
If --watts is omitted and the name matches a known appliance, the catalog
default wattage is used. Hours default to 24 (always on).`,
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

func init() {
	addCmd.Flags().Float64Var(&addWatts, "watts", 0, "Power draw in watts (default: catalog value for known appliances)")
	addCmd.Flags().Float64Var(&addHours, "hours", 24, "Daily usage in hours")
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	name := args[0]

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Prefill watts from the catalog when not given
	watts := addWatts
	if !cmd.Flags().Changed("watts") {
		cat, err := loadCatalog(cfg)
		if err != nil {
			return fmt.Errorf("loading catalog: %w", err)
		}
		defaultWatts, ok := cat.Lookup(name)
		if !ok {
			return fmt.Errorf("no catalog entry for %q, specify --watts (see 'homewatt catalog')", name)
		}
		watts = defaultWatts
		fmt.Printf("Using catalog wattage for %s: %.0f W\n", name, watts)
	}

	s, err := openStore(cfg)
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer s.Close()

	l, err := loadLedger(s)
	if err != nil {
		return err
	}

	entry, err := l.Append(name, watts, addHours)
	if err != nil {
		return fmt.Errorf("adding entry: %w", err)
	}

	if err := saveLedger(s, l); err != nil {
		return err
	}

	fmt.Printf("✓ Added %s (%.0f W × %.1f h = %.2f kWh/day)\n", entry.Name, entry.Watts, entry.Hours, entry.KWh)
	fmt.Printf("  id: %s\n", entry.ID)
	return nil
}
