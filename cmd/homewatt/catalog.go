package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List known appliances and their default wattages",
	Long:  `Shows the appliance catalog used to prefill --watts. Extend or override it with a catalog file (catalog_path in config.yaml).`,
	RunE:  runCatalog,
}

func init() {
	rootCmd.AddCommand(catalogCmd)
}

func runCatalog(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	cat, err := loadCatalog(cfg)
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}

	fmt.Println("\nAppliance Catalog:")
	fmt.Println("----------------------------------------")
	fmt.Printf("%-24s  %10s\n", "Appliance", "Watts")
	fmt.Println("----------------------------------------")

	for _, label := range cat.Labels() {
		watts, _ := cat.Lookup(label)
		fmt.Printf("%-24s  %10s\n", label, humanize.Commaf(watts))
	}

	return nil
}
