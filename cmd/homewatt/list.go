package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List ledger entries",
	Long:  `Displays all appliance entries in the ledger in the order they were added.`,
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
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

	entries := l.Entries()
	if len(entries) == 0 {
		fmt.Println("Ledger is empty. Add an appliance with 'homewatt add'.")
		return nil
	}

	fmt.Println("\nHousehold Appliances:")
	fmt.Println("--------------------------------------------------------------------------------------")
	fmt.Printf("%-36s  %-20s  %10s  %7s  %9s\n", "ID", "Name", "Watts", "Hours", "kWh/day")
	fmt.Println("--------------------------------------------------------------------------------------")

	for _, entry := range entries {
		fmt.Printf("%-36s  %-20s  %10s  %7.1f  %9.2f\n",
			entry.ID, entry.Name, humanize.Commaf(entry.Watts), entry.Hours, entry.KWh)
	}

	fmt.Println("--------------------------------------------------------------------------------------")
	fmt.Printf("Total: %.2f kWh/day (%d entries)\n", l.TotalKWh(), len(entries))

	return nil
}
