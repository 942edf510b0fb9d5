package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:   "remove [id]",
	Short: "Remove an appliance from the ledger",
	Long:  `Removes the entry with the given id and persists the ledger. Use 'homewatt list' to see entry ids.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runRemove,
}

func init() {
	rootCmd.AddCommand(removeCmd)
}

func runRemove(cmd *cobra.Command, args []string) error {
	id := args[0]

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

	before := l.Len()
	l.Remove(id)
	if l.Len() == before {
		// Absent id is not an error, just nothing to do
		fmt.Printf("No entry with id %s\n", id)
		return nil
	}

	if err := saveLedger(s, l); err != nil {
		return err
	}

	fmt.Printf("✓ Removed entry %s (%d entries remain)\n", id, l.Len())
	return nil
}
