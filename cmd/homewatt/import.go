package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jgoulah/homewatt/internal/ledger"
)

var importMerge bool

var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Import a ledger from JSON",
	Long: `Restores a ledger previously written by 'homewatt export'. By default the
stored ledger is replaced; with --merge the imported entries are appended to
it. Malformed input leaves the stored ledger untouched.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().BoolVar(&importMerge, "merge", false, "Append imported entries instead of replacing the ledger")
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading import file: %w", err)
	}

	imported, err := ledger.Deserialize(data)
	if err != nil {
		return fmt.Errorf("parsing import file: %w", err)
	}

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	s, err := openStore(cfg)
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer s.Close()

	result := imported
	if importMerge {
		current, err := loadLedger(s)
		if err != nil {
			return err
		}
		for _, entry := range imported.Entries() {
			if _, err := current.Append(entry.Name, entry.Watts, entry.Hours); err != nil {
				return fmt.Errorf("merging entry %s: %w", entry.Name, err)
			}
		}
		result = current
	}

	if err := saveLedger(s, result); err != nil {
		return err
	}

	fmt.Printf("✓ Imported %d entries (%d total)\n", imported.Len(), result.Len())
	return nil
}
