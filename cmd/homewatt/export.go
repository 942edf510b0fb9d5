package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the ledger as JSON",
	Long:  `Writes the serialized ledger to stdout, or to a file with --out. The output can be restored with 'homewatt import'.`,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportOut, "out", "", "Write to this file instead of stdout")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
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

	data, err := l.Serialize()
	if err != nil {
		return fmt.Errorf("serializing ledger: %w", err)
	}

	if exportOut == "" {
		fmt.Println(string(data))
		return nil
	}

	if err := os.WriteFile(exportOut, data, 0600); err != nil {
		return fmt.Errorf("writing export file: %w", err)
	}
	fmt.Printf("✓ Exported %d entries to %s\n", l.Len(), exportOut)
	return nil
}
