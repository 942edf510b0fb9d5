package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/jgoulah/homewatt/internal/ledger"
	"github.com/jgoulah/homewatt/internal/tips"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show the daily usage summary",
	Long: `Totals the ledger's daily energy consumption, compares it against the
national average of 30 kWh/day, and classifies the result into an efficiency
band. When a rate is configured, an estimated daily cost is included.`,
	RunE: runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
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

	if l.Len() == 0 {
		fmt.Println("Ledger is empty. Add an appliance with 'homewatt add'.")
		return nil
	}

	total := l.TotalKWh()
	percentage := l.ComparisonPercentage()
	band := ledger.ClassifyUsage(percentage)

	fmt.Println("\nDaily Usage Report")
	fmt.Println("----------------------------------------")
	fmt.Printf("Appliances:      %d\n", l.Len())
	fmt.Printf("Total usage:     %.2f kWh/day\n", total)
	fmt.Printf("vs. average:     %.1f%% of %.0f kWh/day\n", percentage, ledger.ReferenceKWh)
	fmt.Printf("Efficiency band: %s\n", band)

	if rate := cfg.GetRate(); rate > 0 {
		fmt.Printf("Estimated cost:  %s%.2f/day\n", cfg.GetCurrency(), total*rate)
	}

	fmt.Println("----------------------------------------")
	fmt.Printf("Tip: %s\n", tips.Pick(rand.New(rand.NewSource(time.Now().UnixNano()))))

	return nil
}
