package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jgoulah/homewatt/internal/ledger"
	"github.com/jgoulah/homewatt/internal/publisher"
)

var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Publish the usage summary to Home Assistant",
	Long:  `Publishes the current total, comparison percentage, and efficiency band to Home Assistant via its HTTP API and/or an MQTT broker, per config.yaml.`,
	RunE:  runPublish,
}

func init() {
	rootCmd.AddCommand(publishCmd)
}

func runPublish(cmd *cobra.Command, args []string) error {
	fmt.Printf("=== Publish started at %s ===\n", time.Now().Format("2006-01-02 15:04:05 MST"))

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if !cfg.HomeAssistant.Enabled && !cfg.MQTT.Enabled {
		return fmt.Errorf("no publish destination enabled in config (home_assistant or mqtt)")
	}

	pub, err := publisher.New(cfg.MQTT, cfg.HomeAssistant)
	if err != nil {
		return fmt.Errorf("creating publisher: %w", err)
	}
	defer pub.Close()

	s, err := openStore(cfg)
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer s.Close()

	l, err := loadLedger(s)
	if err != nil {
		return err
	}

	percentage := l.ComparisonPercentage()
	summary := publisher.Summary{
		TotalKWh:   l.TotalKWh(),
		Percentage: percentage,
		Band:       string(ledger.ClassifyUsage(percentage)),
		Entries:    l.Len(),
		At:         time.Now().UTC(),
	}

	fmt.Printf("Publishing summary (%.2f kWh, %.1f%%)... ", summary.TotalKWh, summary.Percentage)
	if err := pub.Publish(summary); err != nil {
		fmt.Println("FAILED")
		return fmt.Errorf("publishing summary: %w", err)
	}
	fmt.Println("✓")

	return nil
}
