package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing file should yield empty config, got error: %v", err)
	}
	if cfg.GetStorePath() != "homewatt.db" {
		t.Errorf("store path default = %q, want homewatt.db", cfg.GetStorePath())
	}
	if cfg.GetCurrency() != "$" {
		t.Errorf("currency default = %q, want $", cfg.GetCurrency())
	}
	if cfg.GetRate() != 0 {
		t.Errorf("rate default = %f, want 0", cfg.GetRate())
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("rate: [not a number"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected parse error for invalid yaml")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	want := &Config{
		StorePath: "/var/lib/homewatt/ledger.db",
		Rate:      0.24,
		Currency:  "€",
		HomeAssistant: HAConfig{
			Enabled:  true,
			URL:      "http://ha.local:8123",
			Token:    "token",
			EntityID: "sensor.household_daily_usage",
		},
		MQTT: MQTTConfig{
			Enabled: true,
			Broker:  "broker.local:1883",
		},
	}

	if err := Save(path, want); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if got.StorePath != want.StorePath || got.Rate != want.Rate || got.Currency != want.Currency {
		t.Errorf("got %+v, want %+v", got, want)
	}
	if got.HomeAssistant != want.HomeAssistant {
		t.Errorf("home assistant config changed: %+v", got.HomeAssistant)
	}
	if got.MQTT != want.MQTT {
		t.Errorf("mqtt config changed: %+v", got.MQTT)
	}
}
