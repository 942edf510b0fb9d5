package publisher

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jgoulah/homewatt/internal/config"
)

func TestNewValidatesHAConfig(t *testing.T) {
	cases := []struct {
		name string
		cfg  config.HAConfig
	}{
		{"missing url", config.HAConfig{Enabled: true, Token: "t", EntityID: "sensor.x"}},
		{"missing token", config.HAConfig{Enabled: true, URL: "http://ha.local", EntityID: "sensor.x"}},
		{"missing entity", config.HAConfig{Enabled: true, URL: "http://ha.local", Token: "t"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := New(config.MQTTConfig{}, tc.cfg); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestNewValidatesMQTTBroker(t *testing.T) {
	if _, err := New(config.MQTTConfig{Enabled: true}, config.HAConfig{}); err == nil {
		t.Error("expected broker validation error")
	}
}

func TestPublishHA(t *testing.T) {
	var gotAuth string
	var gotPayload HAPayload
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		body, _ := io.ReadAll(r.Body)
		json.Unmarshal(body, &gotPayload)
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	pub, err := New(config.MQTTConfig{}, config.HAConfig{
		Enabled:  true,
		URL:      server.URL,
		Token:    "secret",
		EntityID: "sensor.household_daily_usage",
	})
	if err != nil {
		t.Fatalf("creating publisher: %v", err)
	}
	defer pub.Close()

	summary := Summary{
		TotalKWh:   6.6,
		Percentage: 22.0,
		Band:       "excellent",
		Entries:    2,
		At:         time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC),
	}
	if err := pub.Publish(summary); err != nil {
		t.Fatalf("publish: %v", err)
	}

	if gotAuth != "Bearer secret" {
		t.Errorf("auth header = %q", gotAuth)
	}
	if gotPayload.State != "6.60" {
		t.Errorf("state = %q, want 6.60", gotPayload.State)
	}
	if gotPayload.Attributes["band"] != "excellent" {
		t.Errorf("band attribute = %q", gotPayload.Attributes["band"])
	}
	if gotPayload.Attributes["unit_of_measurement"] != "kWh" {
		t.Errorf("unit attribute = %q", gotPayload.Attributes["unit_of_measurement"])
	}
}

func TestPublishHAErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	}))
	defer server.Close()

	pub, err := New(config.MQTTConfig{}, config.HAConfig{
		Enabled:  true,
		URL:      server.URL,
		Token:    "bad",
		EntityID: "sensor.household_daily_usage",
	})
	if err != nil {
		t.Fatalf("creating publisher: %v", err)
	}
	defer pub.Close()

	if err := pub.Publish(Summary{TotalKWh: 1}); err == nil {
		t.Error("expected error for non-2xx response")
	}
}
