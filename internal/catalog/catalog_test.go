package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultLookup(t *testing.T) {
	c := Default()

	watts, ok := c.Lookup("fridge")
	if !ok || watts != 150 {
		t.Errorf("Lookup(fridge) = (%f, %v), want (150, true)", watts, ok)
	}

	t.Run("case insensitive", func(t *testing.T) {
		watts, ok := c.Lookup("  Microwave ")
		if !ok || watts != 1500 {
			t.Errorf("got (%f, %v), want (1500, true)", watts, ok)
		}
	})

	t.Run("unknown label", func(t *testing.T) {
		if _, ok := c.Lookup("flux capacitor"); ok {
			t.Error("unknown label should not resolve")
		}
	})
}

func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	content := "fridge: 200\nspace heater: 2000\n"
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if watts, _ := c.Lookup("fridge"); watts != 200 {
		t.Errorf("override lost: fridge = %f, want 200", watts)
	}
	if watts, ok := c.Lookup("space heater"); !ok || watts != 2000 {
		t.Errorf("new label: got (%f, %v), want (2000, true)", watts, ok)
	}
	// built-ins survive the merge
	if _, ok := c.Lookup("television"); !ok {
		t.Error("built-in label dropped after override load")
	}
}

func TestLoadMissingFile(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing file should yield the built-in catalog, got: %v", err)
	}
	if _, ok := c.Lookup("fridge"); !ok {
		t.Error("built-in catalog missing")
	}
}

func TestLoadInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte("- not\n- a map"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestLabelsSorted(t *testing.T) {
	labels := Default().Labels()
	if len(labels) == 0 {
		t.Fatal("no labels")
	}
	for i := 1; i < len(labels); i++ {
		if labels[i-1] >= labels[i] {
			t.Errorf("labels not sorted: %q before %q", labels[i-1], labels[i])
		}
	}
}
