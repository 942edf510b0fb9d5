package catalog

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Catalog maps appliance labels to a default wattage, used only to prefill
// the watts value when the user names a known appliance
type Catalog struct {
	watts map[string]float64
}

// defaultWatts is the built-in appliance list
var defaultWatts = map[string]float64{
	"air conditioner": 1500,
	"ceiling fan":     75,
	"clothes dryer":   3000,
	"coffee maker":    800,
	"dishwasher":      1800,
	"fridge":          150,
	"hair dryer":      1200,
	"heater":          1500,
	"iron":            1100,
	"kettle":          1500,
	"laptop":          65,
	"microwave":       1500,
	"oven":            2400,
	"router":          10,
	"television":      100,
	"toaster":         900,
	"vacuum cleaner":  700,
	"washing machine": 500,
	"water heater":    4000,
}

// Default returns the built-in catalog
func Default() *Catalog {
	watts := make(map[string]float64, len(defaultWatts))
	for label, w := range defaultWatts {
		watts[label] = w
	}
	return &Catalog{watts: watts}
}

// Load returns the built-in catalog merged with overrides from a YAML file
// mapping labels to wattages. A missing file yields the built-in catalog.
func Load(path string) (*Catalog, error) {
	c := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return c, nil
		}
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}

	var overrides map[string]float64
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("parsing catalog file: %w", err)
	}

	for label, watts := range overrides {
		c.watts[strings.ToLower(label)] = watts
	}

	return c, nil
}

// Lookup returns the default wattage for a label, matched case-insensitively
func (c *Catalog) Lookup(label string) (float64, bool) {
	watts, ok := c.watts[strings.ToLower(strings.TrimSpace(label))]
	return watts, ok
}

// Labels returns all known appliance labels in sorted order
func (c *Catalog) Labels() []string {
	labels := make([]string, 0, len(c.watts))
	for label := range c.watts {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}
