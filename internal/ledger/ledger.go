package ledger

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/jgoulah/homewatt/pkg/models"
)

// ReferenceKWh is the national average daily household consumption used
// for the comparison percentage
const ReferenceKWh = 30.0

var (
	// ErrInvalidEntry is returned when watts or hours cannot form a valid entry
	ErrInvalidEntry = errors.New("invalid entry input")

	// ErrMalformedState is returned when persisted ledger data cannot be parsed.
	// Callers should fall back to an empty ledger rather than fail.
	ErrMalformedState = errors.New("malformed ledger state")
)

// Band classifies a comparison percentage into a coarse efficiency tier
type Band string

const (
	BandExcellent    Band = "excellent"
	BandGood         Band = "good"
	BandAverage      Band = "average"
	BandAboveAverage Band = "above average"
)

// ClassifyUsage maps a comparison percentage to its efficiency band
func ClassifyUsage(percentage float64) Band {
	switch {
	case percentage <= 50:
		return BandExcellent
	case percentage <= 80:
		return BandGood
	case percentage <= 120:
		return BandAverage
	default:
		return BandAboveAverage
	}
}

// Ledger holds the ordered sequence of appliance usage entries for a session.
// Entries are immutable once appended; only append and remove mutate the ledger.
type Ledger struct {
	entries []models.Entry
}

// New creates an empty ledger
func New() *Ledger {
	return &Ledger{}
}

// Append validates the input, computes the entry's kWh, and stores it with a
// freshly generated id. The kWh value is fixed at insertion time.
func (l *Ledger) Append(name string, watts, hours float64) (*models.Entry, error) {
	if watts <= 0 || math.IsNaN(watts) || math.IsInf(watts, 0) {
		return nil, fmt.Errorf("%w: watts must be a positive number, got %v", ErrInvalidEntry, watts)
	}
	if hours <= 0 || math.IsNaN(hours) || math.IsInf(hours, 0) {
		return nil, fmt.Errorf("%w: hours must be a positive number, got %v", ErrInvalidEntry, hours)
	}

	entry := models.Entry{
		ID:        uuid.NewString(),
		Name:      name,
		Watts:     watts,
		Hours:     hours,
		KWh:       watts * hours / 1000,
		CreatedAt: time.Now().UTC(),
	}

	l.entries = append(l.entries, entry)
	return &l.entries[len(l.entries)-1], nil
}

// Remove deletes the entry with the given id. Removing an id that is not
// present is a no-op, not an error.
func (l *Ledger) Remove(id string) {
	for i, entry := range l.entries {
		if entry.ID == id {
			l.entries = append(l.entries[:i], l.entries[i+1:]...)
			return
		}
	}
}

// Entries returns a copy of the entry sequence in insertion order
func (l *Ledger) Entries() []models.Entry {
	out := make([]models.Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len returns the number of entries
func (l *Ledger) Len() int {
	return len(l.entries)
}

// TotalKWh returns the sum of all stored kWh values, 0 for an empty ledger
func (l *Ledger) TotalKWh() float64 {
	var total float64
	for _, entry := range l.entries {
		total += entry.KWh
	}
	return total
}

// ComparisonPercentage returns total usage as a percentage of the reference value
func (l *Ledger) ComparisonPercentage() float64 {
	return l.TotalKWh() / ReferenceKWh * 100
}

// Serialize encodes the full entry sequence for storage
func (l *Ledger) Serialize() ([]byte, error) {
	data, err := json.Marshal(l.entries)
	if err != nil {
		return nil, fmt.Errorf("encoding ledger: %w", err)
	}
	return data, nil
}

// Deserialize parses a previously serialized ledger. Unparseable data returns
// ErrMalformedState so callers can discard it and start empty.
func Deserialize(data []byte) (*Ledger, error) {
	var entries []models.Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedState, err)
	}
	return &Ledger{entries: entries}, nil
}
