package models

import "time"

// Entry represents a single appliance's recorded daily usage
type Entry struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Watts     float64   `json:"watts"`
	Hours     float64   `json:"hours"`
	KWh       float64   `json:"kwh"`        // watts * hours / 1000, fixed at creation
	CreatedAt time.Time `json:"created_at"` // display only
}
