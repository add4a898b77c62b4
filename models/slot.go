package models

import (
	"strings"
	"time"
)

// slotLayouts is the canonical set of layouts a slot label may use. Parsing
// happens once at the boundary; every operation works with the parsed value.
var slotLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

// AppointmentSlot is a doctor-published unit of bookable time. The label is
// the stable identity key; At carries the parsed timestamp when the label is
// a well-formed date-time.
type AppointmentSlot struct {
	Label  string
	At     time.Time
	Parsed bool
}

// ParseSlot interprets a slot label as a date-time using the canonical
// layouts. Labels that match no layout are kept with Parsed set to false.
func ParseSlot(label string) AppointmentSlot {
	trimmed := strings.TrimSpace(label)
	for _, layout := range slotLayouts {
		if at, err := time.Parse(layout, trimmed); err == nil {
			return AppointmentSlot{Label: label, At: at, Parsed: true}
		}
	}
	return AppointmentSlot{Label: label}
}

// InFuture reports whether the slot's time is strictly after now. A label
// that failed to parse is never in the future, so it can never be booked.
func (s AppointmentSlot) InFuture(now time.Time) bool {
	return s.Parsed && s.At.After(now)
}
