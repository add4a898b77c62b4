package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseSlot(t *testing.T) {
	t.Run("parses RFC3339 labels", func(t *testing.T) {
		slot := ParseSlot("2030-06-15T10:30:00Z")
		assert.True(t, slot.Parsed)
		assert.Equal(t, 2030, slot.At.Year())
		assert.Equal(t, time.June, slot.At.Month())
	})

	t.Run("parses date-time without seconds", func(t *testing.T) {
		slot := ParseSlot("2030-06-15T10:30")
		assert.True(t, slot.Parsed)
		assert.Equal(t, 10, slot.At.Hour())
	})

	t.Run("parses space-separated date-time", func(t *testing.T) {
		slot := ParseSlot("2030-06-15 10:30")
		assert.True(t, slot.Parsed)
	})

	t.Run("parses bare dates", func(t *testing.T) {
		slot := ParseSlot("2030-06-15")
		assert.True(t, slot.Parsed)
		assert.Equal(t, 0, slot.At.Hour())
	})

	t.Run("trims surrounding whitespace", func(t *testing.T) {
		slot := ParseSlot("  2030-06-15 10:30  ")
		assert.True(t, slot.Parsed)
	})

	t.Run("keeps unparseable labels with Parsed false", func(t *testing.T) {
		slot := ParseSlot("next tuesday morning")
		assert.False(t, slot.Parsed)
		assert.Equal(t, "next tuesday morning", slot.Label)
	})
}

func TestSlotInFuture(t *testing.T) {
	now := time.Date(2030, time.June, 15, 9, 0, 0, 0, time.UTC)

	t.Run("later slot is in the future", func(t *testing.T) {
		assert.True(t, ParseSlot("2030-06-15T10:30:00Z").InFuture(now))
	})

	t.Run("earlier slot is not", func(t *testing.T) {
		assert.False(t, ParseSlot("2030-06-15T08:30:00Z").InFuture(now))
	})

	t.Run("equal instant is not in the future", func(t *testing.T) {
		assert.False(t, ParseSlot("2030-06-15T09:00:00Z").InFuture(now))
	})

	t.Run("unparseable label is never in the future", func(t *testing.T) {
		assert.False(t, ParseSlot("whenever").InFuture(now))
	})
}

func TestStatusTransitions(t *testing.T) {
	t.Run("recognizes valid statuses", func(t *testing.T) {
		assert.True(t, ValidStatus(StatusPending))
		assert.True(t, ValidStatus(StatusConfirmed))
		assert.True(t, ValidStatus(StatusCompleted))
		assert.True(t, ValidStatus(StatusCancelled))
		assert.False(t, ValidStatus("archived"))
	})

	t.Run("allows any transition between known statuses", func(t *testing.T) {
		statuses := []AppointmentStatus{StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled}
		for _, from := range statuses {
			for _, to := range statuses {
				assert.True(t, CanTransition(from, to), "%s -> %s", from, to)
			}
		}
	})

	t.Run("rejects transitions from unknown statuses", func(t *testing.T) {
		assert.False(t, CanTransition("archived", StatusPending))
	})
}
