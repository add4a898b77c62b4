package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddSlots(t *testing.T) {
	ctx := context.Background()

	t.Run("adds a batch of new slots", func(t *testing.T) {
		repo := newFakeDoctorRepo(testDoctor("2030-06-15 09:00"))
		registry := &DefaultSlotRegistry{Repo: repo}

		slots, err := registry.AddSlots(ctx, "doc-1", []string{"2030-06-15 10:00", "2030-06-15 11:00"})
		assert.NoError(t, err)
		assert.Equal(t, []string{"2030-06-15 09:00", "2030-06-15 10:00", "2030-06-15 11:00"}, slots)
	})

	t.Run("rejects the whole batch on a duplicate against existing slots", func(t *testing.T) {
		repo := newFakeDoctorRepo(testDoctor("2030-06-15 09:00"))
		registry := &DefaultSlotRegistry{Repo: repo}

		_, err := registry.AddSlots(ctx, "doc-1", []string{"2030-06-15 10:00", "2030-06-15 09:00"})
		var dup DuplicateSlotError
		assert.ErrorAs(t, err, &dup)
		assert.Equal(t, "2030-06-15 09:00", dup.Label)

		// Nothing from the batch was committed.
		remaining, err := registry.ListUnbooked(ctx, "doc-1")
		assert.NoError(t, err)
		assert.Equal(t, []string{"2030-06-15 09:00"}, remaining)
	})

	t.Run("rejects an intra-batch duplicate", func(t *testing.T) {
		repo := newFakeDoctorRepo(testDoctor())
		registry := &DefaultSlotRegistry{Repo: repo}

		_, err := registry.AddSlots(ctx, "doc-1", []string{"2030-06-15 10:00", "2030-06-15 10:00"})
		var dup DuplicateSlotError
		assert.ErrorAs(t, err, &dup)
	})

	t.Run("rejects a label held by a booking", func(t *testing.T) {
		repo := newFakeDoctorRepo(testDoctor("2030-06-15 09:00"))
		engine := &DefaultBookingEngine{Repo: repo}
		_, err := engine.Book(ctx, "doc-1", "patient-1", "2030-06-15 09:00", "")
		assert.NoError(t, err)

		registry := &DefaultSlotRegistry{Repo: repo}
		_, err = registry.AddSlots(ctx, "doc-1", []string{"2030-06-15 09:00"})
		var dup DuplicateSlotError
		assert.ErrorAs(t, err, &dup)
		assert.Equal(t, "2030-06-15 09:00", dup.Label)
	})

	t.Run("reports an unknown doctor", func(t *testing.T) {
		registry := &DefaultSlotRegistry{Repo: newFakeDoctorRepo()}
		_, err := registry.AddSlots(ctx, "doc-9", []string{"2030-06-15 10:00"})
		assert.ErrorIs(t, err, ErrDoctorNotFound)
	})

	t.Run("rejects empty batches and blank labels", func(t *testing.T) {
		registry := &DefaultSlotRegistry{Repo: newFakeDoctorRepo(testDoctor())}
		_, err := registry.AddSlots(ctx, "doc-1", nil)
		assert.ErrorIs(t, err, ErrInvalidRequest)
		_, err = registry.AddSlots(ctx, "doc-1", []string{""})
		assert.ErrorIs(t, err, ErrInvalidRequest)
	})
}

func TestRemoveSlot(t *testing.T) {
	ctx := context.Background()

	t.Run("removes an unbooked slot", func(t *testing.T) {
		repo := newFakeDoctorRepo(testDoctor("2030-06-15 09:00", "2030-06-15 10:00"))
		registry := &DefaultSlotRegistry{Repo: repo}

		assert.NoError(t, registry.RemoveSlot(ctx, "doc-1", "2030-06-15 09:00"))
		remaining, err := registry.ListUnbooked(ctx, "doc-1")
		assert.NoError(t, err)
		assert.Equal(t, []string{"2030-06-15 10:00"}, remaining)
	})

	t.Run("refuses to remove a booked slot", func(t *testing.T) {
		repo := newFakeDoctorRepo(testDoctor("2030-06-15 09:00"))
		engine := &DefaultBookingEngine{Repo: repo}
		_, err := engine.Book(ctx, "doc-1", "patient-1", "2030-06-15 09:00", "")
		assert.NoError(t, err)

		registry := &DefaultSlotRegistry{Repo: repo}
		assert.ErrorIs(t, registry.RemoveSlot(ctx, "doc-1", "2030-06-15 09:00"), ErrSlotBooked)
	})

	t.Run("reports a missing slot", func(t *testing.T) {
		registry := &DefaultSlotRegistry{Repo: newFakeDoctorRepo(testDoctor())}
		assert.ErrorIs(t, registry.RemoveSlot(ctx, "doc-1", "2030-06-15 09:00"), ErrSlotNotFound)
	})
}

func TestListBooked(t *testing.T) {
	ctx := context.Background()

	t.Run("returns appointments without a user repository", func(t *testing.T) {
		repo := newFakeDoctorRepo(testDoctor("2030-06-15 09:00"))
		engine := &DefaultBookingEngine{Repo: repo}
		_, err := engine.Book(ctx, "doc-1", "patient-1", "2030-06-15 09:00", "rash")
		assert.NoError(t, err)

		registry := &DefaultSlotRegistry{Repo: repo}
		booked, err := registry.ListBooked(ctx, "doc-1")
		assert.NoError(t, err)
		assert.Len(t, booked, 1)
		assert.Equal(t, "patient-1", booked[0].PatientID)
		assert.Equal(t, "rash", booked[0].Reason)
	})
}
