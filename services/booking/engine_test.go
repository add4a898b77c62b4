package booking

import (
	"context"
	"sync"
	"testing"
	"time"

	"diagnotech/models"

	"github.com/stretchr/testify/assert"
)

func TestBook(t *testing.T) {
	ctx := context.Background()

	t.Run("moves the slot into an appointment", func(t *testing.T) {
		repo := newFakeDoctorRepo(testDoctor("2030-06-15 09:00"))
		engine := &DefaultBookingEngine{Repo: repo}

		appt, err := engine.Book(ctx, "doc-1", "patient-1", "2030-06-15 09:00", "checkup")
		assert.NoError(t, err)
		assert.Equal(t, models.StatusPending, appt.Status)
		assert.Equal(t, "patient-1", appt.PatientID)
		assert.NotEmpty(t, appt.ID)

		doc, _ := repo.GetByID("doc-1")
		assert.Empty(t, doc.AvailableSlots)
		assert.Len(t, doc.Appointments, 1)
	})

	t.Run("rejects a slot that is not available", func(t *testing.T) {
		repo := newFakeDoctorRepo(testDoctor("2030-06-15 09:00"))
		engine := &DefaultBookingEngine{Repo: repo}

		_, err := engine.Book(ctx, "doc-1", "patient-1", "2030-06-15 10:00", "")
		assert.ErrorIs(t, err, ErrSlotUnavailable)
	})

	t.Run("rejects a slot in the past", func(t *testing.T) {
		repo := newFakeDoctorRepo(testDoctor("2020-01-01 09:00"))
		engine := &DefaultBookingEngine{Repo: repo}

		_, err := engine.Book(ctx, "doc-1", "patient-1", "2020-01-01 09:00", "")
		assert.ErrorIs(t, err, ErrSlotInPast)
	})

	t.Run("rejects an unparseable slot label as never in the future", func(t *testing.T) {
		repo := newFakeDoctorRepo(testDoctor("soonish"))
		engine := &DefaultBookingEngine{Repo: repo}

		_, err := engine.Book(ctx, "doc-1", "patient-1", "soonish", "")
		assert.ErrorIs(t, err, ErrSlotInPast)
	})

	t.Run("respects the injected clock", func(t *testing.T) {
		repo := newFakeDoctorRepo(testDoctor("2030-06-15 09:00"))
		engine := &DefaultBookingEngine{
			Repo: repo,
			Now:  func() time.Time { return time.Date(2030, time.June, 15, 10, 0, 0, 0, time.UTC) },
		}

		_, err := engine.Book(ctx, "doc-1", "patient-1", "2030-06-15 09:00", "")
		assert.ErrorIs(t, err, ErrSlotInPast)
	})

	t.Run("reports an unknown doctor", func(t *testing.T) {
		engine := &DefaultBookingEngine{Repo: newFakeDoctorRepo()}
		_, err := engine.Book(ctx, "doc-9", "patient-1", "2030-06-15 09:00", "")
		assert.ErrorIs(t, err, ErrDoctorNotFound)
	})

	t.Run("unknown doctor wins over the past check", func(t *testing.T) {
		engine := &DefaultBookingEngine{Repo: newFakeDoctorRepo()}
		_, err := engine.Book(ctx, "doc-9", "patient-1", "2020-01-01 09:00", "")
		assert.ErrorIs(t, err, ErrDoctorNotFound)
	})

	t.Run("unavailable slot wins over the past check", func(t *testing.T) {
		repo := newFakeDoctorRepo(testDoctor("2030-06-15 09:00"))
		engine := &DefaultBookingEngine{Repo: repo}
		_, err := engine.Book(ctx, "doc-1", "patient-1", "2019-01-01 09:00", "")
		assert.ErrorIs(t, err, ErrSlotUnavailable)
	})

	t.Run("retries transient storage errors", func(t *testing.T) {
		repo := newFakeDoctorRepo(testDoctor("2030-06-15 09:00"))
		repo.bookFailures = 2
		engine := &DefaultBookingEngine{Repo: repo}

		appt, err := engine.Book(ctx, "doc-1", "patient-1", "2030-06-15 09:00", "")
		assert.NoError(t, err)
		assert.NotNil(t, appt)
	})

	t.Run("retries transient lookup errors", func(t *testing.T) {
		repo := newFakeDoctorRepo(testDoctor("2030-06-15 09:00"))
		repo.getFailures = 2
		engine := &DefaultBookingEngine{Repo: repo}

		appt, err := engine.Book(ctx, "doc-1", "patient-1", "2030-06-15 09:00", "")
		assert.NoError(t, err)
		assert.NotNil(t, appt)
	})

	t.Run("surfaces storage unavailable when the lookup keeps failing", func(t *testing.T) {
		repo := newFakeDoctorRepo(testDoctor("2030-06-15 09:00"))
		repo.getFailures = bookAttempts
		engine := &DefaultBookingEngine{Repo: repo}

		_, err := engine.Book(ctx, "doc-1", "patient-1", "2030-06-15 09:00", "")
		assert.ErrorIs(t, err, ErrStorageUnavailable)
	})

	t.Run("surfaces storage unavailable after retries are exhausted", func(t *testing.T) {
		repo := &failingDoctorRepo{newFakeDoctorRepo(testDoctor("2030-06-15 09:00"))}
		engine := &DefaultBookingEngine{Repo: repo}

		_, err := engine.Book(ctx, "doc-1", "patient-1", "2030-06-15 09:00", "")
		assert.ErrorIs(t, err, ErrStorageUnavailable)
	})

	t.Run("exactly one of two concurrent bookings wins", func(t *testing.T) {
		repo := newFakeDoctorRepo(testDoctor("2030-06-15 09:00"))
		engine := &DefaultBookingEngine{Repo: repo}

		var wg sync.WaitGroup
		results := make([]error, 2)
		for i := 0; i < 2; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				patient := "patient-a"
				if i == 1 {
					patient = "patient-b"
				}
				_, results[i] = engine.Book(ctx, "doc-1", patient, "2030-06-15 09:00", "")
			}(i)
		}
		wg.Wait()

		var wins, conflicts int
		for _, err := range results {
			switch err {
			case nil:
				wins++
			case ErrSlotUnavailable:
				conflicts++
			default:
				t.Fatalf("unexpected error: %v", err)
			}
		}
		assert.Equal(t, 1, wins)
		assert.Equal(t, 1, conflicts)

		doc, _ := repo.GetByID("doc-1")
		assert.Len(t, doc.Appointments, 1)
		assert.Empty(t, doc.AvailableSlots)
	})
}

func TestSetStatus(t *testing.T) {
	ctx := context.Background()

	bookOne := func(t *testing.T) (*fakeDoctorRepo, *DefaultBookingEngine) {
		repo := newFakeDoctorRepo(testDoctor("2030-06-15 09:00"))
		engine := &DefaultBookingEngine{Repo: repo}
		_, err := engine.Book(ctx, "doc-1", "patient-1", "2030-06-15 09:00", "")
		assert.NoError(t, err)
		return repo, engine
	}

	t.Run("transitions through the lifecycle", func(t *testing.T) {
		repo, engine := bookOne(t)

		for _, status := range []models.AppointmentStatus{
			models.StatusConfirmed, models.StatusCompleted,
		} {
			appt, err := engine.SetStatus(ctx, "doc-1", "2030-06-15 09:00", status)
			assert.NoError(t, err)
			assert.Equal(t, status, appt.Status)
		}

		doc, _ := repo.GetByID("doc-1")
		assert.Equal(t, models.StatusCompleted, doc.Appointments[0].Status)
	})

	t.Run("cancellation keeps the slot out of the available list", func(t *testing.T) {
		repo, engine := bookOne(t)

		_, err := engine.SetStatus(ctx, "doc-1", "2030-06-15 09:00", models.StatusCancelled)
		assert.NoError(t, err)

		doc, _ := repo.GetByID("doc-1")
		assert.Empty(t, doc.AvailableSlots)
		assert.Len(t, doc.Appointments, 1)
		assert.Equal(t, models.StatusCancelled, doc.Appointments[0].Status)
	})

	t.Run("rejects an unknown status value", func(t *testing.T) {
		_, engine := bookOne(t)
		_, err := engine.SetStatus(ctx, "doc-1", "2030-06-15 09:00", "archived")
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})

	t.Run("reports a slot with no appointment", func(t *testing.T) {
		_, engine := bookOne(t)
		_, err := engine.SetStatus(ctx, "doc-1", "2030-06-15 10:00", models.StatusConfirmed)
		assert.ErrorIs(t, err, ErrAppointmentNotFound)
	})
}

func TestListMine(t *testing.T) {
	ctx := context.Background()

	t.Run("collects the patient's appointments across doctors", func(t *testing.T) {
		docA := testDoctor("2030-06-15 09:00")
		docB := testDoctor("2030-06-16 09:00")
		docB.ID = "doc-2"
		docB.UserID = "user-doc-2"
		docB.FullName = "Omar Farouk"

		repo := newFakeDoctorRepo(docA, docB)
		engine := &DefaultBookingEngine{Repo: repo}

		_, err := engine.Book(ctx, "doc-1", "patient-1", "2030-06-15 09:00", "")
		assert.NoError(t, err)
		_, err = engine.Book(ctx, "doc-2", "patient-1", "2030-06-16 09:00", "")
		assert.NoError(t, err)
		_, err = engine.Book(ctx, "doc-2", "patient-2", "2030-06-16 09:00", "")
		assert.ErrorIs(t, err, ErrSlotUnavailable)

		mine, err := engine.ListMine(ctx, "patient-1")
		assert.NoError(t, err)
		assert.Len(t, mine, 2)
	})

	t.Run("returns an empty list for a patient with no bookings", func(t *testing.T) {
		engine := &DefaultBookingEngine{Repo: newFakeDoctorRepo(testDoctor())}
		mine, err := engine.ListMine(ctx, "patient-9")
		assert.NoError(t, err)
		assert.Empty(t, mine)
	})
}
