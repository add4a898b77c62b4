package cron

import (
	"context"
	"testing"

	doctorRepo "diagnotech/database/repository/doctor"
	userRepo "diagnotech/database/repository/user"
	"diagnotech/models"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

// stubDoctorRepo answers GetByID with a fixed record. The embedded interface
// panics on anything else, which no scheduler path should reach.
type stubDoctorRepo struct {
	doctorRepo.DoctorRepository
	doc *models.Doctor
}

func (s *stubDoctorRepo) GetByID(id string) (*models.Doctor, error) {
	return s.doc, nil
}

type stubUserRepo struct {
	userRepo.UserRepository
	user *models.User
}

func (s *stubUserRepo) GetByIDWithProjection(id string, projection bson.M) (*models.User, error) {
	return s.user, nil
}

func TestScheduleReminder(t *testing.T) {
	ctx := context.Background()
	appt := models.Appointment{
		ID:        "appt-1",
		PatientID: "patient-1",
		Slot:      "2030-06-15 09:00",
		Status:    models.StatusConfirmed,
	}

	t.Run("skips slots without a parseable time", func(t *testing.T) {
		s := &AsynqScheduler{doctors: &stubDoctorRepo{}, users: &stubUserRepo{}}
		unparsed := appt
		unparsed.Slot = "soonish"
		assert.NoError(t, s.ScheduleReminder(ctx, "doc-1", unparsed))
	})

	t.Run("names a missing doctor in the error", func(t *testing.T) {
		s := &AsynqScheduler{doctors: &stubDoctorRepo{}, users: &stubUserRepo{}}
		err := s.ScheduleReminder(ctx, "doc-1", appt)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "doctor doc-1 not found")
		assert.NotContains(t, err.Error(), "%!w")
	})

	t.Run("names a missing patient in the error", func(t *testing.T) {
		s := &AsynqScheduler{
			doctors: &stubDoctorRepo{doc: &models.Doctor{ID: "doc-1", FullName: "Amal Hassan"}},
			users:   &stubUserRepo{},
		}
		err := s.ScheduleReminder(ctx, "doc-1", appt)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "patient patient-1 not found")
		assert.NotContains(t, err.Error(), "%!w")
	})
}
