package booking

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	doctorRepo "diagnotech/database/repository/doctor"
	"diagnotech/models"

	"go.mongodb.org/mongo-driver/bson"
)

// fakeDoctorRepo is an in-memory DoctorRepository that mirrors the conditional
// update semantics of the mongo implementation: every mutation re-checks its
// precondition under the lock and returns ErrNoMatch when it no longer holds.
type fakeDoctorRepo struct {
	mu   sync.Mutex
	docs map[string]*models.Doctor

	// bookFailures and getFailures inject transient storage errors into
	// BookSlot and GetByID respectively.
	bookFailures int
	getFailures  int
}

func newFakeDoctorRepo(docs ...*models.Doctor) *fakeDoctorRepo {
	repo := &fakeDoctorRepo{docs: make(map[string]*models.Doctor)}
	for _, doc := range docs {
		repo.docs[doc.ID] = doc
	}
	return repo
}

func copyDoctor(doc *models.Doctor) *models.Doctor {
	out := *doc
	out.AvailableSlots = append([]string(nil), doc.AvailableSlots...)
	out.Appointments = append([]models.Appointment(nil), doc.Appointments...)
	return &out
}

func (r *fakeDoctorRepo) GetByID(id string) (*models.Doctor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.getFailures > 0 {
		r.getFailures--
		return nil, fmt.Errorf("transient read failure")
	}
	doc, ok := r.docs[id]
	if !ok {
		return nil, nil
	}
	return copyDoctor(doc), nil
}

func (r *fakeDoctorRepo) GetByUserID(userID string) (*models.Doctor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, doc := range r.docs {
		if doc.UserID == userID {
			return copyDoctor(doc), nil
		}
	}
	return nil, nil
}

func (r *fakeDoctorRepo) GetAll() ([]models.Doctor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Doctor, 0, len(r.docs))
	for _, doc := range r.docs {
		out = append(out, *copyDoctor(doc))
	}
	return out, nil
}

func (r *fakeDoctorRepo) Search(specialty, disease string) ([]models.Doctor, error) {
	return r.GetAll()
}

func (r *fakeDoctorRepo) Create(doc *models.Doctor) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.docs[doc.ID] = copyDoctor(doc)
	return nil
}

func (r *fakeDoctorRepo) UpdateSetDocument(id string, updateDoc bson.M) error {
	return nil
}

func (r *fakeDoctorRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.docs, id)
	return nil
}

func (r *fakeDoctorRepo) AddSlots(ctx context.Context, doctorID string, labels []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	doc, ok := r.docs[doctorID]
	if !ok {
		return doctorRepo.ErrNoMatch
	}
	existing := make(map[string]bool)
	for _, slot := range doc.AvailableSlots {
		existing[slot] = true
	}
	for _, appt := range doc.Appointments {
		existing[appt.Slot] = true
	}
	for _, label := range labels {
		if existing[label] {
			return doctorRepo.ErrNoMatch
		}
	}
	doc.AvailableSlots = append(doc.AvailableSlots, labels...)
	return nil
}

func (r *fakeDoctorRepo) RemoveSlot(ctx context.Context, doctorID, label string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	doc, ok := r.docs[doctorID]
	if !ok {
		return doctorRepo.ErrNoMatch
	}
	for i, slot := range doc.AvailableSlots {
		if slot == label {
			doc.AvailableSlots = append(doc.AvailableSlots[:i], doc.AvailableSlots[i+1:]...)
			return nil
		}
	}
	return doctorRepo.ErrNoMatch
}

func (r *fakeDoctorRepo) BookSlot(ctx context.Context, doctorID string, appt *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.bookFailures > 0 {
		r.bookFailures--
		return fmt.Errorf("transient write failure")
	}
	doc, ok := r.docs[doctorID]
	if !ok {
		return doctorRepo.ErrNoMatch
	}
	for i, slot := range doc.AvailableSlots {
		if slot == appt.Slot {
			doc.AvailableSlots = append(doc.AvailableSlots[:i], doc.AvailableSlots[i+1:]...)
			doc.Appointments = append(doc.Appointments, *appt)
			return nil
		}
	}
	return doctorRepo.ErrNoMatch
}

func (r *fakeDoctorRepo) SetAppointmentStatus(ctx context.Context, doctorID, slot string, status models.AppointmentStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	doc, ok := r.docs[doctorID]
	if !ok {
		return doctorRepo.ErrNoMatch
	}
	for i := range doc.Appointments {
		if doc.Appointments[i].Slot == slot {
			doc.Appointments[i].Status = status
			return nil
		}
	}
	return doctorRepo.ErrNoMatch
}

func (r *fakeDoctorRepo) AppointmentsByPatient(ctx context.Context, patientID string) ([]models.PatientAppointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.PatientAppointment
	for _, doc := range r.docs {
		for _, appt := range doc.Appointments {
			if appt.PatientID == patientID {
				out = append(out, models.PatientAppointment{
					Appointment:     appt,
					DoctorID:        doc.ID,
					DoctorName:      doc.FullName,
					DoctorSpecialty: doc.Specialty,
					ClinicAddress:   doc.ClinicAddress,
				})
			}
		}
	}
	return out, nil
}

func (r *fakeDoctorRepo) Count() (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.docs)), nil
}

func (r *fakeDoctorRepo) CountAppointmentsByStatus() (map[string]int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[string]int64)
	for _, doc := range r.docs {
		for _, appt := range doc.Appointments {
			out[string(appt.Status)]++
		}
	}
	return out, nil
}

// failingDoctorRepo wraps fakeDoctorRepo and fails every BookSlot call.
type failingDoctorRepo struct {
	*fakeDoctorRepo
}

func (r *failingDoctorRepo) BookSlot(ctx context.Context, doctorID string, appt *models.Appointment) error {
	return errors.New("write concern error")
}

func testDoctor(slots ...string) *models.Doctor {
	return &models.Doctor{
		ID:             "doc-1",
		UserID:         "user-doc-1",
		FullName:       "Amal Hassan",
		Specialty:      "Dermatology",
		ClinicAddress:  "12 Nile St",
		AvailableSlots: append([]string{}, slots...),
		Appointments:   []models.Appointment{},
		CreatedAt:      time.Now().UTC(),
	}
}
