package doctor

import (
	doctorRepo "diagnotech/database/repository/doctor"
	userRepo "diagnotech/database/repository/user"
	"diagnotech/models"
)

// DoctorService manages doctor profiles. Slot and appointment state is the
// booking service's concern; profile identity lives here.
type DoctorService interface {
	// RegisterDoctor creates a doctor profile and promotes the owning account
	// to the doctor role.
	RegisterDoctor(req models.DoctorRegistrationData) (*models.Doctor, error)
	// GetDoctorByID fetches a doctor by profile id; (nil, nil) when absent.
	GetDoctorByID(id string) (*models.Doctor, error)
	// GetDoctorByUserID fetches the profile owned by a user account.
	GetDoctorByUserID(userID string) (*models.Doctor, error)
	// ListDoctors returns all doctor profiles.
	ListDoctors() ([]models.Doctor, error)
	// SearchDoctors filters doctors by specialty and/or treated disease.
	SearchDoctors(specialty, disease string) ([]models.Doctor, error)
	// UpdateProfile applies a partial profile update and returns the fresh record.
	UpdateProfile(id string, update models.DoctorUpdate) (*models.Doctor, error)
	// DeleteDoctor removes the profile and demotes the owning account.
	DeleteDoctor(id string) error
}

// DefaultDoctorService is the production implementation of DoctorService.
type DefaultDoctorService struct {
	Repo  doctorRepo.DoctorRepository
	Users userRepo.UserRepository
}
