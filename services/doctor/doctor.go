package doctor

import (
	"fmt"
	"strings"
	"time"

	"diagnotech/models"
	"diagnotech/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// RegisterDoctor creates a doctor profile bound to an existing user account
// and promotes that account to the doctor role.
func (s *DefaultDoctorService) RegisterDoctor(req models.DoctorRegistrationData) (*models.Doctor, error) {
	if req.UserID == "" || req.FullName == "" || req.Specialty == "" {
		return nil, fmt.Errorf("user id, full name and specialty are required")
	}

	owner, err := s.Users.GetByIDWithProjection(req.UserID, bson.M{"id": 1, "role": 1})
	if err != nil {
		utils.GetLogger().Error("RegisterDoctor: failed to fetch owning user", zap.Error(err))
		return nil, fmt.Errorf("doctor registration failed, please try again")
	}
	if owner == nil {
		return nil, fmt.Errorf("no account found for this user")
	}

	existing, err := s.Repo.GetByUserID(req.UserID)
	if err != nil {
		utils.GetLogger().Error("RegisterDoctor: failed to check for existing profile", zap.Error(err))
		return nil, fmt.Errorf("doctor registration failed, please try again")
	}
	if existing != nil {
		return nil, fmt.Errorf("this account already has a doctor profile")
	}

	now := time.Now().UTC()
	doc := models.Doctor{
		ID:             uuid.New().String(),
		UserID:         req.UserID,
		FullName:       req.FullName,
		Email:          strings.ToLower(strings.TrimSpace(req.Email)),
		Specialty:      req.Specialty,
		Diseases:       req.Diseases,
		ClinicAddress:  req.ClinicAddress,
		Contact:        req.Contact,
		GoogleMapsLink: req.GoogleMapsLink,
		WhatsappLink:   req.WhatsappLink,
		AvailableSlots: []string{},
		Appointments:   []models.Appointment{},
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.Repo.Create(&doc); err != nil {
		utils.GetLogger().Error("RegisterDoctor: failed to create profile", zap.Error(err))
		return nil, fmt.Errorf("doctor registration failed, please try again")
	}

	if owner.Role != models.RoleDoctor {
		if err := s.Users.UpdateSetDocument(req.UserID, bson.M{
			"role":       models.RoleDoctor,
			"updated_at": now,
		}); err != nil {
			utils.GetLogger().Error("RegisterDoctor: failed to promote account",
				zap.String("userID", req.UserID), zap.Error(err))
		}
	}

	utils.GetLogger().Info("doctor registered", zap.String("doctorID", doc.ID), zap.String("userID", req.UserID))
	return &doc, nil
}

func (s *DefaultDoctorService) GetDoctorByID(id string) (*models.Doctor, error) {
	if id == "" {
		return nil, fmt.Errorf("doctor id is required")
	}
	return s.Repo.GetByID(id)
}

func (s *DefaultDoctorService) GetDoctorByUserID(userID string) (*models.Doctor, error) {
	if userID == "" {
		return nil, fmt.Errorf("user id is required")
	}
	return s.Repo.GetByUserID(userID)
}

func (s *DefaultDoctorService) ListDoctors() ([]models.Doctor, error) {
	return s.Repo.GetAll()
}

func (s *DefaultDoctorService) SearchDoctors(specialty, disease string) ([]models.Doctor, error) {
	return s.Repo.Search(specialty, disease)
}

// UpdateProfile applies the non-empty fields of the update.
func (s *DefaultDoctorService) UpdateProfile(id string, update models.DoctorUpdate) (*models.Doctor, error) {
	if id == "" {
		return nil, fmt.Errorf("doctor id is required")
	}

	updateDoc := bson.M{}
	if update.FullName != "" {
		updateDoc["full_name"] = update.FullName
	}
	if update.Specialty != "" {
		updateDoc["specialty"] = update.Specialty
	}
	if update.Diseases != nil {
		updateDoc["diseases"] = update.Diseases
	}
	if update.ClinicAddress != "" {
		updateDoc["clinic_address"] = update.ClinicAddress
	}
	if update.Contact != "" {
		updateDoc["contact"] = update.Contact
	}
	if update.GoogleMapsLink != "" {
		updateDoc["google_maps_link"] = update.GoogleMapsLink
	}
	if update.WhatsappLink != "" {
		updateDoc["whatsapp_link"] = update.WhatsappLink
	}
	if len(updateDoc) == 0 {
		return nil, fmt.Errorf("no fields to update")
	}
	updateDoc["updated_at"] = time.Now().UTC()

	if err := s.Repo.UpdateSetDocument(id, updateDoc); err != nil {
		utils.GetLogger().Error("UpdateProfile: failed to update doctor", zap.String("doctorID", id), zap.Error(err))
		return nil, fmt.Errorf("failed to update doctor profile")
	}
	return s.Repo.GetByID(id)
}

// DeleteDoctor removes the profile and demotes the owning account back to
// the patient role.
func (s *DefaultDoctorService) DeleteDoctor(id string) error {
	if id == "" {
		return fmt.Errorf("doctor id is required")
	}

	doc, err := s.Repo.GetByID(id)
	if err != nil {
		return fmt.Errorf("failed to delete doctor: %w", err)
	}
	if doc == nil {
		return fmt.Errorf("doctor not found")
	}

	if err := s.Repo.Delete(id); err != nil {
		utils.GetLogger().Error("DeleteDoctor: failed to delete profile", zap.String("doctorID", id), zap.Error(err))
		return fmt.Errorf("failed to delete doctor")
	}

	if err := s.Users.UpdateSetDocument(doc.UserID, bson.M{
		"role":       models.RoleUser,
		"updated_at": time.Now().UTC(),
	}); err != nil {
		utils.GetLogger().Warn("DeleteDoctor: failed to demote account",
			zap.String("userID", doc.UserID), zap.Error(err))
	}

	utils.GetLogger().Info("doctor deleted", zap.String("doctorID", id))
	return nil
}
