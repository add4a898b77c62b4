package handlers

import (
	diagnosisRepo "diagnotech/database/repository/diagnosis"
	doctorRepo "diagnotech/database/repository/doctor"
	reviewRepo "diagnotech/database/repository/review"
	userRepo "diagnotech/database/repository/user"
	"diagnotech/services/booking"
	"diagnotech/services/diagnosis"
	"diagnotech/services/doctor"
	"diagnotech/services/intelligence"
	"diagnotech/services/user"
	"diagnotech/utils"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	UserRepo userRepo.UserRepository

	// Account endpoints
	RegisterUserHandler     gin.HandlerFunc
	AuthenticateUserHandler gin.HandlerFunc
	ForgotPasswordHandler   gin.HandlerFunc
	ResetPasswordHandler    gin.HandlerFunc
	GetProfileHandler       gin.HandlerFunc
	UpdateProfileHandler    gin.HandlerFunc
	ChangePasswordHandler   gin.HandlerFunc
	DeleteAccountHandler    gin.HandlerFunc
	LogoutHandler           gin.HandlerFunc
	UploadPictureHandler    gin.HandlerFunc

	// Doctor endpoints
	RegisterDoctorHandler       gin.HandlerFunc
	ListDoctorsHandler          gin.HandlerFunc
	GetDoctorHandler            gin.HandlerFunc
	MyDoctorProfileHandler      gin.HandlerFunc
	UpdateDoctorProfileHandler  gin.HandlerFunc
	DeleteDoctorProfileHandler  gin.HandlerFunc
	AddSlotsHandler             gin.HandlerFunc
	RemoveSlotHandler           gin.HandlerFunc
	DoctorAppointmentsHandler   gin.HandlerFunc
	SetAppointmentStatusHandler gin.HandlerFunc

	// Booking endpoints
	AvailableSlotsHandler gin.HandlerFunc
	BookSlotHandler       gin.HandlerFunc
	MyAppointmentsHandler gin.HandlerFunc

	// Review endpoints
	AddReviewHandler   gin.HandlerFunc
	ListReviewsHandler gin.HandlerFunc

	// Diagnosis endpoints
	PredictHandler          gin.HandlerFunc
	DiagnosisHistoryHandler gin.HandlerFunc
	GetDiagnosisHandler     gin.HandlerFunc

	// Chat endpoints
	ChatHandler      gin.HandlerFunc
	ResetChatHandler gin.HandlerFunc

	// Admin endpoints
	AdminStatsHandler     gin.HandlerFunc
	AdminListUsersHandler gin.HandlerFunc
}

// BundleDeps carries everything the handlers need.
type BundleDeps struct {
	Users     userRepo.UserRepository
	Doctors   doctorRepo.DoctorRepository
	Reviews   reviewRepo.ReviewRepository
	Diagnoses diagnosisRepo.DiagnosisRepository

	UserSvc      user.UserService
	DoctorSvc    doctor.DoctorService
	Registry     booking.SlotRegistry
	BookingSvc   booking.BookingService
	ReviewSvc    booking.ReviewService
	DiagnosisSvc diagnosis.DiagnosisService
	ChatSvc      intelligence.ChatService
	Media        utils.MediaStorage
}

// NewHandlerBundle wires the endpoint handlers to their services. ChatSvc and
// Media may be nil when the corresponding integration is not configured; the
// affected routes are simply not registered.
func NewHandlerBundle(deps BundleDeps) *HandlerBundle {
	b := &HandlerBundle{
		UserRepo: deps.Users,

		RegisterUserHandler:     RegisterUserHandler(deps.UserSvc),
		AuthenticateUserHandler: AuthenticateUserHandler(deps.UserSvc),
		ForgotPasswordHandler:   ForgotPasswordHandler(deps.UserSvc),
		ResetPasswordHandler:    ResetPasswordHandler(deps.UserSvc),
		GetProfileHandler:       GetProfileHandler(deps.UserSvc),
		UpdateProfileHandler:    UpdateProfileHandler(deps.UserSvc),
		ChangePasswordHandler:   ChangePasswordHandler(deps.UserSvc),
		DeleteAccountHandler:    DeleteAccountHandler(deps.UserSvc),
		LogoutHandler:           LogoutHandler(deps.UserSvc),

		RegisterDoctorHandler:       RegisterDoctorHandler(deps.DoctorSvc),
		ListDoctorsHandler:          ListDoctorsHandler(deps.DoctorSvc),
		GetDoctorHandler:            GetDoctorHandler(deps.DoctorSvc),
		MyDoctorProfileHandler:      MyDoctorProfileHandler(deps.DoctorSvc),
		UpdateDoctorProfileHandler:  UpdateDoctorProfileHandler(deps.DoctorSvc),
		DeleteDoctorProfileHandler:  DeleteDoctorProfileHandler(deps.DoctorSvc),
		AddSlotsHandler:             AddSlotsHandler(deps.DoctorSvc, deps.Registry),
		RemoveSlotHandler:           RemoveSlotHandler(deps.DoctorSvc, deps.Registry),
		DoctorAppointmentsHandler:   DoctorAppointmentsHandler(deps.DoctorSvc, deps.Registry),
		SetAppointmentStatusHandler: SetAppointmentStatusHandler(deps.DoctorSvc, deps.BookingSvc),

		AvailableSlotsHandler: AvailableSlotsHandler(deps.Registry),
		BookSlotHandler:       BookSlotHandler(deps.BookingSvc),
		MyAppointmentsHandler: MyAppointmentsHandler(deps.BookingSvc),

		AddReviewHandler:   AddReviewHandler(deps.ReviewSvc),
		ListReviewsHandler: ListReviewsHandler(deps.ReviewSvc),

		PredictHandler:          PredictHandler(deps.DiagnosisSvc),
		DiagnosisHistoryHandler: DiagnosisHistoryHandler(deps.DiagnosisSvc),
		GetDiagnosisHandler:     GetDiagnosisHandler(deps.DiagnosisSvc),

		AdminStatsHandler:     AdminStatsHandler(deps.Users, deps.Doctors, deps.Reviews, deps.Diagnoses),
		AdminListUsersHandler: AdminListUsersHandler(deps.UserSvc),
	}

	if deps.ChatSvc != nil {
		b.ChatHandler = ChatHandler(deps.ChatSvc)
		b.ResetChatHandler = ResetChatHandler(deps.ChatSvc)
	}
	if deps.Media != nil {
		b.UploadPictureHandler = UploadProfilePictureHandler(deps.Media, deps.UserSvc)
	}
	return b
}
