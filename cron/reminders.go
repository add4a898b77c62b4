package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"diagnotech/config"
	doctorRepo "diagnotech/database/repository/doctor"
	userRepo "diagnotech/database/repository/user"
	"diagnotech/models"
	"diagnotech/utils"

	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

const TypeReminderSend = "reminder:send"

// reminderLead is how long before the appointment the reminder fires.
const reminderLead = 24 * time.Hour

// ReminderPayload is the task body for a scheduled appointment reminder.
type ReminderPayload struct {
	AppointmentID string `json:"appointment_id"`
	DoctorName    string `json:"doctor_name"`
	PatientEmail  string `json:"patient_email"`
	Slot          string `json:"slot"`
}

func redisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderDB,
	}
}

// AsynqScheduler queues appointment reminders on the Redis-backed task queue.
type AsynqScheduler struct {
	client  *asynq.Client
	doctors doctorRepo.DoctorRepository
	users   userRepo.UserRepository
}

// NewAsynqScheduler builds a scheduler against the configured Redis queue.
func NewAsynqScheduler(doctors doctorRepo.DoctorRepository, users userRepo.UserRepository) *AsynqScheduler {
	return &AsynqScheduler{
		client:  asynq.NewClient(redisOpts()),
		doctors: doctors,
		users:   users,
	}
}

// ScheduleReminder enqueues an email reminder ahead of the appointment time.
// Slots without a parseable time get no reminder.
func (s *AsynqScheduler) ScheduleReminder(ctx context.Context, doctorID string, appt models.Appointment) error {
	slot := models.ParseSlot(appt.Slot)
	if !slot.Parsed {
		return nil
	}
	fireAt := slot.At.Add(-reminderLead)
	if fireAt.Before(time.Now()) {
		fireAt = time.Now()
	}

	doc, err := s.doctors.GetByID(doctorID)
	if err != nil {
		return fmt.Errorf("failed to resolve doctor for reminder: %w", err)
	}
	if doc == nil {
		return fmt.Errorf("doctor %s not found for reminder", doctorID)
	}
	patient, err := s.users.GetByIDWithProjection(appt.PatientID, bson.M{"id": 1, "email": 1})
	if err != nil {
		return fmt.Errorf("failed to resolve patient for reminder: %w", err)
	}
	if patient == nil {
		return fmt.Errorf("patient %s not found for reminder", appt.PatientID)
	}

	payload := ReminderPayload{
		AppointmentID: appt.ID,
		DoctorName:    doc.FullName,
		PatientEmail:  patient.Email,
		Slot:          appt.Slot,
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	task := asynq.NewTask(TypeReminderSend, b)
	if _, err := s.client.Enqueue(task, asynq.ProcessAt(fireAt)); err != nil {
		return fmt.Errorf("failed to enqueue reminder: %w", err)
	}

	utils.GetLogger().Info("reminder scheduled",
		zap.String("appointmentID", appt.ID),
		zap.Time("fireAt", fireAt))
	return nil
}

// InitReminderWorker runs the async worker in background.
func InitReminderWorker(mailer utils.Mailer) {
	srv := asynq.NewServer(
		redisOpts(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeReminderSend, handleReminderTask(mailer))

	go func() {
		logger := utils.GetLogger()
		logger.Info("starting reminder worker")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			err := srv.Run(mux)
			if err == nil {
				return
			}
			logger.Error("reminder worker failed to start",
				zap.Int("attempt", attempts), zap.Error(err))
			if attempts == maxAttempts {
				logger.Fatal("reminder worker exhausted start attempts")
			}
			time.Sleep(time.Duration(attempts*2) * time.Second)
		}
	}()
}

func handleReminderTask(mailer utils.Mailer) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			utils.GetLogger().Error("reminder task has invalid payload", zap.Error(err))
			return err
		}

		subject, text, html := utils.ReminderEmail(p.DoctorName, p.Slot)
		if err := mailer.Send(ctx, p.PatientEmail, subject, text, html); err != nil {
			utils.GetLogger().Error("failed to send reminder email",
				zap.String("appointmentID", p.AppointmentID), zap.Error(err))
			return err
		}

		utils.GetLogger().Info("reminder sent", zap.String("appointmentID", p.AppointmentID))
		return nil
	}
}
