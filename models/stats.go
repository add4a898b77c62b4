package models

// PlatformStats is the admin dashboard aggregate.
type PlatformStats struct {
	Users                int64            `json:"users"`
	Doctors              int64            `json:"doctors"`
	Appointments         int64            `json:"appointments"`
	Reviews              int64            `json:"reviews"`
	Diagnoses            int64            `json:"diagnoses"`
	AppointmentsByStatus map[string]int64 `json:"appointments_by_status"`
}
