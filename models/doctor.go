package models

import "time"

// Doctor is the aggregate root for a doctor's published slots and booked
// appointments. The document is the consistency boundary: a slot label is a
// member of either AvailableSlots or exactly one appointment, never both.
type Doctor struct {
	ID             string        `bson:"id" json:"id"`
	UserID         string        `bson:"user_id" json:"user_id"`
	FullName       string        `bson:"full_name" json:"full_name"`
	Email          string        `bson:"email" json:"email"`
	Specialty      string        `bson:"specialty" json:"specialty"`
	Diseases       []string      `bson:"diseases,omitempty" json:"diseases,omitempty"`
	ClinicAddress  string        `bson:"clinic_address" json:"clinic_address"`
	Contact        string        `bson:"contact" json:"contact"`
	GoogleMapsLink string        `bson:"google_maps_link,omitempty" json:"google_maps_link,omitempty"`
	WhatsappLink   string        `bson:"whatsapp_link,omitempty" json:"whatsapp_link,omitempty"`
	AvailableSlots []string      `bson:"available_slots" json:"available_slots"`
	Appointments   []Appointment `bson:"appointments" json:"appointments"`
	CreatedAt      time.Time     `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time     `bson:"updated_at" json:"updated_at"`
}

// DoctorUpdate carries the fields a doctor may change on their own profile.
// Nil/empty fields are left untouched.
type DoctorUpdate struct {
	FullName       string   `json:"full_name,omitempty"`
	Specialty      string   `json:"specialty,omitempty"`
	Diseases       []string `json:"diseases,omitempty"`
	ClinicAddress  string   `json:"clinic_address,omitempty"`
	Contact        string   `json:"contact,omitempty"`
	GoogleMapsLink string   `json:"google_maps_link,omitempty"`
	WhatsappLink   string   `json:"whatsapp_link,omitempty"`
}

// DoctorRegistrationData is the payload for creating a doctor profile.
type DoctorRegistrationData struct {
	UserID         string   `json:"user_id"`
	FullName       string   `json:"full_name" binding:"required"`
	Email          string   `json:"email" binding:"required"`
	Specialty      string   `json:"specialty" binding:"required"`
	Diseases       []string `json:"diseases"`
	ClinicAddress  string   `json:"clinic_address" binding:"required"`
	Contact        string   `json:"contact" binding:"required"`
	GoogleMapsLink string   `json:"google_maps_link"`
	WhatsappLink   string   `json:"whatsapp_link"`
}
