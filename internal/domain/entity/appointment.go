package entity

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "Pending"
	AppointmentStatusConfirmed AppointmentStatus = "Confirmed"
	// AppointmentStatusCancelled is excluded from the slot unique index. No
	// flow produces it yet.
	AppointmentStatusCancelled AppointmentStatus = "Cancelled"
)

func (s AppointmentStatus) Valid() bool {
	return s == AppointmentStatusPending || s == AppointmentStatusConfirmed
}

// Appointment is a booking of one doctor's time slot on one calendar day.
type Appointment struct {
	ID              uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserEmail       string            `gorm:"type:varchar(255);not null;index" json:"userEmail"`
	DoctorName      string            `gorm:"type:varchar(255);not null" json:"doctorName"`
	AppointmentDate time.Time         `gorm:"type:timestamptz;not null;index" json:"appointmentDate"`
	SlotDay         string            `gorm:"type:varchar(10);not null" json:"-"`
	AppointmentTime string            `gorm:"type:varchar(32);not null" json:"appointmentTime"`
	Status          AppointmentStatus `gorm:"type:varchar(20);not null;default:'Pending'" json:"status"`
	CreatedAt       time.Time         `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt       time.Time         `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// Slot returns the uniqueness key of the appointment.
func (a *Appointment) Slot() Slot {
	return Slot{DoctorName: a.DoctorName, Day: a.SlotDay, Time: a.AppointmentTime}
}

// IsActive reports whether the appointment holds its slot.
func (a *Appointment) IsActive() bool {
	return a.Status != AppointmentStatusCancelled
}
