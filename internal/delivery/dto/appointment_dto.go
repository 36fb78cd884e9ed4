package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type BookAppointmentRequest struct {
	UserEmail       string `json:"userEmail" validate:"notblank"`
	DoctorName      string `json:"doctorName" validate:"notblank"`
	AppointmentDate string `json:"appointmentDate" validate:"notblank"`
	AppointmentTime string `json:"appointmentTime" validate:"notblank"`
}

// Response DTOs

type AppointmentResponse struct {
	ID              uuid.UUID `json:"id"`
	UserEmail       string    `json:"userEmail"`
	DoctorName      string    `json:"doctorName"`
	AppointmentDate time.Time `json:"appointmentDate"`
	AppointmentTime string    `json:"appointmentTime"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}
