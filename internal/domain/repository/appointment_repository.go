package repository

import (
	"context"
	"time"

	"medical-appointment-api/internal/domain/entity"
)

type AppointmentRepository interface {
	// Create returns ErrDuplicateSlot when an active appointment already
	// holds the slot.
	Create(ctx context.Context, appointment *entity.Appointment) error
	// FindActiveInWindow returns the active appointment of doctorName at
	// appointmentTime whose date falls in window, or nil.
	FindActiveInWindow(ctx context.Context, doctorName, appointmentTime string, window entity.DayWindow) (*entity.Appointment, error)
	// FindUpcoming lists appointments dated at or after from, ascending.
	FindUpcoming(ctx context.Context, userEmail string, from time.Time) ([]entity.Appointment, error)
	// FindHistory lists appointments dated before before, descending.
	FindHistory(ctx context.Context, userEmail string, before time.Time) ([]entity.Appointment, error)
}
