package repository

import (
	"context"
	"errors"
	"time"

	"medical-appointment-api/internal/domain/entity"
	domainRepo "medical-appointment-api/internal/domain/repository"

	"gorm.io/gorm"
)

// slotIndexName is the partial unique index over (doctor_name, slot_day,
// appointment_time) created by the migrations.
const slotIndexName = "idx_appointments_slot"

type appointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) domainRepo.AppointmentRepository {
	return &appointmentRepository{db: db}
}

func (r *appointmentRepository) Create(ctx context.Context, appointment *entity.Appointment) error {
	err := r.db.WithContext(ctx).Create(appointment).Error
	if isDuplicateKeyError(err, slotIndexName) {
		return domainRepo.ErrDuplicateSlot
	}
	return err
}

func (r *appointmentRepository) FindActiveInWindow(ctx context.Context, doctorName, appointmentTime string, window entity.DayWindow) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := r.db.WithContext(ctx).
		Where("doctor_name = ? AND appointment_time = ?", doctorName, appointmentTime).
		Where("appointment_date >= ? AND appointment_date <= ?", window.Start, window.End).
		Where("status <> ?", entity.AppointmentStatusCancelled).
		First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindUpcoming(ctx context.Context, userEmail string, from time.Time) ([]entity.Appointment, error) {
	appointments := []entity.Appointment{}
	err := r.db.WithContext(ctx).
		Where("user_email = ? AND appointment_date >= ?", userEmail, from).
		Order("appointment_date ASC, appointment_time ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindHistory(ctx context.Context, userEmail string, before time.Time) ([]entity.Appointment, error) {
	appointments := []entity.Appointment{}
	err := r.db.WithContext(ctx).
		Where("user_email = ? AND appointment_date < ?", userEmail, before).
		Order("appointment_date DESC, appointment_time DESC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}
