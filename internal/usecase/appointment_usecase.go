package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"medical-appointment-api/internal/converter"
	"medical-appointment-api/internal/delivery/dto"
	"medical-appointment-api/internal/domain/entity"
	"medical-appointment-api/internal/domain/repository"
	"medical-appointment-api/internal/service"
	"medical-appointment-api/pkg/apperror"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrAppointmentFieldsMissing = apperror.Validation("All fields are required")
	ErrInvalidAppointmentDate   = apperror.Validation("Invalid appointment date")
	ErrUserEmailRequired        = apperror.Validation("User email is required")
	ErrSlotUnavailable          = apperror.Conflict("Slot unavailable")
)

// BookingPolicy makes the variant behaviour of the booking flow explicit.
type BookingPolicy struct {
	// CheckConflicts runs the day-window lookup before inserting. The store's
	// slot constraint applies either way.
	CheckConflicts bool
	DefaultStatus  entity.AppointmentStatus
}

// NewBookingPolicy resolves an empty defaultStatus from checkConflicts:
// Confirmed when the flow checks for conflicts, Pending otherwise.
func NewBookingPolicy(checkConflicts bool, defaultStatus string) BookingPolicy {
	status := entity.AppointmentStatus(defaultStatus)
	if !status.Valid() {
		status = entity.AppointmentStatusPending
		if checkConflicts {
			status = entity.AppointmentStatusConfirmed
		}
	}
	return BookingPolicy{CheckConflicts: checkConflicts, DefaultStatus: status}
}

type AppointmentUsecase interface {
	BookAppointment(ctx context.Context, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error)
	ListUpcoming(ctx context.Context, userEmail string) ([]dto.AppointmentResponse, error)
	ListHistory(ctx context.Context, userEmail string) ([]dto.AppointmentResponse, error)
}

type appointmentUsecase struct {
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	auditService    service.AuditService
	policy          BookingPolicy
	location        *time.Location
	now             func() time.Time
}

// NewAppointmentUsecase buckets dates by calendar day in location. now
// defaults to time.Now.
func NewAppointmentUsecase(
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	auditService service.AuditService,
	policy BookingPolicy,
	location *time.Location,
	now func() time.Time,
) AppointmentUsecase {
	if location == nil {
		location = time.UTC
	}
	if now == nil {
		now = time.Now
	}
	return &appointmentUsecase{
		log:             log,
		appointmentRepo: appointmentRepo,
		auditService:    auditService,
		policy:          policy,
		location:        location,
		now:             now,
	}
}

// BookAppointment books a doctor's slot for one calendar day.
//
// The optional pre-check and the insert are two separate store calls, so two
// requests can both pass the check. The slot unique index in the store is
// what guarantees a single booking; its violation maps to the same conflict.
func (u *appointmentUsecase) BookAppointment(ctx context.Context, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error) {
	userEmail := strings.TrimSpace(req.UserEmail)
	doctorName := strings.TrimSpace(req.DoctorName)
	rawDate := strings.TrimSpace(req.AppointmentDate)
	slotTime := strings.TrimSpace(req.AppointmentTime)
	if userEmail == "" || doctorName == "" || rawDate == "" || slotTime == "" {
		return nil, ErrAppointmentFieldsMissing
	}

	date, err := entity.ParseAppointmentDate(rawDate, u.location)
	if err != nil {
		return nil, ErrInvalidAppointmentDate
	}

	if u.policy.CheckConflicts {
		window := entity.DayWindowOf(date, u.location)
		existing, err := u.appointmentRepo.FindActiveInWindow(ctx, doctorName, slotTime, window)
		if err != nil {
			u.log.Warnf("Failed to check slot availability: %+v", err)
			return nil, apperror.Internal(err)
		}
		if existing != nil {
			return nil, ErrSlotUnavailable
		}
	}

	appointment := &entity.Appointment{
		ID:              uuid.New(),
		UserEmail:       userEmail,
		DoctorName:      doctorName,
		AppointmentDate: date,
		SlotDay:         entity.DayKey(date, u.location),
		AppointmentTime: slotTime,
		Status:          u.policy.DefaultStatus,
	}

	if err := u.appointmentRepo.Create(ctx, appointment); err != nil {
		if errors.Is(err, repository.ErrDuplicateSlot) {
			return nil, apperror.Wrap(ErrSlotUnavailable, err)
		}
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, apperror.Internal(err)
	}

	u.log.Infof("Appointment booked: id=%s, doctor=%s, day=%s, time=%s", appointment.ID, doctorName, appointment.SlotDay, slotTime)
	u.auditService.Record(ctx, userEmail, entity.AuditActionAppointmentCreate, entity.JSON{
		"appointment_id": appointment.ID.String(),
		"doctor_name":    doctorName,
		"day":            appointment.SlotDay,
		"time":           slotTime,
	})

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) ListUpcoming(ctx context.Context, userEmail string) ([]dto.AppointmentResponse, error) {
	userEmail = strings.TrimSpace(userEmail)
	if userEmail == "" {
		return nil, ErrUserEmailRequired
	}

	appointments, err := u.appointmentRepo.FindUpcoming(ctx, userEmail, u.startOfToday())
	if err != nil {
		u.log.Warnf("Failed to find upcoming appointments for %s: %+v", userEmail, err)
		return nil, apperror.Internal(err)
	}
	return converter.AppointmentsToResponses(appointments), nil
}

func (u *appointmentUsecase) ListHistory(ctx context.Context, userEmail string) ([]dto.AppointmentResponse, error) {
	userEmail = strings.TrimSpace(userEmail)
	if userEmail == "" {
		return nil, ErrUserEmailRequired
	}

	appointments, err := u.appointmentRepo.FindHistory(ctx, userEmail, u.startOfToday())
	if err != nil {
		u.log.Warnf("Failed to find appointment history for %s: %+v", userEmail, err)
		return nil, apperror.Internal(err)
	}
	return converter.AppointmentsToResponses(appointments), nil
}

func (u *appointmentUsecase) startOfToday() time.Time {
	return entity.StartOfDay(u.now(), u.location)
}
