package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"medical-appointment-api/internal/domain/entity"
	"medical-appointment-api/internal/domain/repository"

	"github.com/google/uuid"
)

// Ensure AppointmentRepository implements the interface.
var _ repository.AppointmentRepository = (*AppointmentRepository)(nil)

// AppointmentRepository keeps appointments in insertion order and a slot
// index that plays the role of the partial unique index in postgres.
type AppointmentRepository struct {
	mu           sync.RWMutex
	appointments []entity.Appointment
	slots        map[entity.Slot]uuid.UUID
}

func NewAppointmentRepository() *AppointmentRepository {
	return &AppointmentRepository{
		slots: make(map[entity.Slot]uuid.UUID),
	}
}

func (r *AppointmentRepository) Create(_ context.Context, appointment *entity.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	slot := appointment.Slot()
	if appointment.IsActive() {
		if _, taken := r.slots[slot]; taken {
			return repository.ErrDuplicateSlot
		}
	}

	if appointment.ID == uuid.Nil {
		appointment.ID = uuid.New()
	}
	now := time.Now()
	appointment.CreatedAt = now
	appointment.UpdatedAt = now

	r.appointments = append(r.appointments, *appointment)
	if appointment.IsActive() {
		r.slots[slot] = appointment.ID
	}
	return nil
}

func (r *AppointmentRepository) FindActiveInWindow(_ context.Context, doctorName, appointmentTime string, window entity.DayWindow) (*entity.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, a := range r.appointments {
		if a.DoctorName == doctorName && a.AppointmentTime == appointmentTime &&
			a.IsActive() && window.Contains(a.AppointmentDate) {
			out := a
			return &out, nil
		}
	}
	return nil, nil
}

func (r *AppointmentRepository) FindUpcoming(_ context.Context, userEmail string, from time.Time) ([]entity.Appointment, error) {
	out := r.filter(func(a *entity.Appointment) bool {
		return a.UserEmail == userEmail && !a.AppointmentDate.Before(from)
	})
	sort.SliceStable(out, func(i, j int) bool {
		return appointmentLess(&out[i], &out[j])
	})
	return out, nil
}

func (r *AppointmentRepository) FindHistory(_ context.Context, userEmail string, before time.Time) ([]entity.Appointment, error) {
	out := r.filter(func(a *entity.Appointment) bool {
		return a.UserEmail == userEmail && a.AppointmentDate.Before(before)
	})
	sort.SliceStable(out, func(i, j int) bool {
		return appointmentLess(&out[j], &out[i])
	})
	return out, nil
}

// CountSlot returns how many stored appointments hold slot, active or not.
func (r *AppointmentRepository) CountSlot(slot entity.Slot) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := 0
	for i := range r.appointments {
		if r.appointments[i].Slot() == slot {
			n++
		}
	}
	return n
}

func (r *AppointmentRepository) filter(keep func(*entity.Appointment) bool) []entity.Appointment {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []entity.Appointment{}
	for i := range r.appointments {
		if keep(&r.appointments[i]) {
			out = append(out, r.appointments[i])
		}
	}
	return out
}

// appointmentLess orders by date, then by the time label as a plain string.
func appointmentLess(a, b *entity.Appointment) bool {
	if !a.AppointmentDate.Equal(b.AppointmentDate) {
		return a.AppointmentDate.Before(b.AppointmentDate)
	}
	return a.AppointmentTime < b.AppointmentTime
}
