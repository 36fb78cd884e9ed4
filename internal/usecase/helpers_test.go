package usecase

import (
	"context"
	"io"
	"time"

	"medical-appointment-api/internal/domain/entity"
	"medical-appointment-api/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

type auditSpy struct {
	actions []string
}

func (s *auditSpy) Record(_ context.Context, _ string, action string, _ entity.JSON) {
	s.actions = append(s.actions, action)
}

// stubAppointmentRepository lets a test script individual store calls.
type stubAppointmentRepository struct {
	repository.AppointmentRepository
	createFn       func(ctx context.Context, a *entity.Appointment) error
	findInWindowFn func(ctx context.Context, doctor, slot string, w entity.DayWindow) (*entity.Appointment, error)
	findUpcomingFn func(ctx context.Context, email string, from time.Time) ([]entity.Appointment, error)
}

func (s *stubAppointmentRepository) Create(ctx context.Context, a *entity.Appointment) error {
	return s.createFn(ctx, a)
}

func (s *stubAppointmentRepository) FindActiveInWindow(ctx context.Context, doctor, slot string, w entity.DayWindow) (*entity.Appointment, error) {
	return s.findInWindowFn(ctx, doctor, slot, w)
}

func (s *stubAppointmentRepository) FindUpcoming(ctx context.Context, email string, from time.Time) ([]entity.Appointment, error) {
	return s.findUpcomingFn(ctx, email, from)
}

type stubUserRepository struct {
	repository.UserRepository
	findByEmailFn func(ctx context.Context, email string) (*entity.User, error)
}

func (s *stubUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return s.findByEmailFn(ctx, email)
}
