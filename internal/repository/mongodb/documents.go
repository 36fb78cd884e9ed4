// Package mongodb implements the repository ports on MongoDB collections.
package mongodb

import (
	"time"

	"medical-appointment-api/internal/domain/entity"

	"github.com/google/uuid"
)

const (
	usersCollection        = "users"
	appointmentsCollection = "appointments"
	recordsCollection      = "records"
	auditLogsCollection    = "audit_logs"
	countersCollection     = "counters"
)

type userDocument struct {
	ID        string    `bson:"_id"`
	Name      string    `bson:"name"`
	Email     string    `bson:"email"`
	Password  string    `bson:"password"`
	Phone     *string   `bson:"phone,omitempty"`
	CreatedAt time.Time `bson:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

func newUserDocument(u *entity.User) userDocument {
	return userDocument{
		ID:        u.ID.String(),
		Name:      u.Name,
		Email:     u.Email,
		Password:  u.Password,
		Phone:     u.Phone,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func (d userDocument) toEntity() *entity.User {
	return &entity.User{
		ID:        parseID(d.ID),
		Name:      d.Name,
		Email:     d.Email,
		Password:  d.Password,
		Phone:     d.Phone,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

// appointmentDocument carries Active so the partial unique index can use a
// simple equality filter.
type appointmentDocument struct {
	ID              string    `bson:"_id"`
	UserEmail       string    `bson:"userEmail"`
	DoctorName      string    `bson:"doctorName"`
	AppointmentDate time.Time `bson:"appointmentDate"`
	SlotDay         string    `bson:"slotDay"`
	AppointmentTime string    `bson:"appointmentTime"`
	Status          string    `bson:"status"`
	Active          bool      `bson:"active"`
	CreatedAt       time.Time `bson:"createdAt"`
	UpdatedAt       time.Time `bson:"updatedAt"`
}

func newAppointmentDocument(a *entity.Appointment) appointmentDocument {
	return appointmentDocument{
		ID:              a.ID.String(),
		UserEmail:       a.UserEmail,
		DoctorName:      a.DoctorName,
		AppointmentDate: a.AppointmentDate,
		SlotDay:         a.SlotDay,
		AppointmentTime: a.AppointmentTime,
		Status:          string(a.Status),
		Active:          a.IsActive(),
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}

func (d appointmentDocument) toEntity() entity.Appointment {
	return entity.Appointment{
		ID:              parseID(d.ID),
		UserEmail:       d.UserEmail,
		DoctorName:      d.DoctorName,
		AppointmentDate: d.AppointmentDate,
		SlotDay:         d.SlotDay,
		AppointmentTime: d.AppointmentTime,
		Status:          entity.AppointmentStatus(d.Status),
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}
}

type recordDocument struct {
	ID         string    `bson:"_id"`
	UserEmail  string    `bson:"userEmail"`
	FileName   string    `bson:"fileName"`
	FileType   string    `bson:"fileType"`
	UploadedAt time.Time `bson:"uploadedAt"`
	CreatedAt  time.Time `bson:"createdAt"`
	UpdatedAt  time.Time `bson:"updatedAt"`
}

func newRecordDocument(r *entity.Record) recordDocument {
	return recordDocument{
		ID:         r.ID.String(),
		UserEmail:  r.UserEmail,
		FileName:   r.FileName,
		FileType:   r.FileType,
		UploadedAt: r.UploadedAt,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

func (d recordDocument) toEntity() entity.Record {
	return entity.Record{
		ID:         parseID(d.ID),
		UserEmail:  d.UserEmail,
		FileName:   d.FileName,
		FileType:   d.FileType,
		UploadedAt: d.UploadedAt,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
}

type auditLogDocument struct {
	ID        int64                  `bson:"_id"`
	UserEmail *string                `bson:"userEmail,omitempty"`
	Action    string                 `bson:"action"`
	Metadata  map[string]interface{} `bson:"metadata,omitempty"`
	CreatedAt time.Time              `bson:"createdAt"`
}

func (d auditLogDocument) toEntity() entity.AuditLog {
	return entity.AuditLog{
		ID:        d.ID,
		UserEmail: d.UserEmail,
		Action:    d.Action,
		Metadata:  entity.JSON(d.Metadata),
		CreatedAt: d.CreatedAt,
	}
}

func parseID(raw string) uuid.UUID {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil
	}
	return id
}
