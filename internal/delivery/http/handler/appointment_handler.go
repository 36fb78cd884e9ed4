package handler

import (
	"net/http"

	"medical-appointment-api/internal/delivery/dto"
	"medical-appointment-api/internal/usecase"
	"medical-appointment-api/pkg/response"
	"medical-appointment-api/pkg/validator"

	"github.com/gorilla/mux"
)

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	validator          *validator.CustomValidator
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase, validator *validator.CustomValidator) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		validator:          validator,
	}
}

// BookAppointment handles slot booking
// @Summary Book an appointment
// @Tags Appointments
// @Accept json
// @Produce json
// @Param request body dto.BookAppointmentRequest true "Booking Request"
// @Success 201 {object} response.Fields
// @Failure 400 {object} response.Fields
// @Failure 409 {object} response.Fields
// @Router /api/appointments [post]
func (h *AppointmentHandler) BookAppointment(w http.ResponseWriter, r *http.Request) {
	var req dto.BookAppointmentRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.BookAppointment(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "Appointment booked successfully", response.Fields{"appointment": appointment})
}

// @Router /api/appointments/upcoming/{userEmail} [get]
func (h *AppointmentHandler) ListUpcoming(w http.ResponseWriter, r *http.Request) {
	appointments, err := h.appointmentUsecase.ListUpcoming(r.Context(), mux.Vars(r)["userEmail"])
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "", response.Fields{"appointments": appointments})
}

// @Router /api/appointments/history/{userEmail} [get]
func (h *AppointmentHandler) ListHistory(w http.ResponseWriter, r *http.Request) {
	appointments, err := h.appointmentUsecase.ListHistory(r.Context(), mux.Vars(r)["userEmail"])
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "", response.Fields{"appointments": appointments})
}
