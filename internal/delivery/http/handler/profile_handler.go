package handler

import (
	"net/http"

	"medical-appointment-api/internal/delivery/dto"
	"medical-appointment-api/internal/delivery/http/middleware"
	"medical-appointment-api/internal/usecase"
	"medical-appointment-api/pkg/response"
	"medical-appointment-api/pkg/validator"

	"github.com/gorilla/mux"
)

type ProfileHandler struct {
	profileUsecase usecase.ProfileUsecase
	validator      *validator.CustomValidator
}

func NewProfileHandler(profileUsecase usecase.ProfileUsecase, validator *validator.CustomValidator) *ProfileHandler {
	return &ProfileHandler{
		profileUsecase: profileUsecase,
		validator:      validator,
	}
}

func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	h.writeProfile(w, r, mux.Vars(r)["email"])
}

// GetCurrentProfile reads the email from the authenticated token.
func (h *ProfileHandler) GetCurrentProfile(w http.ResponseWriter, r *http.Request) {
	email, ok := middleware.GetUserEmailFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}
	h.writeProfile(w, r, email)
}

func (h *ProfileHandler) writeProfile(w http.ResponseWriter, r *http.Request, email string) {
	user, err := h.profileUsecase.GetProfile(r.Context(), email)
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "", response.Fields{"user": user})
}

func (h *ProfileHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateProfileRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	user, err := h.profileUsecase.UpdateProfile(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Profile updated successfully", response.Fields{"user": user})
}
