package handler

import (
	"net/http"

	"medical-appointment-api/internal/delivery/dto"
	"medical-appointment-api/internal/delivery/http/middleware"
	"medical-appointment-api/internal/usecase"
	"medical-appointment-api/pkg/response"
	"medical-appointment-api/pkg/validator"
)

type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	validator   *validator.CustomValidator
}

func NewAuthHandler(authUsecase usecase.AuthUsecase, validator *validator.CustomValidator) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		validator:   validator,
	}
}

// Signup handles user registration
// @Summary Register a new user
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.SignupRequest true "Signup Request"
// @Success 201 {object} response.Fields
// @Failure 400 {object} response.Fields
// @Failure 409 {object} response.Fields
// @Router /api/signup [post]
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req dto.SignupRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	user, err := h.authUsecase.Signup(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "User signup successfully", response.Fields{"user": user})
}

// Login handles user login
// @Summary Login user
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login Request"
// @Success 200 {object} response.Fields
// @Failure 400 {object} response.Fields
// @Failure 401 {object} response.Fields
// @Router /api/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.authUsecase.Login(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	fields := response.Fields{"user": result.User}
	if result.Token != nil {
		fields["token"] = result.Token.AccessToken
		fields["expiresIn"] = result.Token.ExpiresIn
		fields["expiresAt"] = result.Token.ExpiresAt
	}
	response.Success(w, http.StatusOK, "Login successfully", fields)
}

// Logout revokes the caller's token when one was presented. It succeeds
// without a token too.
// @Summary Logout user
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Fields
// @Router /api/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	claims, _ := middleware.GetClaimsFromContext(r.Context())
	if err := h.authUsecase.Logout(r.Context(), claims); err != nil {
		writeError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Logout successful", nil)
}
