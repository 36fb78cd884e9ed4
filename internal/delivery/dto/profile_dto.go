package dto

// UpdateProfileRequest identifies the user by Email. Only Name and Phone are
// applied; a nil field keeps its stored value.
type UpdateProfileRequest struct {
	Email string  `json:"email" validate:"notblank"`
	Name  *string `json:"name" validate:"omitempty,max=255"`
	Phone *string `json:"phone" validate:"omitempty,max=32"`
}
