package handler

// successResponse is the standard envelope for mutations.
type successResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

type registerRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Phone    string `json:"phone"    validate:"omitempty,e164"`
	Name     string `json:"name"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type updateNameRequest struct {
	Name string `json:"name" validate:"required"`
}

type updateEmailRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type updatePhoneRequest struct {
	Phone string `json:"phone" validate:"required,e164"`
}

type updatePasswordRequest struct {
	CurPassword string `json:"curPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=8,max=72"`
}

// userResponse wraps the public projection returned by GET /user.
type userResponse struct {
	User userProfile `json:"user"`
}

type userProfile struct {
	Name  string `json:"name"`
	Date  string `json:"date"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}
