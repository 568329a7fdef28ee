package dto

// RegisterRequest registration input. Role is optional and defaults to
// editor; the password is hashed in the use case and never stored as-is.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"omitempty,oneof=editor admin"`
}

// UserResponse public projection of a user (no password material).
type UserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// RegisterResponse registration output.
type RegisterResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
}

// LoginRequest login input.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse login output: the signed bearer token.
type LoginResponse struct {
	Token string `json:"token"`
}
