package request

// SignupRequest field rules mirror the server-side validation policy; the
// same limits are enforced no matter what the client checked.
type SignupRequest struct {
	Name     string `json:"name" validate:"required,min=20,max=60"`
	Address  string `json:"address" validate:"required,max=400"`
	Password string `json:"password" validate:"required,userpassword"`
	Email    string `json:"email" validate:"required,email"`
	Role     string `json:"role" validate:"required,oneof=user store_owner"`
}

// LoginRequest carries no validate tags: both fields missing map to one
// combined message at the handler.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,userpassword"`
}
