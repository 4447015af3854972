package request

// CreateUserRequest is the admin variant of signup: admins may also be created.
type CreateUserRequest struct {
	Name     string `json:"name" validate:"required,min=20,max=60"`
	Address  string `json:"address" validate:"required,max=400"`
	Password string `json:"password" validate:"required,userpassword"`
	Email    string `json:"email" validate:"required,email"`
	Role     string `json:"role" validate:"required,oneof=admin user store_owner"`
}

type CreateStoreRequest struct {
	Name    string `json:"name" validate:"required,min=20,max=60"`
	Email   string `json:"email" validate:"required,email"`
	Address string `json:"address" validate:"required,max=400"`
	OwnerID string `json:"ownerId" validate:"required,uuid"`
}
