package entity

type UserRole string

const (
	RoleAdmin      UserRole = "admin"
	RoleUser       UserRole = "user"
	RoleStoreOwner UserRole = "store_owner"
)

// Role is fixed at creation and never inferred dynamically.
type User struct {
	Base
	Name         string   `db:"name"`
	Email        string   `db:"email"`
	PasswordHash string   `db:"password"`
	Address      string   `db:"address"`
	Role         UserRole `db:"role"`
}
