package types

const (
	HeaderAuthorization = "Authorization"
	HeaderRequestID     = "X-Request-ID"
)

// UserRole is the role stored on a profile
type UserRole string

const (
	UserRoleAdmin    UserRole = "admin"
	UserRoleHR       UserRole = "hr"
	UserRoleManager  UserRole = "manager"
	UserRoleEmployee UserRole = "employee"
)
