package profile

import (
	"github.com/staffdesk/staffdesk/internal/types"
)

const Table = "profiles"

// Profile is the application-side record of an identity. Its ID is the
// identity provider's user ID.
type Profile struct {
	types.BaseModel

	FullName   string         `db:"full_name" json:"full_name"`
	Email      string         `db:"email" json:"email"`
	Role       types.UserRole `db:"role" json:"role"`
	Department string         `db:"department" json:"department"`
	AvatarURL  string         `db:"avatar_url" json:"avatar_url"`
}
