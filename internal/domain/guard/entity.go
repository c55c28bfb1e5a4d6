package guard

import "time"

type Role string

const (
	RoleSecurity   Role = "security"   // Guard whose attendance is tracked
	RoleSupervisor Role = "supervisor" // Full visibility into guards, incidents, reports
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleSecurity || r == RoleSupervisor
}

type Guard struct {
	ID              string
	Email           string
	FullName        string
	Phone           string
	Role            Role
	PasswordHash    *string
	AvatarURL       *string
	ShiftStartTime  *string // HH:MM:SS, guard's local wall clock
	ShiftEndTime    *string // HH:MM:SS
	LocationName    *string
	LocationAddress *string
	CreatedBy       *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsSupervisor checks whether the guard has supervisor visibility.
func (g *Guard) IsSupervisor() bool {
	return g.Role == RoleSupervisor
}
