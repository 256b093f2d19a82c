package entity

// Role identifies a membership set in the role registry. Membership is
// checked before every privileged mutation.
type Role uint8

const (
	RoleAdmin Role = iota
	RoleClinic
	RolePatient
)

func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return "admin"
	case RoleClinic:
		return "clinic"
	case RolePatient:
		return "patient"
	default:
		return "unknown"
	}
}

// ParseRole maps a route segment to a Role.
func ParseRole(s string) (Role, bool) {
	switch s {
	case "admin":
		return RoleAdmin, true
	case "clinic":
		return RoleClinic, true
	case "patient":
		return RolePatient, true
	default:
		return 0, false
	}
}
