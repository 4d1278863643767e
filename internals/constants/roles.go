package constants

// Application roles. ADMIN maintains the lookup catalog and geography;
// USER is a reporting unit (district/PS level) submitting statistics.
const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

const (
	ErrOnlyAdminsCanAccess = "Only admins can access this feature."
)

var (
	AllRoles  = []string{RoleUser, RoleAdmin}
	AdminOnly = []string{RoleAdmin}
)
