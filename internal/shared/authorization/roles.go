package authorization

type AdminRole string

const (
	RoleAdmin      AdminRole = "admin"
	RoleSuperAdmin AdminRole = "super_admin"
)

func (r AdminRole) String() string {
	return string(r)
}

func (r AdminRole) IsValid() bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}

func ParseAdminRole(s string) AdminRole {
	role := AdminRole(s)
	if role.IsValid() {
		return role
	}
	return RoleAdmin
}
