package constants

// User roles, most to least privileged. A higher role is a strict superset
// of a lower role's visibility within the same scope chain.
const (
	RoleSystemAdmin          = "SYSTEM_ADMIN"
	RoleDiocesanAdmin        = "DIOCESAN_ADMIN"
	RoleParishAdmin          = "PARISH_ADMIN"
	RoleCommunityCoordinator = "COMMUNITY_COORDINATOR"
	RolePastoralCoordinator  = "PASTORAL_COORDINATOR"
	RoleVolunteer            = "VOLUNTEER"
	RoleFaithful             = "FAITHFUL"
)

// roleRanks drives the "may not create/update an equal-or-higher role"
// guard in the users module.
var roleRanks = map[string]int{
	RoleSystemAdmin:          7,
	RoleDiocesanAdmin:        6,
	RoleParishAdmin:          5,
	RoleCommunityCoordinator: 4,
	RolePastoralCoordinator:  3,
	RoleVolunteer:            2,
	RoleFaithful:             1,
}

// RoleRank returns the privilege rank of a role, 0 for unknown roles.
func RoleRank(role string) int {
	return roleRanks[role]
}

func IsValidRole(role string) bool {
	_, ok := roleRanks[role]
	return ok
}

// ==========================
// Grouped role slices
// ==========================
var (
	AllRoles = []string{
		RoleSystemAdmin,
		RoleDiocesanAdmin,
		RoleParishAdmin,
		RoleCommunityCoordinator,
		RolePastoralCoordinator,
		RoleVolunteer,
		RoleFaithful,
	}

	AdminRoles = []string{
		RoleSystemAdmin,
		RoleDiocesanAdmin,
		RoleParishAdmin,
	}

	CoordinatorAndAbove = []string{
		RoleSystemAdmin,
		RoleDiocesanAdmin,
		RoleParishAdmin,
		RoleCommunityCoordinator,
	}

	PastoralCoordinatorAndAbove = []string{
		RoleSystemAdmin,
		RoleDiocesanAdmin,
		RoleParishAdmin,
		RoleCommunityCoordinator,
		RolePastoralCoordinator,
	}

	SystemAdminOnly = []string{
		RoleSystemAdmin,
	}
)

// Pastoral membership roles.
const (
	PastoralRoleCoordinator     = "COORDINATOR"
	PastoralRoleViceCoordinator = "VICE_COORDINATOR"
	PastoralRoleMember          = "MEMBER"
)
