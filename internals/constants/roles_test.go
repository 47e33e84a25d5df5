package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleRankOrdering(t *testing.T) {
	ordered := []string{
		RoleFaithful,
		RoleVolunteer,
		RolePastoralCoordinator,
		RoleCommunityCoordinator,
		RoleParishAdmin,
		RoleDiocesanAdmin,
		RoleSystemAdmin,
	}
	for i := 1; i < len(ordered); i++ {
		assert.Greater(t, RoleRank(ordered[i]), RoleRank(ordered[i-1]),
			"%s should outrank %s", ordered[i], ordered[i-1])
	}
}

func TestRoleRankUnknownIsZero(t *testing.T) {
	assert.Equal(t, 0, RoleRank("POPE"))
	assert.Equal(t, 0, RoleRank(""))
}

func TestIsValidRole(t *testing.T) {
	for _, role := range AllRoles {
		assert.True(t, IsValidRole(role), role)
	}
	assert.False(t, IsValidRole("ADMIN"))
}

func TestRoleGroupsAreRankConsistent(t *testing.T) {
	// Every grouped slice must only contain roles at or above its floor.
	assert.ElementsMatch(t, AdminRoles, rolesAtOrAbove(RoleParishAdmin))
	assert.ElementsMatch(t, CoordinatorAndAbove, rolesAtOrAbove(RoleCommunityCoordinator))
	assert.ElementsMatch(t, PastoralCoordinatorAndAbove, rolesAtOrAbove(RolePastoralCoordinator))
	assert.ElementsMatch(t, SystemAdminOnly, rolesAtOrAbove(RoleSystemAdmin))
}

func rolesAtOrAbove(floor string) []string {
	var out []string
	for _, role := range AllRoles {
		if RoleRank(role) >= RoleRank(floor) {
			out = append(out, role)
		}
	}
	return out
}
