package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllowedRole(t *testing.T) {
	assert.True(t, AllowedRole(ManageContent, Admin))
	assert.False(t, AllowedRole(ManageContent, Member))
	assert.False(t, AllowedRole(ManageContent, Public))
	assert.True(t, AllowedRole(ViewOwnRecords, Public))
	assert.False(t, AllowedRole("unknown_permission", Admin))
}

func TestEveryPermissionAllowsAdmin(t *testing.T) {
	for perm, roles := range PermissionRoles {
		assert.NotEmpty(t, roles, perm)
		assert.True(t, AllowedRole(perm, Admin), perm)
		for _, r := range roles {
			assert.True(t, IsValidRole(r), "%s: %s", perm, r)
		}
	}
}
