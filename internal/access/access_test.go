package access

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"workshop_hub_backend/internal/model"
)

func staticLookup(hit bool) func(uint, uint) (bool, error) {
	return func(uint, uint) (bool, error) { return hit, nil }
}

func failingLookup(uint, uint) (bool, error) {
	return false, errors.New("database unavailable")
}

func TestAdminAlwaysAllowed(t *testing.T) {
	id := Identity{UserID: 1, Roles: model.RoleList{model.RoleAdmin}}

	// 即使讲师/报名查询都为否，管理员也必须放行
	ok, err := CanAccessWorkshopScopedResource(id, 42, staticLookup(false), staticLookup(false))
	require.NoError(t, err)
	assert.True(t, ok)

	// 管理员短路，不应触碰任何 lookup
	ok, err = CanAccessWorkshopScopedResource(id, 42, failingLookup, failingLookup)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestAdminWithOtherRoles(t *testing.T) {
	id := Identity{UserID: 1, Roles: model.RoleList{model.RoleInstructor, model.RoleAdmin}}

	ok, err := CanAccessWorkshopScopedResource(id, 7, staticLookup(false), staticLookup(false))
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestInstructorTeachingWithoutEnrollment(t *testing.T) {
	id := Identity{UserID: 5, Roles: model.RoleList{model.RoleInstructor}}

	ok, err := CanAccessWorkshopScopedResource(id, 7, staticLookup(true), staticLookup(false))
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestInstructorEnrolledButNotTeaching(t *testing.T) {
	id := Identity{UserID: 5, Roles: model.RoleList{model.RoleInstructor}}

	ok, err := CanAccessWorkshopScopedResource(id, 7, staticLookup(false), staticLookup(true))
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestInstructorNeitherTeachingNorEnrolled(t *testing.T) {
	id := Identity{UserID: 5, Roles: model.RoleList{model.RoleInstructor}}

	ok, err := CanAccessWorkshopScopedResource(id, 7, staticLookup(false), staticLookup(false))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestParticipantIsolation(t *testing.T) {
	id := Identity{UserID: 9, Roles: model.RoleList{model.RoleParticipant}}

	ok, err := CanAccessWorkshopScopedResource(id, 7, staticLookup(true), staticLookup(false))
	require.NoError(t, err)
	assert.False(t, ok, "未报名的参与者不得访问工作坊资源")

	ok, err = CanAccessWorkshopScopedResource(id, 7, staticLookup(false), staticLookup(true))
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestEmptyRoleSetDenied(t *testing.T) {
	id := Identity{UserID: 9, Roles: nil}

	ok, err := CanAccessWorkshopScopedResource(id, 7, staticLookup(true), staticLookup(true))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLookupErrorPropagates(t *testing.T) {
	id := Identity{UserID: 5, Roles: model.RoleList{model.RoleInstructor}}

	_, err := CanAccessWorkshopScopedResource(id, 7, failingLookup, staticLookup(true))
	assert.Error(t, err)
}

func TestModifyRequiresTeaching(t *testing.T) {
	instructor := Identity{UserID: 5, Roles: model.RoleList{model.RoleInstructor}}

	ok, err := CanModifyWorkshopScopedResource(instructor, 7, staticLookup(true))
	require.NoError(t, err)
	assert.True(t, ok)

	// 仅报名不授予写权限
	ok, err = CanModifyWorkshopScopedResource(instructor, 7, staticLookup(false))
	require.NoError(t, err)
	assert.False(t, ok)

	participant := Identity{UserID: 9, Roles: model.RoleList{model.RoleParticipant}}
	ok, err = CanModifyWorkshopScopedResource(participant, 7, staticLookup(true))
	require.NoError(t, err)
	assert.False(t, ok)

	admin := Identity{UserID: 1, Roles: model.RoleList{model.RoleAdmin}}
	ok, err = CanModifyWorkshopScopedResource(admin, 7, staticLookup(false))
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestParticipantScopedSelfAccess(t *testing.T) {
	self := Identity{UserID: 9, Roles: model.RoleList{model.RoleParticipant}}
	assert.True(t, CanAccessParticipantScoped(self, 9))
	assert.False(t, CanAccessParticipantScoped(self, 10))

	// 无角色用户访问自己的数据同样放行
	norole := Identity{UserID: 3, Roles: nil}
	assert.True(t, CanAccessParticipantScoped(norole, 3))

	admin := Identity{UserID: 1, Roles: model.RoleList{model.RoleAdmin}}
	assert.True(t, CanAccessParticipantScoped(admin, 9))
}
