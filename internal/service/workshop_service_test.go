package service

import (
	"testing"

	"workshop_hub_backend/internal/access"
	"workshop_hub_backend/internal/model"
	"workshop_hub_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWorkshopService(r testRepos) *WorkshopService {
	return NewWorkshopService(r.Workshop, r.Instructor, r.Enrollment, r.User)
}

func TestWorkshopGetByIDAccess(t *testing.T) {
	db := setupTestDB(t)
	repos := newTestRepos(db)
	svc := newWorkshopService(repos)

	admin := createUser(t, db, "admin@example.com", model.RoleAdmin)
	teaching := createUser(t, db, "teach@example.com", model.RoleInstructor)
	enrolledInstructor := createUser(t, db, "learn@example.com", model.RoleInstructor)
	enrolledParticipant := createUser(t, db, "p@example.com", model.RoleParticipant)
	outsider := createUser(t, db, "out@example.com", model.RoleParticipant)

	workshop := createWorkshop(t, db, "Go Fundamentals", nil)
	require.NoError(t, repos.Instructor.Add(&model.WorkshopInstructor{WorkshopID: workshop.ID, InstructorID: teaching.ID}))
	enroll(t, db, enrolledInstructor.ID, workshop.ID)
	enroll(t, db, enrolledParticipant.ID, workshop.ID)

	cases := []struct {
		name    string
		user    *model.User
		allowed bool
	}{
		{"admin without any link", admin, true},
		{"teaching instructor", teaching, true},
		{"instructor enrolled as learner", enrolledInstructor, true},
		{"enrolled participant", enrolledParticipant, true},
		{"unrelated participant", outsider, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			id := access.Identity{UserID: tc.user.ID, Roles: tc.user.Roles}
			_, err := svc.GetByID(id, workshop.ID)
			if tc.allowed {
				assert.NoError(t, err)
			} else {
				assert.Equal(t, util.KindAccessDenied, util.KindOf(err))
			}
		})
	}
}

func TestWorkshopListRoleFiltered(t *testing.T) {
	db := setupTestDB(t)
	repos := newTestRepos(db)
	svc := newWorkshopService(repos)

	admin := createUser(t, db, "admin@example.com", model.RoleAdmin)
	instructor := createUser(t, db, "teach@example.com", model.RoleInstructor)
	participant := createUser(t, db, "p@example.com", model.RoleParticipant)

	taught := createWorkshop(t, db, "Taught", nil)
	joined := createWorkshop(t, db, "Joined", nil)
	createWorkshop(t, db, "Unrelated", nil)

	require.NoError(t, repos.Instructor.Add(&model.WorkshopInstructor{WorkshopID: taught.ID, InstructorID: instructor.ID}))
	enroll(t, db, participant.ID, joined.ID)

	list, total, err := svc.List(access.Identity{UserID: admin.ID, Roles: admin.Roles}, 1, 20, "")
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	assert.Len(t, list, 3)

	list, total, err = svc.List(access.Identity{UserID: instructor.ID, Roles: instructor.Roles}, 1, 20, "")
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, list, 1)
	assert.Equal(t, taught.ID, list[0].ID)

	list, total, err = svc.List(access.Identity{UserID: participant.ID, Roles: participant.Roles}, 1, 20, "")
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, list, 1)
	assert.Equal(t, joined.ID, list[0].ID)
}

func TestWorkshopAddInstructor(t *testing.T) {
	db := setupTestDB(t)
	repos := newTestRepos(db)
	svc := newWorkshopService(repos)

	instructor := createUser(t, db, "teach@example.com", model.RoleInstructor)
	participant := createUser(t, db, "p@example.com", model.RoleParticipant)
	workshop := createWorkshop(t, db, "Go Fundamentals", nil)

	_, err := svc.AddInstructor(workshop.ID, instructor.ID)
	require.NoError(t, err)

	// 重复指派报冲突
	_, err = svc.AddInstructor(workshop.ID, instructor.ID)
	assert.Equal(t, util.KindConflict, util.KindOf(err))

	// 目标必须持有讲师角色
	_, err = svc.AddInstructor(workshop.ID, participant.ID)
	assert.Equal(t, util.KindInvalidState, util.KindOf(err))
}

func TestWorkshopRemoveInstructorThenReassign(t *testing.T) {
	db := setupTestDB(t)
	repos := newTestRepos(db)
	svc := newWorkshopService(repos)

	instructor := createUser(t, db, "teach@example.com", model.RoleInstructor)
	workshop := createWorkshop(t, db, "Go Fundamentals", nil)

	_, err := svc.AddInstructor(workshop.ID, instructor.ID)
	require.NoError(t, err)
	require.NoError(t, svc.RemoveInstructor(workshop.ID, instructor.ID))

	err = svc.RemoveInstructor(workshop.ID, instructor.ID)
	assert.Equal(t, util.KindNotFound, util.KindOf(err))

	_, err = svc.AddInstructor(workshop.ID, instructor.ID)
	assert.NoError(t, err)
}
