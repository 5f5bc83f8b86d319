package service

import (
	"testing"

	"workshop_hub_backend/internal/access"
	"workshop_hub_backend/internal/model"
	"workshop_hub_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSubmissionService(r testRepos) *SubmissionService {
	return NewSubmissionService(r.Submission, r.Assignment, r.Instructor, r.Enrollment, r.User)
}

func asAdmin() access.Identity {
	return access.Identity{Roles: model.RoleList{model.RoleAdmin}}
}

func TestSubmissionCreate(t *testing.T) {
	db := setupTestDB(t)
	repos := newTestRepos(db)
	svc := newSubmissionService(repos)

	participant := createUser(t, db, "p@example.com", model.RoleParticipant)
	workshop := createWorkshop(t, db, "Go Fundamentals", nil)
	assignment := createAssignment(t, db, workshop.ID, "hw1", 100, 60, true)

	submission, err := svc.Create(asAdmin(), participant.ID, assignment.ID, 80, 1)
	require.NoError(t, err)
	assert.Equal(t, 80, submission.Score)
	assert.Equal(t, 1, submission.AttemptNumber)
}

func TestSubmissionCreateScoreAboveMaximum(t *testing.T) {
	db := setupTestDB(t)
	repos := newTestRepos(db)
	svc := newSubmissionService(repos)

	participant := createUser(t, db, "p@example.com", model.RoleParticipant)
	workshop := createWorkshop(t, db, "Go Fundamentals", nil)
	assignment := createAssignment(t, db, workshop.ID, "hw1", 50, 30, true)

	_, err := svc.Create(asAdmin(), participant.ID, assignment.ID, 51, 1)
	require.Error(t, err)
	assert.Equal(t, util.KindInvalidState, util.KindOf(err))

	// 等于满分合法
	_, err = svc.Create(asAdmin(), participant.ID, assignment.ID, 50, 1)
	require.NoError(t, err)
}

func TestSubmissionCreateDuplicateAttemptConflicts(t *testing.T) {
	db := setupTestDB(t)
	repos := newTestRepos(db)
	svc := newSubmissionService(repos)

	participant := createUser(t, db, "p@example.com", model.RoleParticipant)
	workshop := createWorkshop(t, db, "Go Fundamentals", nil)
	assignment := createAssignment(t, db, workshop.ID, "hw1", 100, 60, true)

	_, err := svc.Create(asAdmin(), participant.ID, assignment.ID, 40, 1)
	require.NoError(t, err)

	// 同一 (participant, assignment, attempt) 不允许覆盖
	_, err = svc.Create(asAdmin(), participant.ID, assignment.ID, 90, 1)
	require.Error(t, err)
	assert.Equal(t, util.KindConflict, util.KindOf(err))

	// 新的尝试号可以继续提交
	_, err = svc.Create(asAdmin(), participant.ID, assignment.ID, 90, 2)
	require.NoError(t, err)
}

func TestSubmissionCreateUnknownTargets(t *testing.T) {
	db := setupTestDB(t)
	repos := newTestRepos(db)
	svc := newSubmissionService(repos)

	participant := createUser(t, db, "p@example.com", model.RoleParticipant)
	workshop := createWorkshop(t, db, "Go Fundamentals", nil)
	assignment := createAssignment(t, db, workshop.ID, "hw1", 100, 60, true)

	_, err := svc.Create(asAdmin(), 999, assignment.ID, 10, 1)
	assert.Equal(t, util.KindNotFound, util.KindOf(err))

	_, err = svc.Create(asAdmin(), participant.ID, 999, 10, 1)
	assert.Equal(t, util.KindNotFound, util.KindOf(err))
}

func TestSubmissionCreateRequiresWorkshopAuthority(t *testing.T) {
	db := setupTestDB(t)
	repos := newTestRepos(db)
	svc := newSubmissionService(repos)

	participant := createUser(t, db, "p@example.com", model.RoleParticipant)
	teaching := createUser(t, db, "teach@example.com", model.RoleInstructor)
	outsider := createUser(t, db, "outsider@example.com", model.RoleInstructor)

	workshop := createWorkshop(t, db, "Go Fundamentals", nil)
	require.NoError(t, repos.Instructor.Add(&model.WorkshopInstructor{WorkshopID: workshop.ID, InstructorID: teaching.ID}))
	assignment := createAssignment(t, db, workshop.ID, "hw1", 100, 60, true)

	// 未授课的讲师不能代录任意工作坊的成绩
	_, err := svc.Create(access.Identity{UserID: outsider.ID, Roles: outsider.Roles}, participant.ID, assignment.ID, 80, 1)
	assert.Equal(t, util.KindAccessDenied, util.KindOf(err))

	// 参与者本人也不能自录成绩
	_, err = svc.Create(access.Identity{UserID: participant.ID, Roles: participant.Roles}, participant.ID, assignment.ID, 80, 1)
	assert.Equal(t, util.KindAccessDenied, util.KindOf(err))

	_, err = svc.Create(access.Identity{UserID: teaching.ID, Roles: teaching.Roles}, participant.ID, assignment.ID, 80, 1)
	require.NoError(t, err)
}

func TestSubmissionGetByIDAccess(t *testing.T) {
	db := setupTestDB(t)
	repos := newTestRepos(db)
	svc := newSubmissionService(repos)

	owner := createUser(t, db, "owner@example.com", model.RoleParticipant)
	other := createUser(t, db, "other@example.com", model.RoleParticipant)
	instructor := createUser(t, db, "teach@example.com", model.RoleInstructor)
	admin := createUser(t, db, "admin@example.com", model.RoleAdmin)

	workshop := createWorkshop(t, db, "Go Fundamentals", nil)
	require.NoError(t, repos.Instructor.Add(&model.WorkshopInstructor{WorkshopID: workshop.ID, InstructorID: instructor.ID}))
	assignment := createAssignment(t, db, workshop.ID, "hw1", 100, 60, true)
	submission := submit(t, db, owner.ID, assignment.ID, 1, 70)

	cases := []struct {
		name    string
		id      access.Identity
		allowed bool
	}{
		{"owner", access.Identity{UserID: owner.ID, Roles: owner.Roles}, true},
		{"teaching instructor", access.Identity{UserID: instructor.ID, Roles: instructor.Roles}, true},
		{"admin", access.Identity{UserID: admin.ID, Roles: admin.Roles}, true},
		{"unrelated participant", access.Identity{UserID: other.ID, Roles: other.Roles}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.GetByID(tc.id, submission.ID)
			if tc.allowed {
				assert.NoError(t, err)
			} else {
				assert.Equal(t, util.KindAccessDenied, util.KindOf(err))
			}
		})
	}
}

func TestGetParticipantSubmissions(t *testing.T) {
	db := setupTestDB(t)
	repos := newTestRepos(db)
	svc := newSubmissionService(repos)

	owner := createUser(t, db, "owner@example.com", model.RoleParticipant)
	other := createUser(t, db, "other@example.com", model.RoleParticipant)
	admin := createUser(t, db, "admin@example.com", model.RoleAdmin)

	workshop := createWorkshop(t, db, "Go Fundamentals", nil)
	assignment := createAssignment(t, db, workshop.ID, "hw1", 100, 60, true)
	submit(t, db, owner.ID, assignment.ID, 1, 70)
	submit(t, db, owner.ID, assignment.ID, 2, 90)

	list, err := svc.GetParticipantSubmissions(access.Identity{UserID: owner.ID, Roles: owner.Roles}, owner.ID)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	list, err = svc.GetParticipantSubmissions(access.Identity{UserID: admin.ID, Roles: admin.Roles}, owner.ID)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	_, err = svc.GetParticipantSubmissions(access.Identity{UserID: other.ID, Roles: other.Roles}, owner.ID)
	assert.Equal(t, util.KindAccessDenied, util.KindOf(err))
}
