package service

import (
	"testing"
	"time"

	"workshop_hub_backend/internal/access"
	"workshop_hub_backend/internal/config"
	"workshop_hub_backend/internal/model"
	"workshop_hub_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEnrollmentService(r testRepos) *EnrollmentService {
	cfg := &config.Config{}
	cfg.Server.BaseURL = "http://localhost:8080"
	cfg.JWT.Secret = "test-secret-for-enrollment-links"
	return NewEnrollmentService(r.Enrollment, r.Workshop, r.Instructor, r.User, cfg)
}

func TestEnrollmentCreateRequiresTeaching(t *testing.T) {
	db := setupTestDB(t)
	repos := newTestRepos(db)
	svc := newEnrollmentService(repos)

	teaching := createUser(t, db, "teach@example.com", model.RoleInstructor)
	outsider := createUser(t, db, "other@example.com", model.RoleInstructor)
	participant := createUser(t, db, "p@example.com", model.RoleParticipant)
	workshop := createWorkshop(t, db, "Go Fundamentals", nil)
	require.NoError(t, repos.Instructor.Add(&model.WorkshopInstructor{WorkshopID: workshop.ID, InstructorID: teaching.ID}))

	// 非授课讲师即便报名了也无权管理报名
	enroll(t, db, outsider.ID, workshop.ID)
	_, err := svc.Create(access.Identity{UserID: outsider.ID, Roles: outsider.Roles}, participant.ID, workshop.ID, "")
	assert.Equal(t, util.KindAccessDenied, util.KindOf(err))

	enrollment, err := svc.Create(access.Identity{UserID: teaching.ID, Roles: teaching.Roles}, participant.ID, workshop.ID, "")
	require.NoError(t, err)
	assert.Equal(t, model.EnrollmentPending, enrollment.Status)
}

func TestEnrollmentCreateDuplicateConflicts(t *testing.T) {
	db := setupTestDB(t)
	repos := newTestRepos(db)
	svc := newEnrollmentService(repos)

	admin := createUser(t, db, "admin@example.com", model.RoleAdmin)
	participant := createUser(t, db, "p@example.com", model.RoleParticipant)
	workshop := createWorkshop(t, db, "Go Fundamentals", nil)
	id := access.Identity{UserID: admin.ID, Roles: admin.Roles}

	_, err := svc.Create(id, participant.ID, workshop.ID, model.EnrollmentActive)
	require.NoError(t, err)

	_, err = svc.Create(id, participant.ID, workshop.ID, model.EnrollmentActive)
	assert.Equal(t, util.KindConflict, util.KindOf(err))
}

func TestEnrollmentLinkFlow(t *testing.T) {
	db := setupTestDB(t)
	repos := newTestRepos(db)
	svc := newEnrollmentService(repos)

	admin := createUser(t, db, "admin@example.com", model.RoleAdmin)
	participant := createUser(t, db, "p@example.com", model.RoleParticipant)
	workshop := createWorkshop(t, db, "Go Fundamentals", nil)

	link, err := svc.GenerateLink(access.Identity{UserID: admin.ID, Roles: admin.Roles}, workshop.ID, time.Hour)
	require.NoError(t, err)
	assert.Contains(t, link.EnrollmentLink, link.Token)

	enrollment, err := svc.EnrollWithToken(participant.ID, link.Token)
	require.NoError(t, err)
	assert.Equal(t, workshop.ID, enrollment.WorkshopID)
	assert.Equal(t, model.EnrollmentPending, enrollment.Status)

	// 重复使用链接不会产生第二条报名
	_, err = svc.EnrollWithToken(participant.ID, link.Token)
	assert.Equal(t, util.KindConflict, util.KindOf(err))

	_, err = svc.EnrollWithToken(participant.ID, "not-a-token")
	assert.Equal(t, util.KindInvalidState, util.KindOf(err))
}

func TestEnrollmentUpdateStatus(t *testing.T) {
	db := setupTestDB(t)
	repos := newTestRepos(db)
	svc := newEnrollmentService(repos)

	teaching := createUser(t, db, "teach@example.com", model.RoleInstructor)
	participant := createUser(t, db, "p@example.com", model.RoleParticipant)
	workshop := createWorkshop(t, db, "Go Fundamentals", nil)
	require.NoError(t, repos.Instructor.Add(&model.WorkshopInstructor{WorkshopID: workshop.ID, InstructorID: teaching.ID}))
	enrollment := enroll(t, db, participant.ID, workshop.ID)

	updated, err := svc.UpdateStatus(access.Identity{UserID: teaching.ID, Roles: teaching.Roles}, enrollment.ID, model.EnrollmentCompleted)
	require.NoError(t, err)
	assert.Equal(t, model.EnrollmentCompleted, updated.Status)

	// 参与者本人不能改自己的报名状态
	_, err = svc.UpdateStatus(access.Identity{UserID: participant.ID, Roles: participant.Roles}, enrollment.ID, model.EnrollmentDropped)
	assert.Equal(t, util.KindAccessDenied, util.KindOf(err))
}
