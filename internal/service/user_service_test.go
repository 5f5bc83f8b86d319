package service

import (
	"context"
	"testing"
	"time"

	"workshop_hub_backend/internal/model"
	"workshop_hub_backend/internal/util"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserCreateDuplicateEmailConflicts(t *testing.T) {
	db := setupTestDB(t)
	repos := newTestRepos(db)
	svc := NewUserService(repos.User)

	_, err := svc.Create(CreateUserInput{
		FullName: "First",
		Email:    "dup@example.com",
		Password: "password123",
		Roles:    model.RoleList{model.RoleParticipant},
	})
	require.NoError(t, err)

	_, err = svc.Create(CreateUserInput{
		FullName: "Second",
		Email:    "dup@example.com",
		Password: "password123",
		Roles:    model.RoleList{model.RoleParticipant},
	})
	assert.Equal(t, util.KindConflict, util.KindOf(err))
}

// 删除用户必须把报名、提交、证书和授课指派一并清掉，
// 尤其是证书：残留的行会继续通过公开验真。
func TestUserDeleteCascadesOwnedRows(t *testing.T) {
	db := setupTestDB(t)
	repos := newTestRepos(db)
	svc := NewUserService(repos.User)
	certSvc := NewCertificateService(repos.Certificate, repos.Workshop, repos.Assignment, repos.Submission, repos.Enrollment, repos.User, nil)

	participant := createUser(t, db, "p@example.com", model.RoleParticipant, model.RoleInstructor)
	workshop := createWorkshop(t, db, "Go Fundamentals", nil)
	assignment := createAssignment(t, db, workshop.ID, "hw1", 100, 60, true)
	enroll(t, db, participant.ID, workshop.ID)
	submit(t, db, participant.ID, assignment.ID, 1, 80)
	require.NoError(t, repos.Instructor.Add(&model.WorkshopInstructor{WorkshopID: workshop.ID, InstructorID: participant.ID}))

	certificate := &model.Certificate{
		ParticipantID: participant.ID,
		WorkshopID:    workshop.ID,
		UUID:          uuid.New().String(),
		Date:          time.Now(),
	}
	require.NoError(t, repos.Certificate.Create(certificate))

	require.NoError(t, svc.Delete(participant.ID))

	var count int64
	require.NoError(t, db.Unscoped().Model(&model.Enrollment{}).Where("participant_id = ?", participant.ID).Count(&count).Error)
	assert.Zero(t, count)
	require.NoError(t, db.Unscoped().Model(&model.Submission{}).Where("participant_id = ?", participant.ID).Count(&count).Error)
	assert.Zero(t, count)
	require.NoError(t, db.Unscoped().Model(&model.Certificate{}).Where("participant_id = ?", participant.ID).Count(&count).Error)
	assert.Zero(t, count)
	require.NoError(t, db.Unscoped().Model(&model.WorkshopInstructor{}).Where("instructor_id = ?", participant.ID).Count(&count).Error)
	assert.Zero(t, count)

	_, err := certSvc.Verify(context.Background(), certificate.UUID)
	assert.Equal(t, util.KindNotFound, util.KindOf(err))

	_, err = svc.GetByID(participant.ID)
	assert.Equal(t, util.KindNotFound, util.KindOf(err))
}
