package service

import (
	"testing"
	"time"

	"workshop_hub_backend/internal/model"
	"workshop_hub_backend/internal/repository"
	"workshop_hub_backend/pkg/database"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// 测试用内存库，结构与生产库一致
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// 内存库的每个连接都是独立库，必须限制为单连接
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return db
}

type testRepos struct {
	User        *repository.UserRepository
	Workshop    *repository.WorkshopRepository
	Instructor  *repository.InstructorRepository
	Assignment  *repository.AssignmentRepository
	Enrollment  *repository.EnrollmentRepository
	Submission  *repository.SubmissionRepository
	Certificate *repository.CertificateRepository
}

func newTestRepos(db *gorm.DB) testRepos {
	return testRepos{
		User:        repository.NewUserRepository(db),
		Workshop:    repository.NewWorkshopRepository(db),
		Instructor:  repository.NewInstructorRepository(db),
		Assignment:  repository.NewAssignmentRepository(db),
		Enrollment:  repository.NewEnrollmentRepository(db),
		Submission:  repository.NewSubmissionRepository(db),
		Certificate: repository.NewCertificateRepository(db),
	}
}

func createUser(t *testing.T, db *gorm.DB, email string, roles ...model.Role) *model.User {
	t.Helper()
	user := &model.User{
		FullName: "Test User",
		Email:    email,
		Password: "hashed",
		Roles:    model.RoleList(roles),
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createWorkshop(t *testing.T, db *gorm.DB, name string, requiredOverride *int) *model.Workshop {
	t.Helper()
	workshop := &model.Workshop{
		Name:                      name,
		Status:                    model.WorkshopActive,
		RequiredPassedAssignments: requiredOverride,
	}
	require.NoError(t, db.Create(workshop).Error)
	return workshop
}

func createAssignment(t *testing.T, db *gorm.DB, workshopID uint, name string, maxScore, passingScore int, compulsory bool) *model.Assignment {
	t.Helper()
	assignment := &model.Assignment{
		WorkshopID:   workshopID,
		Name:         name,
		MaximumScore: maxScore,
		PassingScore: passingScore,
		IsCompulsory: compulsory,
	}
	require.NoError(t, db.Create(assignment).Error)
	return assignment
}

func enroll(t *testing.T, db *gorm.DB, participantID, workshopID uint) *model.Enrollment {
	t.Helper()
	enrollment := &model.Enrollment{
		ParticipantID: participantID,
		WorkshopID:    workshopID,
		Status:        model.EnrollmentActive,
		JoinedAt:      time.Now(),
	}
	require.NoError(t, db.Create(enrollment).Error)
	return enrollment
}

func submit(t *testing.T, db *gorm.DB, participantID, assignmentID uint, attempt, score int) *model.Submission {
	t.Helper()
	submission := &model.Submission{
		ParticipantID: participantID,
		AssignmentID:  assignmentID,
		AttemptNumber: attempt,
		Score:         score,
		Timestamp:     time.Now(),
	}
	require.NoError(t, db.Create(submission).Error)
	return submission
}
