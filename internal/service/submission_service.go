package service

import (
	"errors"
	"fmt"
	"time"

	"workshop_hub_backend/internal/access"
	"workshop_hub_backend/internal/model"
	"workshop_hub_backend/internal/repository"
	"workshop_hub_backend/internal/util"

	"gorm.io/gorm"
)

type SubmissionService struct {
	SubmissionRepo *repository.SubmissionRepository
	AssignmentRepo *repository.AssignmentRepository
	InstructorRepo *repository.InstructorRepository
	EnrollmentRepo *repository.EnrollmentRepository
	UserRepo       *repository.UserRepository
}

func NewSubmissionService(
	submissionRepo *repository.SubmissionRepository,
	assignmentRepo *repository.AssignmentRepository,
	instructorRepo *repository.InstructorRepository,
	enrollmentRepo *repository.EnrollmentRepository,
	userRepo *repository.UserRepository,
) *SubmissionService {
	return &SubmissionService{
		SubmissionRepo: submissionRepo,
		AssignmentRepo: assignmentRepo,
		InstructorRepo: instructorRepo,
		EnrollmentRepo: enrollmentRepo,
		UserRepo:       userRepo,
	}
}

// List 管理员看全部，讲师看授课范围内的，参与者只看自己的
func (s *SubmissionService) List(id access.Identity, page, limit int, participantID, assignmentID, workshopID uint) ([]model.Submission, int64, error) {
	filter := repository.SubmissionFilter{
		ParticipantID: participantID,
		AssignmentID:  assignmentID,
		WorkshopID:    workshopID,
	}

	switch {
	case id.Roles.Has(model.RoleAdmin):
		// 不加过滤
	case id.Roles.Has(model.RoleInstructor):
		filter.TeachingInstructor = id.UserID
	default:
		filter.OnlyOwnParticipant = id.UserID
	}

	return s.SubmissionRepo.List(page, limit, filter)
}

func (s *SubmissionService) GetByID(id access.Identity, submissionID uint) (*model.Submission, error) {
	submission, err := s.SubmissionRepo.FindByID(submissionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.NotFoundError("submission not found")
		}
		return nil, err
	}

	// 本人提交直接放行，其余走作业所属工作坊的范围判定
	if !access.CanAccessParticipantScoped(id, submission.ParticipantID) {
		allowed, err := access.CanAccessWorkshopScopedResource(id, submission.Assignment.WorkshopID, s.InstructorRepo.Teaches, s.EnrollmentRepo.Enrolled)
		if err != nil {
			return nil, err
		}
		if !allowed {
			return nil, util.AccessDeniedError("access denied to this submission")
		}
	}

	return submission, nil
}

// Create 记录一次评分尝试，写权限限定在作业所属工作坊：
// 管理员或该工作坊的授课讲师。分数不得超过作业满分；
// (participant, assignment, attempt) 重复时报冲突，已有尝试永不覆盖。
func (s *SubmissionService) Create(id access.Identity, participantID, assignmentID uint, score, attemptNumber int) (*model.Submission, error) {
	assignment, err := s.AssignmentRepo.FindByID(assignmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.NotFoundError("assignment not found")
		}
		return nil, err
	}

	allowed, err := access.CanModifyWorkshopScopedResource(id, assignment.WorkshopID, s.InstructorRepo.Teaches)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, util.AccessDeniedError("access denied to record submissions for this workshop")
	}

	if _, err := s.UserRepo.FindByID(participantID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.NotFoundError("participant not found")
		}
		return nil, err
	}

	if score > assignment.MaximumScore {
		return nil, util.InvalidStateError(fmt.Sprintf("score cannot exceed maximum score of %d", assignment.MaximumScore))
	}

	submission := &model.Submission{
		ParticipantID: participantID,
		AssignmentID:  assignmentID,
		AttemptNumber: attemptNumber,
		Score:         score,
		Timestamp:     time.Now(),
	}

	if err := s.SubmissionRepo.Create(submission); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, util.ConflictError("submission with this attempt number already exists")
		}
		return nil, err
	}
	return submission, nil
}

// GetParticipantSubmissions 参与者私有数据：本人恒可见，管理员可见，
// 讲师仅见其授课工作坊范围内的提交
func (s *SubmissionService) GetParticipantSubmissions(id access.Identity, participantID uint) ([]model.Submission, error) {
	if _, err := s.UserRepo.FindByID(participantID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.NotFoundError("participant not found")
		}
		return nil, err
	}

	if access.CanAccessParticipantScoped(id, participantID) {
		return s.SubmissionRepo.ListByParticipant(participantID)
	}

	if !id.Roles.Has(model.RoleInstructor) {
		return nil, util.AccessDeniedError("access denied to these submissions")
	}

	submissions, _, err := s.SubmissionRepo.List(1, 1000, repository.SubmissionFilter{
		ParticipantID:      participantID,
		TeachingInstructor: id.UserID,
	})
	return submissions, err
}
