package service

import (
	"errors"
	"fmt"
	"time"

	"workshop_hub_backend/internal/access"
	"workshop_hub_backend/internal/config"
	"workshop_hub_backend/internal/model"
	"workshop_hub_backend/internal/repository"
	"workshop_hub_backend/internal/util"

	"gorm.io/gorm"
)

type EnrollmentService struct {
	EnrollmentRepo *repository.EnrollmentRepository
	WorkshopRepo   *repository.WorkshopRepository
	InstructorRepo *repository.InstructorRepository
	UserRepo       *repository.UserRepository
	Cfg            *config.Config
}

func NewEnrollmentService(
	enrollmentRepo *repository.EnrollmentRepository,
	workshopRepo *repository.WorkshopRepository,
	instructorRepo *repository.InstructorRepository,
	userRepo *repository.UserRepository,
	cfg *config.Config,
) *EnrollmentService {
	return &EnrollmentService{
		EnrollmentRepo: enrollmentRepo,
		WorkshopRepo:   workshopRepo,
		InstructorRepo: instructorRepo,
		UserRepo:       userRepo,
		Cfg:            cfg,
	}
}

// List 管理员看全部，讲师看授课范围内的，参与者只看自己的
func (s *EnrollmentService) List(id access.Identity, page, limit int, workshopID, participantID uint, status model.EnrollmentStatus) ([]model.Enrollment, int64, error) {
	filter := repository.EnrollmentFilter{
		WorkshopID:    workshopID,
		ParticipantID: participantID,
		Status:        status,
	}

	switch {
	case id.Roles.Has(model.RoleAdmin):
		// 不加过滤
	case id.Roles.Has(model.RoleInstructor):
		filter.TeachingInstructor = id.UserID
	default:
		filter.OnlyOwnParticipant = id.UserID
	}

	return s.EnrollmentRepo.List(page, limit, filter)
}

func (s *EnrollmentService) GetByID(id access.Identity, enrollmentID uint) (*model.Enrollment, error) {
	enrollment, err := s.EnrollmentRepo.FindByID(enrollmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.NotFoundError("enrollment not found")
		}
		return nil, err
	}

	// 本人报名直接放行，其余走工作坊范围判定
	if !access.CanAccessParticipantScoped(id, enrollment.ParticipantID) {
		allowed, err := access.CanAccessWorkshopScopedResource(id, enrollment.WorkshopID, s.InstructorRepo.Teaches, s.EnrollmentRepo.Enrolled)
		if err != nil {
			return nil, err
		}
		if !allowed {
			return nil, util.AccessDeniedError("access denied to this enrollment")
		}
	}

	return enrollment, nil
}

func (s *EnrollmentService) checkModify(id access.Identity, workshopID uint) error {
	allowed, err := access.CanModifyWorkshopScopedResource(id, workshopID, s.InstructorRepo.Teaches)
	if err != nil {
		return err
	}
	if !allowed {
		return util.AccessDeniedError("access denied to manage enrollments for this workshop")
	}
	return nil
}

func (s *EnrollmentService) Create(id access.Identity, participantID, workshopID uint, status model.EnrollmentStatus) (*model.Enrollment, error) {
	if err := s.checkModify(id, workshopID); err != nil {
		return nil, err
	}

	if _, err := s.WorkshopRepo.FindByID(workshopID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.NotFoundError("workshop not found")
		}
		return nil, err
	}

	if _, err := s.UserRepo.FindByID(participantID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.NotFoundError("participant not found")
		}
		return nil, err
	}

	if status == "" {
		status = model.EnrollmentPending
	}

	enrollment := &model.Enrollment{
		ParticipantID: participantID,
		WorkshopID:    workshopID,
		Status:        status,
		JoinedAt:      time.Now(),
	}

	if err := s.EnrollmentRepo.Create(enrollment); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, util.ConflictError("enrollment already exists")
		}
		return nil, err
	}
	return enrollment, nil
}

func (s *EnrollmentService) UpdateStatus(id access.Identity, enrollmentID uint, status model.EnrollmentStatus) (*model.Enrollment, error) {
	enrollment, err := s.EnrollmentRepo.FindByID(enrollmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.NotFoundError("enrollment not found")
		}
		return nil, err
	}

	if err := s.checkModify(id, enrollment.WorkshopID); err != nil {
		return nil, err
	}

	enrollment.Status = status
	if err := s.EnrollmentRepo.Update(enrollment); err != nil {
		return nil, err
	}
	return enrollment, nil
}

func (s *EnrollmentService) Delete(enrollmentID uint) error {
	_, err := s.EnrollmentRepo.FindByID(enrollmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.NotFoundError("enrollment not found")
		}
		return err
	}
	return s.EnrollmentRepo.Delete(enrollmentID)
}

type EnrollmentLink struct {
	EnrollmentLink string    `json:"enrollmentLink"`
	Token          string    `json:"token"`
	ExpiresAt      time.Time `json:"expiresAt"`
}

// GenerateLink 生成限时报名链接，凭链接令牌可自助报名
func (s *EnrollmentService) GenerateLink(id access.Identity, workshopID uint, expiresIn time.Duration) (*EnrollmentLink, error) {
	if _, err := s.WorkshopRepo.FindByID(workshopID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.NotFoundError("workshop not found")
		}
		return nil, err
	}

	if err := s.checkModify(id, workshopID); err != nil {
		return nil, err
	}

	token, err := util.GenerateEnrollmentToken(workshopID, s.Cfg.JWT.Secret, expiresIn)
	if err != nil {
		return nil, err
	}

	return &EnrollmentLink{
		EnrollmentLink: fmt.Sprintf("%s/api/v1/enrollments/enroll?token=%s", s.Cfg.Server.BaseURL, token),
		Token:          token,
		ExpiresAt:      time.Now().Add(expiresIn),
	}, nil
}

// EnrollWithToken 已登录用户凭报名令牌自助报名，初始状态 PENDING
func (s *EnrollmentService) EnrollWithToken(userID uint, token string) (*model.Enrollment, error) {
	claims, err := util.ParseEnrollmentToken(token, s.Cfg.JWT.Secret)
	if err != nil {
		return nil, util.InvalidStateError("invalid or expired enrollment token")
	}

	if _, err := s.WorkshopRepo.FindByID(claims.WorkshopID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.NotFoundError("workshop not found")
		}
		return nil, err
	}

	enrollment := &model.Enrollment{
		ParticipantID: userID,
		WorkshopID:    claims.WorkshopID,
		Status:        model.EnrollmentPending,
		JoinedAt:      time.Now(),
	}

	if err := s.EnrollmentRepo.Create(enrollment); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, util.ConflictError("already enrolled in this workshop")
		}
		return nil, err
	}
	return enrollment, nil
}
