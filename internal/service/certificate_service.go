package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"workshop_hub_backend/internal/access"
	"workshop_hub_backend/internal/model"
	"workshop_hub_backend/internal/repository"
	"workshop_hub_backend/internal/util"
	"workshop_hub_backend/pkg/monitoring"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const verifyCacheTTL = 10 * time.Minute

type CertificateService struct {
	CertificateRepo *repository.CertificateRepository
	WorkshopRepo    *repository.WorkshopRepository
	AssignmentRepo  *repository.AssignmentRepository
	SubmissionRepo  *repository.SubmissionRepository
	EnrollmentRepo  *repository.EnrollmentRepository
	UserRepo        *repository.UserRepository
	Redis           *redis.Client
}

func NewCertificateService(
	certificateRepo *repository.CertificateRepository,
	workshopRepo *repository.WorkshopRepository,
	assignmentRepo *repository.AssignmentRepository,
	submissionRepo *repository.SubmissionRepository,
	enrollmentRepo *repository.EnrollmentRepository,
	userRepo *repository.UserRepository,
	rdb *redis.Client,
) *CertificateService {
	return &CertificateService{
		CertificateRepo: certificateRepo,
		WorkshopRepo:    workshopRepo,
		AssignmentRepo:  assignmentRepo,
		SubmissionRepo:  submissionRepo,
		EnrollmentRepo:  enrollmentRepo,
		UserRepo:        userRepo,
		Redis:           rdb,
	}
}

// List 管理员看全部，讲师看授课范围内的，参与者只看自己的
func (s *CertificateService) List(id access.Identity, page, limit int, participantID, workshopID uint) ([]model.Certificate, int64, error) {
	filter := repository.CertificateFilter{
		ParticipantID: participantID,
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

	return s.CertificateRepo.List(page, limit, filter)
}

func (s *CertificateService) GetByID(certificateID uint) (*model.Certificate, error) {
	certificate, err := s.CertificateRepo.FindByID(certificateID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.NotFoundError("certificate not found")
		}
		return nil, err
	}
	return certificate, nil
}

// Generate 签发证书。前置校验依次为：参与者存在且持有 PARTICIPANT 角色、
// 工作坊存在、已报名、尚无证书；随后聚合最佳成绩并做结业资格判定。
// 不合格时返回判定结果，供调用方向客户端展示完成进度。
func (s *CertificateService) Generate(participantID, workshopID uint) (*model.Certificate, *access.EligibilityResult, error) {
	participant, err := s.UserRepo.FindByID(participantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, util.NotFoundError("participant not found")
		}
		return nil, nil, err
	}

	if !participant.Roles.Has(model.RoleParticipant) {
		return nil, nil, util.InvalidStateError("user is not a participant")
	}

	workshop, err := s.WorkshopRepo.FindByID(workshopID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, util.NotFoundError("workshop not found")
		}
		return nil, nil, err
	}

	if _, err := s.EnrollmentRepo.FindByPair(participantID, workshopID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, util.InvalidStateError("participant is not enrolled in this workshop")
		}
		return nil, nil, err
	}

	if _, err := s.CertificateRepo.FindByPair(participantID, workshopID); err == nil {
		return nil, nil, util.ConflictError("certificate already exists for this participant and workshop")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, err
	}

	compulsory, err := s.AssignmentRepo.ListCompulsory(workshopID)
	if err != nil {
		return nil, nil, err
	}

	submissions, err := s.SubmissionRepo.ListCompulsoryForWorkshop(participantID, workshopID)
	if err != nil {
		return nil, nil, err
	}

	attempts := make([]access.ScoredAttempt, 0, len(submissions))
	for _, submission := range submissions {
		attempts = append(attempts, access.ScoredAttempt{
			AssignmentID: submission.AssignmentID,
			Score:        submission.Score,
			PassingScore: submission.Assignment.PassingScore,
		})
	}

	compulsoryIDs := make([]uint, 0, len(compulsory))
	for _, assignment := range compulsory {
		compulsoryIDs = append(compulsoryIDs, assignment.ID)
	}

	result := access.EvaluateEligibility(
		workshop.RequiredPassedAssignments,
		compulsoryIDs,
		access.BestScoresByAssignment(attempts),
	)

	if !result.Eligible {
		return nil, &result, util.InvalidStateError(fmt.Sprintf(
			"participant has not met requirements: passed %d of %d required assignments",
			result.PassedCount, result.RequiredCount,
		))
	}

	certificate := &model.Certificate{
		ParticipantID: participantID,
		WorkshopID:    workshopID,
		UUID:          uuid.New().String(),
		Date:          time.Now(),
	}

	if err := s.CertificateRepo.Create(certificate); err != nil {
		// 并发签发在唯一键上竞争，落败方报冲突
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, nil, util.ConflictError("certificate already exists for this participant and workshop")
		}
		return nil, nil, err
	}

	monitoring.CertificatesIssued.Inc()
	return certificate, &result, nil
}

// Verify 公开验真接口，按UUID查证书，结果短暂缓存
func (s *CertificateService) Verify(ctx context.Context, certUUID string) (*model.Certificate, error) {
	cacheKey := "certificate:verify:" + certUUID

	if s.Redis != nil {
		if cached, err := s.Redis.Get(ctx, cacheKey).Result(); err == nil {
			var certificate model.Certificate
			if err := json.Unmarshal([]byte(cached), &certificate); err == nil {
				return &certificate, nil
			}
		}
	}

	certificate, err := s.CertificateRepo.FindByUUID(certUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.NotFoundError("certificate not found or invalid")
		}
		return nil, err
	}

	if s.Redis != nil {
		if data, err := json.Marshal(certificate); err == nil {
			s.Redis.Set(ctx, cacheKey, data, verifyCacheTTL)
		}
	}

	return certificate, nil
}

// GetParticipantCertificates 本人或管理员可见
func (s *CertificateService) GetParticipantCertificates(id access.Identity, participantID uint) ([]model.Certificate, error) {
	if !access.CanAccessParticipantScoped(id, participantID) {
		return nil, util.AccessDeniedError("you do not have access to these certificates")
	}

	if _, err := s.UserRepo.FindByID(participantID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.NotFoundError("participant not found")
		}
		return nil, err
	}

	return s.CertificateRepo.ListByParticipant(participantID)
}

// Delete 证书不可修改，重发 = 删除 + 重新生成
func (s *CertificateService) Delete(ctx context.Context, certificateID uint) error {
	certificate, err := s.CertificateRepo.FindByID(certificateID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.NotFoundError("certificate not found")
		}
		return err
	}

	if err := s.CertificateRepo.Delete(certificateID); err != nil {
		return err
	}

	if s.Redis != nil {
		s.Redis.Del(ctx, "certificate:verify:"+certificate.UUID)
	}
	return nil
}
