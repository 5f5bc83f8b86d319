package repository

import (
	"workshop_hub_backend/internal/model"

	"gorm.io/gorm"
)

type SubmissionRepository struct {
	DB *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) *SubmissionRepository {
	return &SubmissionRepository{DB: db}
}

func (r *SubmissionRepository) Create(submission *model.Submission) error {
	return r.DB.Create(submission).Error
}

func (r *SubmissionRepository) FindByID(id uint) (*model.Submission, error) {
	var submission model.Submission
	err := r.DB.
		Preload("Participant").
		Preload("Assignment").
		First(&submission, id).Error
	return &submission, err
}

// ListCompulsoryForWorkshop 参与者在某工作坊全部必修作业上的提交，
// 预加载作业以携带及格线，供聚合阶段使用
func (r *SubmissionRepository) ListCompulsoryForWorkshop(participantID, workshopID uint) ([]model.Submission, error) {
	var submissions []model.Submission
	err := r.DB.
		Preload("Assignment").
		Joins("JOIN assignments ON assignments.id = submissions.assignment_id").
		Where("submissions.participant_id = ? AND assignments.workshop_id = ? AND assignments.is_compulsory = ?",
			participantID, workshopID, true).
		Find(&submissions).Error
	return submissions, err
}

func (r *SubmissionRepository) ListByParticipant(participantID uint) ([]model.Submission, error) {
	var submissions []model.Submission
	err := r.DB.
		Preload("Assignment").
		Where("participant_id = ?", participantID).
		Order("timestamp DESC").
		Find(&submissions).Error
	return submissions, err
}

// SubmissionFilter 列表过滤条件
type SubmissionFilter struct {
	ParticipantID      uint
	AssignmentID       uint
	WorkshopID         uint
	TeachingInstructor uint
	OnlyOwnParticipant uint
}

func (r *SubmissionRepository) List(page, limit int, filter SubmissionFilter) ([]model.Submission, int64, error) {
	var submissions []model.Submission
	var total int64

	query := r.DB.Model(&model.Submission{}).
		Joins("JOIN assignments ON assignments.id = submissions.assignment_id")

	if filter.ParticipantID != 0 {
		query = query.Where("submissions.participant_id = ?", filter.ParticipantID)
	}
	if filter.AssignmentID != 0 {
		query = query.Where("submissions.assignment_id = ?", filter.AssignmentID)
	}
	if filter.WorkshopID != 0 {
		query = query.Where("assignments.workshop_id = ?", filter.WorkshopID)
	}
	if filter.TeachingInstructor != 0 {
		query = query.Where(
			"assignments.workshop_id IN (?)",
			r.DB.Model(&model.WorkshopInstructor{}).Select("workshop_id").Where("instructor_id = ?", filter.TeachingInstructor),
		)
	}
	if filter.OnlyOwnParticipant != 0 {
		query = query.Where("submissions.participant_id = ?", filter.OnlyOwnParticipant)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Preload("Participant").
		Preload("Assignment").
		Order("submissions.timestamp DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&submissions).Error
	return submissions, total, err
}
