package repository

import (
	"errors"

	"workshop_hub_backend/internal/model"

	"gorm.io/gorm"
)

type EnrollmentRepository struct {
	DB *gorm.DB
}

func NewEnrollmentRepository(db *gorm.DB) *EnrollmentRepository {
	return &EnrollmentRepository{DB: db}
}

func (r *EnrollmentRepository) Create(enrollment *model.Enrollment) error {
	return r.DB.Create(enrollment).Error
}

func (r *EnrollmentRepository) FindByID(id uint) (*model.Enrollment, error) {
	var enrollment model.Enrollment
	err := r.DB.
		Preload("Participant").
		Preload("Workshop").
		First(&enrollment, id).Error
	return &enrollment, err
}

func (r *EnrollmentRepository) FindByPair(participantID, workshopID uint) (*model.Enrollment, error) {
	var enrollment model.Enrollment
	err := r.DB.
		Where("participant_id = ? AND workshop_id = ?", participantID, workshopID).
		First(&enrollment).Error
	return &enrollment, err
}

// Enrolled 参与者是否报名了该工作坊，供 access 包作为 lookup 注入
func (r *EnrollmentRepository) Enrolled(participantID, workshopID uint) (bool, error) {
	_, err := r.FindByPair(participantID, workshopID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *EnrollmentRepository) Update(enrollment *model.Enrollment) error {
	return r.DB.Save(enrollment).Error
}

// Delete 物理删除，退出后允许重新报名
func (r *EnrollmentRepository) Delete(id uint) error {
	return r.DB.Unscoped().Delete(&model.Enrollment{}, id).Error
}

// EnrollmentFilter 列表过滤条件；TeachingInstructor 非零时按授课范围过滤
type EnrollmentFilter struct {
	WorkshopID         uint
	ParticipantID      uint
	Status             model.EnrollmentStatus
	TeachingInstructor uint
	OnlyOwnParticipant uint
}

func (r *EnrollmentRepository) List(page, limit int, filter EnrollmentFilter) ([]model.Enrollment, int64, error) {
	var enrollments []model.Enrollment
	var total int64

	query := r.DB.Model(&model.Enrollment{})

	if filter.WorkshopID != 0 {
		query = query.Where("workshop_id = ?", filter.WorkshopID)
	}
	if filter.ParticipantID != 0 {
		query = query.Where("participant_id = ?", filter.ParticipantID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.TeachingInstructor != 0 {
		query = query.Where(
			"workshop_id IN (?)",
			r.DB.Model(&model.WorkshopInstructor{}).Select("workshop_id").Where("instructor_id = ?", filter.TeachingInstructor),
		)
	}
	if filter.OnlyOwnParticipant != 0 {
		query = query.Where("participant_id = ?", filter.OnlyOwnParticipant)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Preload("Participant").
		Preload("Workshop").
		Order("joined_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&enrollments).Error
	return enrollments, total, err
}
