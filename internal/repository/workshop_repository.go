package repository

import (
	"workshop_hub_backend/internal/model"

	"gorm.io/gorm"
)

type WorkshopRepository struct {
	DB *gorm.DB
}

func NewWorkshopRepository(db *gorm.DB) *WorkshopRepository {
	return &WorkshopRepository{DB: db}
}

func (r *WorkshopRepository) Create(workshop *model.Workshop) error {
	return r.DB.Create(workshop).Error
}

func (r *WorkshopRepository) FindByID(id uint) (*model.Workshop, error) {
	var workshop model.Workshop
	err := r.DB.First(&workshop, id).Error
	return &workshop, err
}

// FindByIDWithDetails 加载作业（按排序）与讲师
func (r *WorkshopRepository) FindByIDWithDetails(id uint) (*model.Workshop, error) {
	var workshop model.Workshop
	err := r.DB.
		Preload("Assignments", func(db *gorm.DB) *gorm.DB {
			return db.Order("assignment_order ASC")
		}).
		Preload("Instructors.Instructor").
		First(&workshop, id).Error
	return &workshop, err
}

func (r *WorkshopRepository) Update(workshop *model.Workshop) error {
	return r.DB.Save(workshop).Error
}

func (r *WorkshopRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Workshop{}, id).Error
}

// ListFilter 列表查询的角色过滤条件
type ListFilter struct {
	Status model.WorkshopStatus
	// 非零时仅返回该讲师授课或该用户报名的工作坊
	VisibleToInstructor uint
	// 非零时仅返回该参与者报名的工作坊
	VisibleToParticipant uint
}

func (r *WorkshopRepository) List(page, limit int, filter ListFilter) ([]model.Workshop, int64, error) {
	var workshops []model.Workshop
	var total int64

	query := r.DB.Model(&model.Workshop{})

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	if filter.VisibleToInstructor != 0 {
		query = query.Where(
			"id IN (?) OR id IN (?)",
			r.DB.Model(&model.WorkshopInstructor{}).Select("workshop_id").Where("instructor_id = ?", filter.VisibleToInstructor),
			r.DB.Model(&model.Enrollment{}).Select("workshop_id").Where("participant_id = ?", filter.VisibleToInstructor),
		)
	} else if filter.VisibleToParticipant != 0 {
		query = query.Where(
			"id IN (?)",
			r.DB.Model(&model.Enrollment{}).Select("workshop_id").Where("participant_id = ?", filter.VisibleToParticipant),
		)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("id DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&workshops).Error
	return workshops, total, err
}
