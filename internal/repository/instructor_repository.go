package repository

import (
	"errors"

	"workshop_hub_backend/internal/model"

	"gorm.io/gorm"
)

type InstructorRepository struct {
	DB *gorm.DB
}

func NewInstructorRepository(db *gorm.DB) *InstructorRepository {
	return &InstructorRepository{DB: db}
}

func (r *InstructorRepository) Add(link *model.WorkshopInstructor) error {
	return r.DB.Create(link).Error
}

func (r *InstructorRepository) Remove(workshopID, instructorID uint) error {
	// 物理删除，移除后允许重新指派
	return r.DB.Unscoped().
		Where("workshop_id = ? AND instructor_id = ?", workshopID, instructorID).
		Delete(&model.WorkshopInstructor{}).Error
}

func (r *InstructorRepository) Find(workshopID, instructorID uint) (*model.WorkshopInstructor, error) {
	var link model.WorkshopInstructor
	err := r.DB.
		Where("workshop_id = ? AND instructor_id = ?", workshopID, instructorID).
		First(&link).Error
	return &link, err
}

// Teaches 讲师是否被指派到该工作坊，供 access 包作为 lookup 注入
func (r *InstructorRepository) Teaches(workshopID, instructorID uint) (bool, error) {
	_, err := r.Find(workshopID, instructorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *InstructorRepository) ListByWorkshop(workshopID uint) ([]model.WorkshopInstructor, error) {
	var links []model.WorkshopInstructor
	err := r.DB.
		Preload("Instructor").
		Where("workshop_id = ?", workshopID).
		Find(&links).Error
	return links, err
}
