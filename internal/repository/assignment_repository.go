package repository

import (
	"workshop_hub_backend/internal/model"

	"gorm.io/gorm"
)

type AssignmentRepository struct {
	DB *gorm.DB
}

func NewAssignmentRepository(db *gorm.DB) *AssignmentRepository {
	return &AssignmentRepository{DB: db}
}

func (r *AssignmentRepository) Create(assignment *model.Assignment) error {
	return r.DB.Create(assignment).Error
}

func (r *AssignmentRepository) FindByID(id uint) (*model.Assignment, error) {
	var assignment model.Assignment
	err := r.DB.First(&assignment, id).Error
	return &assignment, err
}

// FindInWorkshop 查找作业并校验其归属于指定工作坊
func (r *AssignmentRepository) FindInWorkshop(workshopID, assignmentID uint) (*model.Assignment, error) {
	var assignment model.Assignment
	err := r.DB.
		Where("id = ? AND workshop_id = ?", assignmentID, workshopID).
		First(&assignment).Error
	return &assignment, err
}

func (r *AssignmentRepository) Update(assignment *model.Assignment) error {
	return r.DB.Save(assignment).Error
}

func (r *AssignmentRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Assignment{}, id).Error
}

func (r *AssignmentRepository) ListByWorkshop(workshopID uint) ([]model.Assignment, error) {
	var assignments []model.Assignment
	err := r.DB.
		Where("workshop_id = ?", workshopID).
		Order("assignment_order ASC").
		Find(&assignments).Error
	return assignments, err
}

// ListCompulsory 工作坊的必修作业，供结业资格判定使用
func (r *AssignmentRepository) ListCompulsory(workshopID uint) ([]model.Assignment, error) {
	var assignments []model.Assignment
	err := r.DB.
		Where("workshop_id = ? AND is_compulsory = ?", workshopID, true).
		Find(&assignments).Error
	return assignments, err
}
