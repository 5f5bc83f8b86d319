package service

import (
	"errors"

	"workshop_hub_backend/internal/access"
	"workshop_hub_backend/internal/model"
	"workshop_hub_backend/internal/repository"
	"workshop_hub_backend/internal/util"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type AssignmentService struct {
	AssignmentRepo *repository.AssignmentRepository
	WorkshopRepo   *repository.WorkshopRepository
	InstructorRepo *repository.InstructorRepository
	EnrollmentRepo *repository.EnrollmentRepository
}

func NewAssignmentService(
	assignmentRepo *repository.AssignmentRepository,
	workshopRepo *repository.WorkshopRepository,
	instructorRepo *repository.InstructorRepository,
	enrollmentRepo *repository.EnrollmentRepository,
) *AssignmentService {
	return &AssignmentService{
		AssignmentRepo: assignmentRepo,
		WorkshopRepo:   workshopRepo,
		InstructorRepo: instructorRepo,
		EnrollmentRepo: enrollmentRepo,
	}
}

type AssignmentInput struct {
	Name            string
	Description     string
	MaximumScore    int
	PassingScore    int
	AssignmentOrder int
	IsCompulsory    *bool
	EvaluationType  model.EvaluationType
	NotebookPath    string
	GraderImage     string
	EvalBinaryKey   string
	ReferenceData   datatypes.JSON
}

func (s *AssignmentService) checkRead(id access.Identity, workshopID uint) error {
	allowed, err := access.CanAccessWorkshopScopedResource(id, workshopID, s.InstructorRepo.Teaches, s.EnrollmentRepo.Enrolled)
	if err != nil {
		return err
	}
	if !allowed {
		return util.AccessDeniedError("access denied to this workshop")
	}
	return nil
}

func (s *AssignmentService) checkModify(id access.Identity, workshopID uint) error {
	allowed, err := access.CanModifyWorkshopScopedResource(id, workshopID, s.InstructorRepo.Teaches)
	if err != nil {
		return err
	}
	if !allowed {
		return util.AccessDeniedError("access denied to modify this workshop")
	}
	return nil
}

func (s *AssignmentService) requireWorkshop(workshopID uint) error {
	_, err := s.WorkshopRepo.FindByID(workshopID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.NotFoundError("workshop not found")
		}
		return err
	}
	return nil
}

func (s *AssignmentService) List(id access.Identity, workshopID uint) ([]model.Assignment, error) {
	if err := s.requireWorkshop(workshopID); err != nil {
		return nil, err
	}
	if err := s.checkRead(id, workshopID); err != nil {
		return nil, err
	}
	return s.AssignmentRepo.ListByWorkshop(workshopID)
}

func (s *AssignmentService) GetByID(id access.Identity, workshopID, assignmentID uint) (*model.Assignment, error) {
	assignment, err := s.AssignmentRepo.FindInWorkshop(workshopID, assignmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.NotFoundError("assignment not found")
		}
		return nil, err
	}
	if err := s.checkRead(id, workshopID); err != nil {
		return nil, err
	}
	return assignment, nil
}

func (s *AssignmentService) Create(id access.Identity, workshopID uint, input AssignmentInput) (*model.Assignment, error) {
	if err := s.requireWorkshop(workshopID); err != nil {
		return nil, err
	}
	if err := s.checkModify(id, workshopID); err != nil {
		return nil, err
	}

	// 及格线不得超过满分；原系统默默接受这种配置，这里改为拒绝
	if input.PassingScore > input.MaximumScore {
		return nil, util.InvalidStateError("passing score cannot exceed maximum score")
	}

	isCompulsory := true
	if input.IsCompulsory != nil {
		isCompulsory = *input.IsCompulsory
	}

	evaluationType := input.EvaluationType
	if evaluationType == "" {
		evaluationType = model.EvaluationLocal
	}

	assignment := &model.Assignment{
		WorkshopID:      workshopID,
		Name:            input.Name,
		Description:     input.Description,
		MaximumScore:    input.MaximumScore,
		PassingScore:    input.PassingScore,
		AssignmentOrder: input.AssignmentOrder,
		IsCompulsory:    isCompulsory,
		EvaluationType:  evaluationType,
		NotebookPath:    input.NotebookPath,
		GraderImage:     input.GraderImage,
		EvalBinaryKey:   input.EvalBinaryKey,
		ReferenceData:   input.ReferenceData,
	}

	if err := s.AssignmentRepo.Create(assignment); err != nil {
		return nil, err
	}
	return assignment, nil
}

func (s *AssignmentService) Update(id access.Identity, workshopID, assignmentID uint, input AssignmentInput) (*model.Assignment, error) {
	assignment, err := s.AssignmentRepo.FindInWorkshop(workshopID, assignmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.NotFoundError("assignment not found")
		}
		return nil, err
	}
	if err := s.checkModify(id, workshopID); err != nil {
		return nil, err
	}

	if input.Name != "" {
		assignment.Name = input.Name
	}
	if input.Description != "" {
		assignment.Description = input.Description
	}
	if input.MaximumScore != 0 {
		assignment.MaximumScore = input.MaximumScore
	}
	if input.PassingScore != 0 {
		assignment.PassingScore = input.PassingScore
	}
	if input.AssignmentOrder != 0 {
		assignment.AssignmentOrder = input.AssignmentOrder
	}
	if input.IsCompulsory != nil {
		assignment.IsCompulsory = *input.IsCompulsory
	}
	if input.EvaluationType != "" {
		assignment.EvaluationType = input.EvaluationType
	}
	if input.NotebookPath != "" {
		assignment.NotebookPath = input.NotebookPath
	}
	if input.GraderImage != "" {
		assignment.GraderImage = input.GraderImage
	}
	if input.EvalBinaryKey != "" {
		assignment.EvalBinaryKey = input.EvalBinaryKey
	}
	if input.ReferenceData != nil {
		assignment.ReferenceData = input.ReferenceData
	}

	if assignment.PassingScore > assignment.MaximumScore {
		return nil, util.InvalidStateError("passing score cannot exceed maximum score")
	}

	if err := s.AssignmentRepo.Update(assignment); err != nil {
		return nil, err
	}
	return assignment, nil
}

func (s *AssignmentService) Delete(id access.Identity, workshopID, assignmentID uint) error {
	assignment, err := s.AssignmentRepo.FindInWorkshop(workshopID, assignmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.NotFoundError("assignment not found")
		}
		return err
	}
	if err := s.checkModify(id, workshopID); err != nil {
		return err
	}
	return s.AssignmentRepo.Delete(assignment.ID)
}
