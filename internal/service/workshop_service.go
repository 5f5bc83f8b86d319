package service

import (
	"errors"
	"time"

	"workshop_hub_backend/internal/access"
	"workshop_hub_backend/internal/model"
	"workshop_hub_backend/internal/repository"
	"workshop_hub_backend/internal/util"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type WorkshopService struct {
	WorkshopRepo   *repository.WorkshopRepository
	InstructorRepo *repository.InstructorRepository
	EnrollmentRepo *repository.EnrollmentRepository
	UserRepo       *repository.UserRepository
}

func NewWorkshopService(
	workshopRepo *repository.WorkshopRepository,
	instructorRepo *repository.InstructorRepository,
	enrollmentRepo *repository.EnrollmentRepository,
	userRepo *repository.UserRepository,
) *WorkshopService {
	return &WorkshopService{
		WorkshopRepo:   workshopRepo,
		InstructorRepo: instructorRepo,
		EnrollmentRepo: enrollmentRepo,
		UserRepo:       userRepo,
	}
}

type WorkshopInput struct {
	Name                      string
	Status                    model.WorkshopStatus
	StartDate                 *time.Time
	EndDate                   *time.Time
	RequiredPassedAssignments *int
	HomeArchiveKey            string
	AdditionalInfo            datatypes.JSON
}

// List 按调用者角色过滤：管理员看全部，讲师看授课或自身报名的，参与者看报名的
func (s *WorkshopService) List(id access.Identity, page, limit int, status model.WorkshopStatus) ([]model.Workshop, int64, error) {
	filter := repository.ListFilter{Status: status}

	switch {
	case id.Roles.Has(model.RoleAdmin):
		// 不加过滤
	case id.Roles.Has(model.RoleInstructor):
		filter.VisibleToInstructor = id.UserID
	default:
		filter.VisibleToParticipant = id.UserID
	}

	return s.WorkshopRepo.List(page, limit, filter)
}

func (s *WorkshopService) GetByID(id access.Identity, workshopID uint) (*model.Workshop, error) {
	workshop, err := s.WorkshopRepo.FindByIDWithDetails(workshopID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.NotFoundError("workshop not found")
		}
		return nil, err
	}

	allowed, err := access.CanAccessWorkshopScopedResource(id, workshopID, s.InstructorRepo.Teaches, s.EnrollmentRepo.Enrolled)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, util.AccessDeniedError("access denied to this workshop")
	}

	return workshop, nil
}

func (s *WorkshopService) Create(input WorkshopInput) (*model.Workshop, error) {
	workshop := &model.Workshop{
		Name:                      input.Name,
		Status:                    input.Status,
		StartDate:                 input.StartDate,
		EndDate:                   input.EndDate,
		RequiredPassedAssignments: input.RequiredPassedAssignments,
		HomeArchiveKey:            input.HomeArchiveKey,
		AdditionalInfo:            input.AdditionalInfo,
	}
	if workshop.Status == "" {
		workshop.Status = model.WorkshopDraft
	}

	if err := s.WorkshopRepo.Create(workshop); err != nil {
		return nil, err
	}
	return workshop, nil
}

func (s *WorkshopService) Update(workshopID uint, input WorkshopInput) (*model.Workshop, error) {
	workshop, err := s.WorkshopRepo.FindByID(workshopID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.NotFoundError("workshop not found")
		}
		return nil, err
	}

	if input.Name != "" {
		workshop.Name = input.Name
	}
	if input.Status != "" {
		workshop.Status = input.Status
	}
	if input.StartDate != nil {
		workshop.StartDate = input.StartDate
	}
	if input.EndDate != nil {
		workshop.EndDate = input.EndDate
	}
	if input.RequiredPassedAssignments != nil {
		workshop.RequiredPassedAssignments = input.RequiredPassedAssignments
	}
	if input.HomeArchiveKey != "" {
		workshop.HomeArchiveKey = input.HomeArchiveKey
	}
	if input.AdditionalInfo != nil {
		workshop.AdditionalInfo = input.AdditionalInfo
	}

	if err := s.WorkshopRepo.Update(workshop); err != nil {
		return nil, err
	}
	return workshop, nil
}

func (s *WorkshopService) Delete(workshopID uint) error {
	_, err := s.WorkshopRepo.FindByID(workshopID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.NotFoundError("workshop not found")
		}
		return err
	}
	return s.WorkshopRepo.Delete(workshopID)
}

// ListInstructors 列出工作坊的讲师
func (s *WorkshopService) ListInstructors(workshopID uint) ([]model.User, error) {
	if _, err := s.WorkshopRepo.FindByID(workshopID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.NotFoundError("workshop not found")
		}
		return nil, err
	}

	links, err := s.InstructorRepo.ListByWorkshop(workshopID)
	if err != nil {
		return nil, err
	}

	instructors := make([]model.User, 0, len(links))
	for _, link := range links {
		if link.Instructor != nil {
			instructors = append(instructors, *link.Instructor)
		}
	}
	return instructors, nil
}

// AddInstructor 指派讲师，要求目标用户持有 INSTRUCTOR 角色
func (s *WorkshopService) AddInstructor(workshopID, instructorID uint) (*model.User, error) {
	if _, err := s.WorkshopRepo.FindByID(workshopID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.NotFoundError("workshop not found")
		}
		return nil, err
	}

	instructor, err := s.UserRepo.FindByID(instructorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.NotFoundError("instructor not found")
		}
		return nil, err
	}

	if !instructor.Roles.Has(model.RoleInstructor) {
		return nil, util.InvalidStateError("user is not an instructor")
	}

	err = s.InstructorRepo.Add(&model.WorkshopInstructor{
		WorkshopID:   workshopID,
		InstructorID: instructorID,
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, util.ConflictError("instructor already assigned to this workshop")
		}
		return nil, err
	}

	return instructor, nil
}

func (s *WorkshopService) RemoveInstructor(workshopID, instructorID uint) error {
	if _, err := s.WorkshopRepo.FindByID(workshopID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.NotFoundError("workshop not found")
		}
		return err
	}

	if _, err := s.InstructorRepo.Find(workshopID, instructorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.NotFoundError("instructor is not assigned to this workshop")
		}
		return err
	}

	return s.InstructorRepo.Remove(workshopID, instructorID)
}
