package service

import (
	"errors"

	"workshop_hub_backend/internal/model"
	"workshop_hub_backend/internal/repository"
	"workshop_hub_backend/internal/util"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type UserService struct {
	UserRepo *repository.UserRepository
}

func NewUserService(userRepo *repository.UserRepository) *UserService {
	return &UserService{UserRepo: userRepo}
}

type CreateUserInput struct {
	FullName       string
	Email          string
	Password       string
	Roles          model.RoleList
	AdditionalInfo datatypes.JSON
}

type UpdateUserInput struct {
	FullName       string
	Email          string
	Roles          model.RoleList
	AdditionalInfo datatypes.JSON
}

func (s *UserService) List(page, limit int, role model.Role) ([]model.User, int64, error) {
	return s.UserRepo.List(page, limit, role)
}

func (s *UserService) GetByID(id uint) (*model.User, error) {
	user, err := s.UserRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.NotFoundError("user not found")
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) Create(input CreateUserInput) (*model.User, error) {
	_, err := s.UserRepo.FindByEmail(input.Email)
	if err == nil {
		return nil, util.ConflictError("user with this email already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		FullName:       input.FullName,
		Email:          input.Email,
		Password:       string(hashedPassword),
		Roles:          input.Roles,
		AdditionalInfo: input.AdditionalInfo,
	}

	if err := s.UserRepo.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, util.ConflictError("user with this email already exists")
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) Update(id uint, input UpdateUserInput) (*model.User, error) {
	user, err := s.UserRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.NotFoundError("user not found")
		}
		return nil, err
	}

	if input.Email != "" && input.Email != user.Email {
		_, err := s.UserRepo.FindByEmail(input.Email)
		if err == nil {
			return nil, util.ConflictError("email already in use")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		user.Email = input.Email
	}

	if input.FullName != "" {
		user.FullName = input.FullName
	}
	if input.Roles != nil {
		user.Roles = input.Roles
	}
	if input.AdditionalInfo != nil {
		user.AdditionalInfo = input.AdditionalInfo
	}

	if err := s.UserRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) Delete(id uint) error {
	_, err := s.UserRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.NotFoundError("user not found")
		}
		return err
	}
	return s.UserRepo.Delete(id)
}
