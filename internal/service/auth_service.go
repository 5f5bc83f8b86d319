package service

import (
	"errors"

	"workshop_hub_backend/internal/config"
	"workshop_hub_backend/internal/model"
	"workshop_hub_backend/internal/repository"
	"workshop_hub_backend/internal/util"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	UserRepo *repository.UserRepository
	Cfg      *config.Config
}

func NewAuthService(userRepo *repository.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		UserRepo: userRepo,
		Cfg:      cfg,
	}
}

// Signup 自助注册，默认授予 PARTICIPANT 角色
func (s *AuthService) Signup(fullName, email, password string) (string, *model.User, error) {
	_, err := s.UserRepo.FindByEmail(email)
	if err == nil {
		return "", nil, util.ConflictError("user with this email already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, err
	}

	user := &model.User{
		FullName: fullName,
		Email:    email,
		Password: string(hashedPassword),
		Roles:    model.RoleList{model.RoleParticipant},
	}

	if err := s.UserRepo.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return "", nil, util.ConflictError("user with this email already exists")
		}
		return "", nil, err
	}

	token, err := util.GenerateJWT(user, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *AuthService) Login(email, password string) (string, *model.User, error) {
	user, err := s.UserRepo.FindByEmail(email)
	if err != nil {
		return "", nil, util.InvalidStateError("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, util.InvalidStateError("invalid email or password")
	}

	token, err := util.GenerateJWT(user, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}
