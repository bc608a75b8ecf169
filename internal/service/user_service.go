package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"visionguard-service/internal/model"
	"visionguard-service/internal/repository"
)

// tempPassword is handed out by ResetPassword; the account holder is
// expected to change it on next login.
const tempPassword = "Reset1234!"

// UserService manages the system accounts themselves (supervisors and
// HR staff). Self-service profile edits live in AuthService; this is
// the administrative side.
type UserService struct {
	users *repository.UserRepository
}

func NewUserService(users *repository.UserRepository) *UserService {
	return &UserService{users: users}
}

func (s *UserService) List(ctx context.Context, params repository.UserListParams) ([]model.User, int64, error) {
	return s.users.List(ctx, params)
}

func (s *UserService) ByID(ctx context.Context, id int) (*model.User, error) {
	user, err := s.users.ByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

// NewUserInput carries everything needed to open an account. The role
// has already been parsed by the caller.
type NewUserInput struct {
	Username   string
	Password   string
	FirstName  string
	LastName   string
	Email      string
	Department string
	Role       model.Role
}

func (s *UserService) Create(ctx context.Context, input NewUserInput) (*model.User, error) {
	if input.Username == "" || input.Password == "" {
		return nil, ErrInvalidInput
	}

	if existing, err := s.users.ByUsername(ctx, input.Username); err == nil && existing != nil {
		return nil, ErrConflict
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if input.Email != "" {
		if existing, err := s.users.ByEmail(ctx, input.Email); err == nil && existing != nil {
			return nil, ErrConflict
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username:     input.Username,
		PasswordHash: string(hash),
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		Department:   input.Department,
		Role:         input.Role,
		IsActive:     true,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// UserUpdate carries the fields an administrator may change; nil means
// keep. Username and password are deliberately absent, the former is
// immutable and the latter goes through ResetPassword.
type UserUpdate struct {
	FirstName  *string
	LastName   *string
	Email      *string
	Department *string
	Role       *model.Role
	IsActive   *bool
}

func (s *UserService) Update(ctx context.Context, id int, update UserUpdate) (*model.User, error) {
	user, err := s.ByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.FirstName != nil {
		user.FirstName = *update.FirstName
	}
	if update.LastName != nil {
		user.LastName = *update.LastName
	}
	if update.Email != nil {
		user.Email = *update.Email
	}
	if update.Department != nil {
		user.Department = *update.Department
	}
	if update.Role != nil {
		user.Role = *update.Role
	}
	if update.IsActive != nil {
		user.IsActive = *update.IsActive
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) Delete(ctx context.Context, id int) error {
	if err := s.users.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// ResetPassword replaces the account's password with a temporary one
// and returns it so the caller can hand it to the account holder.
func (s *UserService) ResetPassword(ctx context.Context, id int) (string, error) {
	user, err := s.ByID(ctx, id)
	if err != nil {
		return "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(tempPassword), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	user.PasswordHash = string(hash)
	if err := s.users.Update(ctx, user); err != nil {
		return "", err
	}
	return tempPassword, nil
}
