package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"estatehub/internal/adapters/persistence/models"
	"estatehub/internal/adapters/persistence/repositories"
)

// UserService handles profile reads and updates
type UserService struct {
	userRepo repositories.UserRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo repositories.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// UpdateProfileInput carries the partial profile update. Nil fields are
// left untouched.
type UpdateProfileInput struct {
	Email            *string `json:"email"`
	FullName         *string `json:"full_name"`
	Phone            *string `json:"phone"`
	OrganizationName *string `json:"organization_name"`
	INN              *string `json:"inn"`
}

// GetProfile returns the profile projection for a user id
func (s *UserService) GetProfile(ctx context.Context, userID uint) (*models.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	return user.ToResponse(), nil
}

// UpdateProfile applies the supplied fields. New email and phone values
// are checked against other accounts before the write.
func (s *UserService) UpdateProfile(ctx context.Context, userID uint, input UpdateProfileInput) (*models.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	if input.Email != nil {
		// Same canonical form as registration and login
		email := strings.TrimSpace(strings.ToLower(*input.Email))
		if email != user.Email {
			exists, err := s.userRepo.ExistsByEmail(ctx, email)
			if err != nil {
				return nil, fmt.Errorf("failed to check email: %w", err)
			}
			if exists {
				return nil, ErrEmailExists
			}
			user.Email = email
		}
	}
	if input.Phone != nil && *input.Phone != "" {
		if user.Phone == nil || *user.Phone != *input.Phone {
			exists, err := s.userRepo.ExistsByPhone(ctx, *input.Phone)
			if err != nil {
				return nil, fmt.Errorf("failed to check phone: %w", err)
			}
			if exists {
				return nil, ErrPhoneExists
			}
			user.Phone = input.Phone
		}
	}
	if input.FullName != nil {
		user.FullName = *input.FullName
	}
	if input.OrganizationName != nil {
		user.OrganizationName = *input.OrganizationName
	}
	if input.INN != nil {
		user.INN = *input.INN
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			if input.Email != nil {
				return nil, ErrEmailExists
			}
			return nil, ErrPhoneExists
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return user.ToResponse(), nil
}
