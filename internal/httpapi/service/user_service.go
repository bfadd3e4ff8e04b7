package service

import (
	"context"
	"errors"
	"time"

	"shelfmate/internal/auth"
	"shelfmate/internal/httpapi/apperr"
	"shelfmate/internal/httpapi/models"
	"shelfmate/internal/httpapi/repository"

	"gorm.io/gorm"
)

// UpdateUserInput carries profile fields for a merge update. Nil means
// "leave unchanged"; an empty password keeps the stored hash.
type UpdateUserInput struct {
	FirstName         *string
	LastName          *string
	Email             *string
	Password          *string
	CPF               *string
	Avatar            *string
	Biography         *string
	DateOfBirth       *time.Time
	AddressStreet     *string
	AddressCity       *string
	AddressState      *string
	AddressZip        *string
	AnnualReadingGoal *int
}

type UserService interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	Update(ctx context.Context, id string, input UpdateUserInput) (*models.User, error)
	Delete(ctx context.Context, id string) error
}

type userService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) GetByID(ctx context.Context, id string) (*models.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("user %s not found", id)
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("user with email %s not found", email)
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) List(ctx context.Context) ([]models.User, error) {
	return s.repo.FindAll(ctx)
}

func (s *userService) Update(ctx context.Context, id string, input UpdateUserInput) (*models.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("user %s not found", id)
		}
		return nil, err
	}

	if input.Email != nil && *input.Email != user.Email {
		if other, err := s.repo.FindByEmail(ctx, *input.Email); err == nil && other.ID != id {
			return nil, apperr.Conflictf("email already registered by another user")
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		user.Email = *input.Email
	}

	if input.CPF != nil && *input.CPF != user.CPF {
		if other, err := s.repo.FindByCPF(ctx, *input.CPF); err == nil && other.ID != id {
			return nil, apperr.Conflictf("CPF already registered by another user")
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		user.CPF = *input.CPF
	}

	if input.FirstName != nil {
		user.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}
	if input.Avatar != nil {
		user.Avatar = input.Avatar
	}
	if input.Biography != nil {
		user.Biography = input.Biography
	}
	if input.DateOfBirth != nil {
		user.DateOfBirth = input.DateOfBirth
	}
	if input.AddressStreet != nil {
		user.AddressStreet = input.AddressStreet
	}
	if input.AddressCity != nil {
		user.AddressCity = input.AddressCity
	}
	if input.AddressState != nil {
		user.AddressState = input.AddressState
	}
	if input.AddressZip != nil {
		user.AddressZip = input.AddressZip
	}
	if input.AnnualReadingGoal != nil {
		user.AnnualReadingGoal = input.AnnualReadingGoal
	}

	// re-hash only when a new password was supplied, otherwise the stored
	// hash stays untouched
	if input.Password != nil && *input.Password != "" {
		hashed, err := auth.HashPassword(*input.Password)
		if err != nil {
			return nil, err
		}
		user.Password = hashed
	}

	if err := s.repo.Save(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) Delete(ctx context.Context, id string) error {
	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return apperr.NotFoundf("user %s not found", id)
	}

	return s.repo.DeleteWithData(ctx, id)
}
