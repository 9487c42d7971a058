package services

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"motoyard/internal/models"
	"motoyard/internal/repository"
)

// UserService applies the account rules and handles credential checks.
type UserService interface {
	GetAll(ctx context.Context) ([]models.User, error)
	GetByID(ctx context.Context, id int) (*models.User, error)
	Create(ctx context.Context, user *models.User) (*models.User, error)
	Update(ctx context.Context, id int, user *models.User) error
	Delete(ctx context.Context, id int) error
	// Login returns the matching user, or nil when the email is unknown or
	// the password does not match. Blank credentials are a ValidationError.
	Login(ctx context.Context, email, password string) (*models.User, error)
}

type userService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) GetAll(ctx context.Context) ([]models.User, error) {
	return s.repo.GetAll(ctx)
}

func (s *userService) GetByID(ctx context.Context, id int) (*models.User, error) {
	if id <= 0 {
		return nil, nil
	}
	return s.repo.GetByID(ctx, id)
}

// Create checks the email conflict before the required fields, matching the
// documented check order for this entity.
func (s *userService) Create(ctx context.Context, user *models.User) (*models.User, error) {
	if user == nil {
		return nil, validationf("user is required")
	}

	emailTaken, err := s.repo.EmailExists(ctx, user.Email)
	if err != nil {
		return nil, err
	}
	if emailTaken {
		return nil, conflictf("a user with email %s is already registered", user.Email)
	}

	if strings.TrimSpace(user.Name) == "" {
		return nil, validationf("name is required")
	}
	if strings.TrimSpace(user.Email) == "" {
		return nil, validationf("email is required")
	}
	if strings.TrimSpace(user.Password) == "" {
		return nil, validationf("password is required")
	}
	if strings.TrimSpace(user.Phone) == "" {
		return nil, validationf("phone is required")
	}

	hashed, err := hashPassword(user.Password)
	if err != nil {
		return nil, err
	}
	user.Password = hashed

	user.ID = 0
	if err := s.repo.Add(ctx, user); err != nil {
		if repository.IsDuplicate(err) {
			return nil, conflictf("a user with email %s is already registered", user.Email)
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) Update(ctx context.Context, id int, user *models.User) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return &NotFoundError{Entity: "user", ID: id}
	}

	if existing.Email != user.Email {
		emailTaken, err := s.repo.EmailExists(ctx, user.Email)
		if err != nil {
			return err
		}
		if emailTaken {
			return conflictf("a user with email %s is already registered", user.Email)
		}
	}

	if strings.TrimSpace(user.Name) == "" {
		return validationf("name is required")
	}
	if strings.TrimSpace(user.Email) == "" {
		return validationf("email is required")
	}
	if strings.TrimSpace(user.Phone) == "" {
		return validationf("phone is required")
	}

	existing.Name = user.Name
	existing.Email = user.Email
	existing.Phone = user.Phone
	// Password is only re-hashed when a new one was supplied; a blank value
	// keeps the stored credential.
	if strings.TrimSpace(user.Password) != "" {
		hashed, err := hashPassword(user.Password)
		if err != nil {
			return err
		}
		existing.Password = hashed
	}

	if err := s.repo.Update(ctx, existing); err != nil {
		if repository.IsDuplicate(err) {
			return conflictf("a user with email %s is already registered", user.Email)
		}
		return err
	}
	return nil
}

func (s *userService) Delete(ctx context.Context, id int) error {
	if id <= 0 {
		return validationf("invalid id")
	}
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return &NotFoundError{Entity: "user", ID: id}
	}
	_, err = s.repo.Delete(ctx, id)
	return err
}

func (s *userService) Login(ctx context.Context, email, password string) (*models.User, error) {
	if strings.TrimSpace(email) == "" {
		return nil, validationf("email is required")
	}
	if strings.TrimSpace(password) == "" {
		return nil, validationf("password is required")
	}

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, nil
	}
	return user, nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
