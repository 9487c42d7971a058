package services

import (
	"context"
	"strings"
	"time"

	"motoyard/internal/models"
	"motoyard/internal/repository"
)

// CheckinService validates inspection records against their referenced rows.
type CheckinService interface {
	GetAll(ctx context.Context) ([]models.Checkin, error)
	GetByID(ctx context.Context, id int) (*models.Checkin, error)
	Create(ctx context.Context, checkin *models.Checkin) (*models.Checkin, error)
	Update(ctx context.Context, id int, checkin *models.Checkin) error
	Delete(ctx context.Context, id int) error
}

type checkinService struct {
	repo     repository.CheckinRepository
	motoRepo repository.MotoRepository
	userRepo repository.UserRepository
}

func NewCheckinService(repo repository.CheckinRepository, motoRepo repository.MotoRepository, userRepo repository.UserRepository) CheckinService {
	return &checkinService{repo: repo, motoRepo: motoRepo, userRepo: userRepo}
}

func (s *checkinService) GetAll(ctx context.Context) ([]models.Checkin, error) {
	return s.repo.GetAll(ctx)
}

func (s *checkinService) GetByID(ctx context.Context, id int) (*models.Checkin, error) {
	if id <= 0 {
		return nil, nil
	}
	return s.repo.GetByID(ctx, id)
}

func (s *checkinService) Create(ctx context.Context, checkin *models.Checkin) (*models.Checkin, error) {
	if checkin == nil {
		return nil, validationf("checkin is required")
	}
	if err := s.validateCheckin(ctx, checkin); err != nil {
		return nil, err
	}

	if checkin.Timestamp.IsZero() {
		checkin.Timestamp = time.Now()
	}

	checkin.ID = 0
	if err := s.repo.Add(ctx, checkin); err != nil {
		return nil, err
	}
	return checkin, nil
}

func (s *checkinService) Update(ctx context.Context, id int, checkin *models.Checkin) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return &NotFoundError{Entity: "checkin", ID: id}
	}

	if err := s.validateCheckin(ctx, checkin); err != nil {
		return err
	}

	existing.MotoID = checkin.MotoID
	existing.UserID = checkin.UserID
	existing.Status = checkin.Status
	existing.Observation = checkin.Observation
	existing.Timestamp = checkin.Timestamp
	existing.ImagesURL = checkin.ImagesURL
	return s.repo.Update(ctx, existing)
}

func (s *checkinService) Delete(ctx context.Context, id int) error {
	if id <= 0 {
		return validationf("invalid id")
	}
	checkin, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if checkin == nil {
		return &NotFoundError{Entity: "checkin", ID: id}
	}
	_, err = s.repo.Delete(ctx, id)
	return err
}

// validateCheckin runs field checks first, then the reference checks. A
// missing moto or user is reported as a validation failure, not a 404; only
// the checkin id itself maps to "not found".
func (s *checkinService) validateCheckin(ctx context.Context, checkin *models.Checkin) error {
	if checkin.MotoID <= 0 {
		return validationf("moto id is required and must be greater than zero")
	}
	if checkin.UserID <= 0 {
		return validationf("user id is required and must be greater than zero")
	}
	if strings.TrimSpace(checkin.Status) == "" {
		return validationf("status is required")
	}
	if !validStatus(checkin.Status) {
		return validationf("status must be 'S' or 'N'")
	}
	if strings.TrimSpace(checkin.Observation) == "" {
		return validationf("observation is required")
	}
	if strings.TrimSpace(checkin.ImagesURL) == "" {
		return validationf("images url is required")
	}

	motoExists, err := s.motoRepo.Exists(ctx, checkin.MotoID)
	if err != nil {
		return err
	}
	if !motoExists {
		return validationf("moto with id %d not found", checkin.MotoID)
	}

	userExists, err := s.userRepo.Exists(ctx, checkin.UserID)
	if err != nil {
		return err
	}
	if !userExists {
		return validationf("user with id %d not found", checkin.UserID)
	}
	return nil
}
