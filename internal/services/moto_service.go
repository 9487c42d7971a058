package services

import (
	"context"
	"strings"
	"time"

	"motoyard/internal/models"
	"motoyard/internal/repository"
)

// MotoService applies the moto business rules before touching the gateway.
type MotoService interface {
	GetAll(ctx context.Context) ([]models.Moto, error)
	GetByID(ctx context.Context, id int) (*models.Moto, error)
	Create(ctx context.Context, moto *models.Moto) (*models.Moto, error)
	Update(ctx context.Context, id int, moto *models.Moto) error
	Delete(ctx context.Context, id int) error
}

type motoService struct {
	repo repository.MotoRepository
}

func NewMotoService(repo repository.MotoRepository) MotoService {
	return &motoService{repo: repo}
}

func (s *motoService) GetAll(ctx context.Context) ([]models.Moto, error) {
	return s.repo.GetAll(ctx)
}

// GetByID short-circuits non-positive ids to "not found" without a lookup.
func (s *motoService) GetByID(ctx context.Context, id int) (*models.Moto, error) {
	if id <= 0 {
		return nil, nil
	}
	return s.repo.GetByID(ctx, id)
}

func (s *motoService) Create(ctx context.Context, moto *models.Moto) (*models.Moto, error) {
	if moto == nil {
		return nil, validationf("moto is required")
	}
	if err := validateMotoFields(moto); err != nil {
		return nil, err
	}

	plateTaken, err := s.repo.PlateExists(ctx, moto.Plate)
	if err != nil {
		return nil, err
	}
	if plateTaken {
		return nil, conflictf("a moto with plate %s is already registered", moto.Plate)
	}

	moto.ID = 0
	if err := s.repo.Add(ctx, moto); err != nil {
		if repository.IsDuplicate(err) {
			return nil, conflictf("a moto with plate %s is already registered", moto.Plate)
		}
		return nil, err
	}
	return moto, nil
}

func (s *motoService) Update(ctx context.Context, id int, moto *models.Moto) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return &NotFoundError{Entity: "moto", ID: id}
	}

	// Uniqueness is only re-checked when the plate actually changed, so a
	// moto never conflicts with itself.
	if existing.Plate != moto.Plate {
		plateTaken, err := s.repo.PlateExists(ctx, moto.Plate)
		if err != nil {
			return err
		}
		if plateTaken {
			return conflictf("a moto with plate %s is already registered", moto.Plate)
		}
	}

	if err := validateMotoFields(moto); err != nil {
		return err
	}

	existing.Model = moto.Model
	existing.Brand = moto.Brand
	existing.Plate = moto.Plate
	existing.Status = moto.Status
	existing.Year = moto.Year
	existing.PhotoURL = moto.PhotoURL

	if err := s.repo.Update(ctx, existing); err != nil {
		if repository.IsDuplicate(err) {
			return conflictf("a moto with plate %s is already registered", moto.Plate)
		}
		return err
	}
	return nil
}

func (s *motoService) Delete(ctx context.Context, id int) error {
	if id <= 0 {
		return validationf("invalid id")
	}
	moto, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if moto == nil {
		return &NotFoundError{Entity: "moto", ID: id}
	}
	_, err = s.repo.Delete(ctx, id)
	return err
}

func validateMotoFields(moto *models.Moto) error {
	if strings.TrimSpace(moto.Model) == "" {
		return validationf("model is required")
	}
	if strings.TrimSpace(moto.Brand) == "" {
		return validationf("brand is required")
	}
	if strings.TrimSpace(moto.Plate) == "" {
		return validationf("plate is required")
	}
	if !validStatus(moto.Status) {
		return validationf("status must be 'S' or 'N'")
	}
	if moto.Year < 1900 || moto.Year > time.Now().Year()+1 {
		return validationf("moto year is invalid")
	}
	if strings.TrimSpace(moto.PhotoURL) == "" {
		return validationf("photo url is required")
	}
	return nil
}
