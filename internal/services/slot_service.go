package services

import (
	"context"

	"motoyard/internal/models"
	"motoyard/internal/repository"
)

// SlotService enforces the one-moto-per-slot invariant.
type SlotService interface {
	GetAll(ctx context.Context) ([]models.Slot, error)
	GetByID(ctx context.Context, id int) (*models.Slot, error)
	Create(ctx context.Context, slot *models.Slot) (*models.Slot, error)
	Update(ctx context.Context, id int, slot *models.Slot) error
	Delete(ctx context.Context, id int) error
}

type slotService struct {
	repo     repository.SlotRepository
	motoRepo repository.MotoRepository
}

func NewSlotService(repo repository.SlotRepository, motoRepo repository.MotoRepository) SlotService {
	return &slotService{repo: repo, motoRepo: motoRepo}
}

func (s *slotService) GetAll(ctx context.Context) ([]models.Slot, error) {
	return s.repo.GetAll(ctx)
}

func (s *slotService) GetByID(ctx context.Context, id int) (*models.Slot, error) {
	if id <= 0 {
		return nil, nil
	}
	return s.repo.GetByID(ctx, id)
}

// Create checks occupancy before moto existence: a moto already parked
// elsewhere is a conflict regardless of the other field values.
func (s *slotService) Create(ctx context.Context, slot *models.Slot) (*models.Slot, error) {
	if slot == nil {
		return nil, validationf("slot is required")
	}

	occupied, err := s.repo.MotoInSlot(ctx, slot.MotoID)
	if err != nil {
		return nil, err
	}
	if occupied {
		return nil, conflictf("moto is already in another slot")
	}

	motoExists, err := s.motoRepo.Exists(ctx, slot.MotoID)
	if err != nil {
		return nil, err
	}
	if !motoExists {
		return nil, validationf("moto with id %d not found", slot.MotoID)
	}

	if !validStatus(slot.Status) {
		return nil, validationf("status must be 'S' or 'N'")
	}

	slot.ID = 0
	if err := s.repo.Add(ctx, slot); err != nil {
		return nil, err
	}
	return slot, nil
}

func (s *slotService) Update(ctx context.Context, id int, slot *models.Slot) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return &NotFoundError{Entity: "slot", ID: id}
	}

	// Only re-check occupancy when the moto changed; the scan excludes this
	// slot so keeping the current moto is always allowed.
	if existing.MotoID != slot.MotoID {
		occupied, err := s.repo.MotoInOtherSlot(ctx, slot.MotoID, id)
		if err != nil {
			return err
		}
		if occupied {
			return conflictf("moto is already in another slot")
		}
	}

	motoExists, err := s.motoRepo.Exists(ctx, slot.MotoID)
	if err != nil {
		return err
	}
	if !motoExists {
		return validationf("moto with id %d not found", slot.MotoID)
	}

	if !validStatus(slot.Status) {
		return validationf("status must be 'S' or 'N'")
	}

	existing.MotoID = slot.MotoID
	existing.Status = slot.Status
	return s.repo.Update(ctx, existing)
}

func (s *slotService) Delete(ctx context.Context, id int) error {
	if id <= 0 {
		return validationf("invalid id")
	}
	slot, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if slot == nil {
		return &NotFoundError{Entity: "slot", ID: id}
	}
	_, err = s.repo.Delete(ctx, id)
	return err
}
