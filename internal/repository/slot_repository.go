package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"motoyard/internal/models"
)

// SlotRepository is the persistence gateway for parking slots.
type SlotRepository interface {
	GetAll(ctx context.Context) ([]models.Slot, error)
	GetByID(ctx context.Context, id int) (*models.Slot, error)
	Add(ctx context.Context, slot *models.Slot) error
	Update(ctx context.Context, slot *models.Slot) error
	Delete(ctx context.Context, id int) (bool, error)
	// MotoInSlot reports whether any slot already references the moto.
	MotoInSlot(ctx context.Context, motoID int) (bool, error)
	// MotoInOtherSlot is the update-time variant: it ignores excludeSlotID so
	// a slot can keep the moto it already holds.
	MotoInOtherSlot(ctx context.Context, motoID, excludeSlotID int) (bool, error)
}

type slotRepository struct {
	db *gorm.DB
}

func NewSlotRepository(db *gorm.DB) SlotRepository {
	return &slotRepository{db: db}
}

func (r *slotRepository) GetAll(ctx context.Context) ([]models.Slot, error) {
	var slots []models.Slot
	if err := r.db.WithContext(ctx).Find(&slots).Error; err != nil {
		return nil, err
	}
	return slots, nil
}

func (r *slotRepository) GetByID(ctx context.Context, id int) (*models.Slot, error) {
	var slot models.Slot
	err := r.db.WithContext(ctx).First(&slot, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &slot, nil
}

func (r *slotRepository) Add(ctx context.Context, slot *models.Slot) error {
	return r.db.WithContext(ctx).Create(slot).Error
}

func (r *slotRepository) Update(ctx context.Context, slot *models.Slot) error {
	return r.db.WithContext(ctx).Save(slot).Error
}

func (r *slotRepository) Delete(ctx context.Context, id int) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&models.Slot{}, "id = ?", id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *slotRepository) MotoInSlot(ctx context.Context, motoID int) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Slot{}).Where("moto_id = ?", motoID).Count(&count).Error
	return count > 0, err
}

func (r *slotRepository) MotoInOtherSlot(ctx context.Context, motoID, excludeSlotID int) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Slot{}).
		Where("moto_id = ? AND id <> ?", motoID, excludeSlotID).
		Count(&count).Error
	return count > 0, err
}
