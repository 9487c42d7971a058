package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"motoyard/internal/models"
)

// MotoRepository is the persistence gateway for motos.
type MotoRepository interface {
	GetAll(ctx context.Context) ([]models.Moto, error)
	GetByID(ctx context.Context, id int) (*models.Moto, error)
	Add(ctx context.Context, moto *models.Moto) error
	Update(ctx context.Context, moto *models.Moto) error
	Delete(ctx context.Context, id int) (bool, error)
	Exists(ctx context.Context, id int) (bool, error)
	PlateExists(ctx context.Context, plate string) (bool, error)
}

type motoRepository struct {
	db *gorm.DB
}

func NewMotoRepository(db *gorm.DB) MotoRepository {
	return &motoRepository{db: db}
}

func (r *motoRepository) GetAll(ctx context.Context) ([]models.Moto, error) {
	var motos []models.Moto
	if err := r.db.WithContext(ctx).Find(&motos).Error; err != nil {
		return nil, err
	}
	return motos, nil
}

func (r *motoRepository) GetByID(ctx context.Context, id int) (*models.Moto, error) {
	var moto models.Moto
	err := r.db.WithContext(ctx).First(&moto, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &moto, nil
}

func (r *motoRepository) Add(ctx context.Context, moto *models.Moto) error {
	return r.db.WithContext(ctx).Create(moto).Error
}

func (r *motoRepository) Update(ctx context.Context, moto *models.Moto) error {
	return r.db.WithContext(ctx).Save(moto).Error
}

func (r *motoRepository) Delete(ctx context.Context, id int) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&models.Moto{}, "id = ?", id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *motoRepository) Exists(ctx context.Context, id int) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Moto{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *motoRepository) PlateExists(ctx context.Context, plate string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Moto{}).Where("plate = ?", plate).Count(&count).Error
	return count > 0, err
}
