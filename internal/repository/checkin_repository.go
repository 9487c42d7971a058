package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"motoyard/internal/models"
)

// CheckinRepository is the persistence gateway for inspection check-ins.
type CheckinRepository interface {
	GetAll(ctx context.Context) ([]models.Checkin, error)
	GetByID(ctx context.Context, id int) (*models.Checkin, error)
	Add(ctx context.Context, checkin *models.Checkin) error
	Update(ctx context.Context, checkin *models.Checkin) error
	Delete(ctx context.Context, id int) (bool, error)
}

type checkinRepository struct {
	db *gorm.DB
}

func NewCheckinRepository(db *gorm.DB) CheckinRepository {
	return &checkinRepository{db: db}
}

func (r *checkinRepository) GetAll(ctx context.Context) ([]models.Checkin, error) {
	var checkins []models.Checkin
	if err := r.db.WithContext(ctx).Find(&checkins).Error; err != nil {
		return nil, err
	}
	return checkins, nil
}

func (r *checkinRepository) GetByID(ctx context.Context, id int) (*models.Checkin, error) {
	var checkin models.Checkin
	err := r.db.WithContext(ctx).First(&checkin, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &checkin, nil
}

func (r *checkinRepository) Add(ctx context.Context, checkin *models.Checkin) error {
	return r.db.WithContext(ctx).Create(checkin).Error
}

func (r *checkinRepository) Update(ctx context.Context, checkin *models.Checkin) error {
	return r.db.WithContext(ctx).Save(checkin).Error
}

func (r *checkinRepository) Delete(ctx context.Context, id int) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&models.Checkin{}, "id = ?", id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
