package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/sharebnb-gmm/pool-party-api/internal/models"
)

type ReservationGormRepository struct {
	db *gorm.DB
}

func NewReservationGormRepository(db *gorm.DB) *ReservationGormRepository {
	return &ReservationGormRepository{db: db}
}

// --------------------------------------------------
// Pool
// --------------------------------------------------

func (r *ReservationGormRepository) GetPool(
	ctx context.Context,
	id uint,
) (*models.Pool, error) {

	var pool models.Pool
	if err := r.db.WithContext(ctx).First(&pool, id).Error; err != nil {
		return nil, err
	}
	return &pool, nil
}

// --------------------------------------------------
// Reservation
// --------------------------------------------------

func (r *ReservationGormRepository) GetReservation(
	ctx context.Context,
	id uint,
) (*models.Reservation, error) {

	var res models.Reservation
	if err := r.db.WithContext(ctx).First(&res, id).Error; err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *ReservationGormRepository) CreateReservation(
	ctx context.Context,
	res *models.Reservation,
) error {
	return r.db.WithContext(ctx).Create(res).Error
}

func (r *ReservationGormRepository) DeleteReservation(
	ctx context.Context,
	res *models.Reservation,
) error {
	return r.db.WithContext(ctx).Delete(res).Error
}

func (r *ReservationGormRepository) ListForPool(
	ctx context.Context,
	poolID uint,
) ([]models.Reservation, error) {

	var out []models.Reservation
	if err := r.db.WithContext(ctx).
		Where("pool_id = ?", poolID).
		Order("start_date DESC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ReservationGormRepository) ListForUser(
	ctx context.Context,
	username string,
) ([]models.Reservation, error) {

	var out []models.Reservation
	if err := r.db.WithContext(ctx).
		Where("booked_username = ?", username).
		Order("start_date DESC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
