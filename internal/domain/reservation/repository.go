package reservation

import (
	"context"

	"github.com/sharebnb-gmm/pool-party-api/internal/models"
)

type Repository interface {
	// -------- Pool --------
	GetPool(
		ctx context.Context,
		id uint,
	) (*models.Pool, error)

	// -------- Reservation --------
	GetReservation(
		ctx context.Context,
		id uint,
	) (*models.Reservation, error)

	CreateReservation(
		ctx context.Context,
		res *models.Reservation,
	) error

	DeleteReservation(
		ctx context.Context,
		res *models.Reservation,
	) error

	// Both listings come back ordered by start_date descending.
	ListForPool(
		ctx context.Context,
		poolID uint,
	) ([]models.Reservation, error)

	ListForUser(
		ctx context.Context,
		username string,
	) ([]models.Reservation, error)
}
