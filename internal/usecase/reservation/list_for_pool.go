package reservation

import (
	"context"

	domain "github.com/sharebnb-gmm/pool-party-api/internal/domain/reservation"
	"github.com/sharebnb-gmm/pool-party-api/internal/httperr"
	"github.com/sharebnb-gmm/pool-party-api/internal/models"
)

type ListReservationsForPool struct {
	repo domain.Repository
}

func NewListReservationsForPool(repo domain.Repository) *ListReservationsForPool {
	return &ListReservationsForPool{repo: repo}
}

func (uc *ListReservationsForPool) Execute(
	ctx context.Context,
	poolID uint,
	caller string,
) ([]models.Reservation, error) {

	pool, err := uc.repo.GetPool(ctx, poolID)
	if err != nil {
		return nil, httperr.ErrBusiness("pool_not_found")
	}

	if err := domain.CanViewPoolCalendar(pool, caller); err != nil {
		return nil, err
	}

	return uc.repo.ListForPool(ctx, poolID)
}
