package reservation

import (
	"context"

	domain "github.com/sharebnb-gmm/pool-party-api/internal/domain/reservation"
	"github.com/sharebnb-gmm/pool-party-api/internal/httperr"
	"github.com/sharebnb-gmm/pool-party-api/internal/models"
)

type GetReservation struct {
	repo domain.Repository
}

func NewGetReservation(repo domain.Repository) *GetReservation {
	return &GetReservation{repo: repo}
}

func (uc *GetReservation) Execute(
	ctx context.Context,
	reservationID uint,
	caller string,
) (*models.Reservation, error) {

	res, err := uc.repo.GetReservation(ctx, reservationID)
	if err != nil {
		return nil, httperr.ErrBusiness("reservation_not_found")
	}

	pool, err := uc.repo.GetPool(ctx, res.PoolID)
	if err != nil {
		return nil, httperr.ErrBusiness("reservation_not_found")
	}

	if err := domain.CanView(res, pool, caller); err != nil {
		return nil, err
	}

	return res, nil
}
