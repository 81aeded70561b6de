package reservation

import (
	"context"

	"github.com/sharebnb-gmm/pool-party-api/internal/audit"
	domain "github.com/sharebnb-gmm/pool-party-api/internal/domain/reservation"
	"github.com/sharebnb-gmm/pool-party-api/internal/httperr"
)

type DeleteReservation struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteReservation(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteReservation {
	return &DeleteReservation{
		repo:  repo,
		audit: audit,
	}
}

func (uc *DeleteReservation) Execute(
	ctx context.Context,
	reservationID uint,
	caller string,
) error {

	res, err := uc.repo.GetReservation(ctx, reservationID)
	if err != nil {
		return httperr.ErrBusiness("reservation_not_found")
	}

	pool, err := uc.repo.GetPool(ctx, res.PoolID)
	if err != nil {
		return httperr.ErrBusiness("reservation_not_found")
	}

	if err := domain.CanDelete(res, pool, caller); err != nil {
		return err
	}

	if err := uc.repo.DeleteReservation(ctx, res); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		Username: caller,
		Action:   "reservation_deleted",
		Entity:   "reservation",
		EntityID: &res.ID,
		Metadata: map[string]any{
			"pool_id": res.PoolID,
			"booker":  res.BookedUsername,
		},
	})

	return nil
}
