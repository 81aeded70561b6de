package reservation

import (
	"context"
	"time"

	"github.com/sharebnb-gmm/pool-party-api/internal/audit"
	domain "github.com/sharebnb-gmm/pool-party-api/internal/domain/reservation"
	"github.com/sharebnb-gmm/pool-party-api/internal/httperr"
	"github.com/sharebnb-gmm/pool-party-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateReservationInput struct {
	PoolID   uint
	BookedBy string

	StartDate time.Time
	EndDate   time.Time
}

// ======================================================
// USE CASE
// ======================================================

type CreateReservation struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateReservation(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateReservation {
	return &CreateReservation{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CreateReservation) Execute(
	ctx context.Context,
	in CreateReservationInput,
) (*models.Reservation, error) {

	if _, err := uc.repo.GetPool(ctx, in.PoolID); err != nil {
		return nil, httperr.ErrBusiness("pool_not_found")
	}

	if err := domain.ValidateDates(in.StartDate, in.EndDate); err != nil {
		return nil, err
	}

	// Overlapping ranges on the same pool are accepted.
	res := &models.Reservation{
		PoolID:         in.PoolID,
		BookedUsername: in.BookedBy,
		StartDate:      in.StartDate,
		EndDate:        in.EndDate,
	}

	if err := uc.repo.CreateReservation(ctx, res); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Username: in.BookedBy,
		Action:   "reservation_created",
		Entity:   "reservation",
		EntityID: &res.ID,
		Metadata: map[string]any{
			"pool_id":    in.PoolID,
			"start_date": in.StartDate,
			"end_date":   in.EndDate,
		},
	})

	return res, nil
}
