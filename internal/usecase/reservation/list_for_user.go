package reservation

import (
	"context"

	domain "github.com/sharebnb-gmm/pool-party-api/internal/domain/reservation"
	"github.com/sharebnb-gmm/pool-party-api/internal/models"
)

type ListReservationsForUser struct {
	repo domain.Repository
}

func NewListReservationsForUser(repo domain.Repository) *ListReservationsForUser {
	return &ListReservationsForUser{repo: repo}
}

func (uc *ListReservationsForUser) Execute(
	ctx context.Context,
	username string,
	caller string,
) ([]models.Reservation, error) {

	if err := domain.CanViewUserBookings(username, caller); err != nil {
		return nil, err
	}

	return uc.repo.ListForUser(ctx, username)
}
