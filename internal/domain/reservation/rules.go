package reservation

import (
	"time"

	"github.com/sharebnb-gmm/pool-party-api/internal/httperr"
	"github.com/sharebnb-gmm/pool-party-api/internal/models"
)

// ===============================
// Authorization rules
// ===============================

// A pool's booking calendar is visible to its owner only.
func CanViewPoolCalendar(pool *models.Pool, caller string) error {
	if pool.OwnerUsername != caller {
		return httperr.ErrBusiness("not_authorized")
	}
	return nil
}

// A user's own bookings are visible to that user only.
func CanViewUserBookings(username string, caller string) error {
	if username != caller {
		return httperr.ErrBusiness("not_authorized")
	}
	return nil
}

// A single reservation is visible to the booker or the pool owner.
func CanView(res *models.Reservation, pool *models.Pool, caller string) error {
	if res.BookedUsername == caller || pool.OwnerUsername == caller {
		return nil
	}
	return httperr.ErrBusiness("not_authorized")
}

// Deletion follows the same dual model as viewing: either side of the booking
// can call it off.
func CanDelete(res *models.Reservation, pool *models.Pool, caller string) error {
	return CanView(res, pool, caller)
}

// ===============================
// Date rules
// ===============================

func ValidateDates(start, end time.Time) error {
	if !start.Before(end) {
		return httperr.ErrBusiness("invalid_date_range")
	}
	return nil
}
