package dto

import "time"

type ReservationListDTO struct {
	ID             uint      `json:"id"`
	PoolID         uint      `json:"pool_id"`
	BookedUsername string    `json:"booked_username"`
	StartDate      time.Time `json:"start_date"`
	EndDate        time.Time `json:"end_date"`
}
