package handlers_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sharebnb-gmm/pool-party-api/internal/models"
)

func TestCreateReservation(t *testing.T) {
	env := setupEnv(t)
	env.createUser(t, "alice")
	env.createUser(t, "bob")
	pool := env.createPool(t, "alice")

	w := env.doJSON(t, http.MethodPost, fmt.Sprintf("/api/reservations/%d", pool.ID),
		reservationBody("2030-07-01", "2030-07-03"), env.token(t, "bob"))

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	body := decodeBody(t, w)
	assert.Equal(t, "bob", body["booked_username"])
	assert.EqualValues(t, pool.ID, body["pool_id"])

	// The create is audited through the async dispatcher.
	assert.Eventually(t, func() bool {
		var count int64
		env.db.Model(&models.AuditLog{}).Where("action = ?", "reservation_created").Count(&count)
		return count == 1
	}, 2*time.Second, 10*time.Millisecond)
}

func TestCreateReservation_PoolMissing(t *testing.T) {
	env := setupEnv(t)
	env.createUser(t, "bob")

	w := env.doJSON(t, http.MethodPost, "/api/reservations/999",
		reservationBody("2030-07-01", "2030-07-03"), env.token(t, "bob"))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateReservation_InvalidRange(t *testing.T) {
	env := setupEnv(t)
	env.createUser(t, "alice")
	env.createUser(t, "bob")
	pool := env.createPool(t, "alice")

	w := env.doJSON(t, http.MethodPost, fmt.Sprintf("/api/reservations/%d", pool.ID),
		reservationBody("2030-07-03", "2030-07-01"), env.token(t, "bob"))

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	env.db.Model(&models.Reservation{}).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestCreateReservation_OverlapsAreAccepted(t *testing.T) {
	env := setupEnv(t)
	env.createUser(t, "alice")
	env.createUser(t, "bob")
	env.createUser(t, "carol")
	pool := env.createPool(t, "alice")

	path := fmt.Sprintf("/api/reservations/%d", pool.ID)

	w := env.doJSON(t, http.MethodPost, path, reservationBody("2030-07-01", "2030-07-05"), env.token(t, "bob"))
	require.Equal(t, http.StatusCreated, w.Code)

	// Same pool, intersecting range: current product behavior lets it through.
	w = env.doJSON(t, http.MethodPost, path, reservationBody("2030-07-03", "2030-07-07"), env.token(t, "carol"))
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestListForPool_OwnerOnly_Descending(t *testing.T) {
	env := setupEnv(t)
	env.createUser(t, "alice")
	env.createUser(t, "bob")
	pool := env.createPool(t, "alice")

	createPath := fmt.Sprintf("/api/reservations/%d", pool.ID)
	for _, r := range [][2]string{
		{"2030-07-01", "2030-07-02"},
		{"2030-07-10", "2030-07-12"},
		{"2030-07-05", "2030-07-06"},
	} {
		w := env.doJSON(t, http.MethodPost, createPath, reservationBody(r[0], r[1]), env.token(t, "bob"))
		require.Equal(t, http.StatusCreated, w.Code)
	}

	listPath := fmt.Sprintf("/api/pools/%d/reservations", pool.ID)

	w := env.doJSON(t, http.MethodGet, listPath, nil, env.token(t, "alice"))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	data := decodeBody(t, w)["data"].([]any)
	require.Len(t, data, 3)
	assert.Contains(t, data[0].(map[string]any)["start_date"], "2030-07-10", "newest start first")
	assert.Contains(t, data[1].(map[string]any)["start_date"], "2030-07-05")
	assert.Contains(t, data[2].(map[string]any)["start_date"], "2030-07-01")

	// The booker is not the owner; the calendar stays closed to them.
	w = env.doJSON(t, http.MethodGet, listPath, nil, env.token(t, "bob"))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestListOwnReservations(t *testing.T) {
	env := setupEnv(t)
	env.createUser(t, "alice")
	env.createUser(t, "bob")
	pool := env.createPool(t, "alice")

	w := env.doJSON(t, http.MethodPost, fmt.Sprintf("/api/reservations/%d", pool.ID),
		reservationBody("2030-07-01", "2030-07-03"), env.token(t, "bob"))
	require.Equal(t, http.StatusCreated, w.Code)

	w = env.doJSON(t, http.MethodGet, "/api/reservations", nil, env.token(t, "bob"))
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 1, jsonPath(t, w, "total"))

	w = env.doJSON(t, http.MethodGet, "/api/reservations", nil, env.token(t, "alice"))
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 0, jsonPath(t, w, "total"), "owner's pool bookings are not their own bookings")
}

// End to end: owner and booker can see and delete the booking, a third party
// can do neither.
func TestReservationVisibility_EndToEnd(t *testing.T) {
	env := setupEnv(t)
	env.createUser(t, "alice")
	env.createUser(t, "bob")
	env.createUser(t, "carol")
	pool := env.createPool(t, "alice")

	w := env.doJSON(t, http.MethodPost, fmt.Sprintf("/api/reservations/%d", pool.ID),
		reservationBody("2030-07-01", "2030-07-03"), env.token(t, "bob"))
	require.Equal(t, http.StatusCreated, w.Code)
	resID := decodeBody(t, w)["id"].(float64)

	path := fmt.Sprintf("/api/reservations/%d", int(resID))

	for _, allowed := range []string{"bob", "alice"} {
		w := env.doJSON(t, http.MethodGet, path, nil, env.token(t, allowed))
		assert.Equal(t, http.StatusOK, w.Code, allowed)
	}

	w = env.doJSON(t, http.MethodGet, path, nil, env.token(t, "carol"))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = env.doJSON(t, http.MethodDelete, path, nil, env.token(t, "carol"))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var count int64
	env.db.Model(&models.Reservation{}).Count(&count)
	assert.EqualValues(t, 1, count, "rejected delete leaves the row")

	w = env.doJSON(t, http.MethodDelete, path, nil, env.token(t, "alice"))
	require.Equal(t, http.StatusOK, w.Code, "pool owner can delete")

	env.db.Model(&models.Reservation{}).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestDeleteReservation_ByBooker(t *testing.T) {
	env := setupEnv(t)
	env.createUser(t, "alice")
	env.createUser(t, "bob")
	pool := env.createPool(t, "alice")

	w := env.doJSON(t, http.MethodPost, fmt.Sprintf("/api/reservations/%d", pool.ID),
		reservationBody("2030-07-01", "2030-07-03"), env.token(t, "bob"))
	require.Equal(t, http.StatusCreated, w.Code)
	resID := decodeBody(t, w)["id"].(float64)

	w = env.doJSON(t, http.MethodDelete, fmt.Sprintf("/api/reservations/%d", int(resID)), nil, env.token(t, "bob"))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetReservation_NotFound(t *testing.T) {
	env := setupEnv(t)
	env.createUser(t, "alice")

	w := env.doJSON(t, http.MethodGet, "/api/reservations/424242", nil, env.token(t, "alice"))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
