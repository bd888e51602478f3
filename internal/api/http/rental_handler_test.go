package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"alugacar-backend/internal/domain"
	"alugacar-backend/internal/service"
)

func rentalRouter(pickups service.PickupService, returns service.ReturnService) *mux.Router {
	h := NewRentalHandler(pickups, returns)
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/rentals", h.Pickup).Methods("POST")
	r.HandleFunc("/api/v1/rentals/{code}", h.Get).Methods("GET")
	r.HandleFunc("/api/v1/rentals/{code}/return", h.Return).Methods("POST")
	return r
}

func TestRentalHandler_Pickup(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		pickups := new(MockPickupService)
		contract := &service.RentalContract{
			RentalCode:      "rent-1",
			ReservationCode: "res-1",
			Plate:           "ABC1D23",
			Status:          domain.RentalStatusActive,
		}
		pickups.On("ProcessPickup", mock.Anything, mock.AnythingOfType("service.PickupCommand")).
			Return(contract, nil)

		body, _ := json.Marshal(service.PickupCommand{
			ReservationCode: "res-1",
			Plate:           "ABC1D23",
			ValidDocuments:  true,
			OdometerKM:      42000,
			FuelLevel:       domain.FuelLevelFull,
		})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/rentals", bytes.NewReader(body))
		rec := httptest.NewRecorder()
		rentalRouter(pickups, nil).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		var got service.RentalContract
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, "rent-1", got.RentalCode)
	})

	t.Run("invalid documents map to forbidden", func(t *testing.T) {
		pickups := new(MockPickupService)
		pickups.On("ProcessPickup", mock.Anything, mock.Anything).
			Return(nil, domain.ErrInvalidCredentials)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/rentals", bytes.NewReader([]byte(`{}`)))
		rec := httptest.NewRecorder()
		rentalRouter(pickups, nil).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("category mismatch maps to conflict", func(t *testing.T) {
		pickups := new(MockPickupService)
		pickups.On("ProcessPickup", mock.Anything, mock.Anything).
			Return(nil, domain.ErrCategoryMismatch)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/rentals", bytes.NewReader([]byte(`{}`)))
		rec := httptest.NewRecorder()
		rentalRouter(pickups, nil).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestRentalHandler_Return(t *testing.T) {
	t.Run("billing is returned", func(t *testing.T) {
		returns := new(MockReturnService)
		billing := &domain.Billing{TotalCents: 30000, DailyChargesCents: 30000}
		returns.On("ProcessReturn", mock.Anything, mock.MatchedBy(func(cmd service.ReturnCommand) bool {
			return cmd.RentalCode == "rent-1" && !cmd.ReturnedAt.IsZero()
		})).Return(billing, nil)

		body, _ := json.Marshal(service.ReturnCommand{
			OdometerKM:     42500,
			FuelLevel:      domain.FuelLevelFull,
			ReturnedAt:     time.Date(2026, 7, 5, 9, 0, 0, 0, time.UTC),
			DaysUsed:       3,
			LateFeePercent: 0.1,
		})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/rentals/rent-1/return", bytes.NewReader(body))
		rec := httptest.NewRecorder()
		rentalRouter(nil, returns).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		var got domain.Billing
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, int64(30000), got.TotalCents)
	})

	t.Run("double return maps to conflict", func(t *testing.T) {
		returns := new(MockReturnService)
		returns.On("ProcessReturn", mock.Anything, mock.Anything).
			Return(nil, domain.ErrRentalAlreadyFinished)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/rentals/rent-1/return", bytes.NewReader([]byte(`{}`)))
		rec := httptest.NewRecorder()
		rentalRouter(nil, returns).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}
