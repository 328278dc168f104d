package booking_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"lodge/infras/otel/mocks"
	"lodge/internal/domains/booking/model/dto"
	serviceMocks "lodge/internal/domains/booking/service/mocks"
	"lodge/internal/handlers/booking"
	"lodge/shared/failure"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const roomID = "3f1c2a8e-6b1d-4c55-9a43-0d2b7f9e1a01"

func newRouter(t *testing.T) (*serviceMocks.MockBooking, http.Handler) {
	t.Helper()

	svc := serviceMocks.NewMockBooking(gomock.NewController(t))
	handler := booking.New(svc, mocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return svc, router
}

func TestCreateBooking(t *testing.T) {
	t.Run("rejects invalid body before the service", func(t *testing.T) {
		_, router := newRouter(t)

		req := httptest.NewRequest(http.MethodPost, "/bookings/", bytes.NewBufferString(`{"guest_name":"Ana"}`))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("maps conflict", func(t *testing.T) {
		svc, router := newRouter(t)
		svc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(dto.BookingResponse{}, failure.Conflict("room is not available for the selected date"))

		body := `{"room_id":"` + roomID + `","guest_name":"Ana","guest_email":"ana@example.com","guest_phone":"09171234567","check_in_date":"2099-01-01","duration_hours":12}`

		req := httptest.NewRequest(http.MethodPost, "/bookings/", bytes.NewBufferString(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.JSONEq(t, `{"error":"room is not available for the selected date"}`, rec.Body.String())
	})
}

func TestGetBookings(t *testing.T) {
	t.Run("rejects malformed filters before the service", func(t *testing.T) {
		for _, query := range []string{"room_id=r-1", "check_in_date=01-01-2099", "status=ARCHIVED"} {
			_, router := newRouter(t)

			req := httptest.NewRequest(http.MethodGet, "/bookings/?"+query, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code, query)
		}
	})

	t.Run("passes valid filters", func(t *testing.T) {
		svc, router := newRouter(t)
		svc.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(dto.GetBookingsResponse{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/bookings/?room_id="+roomID+"&status=CONFIRMED", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestCheckAvailability(t *testing.T) {
	t.Run("requires a valid date", func(t *testing.T) {
		_, router := newRouter(t)

		req := httptest.NewRequest(http.MethodGet, "/bookings/availability?room_id="+roomID+"&check_in_date=01-01-2099", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("returns availability in data", func(t *testing.T) {
		svc, router := newRouter(t)
		svc.EXPECT().Availability(gomock.Any(), dto.AvailabilityRequest{RoomID: roomID, CheckInDate: "2099-01-01"}).
			Return(dto.AvailabilityResponse{RoomID: roomID, CheckInDate: "2099-01-01", Available: true}, nil)

		req := httptest.NewRequest(http.MethodGet, "/bookings/availability?room_id="+roomID+"&check_in_date=2099-01-01", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Data dto.AvailabilityResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.True(t, body.Data.Available)
	})
}

func TestUpdateBookingStatus(t *testing.T) {
	t.Run("rejects unknown status", func(t *testing.T) {
		_, router := newRouter(t)

		req := httptest.NewRequest(http.MethodPatch, "/bookings/b-1", bytes.NewBufferString(`{"status":"ARCHIVED"}`))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("passes the path id", func(t *testing.T) {
		svc, router := newRouter(t)
		svc.EXPECT().UpdateStatus(gomock.Any(), "b-1", dto.UpdateBookingStatusRequest{Status: "CANCELLED"}).
			Return(dto.BookingResponse{ID: "b-1", Status: "CANCELLED"}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/bookings/b-1", bytes.NewBufferString(`{"status":"CANCELLED"}`))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestDeleteBooking(t *testing.T) {
	tests := []struct {
		name     string
		svcErr   error
		wantCode int
		wantBody string
	}{
		{name: "deleted", wantCode: http.StatusOK, wantBody: `{"success":true}`},
		{name: "not found", svcErr: failure.NotFound("booking not found"), wantCode: http.StatusNotFound, wantBody: `{"error":"booking not found"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, router := newRouter(t)
			svc.EXPECT().Delete(gomock.Any(), "b-1").Return(tt.svcErr)

			req := httptest.NewRequest(http.MethodDelete, "/bookings/b-1", nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}
