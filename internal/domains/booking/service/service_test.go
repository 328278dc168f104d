package service_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"testing"

	"lodge/config"
	kafkaMocks "lodge/infras/kafka/mocks"
	"lodge/infras/otel/mocks"
	"lodge/infras/paymongo"
	paymongoMocks "lodge/infras/paymongo/mocks"
	bookingMocks "lodge/internal/domains/booking/mocks"
	"lodge/internal/domains/booking/model"
	"lodge/internal/domains/booking/model/dto"
	"lodge/internal/domains/booking/service"
	paymentMocks "lodge/internal/domains/payment/mocks"
	paymentModel "lodge/internal/domains/payment/model"
	roomMocks "lodge/internal/domains/room/mocks"
	roomModel "lodge/internal/domains/room/model"
	cacheMocks "lodge/shared/cache/mocks"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/failure"
	gModel "lodge/shared/model"
	"lodge/shared/timezone"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	roomID    = "8f14e45f-ceea-467f-a8f8-2c1b5c4e5a11"
	bookingID = "0b7e6c1a-5d2f-4e3b-9a8c-1f2e3d4c5b6a"
)

type stubTransactor struct {
	calls int
}

func (s *stubTransactor) WithTransaction(_ context.Context, fn func(tx *sqlx.Tx) error) error {
	s.calls++

	return fn(nil)
}

type fixture struct {
	repo     *bookingMocks.MockBooking
	rooms    *roomMocks.MockRoom
	payments *paymentMocks.MockPayment
	gateway  *paymongoMocks.MockGateway
	kafka    *kafkaMocks.MockClient
	cache    *cacheMocks.MockRedisCache
	tx       *stubTransactor
	svc      service.Booking
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := fixture{
		repo:     bookingMocks.NewMockBooking(ctrl),
		rooms:    roomMocks.NewMockRoom(ctrl),
		payments: paymentMocks.NewMockPayment(ctrl),
		gateway:  paymongoMocks.NewMockGateway(ctrl),
		kafka:    kafkaMocks.NewMockClient(ctrl),
		cache:    cacheMocks.NewMockRedisCache(ctrl),
		tx:       &stubTransactor{},
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Booking.Currency = "PHP"
	cfg.Kafka.Topics.Booking = "booking-events"

	f.svc = service.New(f.repo, f.rooms, f.payments, f.tx, f.gateway, f.kafka, cfg, f.cache, mocks.NewOtel())

	f.kafka.EXPECT().SendMessages(gomock.Any(), "booking-events", gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return f
}

func deluxe() roomModel.Room {
	return roomModel.Room{
		ID:              roomID,
		Name:            "Deluxe",
		Capacity:        6,
		BasePrice12h:    1000,
		BasePrice24h:    1800,
		ExtraAdultPrice: 300,
		Active:          true,
	}
}

func nextWeek() string {
	return timezone.Now().AddDate(0, 0, 7).Format(constant.DateOnlyFormat)
}

func createRequest(method string) dto.CreateBookingRequest {
	return dto.CreateBookingRequest{
		RoomID:         roomID,
		GuestName:      "Juan Dela Cruz",
		GuestEmail:     "juan@example.com",
		CheckInDate:    nextWeek(),
		DurationHours:  12,
		NumberOfAdults: 3,
		ExtraAdults:    1,
		PaymentMethod:  method,
	}
}

func TestBookingService_Create_Cash(t *testing.T) {
	f := newFixture(t)

	var (
		inserted model.Booking
		payment  paymentModel.Payment
	)

	f.rooms.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(deluxe(), nil)
	f.repo.EXPECT().ExistTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
	f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, _ *sqlx.Tx, b model.Booking) error {
		inserted = b

		return nil
	})
	f.payments.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, _ *sqlx.Tx, p paymentModel.Payment) error {
		payment = p

		return nil
	})
	f.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, _ *sqlx.Tx, fields map[string]any, _ gDto.FilterGroup) error {
		assert.Equal(t, model.StatusConfirmed, fields[model.FieldStatus])

		return nil
	})

	res, err := f.svc.Create(context.Background(), createRequest(dto.PaymentMethodCash))
	require.NoError(t, err)

	assert.Equal(t, model.StatusDraft, inserted.Status)
	assert.InDelta(t, 1300.0, inserted.TotalAmount, 0.001)
	assert.Equal(t, constant.ContextGuest, inserted.CreatedBy)
	assert.Regexp(t, `^BK-\d{13}-[0-9A-Z]{4}$`, inserted.BookingReference)

	assert.Equal(t, inserted.ID, payment.BookingID)
	assert.Equal(t, paymentModel.MethodCashOnArrival, payment.PaymentMethod)
	assert.Equal(t, paymentModel.StatusPending, payment.Status)
	assert.InDelta(t, 1300.0, payment.Amount, 0.001)
	assert.Equal(t, "PHP", payment.Currency)
	assert.Nil(t, payment.PaymentReference)

	assert.Equal(t, string(model.StatusConfirmed), res.Status)
	assert.InDelta(t, 1300.0, res.TotalAmount, 0.001)
	assert.Equal(t, "Deluxe", res.Room.Name)
	require.Len(t, res.Payments, 1)
	assert.Equal(t, string(paymentModel.StatusPending), res.Payments[0].Status)
	assert.Nil(t, res.PaymentIntent)
	assert.Equal(t, 1, f.tx.calls)
}

func TestBookingService_Create_DefaultsToCash(t *testing.T) {
	f := newFixture(t)

	f.rooms.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(deluxe(), nil)
	f.repo.EXPECT().ExistTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
	f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.payments.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	req := createRequest("")
	req.DurationHours = 24
	req.ExtraAdults = 2

	res, err := f.svc.Create(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, string(model.StatusConfirmed), res.Status)
	assert.InDelta(t, 2400.0, res.TotalAmount, 0.001)
	assert.Equal(t, string(paymentModel.MethodCashOnArrival), res.Payments[0].PaymentMethod)
}

func TestBookingService_Create_Online(t *testing.T) {
	f := newFixture(t)

	var payment paymentModel.Payment

	f.gateway.EXPECT().Enabled().Return(true)
	f.rooms.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(deluxe(), nil)
	f.repo.EXPECT().ExistTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
	f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.gateway.EXPECT().CreatePaymentIntent(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, req paymongo.IntentRequest) (paymongo.Intent, error) {
		assert.InDelta(t, 1300.0, req.Amount, 0.001)
		assert.Equal(t, "PHP", req.Currency)
		assert.NotEmpty(t, req.Metadata[paymongo.MetadataBookingID])
		assert.NotEmpty(t, req.Metadata[paymongo.MetadataBookingReference])

		return paymongo.Intent{ID: "pi_123", ClientKey: "pi_123_client", Status: paymongo.StatusAwaitingPaymentMethod}, nil
	})
	f.payments.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, _ *sqlx.Tx, p paymentModel.Payment) error {
		payment = p

		return nil
	})
	f.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, _ *sqlx.Tx, fields map[string]any, _ gDto.FilterGroup) error {
		assert.Equal(t, model.StatusPendingPayment, fields[model.FieldStatus])

		return nil
	})

	res, err := f.svc.Create(context.Background(), createRequest(dto.PaymentMethodOnline))
	require.NoError(t, err)

	assert.Equal(t, paymentModel.MethodOnline, payment.PaymentMethod)
	require.NotNil(t, payment.PaymentReference)
	assert.Equal(t, "pi_123", *payment.PaymentReference)

	assert.Equal(t, string(model.StatusPendingPayment), res.Status)
	require.NotNil(t, res.PaymentIntent)
	assert.Equal(t, "pi_123_client", res.PaymentIntent.ClientKey)
	assert.Equal(t, "pi_123", res.Payments[0].PaymentReference)
}

func TestBookingService_Create_RollbackLogsIntent(t *testing.T) {
	prev := log.Logger
	t.Cleanup(func() { log.Logger = prev })

	var buf bytes.Buffer
	log.Logger = log.Output(&buf)

	f := newFixture(t)

	f.gateway.EXPECT().Enabled().Return(true)
	f.rooms.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(deluxe(), nil)
	f.repo.EXPECT().ExistTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
	f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.gateway.EXPECT().CreatePaymentIntent(gomock.Any(), gomock.Any()).Return(paymongo.Intent{ID: "pi_orphan", ClientKey: "pi_orphan_client"}, nil)
	f.payments.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("connection reset"))

	_, err := f.svc.Create(context.Background(), createRequest(dto.PaymentMethodOnline))
	require.Error(t, err)

	assert.Contains(t, buf.String(), `"intent_id":"pi_orphan"`)
	assert.NotContains(t, buf.String(), "pi_orphan_client")
}

func TestBookingService_Create_Failures(t *testing.T) {
	inactive := deluxe()
	inactive.Active = false

	tests := []struct {
		name      string
		req       func() dto.CreateBookingRequest
		setupMock func(f fixture)
		wantCode  int
		wantMsg   string
	}{
		{
			name: "online payment unavailable",
			req:  func() dto.CreateBookingRequest { return createRequest(dto.PaymentMethodOnline) },
			setupMock: func(f fixture) {
				f.gateway.EXPECT().Enabled().Return(false)
			},
			wantCode: http.StatusBadRequest,
			wantMsg:  "online payment is temporarily unavailable, please use cash",
		},
		{
			name: "malformed date",
			req: func() dto.CreateBookingRequest {
				req := createRequest(dto.PaymentMethodCash)
				req.CheckInDate = "01/02/2030"

				return req
			},
			setupMock: func(fixture) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "date in the past",
			req: func() dto.CreateBookingRequest {
				req := createRequest(dto.PaymentMethodCash)
				req.CheckInDate = timezone.Now().AddDate(0, 0, -1).Format(constant.DateOnlyFormat)

				return req
			},
			setupMock: func(fixture) {},
			wantCode:  http.StatusBadRequest,
			wantMsg:   "check_in_date must not be in the past",
		},
		{
			name: "unknown room",
			req:  func() dto.CreateBookingRequest { return createRequest(dto.PaymentMethodCash) },
			setupMock: func(f fixture) {
				f.rooms.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(roomModel.Room{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "inactive room",
			req:  func() dto.CreateBookingRequest { return createRequest(dto.PaymentMethodCash) },
			setupMock: func(f fixture) {
				f.rooms.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(inactive, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "party larger than room capacity",
			req: func() dto.CreateBookingRequest {
				req := createRequest(dto.PaymentMethodCash)
				req.NumberOfChildren = 2
				req.ExtraAdults = 2

				return req
			},
			setupMock: func(f fixture) {
				f.rooms.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(deluxe(), nil)
			},
			wantCode: http.StatusBadRequest,
			wantMsg:  "room Deluxe sleeps at most 6 guests, got 7",
		},
		{
			name: "unsupported duration",
			req: func() dto.CreateBookingRequest {
				req := createRequest(dto.PaymentMethodCash)
				req.DurationHours = 6

				return req
			},
			setupMock: func(f fixture) {
				f.rooms.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(deluxe(), nil)
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "date already taken",
			req:  func() dto.CreateBookingRequest { return createRequest(dto.PaymentMethodCash) },
			setupMock: func(f fixture) {
				f.rooms.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(deluxe(), nil)
				f.repo.EXPECT().ExistTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantCode: http.StatusConflict,
			wantMsg:  "room is not available for the selected date",
		},
		{
			name: "concurrent booking wins the index",
			req:  func() dto.CreateBookingRequest { return createRequest(dto.PaymentMethodCash) },
			setupMock: func(f fixture) {
				f.rooms.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(deluxe(), nil)
				f.repo.EXPECT().ExistTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
				f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				f.payments.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				f.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(&pq.Error{Code: constant.PqErrorCodeUniqueViolation, Constraint: model.ConstraintRoomDateActive})
			},
			wantCode: http.StatusConflict,
		},
		{
			name: "gateway failure persists nothing",
			req:  func() dto.CreateBookingRequest { return createRequest(dto.PaymentMethodOnline) },
			setupMock: func(f fixture) {
				f.gateway.EXPECT().Enabled().Return(true)
				f.rooms.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(deluxe(), nil)
				f.repo.EXPECT().ExistTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
				f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				f.gateway.EXPECT().CreatePaymentIntent(gomock.Any(), gomock.Any()).Return(paymongo.Intent{}, &paymongo.Error{Op: "create payment intent", Message: "gateway unavailable"})
			},
			wantCode: http.StatusInternalServerError,
		},
		{
			name: "repository error",
			req:  func() dto.CreateBookingRequest { return createRequest(dto.PaymentMethodCash) },
			setupMock: func(f fixture) {
				f.rooms.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(roomModel.Room{}, errors.New("connection reset"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			_, err := f.svc.Create(context.Background(), tt.req())
			require.Error(t, err)

			assert.Equal(t, tt.wantCode, failure.GetCode(err))

			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, err.Error())
			}
		})
	}
}

func TestBookingService_UpdateStatus(t *testing.T) {
	booking := func(status model.Status) model.Booking {
		return model.Booking{ID: bookingID, RoomID: roomID, Status: status, CheckInDate: gModel.NewDate(2030, 1, 2)}
	}

	tests := []struct {
		name       string
		status     string
		setupMock  func(f fixture)
		wantCode   int
		wantStatus string
	}{
		{
			name:      "invalid status",
			status:    "ARCHIVED",
			setupMock: func(fixture) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:   "not found",
			status: string(model.StatusCancelled),
			setupMock: func(f fixture) {
				f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name:   "terminal status cannot be reopened",
			status: string(model.StatusConfirmed),
			setupMock: func(f fixture) {
				f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(booking(model.StatusCancelled), nil)
			},
			wantCode: http.StatusConflict,
		},
		{
			name:   "same status is a no-op",
			status: string(model.StatusConfirmed),
			setupMock: func(f fixture) {
				f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(booking(model.StatusConfirmed), nil)
				f.payments.EXPECT().GetAllTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
			},
			wantStatus: string(model.StatusConfirmed),
		},
		{
			name:   "confirmed to completed",
			status: string(model.StatusCompleted),
			setupMock: func(f fixture) {
				f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(booking(model.StatusConfirmed), nil)
				f.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, _ *sqlx.Tx, fields map[string]any, _ gDto.FilterGroup) error {
					assert.Equal(t, model.StatusCompleted, fields[model.FieldStatus])
					assert.Equal(t, "admin-1", fields[constant.FieldModifiedBy])

					return nil
				})
				f.payments.EXPECT().GetAllTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]paymentModel.Payment{{ID: "p-1", BookingID: bookingID, Status: paymentModel.StatusPending}}, nil)
			},
			wantStatus: string(model.StatusCompleted),
		},
		{
			name:   "draft to pending payment checks the date again",
			status: string(model.StatusPendingPayment),
			setupMock: func(f fixture) {
				f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(booking(model.StatusDraft), nil)
				f.repo.EXPECT().ExistTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-1")
			res, err := f.svc.UpdateStatus(ctx, bookingID, dto.UpdateBookingStatusRequest{Status: tt.status})

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, res.Status)
			assert.Equal(t, "2030-01-02", res.CheckInDate)
		})
	}
}

func TestBookingService_SettlePayment(t *testing.T) {
	tests := []struct {
		name          string
		current       model.Status
		outcome       model.PaymentOutcome
		wantChanged   bool
		wantBooking   model.Status
		wantPayStatus paymentModel.Status
	}{
		{name: "succeeded confirms pending booking", current: model.StatusPendingPayment, outcome: model.PaymentSucceeded, wantChanged: true, wantBooking: model.StatusConfirmed, wantPayStatus: paymentModel.StatusCompleted},
		{name: "failed cancels pending booking", current: model.StatusPendingPayment, outcome: model.PaymentFailed, wantChanged: true, wantBooking: model.StatusCancelled, wantPayStatus: paymentModel.StatusFailed},
		{name: "succeeded twice is a no-op", current: model.StatusConfirmed, outcome: model.PaymentSucceeded},
		{name: "succeeded after completion is a no-op", current: model.StatusCompleted, outcome: model.PaymentSucceeded},
		{name: "succeeded on cancelled booking is ignored", current: model.StatusCancelled, outcome: model.PaymentSucceeded},
		{name: "failed twice is a no-op", current: model.StatusCancelled, outcome: model.PaymentFailed},
		{name: "failed on confirmed booking is ignored", current: model.StatusConfirmed, outcome: model.PaymentFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(model.Booking{ID: bookingID, Status: tt.current}, nil)

			if tt.wantChanged {
				f.payments.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, _ *sqlx.Tx, fields map[string]any, filter gDto.FilterGroup) error {
					assert.Equal(t, tt.wantPayStatus, fields[paymentModel.FieldStatus])
					assert.NotNil(t, fields[paymentModel.FieldProcessedAt])
					assert.Equal(t, "pay_1", fields[paymentModel.FieldTransactionID])

					where, args := filter.GetWhereClause()
					assert.Contains(t, where, "payments.status = :current_status")
					assert.Equal(t, paymentModel.StatusPending, args["current_status"])

					return nil
				})
				f.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, _ *sqlx.Tx, fields map[string]any, _ gDto.FilterGroup) error {
					assert.Equal(t, tt.wantBooking, fields[model.FieldStatus])
					assert.Equal(t, constant.ContextSystem, fields[constant.FieldModifiedBy])

					return nil
				})
			}

			changed, err := f.svc.SettlePayment(context.Background(), bookingID, tt.outcome, "pay_1")
			require.NoError(t, err)
			assert.Equal(t, tt.wantChanged, changed)
		})
	}
}

func TestBookingService_SettlePayment_NotFound(t *testing.T) {
	f := newFixture(t)
	f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)

	_, err := f.svc.SettlePayment(context.Background(), "missing", model.PaymentSucceeded, "")
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

func TestBookingService_Delete(t *testing.T) {
	t.Run("removes payments then booking", func(t *testing.T) {
		f := newFixture(t)

		gomock.InOrder(
			f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(model.Booking{ID: bookingID, Status: model.StatusConfirmed}, nil),
			f.payments.EXPECT().DeleteTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil),
			f.repo.EXPECT().DeleteTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil),
		)

		assert.NoError(t, f.svc.Delete(context.Background(), bookingID))
	})

	t.Run("not found", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)

		err := f.svc.Delete(context.Background(), bookingID)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("rolls back on failure", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(model.Booking{ID: bookingID}, nil)
		f.payments.EXPECT().DeleteTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.repo.EXPECT().DeleteTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("lock timeout"))

		err := f.svc.Delete(context.Background(), bookingID)
		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})
}

func TestBookingService_Availability(t *testing.T) {
	req := dto.AvailabilityRequest{RoomID: roomID, CheckInDate: "2030-01-02"}

	t.Run("free date", func(t *testing.T) {
		f := newFixture(t)
		f.rooms.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(deluxe(), nil)
		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, filter gDto.FilterGroup) (bool, error) {
			_, args := filter.GetWhereClause()
			assert.Equal(t, gModel.NewDate(2030, 1, 2), args[model.FieldCheckInDate])
			assert.Equal(t, string(model.StatusConfirmed), args["holding_status_0"])
			assert.Equal(t, string(model.StatusPendingPayment), args["holding_status_1"])

			return false, nil
		})

		res, err := f.svc.Availability(context.Background(), req)
		require.NoError(t, err)
		assert.True(t, res.Available)
		assert.Equal(t, "2030-01-02", res.CheckInDate)
	})

	t.Run("taken date", func(t *testing.T) {
		f := newFixture(t)
		f.rooms.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(deluxe(), nil)
		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

		res, err := f.svc.Availability(context.Background(), req)
		require.NoError(t, err)
		assert.False(t, res.Available)
	})

	t.Run("unknown room", func(t *testing.T) {
		f := newFixture(t)
		f.rooms.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(roomModel.Room{}, nil)

		_, err := f.svc.Availability(context.Background(), req)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestBookingService_GetAll(t *testing.T) {
	f := newFixture(t)

	f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss")).Times(2)
	f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(2, nil)
	f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.Booking, error) {
		assert.Equal(t, constant.FieldCreatedAt, params.SortBy)
		assert.Equal(t, gDto.SortDirDesc, params.SortDir)

		return []model.Booking{{ID: "b-2", RoomName: "Suite"}, {ID: bookingID, RoomName: "Deluxe"}}, nil
	})
	f.payments.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]paymentModel.Payment{
		{ID: "p-1", BookingID: bookingID, Status: paymentModel.StatusPending},
		{ID: "p-2", BookingID: "b-2", Status: paymentModel.StatusCompleted},
	}, nil)

	res, err := f.svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})
	require.NoError(t, err)

	require.Len(t, res.Bookings, 2)
	assert.Equal(t, "b-2", res.Bookings[0].ID)
	assert.Equal(t, "Suite", res.Bookings[0].Room.Name)
	require.Len(t, res.Bookings[0].Payments, 1)
	assert.Equal(t, "p-2", res.Bookings[0].Payments[0].ID)
	assert.Equal(t, "p-1", res.Bookings[1].Payments[0].ID)
}

func TestBookingService_Get(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		f := newFixture(t)
		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss"))
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)

		_, err := f.svc.Get(context.Background(), bookingID)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("with payments", func(t *testing.T) {
		f := newFixture(t)
		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss"))
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{ID: bookingID, Status: model.StatusConfirmed}, nil)
		f.payments.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]paymentModel.Payment{{ID: "p-1", BookingID: bookingID}}, nil)

		res, err := f.svc.Get(context.Background(), bookingID)
		require.NoError(t, err)
		assert.Len(t, res.Payments, 1)
	})
}

func TestBookingService_MalformedID(t *testing.T) {
	tests := []struct {
		name string
		call func(svc service.Booking) error
	}{
		{
			name: "get",
			call: func(svc service.Booking) error {
				_, err := svc.Get(context.Background(), "b-1")

				return err
			},
		},
		{
			name: "update status",
			call: func(svc service.Booking) error {
				_, err := svc.UpdateStatus(context.Background(), "b-1", dto.UpdateBookingStatusRequest{Status: string(model.StatusCancelled)})

				return err
			},
		},
		{
			name: "delete",
			call: func(svc service.Booking) error {
				return svc.Delete(context.Background(), "b-1")
			},
		},
		{
			name: "settle payment",
			call: func(svc service.Booking) error {
				_, err := svc.SettlePayment(context.Background(), "b-1", model.PaymentSucceeded, "pi_1")

				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			err := tt.call(f.svc)
			require.Error(t, err)
			assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
			assert.Equal(t, "booking not found", err.Error())
			assert.Zero(t, f.tx.calls)
		})
	}
}
