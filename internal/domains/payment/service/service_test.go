package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"lodge/config"
	"lodge/infras/otel/mocks"
	"lodge/infras/paymongo"
	paymongoMocks "lodge/infras/paymongo/mocks"
	bookingModel "lodge/internal/domains/booking/model"
	bookingMocks "lodge/internal/domains/booking/service/mocks"
	"lodge/internal/domains/payment/model/dto"
	"lodge/internal/domains/payment/service"
	cacheMocks "lodge/shared/cache/mocks"
	"lodge/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	bookingID      = "0b7e6c1a-5d2f-4e3b-9a8c-1f2e3d4c5b6a"
	succeededEvent = `{"id":"evt_1","type":"payment_intent.succeeded","data":{"id":"pi_1","metadata":{"booking_id":"` + bookingID + `"}}}`
)

type fixture struct {
	gateway *paymongoMocks.MockGateway
	booking *bookingMocks.MockBooking
	cache   *cacheMocks.MockRedisCache
	svc     service.Payment
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := fixture{
		gateway: paymongoMocks.NewMockGateway(ctrl),
		booking: bookingMocks.NewMockBooking(ctrl),
		cache:   cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Booking.Currency = "PHP"
	cfg.Booking.SettleMaxAttempts = 3

	f.svc = service.New(f.gateway, f.booking, cfg, f.cache, mocks.NewOtel())

	return f
}

func TestPaymentService_CreateIntent(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.CreateIntentRequest
		setupMock func(f fixture)
		wantCode  int
	}{
		{
			name:      "non-positive amount",
			req:       dto.CreateIntentRequest{Amount: 0},
			setupMock: func(fixture) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "gateway disabled",
			req:  dto.CreateIntentRequest{Amount: 100},
			setupMock: func(f fixture) {
				f.gateway.EXPECT().Enabled().Return(false)
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "gateway failure",
			req:  dto.CreateIntentRequest{Amount: 100},
			setupMock: func(f fixture) {
				f.gateway.EXPECT().Enabled().Return(true)
				f.gateway.EXPECT().CreatePaymentIntent(gomock.Any(), gomock.Any()).Return(paymongo.Intent{}, &paymongo.Error{Op: "create payment intent", StatusCode: http.StatusBadGateway, Message: "Bad Gateway"})
			},
			wantCode: http.StatusInternalServerError,
		},
		{
			name: "success defaults currency",
			req:  dto.CreateIntentRequest{Amount: 1300, Description: "Booking BK-1"},
			setupMock: func(f fixture) {
				f.gateway.EXPECT().Enabled().Return(true)
				f.gateway.EXPECT().CreatePaymentIntent(gomock.Any(), paymongo.IntentRequest{Amount: 1300, Currency: "PHP", Description: "Booking BK-1"}).
					Return(paymongo.Intent{ID: "pi_1", Amount: 1300, Currency: "PHP", Status: paymongo.StatusAwaitingPaymentMethod, ClientKey: "pi_1_client"}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.svc.CreateIntent(context.Background(), tt.req)

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "pi_1", res.ID)
			assert.Equal(t, "pi_1_client", res.ClientKey)
			assert.InDelta(t, 1300.0, res.Amount, 0.001)
		})
	}
}

func TestPaymentService_GetIntent(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		f := newFixture(t)
		f.gateway.EXPECT().Enabled().Return(true)
		f.gateway.EXPECT().GetPaymentIntent(gomock.Any(), "pi_x").Return(paymongo.Intent{}, &paymongo.Error{StatusCode: http.StatusNotFound, Message: "Not Found"})

		_, err := f.svc.GetIntent(context.Background(), "pi_x")
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("found", func(t *testing.T) {
		f := newFixture(t)
		f.gateway.EXPECT().Enabled().Return(true)
		f.gateway.EXPECT().GetPaymentIntent(gomock.Any(), "pi_1").Return(paymongo.Intent{ID: "pi_1", Status: paymongo.StatusSucceeded}, nil)

		res, err := f.svc.GetIntent(context.Background(), "pi_1")
		require.NoError(t, err)
		assert.Equal(t, paymongo.StatusSucceeded, res.Status)
	})
}

func TestPaymentService_AttachMethod(t *testing.T) {
	f := newFixture(t)
	f.gateway.EXPECT().Enabled().Return(true)
	f.gateway.EXPECT().AttachPaymentMethod(gomock.Any(), "pi_1", paymongo.AttachRequest{PaymentMethod: "pm_1", ClientKey: "pi_1_client"}).
		Return(paymongo.Intent{ID: "pi_1", Status: paymongo.StatusAwaitingNextAction, NextAction: map[string]any{"type": "redirect"}}, nil)

	res, err := f.svc.AttachMethod(context.Background(), "pi_1", dto.AttachMethodRequest{PaymentMethod: "pm_1", ClientKey: "pi_1_client"})
	require.NoError(t, err)
	assert.Equal(t, "redirect", res.NextAction["type"])
}

func TestPaymentService_HandleWebhook_Signature(t *testing.T) {
	tests := []struct {
		name     string
		verify   error
		wantCode int
	}{
		{name: "missing", verify: paymongo.ErrMissingSignature, wantCode: http.StatusBadRequest},
		{name: "invalid", verify: paymongo.ErrInvalidSignature, wantCode: http.StatusUnauthorized},
		{name: "expired", verify: paymongo.ErrSignatureExpired, wantCode: http.StatusUnauthorized},
		{name: "not configured", verify: paymongo.ErrNotConfigured, wantCode: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.gateway.EXPECT().VerifyWebhookSignature(gomock.Any(), gomock.Any()).Return(tt.verify)

			err := f.svc.HandleWebhook(context.Background(), []byte(succeededEvent), "t=1,te=abc")
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, failure.GetCode(err))
		})
	}
}

func TestPaymentService_HandleWebhook(t *testing.T) {
	tests := []struct {
		name      string
		payload   string
		setupMock func(f fixture)
	}{
		{
			name:    "succeeded settles booking",
			payload: succeededEvent,
			setupMock: func(f fixture) {
				f.cache.EXPECT().SetIfAbsent(gomock.Any(), "payment:webhook:evt_1", bookingID, 86400).Return(true, nil)
				f.booking.EXPECT().SettlePayment(gomock.Any(), bookingID, bookingModel.PaymentSucceeded, "pi_1").Return(true, nil)
			},
		},
		{
			name:    "failed cancels booking",
			payload: `{"id":"evt_2","type":"payment_intent.payment_failed","data":{"id":"pi_1","metadata":{"booking_id":"0b7e6c1a-5d2f-4e3b-9a8c-1f2e3d4c5b6a"}}}`,
			setupMock: func(f fixture) {
				f.cache.EXPECT().SetIfAbsent(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
				f.booking.EXPECT().SettlePayment(gomock.Any(), bookingID, bookingModel.PaymentFailed, "pi_1").Return(true, nil)
			},
		},
		{
			name:    "duplicate delivery skipped",
			payload: succeededEvent,
			setupMock: func(f fixture) {
				f.cache.EXPECT().SetIfAbsent(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
			},
		},
		{
			name:    "dedupe outage still settles",
			payload: succeededEvent,
			setupMock: func(f fixture) {
				f.cache.EXPECT().SetIfAbsent(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(false, errors.New("redis down"))
				f.booking.EXPECT().SettlePayment(gomock.Any(), bookingID, bookingModel.PaymentSucceeded, "pi_1").Return(false, nil)
			},
		},
		{
			name:      "missing booking id",
			payload:   `{"id":"evt_3","type":"payment_intent.succeeded","data":{"id":"pi_1","metadata":{}}}`,
			setupMock: func(fixture) {},
		},
		{
			name:      "unknown event type",
			payload:   `{"id":"evt_4","type":"source.chargeable","data":{"id":"src_1","metadata":{"booking_id":"0b7e6c1a-5d2f-4e3b-9a8c-1f2e3d4c5b6a"}}}`,
			setupMock: func(fixture) {},
		},
		{
			name:      "malformed payload",
			payload:   `not json`,
			setupMock: func(fixture) {},
		},
		{
			name:    "transient failure is retried",
			payload: succeededEvent,
			setupMock: func(f fixture) {
				f.cache.EXPECT().SetIfAbsent(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
				gomock.InOrder(
					f.booking.EXPECT().SettlePayment(gomock.Any(), bookingID, bookingModel.PaymentSucceeded, "pi_1").Return(false, errors.New("deadlock detected")),
					f.booking.EXPECT().SettlePayment(gomock.Any(), bookingID, bookingModel.PaymentSucceeded, "pi_1").Return(true, nil),
				)
			},
		},
		{
			name:    "exhausted retries release the marker",
			payload: succeededEvent,
			setupMock: func(f fixture) {
				f.cache.EXPECT().SetIfAbsent(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
				f.booking.EXPECT().SettlePayment(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(false, errors.New("connection refused")).Times(3)
				f.cache.EXPECT().Delete(gomock.Any(), "payment:webhook:evt_1").Return(nil)
			},
		},
		{
			name:    "unknown booking is not retried and keeps the marker",
			payload: succeededEvent,
			setupMock: func(f fixture) {
				f.cache.EXPECT().SetIfAbsent(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
				f.booking.EXPECT().SettlePayment(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(false, failure.NotFound("booking not found"))
			},
		},
		{
			name:      "malformed booking id is ignored",
			payload:   `{"id":"evt_5","type":"payment_intent.succeeded","data":{"id":"pi_1","metadata":{"booking_id":"b-1"}}}`,
			setupMock: func(fixture) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.gateway.EXPECT().VerifyWebhookSignature([]byte(tt.payload), "t=1,te=abc").Return(nil)
			tt.setupMock(f)

			assert.NoError(t, f.svc.HandleWebhook(context.Background(), []byte(tt.payload), "t=1,te=abc"))
		})
	}
}
