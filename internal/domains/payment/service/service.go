package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"lodge/config"
	"lodge/infras/otel"
	"lodge/infras/paymongo"
	bookingModel "lodge/internal/domains/booking/model"
	bookingService "lodge/internal/domains/booking/service"
	"lodge/internal/domains/payment/model/dto"
	"lodge/shared"
	"lodge/shared/cache"
	"lodge/shared/constant"
	"lodge/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheWebhookEvent = "payment:webhook"

	defaultCurrency       = "PHP"
	defaultMaxAttempts    = 3
	defaultDedupeDuration = 86400
)

const (
	errGatewayUnavailable = "online payment is temporarily unavailable"
	errCreateIntent       = "failed to create payment intent, please try again"
	errGetIntent          = "failed to get payment intent"
	errAttachMethod       = "failed to attach payment method"
	errInvalidSignature   = "invalid webhook signature"
)

type Payment interface {
	CreateIntent(ctx context.Context, req dto.CreateIntentRequest) (dto.IntentResponse, error)
	GetIntent(ctx context.Context, id string) (dto.IntentResponse, error)
	AttachMethod(ctx context.Context, id string, req dto.AttachMethodRequest) (dto.IntentResponse, error)
	HandleWebhook(ctx context.Context, payload []byte, signature string) error
}

type serviceImpl struct {
	gateway paymongo.Gateway
	booking bookingService.Booking
	cfg     *config.Config
	cache   cache.RedisCache
	otel    otel.Otel
}

func New(gateway paymongo.Gateway, booking bookingService.Booking, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Payment {
	return &serviceImpl{
		gateway: gateway,
		booking: booking,
		cfg:     cfg,
		cache:   cache,
		otel:    otel,
	}
}

func (s *serviceImpl) CreateIntent(ctx context.Context, req dto.CreateIntentRequest) (res dto.IntentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".payment.CreateIntent")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.Amount <= 0 {
		return res, failure.BadRequestFromString("amount must be greater than zero") // nolint:wrapcheck
	}

	if !s.gateway.Enabled() {
		return res, failure.BadRequestFromString(errGatewayUnavailable) // nolint:wrapcheck
	}

	intent, err := s.gateway.CreatePaymentIntent(ctx, req.ToGateway(s.currency()))
	if err != nil {
		log.Error().Err(err).Msg("failed to create payment intent")

		return res, failure.InternalError(errors.New(errCreateIntent)) // nolint:wrapcheck
	}

	res.FromGateway(intent)

	return res, nil
}

func (s *serviceImpl) GetIntent(ctx context.Context, id string) (res dto.IntentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".payment.GetIntent")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !s.gateway.Enabled() {
		return res, failure.BadRequestFromString(errGatewayUnavailable) // nolint:wrapcheck
	}

	intent, err := s.gateway.GetPaymentIntent(ctx, id)
	if err != nil {
		return res, gatewayFailure(err, "payment intent not found", errGetIntent)
	}

	res.FromGateway(intent)

	return res, nil
}

func (s *serviceImpl) AttachMethod(ctx context.Context, id string, req dto.AttachMethodRequest) (res dto.IntentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".payment.AttachMethod")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !s.gateway.Enabled() {
		return res, failure.BadRequestFromString(errGatewayUnavailable) // nolint:wrapcheck
	}

	intent, err := s.gateway.AttachPaymentMethod(ctx, id, req.ToGateway())
	if err != nil {
		return res, gatewayFailure(err, "payment intent not found", errAttachMethod)
	}

	res.FromGateway(intent)

	return res, nil
}

// HandleWebhook verifies and applies a gateway event. Only signature problems are
// returned; anything that goes wrong after verification is logged so the gateway
// still receives an acknowledgement.
func (s *serviceImpl) HandleWebhook(ctx context.Context, payload []byte, signature string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".payment.HandleWebhook")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.gateway.VerifyWebhookSignature(payload, signature); err != nil {
		switch {
		case errors.Is(err, paymongo.ErrMissingSignature):
			return failure.BadRequestFromString(paymongo.ErrMissingSignature.Error()) // nolint:wrapcheck
		case errors.Is(err, paymongo.ErrNotConfigured):
			log.Error().Msg("webhook received but the webhook secret is not configured")
		default:
			log.Warn().Err(err).Msg("rejected webhook")
		}

		return failure.Unauthorized(errInvalidSignature) // nolint:wrapcheck
	}

	event, err := paymongo.ParseEvent(payload)
	if err != nil {
		log.Warn().Err(err).Msg("failed to parse webhook event")

		return nil
	}

	outcome, ok := outcomeOf(event.Type)
	if !ok {
		log.Info().Str("event_id", event.ID).Str("type", event.Type).Msg("ignoring webhook event")

		return nil
	}

	bookingID := event.BookingID()
	if bookingID == constant.Empty {
		log.Warn().Str("event_id", event.ID).Str("type", event.Type).Msg("webhook event has no booking_id")

		return nil
	}

	if !shared.IsValidID(bookingID) {
		log.Warn().Str("event_id", event.ID).Str("booking_id", bookingID).Msg("webhook event has a malformed booking_id")

		return nil
	}

	marker := shared.BuildCacheKey(cacheWebhookEvent, event.ID)

	if event.ID != constant.Empty {
		first, err := s.cache.SetIfAbsent(ctx, marker, bookingID, s.dedupeDuration())
		if err != nil {
			log.Warn().Err(err).Str("event_id", event.ID).Msg("webhook dedupe unavailable, processing anyway")
		} else if !first {
			log.Info().Str("event_id", event.ID).Msg("duplicate webhook event, skipping")

			return nil
		}
	}

	if err := s.settle(ctx, bookingID, outcome, event.ResourceID); err != nil {
		log.Error().Err(err).Str("event_id", event.ID).Str("booking_id", bookingID).Msg("failed to apply webhook event")

		// Client errors are final; keeping the marker stops redeliveries of the same event.
		if event.ID != constant.Empty && failure.GetCode(err) >= http.StatusInternalServerError {
			if err := s.cache.Delete(context.WithoutCancel(ctx), marker); err != nil {
				log.Error().Err(err).Str("event_id", event.ID).Msg("failed to release webhook marker")
			}
		}
	}

	return nil
}

// settle retries transient failures; client errors such as a missing booking are final.
func (s *serviceImpl) settle(ctx context.Context, bookingID string, outcome bookingModel.PaymentOutcome, transactionID string) error {
	attempts := s.cfg.Booking.SettleMaxAttempts
	if attempts <= 0 {
		attempts = defaultMaxAttempts
	}

	wait := time.Duration(s.cfg.Booking.SettleRetryWaitMillis) * time.Millisecond

	var err error

	for attempt := 1; attempt <= attempts; attempt++ {
		var changed bool

		changed, err = s.booking.SettlePayment(ctx, bookingID, outcome, transactionID)
		if err == nil {
			log.Info().
				Str("booking_id", bookingID).
				Str("outcome", string(outcome)).
				Bool("changed", changed).
				Msg("payment settled")

			return nil
		}

		if failure.GetCode(err) < http.StatusInternalServerError {
			return err
		}

		log.Warn().Err(err).Int("attempt", attempt).Str("booking_id", bookingID).Msg("settling payment failed")

		if attempt < attempts && wait > 0 {
			select {
			case <-ctx.Done():
				return fmt.Errorf("settle payment: %w", ctx.Err())
			case <-time.After(wait * time.Duration(attempt)):
			}
		}
	}

	return fmt.Errorf("settle payment after %d attempts: %w", attempts, err)
}

func (s *serviceImpl) currency() string {
	if s.cfg.Booking.Currency == constant.Empty {
		return defaultCurrency
	}

	return s.cfg.Booking.Currency
}

func (s *serviceImpl) dedupeDuration() int {
	if s.cfg.Booking.WebhookDedupeSeconds <= 0 {
		return defaultDedupeDuration
	}

	return s.cfg.Booking.WebhookDedupeSeconds
}

func outcomeOf(eventType string) (bookingModel.PaymentOutcome, bool) {
	switch eventType {
	case paymongo.EventPaymentIntentSucceeded:
		return bookingModel.PaymentSucceeded, true
	case paymongo.EventPaymentIntentFailed:
		return bookingModel.PaymentFailed, true
	default:
		return "", false
	}
}

// gatewayFailure maps a gateway 404 to NotFound and everything else to a generic 500.
func gatewayFailure(err error, notFound, internal string) error {
	var gwErr *paymongo.Error
	if errors.As(err, &gwErr) && gwErr.StatusCode == http.StatusNotFound {
		return failure.NotFound(notFound) // nolint:wrapcheck
	}

	log.Error().Err(err).Msg(internal)

	return failure.InternalError(errors.New(internal)) // nolint:wrapcheck
}
