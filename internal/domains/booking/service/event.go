package service

import (
	"context"
	"time"

	"lodge/infras/kafka"
	"lodge/internal/domains/booking/model"
	"lodge/shared/constant"
	"lodge/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	EventBookingCreated        = "booking.created"
	EventBookingStatusChanged  = "booking.status_changed"
	EventBookingDeleted        = "booking.deleted"
	EventBookingPaymentSettled = "booking.payment_settled"
)

// Event is the payload published on the booking topic.
type Event struct {
	Type             string    `json:"type"`
	BookingID        string    `json:"booking_id"`
	BookingReference string    `json:"booking_reference"`
	RoomID           string    `json:"room_id"`
	CheckInDate      string    `json:"check_in_date"`
	Status           string    `json:"status"`
	PreviousStatus   string    `json:"previous_status,omitempty"`
	TotalAmount      float64   `json:"total_amount"`
	OccurredAt       time.Time `json:"occurred_at"`
}

// publish sends a lifecycle event keyed by booking id. Failures are logged and never
// reach the caller; the database is the source of truth.
func (s *serviceImpl) publish(ctx context.Context, eventType string, booking model.Booking, previous model.Status) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".booking.publish")
	defer scope.End()

	event := Event{
		Type:             eventType,
		BookingID:        booking.ID,
		BookingReference: booking.BookingReference,
		RoomID:           booking.RoomID,
		CheckInDate:      booking.CheckInDate.String(),
		Status:           string(booking.Status),
		PreviousStatus:   string(previous),
		TotalAmount:      booking.TotalAmount,
		OccurredAt:       timezone.Now(),
	}

	err := s.kafka.SendMessages(ctx, s.cfg.Kafka.Topics.Booking, kafka.Message{Key: booking.ID, Value: event})
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("event", eventType).Str("booking_id", booking.ID).Msg("failed to publish booking event")
	}
}
