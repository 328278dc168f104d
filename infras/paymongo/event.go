package paymongo

import (
	"encoding/json"
	"fmt"
	"strconv"
)

const (
	EventPaymentIntentSucceeded = "payment_intent.succeeded"
	EventPaymentIntentFailed    = "payment_intent.payment_failed"

	eventPaymentPaid   = "payment.paid"
	eventPaymentFailed = "payment.failed"
	resourceTypeEvent  = "event"

	MetadataBookingID        = "booking_id"
	MetadataBookingReference = "booking_reference"
)

// Event is a webhook delivery reduced to what booking settlement needs.
type Event struct {
	ID         string
	Type       string
	ResourceID string
	LiveMode   bool
	Metadata   map[string]string
}

func (e Event) BookingID() string {
	return e.Metadata[MetadataBookingID]
}

type rawResource struct {
	ID         string          `json:"id"`
	Type       string          `json:"type"`
	Metadata   map[string]any  `json:"metadata"`
	Attributes json.RawMessage `json:"attributes"`
}

type rawAttributes struct {
	Type            string         `json:"type"`
	LiveMode        bool           `json:"livemode"`
	Metadata        map[string]any `json:"metadata"`
	PaymentIntentID string         `json:"payment_intent_id"`
	Data            *rawResource   `json:"data"`
}

// ParseEvent accepts both the flat `{id, type, data:{id, metadata}}` shape and the
// gateway's enveloped `{data:{type:"event", attributes:{type, data}}}` shape.
// payment.paid and payment.failed map onto the payment intent event types.
func ParseEvent(payload []byte) (Event, error) {
	var raw struct {
		ID   string       `json:"id"`
		Type string       `json:"type"`
		Data *rawResource `json:"data"`
	}

	if err := json.Unmarshal(payload, &raw); err != nil {
		return Event{}, fmt.Errorf("failed to decode webhook event: %w", err)
	}

	if raw.Data == nil {
		return Event{}, fmt.Errorf("failed to decode webhook event: %w", ErrMalformedResponse)
	}

	if raw.Data.Type != resourceTypeEvent {
		attrs := decodeAttributes(raw.Data.Attributes)

		metadata := raw.Data.Metadata
		if len(metadata) == 0 {
			metadata = attrs.Metadata
		}

		return Event{
			ID:         raw.ID,
			Type:       normalizeType(raw.Type),
			ResourceID: raw.Data.ID,
			LiveMode:   attrs.LiveMode,
			Metadata:   stringify(metadata),
		}, nil
	}

	envelope := decodeAttributes(raw.Data.Attributes)
	event := Event{
		ID:       raw.Data.ID,
		Type:     normalizeType(envelope.Type),
		LiveMode: envelope.LiveMode,
	}

	if envelope.Data != nil {
		inner := decodeAttributes(envelope.Data.Attributes)

		event.ResourceID = envelope.Data.ID
		if inner.PaymentIntentID != "" {
			event.ResourceID = inner.PaymentIntentID
		}

		event.Metadata = stringify(inner.Metadata)
	}

	return event, nil
}

func decodeAttributes(raw json.RawMessage) rawAttributes {
	var attrs rawAttributes
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &attrs)
	}

	return attrs
}

func normalizeType(eventType string) string {
	switch eventType {
	case eventPaymentPaid:
		return EventPaymentIntentSucceeded
	case eventPaymentFailed:
		return EventPaymentIntentFailed
	default:
		return eventType
	}
}

func stringify(metadata map[string]any) map[string]string {
	out := make(map[string]string, len(metadata))

	for key, value := range metadata {
		switch v := value.(type) {
		case nil:
			continue
		case string:
			out[key] = v
		case float64:
			out[key] = strconv.FormatFloat(v, 'f', -1, 64)
		default:
			out[key] = fmt.Sprint(v)
		}
	}

	return out
}
