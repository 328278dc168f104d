package paymongo

import "math"

const (
	StatusAwaitingPaymentMethod = "awaiting_payment_method"
	StatusAwaitingNextAction    = "awaiting_next_action"
	StatusProcessing            = "processing"
	StatusSucceeded             = "succeeded"
)

// IntentRequest describes a payment intent; Amount is in major units (pesos).
type IntentRequest struct {
	Amount      float64
	Currency    string
	Description string
	Metadata    map[string]string
}

// AttachRequest binds a client-created payment method to an intent.
type AttachRequest struct {
	PaymentMethod string
	ClientKey     string
	ReturnURL     string
}

// Intent is the gateway payment intent, amounts converted back to major units.
type Intent struct {
	ID          string            `json:"id"`
	Amount      float64           `json:"amount"`
	Currency    string            `json:"currency"`
	Description string            `json:"description"`
	Status      string            `json:"status"`
	ClientKey   string            `json:"client_key"`
	LiveMode    bool              `json:"livemode"`
	Metadata    map[string]string `json:"metadata,omitempty"`
	NextAction  map[string]any    `json:"next_action,omitempty"`
}

// ToMinorUnits converts pesos to centavos, rounding half away from zero.
func ToMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100)) //nolint:mnd
}

// FromMinorUnits converts centavos to pesos.
func FromMinorUnits(amount int64) float64 {
	return float64(amount) / 100 //nolint:mnd
}

type resource[T any] struct {
	Data struct {
		ID         string `json:"id,omitempty"`
		Type       string `json:"type,omitempty"`
		Attributes T      `json:"attributes"`
	} `json:"data"`
}

type intentAttributes struct {
	Amount               int64             `json:"amount"`
	Currency             string            `json:"currency"`
	Description          string            `json:"description,omitempty"`
	Status               string            `json:"status,omitempty"`
	ClientKey            string            `json:"client_key,omitempty"`
	LiveMode             bool              `json:"livemode,omitempty"`
	PaymentMethodAllowed []string          `json:"payment_method_allowed,omitempty"`
	CaptureType          string            `json:"capture_type,omitempty"`
	Metadata             map[string]string `json:"metadata,omitempty"`
	NextAction           map[string]any    `json:"next_action,omitempty"`
}

type attachAttributes struct {
	PaymentMethod string `json:"payment_method"`
	ClientKey     string `json:"client_key,omitempty"`
	ReturnURL     string `json:"return_url,omitempty"`
}

type apiErrors struct {
	Errors []struct {
		Code   string `json:"code"`
		Detail string `json:"detail"`
	} `json:"errors"`
}

func toIntent(res resource[intentAttributes]) Intent {
	attrs := res.Data.Attributes

	return Intent{
		ID:          res.Data.ID,
		Amount:      FromMinorUnits(attrs.Amount),
		Currency:    attrs.Currency,
		Description: attrs.Description,
		Status:      attrs.Status,
		ClientKey:   attrs.ClientKey,
		LiveMode:    attrs.LiveMode,
		Metadata:    attrs.Metadata,
		NextAction:  attrs.NextAction,
	}
}
