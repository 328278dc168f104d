package dto

import (
	"lodge/infras/paymongo"
)

type CreateIntentRequest struct {
	Amount      float64           `json:"amount"      validate:"required,gt=0"`
	Currency    string            `json:"currency"    validate:"omitempty,len=3,uppercase"`
	Description string            `json:"description" validate:"omitempty,max=255"`
	Metadata    map[string]string `json:"metadata"`
}

func (c *CreateIntentRequest) ToGateway(defaultCurrency string) paymongo.IntentRequest {
	currency := c.Currency
	if currency == "" {
		currency = defaultCurrency
	}

	return paymongo.IntentRequest{
		Amount:      c.Amount,
		Currency:    currency,
		Description: c.Description,
		Metadata:    c.Metadata,
	}
}

type AttachMethodRequest struct {
	PaymentMethod string `json:"payment_method" validate:"required"`
	ClientKey     string `json:"client_key"     validate:"required"`
	ReturnURL     string `json:"return_url"     validate:"omitempty,url"`
}

func (a *AttachMethodRequest) ToGateway() paymongo.AttachRequest {
	return paymongo.AttachRequest{
		PaymentMethod: a.PaymentMethod,
		ClientKey:     a.ClientKey,
		ReturnURL:     a.ReturnURL,
	}
}

type IntentResponse struct {
	ID          string            `json:"id"`
	Amount      float64           `json:"amount"`
	Currency    string            `json:"currency"`
	Description string            `json:"description,omitempty"`
	Status      string            `json:"status"`
	ClientKey   string            `json:"client_key"`
	LiveMode    bool              `json:"livemode"`
	Metadata    map[string]string `json:"metadata,omitempty"`
	NextAction  map[string]any    `json:"next_action,omitempty"`
}

func (r *IntentResponse) FromGateway(intent paymongo.Intent) {
	r.ID = intent.ID
	r.Amount = intent.Amount
	r.Currency = intent.Currency
	r.Description = intent.Description
	r.Status = intent.Status
	r.ClientKey = intent.ClientKey
	r.LiveMode = intent.LiveMode
	r.Metadata = intent.Metadata
	r.NextAction = intent.NextAction
}

type WebhookResponse struct {
	Received bool `json:"received"`
}
