package model

import (
	"time"

	"lodge/shared/model"
)

const (
	TableName  = "payments"
	EntityName = "payment"

	FieldID               = "id"
	FieldBookingID        = "booking_id"
	FieldAmount           = "amount"
	FieldCurrency         = "currency"
	FieldPaymentMethod    = "payment_method"
	FieldStatus           = "status"
	FieldTransactionID    = "transaction_id"
	FieldPaymentReference = "payment_reference"
	FieldProcessedAt      = "processed_at"
)

type Method string

const (
	MethodCashOnArrival Method = "CASH_ON_ARRIVAL"
	MethodOnline        Method = "ONLINE"
)

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusCompleted Status = "COMPLETED"
	StatusFailed    Status = "FAILED"
)

type Payment struct {
	ID               string     `db:"id"`
	BookingID        string     `db:"booking_id"`
	Amount           float64    `db:"amount"`
	Currency         string     `db:"currency"`
	PaymentMethod    Method     `db:"payment_method"`
	Status           Status     `db:"status"`
	TransactionID    *string    `db:"transaction_id"`
	PaymentReference *string    `db:"payment_reference"`
	ProcessedAt      *time.Time `db:"processed_at"`
	model.Metadata
}
