package dto

import (
	"lodge/internal/domains/booking/model"
	paymentModel "lodge/internal/domains/payment/model"
	"lodge/shared"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	gModel "lodge/shared/model"
	"lodge/shared/timezone"
)

const (
	PaymentMethodCash   = "cash"
	PaymentMethodOnline = "online"
)

type CreateBookingRequest struct {
	RoomID           string `json:"room_id"            validate:"required,uuid"`
	GuestName        string `json:"guest_name"         validate:"required,max=100"`
	GuestEmail       string `json:"guest_email"        validate:"required,email,max=100"`
	GuestPhone       string `json:"guest_phone"        validate:"omitempty,max=20"`
	CheckInDate      string `json:"check_in_date"      validate:"required,datetime=2006-01-02"`
	DurationHours    int    `json:"duration_hours"     validate:"required,oneof=12 24"`
	NumberOfAdults   int    `json:"number_of_adults"   validate:"omitempty,min=1,max=20"`
	NumberOfChildren int    `json:"number_of_children" validate:"omitempty,min=0,max=20"`
	ExtraAdults      int    `json:"extra_adults"       validate:"omitempty,min=0,max=2"`
	SpecialRequests  string `json:"special_requests"   validate:"omitempty,max=500"`
	PaymentMethod    string `json:"payment_method"     validate:"omitempty,oneof=cash online"`
}

// Method returns the requested payment method, cash when unset.
func (c *CreateBookingRequest) Method() string {
	if c.PaymentMethod == constant.Empty {
		return PaymentMethodCash
	}

	return c.PaymentMethod
}

// Adults returns the number of adults, one when unset.
func (c *CreateBookingRequest) Adults() int {
	if c.NumberOfAdults == 0 {
		return 1
	}

	return c.NumberOfAdults
}

// Occupancy counts every guest staying in the room, extra adults included.
func (c *CreateBookingRequest) Occupancy() int {
	return c.Adults() + c.NumberOfChildren + c.ExtraAdults
}

func (c *CreateBookingRequest) ToModel(id, reference string, checkIn gModel.Date, total float64, actor string) model.Booking {
	adults := c.Adults()

	return model.Booking{
		ID:               id,
		BookingReference: reference,
		RoomID:           c.RoomID,
		GuestName:        c.GuestName,
		GuestEmail:       c.GuestEmail,
		GuestPhone:       c.GuestPhone,
		CheckInDate:      checkIn,
		DurationHours:    c.DurationHours,
		NumberOfAdults:   adults,
		NumberOfChildren: c.NumberOfChildren,
		ExtraAdults:      c.ExtraAdults,
		TotalAmount:      total,
		SpecialRequests:  c.SpecialRequests,
		Status:           model.StatusDraft,
		Metadata:         gModel.NewMetadata(actor, timezone.Now()),
	}
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=DRAFT PENDING_PAYMENT CONFIRMED CANCELLED COMPLETED"`
}

type AvailabilityRequest struct {
	RoomID      string `json:"room_id"       validate:"required,uuid"`
	CheckInDate string `json:"check_in_date" validate:"required,datetime=2006-01-02"`
}

type AvailabilityResponse struct {
	RoomID      string `json:"room_id"`
	CheckInDate string `json:"check_in_date"`
	Available   bool   `json:"available"`
}

type PaymentResponse struct {
	ID               string  `json:"id"`
	Amount           float64 `json:"amount"`
	Currency         string  `json:"currency"`
	PaymentMethod    string  `json:"payment_method"`
	Status           string  `json:"status"`
	TransactionID    string  `json:"transaction_id,omitempty"`
	PaymentReference string  `json:"payment_reference,omitempty"`
	ProcessedAt      string  `json:"processed_at,omitempty"`
	gDto.Metadata
}

func (r *PaymentResponse) FromModel(payment paymentModel.Payment) {
	r.ID = payment.ID
	r.Amount = payment.Amount
	r.Currency = payment.Currency
	r.PaymentMethod = string(payment.PaymentMethod)
	r.Status = string(payment.Status)

	if payment.TransactionID != nil {
		r.TransactionID = *payment.TransactionID
	}

	if payment.PaymentReference != nil {
		r.PaymentReference = *payment.PaymentReference
	}

	if payment.ProcessedAt != nil {
		r.ProcessedAt = timezone.Format(*payment.ProcessedAt, constant.DateFormat)
	}

	r.Metadata.FromModel(payment.Metadata)
}

type RoomSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// PaymentIntent is returned for online bookings so the client can complete payment.
type PaymentIntent struct {
	ID        string `json:"id"`
	ClientKey string `json:"client_key"`
	Status    string `json:"status"`
}

type BookingResponse struct {
	ID               string            `json:"id"`
	BookingReference string            `json:"booking_reference"`
	Room             RoomSummary       `json:"room"`
	GuestName        string            `json:"guest_name"`
	GuestEmail       string            `json:"guest_email"`
	GuestPhone       string            `json:"guest_phone"`
	CheckInDate      string            `json:"check_in_date"`
	DurationHours    int               `json:"duration_hours"`
	NumberOfAdults   int               `json:"number_of_adults"`
	NumberOfChildren int               `json:"number_of_children"`
	ExtraAdults      int               `json:"extra_adults"`
	TotalAmount      float64           `json:"total_amount"`
	SpecialRequests  string            `json:"special_requests"`
	Status           string            `json:"status"`
	Payments         []PaymentResponse `json:"payments"`
	PaymentIntent    *PaymentIntent    `json:"payment_intent,omitempty"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(booking model.Booking, payments []paymentModel.Payment) {
	r.ID = booking.ID
	r.BookingReference = booking.BookingReference
	r.Room = RoomSummary{ID: booking.RoomID, Name: booking.RoomName}
	r.GuestName = booking.GuestName
	r.GuestEmail = booking.GuestEmail
	r.GuestPhone = booking.GuestPhone
	r.CheckInDate = booking.CheckInDate.String()
	r.DurationHours = booking.DurationHours
	r.NumberOfAdults = booking.NumberOfAdults
	r.NumberOfChildren = booking.NumberOfChildren
	r.ExtraAdults = booking.ExtraAdults
	r.TotalAmount = booking.TotalAmount
	r.SpecialRequests = booking.SpecialRequests
	r.Status = string(booking.Status)
	r.Metadata.FromModel(booking.Metadata)

	r.Payments = make([]PaymentResponse, len(payments))
	for i, payment := range payments {
		r.Payments[i].FromModel(payment)
	}
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

// FromModels attaches to every booking the payments whose booking_id matches it.
func (r *GetBookingsResponse) FromModels(models []model.Booking, payments []paymentModel.Payment, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	byBooking := make(map[string][]paymentModel.Payment, len(models))
	for _, payment := range payments {
		byBooking[payment.BookingID] = append(byBooking[payment.BookingID], payment)
	}

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod, byBooking[mod.ID])
	}
}

type DeleteBookingResponse struct {
	Success bool `json:"success"`
}
