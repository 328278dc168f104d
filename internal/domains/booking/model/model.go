package model

import (
	roomModel "lodge/internal/domains/room/model"
	"lodge/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID               = "id"
	FieldBookingReference = "booking_reference"
	FieldRoomID           = "room_id"
	FieldGuestName        = "guest_name"
	FieldGuestEmail       = "guest_email"
	FieldGuestPhone       = "guest_phone"
	FieldCheckInDate      = "check_in_date"
	FieldDurationHours    = "duration_hours"
	FieldNumberOfAdults   = "number_of_adults"
	FieldNumberOfChildren = "number_of_children"
	FieldExtraAdults      = "extra_adults"
	FieldTotalAmount      = "total_amount"
	FieldSpecialRequests  = "special_requests"
	FieldStatus           = "status"

	// ConstraintRoomDateActive is the partial unique index that keeps one holding booking per room and day.
	ConstraintRoomDateActive = "bookings_room_date_active_key"
)

type Booking struct {
	ID               string     `db:"id"`
	BookingReference string     `db:"booking_reference"`
	RoomID           string     `db:"room_id"`
	RoomName         string     `db:"room_name"          table:"rooms" column:"name"`
	GuestName        string     `db:"guest_name"`
	GuestEmail       string     `db:"guest_email"`
	GuestPhone       string     `db:"guest_phone"`
	CheckInDate      model.Date `db:"check_in_date"`
	DurationHours    int        `db:"duration_hours"`
	NumberOfAdults   int        `db:"number_of_adults"`
	NumberOfChildren int        `db:"number_of_children"`
	ExtraAdults      int        `db:"extra_adults"`
	TotalAmount      float64    `db:"total_amount"`
	SpecialRequests  string     `db:"special_requests"`
	Status           Status     `db:"status"`
	model.Metadata
}

func (Booking) GetJoinQuery() string {
	return "LEFT JOIN " + roomModel.TableName + " ON " + roomModel.TableName + "." + roomModel.FieldID + " = " + TableName + "." + FieldRoomID
}
