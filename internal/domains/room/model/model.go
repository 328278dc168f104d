package model

import (
	"lodge/shared/model"

	"github.com/lib/pq"
)

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID              = "id"
	FieldName            = "name"
	FieldDescription     = "description"
	FieldCapacity        = "capacity"
	FieldBasePrice12h    = "base_price_12h"
	FieldBasePrice24h    = "base_price_24h"
	FieldExtraAdultPrice = "extra_adult_price"
	FieldAmenities       = "amenities"
	FieldImage           = "image"
	FieldActive          = "active"
)

type Room struct {
	ID              string         `db:"id"`
	Name            string         `db:"name"`
	Description     string         `db:"description"`
	Capacity        int            `db:"capacity"`
	BasePrice12h    float64        `db:"base_price_12h"`
	BasePrice24h    float64        `db:"base_price_24h"`
	ExtraAdultPrice float64        `db:"extra_adult_price"`
	Amenities       pq.StringArray `db:"amenities"`
	Image           string         `db:"image"`
	Active          bool           `db:"active"`
	model.Metadata
}

// RateCard is the priced part of a room.
type RateCard struct {
	BasePrice12h    float64
	BasePrice24h    float64
	ExtraAdultPrice float64
}

func (r Room) RateCard() RateCard {
	return RateCard{
		BasePrice12h:    r.BasePrice12h,
		BasePrice24h:    r.BasePrice24h,
		ExtraAdultPrice: r.ExtraAdultPrice,
	}
}
