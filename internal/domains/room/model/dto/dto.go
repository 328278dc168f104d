package dto

import (
	"mime/multipart"
	"time"

	"lodge/internal/domains/room/model"
	"lodge/shared"
	gDto "lodge/shared/dto"
	gModel "lodge/shared/model"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type CreateRoomRequest struct {
	Name            string                `json:"name"              validate:"required,max=100"`
	Description     string                `json:"description"       validate:"omitempty,max=1000"`
	Capacity        int                   `json:"capacity"          validate:"required,min=1"`
	BasePrice12h    float64               `json:"base_price_12h"    validate:"required,gt=0"`
	BasePrice24h    float64               `json:"base_price_24h"    validate:"required,gt=0"`
	ExtraAdultPrice float64               `json:"extra_adult_price" validate:"omitempty,min=0"`
	Amenities       []string              `json:"amenities"         validate:"omitempty,dive,max=50"`
	Image           *multipart.FileHeader `json:"image"             swaggerignore:"true" validate:"omitempty,mimetypes=image/png image/jpg image/jpeg image/webp,maxfilesize=2"`
	ImageFile       multipart.File        `json:"-"`
	Active          *bool                 `json:"active"            validate:"omitempty"`
}

func (c *CreateRoomRequest) ToModel(user, imageURL string, now time.Time) model.Room {
	active := true
	if c.Active != nil {
		active = *c.Active
	}

	return model.Room{
		ID:              uuid.NewString(),
		Name:            c.Name,
		Description:     c.Description,
		Capacity:        c.Capacity,
		BasePrice12h:    c.BasePrice12h,
		BasePrice24h:    c.BasePrice24h,
		ExtraAdultPrice: c.ExtraAdultPrice,
		Amenities:       pq.StringArray(c.Amenities),
		Image:           imageURL,
		Active:          active,
		Metadata:        gModel.NewMetadata(user, now),
	}
}

type UpdateRoomRequest struct {
	Name            string                `db:"name"              json:"name"              validate:"omitempty,max=100"`
	Description     string                `db:"description"       json:"description"       validate:"omitempty,max=1000"`
	Capacity        *int                  `db:"capacity"          json:"capacity"          validate:"omitempty,min=1"`
	BasePrice12h    *float64              `db:"base_price_12h"    json:"base_price_12h"    validate:"omitempty,gt=0"`
	BasePrice24h    *float64              `db:"base_price_24h"    json:"base_price_24h"    validate:"omitempty,gt=0"`
	ExtraAdultPrice *float64              `db:"extra_adult_price" json:"extra_adult_price" validate:"omitempty,min=0"`
	Amenities       pq.StringArray        `db:"amenities"         json:"amenities"         validate:"omitempty,dive,max=50"`
	Image           *multipart.FileHeader `db:"-"                 json:"image"             swaggerignore:"true" validate:"omitempty,mimetypes=image/png image/jpg image/jpeg image/webp,maxfilesize=2"`
	ImageFile       multipart.File        `db:"-"                 json:"-"`
	Active          *bool                 `db:"active"            json:"active"            validate:"omitempty"`
}

// IsEmpty reports whether the request carries nothing to update.
func (u *UpdateRoomRequest) IsEmpty() bool {
	return u.Name == "" && u.Description == "" && u.Capacity == nil && u.BasePrice12h == nil &&
		u.BasePrice24h == nil && u.ExtraAdultPrice == nil && len(u.Amenities) == 0 && u.Image == nil && u.Active == nil
}

type RoomResponse struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Capacity        int      `json:"capacity"`
	BasePrice12h    float64  `json:"base_price_12h"`
	BasePrice24h    float64  `json:"base_price_24h"`
	ExtraAdultPrice float64  `json:"extra_adult_price"`
	Amenities       []string `json:"amenities"`
	Image           string   `json:"image"`
	Active          bool     `json:"active"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.Name = model.Name
	r.Description = model.Description
	r.Capacity = model.Capacity
	r.BasePrice12h = model.BasePrice12h
	r.BasePrice24h = model.BasePrice24h
	r.ExtraAdultPrice = model.ExtraAdultPrice
	r.Amenities = []string(model.Amenities)
	r.Image = model.Image
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)

	if r.Amenities == nil {
		r.Amenities = []string{}
	}
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
