package model

import (
	"reservo/internal/domains/reservation"
	"reservo/shared/dto"
	"reservo/shared/model"
	"time"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID              = "id"
	FieldDate            = "date"
	FieldTime            = "time"
	FieldGuests          = "guests"
	FieldReservationType = "reservation_type"
	FieldPhone           = "phone"
	FieldStatus          = "status"
	FieldUpdatedAt       = "updated_at"
)

const (
	ReservationTypeDining = "dining"
	ReservationTypeDrinks = "drinks"
	ReservationTypeBoth   = "both"
)

const MessageInvalidReservationType = "Invalid reservation type. Must be: dining, drinks, or both."

// Kind is the descriptor shared by the transition engine and the listing query.
var Kind = reservation.Kind{
	Entity:        EntityName,
	Label:         "Booking",
	Table:         TableName,
	CategoryField: FieldReservationType,
	Categories:    []string{ReservationTypeDining, ReservationTypeDrinks, ReservationTypeBoth},
	Sorts: []dto.Sort{
		{Field: FieldDate, Table: TableName, Dir: dto.SortDirAsc},
		{Field: FieldTime, Table: TableName, Dir: dto.SortDirAsc},
		{Field: FieldID, Table: TableName, Dir: dto.SortDirAsc},
	},
	CategoryMessage: MessageInvalidReservationType,
}

type Booking struct {
	ID              int64              `db:"id"`
	Date            time.Time          `db:"date"`
	Time            string             `db:"time"`
	Guests          int                `db:"guests"`
	ReservationType string             `db:"reservation_type"`
	Phone           string             `db:"phone"`
	Status          reservation.Status `db:"status"`
	model.Metadata
}

func (b Booking) GetID() int64 {
	return b.ID
}

func (b Booking) GetStatus() reservation.Status {
	return b.Status
}
