package model

import (
	"reservo/internal/domains/reservation"
	"reservo/shared/dto"
	"reservo/shared/model"
	"time"
)

const (
	TableName  = "private_reservations"
	EntityName = "private_reservation"

	FieldID          = "id"
	FieldDate        = "date"
	FieldEmail       = "email"
	FieldEventType   = "event_type"
	FieldPeopleRange = "people_range"
	FieldBudget      = "budget"
	FieldMessage     = "message"
	FieldStatus      = "status"
	FieldCreatedAt   = "created_at"
	FieldUpdatedAt   = "updated_at"
)

const (
	EventTypeBirthday    = "birthday"
	EventTypeAnniversary = "anniversary"
	EventTypeCorporate   = "corporate"
	EventTypeWedding     = "wedding"
	EventTypeOther       = "other"
)

const (
	PeopleRangeUnder10 = "under10"
	PeopleRange10To30  = "10to30"
	PeopleRange30To50  = "30to50"
	PeopleRangeOver50  = "over50"
)

const (
	BudgetUnder1000   = "under1000"
	Budget1000To3000  = "1000to3000"
	Budget3000To5000  = "3000to5000"
	Budget5000To10000 = "5000to10000"
	BudgetOver10000   = "over10000"
)

const (
	MessageInvalidEventType   = "Invalid event type. Must be: birthday, anniversary, corporate, wedding, or other."
	MessageInvalidPeopleRange = "Invalid people range. Must be: under10, 10to30, 30to50, or over50."
	MessageInvalidBudget      = "Invalid budget range. Must be: under1000, 1000to3000, 3000to5000, 5000to10000, or over10000."
)

// Kind is the descriptor shared by the transition engine and the listing query.
var Kind = reservation.Kind{
	Entity:        EntityName,
	Label:         "Private reservation",
	Table:         TableName,
	CategoryField: FieldEventType,
	Categories:    []string{EventTypeBirthday, EventTypeAnniversary, EventTypeCorporate, EventTypeWedding, EventTypeOther},
	Sorts: []dto.Sort{
		{Field: FieldDate, Table: TableName, Dir: dto.SortDirAsc},
		{Field: FieldCreatedAt, Table: TableName, Dir: dto.SortDirAsc},
		{Field: FieldID, Table: TableName, Dir: dto.SortDirAsc},
	},
	CategoryMessage: MessageInvalidEventType,
}

type PrivateReservation struct {
	ID          int64              `db:"id"`
	Date        time.Time          `db:"date"`
	Email       string             `db:"email"`
	EventType   string             `db:"event_type"`
	PeopleRange string             `db:"people_range"`
	Budget      string             `db:"budget"`
	Message     *string            `db:"message"`
	Status      reservation.Status `db:"status"`
	model.Metadata
}

func (p PrivateReservation) GetID() int64 {
	return p.ID
}

func (p PrivateReservation) GetStatus() reservation.Status {
	return p.Status
}
