package reservation_test

import (
	"reservo/internal/domains/reservation"
	"reservo/shared/dto"
)

type ticket struct {
	ID     int64
	Status reservation.Status
}

func (t ticket) GetID() int64                  { return t.ID }
func (t ticket) GetStatus() reservation.Status { return t.Status }

var ticketKind = reservation.Kind{
	Entity:        "ticket",
	Label:         "Ticket",
	Table:         "tickets",
	CategoryField: "kind",
	Categories:    []string{"dining", "drinks", "both"},
	Sorts: []dto.Sort{
		{Field: "date", Table: "tickets", Dir: dto.SortDirAsc},
		{Field: "id", Table: "tickets", Dir: dto.SortDirAsc},
	},
}
