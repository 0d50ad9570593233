package reservation

import (
	"fmt"
	"reservo/shared/dto"
)

// Kind describes one reservation entity so the transition engine and the listing
// query can be shared between bookings and private reservations.
type Kind struct {
	Entity        string
	Label         string
	Table         string
	CategoryField string
	Categories    []string
	Sorts         []dto.Sort

	// CategoryMessage is reported when a listing filters on an unknown category.
	CategoryMessage string
}

func (k Kind) NotFoundMessage() string {
	return k.Label + " not found."
}

func (k Kind) ConflictMessage(current Status) string {
	return fmt.Sprintf("%s has already been processed. Current status: %s.", k.Label, current)
}

func (k Kind) CreatedMessage() string {
	return k.Label + " created successfully."
}

func (k Kind) TransitionMessage(target Status) string {
	action := "updated"

	switch target {
	case StatusAccepted:
		action = "approved"
	case StatusDeclined:
		action = "declined"
	case StatusPending:
	}

	return fmt.Sprintf("%s %s successfully.", k.Label, action)
}
