package reservation

import "strconv"

// Status is the lifecycle state of a reservation request. It is stored and
// serialized as its integer value.
type Status int

const (
	StatusPending Status = iota
	StatusAccepted
	StatusDeclined
)

var statusNames = map[Status]string{
	StatusPending:  "pending",
	StatusAccepted: "accepted",
	StatusDeclined: "declined",
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}

	return "status(" + strconv.Itoa(int(s)) + ")"
}

func (s Status) IsValid() bool {
	_, ok := statusNames[s]

	return ok
}

// IsTerminal reports whether no transition can leave s.
func (s Status) IsTerminal() bool {
	return s == StatusAccepted || s == StatusDeclined
}

// CanTransitionTo reports whether s -> target is a legal edge. The only legal edges
// are pending -> accepted and pending -> declined.
func (s Status) CanTransitionTo(target Status) bool {
	return s == StatusPending && target.IsTerminal()
}
