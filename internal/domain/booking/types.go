package booking

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	}
	return false
}

func (s Status) String() string {
	return string(s)
}

// Holding statuses occupy a slot/date or an event seat. Pending counts: a
// booking awaiting payment confirmation still blocks other users.
func (s Status) Holds() bool {
	return s == StatusPending || s == StatusConfirmed
}

type BookableType string

const (
	BookableSlot  BookableType = "slot"
	BookableEvent BookableType = "event"
)

func (t BookableType) IsValid() bool {
	switch t {
	case BookableSlot, BookableEvent:
		return true
	}
	return false
}

func (t BookableType) String() string {
	return string(t)
}
