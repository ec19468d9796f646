package model

const (
	ReasonOpen            = "open"
	ReasonExceptionClosed = "exception_closed"
	ReasonScheduleClosed  = "schedule_closed"
	ReasonNoValidHours    = "no_valid_hours"
	ReasonPastDate        = "past_date"
)

// AvailabilityResult is the set of bookable ticks on one date. Closed is set
// when the date has no hours at all, so an empty Slots list on an open day
// means everything is taken.
type AvailabilityResult struct {
	Date      string         `json:"date"`
	Slots     []string       `json:"slots"`
	Closed    bool           `json:"closed"`
	Reason    string         `json:"reason"`
	Exception *DateException `json:"exception,omitempty"`
}
