package booking

import "fmt"

type BookingError struct {
	Code    string
	Message string
}

func (e *BookingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

var (
	ErrSlotUnavailable = &BookingError{Code: "slotUnavailable", Message: "the requested time is not an open slot"}
	ErrSlotTaken       = &BookingError{Code: "slotTaken", Message: "the requested slot was already booked"}
)
