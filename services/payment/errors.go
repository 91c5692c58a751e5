package payment

import "fmt"

// NotFoundError reports settlement against an unknown booking identifier.
type NotFoundError struct {
	BookingID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("booking %s not found", e.BookingID)
}
