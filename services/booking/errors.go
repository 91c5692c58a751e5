package booking

import "fmt"

// ConflictError rejects a booking whose (email, appointmentDate, treatment)
// key already exists. The message names the conflicting date.
type ConflictError struct {
	Date string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("You already have a booking on %s", e.Date)
}

// NotFoundError reports a lookup by an unknown booking identifier.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("booking %s not found", e.ID)
}
