package customerr

import "fmt"

// NotFoundError marks a lookup for a row the user does not own or that
// does not exist. Handlers map it to 404 instead of 500.
type NotFoundError struct {
	Entity string
	ID     int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}
