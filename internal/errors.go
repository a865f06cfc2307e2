package internal

import (
	"errors"
	"fmt"
)

var (
	ErrNetwork       = errors.New("network error")
	ErrNoActiveOrder = errors.New("no active order")

	ErrOrderNotFound   = errors.New("order not found")
	ErrProductNotFound = errors.New("product not found")
	ErrInvalidPayload  = errors.New("invalid payload")
)

// HTTPError is returned by the data client for any response with
// status >= 400.
type HTTPError struct {
	Status     int
	StatusText string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("request failed: %s", e.StatusText)
}
