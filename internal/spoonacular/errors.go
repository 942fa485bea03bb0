package spoonacular

import (
	"errors"
	"fmt"
)

// ErrMalformedResponse is returned when a success response is not a
// search result document.
var ErrMalformedResponse = errors.New("malformed search response")

// ErrUnavailable wraps transport failures reaching the search API.
var ErrUnavailable = errors.New("recipe search unavailable")

// APIError is returned for any non-2xx response from the search API.
type APIError struct {
	StatusCode int    `json:"status_code"`
	Body       string `json:"body"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API Error: %d - %s", e.StatusCode, e.Body)
}

// IsAPIError reports whether err carries an APIError.
func IsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
