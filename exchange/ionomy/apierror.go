package ionomy

import (
	"fmt"

	"github.com/lukehollenback/ionomy/exchange"
)

//
// APIError implements the exchange.APIError interface for failures reported inside the response
// envelope of an Ionomy API call (i.e. "success": false).
//
type APIError struct {
	statusCode int
	message    string
}

var _ exchange.APIError = (*APIError)(nil)

//
// NewAPIError builds an APIError from the envelope's message, falling back to a generic message
// when the API did not provide one.
//
func NewAPIError(statusCode int, message string) *APIError {
	if message == "" {
		message = GenericErrorMessage
	}

	return &APIError{
		statusCode: statusCode,
		message:    message,
	}
}

func (o *APIError) Code() int {
	return o.statusCode
}

func (o *APIError) Message() string {
	return o.message
}

func (o *APIError) Error() string {
	return fmt.Sprintf("the Ionomy endpoint returned an API error (status: %d, message: %s)", o.statusCode, o.message)
}
