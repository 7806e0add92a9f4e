package exchange

import "fmt"

//
// ArgumentError represents an invalid argument provided to a client method. It is always returned
// before any request is made, so it is never worth retrying without first fixing the input.
//
type ArgumentError struct {
	Field  string
	Reason string
}

//
// Required builds an ArgumentError for a required field that was not provided.
//
func Required(field string) *ArgumentError {
	return &ArgumentError{
		Field:  field,
		Reason: "is required",
	}
}

func (o *ArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %q: %s", o.Field, o.Reason)
}
