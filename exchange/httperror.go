package exchange

import "fmt"

//
// HTTPError represents an error due to a non-2xx response from an API endpoint whose body could not
// be understood as a regular API response. When dealing with cryptocurrency exchange APIs, such a
// response almost always means that something critically wrong has occurred somewhere between the
// client and the exchange (e.g. a proxy error page or an outage).
//
type HTTPError struct {
	statusCode int
	body       []byte
}

func NewHTTPError(statusCode int, body []byte) *HTTPError {
	return &HTTPError{
		statusCode: statusCode,
		body:       body,
	}
}

func (o *HTTPError) StatusCode() int {
	return o.statusCode
}

//
// Body returns the raw response body that was received along with the status code.
//
func (o *HTTPError) Body() []byte {
	return o.body
}

func (o *HTTPError) Error() string {
	return fmt.Sprintf("server responded with a %d status code", o.statusCode)
}
