package ionomy

import (
	"encoding/json"

	"github.com/lukehollenback/ionomy/exchange"
	"github.com/pkg/errors"
)

//
// Envelope is the wrapper every Ionomy API response comes in. Data is only meaningful when
// Success is true; Message is only meaningful when it is false.
//
type Envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

//
// unwrap translates a raw response into either the envelope's data or an error.
//
// NOTE ~> A non-2xx response is only treated as an API error when its body is an envelope that
//  actually explains the failure. Anything else (proxy error pages, empty bodies, etc.) is an HTTP
//  error so that the status code is not lost.
//
func unwrap(statusCode int, body []byte) (json.RawMessage, error) {
	ok := statusCode >= 200 && statusCode < 300

	var envelope Envelope

	if err := json.Unmarshal(body, &envelope); err != nil {
		if !ok {
			return nil, exchange.NewHTTPError(statusCode, body)
		}

		return nil, errors.Wrap(err, "failed to decode response envelope")
	}

	if !ok && (envelope.Success || envelope.Message == "") {
		return nil, exchange.NewHTTPError(statusCode, body)
	}

	if !envelope.Success {
		return nil, NewAPIError(statusCode, envelope.Message)
	}

	return envelope.Data, nil
}
