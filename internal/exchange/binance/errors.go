package binance

import (
	"errors"
	"fmt"
)

// ErrCredentialsRequired is returned by NewClient when the API key or secret
// key is missing.
var ErrCredentialsRequired = errors.New("binance api credentials are required")

// UpstreamError reports a non-2xx response from the Binance API.
type UpstreamError struct {
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("Binance API error: %d - %s", e.Status, e.Body)
}

// ValidationError reports invalid caller input, detected before any network
// call is made.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

var errPriceRequired = &ValidationError{Msg: "price is required for LIMIT orders"}
