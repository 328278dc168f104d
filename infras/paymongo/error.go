package paymongo

import (
	"errors"
	"fmt"
)

var (
	ErrNotConfigured     = errors.New("payment gateway is not configured")
	ErrMissingSignature  = errors.New("missing webhook signature")
	ErrInvalidSignature  = errors.New("invalid webhook signature")
	ErrSignatureExpired  = errors.New("webhook signature timestamp outside tolerance")
	ErrMalformedResponse = errors.New("malformed gateway response")
)

// Error is returned for every failed gateway call: transport, decoding or an API error body.
type Error struct {
	Op         string
	StatusCode int
	Code       string
	Message    string
	Err        error
}

func (e *Error) Error() string {
	switch {
	case e.Code != "":
		return fmt.Sprintf("paymongo %s: %s (%s)", e.Op, e.Message, e.Code)
	case e.StatusCode != 0:
		return fmt.Sprintf("paymongo %s: status %d: %s", e.Op, e.StatusCode, e.Message)
	default:
		return fmt.Sprintf("paymongo %s: %s", e.Op, e.Message)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

func wrapErr(op string, err error) *Error {
	return &Error{Op: op, Message: err.Error(), Err: err}
}
