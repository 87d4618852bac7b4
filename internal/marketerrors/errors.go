package marketerrors

import "errors"

// Repository-level errors
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrLotNotFound     = errors.New("lot not found")
	ErrMessageNotFound = errors.New("message not found")
	ErrEmailTaken      = errors.New("email already registered")
	ErrNoBids          = errors.New("no bids found for lot")
)

// Business logic errors
var (
	ErrValidation         = errors.New("invalid input")
	ErrQuotaExceeded      = errors.New("active lot quota exceeded")
	ErrBidTooLow          = errors.New("bid amount too low")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrForbidden          = errors.New("forbidden")
	ErrStorage            = errors.New("object storage failure")
)
