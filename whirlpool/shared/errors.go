package shared

import "errors"

var (
	// ErrArithmeticOverflow is returned when a scaled amount does not fit back into 128 bits.
	ErrArithmeticOverflow = errors.New("arithmetic overflow")
	// ErrInvalidTickRange is returned when a position's lower tick is not below its upper tick.
	ErrInvalidTickRange = errors.New("invalid tick range")
	// ErrInvalidTransferFee is returned for transfer fees above 10_000 basis points.
	ErrInvalidTransferFee = errors.New("invalid transfer fee")
	// ErrInvalidAccount is returned when account data has the wrong size or discriminator.
	ErrInvalidAccount = errors.New("invalid account data")
	// ErrUnsupportedTickArray is returned for tick arrays in the dynamic layout.
	ErrUnsupportedTickArray = errors.New("unsupported tick array layout")
	// ErrTickNotInArray is returned when a tick index falls outside a tick array.
	ErrTickNotInArray = errors.New("tick not in tick array")
)
