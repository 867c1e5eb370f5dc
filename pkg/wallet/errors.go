package wallet

import "errors"

var (
	// ErrInvalidPrivateKey is returned when an imported private key is not
	// exactly 32 bytes or decodes to a scalar outside [1, n-1].
	ErrInvalidPrivateKey = errors.New("invalid private key")

	// ErrInvalidSignature is returned for signatures that are not 65 bytes
	// long or carry an unrecognized v byte.
	ErrInvalidSignature = errors.New("invalid signature")

	// ErrChainIDRange is returned when a chain id is too large for its v
	// value to fit the single byte of the 65-byte wire encoding.
	ErrChainIDRange = errors.New("chain id does not fit the one-byte v encoding")
)
