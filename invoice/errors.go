package invoice

import "errors"

var (
	// ErrRender covers template and PDF conversion failures. The converter's
	// failure is opaque to us; it is reported as-is, never interpreted.
	ErrRender = errors.New("invoice render failed")

	// ErrStorage covers write failures on the invoices directory.
	ErrStorage = errors.New("invoice storage failed")

	// ErrBadFileName rejects names that could escape the invoices directory.
	ErrBadFileName = errors.New("invalid invoice file name")

	// ErrInvalidPhone rejects contact numbers with fewer than 10 digits.
	ErrInvalidPhone = errors.New("invalid phone number")
)
