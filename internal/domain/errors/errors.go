// Package errors defines the domain error taxonomy. Handlers map these
// sentinels onto HTTP status codes; use cases wrap them with context via
// fmt.Errorf and %w so errors.Is keeps working across layers.
package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation marks malformed or incomplete caller input.
	ErrValidation = errors.New("data tidak lengkap")
	// ErrAuthentication marks a missing or unusable credential.
	ErrAuthentication = errors.New("unauthorized")
	// ErrAuthorization marks a valid credential with insufficient rights.
	ErrAuthorization = errors.New("forbidden")
	// ErrNotFound marks a lookup that matched no record.
	ErrNotFound = errors.New("data tidak ditemukan")
	// ErrInvalidState marks a lifecycle operation not permitted in the
	// order's current status.
	ErrInvalidState = errors.New("status pesanan tidak mengizinkan operasi ini")
	// ErrStorage marks an object-store or infrastructure failure.
	ErrStorage = errors.New("storage failure")
)

// ErrDepositMissing refines ErrInvalidState: the final payment proof was
// offered before a deposit proof exists. Kept distinct so callers see a
// different message, while errors.Is(err, ErrInvalidState) still holds.
var ErrDepositMissing = fmt.Errorf("%w: harap upload bukti DP terlebih dahulu", ErrInvalidState)
