package errs

import (
	"errors"
	"fmt"
)

// Kinds. Every error returned by the service wraps exactly one of them.
var (
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrBadRequest          = errors.New("bad request")
	ErrInternalConsistency = errors.New("internal consistency violation")
)

var (
	ErrBookNotFound   = fmt.Errorf("%w: book", ErrNotFound)
	ErrUserNotFound   = fmt.Errorf("%w: user", ErrNotFound)
	ErrIssueNotFound  = fmt.Errorf("%w: issue", ErrNotFound)
	ErrConfigNotFound = fmt.Errorf("%w: active fine configuration", ErrNotFound)

	ErrAlreadyIssued = fmt.Errorf("%w: user already holds an open issue of this book", ErrConflict)

	ErrNoCopiesAvailable     = fmt.Errorf("%w: no copies available", ErrBadRequest)
	ErrBookUnavailable       = fmt.Errorf("%w: book is not in circulation", ErrBadRequest)
	ErrAlreadyReturned       = fmt.Errorf("%w: book already returned", ErrBadRequest)
	ErrInvalidPaymentAmount  = fmt.Errorf("%w: invalid payment amount", ErrBadRequest)
	ErrInvalidPaymentMethod  = fmt.Errorf("%w: invalid payment method", ErrBadRequest)
	ErrInvalidAdditionalFine = fmt.Errorf("%w: additional fine must not be negative", ErrBadRequest)
	ErrInvalidFineConfig     = fmt.Errorf("%w: invalid fine configuration", ErrBadRequest)
	ErrWaiverReasonRequired  = fmt.Errorf("%w: waiver reason is required", ErrBadRequest)
	ErrInvalidID             = fmt.Errorf("%w: malformed id", ErrBadRequest)
)
