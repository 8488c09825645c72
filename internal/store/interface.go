package store

import (
	"github.com/pkg/errors"
)

// ErrStoreAccess is matched, through errors.Is, by every error returned when
// the ambient cookie store could not be read or written.
var ErrStoreAccess = errors.New("cookie store access error")

// Store is the ambient cookie store, a single string of the form
// "name1=value1; name2=value2" maintained by the host.
type Store interface {
	// Read returns the aggregate cookie string.
	Read() (string, error)
	// Write assigns a single "name=value" fragment, which the store merges
	// into the aggregate.
	Write(fragment string) error
}

// accessErr carries the backend error while also matching ErrStoreAccess.
type accessErr struct {
	cause error
}

func (e *accessErr) Error() string {
	return ErrStoreAccess.Error() + ": " + e.cause.Error()
}

func (e *accessErr) Cause() error {
	return e.cause
}

func (e *accessErr) Unwrap() error {
	return e.cause
}

func (e *accessErr) Is(target error) bool {
	return target == ErrStoreAccess
}

func accessError(err error, msg string) error {
	return &accessErr{cause: errors.Wrap(err, msg)}
}
