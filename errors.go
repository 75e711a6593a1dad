package tosql

import (
	"errors"
	"fmt"
)

var (
	// ErrConversion is the cause of every error that results from a value
	// failing to convert to SQL.
	ErrConversion = errors.New("value could not be converted to SQL")

	// ErrOutOfRange indicates that a value cannot be represented in the
	// value model without truncation or wraparound.
	ErrOutOfRange = errors.New("value is out of representable range")

	// ErrUnsupported indicates that a value is of a type that has no mapping
	// to any SQL value kind.
	ErrUnsupported = errors.New("type has no SQL representation")
)

// Error is a typed error returned by conversions as their error value. It
// contains both a message explaining what happened as well as one or more
// error values it considers to be its causes. Error is compatible with the use
// of errors.Is() - calling errors.Is on some Error value err along with any
// value of error it holds as one of its causes will return true. This allows
// for easy examination and failure condition checking without needing to
// resort to manual typecasting.
//
// If Error has at least one cause defined, the result of calling Error.Error()
// will be its primary message with the result of calling Error() on its first
// cause appended to it.
//
// Error should not be used directly; call NewError or ConversionError to
// create one.
type Error struct {
	msg   string
	cause []error
}

// Error returns the message defined for the Error. If a message was defined for
// it when created, that message is returned, concatenated with the result of
// calling Error() on its first cause if one is defined. If no message or an
// empty message was defined for it when created, but there is at least one
// cause defined for it, the result of calling Error() on the first cause is
// returned. If no message is defined and no causes are defined, returns the
// empty string.
func (e Error) Error() string {
	if e.msg == "" && e.cause != nil {
		return e.cause[0].Error()
	}

	if e.cause != nil {
		return e.msg + ": " + e.cause[0].Error()
	}

	return e.msg
}

// Unwrap returns the causes of Error. The return value will be nil if no causes
// were defined for it.
//
// This function is for interaction with the errors API. It will only be used in
// Go version 1.20 and later; 1.19 will default to use of Error.Is when calling
// errors.Is on the Error.
func (e Error) Unwrap() []error {
	if len(e.cause) > 0 {
		return e.cause
	}
	return nil
}

// Is returns whether Error either Is itself the given target error, or one of
// its causes is.
//
// This function is for interaction with the errors API.
func (e Error) Is(target error) bool {
	if errTarget, ok := target.(Error); ok {
		if e.msg == errTarget.msg && len(e.cause) == len(errTarget.cause) {
			allCausesEqual := true
			for i := range e.cause {
				if e.cause[i] != errTarget.cause[i] {
					allCausesEqual = false
					break
				}
			}
			if allCausesEqual {
				return true
			}
		}
	}

	// Go 1.19 has no multi-error unwrapping, so walk the causes here rather
	// than leaving it to the errors package.
	for i := range e.cause {
		if sErr, ok := e.cause[i].(Error); ok {
			if sErr.Is(target) {
				return true
			}
		} else if errors.Is(e.cause[i], target) {
			return true
		}
	}
	return false
}

// NewError creates a new Error with the given message, along with any errors it
// should wrap as its causes. Providing cause errors is not required, but will
// cause it to return true when it is checked against that error via a call to
// errors.Is.
func NewError(msg string, causes ...error) Error {
	err := Error{msg: msg}
	if len(causes) > 0 {
		err.cause = make([]error, len(causes))
		copy(err.cause, causes)
	}
	return err
}

// ConversionError creates a new Error that has ErrConversion as a cause in
// addition to any given. The message is built from format and a with
// fmt.Sprintf.
//
// Implementers of ToSQL should return one of these instead of truncating or
// wrapping a value that does not fit in the value model.
func ConversionError(causes []error, format string, a ...any) Error {
	all := make([]error, 0, len(causes)+1)
	all = append(all, causes...)
	all = append(all, ErrConversion)
	return NewError(fmt.Sprintf(format, a...), all...)
}

// wrapConversion makes err an Error that matches ErrConversion if it is not
// already one. err is kept as the first cause so its message is preserved.
func wrapConversion(err error) error {
	if err == nil || errors.Is(err, ErrConversion) {
		return err
	}
	return NewError("", err, ErrConversion)
}
