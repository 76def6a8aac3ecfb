package errors

import "errors"

// ErrUsage is returned when the command was invoked without a host. The usage
// text has already been printed by the time it is returned.
var ErrUsage = errors.New("usage")

type safeError struct {
	err error
	msg string
}

func SafeWrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return &safeError{
		err: err,
		msg: msg,
	}
}

func (se *safeError) Error() string {
	return se.msg + ": " + se.err.Error()
}

func (se *safeError) Unwrap() error {
	return se.err
}
