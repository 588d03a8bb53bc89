package httperr

import "errors"

// As extracts the typed error from a wrapped chain.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

func HasCode(err error, code string) bool {
	if e, ok := As(err); ok {
		return e.Code == code
	}
	return false
}

func HasStatus(err error, status int) bool {
	if e, ok := As(err); ok {
		return e.Status == status
	}
	return false
}
