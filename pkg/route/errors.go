package route

import "errors"

var (
	ErrInvalidRecord = errors.New("invalid route record")
	ErrDuplicateName = errors.New("duplicate route name")
	ErrRedirectLoop  = errors.New("redirect loop")
)
