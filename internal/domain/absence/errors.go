package absence

import "errors"

var (
	ErrReasonNotFound   = errors.New("absence reason not found")
	ErrReasonCodeExists = errors.New("absence reason code already exists")
)
