package attendance

import "errors"

var (
	ErrInvalidDate = errors.New("invalid date format, expected YYYY-MM-DD")
)
