package token

import "errors"

var (
	ErrString = errors.New("not a string")
)
