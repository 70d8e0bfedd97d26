package types

import "errors"

var (
	ErrInvalidOption  = errors.New("invalid option")
	ErrInvalidArchive = errors.New("invalid archive")
)
