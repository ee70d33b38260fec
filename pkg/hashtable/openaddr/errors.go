package openaddr

import "github.com/pkg/errors"

var (
	ErrBadHashFunc = errors.New("openaddr: hash function must not be nil")
	ErrTableFull   = errors.New("openaddr: table is full")
)
