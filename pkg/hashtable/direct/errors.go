package direct

import "github.com/pkg/errors"

var (
	ErrBadSize       = errors.New("direct: table size must be positive")
	ErrKeyOutOfRange = errors.New("direct: key out of range")
)
