package chained

import "github.com/pkg/errors"

var (
	ErrBadHashFunc = errors.New("chained: hash function must not be nil")
)
