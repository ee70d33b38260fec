package hashfn

import "github.com/pkg/errors"

var (
	ErrInvalidParameter = errors.New("hashfn: invalid parameter")
)
