package hashtable

import "github.com/pkg/errors"

var (
	ErrUnknownKind = errors.New("hashtable: unknown table kind")
)
