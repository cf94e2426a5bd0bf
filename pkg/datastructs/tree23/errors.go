package tree23

import "github.com/pkg/errors"

// ErrDuplicateKey is returned by Insert when the key is already stored. The
// tree is left untouched.
var ErrDuplicateKey = errors.New("duplicate key")
