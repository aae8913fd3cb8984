package hufftree

import (
	"github.com/pkg/errors"
)

// ErrInvalidInput is returned (possibly wrapped) when a frequency table can't
// be turned into a code: it's empty, or it holds a zero frequency or an
// invalid Symbol.
var ErrInvalidInput = errors.New("invalid input")

// ErrInvalidTree is returned (possibly wrapped) by Validate.
var ErrInvalidTree = errors.New("invalid Huffman tree")

// ErrInvalidCode is returned (possibly wrapped) by ParseCode.
var ErrInvalidCode = errors.New("invalid code")
