package hufftree

import (
	"math"
	"strconv"
)

// Symbol represents a symbol in an arbitrary alphabet, typically a rune or a
// byte value.  Negative symbols are not valid.
type Symbol int32

// MaxSymbol is the maximum valid symbol.
const MaxSymbol = Symbol(math.MaxInt32)

// InvalidSymbol is returned by some functions to clearly indicate that no
// symbol is being returned.
const InvalidSymbol = Symbol(-1)

// IsValid returns true iff this Symbol is in the range [0, MaxSymbol].
func (s Symbol) IsValid() bool {
	return s >= 0
}

// String returns the Symbol as a quoted rune.
func (s Symbol) String() string {
	if !s.IsValid() {
		return "InvalidSymbol"
	}
	return strconv.QuoteRune(rune(s))
}
