package hufftree

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bits-and-blooms/bitset"
	"github.com/chronos-tachyon/assert"
	"github.com/pkg/errors"
)

// Code represents a sequence of bits.  The zero value is the empty Code.
//
// Codes are immutable once constructed and may be shared freely.
type Code struct {
	size uint
	bits *bitset.BitSet
}

// MakeCode is a convenience function that constructs a Code.  Each argument
// is one bit, first bit first, and must be 0 or 1.
func MakeCode(bits ...byte) Code {
	if len(bits) == 0 {
		return Code{}
	}
	size := uint(len(bits))
	set := bitset.New(size)
	for index, bit := range bits {
		assert.Assertf(bit <= 1, "bit %d is %d, expected 0 or 1", index, bit)
		if bit != 0 {
			set.Set(uint(index))
		}
	}
	return Code{size: size, bits: set}
}

// ParseCode parses a string of '0' and '1' characters into a Code.
func ParseCode(str string) (Code, error) {
	bits := make([]byte, len(str))
	for index := 0; index < len(str); index++ {
		switch ch := str[index]; ch {
		case '0':
			bits[index] = 0
		case '1':
			bits[index] = 1
		default:
			return Code{}, errors.Wrapf(ErrInvalidCode, "unexpected character %q at offset %d in %q", ch, index, str)
		}
	}
	return MakeCode(bits...), nil
}

// Size returns the number of bits in this Code.
func (hc Code) Size() uint {
	return hc.size
}

// Bit returns the i'th bit of this Code, counting from 0.
func (hc Code) Bit(i uint) byte {
	assert.Assertf(i < hc.size, "bit index %d out of range for Code of size %d", i, hc.size)
	if hc.bits.Test(i) {
		return 1
	}
	return 0
}

// HasPrefix returns true iff the first prefix.Size() bits of this Code are
// equal to prefix.  Every Code has itself and the empty Code as prefixes.
func (hc Code) HasPrefix(prefix Code) bool {
	if prefix.size > hc.size {
		return false
	}
	for i := uint(0); i < prefix.size; i++ {
		if hc.Bit(i) != prefix.Bit(i) {
			return false
		}
	}
	return true
}

// Equal returns true iff both Codes hold the same bits.
func (hc Code) Equal(other Code) bool {
	return hc.size == other.size && hc.HasPrefix(other)
}

// Bits returns the bits of this Code as a string of '0' and '1' characters.
func (hc Code) Bits() string {
	var buf strings.Builder
	buf.Grow(int(hc.size))
	for i := uint(0); i < hc.size; i++ {
		buf.WriteByte('0' + hc.Bit(i))
	}
	return buf.String()
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	if hc.size == 0 {
		return "\"\""
	}
	return strconv.Quote(hc.Bits())
}

var _ fmt.Stringer = Code{}
