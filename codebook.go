package hufftree

import (
	"bytes"
	"fmt"
	"io"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Codebook maps each Symbol of an alphabet to its Code.
type Codebook map[Symbol]Code

// Symbols returns the Symbols of this Codebook in ascending order.
func (cb Codebook) Symbols() []Symbol {
	symbols := maps.Keys(cb)
	slices.Sort(symbols)
	return symbols
}

// MinSize is the bit length of the shortest Code.
func (cb Codebook) MinSize() uint {
	var minSize uint
	first := true
	for _, hc := range cb {
		if first || hc.Size() < minSize {
			minSize = hc.Size()
			first = false
		}
	}
	return minSize
}

// MaxSize is the bit length of the longest Code.
func (cb Codebook) MaxSize() uint {
	var maxSize uint
	for _, hc := range cb {
		if hc.Size() > maxSize {
			maxSize = hc.Size()
		}
	}
	return maxSize
}

// WeightedLength returns the sum, over every Symbol in freqs, of the
// Symbol's frequency times the bit length of its Code.  This is the number
// of bits needed to encode a message with those frequencies.
//
// Symbols missing from this Codebook contribute nothing.
//
func (cb Codebook) WeightedLength(freqs Frequencies) uint64 {
	var total uint64
	for symbol, freq := range freqs {
		if hc, found := cb[symbol]; found {
			total += uint64(freq) * uint64(hc.Size())
		}
	}
	return total
}

// IsPrefixFree returns true iff no Code is a prefix of another Code.
func (cb Codebook) IsPrefixFree() bool {
	symbols := cb.Symbols()
	for _, a := range symbols {
		for _, b := range symbols {
			if a != b && cb[b].HasPrefix(cb[a]) {
				return false
			}
		}
	}
	return true
}

// Dump writes a programmer-readable debugging dump of the Codebook to the
// given writer.
func (cb Codebook) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Codebook{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", cb.MinSize())
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", cb.MaxSize())
	for _, symbol := range cb.Symbols() {
		fmt.Fprintf(&buf, "\tEncode(%v) = %s\n", symbol, cb[symbol])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
