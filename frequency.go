package hufftree

import (
	"bufio"
	"io"
	"math"

	"github.com/pkg/errors"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Frequencies maps each Symbol in an alphabet to the number of times it
// occurs.  Every frequency must be non-zero for the table to be used by
// Build.
type Frequencies map[Symbol]uint32

// Symbols returns the Symbols of this table in ascending order.
func (freqs Frequencies) Symbols() []Symbol {
	symbols := maps.Keys(freqs)
	slices.Sort(symbols)
	return symbols
}

// Total returns the sum of all frequencies in this table.
func (freqs Frequencies) Total() uint64 {
	var total uint64
	for _, freq := range freqs {
		total += uint64(freq)
	}
	return total
}

// Validate checks that this table is usable by Build: it must hold at least
// one Symbol, every Symbol must be valid, and every frequency must be
// non-zero.  Errors wrap ErrInvalidInput.
func (freqs Frequencies) Validate() error {
	if len(freqs) == 0 {
		return errors.Wrap(ErrInvalidInput, "empty frequency table")
	}
	for _, symbol := range freqs.Symbols() {
		if !symbol.IsValid() {
			return errors.Wrapf(ErrInvalidInput, "invalid symbol %d", int32(symbol))
		}
		if freqs[symbol] == 0 {
			return errors.Wrapf(ErrInvalidInput, "symbol %v has a frequency of 0", symbol)
		}
	}
	return nil
}

// Add records one more occurrence of symbol.  Counts saturate at
// math.MaxUint32.
func (freqs Frequencies) Add(symbol Symbol) {
	if freq := freqs[symbol]; freq < math.MaxUint32 {
		freqs[symbol] = freq + 1
	}
}

// CountRunes counts the runes of a string.  Invalid UTF-8 is counted as
// utf8.RuneError, one per bad byte.
func CountRunes(str string) Frequencies {
	freqs := make(Frequencies)
	for _, ch := range str {
		freqs.Add(Symbol(ch))
	}
	return freqs
}

// CountBytes counts the bytes of a byte slice.
func CountBytes(data []byte) Frequencies {
	freqs := make(Frequencies)
	for _, b := range data {
		freqs.Add(Symbol(b))
	}
	return freqs
}

// ReadRunes counts the runes read from r until EOF.  As with CountRunes,
// invalid UTF-8 is counted as utf8.RuneError.
func ReadRunes(r io.Reader) (Frequencies, error) {
	br := bufio.NewReader(r)
	freqs := make(Frequencies)
	for {
		ch, _, err := br.ReadRune()
		if err == io.EOF {
			return freqs, nil
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to read rune")
		}
		freqs.Add(Symbol(ch))
	}
}

// ReadBytes counts the bytes read from r until EOF.
func ReadBytes(r io.Reader) (Frequencies, error) {
	br := bufio.NewReader(r)
	freqs := make(Frequencies)
	for {
		b, err := br.ReadByte()
		if err == io.EOF {
			return freqs, nil
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to read byte")
		}
		freqs.Add(Symbol(b))
	}
}
