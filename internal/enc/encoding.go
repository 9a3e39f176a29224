package enc

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// Sentinel errors returned (wrapped) by this package. Use errors.Cause or
// the Is* helpers to classify an error you got back.
var (
	// ErrInvalidAlphabet is returned by NewEncoding when the alphabet has
	// fewer than two symbols or repeats a symbol.
	ErrInvalidAlphabet = errors.New("invalid alphabet")
	// ErrInvalidCharacter is returned by Decode when the input contains a
	// character which is not part of the alphabet.
	ErrInvalidCharacter = errors.New("invalid character")
)

// IsInvalidAlphabet reports whether err was caused by a bad alphabet.
func IsInvalidAlphabet(err error) bool {
	return errors.Cause(err) == ErrInvalidAlphabet
}

// IsInvalidCharacter reports whether err was caused by a character outside
// the encoding's alphabet.
func IsInvalidCharacter(err error) bool {
	return errors.Cause(err) == ErrInvalidCharacter
}

// Encoding converts byte sequences to and from their textual representation
// over an arbitrary alphabet. The position of a symbol in the alphabet is its
// numeric value, so permuted alphabets produce incompatible encodings. The
// first symbol doubles as the "zero" symbol: every leading zero byte of the
// input is carried over as one leading zero symbol of the output (the
// bitcoin-style base58 convention), which is what keeps leading zero bytes
// from being swallowed by the numeric conversion.
//
// An Encoding is immutable once constructed and safe for concurrent use.
type Encoding struct {
	alphabet string
	radix    int
	index    map[byte]int
}

// NewEncoding builds an Encoding from the given alphabet. The alphabet must
// contain at least two symbols and no symbol may repeat; every duplicated
// symbol is reported, not just the first one found.
func NewEncoding(alphabet string) (*Encoding, error) {
	if len(alphabet) < 2 {
		return nil, errors.Wrapf(ErrInvalidAlphabet, "need at least 2 symbols, got %d", len(alphabet))
	}

	index := make(map[byte]int, len(alphabet))
	var dups error
	for i := 0; i < len(alphabet); i++ {
		c := alphabet[i]
		if first, ok := index[c]; ok {
			dups = multierror.Append(dups, errors.Errorf("symbol %q at position %d repeats position %d", c, i, first))
			continue
		}
		index[c] = i
	}
	if dups != nil {
		return nil, errors.Wrap(ErrInvalidAlphabet, dups.Error())
	}

	return &Encoding{
		alphabet: alphabet,
		radix:    len(alphabet),
		index:    index,
	}, nil
}

// MustNewEncoding is like NewEncoding but panics on an invalid alphabet.
// It is meant for package-level variables with known-good alphabets.
func MustNewEncoding(alphabet string) *Encoding {
	e, err := NewEncoding(alphabet)
	if err != nil {
		panic(err)
	}
	return e
}

// Alphabet returns the symbol sequence this encoding was built from.
func (e *Encoding) Alphabet() string {
	return e.alphabet
}

// Radix returns the number of symbols in the alphabet.
func (e *Encoding) Radix() int {
	return e.radix
}

func (e *Encoding) String() string {
	return fmt.Sprintf("base%d", e.radix)
}

// Encode converts data into its textual form. The input is treated as one
// big-endian unsigned integer and rewritten digit by digit into the
// encoding's radix; leading zero bytes become leading zero symbols. Encode
// never fails and returns the empty string for empty input.
func (e *Encoding) Encode(data []byte) string {
	if len(data) == 0 {
		return ""
	}

	// Base-radix digits of the input, least significant first. Seeded with
	// a single zero digit so a zero-valued input still yields one symbol.
	digits := []int{0}
	for i := 0; i < len(data); i++ {
		carry := int(data[i])
		for j := 0; j < len(digits); j++ {
			carry += digits[j] << 8
			digits[j] = carry % e.radix
			carry /= e.radix
		}
		for carry > 0 {
			digits = append(digits, carry%e.radix)
			carry /= e.radix
		}
	}

	var out strings.Builder
	out.Grow(len(digits) + len(data))
	for i := 0; i < len(data)-1 && data[i] == 0; i++ {
		out.WriteByte(e.alphabet[0])
	}
	for i := len(digits) - 1; i >= 0; i-- {
		out.WriteByte(e.alphabet[digits[i]])
	}
	return out.String()
}

// Decode converts source back into the byte sequence it was encoded from.
// It is the exact inverse of Encode under the same alphabet and fails with
// ErrInvalidCharacter on the first character outside the alphabet, returning
// no partial result.
func (e *Encoding) Decode(source string) ([]byte, error) {
	if len(source) == 0 {
		return []byte{}, nil
	}

	// Base-256 value of the input, least significant byte first.
	buf := []byte{0}
	for i := 0; i < len(source); i++ {
		carry, ok := e.index[source[i]]
		if !ok {
			return nil, errors.Wrapf(ErrInvalidCharacter, "character %q at position %d is not part of the alphabet", source[i], i)
		}
		for j := 0; j < len(buf); j++ {
			carry += int(buf[j]) * e.radix
			buf[j] = byte(carry & 0xff)
			carry >>= 8
		}
		for carry > 0 {
			buf = append(buf, byte(carry&0xff))
			carry >>= 8
		}
	}

	for i := 0; i < len(source)-1 && source[i] == e.alphabet[0]; i++ {
		buf = append(buf, 0)
	}

	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return buf, nil
}
