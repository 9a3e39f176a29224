package enc

import (
	"sort"

	"github.com/pkg/errors"
)

// Well-known alphabets. The base32 one is the Crockford-style set without
// the easily confused I, L, O and U; base58 is the bitcoin set; the base91
// set comes from the basE91 project.
const (
	cb2  = "01"
	cb8  = "01234567"
	cb16 = "0123456789abcdef"
	cb32 = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"
	cb36 = "0123456789abcdefghijklmnopqrstuvwxyz"
	cb58 = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"
	cb62 = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	cb91 = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789!#$%&()*+,-/:;<=>?@[]^_`{|}~\""
)

// Ready-made encodings for the well-known alphabets.
var (
	Base2  = MustNewEncoding(cb2)
	Base8  = MustNewEncoding(cb8)
	Base16 = MustNewEncoding(cb16)
	Base32 = MustNewEncoding(cb32)
	Base36 = MustNewEncoding(cb36)
	Base58 = MustNewEncoding(cb58)
	Base62 = MustNewEncoding(cb62)
	Base91 = MustNewEncoding(cb91)
)

var registry = map[string]*Encoding{
	"base2":  Base2,
	"base8":  Base8,
	"base16": Base16,
	"base32": Base32,
	"base36": Base36,
	"base58": Base58,
	"base62": Base62,
	"base91": Base91,
}

// Lookup resolves a well-known encoding by name, e.g. "base58".
func Lookup(name string) (*Encoding, error) {
	if e, ok := registry[name]; ok {
		return e, nil
	}
	return nil, errors.Errorf("unknown encoding %q, known encodings are %v", name, Names())
}

// Names returns the names of all well-known encodings, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
