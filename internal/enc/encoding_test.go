package enc

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

var encoderTest = []byte("\000\000\000\000\377\377\377\377\125\125\125\125\252\252\252\252" +
	"\201\143\310\322\307\174\262\027\137\117\316\311\111\055\122\041" +
	"\141\251\161\040\045\263\006\163\346\330\104\060\171\120\127\277")

func Test_NewEncoding_TooShort(t *testing.T) {
	for _, alphabet := range []string{"", "a"} {
		_, err := NewEncoding(alphabet)
		require.Error(t, err)
		require.True(t, IsInvalidAlphabet(err), "expected an invalid alphabet error for %q, got: %v", alphabet, err)
	}
}

func Test_NewEncoding_Duplicates(t *testing.T) {
	_, err := NewEncoding("aab")
	require.Error(t, err)
	require.True(t, IsInvalidAlphabet(err))
}

func Test_NewEncoding_ReportsEveryDuplicate(t *testing.T) {
	_, err := NewEncoding("abcabc")
	require.Error(t, err)
	require.True(t, IsInvalidAlphabet(err))
	require.Contains(t, err.Error(), "symbol 'a'")
	require.Contains(t, err.Error(), "symbol 'b'")
	require.Contains(t, err.Error(), "symbol 'c'")
}

func Test_NewEncoding_Valid(t *testing.T) {
	e, err := NewEncoding("01")
	require.NoError(t, err)
	require.Equal(t, 2, e.Radix())
	require.Equal(t, "01", e.Alphabet())
	require.Equal(t, "base2", e.String())
}

func Test_Encoding_Empty(t *testing.T) {
	require.Equal(t, "", Base16.Encode(nil))
	require.Equal(t, "", Base16.Encode([]byte{}))

	decoded, err := Base16.Decode("")
	require.NoError(t, err)
	require.Equal(t, []byte{}, decoded)
}

func Test_Encoding_SingleByte(t *testing.T) {
	require.Equal(t, "ff", Base16.Encode([]byte{0xff}))

	decoded, err := Base16.Decode("ff")
	require.NoError(t, err)
	require.Equal(t, []byte{0xff}, decoded)
}

func Test_Encoding_LeadingZeroes(t *testing.T) {
	require.Equal(t, "001", Base16.Encode([]byte{0x00, 0x00, 0x01}))

	decoded, err := Base16.Decode("001")
	require.NoError(t, err)
	require.Equal(t, []byte{0x00, 0x00, 0x01}, decoded)
}

// A zero-valued input must not collapse: each leading zero byte maps to one
// zero symbol and the (zero) magnitude still yields a final zero symbol.
func Test_Encoding_AllZeroBytes(t *testing.T) {
	require.Equal(t, "000", Base2.Encode([]byte{0, 0, 0}))

	decoded, err := Base2.Decode("000")
	require.NoError(t, err)
	require.Equal(t, []byte{0, 0, 0}, decoded)
}

func Test_Encoding_SingleZeroByte(t *testing.T) {
	require.Equal(t, "0", Base2.Encode([]byte{0}))

	decoded, err := Base2.Decode("0")
	require.NoError(t, err)
	require.Equal(t, []byte{0}, decoded)
}

func Test_Encoding_InvalidCharacter(t *testing.T) {
	_, err := Base2.Decode("012")
	require.Error(t, err)
	require.True(t, IsInvalidCharacter(err), "expected an invalid character error, got: %v", err)
	require.Contains(t, err.Error(), "'2'")
}

func Test_Encoding_RoundTrip(t *testing.T) {
	for _, name := range Names() {
		encoding, err := Lookup(name)
		require.NoError(t, err)

		encoded := encoding.Encode(encoderTest)
		decoded, err := encoding.Decode(encoded)
		require.NoError(t, err, "%v failed to decode %q", encoding, encoded)
		require.Equal(t, encoderTest, decoded, "%v did not round-trip", encoding)
	}
}

func Test_Encoding_RoundTripCustomAlphabet(t *testing.T) {
	encoding, err := NewEncoding("!@#$%^&*()")
	require.NoError(t, err)

	for _, data := range [][]byte{
		{0x01},
		{0x00, 0x01},
		{0x00, 0x00, 0x00},
		encoderTest,
	} {
		encoded := encoding.Encode(data)
		decoded, err := encoding.Decode(encoded)
		require.NoError(t, err)
		require.Equal(t, data, decoded)
	}
}

// Symbol order defines symbol value, so permuted alphabets are incompatible.
func Test_Encoding_AlphabetOrderMatters(t *testing.T) {
	forward, err := NewEncoding("0123456789abcdef")
	require.NoError(t, err)
	backward, err := NewEncoding("fedcba9876543210")
	require.NoError(t, err)

	data := []byte{0x12, 0x34, 0xff}
	require.NotEqual(t, forward.Encode(data), backward.Encode(data))
}

// An Encoding is read-only after construction and may be shared freely.
func Test_Encoding_ConcurrentUse(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				encoded := Base58.Encode(encoderTest)
				decoded, err := Base58.Decode(encoded)
				require.NoError(t, err)
				require.Equal(t, encoderTest, decoded)
			}
		}()
	}
	wg.Wait()
}
