package base32

import (
	"github.com/go-i2p/logger"
)

// invalidIndex marks bytes that are not part of the alphabet in Codec.lookup.
const invalidIndex = 0xFF

// Pre-built codecs for the named alphabets.
var (
	DefaultCodec = MustNewCodec(DefaultAlphabet)
	RFC4648Codec = MustNewCodec(RFC4648Alphabet)
	ExtHexCodec  = MustNewCodec(ExtHexAlphabet)
	NatAreaCodec = MustNewCodec(NatAreaAlphabet)
)

// Codec encodes and decodes unpadded base32 with a fixed alphabet.
// A Codec is immutable once built and safe for concurrent use.
type Codec struct {
	alphabet string
	table    [AlphabetSize]byte
	lookup   [256]byte
}

// NewCodec builds a Codec for alphabet. An empty alphabet selects DefaultAlphabet.
// The alphabet must consist of exactly 32 distinct ASCII characters, otherwise
// the returned error matches ErrInvalidAlphabet.
func NewCodec(alphabet string) (*Codec, error) {
	if alphabet == "" {
		alphabet = DefaultAlphabet
	}
	if err := validateAlphabet(alphabet); err != nil {
		return nil, err
	}

	c := &Codec{alphabet: alphabet}
	for i := range c.lookup {
		c.lookup[i] = invalidIndex
	}
	for i := 0; i < AlphabetSize; i++ {
		c.table[i] = alphabet[i]
		c.lookup[alphabet[i]] = byte(i)
	}

	log.WithFields(logger.Fields{
		"at":       "base32.NewCodec",
		"alphabet": alphabet,
	}).Debug("built base32 codec")
	return c, nil
}

// MustNewCodec is like NewCodec but panics if the alphabet is invalid.
func MustNewCodec(alphabet string) *Codec {
	c, err := NewCodec(alphabet)
	if err != nil {
		panic(err)
	}
	return c
}

// Alphabet returns the characters of the codec, ordered by symbol index.
func (c *Codec) Alphabet() string {
	return c.alphabet
}

// EncodedLen returns the length in characters of the encoding of n bytes.
func EncodedLen(n int) int {
	return (n*8 + 4) / 5
}

// DecodedLen returns the number of bytes Decode yields for n characters.
func DecodedLen(n int) int {
	return n * 5 / 8
}

// Encode returns the base32 representation of src.
//
// Every byte adds three bits to the carry: the top bits of the byte, joined
// below the carry, make one symbol, and once five or more bits are pending a
// second symbol is cut straight out of the same byte. Bits still pending after
// the last byte are emitted left-aligned in a final symbol.
func (c *Codec) Encode(src []byte) string {
	if len(src) == 0 {
		return ""
	}

	dst := make([]byte, 0, EncodedLen(len(src)))
	var carry byte
	var carryBits uint

	for _, b := range src {
		carryBits += 3
		dst = append(dst, c.table[(b>>carryBits)&0x1F|carry<<(8-carryBits)])
		carry = b & (1<<carryBits - 1)

		if carryBits > 4 {
			carryBits -= 5
			dst = append(dst, c.table[(b>>carryBits)&0x1F])
			carry = b & (1<<carryBits - 1)
		}
	}

	if carryBits > 0 {
		dst = append(dst, c.table[carry<<(5-carryBits)])
	}
	return string(dst)
}

// Decode returns the bytes represented by src.
//
// Any character outside the alphabet fails the whole call with a
// *CharacterError. Bits left over after the last full byte are merged into
// that byte; a lone symbol, which leaves bits but no byte to merge them into,
// fails with ErrInvalidInput.
func (c *Codec) Decode(src string) ([]byte, error) {
	dst := make([]byte, 0, DecodedLen(len(src)))
	var chunk uint
	var bits uint

	for i := 0; i < len(src); i++ {
		idx := c.lookup[src[i]]
		if idx == invalidIndex {
			log.WithFields(logger.Fields{
				"at":     "(Codec) Decode",
				"offset": i,
				"reason": "character not in alphabet",
			}).Debug("base32 decode failed")
			return nil, &CharacterError{Char: src[i], Offset: i, Alphabet: c.alphabet}
		}

		chunk = chunk<<5 | uint(idx)
		bits += 5

		if bits > 7 {
			bits -= 8
			dst = append(dst, byte(chunk>>bits))
			chunk &= 1<<bits - 1
		}
	}

	if bits > 0 {
		if len(dst) == 0 {
			log.WithFields(logger.Fields{
				"at":     "(Codec) Decode",
				"length": len(src),
				"reason": "trailing bits without a byte",
			}).Debug("base32 decode failed")
			return nil, ErrInvalidInput
		}
		dst[len(dst)-1] |= byte(chunk & (1<<bits - 1))
	}
	return dst, nil
}
