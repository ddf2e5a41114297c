// Package base32 implements a configurable, unpadded Base32 codec.
//
// A Codec maps every 5-bit group of its input to one character of a
// 32-character alphabet, most significant bit first. Output is never padded:
// n input bytes always encode to exactly ceil(8n/5) characters.
//
// The package ships four alphabets (DefaultAlphabet, RFC4648Alphabet,
// ExtHexAlphabet, NatAreaAlphabet), a ready-made Codec for each, and the
// EncodeToString/DecodeString helpers bound to DefaultCodec.
package base32

import (
	"github.com/go-i2p/logger"
)

var log = logger.GetGoI2PLogger()

// EncodeToString encodes []byte to a base32 string using DefaultCodec
func EncodeToString(data []byte) string {
	return DefaultCodec.Encode(data)
}

// DecodeString decodes a base32 string to []byte using DefaultCodec
func DecodeString(data string) ([]byte, error) {
	return DefaultCodec.Decode(data)
}
