package base32

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidAlphabet  = errors.New("base32: invalid alphabet")
	ErrInvalidCharacter = errors.New("base32: invalid character")
	ErrInvalidInput     = errors.New("base32: invalid input: trailing bits without a byte")
)

// CharacterError reports a symbol that is not part of the codec's alphabet.
// It matches ErrInvalidCharacter under errors.Is.
type CharacterError struct {
	// Char is the offending input byte.
	Char byte
	// Offset is the byte position of Char in the decoded string.
	Offset int
	// Alphabet holds the valid characters.
	Alphabet string
}

func (e *CharacterError) Error() string {
	return fmt.Sprintf("base32: invalid character %q at offset %d, valid characters: %s",
		e.Char, e.Offset, e.Alphabet)
}

func (e *CharacterError) Unwrap() error {
	return ErrInvalidCharacter
}
