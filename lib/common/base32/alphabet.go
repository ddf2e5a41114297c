package base32

import (
	"strings"

	"github.com/go-i2p/logger"
	"github.com/samber/oops"
)

// AlphabetSize is the number of symbols in every alphabet.
const AlphabetSize = 32

const (
	// DefaultAlphabet is digits and upper case letters without I, L, O and S.
	DefaultAlphabet = "0123456789ABCDEFGHJKMNPQRTUVWXYZ"
	// RFC4648Alphabet is the base32 alphabet of RFC 4648 section 6.
	RFC4648Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ234567"
	// ExtHexAlphabet is the "base32hex" alphabet of RFC 4648 section 7.
	ExtHexAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUV"
	// NatAreaAlphabet is the Natural Area Coding alphabet.
	NatAreaAlphabet = "0123456789ABCDFGHJKLMNPQRSTVWXYZ"
)

type namedAlphabet struct {
	name  string
	chars string
}

var namedAlphabets = []namedAlphabet{
	{"default", DefaultAlphabet},
	{"rfc4648", RFC4648Alphabet},
	{"exthex", ExtHexAlphabet},
	{"natarea", NatAreaAlphabet},
}

// AlphabetNames returns the names accepted by LookupAlphabet in declaration order.
func AlphabetNames() []string {
	names := make([]string, 0, len(namedAlphabets))
	for _, a := range namedAlphabets {
		names = append(names, a.name)
	}
	return names
}

// LookupAlphabet returns the characters of a built-in alphabet.
// Names are matched case-insensitively.
func LookupAlphabet(name string) (string, bool) {
	for _, a := range namedAlphabets {
		if strings.EqualFold(a.name, name) {
			return a.chars, true
		}
	}
	return "", false
}

// ResolveAlphabet turns a user supplied alphabet selector into alphabet
// characters. Built-in names win; anything else must itself be a valid alphabet.
func ResolveAlphabet(selector string) (string, error) {
	if chars, ok := LookupAlphabet(selector); ok {
		return chars, nil
	}
	if err := validateAlphabet(selector); err != nil {
		return "", err
	}
	return selector, nil
}

// validateAlphabet checks that alphabet holds exactly 32 distinct ASCII characters.
func validateAlphabet(alphabet string) error {
	if len(alphabet) != AlphabetSize {
		log.WithFields(logger.Fields{
			"at":     "base32.validateAlphabet",
			"length": len(alphabet),
			"reason": "wrong length",
		}).Debug("rejecting alphabet")
		return oops.Wrapf(ErrInvalidAlphabet, "alphabet has %d characters, want %d", len(alphabet), AlphabetSize)
	}

	var seen [256]bool
	for i := 0; i < len(alphabet); i++ {
		c := alphabet[i]
		if c >= 0x80 {
			log.WithFields(logger.Fields{
				"at":     "base32.validateAlphabet",
				"offset": i,
				"reason": "non-ascii byte",
			}).Debug("rejecting alphabet")
			return oops.Wrapf(ErrInvalidAlphabet, "alphabet byte 0x%02x at offset %d is not ASCII", c, i)
		}
		if seen[c] {
			log.WithFields(logger.Fields{
				"at":     "base32.validateAlphabet",
				"offset": i,
				"reason": "duplicate character",
			}).Debug("rejecting alphabet")
			return oops.Wrapf(ErrInvalidAlphabet, "alphabet repeats %q at offset %d", c, i)
		}
		seen[c] = true
	}
	return nil
}
