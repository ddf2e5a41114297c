package base32

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeNotMangled(t *testing.T) {
	assert := assert.New(t)

	// Random pangram
	testInput := []byte("How vexingly quick daft zebras jump!")

	encodedString := EncodeToString(testInput)
	decodedString, err := DecodeString(encodedString)
	assert.Nil(err)

	assert.Equal(testInput, decodedString)
}

func TestHelpersUseDefaultAlphabet(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("64", EncodeToString([]byte("1")))
	assert.Equal(DefaultAlphabet, DefaultCodec.Alphabet())
}
