package taggedsentence

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead(t *testing.T) {
	input := "Who/WP did/VBD you/PRP see/VB\nthe/DT dog/NN barks/VB\n"
	sentences, err := Read(strings.NewReader(input), 0)
	require.NoError(t, err)
	require.Len(t, sentences, 2)
	require.Len(t, sentences[0], 4)
	assert.Equal(t, "Who", sentences[0][0].Token)
	assert.Equal(t, "WP", sentences[0][0].POS)
}

func TestTokenWithSeparator(t *testing.T) {
	token, err := ParseToken("1/2/CD")
	require.NoError(t, err)
	assert.Equal(t, "1/2", token.Token)
	assert.Equal(t, "CD", token.POS)
}

func TestReadErrors(t *testing.T) {
	for _, bad := range []string{"word", "word/", "/POS"} {
		_, err := Read(strings.NewReader(bad+"\n"), 0)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestReadLimit(t *testing.T) {
	input := "a/A\nb/B\nc/C\n"
	sentences, err := Read(strings.NewReader(input), 2)
	require.NoError(t, err)
	assert.Len(t, sentences, 2)
}
