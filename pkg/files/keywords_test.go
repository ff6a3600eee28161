package files

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKeywords(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "empty input", input: "", want: nil},
		{name: "trims each line", input: "  jazz \nblues\t\n", want: []string{"jazz", "blues"}},
		{name: "keeps blank lines", input: "rock\n\npop", want: []string{"rock", "", "pop"}},
		{name: "windows line endings", input: "a\r\nb\r\n", want: []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseKeywords(strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadKeywordsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keywords.txt")
	require.NoError(t, os.WriteFile(path, []byte("one\ntwo\n"), 0644))

	got, err := ReadKeywordsFile(path, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two"}, got)

	got, err = ReadKeywordsFile("-", strings.NewReader("stdin kw\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"stdin kw"}, got)

	_, err = ReadKeywordsFile(filepath.Join(t.TempDir(), "missing.txt"), nil)
	assert.Error(t, err)
}
