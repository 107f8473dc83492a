package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTokenize tests shell-style word splitting with quotes.
func TestTokenize(t *testing.T) {
	for _, tc := range []struct {
		line string
		want []string
	}{
		{"ls", []string{"ls"}},
		{"ls /home", []string{"ls", "/home"}},
		{`chown "new owner" /etc/motd`, []string{"chown", "new owner", "/etc/motd"}},
		{`rm 'a file.txt'`, []string{"rm", "a file.txt"}},
		{"  cd   /tmp  ", []string{"cd", "/tmp"}},
	} {
		tokens, err := Tokenize(tc.line)
		require.NoError(t, err, tc.line)
		assert.Equal(t, tc.want, tokens, tc.line)
	}
}

// TestTokenizeUnterminatedQuote tests that open quotes are a syntax error.
func TestTokenizeUnterminatedQuote(t *testing.T) {
	for _, line := range []string{`ls "foo`, `rm 'bar`, `chown "a b`} {
		_, err := Tokenize(line)
		assert.Error(t, err, line)
	}
}
