package cmd

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pipeWith(t *testing.T, input string) *os.File {
	t.Helper()

	r, w, err := os.Pipe()
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close() })

	_, err = w.WriteString(input)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return r
}

func TestPrompterSecretKeepsBufferedInput(t *testing.T) {
	out := &bytes.Buffer{}
	p := newPrompter(pipeWith(t, "me@example.com\nhunter2\n"), out, true)

	email, err := p.line("Email: ")
	require.NoError(t, err)
	assert.Equal(t, "me@example.com", email)

	password, err := p.secret("Password: ")
	require.NoError(t, err)
	assert.Equal(t, "hunter2", password)
	assert.Equal(t, "Email: Password: ", out.String())
}

func TestPrompterSecretReadsPipeWithoutTerminal(t *testing.T) {
	p := newPrompter(pipeWith(t, "hunter2\n"), &bytes.Buffer{}, true)

	password, err := p.secret("Password: ")
	require.NoError(t, err)
	assert.Equal(t, "hunter2", password)
}

func TestPrompterRefusesWhenNotInteractive(t *testing.T) {
	p := newPrompter(pipeWith(t, "x\n"), &bytes.Buffer{}, false)

	_, err := p.secret("Password: ")
	require.ErrorIs(t, err, errNotInteractive)
}
