package cookies

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const jarFixture = `# Netscape HTTP Cookie File
# This is a generated file! Do not edit.

.geeksforgeeks.org	TRUE	/	TRUE	1893456000	gfg_id5_identity	abc123
#HttpOnly_auth.geeksforgeeks.org	FALSE	/	FALSE	0	PHPSESSID	sess42
broken line without tabs
`

func TestParseNetscape(t *testing.T) {
	t.Parallel()

	got, err := ParseNetscape(strings.NewReader(jarFixture))
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "gfg_id5_identity", got[0].Name)
	assert.Equal(t, "abc123", got[0].Value)
	assert.Equal(t, ".geeksforgeeks.org", got[0].Domain)
	assert.True(t, got[0].Secure)
	assert.False(t, got[0].HttpOnly)
	assert.Equal(t, int64(1893456000), got[0].Expires.Unix())

	assert.Equal(t, "PHPSESSID", got[1].Name)
	assert.True(t, got[1].HttpOnly)
	assert.True(t, got[1].Expires.IsZero())
}

func TestLoadFileMissingIsEmpty(t *testing.T) {
	t.Parallel()

	got, err := LoadFile(filepath.Join(t.TempDir(), "cookies.txt"))
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = LoadFile("")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestLoadFileAndFFmpegOption(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "cookies.txt")
	require.NoError(t, os.WriteFile(path, []byte(jarFixture), 0o600))

	got, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t,
		"gfg_id5_identity=abc123; path=/; domain=.geeksforgeeks.org; secure;\n"+
			"PHPSESSID=sess42; path=/; domain=auth.geeksforgeeks.org;\n",
		FFmpegOption(got),
	)
}
