package cmd

import (
	"bytes"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bnema/gfg-downloader/internal/domain"
	"github.com/bnema/gfg-downloader/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	testPageURL     = "https://www.geeksforgeeks.org/courses/dsa/arrays"
	testManifestURL = "https://cdn.example.com/v/master.m3u8"
)

type stubSession struct{}

func (stubSession) Client() *http.Client { return http.DefaultClient }
func (stubSession) CookiesFile() string  { return "" }

type cliMocks struct {
	auth       *mocks.MockAuthenticator
	resolver   *mocks.MockStreamResolver
	downloader *mocks.MockDownloader
}

func newTestApp(t *testing.T) (*app, cliMocks) {
	t.Helper()

	m := cliMocks{
		auth:       mocks.NewMockAuthenticator(t),
		resolver:   mocks.NewMockStreamResolver(t),
		downloader: mocks.NewMockDownloader(t),
	}

	a := newApp()
	a.authenticator = m.auth
	a.resolver = m.resolver
	a.downloader = m.downloader
	a.isTerminal = func(io.Reader) bool { return false }
	return a, m
}

func executeCLI(t *testing.T, a *app, stdin string, args ...string) (string, string, error) {
	t.Helper()

	root := newRootCmdWith(a)
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func writeSettingsFixture(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.json")
	settings := `{
    "email": "me@example.com",
    "password": "hunter2",
    "output_directory": "` + filepath.ToSlash(filepath.Join(filepath.Dir(path), "downloads")) + `",
    "preferred_downloader": "ffmpeg",
    "video_quality": "best",
    "custom_headers": {"Origin": "https://www.geeksforgeeks.org"}
}
`
	require.NoError(t, os.WriteFile(path, []byte(settings), 0o600))
	return path
}

func expectSuccessfulRun(m cliMocks, outputName string) {
	expectSuccessfulRunFor(m, testPageURL, outputName)
}

func expectSuccessfulRunFor(m cliMocks, pageURL, outputName string) {
	session := stubSession{}
	m.auth.EXPECT().Authenticate(mock.Anything, mock.Anything).Return(session, true).Once()
	m.resolver.EXPECT().Resolve(mock.Anything, pageURL, session).Return(testManifestURL, nil).Once()
	m.downloader.EXPECT().Fetch(mock.Anything, mock.MatchedBy(func(req domain.DownloadRequest) bool {
		return req.StreamURL == testManifestURL && req.OutputName == outputName
	}), domain.ToolFFmpeg, mock.Anything).
		Return(domain.Outcome{Success: true, Tool: domain.ToolFFmpeg, OutputPath: "downloads/" + outputName}).Once()
	m.auth.EXPECT().Deauthenticate(mock.Anything, session).Return(true).Once()
}

func TestVersionPrintsVersion(t *testing.T) {
	a, _ := newTestApp(t)

	stdout, _, err := executeCLI(t, a, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "dev\n", stdout)
}

func TestConfigPathUsesFlag(t *testing.T) {
	a, _ := newTestApp(t)
	path := filepath.Join(t.TempDir(), "settings.json")

	stdout, _, err := executeCLI(t, a, "", "--config", path, "config", "path")
	require.NoError(t, err)
	assert.Equal(t, path+"\n", stdout)
}

func TestConfigSetThenShow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	a, _ := newTestApp(t)
	_, _, err := executeCLI(t, a, "", "--config", path, "config", "set", "preferred_downloader", "ffmpeg")
	require.NoError(t, err)

	a, _ = newTestApp(t)
	_, _, err = executeCLI(t, a, "", "--config", path, "config", "set", "password", "hunter2")
	require.NoError(t, err)

	a, _ = newTestApp(t)
	stdout, _, err := executeCLI(t, a, "", "--config", path, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, stdout, "preferred_downloader = ffmpeg")
	assert.Contains(t, stdout, "password = "+maskedPassword)
	assert.NotContains(t, stdout, "hunter2")
	assert.Contains(t, stdout, "custom_headers.Referer = https://www.geeksforgeeks.org")
}

func TestConfigSetRejectsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	a, _ := newTestApp(t)
	_, _, err := executeCLI(t, a, "", "--config", path, "config", "set", "preferred_downloader", "aria2c")
	require.Error(t, err)

	a, _ = newTestApp(t)
	_, _, err = executeCLI(t, a, "", "--config", path, "config", "set", "colour", "blue")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownSetting)
}

func TestDownloadRequiresCredentialsWhenNotInteractive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	a, _ := newTestApp(t)

	_, _, err := executeCLI(t, a, "", "--config", path, "download", testPageURL)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMissingCredential)
}

func TestDownloadRejectsInvalidInput(t *testing.T) {
	path := writeSettingsFixture(t)

	a, _ := newTestApp(t)
	_, _, err := executeCLI(t, a, "", "--config", path, "download", "www.geeksforgeeks.org/x")
	assert.ErrorIs(t, err, domain.ErrInvalidURL)

	a, _ = newTestApp(t)
	_, _, err = executeCLI(t, a, "", "--config", path, "download", testPageURL, "-o", "bad:name")
	assert.ErrorIs(t, err, domain.ErrInvalidFilename)
}

func TestDownloadHappyPath(t *testing.T) {
	path := writeSettingsFixture(t)
	a, m := newTestApp(t)
	expectSuccessfulRun(m, "lesson.mp4")

	stdout, _, err := executeCLI(t, a, "", "--config", path, "download", testPageURL, "-o", "lesson")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Download completed with ffmpeg")
}

func TestDownloadFailureReturnsErrorWithHints(t *testing.T) {
	path := writeSettingsFixture(t)
	a, m := newTestApp(t)
	session := stubSession{}

	m.auth.EXPECT().Authenticate(mock.Anything, mock.Anything).Return(session, true).Once()
	m.resolver.EXPECT().Resolve(mock.Anything, testPageURL, session).Return("", domain.ErrNoStream).Once()
	m.auth.EXPECT().Deauthenticate(mock.Anything, session).Return(true).Once()

	stdout, _, err := executeCLI(t, a, "", "--config", path, "download", testPageURL)
	require.ErrorIs(t, err, errDownloadFailed)
	assert.Contains(t, stdout, "Troubleshooting:")
	assert.Contains(t, stdout, "Check if the video URL is still valid")
}

func TestDownloadPromptsForMissingInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	a, m := newTestApp(t)
	a.isTerminal = func(io.Reader) bool { return true }

	session := stubSession{}
	m.auth.EXPECT().Authenticate(mock.Anything, mock.MatchedBy(func(s domain.Settings) bool {
		return s.Email == "me@example.com" && s.Password == "hunter2"
	})).Return(session, true).Once()
	m.resolver.EXPECT().Resolve(mock.Anything, testPageURL, session).Return(testManifestURL, nil).Once()
	m.downloader.EXPECT().Fetch(mock.Anything, mock.MatchedBy(func(req domain.DownloadRequest) bool {
		return req.OutputName == "lesson.mp4"
	}), domain.ToolYTDLP, mock.Anything).Return(domain.Outcome{Success: true, Tool: domain.ToolYTDLP}).Once()
	m.auth.EXPECT().Deauthenticate(mock.Anything, session).Return(true).Once()

	stdin := "me@example.com\nhunter2\n" + testPageURL + "\nlesson\n"
	stdout, _, err := executeCLI(t, a, stdin, "--config", path, "download")
	require.NoError(t, err)
	assert.Contains(t, stdout, "First time setup")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"email": "me@example.com"`)
}

func TestDownloadBatchNumbered(t *testing.T) {
	path := writeSettingsFixture(t)
	batch := filepath.Join(t.TempDir(), "urls.txt")
	require.NoError(t, os.WriteFile(batch, []byte("# lessons\n"+testPageURL+"\n\n"+testPageURL+"\n"), 0o600))

	a, m := newTestApp(t)
	expectSuccessfulRun(m, "video_1.mp4")
	expectSuccessfulRun(m, "video_2.mp4")

	stdout, _, err := executeCLI(t, a, "", "--config", path, "download", "--batch", batch, "--numbered")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Downloading video 2/2")
	assert.Contains(t, stdout, "2/2 videos downloaded")
}

func TestDownloadBatchGivesEachPageItsOwnFile(t *testing.T) {
	path := writeSettingsFixture(t)
	batch := filepath.Join(t.TempDir(), "urls.txt")
	require.NoError(t, os.WriteFile(batch, []byte(testPageURL+"\n"+testPageURL+"/\n"), 0o600))

	// The fixture prefers ffmpeg, whose own default name would be shared.
	a, m := newTestApp(t)
	expectSuccessfulRunFor(m, testPageURL, "arrays.mp4")
	expectSuccessfulRunFor(m, testPageURL+"/", "arrays_2.mp4")

	stdout, _, err := executeCLI(t, a, "", "--config", path, "download", "--batch", batch)
	require.NoError(t, err)
	assert.Contains(t, stdout, "2/2 videos downloaded")
}

func TestBatchOutputName(t *testing.T) {
	used := map[string]bool{}

	first := batchOutputName("https://www.geeksforgeeks.org/courses/dsa/arrays?tab=1", 1, false, used)
	assert.Equal(t, "arrays.mp4", first)
	used[first] = true

	assert.Equal(t, "arrays_2.mp4", batchOutputName("https://www.geeksforgeeks.org/other/arrays", 2, false, used))
	assert.Equal(t, "master.mp4", batchOutputName("https://cdn.example.com/v/master.m3u8", 3, false, used))
	assert.Equal(t, "video_4.mp4", batchOutputName("https://www.geeksforgeeks.org/", 4, false, used))
	assert.Equal(t, "video_5.mp4", batchOutputName("https://www.geeksforgeeks.org/a/b", 5, true, used))
}

func TestAuthCheck(t *testing.T) {
	path := writeSettingsFixture(t)
	a, m := newTestApp(t)
	session := stubSession{}
	m.auth.EXPECT().Authenticate(mock.Anything, mock.Anything).Return(session, true).Once()
	m.auth.EXPECT().Deauthenticate(mock.Anything, session).Return(true).Once()

	stdout, stderr, err := executeCLI(t, a, "", "--config", path, "auth", "check")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Logged in as me@example.com")
	assert.Contains(t, stderr, "Logging in as me@example.com\nLogging out\n")
}

func TestAuthCheckFailure(t *testing.T) {
	path := writeSettingsFixture(t)
	a, m := newTestApp(t)
	m.auth.EXPECT().Authenticate(mock.Anything, mock.Anything).Return(nil, false).Once()

	_, stderr, err := executeCLI(t, a, "", "--config", path, "auth", "check")
	require.ErrorIs(t, err, domain.ErrAuthFailed)
	assert.NotContains(t, stderr, "Logging out")
}

func TestResolvePrintsStreamURL(t *testing.T) {
	path := writeSettingsFixture(t)
	a, m := newTestApp(t)
	session := stubSession{}
	m.auth.EXPECT().Authenticate(mock.Anything, mock.Anything).Return(session, true).Once()
	m.resolver.EXPECT().Resolve(mock.Anything, testPageURL, session).Return(testManifestURL, nil).Once()
	m.auth.EXPECT().Deauthenticate(mock.Anything, session).Return(true).Once()

	stdout, _, err := executeCLI(t, a, "", "--config", path, "resolve", testPageURL)
	require.NoError(t, err)
	assert.Equal(t, testManifestURL+"\n", stdout)
}
