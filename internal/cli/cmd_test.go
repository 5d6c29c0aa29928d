package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/muxdash/internal/intelligence"
)

func execute(t *testing.T, app *App, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	root := NewRootCmd(app)
	var out, errBuf bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errBuf)
	root.SetArgs(args)
	err = root.Execute()
	return out.String(), errBuf.String(), err
}

func TestListCmd_TriageOrder(t *testing.T) {
	app, _ := testApp(t, &fakeAdvisor{})

	out, _, err := execute(t, app, "list")
	require.NoError(t, err)

	// Nearest deadline first, undated last.
	legacy := strings.Index(out, "legacy")
	thesis := strings.Index(out, "thesis")
	chores := strings.Index(out, "chores")
	require.NotEqual(t, -1, legacy)
	require.NotEqual(t, -1, thesis)
	require.NotEqual(t, -1, chores)
	assert.Less(t, legacy, thesis)
	assert.Less(t, thesis, chores)

	assert.Contains(t, out, "[high]")
	assert.Contains(t, out, "9d ago")
	assert.Contains(t, out, "no ddl")
}

func TestListCmd_EmptyDir(t *testing.T) {
	app, _ := testApp(t, &fakeAdvisor{})
	app.Loader.Dir = t.TempDir()

	out, _, err := execute(t, app, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No projects found.")
}

func TestListCmd_WarningsGoToStderr(t *testing.T) {
	app, dir := testApp(t, &fakeAdvisor{})
	writeFixture(t, dir, "broken.yml", "name: \"unterminated\n")

	out, stderr, err := execute(t, app, "list")
	require.NoError(t, err)
	assert.Contains(t, stderr, "Warning:")
	assert.Contains(t, stderr, "broken.yml")
	assert.NotContains(t, out, "broken.yml")
}

func TestAnalyzeCmd_PrintsRecommendation(t *testing.T) {
	advisor := &fakeAdvisor{result: intelligence.AnalysisResult{Content: "Do the thesis first."}}
	app, _ := testApp(t, advisor)

	out, _, err := execute(t, app, "analyze")
	require.NoError(t, err)
	assert.Contains(t, out, "Do the thesis first.")
	assert.Equal(t, 1, advisor.callCount())
	assert.False(t, advisor.forcedLast())
}

func TestAnalyzeCmd_ForceFlag(t *testing.T) {
	advisor := &fakeAdvisor{result: intelligence.AnalysisResult{Content: "fresh"}}
	app, _ := testApp(t, advisor)

	_, _, err := execute(t, app, "analyze", "--force")
	require.NoError(t, err)
	assert.True(t, advisor.forcedLast())
}

func TestAnalyzeCmd_CachedNoteOnStderr(t *testing.T) {
	advisor := &fakeAdvisor{result: intelligence.AnalysisResult{Content: "advice", FromCache: true}}
	app, _ := testApp(t, advisor)

	out, stderr, err := execute(t, app, "analyze")
	require.NoError(t, err)
	assert.Contains(t, out, "advice")
	assert.Contains(t, stderr, "cached from earlier today")
}

func TestAnalyzeCmd_FailureBecomesError(t *testing.T) {
	advisor := &fakeAdvisor{result: intelligence.AnalysisResult{Err: "API key not found. Set $MUXDASH_API_KEY."}}
	app, _ := testApp(t, advisor)

	_, _, err := execute(t, app, "analyze")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MUXDASH_API_KEY")
}

func TestRootCmd_RefusesNonInteractive(t *testing.T) {
	app, _ := testApp(t, &fakeAdvisor{})
	app.IsInteractive = func() bool { return false }

	_, _, err := execute(t, app)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "interactive terminal")
}
