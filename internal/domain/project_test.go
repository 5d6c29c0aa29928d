package domain

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadProgressNote_ReadsFile(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, ProgressFileName), []byte("# Week 1\ndone stuff\n"), 0o644))

	p := &Project{Name: "alpha", Root: root}
	p.LoadProgressNote()
	assert.Equal(t, "# Week 1\ndone stuff\n", p.ProgressNote)
}

func TestLoadProgressNote_MissingFile(t *testing.T) {
	p := &Project{Name: "alpha", Root: t.TempDir()}
	p.LoadProgressNote()
	assert.Empty(t, p.ProgressNote)
}

func TestLoadProgressNote_MissingRoot(t *testing.T) {
	p := &Project{Name: "alpha", Root: filepath.Join(t.TempDir(), "nope")}
	p.LoadProgressNote()
	assert.Empty(t, p.ProgressNote)
}

func TestLoadProgressNote_NoRootConfigured(t *testing.T) {
	p := &Project{Name: "alpha"}
	p.LoadProgressNote()
	assert.Empty(t, p.ProgressNote)
}

func TestLoadProgressNote_ReadErrorCapturedInline(t *testing.T) {
	root := t.TempDir()
	// A directory named prgs.md makes ReadFile fail with a non-NotExist error.
	require.NoError(t, os.Mkdir(filepath.Join(root, ProgressFileName), 0o755))

	p := &Project{Name: "alpha", Root: root}
	p.LoadProgressNote()
	assert.Contains(t, p.ProgressNote, "[Error reading prgs.md:")
}

func TestCoalesceStr(t *testing.T) {
	assert.Equal(t, "a", CoalesceStr("", "a", "b"))
	assert.Equal(t, "", CoalesceStr("", ""))
}
