package ignore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePatterns(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".agentsignore")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestGitMatcherNegation(t *testing.T) {
	root := t.TempDir()
	m, err := NewGitMatcher(writePatterns(t, "*.log\n!keep.log\n"), root)
	require.NoError(t, err)

	assert.True(t, m.ShouldIgnore("build.log", false))
	assert.True(t, m.ShouldIgnore("sub/build.log", false))
	assert.False(t, m.ShouldIgnore("keep.log", false))
	assert.False(t, m.ShouldIgnore("main.go", false))
}

func TestGitMatcherDirectoryAtAnyDepth(t *testing.T) {
	root := t.TempDir()
	m, err := NewGitMatcher(writePatterns(t, "node_modules/\n"), root)
	require.NoError(t, err)

	assert.True(t, m.ShouldIgnore("node_modules", true))
	assert.True(t, m.ShouldIgnore("web/node_modules", true))
	assert.False(t, m.ShouldIgnore("node_modules", false), "directory rules only match directories")
}

func TestGitMatcherExtraRules(t *testing.T) {
	root := t.TempDir()
	m, err := NewGitMatcher(writePatterns(t, "*.log"), root, WithExtraRules([]string{"!keep.log"}))
	require.NoError(t, err)

	assert.False(t, m.ShouldIgnore("keep.log", false))
	assert.True(t, m.ShouldIgnore("other.log", false))
}

func TestGitMatcherMissingFile(t *testing.T) {
	root := t.TempDir()
	m, err := NewGitMatcher(filepath.Join(root, "missing"), root)
	require.NoError(t, err)

	assert.False(t, m.ShouldIgnore("anything", false))
	assert.False(t, m.ShouldIgnore(".", true))
}

func TestGitMatcherUnreadableFile(t *testing.T) {
	dir := t.TempDir()

	_, err := NewGitMatcher(dir, dir)

	assert.ErrorContains(t, err, "failed to read pattern file")
}

func TestGitMatcherDrivesListing(t *testing.T) {
	root := makeTree(t, "main.go", "web/node_modules/x.js", "web/app.js")
	m, err := NewGitMatcher(writePatterns(t, "node_modules/\n"), root)
	require.NoError(t, err)

	got := collectRel(t, root, walkerFiles(root, m))

	assert.Equal(t, []string{"main.go", "web/app.js"}, got)
}
