package setup

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/bethropolis/agentsignore/internal/config"
	"github.com/bethropolis/agentsignore/internal/ignore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePatternFile(t *testing.T) {
	assert.Equal(t, filepath.Join("src", ".agentsignore"), WalkerConfig{RootDir: "src"}.ResolvePatternFile())
	assert.Equal(t, "rules.txt", WalkerConfig{RootDir: "src", PatternFile: "rules.txt"}.ResolvePatternFile())
}

func TestFromConfig(t *testing.T) {
	cfg := &config.Config{
		RootDir:      "web",
		PatternFile:  "p",
		Dialect:      config.DialectGit,
		Extensions:   "php",
		CustomIgnore: "a, b",
		IgnoreGit:    true,
	}

	wc := FromConfig(cfg)

	assert.Equal(t, "web", wc.RootDir)
	assert.Equal(t, "p", wc.PatternFile)
	assert.Equal(t, []string{".php"}, wc.Extensions)
	assert.Equal(t, []string{"a", "b"}, wc.CustomRules)
	assert.True(t, wc.IgnoreGit)
}

func TestConfigureWalkerAgentsDialect(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, ".agentsignore"), []byte("*.log\n"), 0o644))
	var infos []string

	m, opts, err := ConfigureWalker(WalkerConfig{
		RootDir:     root,
		Dialect:     config.DialectAgents,
		CustomRules: []string{"!keep.log"},
	}, func(format string, args ...any) { infos = append(infos, fmt.Sprintf(format, args...)) })
	require.NoError(t, err)

	f, ok := m.(*ignore.PathFilter)
	require.True(t, ok)
	assert.Equal(t, []string{"*.log", "!keep.log"}, f.Rules().Patterns())
	assert.NotEmpty(t, opts)
	assert.Contains(t, infos, fmt.Sprintf("Loaded 2 ignore rules from %s", filepath.Join(root, ".agentsignore")))
}

func TestConfigureWalkerGitDialect(t *testing.T) {
	root := t.TempDir()

	m, _, err := ConfigureWalker(WalkerConfig{RootDir: root, Dialect: config.DialectGit}, nil)
	require.NoError(t, err)

	_, ok := m.(*ignore.GitMatcher)
	assert.True(t, ok)
}

func TestConfigureWalkerErrors(t *testing.T) {
	root := t.TempDir()

	_, _, err := ConfigureWalker(WalkerConfig{RootDir: root, Dialect: "svn"}, nil)
	assert.ErrorContains(t, err, "unknown dialect")

	// A directory in place of the pattern file is a configuration error.
	_, _, err = ConfigureWalker(WalkerConfig{RootDir: root, PatternFile: root}, nil)
	assert.ErrorContains(t, err, "error initializing ignore rules")
}
