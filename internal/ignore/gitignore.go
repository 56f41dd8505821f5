package ignore

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bethropolis/agentsignore/internal/utils"
	gitignore "github.com/denormal/go-gitignore"
)

// GitMatcher applies a pattern file with full .gitignore semantics instead of
// the simplified rules PathFilter uses. It satisfies walker.Matcher, so it
// can drive the same traversals.
type GitMatcher struct {
	repoIgnore gitignore.GitIgnore
	rootDir    string
	logger     utils.Logger
}

// NewGitMatcher loads patternFile as a .gitignore file rooted at rootDir.
// Extra rules from WithExtraRules are appended to the file's contents. A
// missing file gives a matcher that ignores nothing.
func NewGitMatcher(patternFile, rootDir string, opts ...Option) (*GitMatcher, error) {
	s := defaultSettings()
	for _, opt := range opts {
		opt(&s)
	}

	absRootDir, err := filepath.Abs(rootDir)
	if err != nil {
		return nil, fmt.Errorf("ignore: failed to get absolute path for rootDir '%s': %w", rootDir, err)
	}

	content, err := os.ReadFile(patternFile)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("ignore: failed to read pattern file '%s': %w", patternFile, err)
	}
	if err != nil {
		s.logger.Debug("ignore.NewGitMatcher: No pattern file at %s, continuing without file rules", patternFile)
	}

	var src io.Reader = strings.NewReader(string(content))
	if len(s.extraRules) > 0 {
		src = io.MultiReader(src, strings.NewReader("\n"+strings.Join(s.extraRules, "\n")+"\n"))
	}

	repoIgnore := gitignore.New(src, absRootDir, func(e gitignore.Error) bool {
		s.logger.Warn("ignore.NewGitMatcher: Skipping bad pattern in %s: %v", patternFile, e)
		return true
	})

	return &GitMatcher{repoIgnore: repoIgnore, rootDir: absRootDir, logger: s.logger}, nil
}

// ShouldIgnore reports whether the path relative to the matcher's root is
// ignored by the last matching gitignore pattern.
func (g *GitMatcher) ShouldIgnore(relativePath string, isDir bool) (ignored bool) {
	if g == nil || g.repoIgnore == nil {
		return false
	}
	unixPath := normalizePath(relativePath)
	if unixPath == "" || unixPath == "." {
		return false
	}

	defer func() {
		if r := recover(); r != nil {
			g.logger.Error("PANIC recovered in gitignore library for path %q: %v", unixPath, r)
			ignored = false
		}
	}()

	match := g.repoIgnore.Relative(unixPath, isDir)
	if match == nil {
		return false
	}
	if match.Ignore() {
		g.logger.Debug("ignore.GitMatcher: Path %q ignored by %q", unixPath, match.String())
		return true
	}
	return false
}
