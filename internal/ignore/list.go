package ignore

import (
	"iter"

	"github.com/bethropolis/agentsignore/internal/walker"
)

// ListFiles lazily yields every file beneath rootDir that the filter keeps.
// When extensions is non-empty, only names ending with one of its suffixes
// are yielded. Ignored directories are pruned before they are read. Extra
// walker options (logger, tracker, context) are passed through.
func (f *PathFilter) ListFiles(rootDir string, extensions []string, opts ...walker.Option) iter.Seq[string] {
	all := make([]walker.Option, 0, len(opts)+2)
	if f != nil {
		all = append(all, walker.WithLogger(f.logger))
	}
	all = append(all, opts...)
	all = append(all, walker.WithExtensions(extensions))

	var m walker.Matcher
	if f != nil {
		m = f
	}
	return walker.Files(rootDir, m, all...)
}
