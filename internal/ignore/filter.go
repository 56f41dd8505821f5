package ignore

import (
	"github.com/bethropolis/agentsignore/internal/utils"
)

// PathFilter decides whether paths are ignored. It is immutable once built,
// so a single instance may serve concurrent queries and traversals.
type PathFilter struct {
	rules  RuleSet
	logger utils.Logger
}

// New loads the pattern file at patternFile and builds a filter from it. A
// missing file gives a filter that ignores nothing.
func New(patternFile string, opts ...Option) (*PathFilter, error) {
	s := defaultSettings()
	for _, opt := range opts {
		opt(&s)
	}

	s.logger.Debug("ignore.New: Loading patterns from %s", patternFile)
	rules, err := Load(patternFile)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("ignore.New: Loaded %d rules", len(rules))

	return build(rules, s), nil
}

// NewFromRules builds a filter from rules already in memory.
func NewFromRules(rules RuleSet, opts ...Option) *PathFilter {
	s := defaultSettings()
	for _, opt := range opts {
		opt(&s)
	}
	return build(rules, s)
}

func build(rules RuleSet, s settings) *PathFilter {
	all := make(RuleSet, 0, len(rules)+len(s.extraRules))
	all = append(all, rules...)
	for _, line := range s.extraRules {
		if rule, ok := ParseLine(line); ok {
			all = append(all, rule)
		}
	}
	if len(s.extraRules) > 0 {
		s.logger.Debug("ignore.New: %d extra rules appended", len(all)-len(rules))
	}
	return &PathFilter{rules: all, logger: s.logger}
}

// Rules returns a copy of the filter's rules in evaluation order.
func (f *PathFilter) Rules() RuleSet {
	if f == nil {
		return RuleSet{}
	}
	return append(RuleSet{}, f.rules...)
}

// IsIgnored reports whether path is excluded. Every rule is evaluated in
// order and each match overwrites the decision, so the last matching rule
// wins. A path no rule matches is not ignored.
func (f *PathFilter) IsIgnored(path string) bool {
	if f == nil {
		return false
	}
	p := normalizePath(path)

	ignored := false
	for _, rule := range f.rules {
		ok, err := matchPattern(p, rule.Pattern)
		if err != nil {
			f.logger.Error("ignore.IsIgnored: Rule %q skipped for %q: %v", rule.String(), p, err)
			continue
		}
		if ok {
			ignored = !rule.Negated
		}
	}
	return ignored
}

// ShouldIgnore lets a PathFilter drive walker traversals. Directory and file
// paths go through the same rules.
func (f *PathFilter) ShouldIgnore(relativePath string, isDir bool) bool {
	ignored := f.IsIgnored(relativePath)
	if ignored {
		f.logger.Debug("ignore.ShouldIgnore: Path %q (isDir: %v) ignored by rules", relativePath, isDir)
	}
	return ignored
}
