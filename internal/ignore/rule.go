// Package ignore loads .agentsignore pattern files and decides which paths a
// directory scan must skip.
//
// A pattern file holds one rule per line. Blank lines and lines starting with
// '#' are comments, a leading '!' re-includes paths an earlier rule excluded,
// and the last rule that matches a path decides its fate. There is no escape
// syntax for a literal leading '!' or '#'.
package ignore

// Rule is one parsed line of a pattern file.
type Rule struct {
	// Pattern is the rule text with the negation marker removed.
	Pattern string
	// Negated is set when the line started with '!'.
	Negated bool
}

// String renders the rule back in pattern file syntax.
func (r Rule) String() string {
	if r.Negated {
		return "!" + r.Pattern
	}
	return r.Pattern
}

// RuleSet is an ordered list of rules. Later rules override earlier ones.
type RuleSet []Rule

// Patterns returns the rules in pattern file syntax, in order.
func (rs RuleSet) Patterns() []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.String()
	}
	return out
}
