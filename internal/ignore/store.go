package ignore

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
)

const utf8BOM = "\uFEFF"

// Load reads the pattern file at path. A missing file yields an empty RuleSet
// and no error; any other failure to read it is returned.
func Load(path string) (RuleSet, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return RuleSet{}, nil
		}
		return nil, fmt.Errorf("ignore: failed to read pattern file '%s': %w", path, err)
	}
	defer f.Close()

	rules, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("ignore: failed to read pattern file '%s': %w", path, err)
	}
	return rules, nil
}

// Parse reads rules from r, one per line, keeping their order.
func Parse(r io.Reader) (RuleSet, error) {
	rules := RuleSet{}
	scanner := bufio.NewScanner(r)
	first := true
	for scanner.Scan() {
		line := scanner.Text()
		if first {
			line = strings.TrimPrefix(line, utf8BOM)
			first = false
		}
		if rule, ok := ParseLine(line); ok {
			rules = append(rules, rule)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return rules, nil
}

// ParseLine parses a single pattern file line. It reports false for blank
// lines and comments. The pattern is kept verbatim; nothing is validated here.
func ParseLine(line string) (Rule, bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return Rule{}, false
	}
	if rest, ok := strings.CutPrefix(line, "!"); ok {
		return Rule{Pattern: rest, Negated: true}, true
	}
	return Rule{Pattern: line}, true
}
