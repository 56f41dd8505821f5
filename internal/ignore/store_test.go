package ignore

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSkipsCommentsAndBlankLines(t *testing.T) {
	rules, err := Parse(strings.NewReader(`
# dependencies
node_modules/

   *.log   
!keep.log
	# indented comment
/build
`))
	require.NoError(t, err)

	assert.Equal(t, RuleSet{
		{Pattern: "node_modules/"},
		{Pattern: "*.log"},
		{Pattern: "keep.log", Negated: true},
		{Pattern: "/build"},
	}, rules)
}

func TestParseLine(t *testing.T) {
	tests := []struct {
		line string
		want Rule
		ok   bool
	}{
		{"", Rule{}, false},
		{"   ", Rule{}, false},
		{"#comment", Rule{}, false},
		{"!", Rule{Pattern: "", Negated: true}, true},
		{"!!double", Rule{Pattern: "!double", Negated: true}, true},
		{"a#b", Rule{Pattern: "a#b"}, true},
		{"  [unclosed  ", Rule{Pattern: "[unclosed"}, true},
	}
	for _, tc := range tests {
		got, ok := ParseLine(tc.line)
		assert.Equal(t, tc.ok, ok, "ParseLine(%q)", tc.line)
		assert.Equal(t, tc.want, got, "ParseLine(%q)", tc.line)
	}
}

func TestParseDropsByteOrderMark(t *testing.T) {
	rules, err := Parse(strings.NewReader("\uFEFF*.tmp\r\n!a.tmp\r\n"))
	require.NoError(t, err)

	assert.Equal(t, []string{"*.tmp", "!a.tmp"}, rules.Patterns())
}

func TestLoadMissingFileIsEmpty(t *testing.T) {
	rules, err := Load(filepath.Join(t.TempDir(), ".agentsignore"))
	require.NoError(t, err)

	assert.NotNil(t, rules)
	assert.Empty(t, rules)
}

func TestLoadKeepsFileOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".agentsignore")
	require.NoError(t, os.WriteFile(path, []byte("b\n#x\na\n!c\n"), 0o644))

	rules, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"b", "a", "!c"}, rules.Patterns())
}

func TestLoadUnreadableFileFails(t *testing.T) {
	// A directory cannot be read as a pattern file, whatever the user id.
	dir := t.TempDir()

	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read pattern file")

	_, err = New(dir)
	assert.Error(t, err)
}
