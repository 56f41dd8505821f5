// Package config holds the CLI settings and their command line flags.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v3"
)

// DefaultPatternFile is the pattern file looked up when --patterns is not given.
const DefaultPatternFile = ".agentsignore"

// Dialects understood by --dialect.
const (
	DialectAgents = "agents"
	DialectGit    = "git"
)

// Config holds all application configuration settings
type Config struct {
	// Directory settings
	RootDir string

	// PatternFile is empty when the default file in RootDir should be used.
	PatternFile string

	// Logging settings
	Verbose     bool
	Quiet       bool
	LogLevel    string
	NoColor     bool
	UseColors   bool
	OutputFile  string
	ShowSkipped bool

	// Processing settings
	Timeout time.Duration

	// Filtering settings
	Dialect      string
	IgnoreHidden bool
	IgnoreGit    bool
	CustomIgnore string
	Extensions   string

	// Output format
	JSONOutput     bool
	MarkdownOutput bool
}

// Flags returns the command line flags that populate a Config.
func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "patterns", Aliases: []string{"p"}, Value: DefaultPatternFile, Usage: "Pattern file with ignore rules (a missing file ignores nothing)"},
		&cli.StringFlag{Name: "ext", Aliases: []string{"e"}, Usage: "Only list files with these extensions (comma-separated, e.g. 'php,.go')"},
		&cli.StringFlag{Name: "ignore", Usage: "Extra ignore rules appended after the pattern file (comma-separated)"},
		&cli.StringFlag{Name: "dialect", Value: DialectAgents, Usage: "Pattern dialect: 'agents' or 'git'"},
		&cli.BoolFlag{Name: "hidden", Usage: "Skip hidden files/directories (starting with '.')"},
		&cli.BoolFlag{Name: "git", Value: true, Usage: "Skip .git directories"},
		&cli.BoolFlag{Name: "json", Usage: "Output results in JSON format"},
		&cli.BoolFlag{Name: "markdown", Usage: "Output results in Markdown format"},
		&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "Write the listing to a file instead of stdout"},
		&cli.BoolFlag{Name: "show-skipped", Usage: "Show skipped files/directories and reasons at the end"},
		&cli.DurationFlag{Name: "timeout", Usage: "Maximum execution time (e.g. '30s', '5m')"},
		&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "Enable verbose logging"},
		&cli.BoolFlag{Name: "quiet", Aliases: []string{"q"}, Usage: "Suppress INFO messages"},
		&cli.StringFlag{Name: "log-level", Usage: "Logging level (DEBUG, INFO, WARN, ERROR, NONE)"},
		&cli.BoolFlag{Name: "no-color", Usage: "Disable color output"},
	}
}

// FromCommand builds a Config from a parsed command.
func FromCommand(cmd *cli.Command) (*Config, error) {
	c := &Config{
		RootDir:        ".",
		Verbose:        cmd.Bool("verbose"),
		Quiet:          cmd.Bool("quiet"),
		LogLevel:       cmd.String("log-level"),
		NoColor:        cmd.Bool("no-color"),
		OutputFile:     cmd.String("output"),
		ShowSkipped:    cmd.Bool("show-skipped"),
		Timeout:        cmd.Duration("timeout"),
		Dialect:        strings.ToLower(cmd.String("dialect")),
		IgnoreHidden:   cmd.Bool("hidden"),
		IgnoreGit:      cmd.Bool("git"),
		CustomIgnore:   cmd.String("ignore"),
		Extensions:     cmd.String("ext"),
		JSONOutput:     cmd.Bool("json"),
		MarkdownOutput: cmd.Bool("markdown"),
	}
	if cmd.Args().Len() > 1 {
		return nil, fmt.Errorf("config: expected at most one directory argument, got %d", cmd.Args().Len())
	}
	if dir := cmd.Args().First(); dir != "" {
		c.RootDir = dir
	}

	// An explicit --patterns path is taken as given; the default file lives in
	// the scanned directory.
	if cmd.IsSet("patterns") {
		c.PatternFile = cmd.String("patterns")
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	// Determine if colors should be used
	c.UseColors = !c.NoColor && isatty.IsTerminal(os.Stderr.Fd()) && c.OutputFile == ""

	return c, nil
}

// Validate rejects contradictory settings.
func (c *Config) Validate() error {
	switch c.Dialect {
	case DialectAgents, DialectGit:
	default:
		return fmt.Errorf("config: unknown dialect %q (want %q or %q)", c.Dialect, DialectAgents, DialectGit)
	}
	if c.JSONOutput && c.MarkdownOutput {
		return fmt.Errorf("config: --json and --markdown are mutually exclusive")
	}
	if c.Timeout < 0 {
		return fmt.Errorf("config: timeout must not be negative")
	}
	return nil
}

// ExtensionList splits the --ext value into suffixes, adding the leading dot
// where it was left out.
func (c *Config) ExtensionList() []string {
	var exts []string
	for _, ext := range strings.Split(c.Extensions, ",") {
		ext = strings.TrimSpace(ext)
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		exts = append(exts, ext)
	}
	return exts
}

// CustomRules splits the --ignore value into pattern lines.
func (c *Config) CustomRules() []string {
	var rules []string
	for _, rule := range strings.Split(c.CustomIgnore, ",") {
		if rule = strings.TrimSpace(rule); rule != "" {
			rules = append(rules, rule)
		}
	}
	return rules
}
