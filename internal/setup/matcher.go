// Package setup turns a Config into a matcher and walker options
package setup

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bethropolis/agentsignore/internal/config"
	"github.com/bethropolis/agentsignore/internal/ignore"
	"github.com/bethropolis/agentsignore/internal/utils"
	"github.com/bethropolis/agentsignore/internal/walker"
)

// InfoLogger wraps the Info method for status updates
type InfoLogger func(format string, args ...any)

// WalkerConfig holds all parameters needed to configure a directory walk
type WalkerConfig struct {
	RootDir      string
	PatternFile  string
	Dialect      string
	Extensions   []string
	CustomRules  []string
	IgnoreHidden bool
	IgnoreGit    bool
	Context      context.Context
	Tracker      *walker.SkippedTracker
	Logger       utils.Logger
}

// FromConfig copies the walk related settings out of cfg.
func FromConfig(cfg *config.Config) WalkerConfig {
	return WalkerConfig{
		RootDir:      cfg.RootDir,
		PatternFile:  cfg.PatternFile,
		Dialect:      cfg.Dialect,
		Extensions:   cfg.ExtensionList(),
		CustomRules:  cfg.CustomRules(),
		IgnoreHidden: cfg.IgnoreHidden,
		IgnoreGit:    cfg.IgnoreGit,
	}
}

// ResolvePatternFile returns the pattern file path, falling back to the
// default file inside RootDir.
func (c WalkerConfig) ResolvePatternFile() string {
	if c.PatternFile == "" {
		return filepath.Join(c.RootDir, config.DefaultPatternFile)
	}
	return c.PatternFile
}

// ConfigureWalker builds the matcher for the configured dialect and the
// walker options for the rest of the settings.
func ConfigureWalker(cfg WalkerConfig, infoLog InfoLogger) (walker.Matcher, []walker.Option, error) {
	log := utils.OrNoop(cfg.Logger)
	if infoLog == nil {
		infoLog = func(string, ...any) {}
	}

	patternFile := cfg.ResolvePatternFile()
	ignoreOptions := []ignore.Option{ignore.WithLogger(log)}
	if len(cfg.CustomRules) > 0 {
		infoLog("Using custom ignore patterns: %v", cfg.CustomRules)
		ignoreOptions = append(ignoreOptions, ignore.WithExtraRules(cfg.CustomRules))
	}

	var matcher walker.Matcher
	switch cfg.Dialect {
	case config.DialectGit:
		m, err := ignore.NewGitMatcher(patternFile, cfg.RootDir, ignoreOptions...)
		if err != nil {
			return nil, nil, fmt.Errorf("error initializing ignore rules: %w", err)
		}
		matcher = m
	case config.DialectAgents, "":
		f, err := ignore.New(patternFile, ignoreOptions...)
		if err != nil {
			return nil, nil, fmt.Errorf("error initializing ignore rules: %w", err)
		}
		infoLog("Loaded %d ignore rules from %s", len(f.Rules()), patternFile)
		matcher = f
	default:
		return nil, nil, fmt.Errorf("unknown dialect %q", cfg.Dialect)
	}

	if len(cfg.Extensions) > 0 {
		infoLog("Filtering enabled. Only including extensions: %s", strings.Join(cfg.Extensions, ", "))
	} else {
		infoLog("No extension filtering (including all file types).")
	}
	if cfg.IgnoreHidden {
		infoLog("Ignoring hidden files/directories (starting with '.').")
	}

	walkOptions := []walker.Option{
		walker.WithLogger(log),
		walker.WithExtensions(cfg.Extensions),
		walker.WithIgnoreHidden(cfg.IgnoreHidden),
		walker.WithIgnoreGit(cfg.IgnoreGit),
	}
	if cfg.Context != nil {
		walkOptions = append(walkOptions, walker.WithContext(cfg.Context))
	}
	if cfg.Tracker != nil {
		walkOptions = append(walkOptions, walker.WithTracker(cfg.Tracker))
	}

	return matcher, walkOptions, nil
}
