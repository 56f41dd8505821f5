// Package walker handles directory traversal and file filtering
package walker

import (
	"context"

	"github.com/bethropolis/agentsignore/internal/utils"
)

// WalkOptions configures the behavior of the Files function
type WalkOptions struct {
	Logger     utils.Logger
	Extensions []string
	Context    context.Context
	Tracker    *SkippedTracker

	// IgnoreHidden skips every entry whose name starts with a dot.
	IgnoreHidden bool

	// IgnoreGit skips directories named .git.
	IgnoreGit bool
}

// defaultOptions returns the default walk options
func defaultOptions() WalkOptions {
	return WalkOptions{
		Logger:  utils.NoopLogger{},
		Context: context.Background(),
	}
}

// Option is a functional option for configuring WalkOptions
type Option func(*WalkOptions)

// WithLogger sets a custom logger for the walker
func WithLogger(logger utils.Logger) Option {
	return func(opts *WalkOptions) {
		opts.Logger = utils.OrNoop(logger)
	}
}

// WithExtensions restricts yielded files to names ending with one of the
// given suffixes, e.g. ".php". The comparison is a plain, case-sensitive
// suffix match. A nil or empty list disables the filter.
func WithExtensions(extensions []string) Option {
	return func(opts *WalkOptions) {
		opts.Extensions = nil
		for _, ext := range extensions {
			if ext != "" {
				opts.Extensions = append(opts.Extensions, ext)
			}
		}
	}
}

// WithContext stops the walk once ctx is done
func WithContext(ctx context.Context) Option {
	return func(opts *WalkOptions) {
		if ctx != nil {
			opts.Context = ctx
		}
	}
}

// WithTracker records every skipped entry, including directories that could
// not be read, in tracker.
func WithTracker(tracker *SkippedTracker) Option {
	return func(opts *WalkOptions) {
		opts.Tracker = tracker
	}
}

// WithIgnoreHidden enables or disables ignoring hidden files
func WithIgnoreHidden(enabled bool) Option {
	return func(opts *WalkOptions) {
		opts.IgnoreHidden = enabled
	}
}

// WithIgnoreGit enables or disables skipping .git directories
func WithIgnoreGit(enabled bool) Option {
	return func(opts *WalkOptions) {
		opts.IgnoreGit = enabled
	}
}
