// Package walker handles directory traversal and file filtering
package walker

import (
	"errors"
	"io/fs"
	"iter"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"
)

// Files returns a lazy sequence of the files beneath rootDir that survive
// filtering. Paths are rootDir joined with the file's relative path.
//
// The walk is depth first and visits the entries of each directory in name
// order. A directory is offered to matcher before it is read, and an ignored
// directory is never opened. A directory that cannot be read is recorded as
// skipped and the walk carries on with its siblings. Each directory handle is
// closed before any of its entries are yielded, so a consumer may stop
// early without leaking descriptors. Every range over the sequence starts a
// fresh walk.
func Files(rootDir string, matcher Matcher, opts ...Option) iter.Seq[string] {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	return func(yield func(string) bool) {
		startTime := time.Now()
		w := &walk{root: rootDir, matcher: matcher, options: options, yield: yield}

		options.Logger.Debug("walker.Files started. Root: %s, Extensions: %v", rootDir, options.Extensions)
		w.dir(rootDir, "")
		options.Logger.Debug("walker.Files: Yielded %d files, skipped %d entries in %s",
			w.yielded, w.skipped, time.Since(startTime))
	}
}

type walk struct {
	root    string
	matcher Matcher
	options WalkOptions
	yield   func(string) bool

	yielded int
	skipped int
}

// dir visits one directory. It returns false once the walk must stop.
func (w *walk) dir(absDir, relDir string) bool {
	log := w.options.Logger

	if err := w.options.Context.Err(); err != nil {
		log.Debug("Walker: Stopping before %q: %v", displayPath(relDir), err)
		return false
	}

	entries, err := os.ReadDir(absDir)
	if err != nil {
		reason := ReasonSkippedWalkError
		if errors.Is(err, fs.ErrPermission) {
			reason = ReasonSkippedPermError
		}
		log.Warn("Walker: Cannot read directory %q: %v", displayPath(relDir), err)
		w.skip(SkippedItem{Path: displayPath(relDir), Reason: reason, IsDir: true, Err: err.Error()})
		// ReadDir may still return the entries it read before failing.
	}

	for _, entry := range entries {
		name := entry.Name()
		relPath := path.Join(relDir, name)
		absPath := filepath.Join(absDir, name)

		if entry.IsDir() {
			if w.options.IgnoreGit && name == ".git" {
				w.skip(SkippedItem{Path: relPath, Reason: ReasonIgnoredGit, IsDir: true})
				continue
			}
			if w.options.IgnoreHidden && strings.HasPrefix(name, ".") {
				w.skip(SkippedItem{Path: relPath, Reason: ReasonIgnoredHidden, IsDir: true})
				continue
			}
			if w.matcher != nil && w.matcher.ShouldIgnore(relPath, true) {
				log.Debug("Walker: Pruned directory %q", relPath)
				w.skip(SkippedItem{Path: relPath, Reason: ReasonIgnoredRule, IsDir: true})
				continue
			}
			log.Debug("Walker: Descending into directory %q", relPath)
			if !w.dir(absPath, relPath) {
				return false
			}
			continue
		}

		if w.options.IgnoreHidden && strings.HasPrefix(name, ".") {
			w.skip(SkippedItem{Path: relPath, Reason: ReasonIgnoredHidden})
			continue
		}
		if !w.extensionAllowed(name) {
			w.skip(SkippedItem{Path: relPath, Reason: ReasonFilteredExtension})
			continue
		}
		if w.matcher != nil && w.matcher.ShouldIgnore(relPath, false) {
			w.skip(SkippedItem{Path: relPath, Reason: ReasonIgnoredRule})
			continue
		}

		log.Debug("Walker: File %q PASSED all checks", relPath)
		w.yielded++
		if !w.yield(absPath) {
			log.Debug("Walker: Consumer stopped the walk at %q", relPath)
			return false
		}
	}
	return true
}

func (w *walk) extensionAllowed(name string) bool {
	if len(w.options.Extensions) == 0 {
		return true
	}
	for _, ext := range w.options.Extensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

func (w *walk) skip(item SkippedItem) {
	w.skipped++
	if w.options.Tracker != nil {
		w.options.Tracker.Track(item)
	}
}

func displayPath(relPath string) string {
	if relPath == "" {
		return "."
	}
	return relPath
}
