// Package walker handles directory traversal and file filtering
package walker

import (
	"sync"
)

// Matcher decides whether a path relative to the walk root is skipped.
// relativePath always uses forward slashes.
type Matcher interface {
	ShouldIgnore(relativePath string, isDir bool) bool
}

// SkippedReason clarifies why a file/directory was not yielded.
type SkippedReason string

const (
	ReasonIgnoredHidden     SkippedReason = "Ignored (Hidden Rule)"
	ReasonIgnoredGit        SkippedReason = "Ignored (.git Directory)"
	ReasonIgnoredRule       SkippedReason = "Ignored (Pattern Rule)"
	ReasonFilteredExtension SkippedReason = "Filtered (Extension Mismatch)"
	ReasonSkippedPermError  SkippedReason = "Skipped (Permission Error)"
	ReasonSkippedWalkError  SkippedReason = "Skipped (Walk Error)"
)

// SkippedItem holds information about a skipped path.
type SkippedItem struct {
	Path   string        `json:"path"`
	Reason SkippedReason `json:"reason"`
	IsDir  bool          `json:"is_dir"`
	Err    string        `json:"error,omitempty"`
}

// SkippedTracker collects skipped items. It may be shared by several walks.
type SkippedTracker struct {
	items []SkippedItem
	mutex sync.Mutex
}

// NewSkippedTracker creates a new SkippedTracker
func NewSkippedTracker(capacity int) *SkippedTracker {
	return &SkippedTracker{
		items: make([]SkippedItem, 0, capacity),
	}
}

// Track adds a skipped item to the tracker
func (st *SkippedTracker) Track(item SkippedItem) {
	st.mutex.Lock()
	defer st.mutex.Unlock()
	st.items = append(st.items, item)
}

// Items returns a copy of the tracked skipped items
func (st *SkippedTracker) Items() []SkippedItem {
	st.mutex.Lock()
	defer st.mutex.Unlock()
	return append([]SkippedItem(nil), st.items...)
}

// Errors returns only the items caused by read failures.
func (st *SkippedTracker) Errors() []SkippedItem {
	var out []SkippedItem
	for _, item := range st.Items() {
		if item.Err != "" {
			out = append(out, item)
		}
	}
	return out
}
