// Package printer handles output formatting and display
package printer

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync/atomic"

	"github.com/fatih/color"
)

// Printer writes listed paths to the configured output destination
type Printer struct {
	output         io.Writer
	count          atomic.Int64
	useColors      bool
	jsonOutput     bool
	jsonStarted    bool
	markdownOutput bool
	highlight      *color.Color
}

// New creates a new Printer with default settings
func New() *Printer {
	return &Printer{
		output:    os.Stdout,
		useColors: true,
		highlight: color.New(color.FgCyan, color.Bold),
	}
}

// WithOutput sets the output destination
func (p *Printer) WithOutput(w io.Writer) *Printer {
	p.output = w
	return p
}

// WithColors enables or disables colored output
func (p *Printer) WithColors(enabled bool) *Printer {
	p.useColors = enabled
	return p
}

// WithJSON enables JSON output mode
func (p *Printer) WithJSON(enabled bool) *Printer {
	p.jsonOutput = enabled
	return p
}

// WithMarkdown enables Markdown output mode
func (p *Printer) WithMarkdown(enabled bool) *Printer {
	p.markdownOutput = enabled
	return p
}

// JSONFileEntry represents a file entry in JSON output
type JSONFileEntry struct {
	Path string `json:"path"`
}

// PrintPath outputs one listed file path
func (p *Printer) PrintPath(path string) error {
	p.count.Add(1)

	switch {
	case p.jsonOutput:
		sep := ",\n"
		if !p.jsonStarted {
			sep = "[\n"
			p.jsonStarted = true
		}
		jsonData, err := json.Marshal(JSONFileEntry{Path: path})
		if err != nil {
			return fmt.Errorf("printer: marshaling %q: %w", path, err)
		}
		_, err = fmt.Fprintf(p.output, "%s  %s", sep, jsonData)
		return err
	case p.markdownOutput:
		if p.count.Load() == 1 {
			if _, err := fmt.Fprint(p.output, "# Files\n\n"); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintf(p.output, "- `%s`\n", path)
		return err
	case p.useColors:
		_, err := p.highlight.Fprintln(p.output, path)
		return err
	default:
		_, err := fmt.Fprintln(p.output, path)
		return err
	}
}

// Finalize completes any pending operations (like closing JSON array)
func (p *Printer) Finalize() error {
	if !p.jsonOutput {
		return nil
	}
	if !p.jsonStarted {
		_, err := fmt.Fprint(p.output, "[]\n")
		return err
	}
	_, err := fmt.Fprint(p.output, "\n]\n")
	return err
}

// GetCount returns the number of paths printed
func (p *Printer) GetCount() int64 {
	return p.count.Load()
}
