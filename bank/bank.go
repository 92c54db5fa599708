// Package bank reads and writes the user-editable rhythm bank: one bar
// per line in token form, blank lines and #-comments ignored. Parse
// failures are attributed to their source line so the linter can report
// actionable diagnostics.
package bank

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"rhythmdeck/grammar"
	"rhythmdeck/model"
	"rhythmdeck/validate"
)

// Line is one loaded bank entry.
type Line struct {
	Number int // 1-based line number in the file
	Index  int // 1-based rhythm index among payload lines (drives R### ids)
	Text   string
	Bar    model.Bar
}

// ParseError wraps a grammar error with its source location.
type ParseError struct {
	Path string
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: %v", e.Path, e.Line, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// LoadReader parses a bank from a reader. path is only used for error
// attribution.
func LoadReader(r io.Reader, path string, ticksPerMeasure int) ([]Line, error) {
	var res []Line
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		bar, err := grammar.ParseLine(text, ticksPerMeasure)
		if err != nil {
			return nil, &ParseError{Path: path, Line: lineNo, Err: err}
		}
		res = append(res, Line{
			Number: lineNo,
			Index:  len(res) + 1,
			Text:   text,
			Bar:    bar,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return res, nil
}

// Load parses a bank file.
func Load(path string, ticksPerMeasure int) ([]Line, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening bank: %w", err)
	}
	defer f.Close()
	return LoadReader(f, path, ticksPerMeasure)
}

// Write serializes bars to a bank file, one per line, with an optional
// leading comment.
func Write(path string, bars []model.Bar, ticksPerMeasure int, header string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating bank: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if header != "" {
		for _, h := range strings.Split(header, "\n") {
			fmt.Fprintf(w, "# %s\n", h)
		}
	}
	for _, bar := range bars {
		line, err := grammar.Serialize(bar, ticksPerMeasure)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, line)
	}
	return w.Flush()
}

// Lint validates every loaded line against the config. The returned
// slice is aligned with lines.
func Lint(lines []Line, cfg model.MeterConfig) ([]validate.Result, error) {
	res := make([]validate.Result, 0, len(lines))
	for _, ln := range lines {
		r, err := validate.Validate(ln.Bar.Events, cfg)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", ln.Number, err)
		}
		res = append(res, r)
	}
	return res, nil
}
