// Package climakeio centralizes IO concerns for go-climake: writer injection,
// terminal width fallbacks, ANSI helpers and the hard-wrapping writer used by
// help rendering.
package climakeio

import (
	stdio "io"
	"os"
)

// IOManager centralizes IO sinks and terminal capabilities. Help and error
// output always goes through a manager so hosts and tests can redirect it.
type IOManager struct {
	in  stdio.Reader
	out stdio.Writer
	err stdio.Writer

	forceColor bool
	noColor    bool
}

// New returns a manager bound to process stdio.
func New() *IOManager {
	return &IOManager{in: os.Stdin, out: os.Stdout, err: os.Stderr}
}

// WithIn sets the input reader used by the manager and returns the manager for chaining.
func (m *IOManager) WithIn(r stdio.Reader) *IOManager { m.in = r; return m }

// WithOut sets the standard output writer and returns the manager for chaining.
func (m *IOManager) WithOut(w stdio.Writer) *IOManager { m.out = w; return m }

// WithErr sets the standard error writer and returns the manager for chaining.
func (m *IOManager) WithErr(w stdio.Writer) *IOManager { m.err = w; return m }

// ForceColor forces color output on, regardless of environment.
func (m *IOManager) ForceColor() *IOManager { m.forceColor = true; m.noColor = false; return m }

// NoColor disables color output, regardless of environment.
func (m *IOManager) NoColor() *IOManager { m.noColor = true; m.forceColor = false; return m }

// ColorAuto uses environment heuristics to determine color support.
func (m *IOManager) ColorAuto() *IOManager { m.noColor = false; m.forceColor = false; return m }

// In returns the configured input reader.
func (m *IOManager) In() stdio.Reader { return m.in }

// Out returns the configured standard output writer.
func (m *IOManager) Out() stdio.Writer { return m.out }

// Err returns the configured standard error writer.
func (m *IOManager) Err() stdio.Writer { return m.err }

// Width returns the terminal width to wrap against: the COLUMNS environment
// variable when set, otherwise 80. Live terminal probing is left to the host;
// a parsing library should not take a syscall dependency for a default.
func (m *IOManager) Width() int {
	if w, _ := fallbackTermSizeFromEnv(); w > 0 {
		return w
	}
	return 80
}

// Height returns the terminal height from the LINES environment variable,
// defaulting to 24.
func (m *IOManager) Height() int {
	if _, h := fallbackTermSizeFromEnv(); h > 0 {
		return h
	}
	return 24
}

// SupportsColor determines ANSI color capability from the environment.
func (m *IOManager) SupportsColor() bool {
	if m.noColor || os.Getenv("NO_COLOR") != "" {
		return false
	}
	if m.forceColor || os.Getenv("FORCE_COLOR") != "" {
		return true
	}
	term := os.Getenv("TERM")
	return term != "" && term != "dumb"
}

// ANSI helpers

// Colorize wraps s with the given ANSI SGR code (e.g., "31" for red) and a
// trailing reset ("0m"). If color is not supported, it returns s unchanged.
func (m *IOManager) Colorize(s, code string) string {
	if !m.SupportsColor() {
		return s
	}
	return "\x1b[" + code + "m" + s + "\x1b[0m"
}

// Bold returns s in bold when color is supported; otherwise s unchanged.
func (m *IOManager) Bold(s string) string { return m.Colorize(s, "1") }

// Faint returns s in faint intensity when supported; otherwise s unchanged.
func (m *IOManager) Faint(s string) string { return m.Colorize(s, "2") }

// Underline returns s underlined when supported; otherwise s unchanged.
func (m *IOManager) Underline(s string) string { return m.Colorize(s, "4") }

func fallbackTermSizeFromEnv() (int, int) {
	var w, h int
	if c := os.Getenv("COLUMNS"); len(c) > 0 {
		if v := atoi(c); v > 0 {
			w = v
		}
	}
	if l := os.Getenv("LINES"); len(l) > 0 {
		if v := atoi(l); v > 0 {
			h = v
		}
	}
	return w, h
}

func atoi(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0
		}
		n = n*10 + int(c-'0')
	}
	return n
}
