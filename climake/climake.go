// Package climake is a declarative command-line argument parser. Hosts
// describe accepted arguments (short `-x` / long `--xyz` calls, input arity)
// and nested subcommands, then parse a token stream into a result tree that
// mirrors the subcommand hierarchy, or render a formatted help message.
//
// The spec tree (CLI, Subcommand, Argument) is assembled once before parsing
// and read-only afterwards; each parse allocates a fresh result tree that
// points back into the spec tree.
package climake

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	climakeio "github.com/dzonerzy/go-climake/io"
)

// helpDefault is rendered in place of a missing help string.
const helpDefault = "No help provided"

// defaultTabbing is the indent prefix for help body lines.
const defaultTabbing = "  "

// CLI is the root of the spec tree: program metadata plus top-level arguments
// and subcommands. Build it with New and the fluent Add methods, then call
// Parse (or ParseTokens) once assembly is complete.
type CLI struct {
	name        string
	description string
	version     string

	arguments   []*Argument
	subcommands []*Subcommand

	tabbing  string
	width    int // 0 means ask the IOManager
	progName string

	ioManager *climakeio.IOManager

	firstErr error
}

// New creates a CLI with the given program name and description.
func New(name, description string) *CLI {
	return &CLI{
		name:        name,
		description: description,
		tabbing:     defaultTabbing,
		ioManager:   climakeio.New(),
	}
}

// Name returns the program name.
func (c *CLI) Name() string { return c.name }

// Description returns the program description.
func (c *CLI) Description() string { return c.description }

// Version sets the version string shown in the help header, chainable.
func (c *CLI) Version(version string) *CLI {
	c.version = version
	return c
}

// Tabbing sets the indent prefix used by help rendering, chainable. The
// default is two spaces.
func (c *CLI) Tabbing(tab string) *CLI {
	c.tabbing = tab
	return c
}

// Width sets the wrap width for help rendering, chainable. Zero (the
// default) uses the IOManager's detected width.
func (c *CLI) Width(width int) *CLI {
	c.width = width
	return c
}

// ProgramName overrides the executable stem shown on the usage line,
// chainable. By default the stem is derived from os.Args[0]. Tests set this
// for deterministic output.
func (c *CLI) ProgramName(name string) *CLI {
	c.progName = name
	return c
}

// IO returns the CLI's IOManager for fluent sink configuration.
func (c *CLI) IO() *climakeio.IOManager {
	if c.ioManager == nil {
		c.ioManager = climakeio.New()
	}
	return c.ioManager
}

// AddArg attaches a single top-level argument, chainable. Calls are checked
// at attachment; failures are recorded and surfaced via Err and Parse.
func (c *CLI) AddArg(arg *Argument) *CLI {
	if err := checkAttach(arg, c.arguments); err != nil && c.firstErr == nil {
		c.firstErr = err
	}
	c.arguments = append(c.arguments, arg)
	return c
}

// AddArgs attaches multiple top-level arguments in order, chainable.
func (c *CLI) AddArgs(args ...*Argument) *CLI {
	for _, arg := range args {
		c.AddArg(arg)
	}
	return c
}

// AddSubcommand attaches a single top-level subcommand, chainable.
func (c *CLI) AddSubcommand(sub *Subcommand) *CLI {
	if err := checkSubAttach(sub, c.subcommands); err != nil && c.firstErr == nil {
		c.firstErr = err
	}
	c.subcommands = append(c.subcommands, sub)
	return c
}

// AddSubcommands attaches multiple top-level subcommands in order, chainable.
func (c *CLI) AddSubcommands(subs ...*Subcommand) *CLI {
	for _, sub := range subs {
		c.AddSubcommand(sub)
	}
	return c
}

// Arguments returns the top-level arguments in declaration order.
func (c *CLI) Arguments() []*Argument { return c.arguments }

// Subcommands returns the top-level subcommands in declaration order.
func (c *CLI) Subcommands() []*Subcommand { return c.subcommands }

// Err returns the first BuildError recorded during spec-tree assembly, nil
// for a well-formed tree. Parse refuses to run while Err is non-nil.
func (c *CLI) Err() error {
	if c.firstErr != nil {
		return c.firstErr
	}
	for _, sub := range c.subcommands {
		if err := sub.Err(); err != nil {
			return err
		}
	}
	return nil
}

// Parse parses the process argument vector (os.Args minus the executable
// path). See ParseTokens for parsing an explicit token sequence.
func (c *CLI) Parse() (*ParsedCLI, error) {
	return c.ParseTokens(os.Args[1:])
}

// ParseTokens parses an explicit token sequence against this spec tree.
func (c *CLI) ParseTokens(tokens []string) (*ParsedCLI, error) {
	return NewParser(c).Parse(tokens)
}

// wrapWidth resolves the effective help wrap width.
func (c *CLI) wrapWidth() int {
	if c.width > 0 {
		return c.width
	}
	return c.IO().Width()
}

// programStem returns the executable stem for the usage line: the override
// when set, else the base of os.Args[0] with its extension stripped.
func (c *CLI) programStem() string {
	if c.progName != "" {
		return c.progName
	}
	base := filepath.Base(os.Args[0])
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// checkAttach validates an argument against the node it is being attached
// to: at least one call, well-formed long calls, and no call shared with a
// sibling in the same scope.
func checkAttach(arg *Argument, siblings []*Argument) error {
	if len(arg.Calls) == 0 {
		return NewBuildError(ErrorTypeNoCalls, "argument has no calls")
	}

	for _, call := range arg.Calls {
		if call.Kind == CallLong && !validLongName(call.Long) {
			err := NewBuildError(ErrorTypeInvalidCall,
				fmt.Sprintf("invalid long call %q: must be non-empty with no '=' or leading '-'", call.Long))
			err.Call = call.String()
			return err
		}
		for _, sibling := range siblings {
			if sibling.HasCall(call) {
				err := NewBuildError(ErrorTypeDuplicateCall,
					fmt.Sprintf("call %s already used by another argument in this scope", call))
				err.Call = call.String()
				return err
			}
		}
	}
	return nil
}

// checkSubAttach validates a subcommand against its future siblings: a
// non-empty name not already taken.
func checkSubAttach(sub *Subcommand, siblings []*Subcommand) error {
	if sub.Name == "" {
		return NewBuildError(ErrorTypeInvalidName, "subcommand has an empty name")
	}
	for _, sibling := range siblings {
		if sibling.Name == sub.Name {
			return NewBuildError(ErrorTypeDuplicateName,
				fmt.Sprintf("subcommand name %q already used in this scope", sub.Name))
		}
	}
	return nil
}
