package climake

import (
	stdio "io"

	climakeio "github.com/dzonerzy/go-climake/io"
)

// Subcommand is a named node in the spec tree. It owns its own arguments and
// child subcommands, forming a recursive scope: while the parser is inside a
// subcommand, only that subcommand's arguments and children resolve.
//
// Subcommands are built once by the host before parsing and must not be
// mutated while a parse is in flight; parse results reference them read-only.
type Subcommand struct {
	// Name is the single spelling that enters this subcommand's scope. Must
	// be non-empty and unique among siblings.
	Name string

	// Help is the short description shown in help output, empty for the
	// default placeholder.
	Help string

	// Arguments attached directly to this subcommand, in declaration order.
	Arguments []*Argument

	// Subcommands nested under this one, in declaration order.
	Subcommands []*Subcommand

	firstErr error
}

// NewSubcommand creates an empty subcommand with the given name and help.
func NewSubcommand(name, help string) *Subcommand {
	return &Subcommand{Name: name, Help: help}
}

// AddArg attaches a single argument, chainable. The argument's calls are
// checked here: an argument without calls, with a malformed long call, or
// sharing a call with a sibling records a BuildError retrievable via Err.
func (s *Subcommand) AddArg(arg *Argument) *Subcommand {
	if err := checkAttach(arg, s.Arguments); err != nil && s.firstErr == nil {
		s.firstErr = err
	}
	s.Arguments = append(s.Arguments, arg)
	return s
}

// AddArgs attaches multiple arguments in order, chainable.
func (s *Subcommand) AddArgs(args ...*Argument) *Subcommand {
	for _, arg := range args {
		s.AddArg(arg)
	}
	return s
}

// AddSubcommand attaches a single child subcommand, chainable. A child with
// an empty name or a name already used by a sibling records a BuildError.
func (s *Subcommand) AddSubcommand(sub *Subcommand) *Subcommand {
	if err := checkSubAttach(sub, s.Subcommands); err != nil && s.firstErr == nil {
		s.firstErr = err
	}
	s.Subcommands = append(s.Subcommands, sub)
	return s
}

// AddSubcommands attaches multiple child subcommands in order, chainable.
func (s *Subcommand) AddSubcommands(subs ...*Subcommand) *Subcommand {
	for _, sub := range subs {
		s.AddSubcommand(sub)
	}
	return s
}

// Err returns the first BuildError recorded while assembling this node,
// including errors bubbled up from nested subcommands.
func (s *Subcommand) Err() error {
	if s.firstErr != nil {
		return s.firstErr
	}
	for _, sub := range s.Subcommands {
		if err := sub.Err(); err != nil {
			return err
		}
	}
	return nil
}

// writeNameLine writes the subcommand's one-line help entry:
//
//	example — A simple example subcommand
func (s *Subcommand) writeNameLine(w stdio.Writer, width int, tab string) error {
	help := s.Help
	if help == "" {
		help = helpDefault
	}
	return climakeio.WriteWrapped(w, s.Name+" — "+help, width, tab)
}
