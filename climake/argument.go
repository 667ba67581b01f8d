package climake

import (
	stdio "io"
	"strings"

	climakeio "github.com/dzonerzy/go-climake/io"
)

// Argument is a named, help-documented parameter attached to the root CLI or
// to a Subcommand. It is invoked through one or more Calls and binds trailing
// data according to its InputKind.
type Argument struct {
	// Help is the short description shown in help output. Empty means the
	// default placeholder is rendered instead.
	Help string

	// Calls are the spellings that invoke this argument, shorts first then
	// longs, in the order given. Must be non-empty by the time the argument
	// is attached to a CLI or Subcommand.
	Calls []Call

	// Input decides how trailing tokens are consumed and bound.
	Input InputKind

	// Required marks the argument as mandatory. Defaults to false; mutate
	// directly before parsing to change it.
	Required bool
}

// NewArgument creates an argument from short and long calls. Short calls are
// appended first (in given order) then long calls, so help output lists them
// the way they were declared.
func NewArgument(help string, shortCalls []rune, longCalls []string, input InputKind) *Argument {
	calls := make([]Call, 0, len(shortCalls)+len(longCalls))
	for _, r := range shortCalls {
		calls = append(calls, ShortCall(r))
	}
	for _, name := range longCalls {
		calls = append(calls, LongCall(name))
	}

	return &Argument{
		Help:  help,
		Calls: calls,
		Input: input,
	}
}

// AddShort adds a single short call, chainable. Add calls before attaching
// the argument to a CLI or Subcommand; attachment is when calls are checked.
func (a *Argument) AddShort(r rune) *Argument {
	a.Calls = append(a.Calls, ShortCall(r))
	return a
}

// AddShorts adds multiple short calls, chainable.
func (a *Argument) AddShorts(runes ...rune) *Argument {
	for _, r := range runes {
		a.AddShort(r)
	}
	return a
}

// AddLong adds a single long call, chainable.
func (a *Argument) AddLong(name string) *Argument {
	a.Calls = append(a.Calls, LongCall(name))
	return a
}

// AddLongs adds multiple long calls, chainable.
func (a *Argument) AddLongs(names ...string) *Argument {
	for _, name := range names {
		a.AddLong(name)
	}
	return a
}

// HasCall reports whether the argument carries the given call.
func (a *Argument) HasCall(c Call) bool {
	for _, have := range a.Calls {
		if have == c {
			return true
		}
	}
	return false
}

// matchShort reports whether r is one of the argument's short calls.
func (a *Argument) matchShort(r rune) bool {
	return a.HasCall(ShortCall(r))
}

// matchLong reports whether name is one of the argument's long calls.
func (a *Argument) matchLong(name string) bool {
	return a.HasCall(LongCall(name))
}

// callLine renders the combined call list for help output: short calls are
// clustered into a single `-abc` token, long calls stand alone, and the whole
// list is parenthesised when there is more than one token.
func (a *Argument) callLine() string {
	var shorts strings.Builder
	longs := make([]string, 0, len(a.Calls))

	for _, c := range a.Calls {
		switch c.Kind {
		case CallShort:
			shorts.WriteRune(c.Short)
		case CallLong:
			longs = append(longs, "--"+c.Long)
		}
	}

	parts := make([]string, 0, len(longs)+1)
	if shorts.Len() > 0 {
		parts = append(parts, "-"+shorts.String())
	}
	parts = append(parts, longs...)

	if len(parts) == 1 {
		return parts[0]
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// writeHelpLine writes the argument's one-line help entry, wrapped to width
// with the tab string as indent. Lines look like:
//
//	(-a, --long) [text] [REQUIRED] — Some simple help
func (a *Argument) writeHelpLine(w stdio.Writer, width int, tab string) error {
	help := a.Help
	if help == "" {
		help = helpDefault
	}

	required := ""
	if a.Required {
		required = "[REQUIRED] "
	}

	line := a.callLine() + " " + a.Input.helpToken() + required + "— " + help
	return climakeio.WriteWrapped(w, line, width, tab)
}
