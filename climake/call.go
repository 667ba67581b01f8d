package climake

import "strings"

// CallKind discriminates the two spellings a Call can have.
type CallKind int

const (
	// CallShort is a single-character call, e.g. the `v` in `-v` or `-xvz`.
	CallShort CallKind = iota
	// CallLong is a multi-character call, e.g. the `verbose` in `--verbose`.
	CallLong
)

// Call is a single user-facing spelling by which an Argument is invoked.
// Calls are plain comparable values; two Calls are the same call iff they
// compare equal with ==.
type Call struct {
	Kind  CallKind
	Short rune
	Long  string
}

// ShortCall builds a short call from a single character.
func ShortCall(r rune) Call {
	return Call{Kind: CallShort, Short: r}
}

// LongCall builds a long call from a name. The name is not validated here;
// malformed names (empty, containing `=`, or starting with `-`) are rejected
// when the owning Argument is attached to a CLI or Subcommand.
func LongCall(name string) Call {
	return Call{Kind: CallLong, Long: name}
}

// String renders the call the way a user would type it: `-x` or `--xyz`.
func (c Call) String() string {
	if c.Kind == CallShort {
		return "-" + string(c.Short)
	}
	return "--" + c.Long
}

// validLongName reports whether name is acceptable as a long call.
func validLongName(name string) bool {
	if name == "" {
		return false
	}
	if strings.HasPrefix(name, "-") {
		return false
	}
	return !strings.ContainsRune(name, '=')
}
