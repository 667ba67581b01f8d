package climake

// InputKind enumerates what trailing data an Argument accepts. It decides how
// many data tokens the parser binds to the argument and which Data variant the
// argument produces.
type InputKind int

const (
	// InputNone accepts no trailing data. Data tokens supplied anyway are
	// discarded, not errors.
	InputNone InputKind = iota
	// InputText binds exactly one trailing token as free text. Absent input
	// binds an empty string.
	InputText
	// InputPath binds exactly one trailing token as a filesystem path. The
	// path is never checked against the filesystem.
	InputPath
	// InputPaths binds zero or more trailing tokens as filesystem paths.
	InputPaths
)

// String returns the kind's name for debugging and error copy.
func (k InputKind) String() string {
	switch k {
	case InputNone:
		return "none"
	case InputText:
		return "text"
	case InputPath:
		return "path"
	case InputPaths:
		return "paths"
	default:
		return "unknown"
	}
}

// helpToken returns the placeholder used in help lines. The trailing space is
// deliberate: the help renderer concatenates tokens directly and InputNone
// contributes nothing, not an extra space.
func (k InputKind) helpToken() string {
	switch k {
	case InputText:
		return "[text] "
	case InputPath:
		return "[path] "
	case InputPaths:
		return "[paths] "
	default:
		return ""
	}
}

// Data is the value bound to an invoked Argument. Kind always mirrors the
// argument's InputKind; only the field matching Kind is meaningful.
type Data struct {
	Kind InputKind

	// Text holds the bound token for InputText, possibly empty.
	Text string
	// Path holds the bound token for InputPath, possibly empty. Paths echo
	// user input and are not checked for existence.
	Path string
	// Paths holds the bound tokens for InputPaths, possibly empty.
	Paths []string
}

// newData maps accumulated data tokens through an InputKind. Text and Path
// take the first token and ignore the rest; Paths copies all tokens so the
// result never aliases parser scratch buffers; None discards everything.
func newData(kind InputKind, tokens []string) Data {
	d := Data{Kind: kind}
	switch kind {
	case InputText:
		if len(tokens) > 0 {
			d.Text = tokens[0]
		}
	case InputPath:
		if len(tokens) > 0 {
			d.Path = tokens[0]
		}
	case InputPaths:
		d.Paths = make([]string, len(tokens))
		copy(d.Paths, tokens)
	case InputNone:
		// Discard tokens.
	}
	return d
}
