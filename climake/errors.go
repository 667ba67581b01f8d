package climake

import "fmt"

// ErrorType categorizes CLI errors. Categories drive exit-code mapping (see
// exit.go) and let hosts branch on the failure kind without string matching.
type ErrorType string

const (
	// Spec-tree assembly errors.
	ErrorTypeNoCalls       ErrorType = "no_calls"
	ErrorTypeDuplicateCall ErrorType = "duplicate_call"
	ErrorTypeInvalidCall   ErrorType = "invalid_call"
	ErrorTypeDuplicateName ErrorType = "duplicate_name"
	ErrorTypeInvalidName   ErrorType = "invalid_name"

	// Parse errors.
	ErrorTypeArgNotFound        ErrorType = "arg_not_found"
	ErrorTypeSubcommandNotFound ErrorType = "subcommand_not_found"
	ErrorTypeMissingRequired    ErrorType = "missing_required"
)

// BuildError reports an invalid spec tree. It is recorded at the point an
// Argument or Subcommand is attached and surfaced through CLI.Err before any
// parse is attempted.
type BuildError struct {
	Type    ErrorType
	Message string
	Call    string // offending call spelling, when applicable
}

func (e *BuildError) Error() string {
	return e.Message
}

// NewBuildError creates a BuildError with the given type and message.
func NewBuildError(errType ErrorType, message string) *BuildError {
	return &BuildError{Type: errType, Message: message}
}

// ParseError reports a failed parse. No partial result accompanies it; the
// whole parse is aborted on the first error.
type ParseError struct {
	Type    ErrorType
	Message string

	// Token is the input token that failed to resolve, in the form the user
	// typed it (e.g. `--verbos`, `-x`, `push`).
	Token string

	// Suggestion is a fuzzy-matched "did you mean" candidate, empty when no
	// close match exists.
	Suggestion string

	// Scope is the subcommand whose scope was active when the error occurred,
	// nil for the root scope. Hosts typically render this scope's help block.
	Scope *Subcommand

	// Missing is the required argument that was never invoked, set only for
	// ErrorTypeMissingRequired.
	Missing *Argument
}

func (e *ParseError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("%s (did you mean '%s'?)", e.Message, e.Suggestion)
	}
	return e.Message
}

// NewParseError creates a ParseError with the given type and message.
func NewParseError(errType ErrorType, message string) *ParseError {
	return &ParseError{Type: errType, Message: message}
}
