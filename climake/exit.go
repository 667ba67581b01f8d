package climake

import "errors"

// ErrHelpShown signals that help output was rendered and the process should
// terminate successfully instead of treating the run as a failure.
var ErrHelpShown = errors.New("help shown")

// ExitError is a sentinel used to request a specific exit code.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return "exit"
}

// ExitCodeDefaults holds common default codes.
type ExitCodeDefaults struct {
	Success       int // default: 0
	GeneralError  int // default: 1
	MisusageError int // default: 2
}

func defaultExitDefaults() ExitCodeDefaults {
	return ExitCodeDefaults{Success: 0, GeneralError: 1, MisusageError: 2}
}

// ExitCodeManager maps errors to process exit codes.
type ExitCodeManager struct {
	codesByParse map[ErrorType]int
	codesByBuild map[ErrorType]int
	defaults     ExitCodeDefaults
}

// NewExitCodeManager returns a manager with the conventional mappings: help
// output is success, any parse or build failure is a general error. Hosts
// that want the sysexits-style misusage code register it with DefineParse.
func NewExitCodeManager() *ExitCodeManager {
	return &ExitCodeManager{
		codesByParse: make(map[ErrorType]int),
		codesByBuild: make(map[ErrorType]int),
		defaults:     defaultExitDefaults(),
	}
}

// DefineParse overrides the exit code for a parse error category, chainable.
func (e *ExitCodeManager) DefineParse(typ ErrorType, code int) *ExitCodeManager {
	e.codesByParse[typ] = code
	return e
}

// DefineBuild overrides the exit code for a build error category, chainable.
func (e *ExitCodeManager) DefineBuild(typ ErrorType, code int) *ExitCodeManager {
	e.codesByBuild[typ] = code
	return e
}

// Default replaces the manager's default codes, chainable.
func (e *ExitCodeManager) Default(d ExitCodeDefaults) *ExitCodeManager {
	e.defaults = d
	return e
}

// Resolve converts an error to an exit code according to registered
// mappings. Precedence:
//  1. nil and ErrHelpShown (success)
//  2. ExitError (requested code)
//  3. ParseError / BuildError category mapping
//  4. Default codes
func (e *ExitCodeManager) Resolve(err error) int {
	if err == nil || errors.Is(err, ErrHelpShown) {
		return e.defaults.Success
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		if code, ok := e.codesByParse[parseErr.Type]; ok {
			return code
		}
		return e.defaults.GeneralError
	}

	var buildErr *BuildError
	if errors.As(err, &buildErr) {
		if code, ok := e.codesByBuild[buildErr.Type]; ok {
			return code
		}
		return e.defaults.GeneralError
	}

	return e.defaults.GeneralError
}

// ExitCodeFor resolves err with the conventional mappings. It is the
// shorthand for callers that do not need a customized manager.
func ExitCodeFor(err error) int {
	return NewExitCodeManager().Resolve(err)
}
