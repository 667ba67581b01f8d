package climake

import (
	"fmt"
	"strings"

	"github.com/dzonerzy/go-climake/internal/fuzzy"
	"github.com/dzonerzy/go-climake/internal/pool"
	climakeio "github.com/dzonerzy/go-climake/io"
)

// Parser walks a flat token stream against a spec tree and produces a result
// tree mirroring the subcommand hierarchy. Parsing never guesses: a token
// that resolves nowhere in the active scope aborts the whole parse with a
// ParseError.
//
// A Parser carries per-parse state and is not safe for concurrent use; the
// spec tree it borrows is read-only for the duration of a parse.
type Parser struct {
	cli         *CLI
	maxDistance int
	trace       *climakeio.Logger

	// Per-parse state, reset at the start of every Parse.
	result  *ParsedCLI
	stack   []frame
	armed   *Argument
	armedAt frame
	data    *[]string // pooled scratch for the armed argument's data tokens
}

// frame is one level of the scope stack. The zero frame is the root scope.
type frame struct {
	sub    *Subcommand       // nil at root
	parsed *ParsedSubcommand // nil at root
}

// NewParser creates a parser bound to the given spec tree.
func NewParser(cli *CLI) *Parser {
	return &Parser{cli: cli, maxDistance: 2}
}

// WithTrace enables debug tracing of token classification through the given
// logger, chainable.
func (p *Parser) WithTrace(logger *climakeio.Logger) *Parser {
	p.trace = logger
	return p
}

// MaxSuggestionDistance sets the maximum edit distance for "did you mean"
// suggestions on unresolved tokens, chainable. The default is 2.
func (p *Parser) MaxSuggestionDistance(distance int) *Parser {
	p.maxDistance = distance
	return p
}

// Parse consumes tokens (conventionally os.Args[1:]) and returns the result
// tree, or the first ParseError encountered. No partial result is returned
// on failure. A spec tree whose assembly recorded a BuildError refuses to
// parse.
func (p *Parser) Parse(tokens []string) (*ParsedCLI, error) {
	if err := p.cli.Err(); err != nil {
		return nil, err
	}

	p.reset()
	p.data = pool.GetTokenBuffer()
	defer func() {
		pool.PutTokenBuffer(p.data)
		p.data = nil
	}()

	for _, token := range tokens {
		if token == "" {
			continue
		}
		if err := p.parseToken(token); err != nil {
			return nil, err
		}
	}

	// End of input finalizes any still-armed argument.
	p.finalizeArmed()

	if err := p.checkRequired(); err != nil {
		return nil, err
	}
	return p.result, nil
}

// reset clears per-parse state so the parser can be reused.
func (p *Parser) reset() {
	p.result = &ParsedCLI{}
	p.stack = append(p.stack[:0], frame{})
	p.armed = nil
}

func (p *Parser) top() frame {
	return p.stack[len(p.stack)-1]
}

// scopeArgs returns the arguments resolvable in the active scope. There is
// deliberately no fallback to outer scopes: inside a subcommand only that
// subcommand's own arguments resolve.
func (p *Parser) scopeArgs() []*Argument {
	if t := p.top(); t.sub != nil {
		return t.sub.Arguments
	}
	return p.cli.arguments
}

// scopeSubs returns the subcommands resolvable in the active scope.
func (p *Parser) scopeSubs() []*Subcommand {
	if t := p.top(); t.sub != nil {
		return t.sub.Subcommands
	}
	return p.cli.subcommands
}

// isLongToken reports whether token is a long-call token: `--` followed by
// one or more characters. The substring after `--` is matched verbatim, so a
// name containing `=` or further hyphen prefixes simply never resolves.
func isLongToken(token string) bool {
	return len(token) > 2 && token[0] == '-' && token[1] == '-'
}

// isShortCluster reports whether token is a short-call cluster: `-` followed
// by one or more non-hyphen characters.
func isShortCluster(token string) bool {
	return len(token) >= 2 && token[0] == '-' && !strings.Contains(token[1:], "-")
}

// parseToken classifies and handles a single token in the active scope.
func (p *Parser) parseToken(token string) error {
	switch {
	case isLongToken(token):
		// A new call token finalizes whatever was armed before it.
		p.finalizeArmed()

		name := token[2:]
		arg := findLong(p.scopeArgs(), name)
		if arg == nil {
			return p.argNotFoundError(token, name)
		}
		p.tracef("long call %s resolved in scope %s", token, p.scopeName())
		p.arm(arg)
		return nil

	case isShortCluster(token):
		p.finalizeArmed()

		// Each character activates its own argument in sequence. Only the
		// last one keeps a data-consumption window open; the ones before it
		// are finalized with whatever they have, which is nothing.
		for _, r := range token[1:] {
			arg := findShort(p.scopeArgs(), r)
			if arg == nil {
				return p.shortNotFoundError(token, r)
			}
			p.finalizeArmed()
			p.tracef("short call -%c resolved in scope %s", r, p.scopeName())
			p.arm(arg)
		}
		return nil

	default:
		return p.parseBareToken(token)
	}
}

// parseBareToken handles a token that is neither a long call nor a short
// cluster: data for the armed argument, or a subcommand descent.
func (p *Parser) parseBareToken(token string) error {
	if p.armed != nil {
		if p.armed.Input == InputPaths {
			// Paths consume until the next call token, a subcommand name in
			// the active scope, or end of input.
			if sub := findSub(p.scopeSubs(), token); sub != nil {
				p.finalizeArmed()
				p.descend(sub)
				return nil
			}
			*p.data = append(*p.data, token)
			return nil
		}

		// Text and Path consume exactly one token, then disarm.
		*p.data = append(*p.data, token)
		p.finalizeArmed()
		return nil
	}

	sub := findSub(p.scopeSubs(), token)
	if sub == nil {
		return p.subcommandNotFoundError(token)
	}
	p.descend(sub)
	return nil
}

// arm opens a data-consumption window for arg in the active scope. An
// InputNone argument takes no data, so it is emitted immediately instead of
// staying armed.
func (p *Parser) arm(arg *Argument) {
	if arg.Input == InputNone {
		p.emit(p.top(), arg)
		return
	}
	p.armed = arg
	p.armedAt = p.top()
}

// finalizeArmed emits the armed argument with whatever data it accumulated,
// possibly none, and clears the arming state.
func (p *Parser) finalizeArmed() {
	if p.armed == nil {
		return
	}
	p.emit(p.armedAt, p.armed)
	p.armed = nil
	*p.data = (*p.data)[:0]
}

// emit appends a ParsedArgument for arg to the result node of the frame the
// argument was armed in. newData copies the scratch buffer, so the pooled
// buffer never leaks into results.
func (p *Parser) emit(at frame, arg *Argument) {
	pa := &ParsedArgument{Argument: arg, Data: newData(arg.Input, *p.data)}
	if at.parsed != nil {
		at.parsed.Arguments = append(at.parsed.Arguments, pa)
		return
	}
	p.result.Arguments = append(p.result.Arguments, pa)
}

// descend pushes sub onto the scope stack and records it in the result tree.
func (p *Parser) descend(sub *Subcommand) {
	ps := &ParsedSubcommand{Subcommand: sub}
	if t := p.top(); t.parsed != nil {
		t.parsed.Subcommands = append(t.parsed.Subcommands, ps)
	} else {
		p.result.Subcommands = append(p.result.Subcommands, ps)
	}
	p.stack = append(p.stack, frame{sub: sub, parsed: ps})
	p.tracef("descended into subcommand %s", sub.Name)
}

// checkRequired verifies, once at end of parse, that every required argument
// of the root scope and of every subcommand scope actually entered was
// invoked. Required arguments inside subcommands the input never descended
// into are not errors.
func (p *Parser) checkRequired() error {
	emitted := make(map[*Argument]bool)
	collectEmitted(p.result.Arguments, p.result.Subcommands, emitted)

	if err := requiredIn(p.cli.arguments, nil, emitted); err != nil {
		return err
	}

	var walk func(nodes []*ParsedSubcommand) error
	walk = func(nodes []*ParsedSubcommand) error {
		for _, ps := range nodes {
			if err := requiredIn(ps.Subcommand.Arguments, ps.Subcommand, emitted); err != nil {
				return err
			}
			if err := walk(ps.Subcommands); err != nil {
				return err
			}
		}
		return nil
	}
	return walk(p.result.Subcommands)
}

func collectEmitted(args []*ParsedArgument, subs []*ParsedSubcommand, into map[*Argument]bool) {
	for _, pa := range args {
		into[pa.Argument] = true
	}
	for _, ps := range subs {
		collectEmitted(ps.Arguments, ps.Subcommands, into)
	}
}

func requiredIn(args []*Argument, scope *Subcommand, emitted map[*Argument]bool) error {
	for _, arg := range args {
		if arg.Required && !emitted[arg] {
			return &ParseError{
				Type:    ErrorTypeMissingRequired,
				Message: fmt.Sprintf("missing required argument: %s", arg.callLine()),
				Missing: arg,
				Scope:   scope,
			}
		}
	}
	return nil
}

// Scope lookup helpers. Scopes are small declaration-ordered lists, so a
// linear scan beats maintaining per-node lookup maps.

func findLong(args []*Argument, name string) *Argument {
	for _, arg := range args {
		if arg.matchLong(name) {
			return arg
		}
	}
	return nil
}

func findShort(args []*Argument, r rune) *Argument {
	for _, arg := range args {
		if arg.matchShort(r) {
			return arg
		}
	}
	return nil
}

func findSub(subs []*Subcommand, name string) *Subcommand {
	for _, sub := range subs {
		if sub.Name == name {
			return sub
		}
	}
	return nil
}

// Error construction with fuzzy suggestions.

func (p *Parser) argNotFoundError(token, name string) error {
	candidates := make([]string, 0, len(p.scopeArgs()))
	for _, arg := range p.scopeArgs() {
		for _, call := range arg.Calls {
			if call.Kind == CallLong {
				candidates = append(candidates, call.Long)
			}
		}
	}

	suggestion := fuzzy.FindBestCall(name, candidates, p.maxDistance)
	if suggestion != "" {
		suggestion = "--" + suggestion
	}

	return &ParseError{
		Type:       ErrorTypeArgNotFound,
		Message:    "argument not found: " + token,
		Token:      token,
		Suggestion: suggestion,
		Scope:      p.top().sub,
	}
}

func (p *Parser) shortNotFoundError(cluster string, r rune) error {
	message := "argument not found: -" + string(r)
	if cluster != "-"+string(r) {
		message += " (in " + cluster + ")"
	}
	return &ParseError{
		Type:    ErrorTypeArgNotFound,
		Message: message,
		Token:   cluster,
		Scope:   p.top().sub,
	}
}

func (p *Parser) subcommandNotFoundError(token string) error {
	candidates := make([]string, 0, len(p.scopeSubs()))
	for _, sub := range p.scopeSubs() {
		candidates = append(candidates, sub.Name)
	}

	return &ParseError{
		Type:       ErrorTypeSubcommandNotFound,
		Message:    "subcommand not found: " + token,
		Token:      token,
		Suggestion: fuzzy.FindBestSubcommand(token, candidates, p.maxDistance),
		Scope:      p.top().sub,
	}
}

func (p *Parser) scopeName() string {
	if t := p.top(); t.sub != nil {
		return t.sub.Name
	}
	return "root"
}

func (p *Parser) tracef(format string, args ...any) {
	if p.trace != nil {
		p.trace.Debugf(format, args...)
	}
}
