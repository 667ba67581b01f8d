package climake

// ParsedArgument records one invocation of an Argument together with the
// data bound to it. Argument points into the spec tree; only Data is owned
// by the result.
type ParsedArgument struct {
	Argument *Argument
	Data     Data
}

// ParsedSubcommand records a subcommand the input actually descended into,
// with the arguments and nested subcommands invoked under it. Subcommand
// points into the spec tree.
type ParsedSubcommand struct {
	Subcommand  *Subcommand
	Arguments   []*ParsedArgument
	Subcommands []*ParsedSubcommand
}

// ParsedCLI is the root of the result tree: top-level arguments invoked and
// top-level subcommands entered, in input order. A new tree is allocated per
// parse; nothing from previous parses is reused.
type ParsedCLI struct {
	Arguments   []*ParsedArgument
	Subcommands []*ParsedSubcommand
}

// DataFor returns the data bound to the first top-level invocation of arg.
func (p *ParsedCLI) DataFor(arg *Argument) (Data, bool) {
	return dataFor(p.Arguments, arg)
}

// Invoked reports whether arg was invoked at the top level.
func (p *ParsedCLI) Invoked(arg *Argument) bool {
	_, ok := p.DataFor(arg)
	return ok
}

// Subcommand returns the first top-level entered subcommand with the given
// name.
func (p *ParsedCLI) Subcommand(name string) (*ParsedSubcommand, bool) {
	return subcommandNamed(p.Subcommands, name)
}

// DataFor returns the data bound to the first invocation of arg directly
// under this subcommand.
func (p *ParsedSubcommand) DataFor(arg *Argument) (Data, bool) {
	return dataFor(p.Arguments, arg)
}

// Invoked reports whether arg was invoked directly under this subcommand.
func (p *ParsedSubcommand) Invoked(arg *Argument) bool {
	_, ok := p.DataFor(arg)
	return ok
}

// Child returns the first nested entered subcommand with the given name.
func (p *ParsedSubcommand) Child(name string) (*ParsedSubcommand, bool) {
	return subcommandNamed(p.Subcommands, name)
}

func dataFor(parsed []*ParsedArgument, arg *Argument) (Data, bool) {
	for _, pa := range parsed {
		if pa.Argument == arg {
			return pa.Data, true
		}
	}
	return Data{}, false
}

func subcommandNamed(parsed []*ParsedSubcommand, name string) (*ParsedSubcommand, bool) {
	for _, ps := range parsed {
		if ps.Subcommand.Name == name {
			return ps, true
		}
	}
	return nil, false
}
