// Package cli implements a minimal command-line parser with flat flags
// and git-style subcommands.
//
// Rules:
//   - Flags:       -name, or -name value when the flag takes a value
//   - Subcommand:  the first token, if it matches a registered name
//   - A token is a value iff it does not start with '-'
//   - No --long/-short distinction, no -name=value splitting,
//     no positional arguments
//
// Once a subcommand is chosen, only its own arguments resolve; top-level
// arguments are unreachable for that invocation.
package cli

// Arg describes a single command-line argument of the form -name or
// -name value. Args are registered once at setup and never written to
// by the parser; parsed values live on the Result.
type Arg struct {
	// Name is matched against flag tokens after stripping exactly one
	// leading '-'. Must be unique within its owning scope; the parser
	// does not check this.
	Name        string
	Description string

	// HasValue marks the flag as consuming the following token as its
	// value.
	HasValue bool

	// Required makes a Parse fail when the flag is absent. Only checked
	// against the active scope.
	Required bool
}

// Subcommand is a named argument scope, selected when the first token
// equals its name. E.g. git log, where 'log' is the name.
type Subcommand struct {
	Name string

	args []*Arg
}

func NewSubcommand(name string) *Subcommand {
	return &Subcommand{Name: name}
}

// AddArg adds an argument to this subcommand's scope.
func (s *Subcommand) AddArg(a *Arg) {
	s.args = append(s.args, a)
}

// Args returns the subcommand's arguments in declaration order.
func (s *Subcommand) Args() []*Arg {
	return s.args
}

// Parser holds the top-level argument scope and the subcommand registry.
// Register everything first, then call Parse; the registry is read-only
// during a parse, so repeated or concurrent parses are independent.
type Parser struct {
	args        []*Arg
	subcommands []*Subcommand
}

// AddArg adds an argument to the top-level scope.
func (p *Parser) AddArg(a *Arg) {
	p.args = append(p.args, a)
}

// AddSubcommand registers a subcommand.
func (p *Parser) AddSubcommand(s *Subcommand) {
	p.subcommands = append(p.subcommands, s)
}

func (p *Parser) subcommand(name string) *Subcommand {
	for _, s := range p.subcommands {
		if s.Name == name {
			return s
		}
	}
	return nil
}

func findArg(scope []*Arg, name string) *Arg {
	for _, a := range scope {
		if a.Name == name {
			return a
		}
	}
	return nil
}
