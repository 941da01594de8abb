package cli

import (
	"log/slog"
	"strings"
)

// Match is one flag encountered during a parse, paired with its value
// (empty for flags that take none). Matches reference the registered
// Arg but never modify it.
type Match struct {
	Arg   *Arg
	Value string
}

// Result is the output of a single Parse call.
type Result struct {
	// Subcommand is the matched subcommand, or nil for a flat-style
	// invocation.
	Subcommand *Subcommand

	// Matches holds the encountered flags in command-line order.
	Matches []Match
}

// Lookup returns the first match for the named flag.
func (r *Result) Lookup(name string) (Match, bool) {
	for _, m := range r.Matches {
		if m.Arg.Name == name {
			return m, true
		}
	}
	return Match{}, false
}

// Has reports whether the named flag was present.
func (r *Result) Has(name string) bool {
	_, ok := r.Lookup(name)
	return ok
}

// Value returns the first match's value, or "" if the flag was absent.
func (r *Result) Value(name string) string {
	m, _ := r.Lookup(name)
	return m.Value
}

// Parse scans args (the command line minus the program name) in a
// single left-to-right pass and returns the matched flags. On failure
// the result is nil and the error is a *ParseError; the caller should
// stop command processing and show the message to the user.
func (p *Parser) Parse(args []string) (*Result, error) {
	if len(args) == 0 {
		return nil, &ParseError{Kind: ErrNoArguments}
	}

	scope := p.args
	result := &Result{}
	rest := args
	if sub := p.subcommand(args[0]); sub != nil {
		slog.Debug("processing subcommand", "name", sub.Name)
		result.Subcommand = sub
		scope = sub.args
		rest = args[1:]
	}

	for i := 0; i < len(rest); {
		tok := rest[i]
		switch {
		case strings.HasPrefix(tok, "-") && i+1 < len(rest) && !strings.HasPrefix(rest[i+1], "-"):
			// flag with value
			name, value := tok[1:], rest[i+1]
			slog.Debug("flag with value", "name", name, "value", value)
			arg := findArg(scope, name)
			if arg == nil {
				return nil, &ParseError{Kind: ErrUnknownArgument, Name: name}
			}
			if !arg.HasValue {
				return nil, &ParseError{Kind: ErrUnexpectedValue, Name: name}
			}
			result.Matches = append(result.Matches, Match{Arg: arg, Value: value})
			i += 2
		case strings.HasPrefix(tok, "-"):
			// bare flag; also reached when a value-bearing flag is
			// followed by another '-' token, which is rejected rather
			// than swallowing that token as a value
			name := tok[1:]
			slog.Debug("bare flag", "name", name)
			arg := findArg(scope, name)
			if arg == nil {
				return nil, &ParseError{Kind: ErrUnknownArgument, Name: name}
			}
			if arg.HasValue {
				return nil, &ParseError{Kind: ErrMissingValue, Name: name}
			}
			result.Matches = append(result.Matches, Match{Arg: arg})
			i++
		default:
			return nil, &ParseError{Kind: ErrMalformedToken, Name: tok}
		}
	}

	// only the active scope's required flags are checked
	for _, arg := range scope {
		if !arg.Required {
			continue
		}
		if !result.Has(arg.Name) {
			return nil, &ParseError{Kind: ErrMissingRequired, Name: arg.Name}
		}
	}

	return result, nil
}
