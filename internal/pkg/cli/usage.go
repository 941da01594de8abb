package cli

import (
	"fmt"
	"strings"
)

// Usage renders a plain-text listing of the registered arguments and
// subcommands.
func (p *Parser) Usage() string {
	var b strings.Builder
	if len(p.args) > 0 {
		b.WriteString("Options:\n")
		writeArgs(&b, "  ", p.args)
	}
	if len(p.subcommands) > 0 {
		b.WriteString("Commands:\n")
		for _, s := range p.subcommands {
			fmt.Fprintf(&b, "  %s\n", s.Name)
			writeArgs(&b, "    ", s.args)
		}
	}
	return b.String()
}

func writeArgs(b *strings.Builder, indent string, args []*Arg) {
	width := 0
	for _, a := range args {
		if n := len(flagLabel(a)); n > width {
			width = n
		}
	}
	for _, a := range args {
		desc := a.Description
		if a.Required {
			desc += " (required)"
		}
		fmt.Fprintf(b, "%s%-*s  %s\n", indent, width, flagLabel(a), desc)
	}
}

func flagLabel(a *Arg) string {
	if a.HasValue {
		return "-" + a.Name + " <value>"
	}
	return "-" + a.Name
}
