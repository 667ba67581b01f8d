package climake

import (
	"fmt"
	stdio "io"
	"strings"

	climakeio "github.com/dzonerzy/go-climake/io"
)

// writeHeader writes the usage line and the program banner to w. A non-empty
// usageSuffix names the subcommand whose help is being rendered:
//
//	Usage: ./my-app [OPTIONS]
//
//	  My app v0.1.0 — A simple application
func (c *CLI) writeHeader(w stdio.Writer, usageSuffix string) error {
	stem := c.programStem()

	var err error
	if usageSuffix != "" {
		_, err = fmt.Fprintf(w, "Usage: ./%s %s [OPTIONS]\n", stem, usageSuffix)
	} else {
		_, err = fmt.Fprintf(w, "Usage: ./%s [OPTIONS]\n", stem)
	}
	if err != nil {
		return err
	}

	if c.description == "" {
		return nil
	}

	if _, err := stdio.WriteString(w, "\n"); err != nil {
		return err
	}

	banner := c.name + " — " + c.description
	if c.version != "" {
		banner = c.name + " v" + c.version + " — " + c.description
	}
	return climakeio.WriteWrapped(w, banner, c.wrapWidth(), c.tabbing)
}

// WriteHelp renders the root help block to w: header, Arguments section and
// Subcommands section. Output depends only on the spec tree, the configured
// width/tabbing and the program stem, so repeated calls with no intervening
// mutation produce byte-identical output.
func (c *CLI) WriteHelp(w stdio.Writer) error {
	if err := c.writeHeader(w, ""); err != nil {
		return err
	}
	return c.writeSections(w, c.arguments, c.subcommands)
}

// WriteSubcommandHelp renders the help block for one subcommand scope:
// header with the subcommand on the usage line, an About section when the
// subcommand has help text, then its Arguments and Subcommands sections.
func (c *CLI) WriteSubcommandHelp(w stdio.Writer, sub *Subcommand) error {
	if err := c.writeHeader(w, sub.Name); err != nil {
		return err
	}

	if sub.Help != "" {
		if _, err := stdio.WriteString(w, "\nAbout:\n"); err != nil {
			return err
		}
		if err := climakeio.WriteWrapped(w, sub.Help, c.wrapWidth(), c.tabbing); err != nil {
			return err
		}
	}

	return c.writeSections(w, sub.Arguments, sub.Subcommands)
}

// WriteScopeHelp renders help for the given scope: the root block when scope
// is nil, otherwise the subcommand block. Hosts typically pass a ParseError's
// Scope here before exiting non-zero.
func (c *CLI) WriteScopeHelp(w stdio.Writer, scope *Subcommand) error {
	if scope == nil {
		return c.WriteHelp(w)
	}
	return c.WriteSubcommandHelp(w, scope)
}

// Help returns the root help block as a string.
func (c *CLI) Help() string {
	var buf strings.Builder
	_ = c.WriteHelp(&buf)
	return buf.String()
}

// writeSections writes the Arguments and Subcommands sections shared by root
// and subcommand help blocks.
func (c *CLI) writeSections(w stdio.Writer, args []*Argument, subs []*Subcommand) error {
	width := c.wrapWidth()

	if _, err := stdio.WriteString(w, "\nArguments:\n"); err != nil {
		return err
	}
	if len(args) > 0 {
		for _, arg := range args {
			if err := arg.writeHelpLine(w, width, c.tabbing); err != nil {
				return err
			}
		}
	} else if _, err := stdio.WriteString(w, "  No arguments found\n"); err != nil {
		return err
	}

	if _, err := stdio.WriteString(w, "\nSubcommands:\n"); err != nil {
		return err
	}
	if len(subs) > 0 {
		for _, sub := range subs {
			if err := sub.writeNameLine(w, width, c.tabbing); err != nil {
				return err
			}
		}
	} else if _, err := stdio.WriteString(w, "  No subcommands found\n"); err != nil {
		return err
	}

	return nil
}
