package tinyargs

import (
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/napalu/tinyargs/i18n"
	"github.com/napalu/tinyargs/types"
	"golang.org/x/term"
)

// ColorMode selects whether help output is colorized.
type ColorMode int

const (
	ColorNever  ColorMode = iota // plain text
	ColorAlways                  // ANSI styles regardless of the output
	ColorAuto                    // ANSI styles when stdout is a terminal
)

// ConfigureRendererFunc is used when configuring a Renderer
type ConfigureRendererFunc func(renderer *Renderer)

// Renderer formats help pages from a built command. It only reads the tree.
type Renderer struct {
	bundle     *i18n.Bundle
	color      ColorMode
	isTerminal func() bool
}

// NewRenderer returns a plain-text renderer using the embedded messages unless configured
// otherwise.
func NewRenderer(configs ...ConfigureRendererFunc) *Renderer {
	r := &Renderer{
		bundle: i18n.Default(),
		color:  ColorNever,
		isTerminal: func() bool {
			return term.IsTerminal(int(os.Stdout.Fd()))
		},
	}
	for _, config := range configs {
		config(r)
	}

	return r
}

func WithRendererBundle(bundle *i18n.Bundle) ConfigureRendererFunc {
	return func(renderer *Renderer) {
		if bundle != nil {
			renderer.bundle = bundle
		}
	}
}

func WithColor(mode ColorMode) ConfigureRendererFunc {
	return func(renderer *Renderer) {
		renderer.color = mode
	}
}

// ArgUsage renders one line of the ARGS section.
func (r *Renderer) ArgUsage(spec ArgSpec) string {
	name := spec.Name.String()
	return "\t" + r.style(name, color.Bold) + tabs(len(name)) + spec.Description + "\n"
}

// CommandUsage renders one line of the SUBCOMMANDS section.
func (r *Renderer) CommandUsage(c *Command) string {
	return "\t" + r.style(c.name, color.Bold) + tabs(len(c.name)) + c.description + "\n"
}

// Help renders the full help page of c:
//
//	myapp sub 0.1.0
//	Me!
//	This is a subcommand.
//
//	USAGE:
//		myapp sub [ARGS]
//
//	ARGS:
//		-p, --path	Insert a path.
//
//	Licensed under MIT
func (r *Renderer) Help(c *Command) string {
	fullName := c.FullName()

	var sb strings.Builder
	sb.WriteString(r.style(fullName, color.Bold))
	if c.version != "" {
		sb.WriteString(" " + r.style(c.version, color.Faint))
	}
	sb.WriteString("\n")
	if c.author != "" {
		sb.WriteString(r.style(c.author, color.Italic) + "\n")
	}
	sb.WriteString(c.description)
	sb.WriteString("\n\n")
	sb.WriteString(r.usage(c, fullName))
	sb.WriteString("\n\n")
	sb.WriteString(r.args(c))
	sb.WriteString("\n")
	sb.WriteString(r.subcommands(c))
	if c.license != "" {
		sb.WriteString(r.style(r.t(types.HelpLicensedUnderKey, c.license), color.Bold))
	}

	return sb.String()
}

func (r *Renderer) usage(c *Command, fullName string) string {
	buf := r.heading(types.HelpUsageKey)
	name := r.style(fullName, color.Bold)
	if len(c.args) > 0 {
		buf += "\n\t" + name + " " + r.t(types.HelpArgsPlaceholderKey)
	}
	if c.children.Len() > 0 {
		buf += "\n\t" + name + " " + r.t(types.HelpSubcommandPlaceholderKey) + " " + r.t(types.HelpArgsPlaceholderKey)
	}

	return buf
}

func (r *Renderer) args(c *Command) string {
	if len(c.args) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(r.heading(types.HelpArgsKey) + "\n")
	for _, spec := range c.args {
		sb.WriteString(r.ArgUsage(spec))
	}

	return sb.String()
}

func (r *Renderer) subcommands(c *Command) string {
	if c.children.Len() == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(r.heading(types.HelpSubcommandsKey) + "\n")
	for p := c.children.Oldest(); p != nil; p = p.Next() {
		sb.WriteString(r.CommandUsage(p.Value))
	}
	sb.WriteString("\n")

	return sb.String()
}

func (r *Renderer) heading(key string) string {
	return r.style(r.t(key), color.Bold, color.Underline)
}

func (r *Renderer) t(key string, args ...interface{}) string {
	return r.bundle.T(key, args...)
}

func (r *Renderer) style(s string, attrs ...color.Attribute) string {
	if !r.colorEnabled() {
		return s
	}

	c := color.New(attrs...)
	c.EnableColor()

	return c.Sprint(s)
}

func (r *Renderer) colorEnabled() bool {
	switch r.color {
	case ColorAlways:
		return true
	case ColorAuto:
		return os.Getenv("NO_COLOR") == "" && r.isTerminal()
	}

	return false
}

// tabs aligns descriptions on tab stops from the length of the name before them.
func tabs(n int) string {
	switch n / 8 {
	case 0:
		return "\t\t"
	case 1:
		return "\t"
	}

	return "\n\t\t\t"
}
