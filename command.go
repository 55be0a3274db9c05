package tinyargs

import (
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Command is a built, read-only node of the command tree. A node is owned by exactly one
// parent; it knows its ancestors only through the name snapshot taken when the tree was
// built.
type Command struct {
	name        string
	description string
	version     string
	author      string
	license     string
	args        []ArgSpec
	children    *orderedmap.OrderedMap[string, *Command]
	parents     []string
}

func (c *Command) Name() string {
	return c.name
}

func (c *Command) Description() string {
	return c.description
}

func (c *Command) Version() string {
	return c.version
}

func (c *Command) Author() string {
	return c.author
}

func (c *Command) License() string {
	return c.license
}

// Args returns the declared argument specs in declaration order.
func (c *Command) Args() []ArgSpec {
	out := make([]ArgSpec, len(c.args))
	copy(out, c.args)

	return out
}

// Arg returns the spec of the argument equal to name.
func (c *Command) Arg(name ArgName) (ArgSpec, bool) {
	if i := c.argIndex(name); i >= 0 {
		return c.args[i], true
	}

	return ArgSpec{}, false
}

// Subcommand returns the direct child called name.
func (c *Command) Subcommand(name string) (*Command, bool) {
	return c.children.Get(name)
}

// Subcommands returns the direct children in attachment order.
func (c *Command) Subcommands() []*Command {
	out := make([]*Command, 0, c.children.Len())
	for p := c.children.Oldest(); p != nil; p = p.Next() {
		out = append(out, p.Value)
	}

	return out
}

// Parents returns the names of the ancestors, root first. It is empty for the root.
func (c *Command) Parents() []string {
	out := make([]string, len(c.parents))
	copy(out, c.parents)

	return out
}

// FullName joins the ancestor names and the command's own name, e.g. "myapp remote add".
func (c *Command) FullName() string {
	if len(c.parents) == 0 {
		return c.name
	}

	return strings.Join(c.parents, " ") + " " + c.name
}

// Parse resolves tokens (program name already stripped) against this command with a
// default parser.
func (c *Command) Parse(tokens []string) (*ParseResult, error) {
	return NewParser(c).Parse(tokens)
}

func (c *Command) argIndex(name ArgName) int {
	for i := range c.args {
		if c.args[i].Name.Equal(name) {
			return i
		}
	}

	return -1
}
