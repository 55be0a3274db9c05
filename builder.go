package tinyargs

import (
	"slices"
	"strings"
	"unicode"

	"github.com/napalu/tinyargs/errs"
	"github.com/napalu/tinyargs/types"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// CommandBuilder is the mutable draft of a Command. Calls chain; the first misuse is
// remembered and every later call becomes a no-op, so that Build reports the first error.
//
//	root, err := tinyargs.NewCommand("myapp", "This is my cool app!",
//		tinyargs.WithAuthor("Me!")).
//		Arg(tinyargs.Both('h', "help"), tinyargs.Flag(), "Shows help.").
//		Arg(tinyargs.Long("path"), tinyargs.FilePath(), "Path to something.").
//		Subcommand(tinyargs.NewCommand("subcmd", "This is a subcommand.").
//			Arg(tinyargs.Both('p', "path"), tinyargs.FilePath(), "Insert a path.")).
//		Build()
type CommandBuilder struct {
	name          string
	description   string
	version       string
	author        string
	license       string
	args          []ArgSpec
	subcommands   []*CommandBuilder
	nameConverter NameConversionFunc
	attached      bool
	err           error
}

// NewCommand starts a draft for a command called name.
func NewCommand(name, description string, configs ...ConfigureCommandFunc) *CommandBuilder {
	b := &CommandBuilder{
		name:        name,
		description: description,
	}
	if err := validateCommandName(name); err != nil {
		b.err = err
	}

	return b.Set(configs...)
}

// Set applies configuration functions to the draft.
func (b *CommandBuilder) Set(configs ...ConfigureCommandFunc) *CommandBuilder {
	for _, config := range configs {
		config(b)
	}

	return b
}

// Arg declares an argument. Declaring a name equal to an existing one (see ArgName.Equal)
// is an error.
func (b *CommandBuilder) Arg(name ArgName, kind Kind, description string) *CommandBuilder {
	if b.err != nil {
		return b
	}
	if err := name.validate(); err != nil {
		b.err = err
		return b
	}
	if kind.Type() == types.Empty {
		b.err = errs.ErrInvalidValueKind.WithArgs(name.String())
		return b
	}
	if b.hasArg(name) {
		b.err = errs.ErrDuplicateArgument.WithArgs(name.String(), b.name)
		return b
	}

	b.args = append(b.args, ArgSpec{Name: name, Kind: kind, Description: description})

	return b
}

// Subcommand attaches sub as a child. A draft can be attached once, and sibling names must
// be unique.
func (b *CommandBuilder) Subcommand(sub *CommandBuilder) *CommandBuilder {
	if b.err != nil {
		return b
	}
	if sub == b || sub.attached {
		b.err = errs.ErrSubcommandAttached.WithArgs(sub.name)
		return b
	}
	for _, s := range b.subcommands {
		if s.name == sub.name {
			b.err = errs.ErrDuplicateSubcommand.WithArgs(sub.name, b.name)
			return b
		}
	}

	sub.attached = true
	b.subcommands = append(b.subcommands, sub)

	return b
}

func (b *CommandBuilder) Author(author string) *CommandBuilder {
	return b.Set(WithAuthor(author))
}

func (b *CommandBuilder) Version(version string) *CommandBuilder {
	return b.Set(WithVersion(version))
}

func (b *CommandBuilder) License(license string) *CommandBuilder {
	return b.Set(WithLicense(license))
}

// Err returns the first construction error recorded so far.
func (b *CommandBuilder) Err() error {
	return b.err
}

// Build finalizes the draft into a read-only tree. Children receive a snapshot of their
// ancestors' names, and long names go through the configured NameConversionFunc.
func (b *CommandBuilder) Build() (*Command, error) {
	return b.finalize(nil, nil, map[*CommandBuilder]bool{})
}

// MustBuild is Build for trees declared at program start; it panics on construction errors.
func (b *CommandBuilder) MustBuild() *Command {
	cmd, err := b.Build()
	if err != nil {
		panic(err)
	}

	return cmd
}

func (b *CommandBuilder) finalize(parents []string, inherited NameConversionFunc, seen map[*CommandBuilder]bool) (*Command, error) {
	if seen[b] {
		return nil, errs.ErrSubcommandAttached.WithArgs(b.name)
	}
	seen[b] = true

	if b.err != nil {
		return nil, b.err
	}

	converter := inherited
	if b.nameConverter != nil {
		converter = b.nameConverter
	}

	cmd := &Command{
		name:        b.name,
		description: b.description,
		version:     b.version,
		author:      b.author,
		license:     b.license,
		args:        make([]ArgSpec, 0, len(b.args)),
		children:    orderedmap.New[string, *Command](),
		parents:     slices.Clone(parents),
	}

	for _, spec := range b.args {
		if converter != nil && spec.Name.long != "" {
			spec.Name.long = converter(spec.Name.long)
			if err := spec.Name.validate(); err != nil {
				return nil, err
			}
		}
		if cmd.argIndex(spec.Name) >= 0 {
			return nil, errs.ErrDuplicateArgument.WithArgs(spec.Name.String(), b.name)
		}
		cmd.args = append(cmd.args, spec)
	}

	childParents := append(slices.Clone(parents), b.name)
	for _, sub := range b.subcommands {
		child, err := sub.finalize(childParents, converter, seen)
		if err != nil {
			return nil, err
		}
		cmd.children.Set(child.name, child)
	}

	return cmd, nil
}

func (b *CommandBuilder) hasArg(name ArgName) bool {
	for i := range b.args {
		if b.args[i].Name.Equal(name) {
			return true
		}
	}

	return false
}

// validateCommandName rejects names the resolver could never match: empty names, names
// starting with '-' and names containing whitespace.
func validateCommandName(name string) error {
	if name == "" || strings.HasPrefix(name, "-") || strings.IndexFunc(name, unicode.IsSpace) >= 0 {
		return errs.ErrInvalidCommandName.WithArgs(name)
	}

	return nil
}
