package tinyargs

import (
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/napalu/tinyargs/errs"
	"github.com/napalu/tinyargs/i18n"
	"github.com/napalu/tinyargs/parse"
)

// Parser parses token lists against a built command tree. A Parser holds no per-call state:
// it may be shared by goroutines, each call producing its own ParseResult.
type Parser struct {
	root   *Command
	logger *slog.Logger
	bundle *i18n.Bundle
	color  ColorMode
}

// NewParser returns a parser for the tree rooted at root.
func NewParser(root *Command, configs ...ConfigureParserFunc) *Parser {
	p := &Parser{
		root:   root,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		bundle: i18n.Default(),
		color:  ColorNever,
	}
	for _, config := range configs {
		config(p)
	}

	return p
}

// Root returns the command tree the parser works on.
func (p *Parser) Root() *Command {
	return p.root
}

// Parse resolves the subcommand path and matches the remaining tokens. tokens must not
// contain the program name. On failure the error is a *errs.ParseError and no partial
// result is returned.
func (p *Parser) Parse(tokens []string) (*ParseResult, error) {
	stream := parse.NewTokens(tokens)

	cmd, err := resolve(p.root, stream)
	if err != nil {
		return nil, p.fail(err)
	}
	p.logger.Debug("command resolved", "command", cmd.FullName(), "remaining", stream.Len())

	args, err := match(cmd, stream, p.logger)
	if err != nil {
		return nil, p.fail(err)
	}

	return &ParseResult{
		Command:  cmd,
		Args:     args,
		renderer: p.renderer(),
	}, nil
}

// ParseArgv parses a full argument vector whose first element is the program name.
func (p *Parser) ParseArgv(argv []string) (*ParseResult, error) {
	if len(argv) == 0 {
		return p.Parse(nil)
	}

	return p.Parse(argv[1:])
}

// ParseString splits line with shell quoting rules and parses the tokens. line must not
// start with the program name.
func (p *Parser) ParseString(line string) (*ParseResult, error) {
	tokens, err := parse.Split(line)
	if err != nil {
		return nil, errs.ErrSplitCommandLine.WithProvider(p.Messages()).Wrap(err)
	}

	return p.Parse(tokens)
}

// ParseOS parses the arguments of the running process.
func (p *Parser) ParseOS() (*ParseResult, error) {
	return p.ParseArgv(os.Args)
}

// Messages returns the message provider used for errors and help output.
func (p *Parser) Messages() i18n.MessageProvider {
	return i18n.NewBundleMessageProvider(p.bundle)
}

func (p *Parser) renderer() *Renderer {
	return NewRenderer(
		WithRendererBundle(p.bundle),
		WithColor(p.color),
	)
}

func (p *Parser) fail(err error) error {
	var pe *errs.ParseError
	if errors.As(err, &pe) {
		pe = pe.Localize(p.Messages())
		p.logger.Debug("parse failed", "kind", pe.Kind.String(), "token", pe.Token, "error", pe.Error())
		return pe
	}

	return err
}
