package tinyargs

import (
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/napalu/tinyargs/errs"
	"github.com/napalu/tinyargs/internal/util"
	"github.com/napalu/tinyargs/parse"
)

type matchState int

const (
	expectingArgument matchState = iota
	expectingValue
)

// match consumes tokens left to right against the arguments of cmd. Every call starts from
// a fresh ArgList, so the command itself is never written to.
func match(cmd *Command, tokens *parse.Tokens, logger *slog.Logger) (*ArgList, error) {
	args := newArgList(cmd.args)

	state := expectingArgument
	var pending *ArgState
	var pendingName string

	for {
		switch state {
		case expectingArgument:
			tok, ok := tokens.Next()
			if !ok {
				return args, nil
			}

			name, err := argumentName(tok)
			if err != nil {
				return nil, err
			}
			arg, found := args.Get(name)
			if !found {
				return nil, errs.NewUnknownArgument(tok, name.String())
			}

			if !arg.Kind().TakesValue() {
				arg.occur(util.Converted{})
				logger.Debug("flag matched", "arg", arg.Name().String(), "count", arg.count)
				continue
			}
			pending, pendingName = arg, name.String()
			state = expectingValue

		case expectingValue:
			tok, ok := tokens.Next()
			if !ok {
				return nil, errs.NewMissingValue(pendingName)
			}

			typ := pending.Kind().Type()
			converted, ok := util.ConvertString(tok, typ)
			if !ok {
				return nil, errs.NewInvalidNumericValue(pendingName, tok, typ)
			}
			pending.occur(converted)
			logger.Debug("argument matched", "arg", pending.Name().String(), "value", tok, "count", pending.count)

			pending, pendingName = nil, ""
			state = expectingArgument
		}
	}
}

// argumentName reads the name a token refers to. "--name" is a long name; "-x..." is the
// short name x, and whatever follows x is ignored. Anything else is a bare value.
func argumentName(tok string) (ArgName, error) {
	switch {
	case strings.HasPrefix(tok, "--"):
		if len(tok) == 2 {
			return ArgName{}, errs.NewMalformedLongArgument(tok)
		}
		return Long(tok[2:]), nil
	case strings.HasPrefix(tok, "-"):
		if len(tok) == 1 {
			return ArgName{}, errs.NewMalformedShortArgument(tok)
		}
		r, _ := utf8.DecodeRuneInString(tok[1:])
		return Short(r), nil
	}

	return ArgName{}, errs.NewNotAnArgument(tok)
}
