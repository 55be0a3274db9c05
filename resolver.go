package tinyargs

import (
	"strings"

	"github.com/napalu/tinyargs/errs"
	"github.com/napalu/tinyargs/parse"
)

// Resolve walks the tree from root, consuming leading tokens that name a child of the
// current command. It stops at the first token starting with '-' or when tokens run out,
// and returns the deepest command reached with the tokens left. A leading token that is
// neither an argument nor a child name fails with errs.UnknownSubcommand.
func Resolve(root *Command, tokens []string) (*Command, []string, error) {
	stream := parse.NewTokens(tokens)
	cmd, err := resolve(root, stream)
	if err != nil {
		return nil, nil, err
	}

	return cmd, stream.Remaining(), nil
}

func resolve(root *Command, tokens *parse.Tokens) (*Command, error) {
	cmd := root
	for {
		tok, ok := tokens.Peek()
		if !ok || strings.HasPrefix(tok, "-") {
			return cmd, nil
		}

		child, found := cmd.children.Get(tok)
		if !found {
			return nil, errs.NewUnknownSubcommand(tok)
		}
		tokens.Next()
		cmd = child
	}
}
