package tinyargs

import (
	"strings"

	"github.com/iancoleman/strcase"
)

// NameConversionFunc rewrites a declared long name when the tree is built.
type NameConversionFunc func(string) string

// ConfigureCommandFunc is used when defining commands
type ConfigureCommandFunc func(command *CommandBuilder)

// ConfigureParserFunc is used when configuring a Parser
type ConfigureParserFunc func(parser *Parser)

// Built-in conversion strategies
var (
	// ToKebabCase converts a string to kebab case "dry-run"
	ToKebabCase = func(s string) string {
		return strcase.ToKebab(s)
	}

	// ToSnakeCase converts a string to snake case "dry_run"
	ToSnakeCase = func(s string) string {
		return strcase.ToSnake(s)
	}

	// ToLowerCamel converts a string to lower camel case "dryRun"
	ToLowerCamel = func(s string) string {
		return strcase.ToLowerCamel(s)
	}

	// ToLowerCase converts a string to lower case "dryrun"
	ToLowerCase = func(s string) string {
		return strings.ToLower(s)
	}
)
