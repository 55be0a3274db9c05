package tinyargs

import (
	"log/slog"

	"github.com/napalu/tinyargs/i18n"
)

// WithLogger routes the parser's debug tracing to logger. Tracing is discarded by default.
func WithLogger(logger *slog.Logger) ConfigureParserFunc {
	return func(parser *Parser) {
		if logger != nil {
			parser.logger = logger
		}
	}
}

// WithBundle replaces the embedded message bundle, e.g. to reword error messages and help
// headings. Keys missing from bundle render as the key itself.
func WithBundle(bundle *i18n.Bundle) ConfigureParserFunc {
	return func(parser *Parser) {
		if bundle != nil {
			parser.bundle = bundle
		}
	}
}

// WithHelpColor sets how ParseResult.Help colorizes its output.
func WithHelpColor(mode ColorMode) ConfigureParserFunc {
	return func(parser *Parser) {
		parser.color = mode
	}
}
