// Package errs declares every error tinyargs returns. Messages are translatable, see
// package i18n; derived errors keep matching their declared variable with errors.Is.
package errs

import (
	"github.com/napalu/tinyargs/i18n"
	"github.com/napalu/tinyargs/types"
)

// Parse-time errors. A parse call fails with a *ParseError unwrapping to one of these.
var (
	ErrUnknownSubcommand      = i18n.NewError(types.ErrUnknownSubcommandKey)
	ErrUnknownArgument        = i18n.NewError(types.ErrUnknownArgumentKey)
	ErrMalformedLongArgument  = i18n.NewError(types.ErrMalformedLongArgumentKey)
	ErrMalformedShortArgument = i18n.NewError(types.ErrMalformedShortArgumentKey)
	ErrNotAnArgument          = i18n.NewError(types.ErrNotAnArgumentKey)
	ErrInvalidNumericValue    = i18n.NewError(types.ErrInvalidNumericValueKey)
	ErrMissingValue           = i18n.NewError(types.ErrMissingValueKey)
	ErrSplitCommandLine       = i18n.NewError(types.ErrSplitCommandLineKey)
)

// Construction-time errors, returned by CommandBuilder.Build.
var (
	ErrDuplicateArgument   = i18n.NewError(types.ErrDuplicateArgumentKey)
	ErrDuplicateSubcommand = i18n.NewError(types.ErrDuplicateSubcommandKey)
	ErrInvalidCommandName  = i18n.NewError(types.ErrInvalidCommandNameKey)
	ErrInvalidShortName    = i18n.NewError(types.ErrInvalidShortNameKey)
	ErrInvalidLongName     = i18n.NewError(types.ErrInvalidLongNameKey)
	ErrInvalidName         = i18n.NewError(types.ErrInvalidNameKey)
	ErrSubcommandAttached  = i18n.NewError(types.ErrSubcommandAttachedKey)
	ErrInvalidValueKind    = i18n.NewError(types.ErrInvalidValueKindKey)
)
