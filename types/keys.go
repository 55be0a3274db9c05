// Package types provides common type definitions for the tinyargs library.
// This file contains constants for all translation keys used throughout the library.
package types

const (
	PrefixKey = "tinyargs"

	ErrorPrefixKey = PrefixKey + ".error"
	ValuePrefixKey = PrefixKey + ".value"
	HelpPrefixKey  = PrefixKey + ".help"
)

// Parse-time errors
const (
	ErrUnknownSubcommandKey      = ErrorPrefixKey + ".unknown_subcommand"
	ErrUnknownArgumentKey        = ErrorPrefixKey + ".unknown_argument"
	ErrMalformedLongArgumentKey  = ErrorPrefixKey + ".malformed_long_argument"
	ErrMalformedShortArgumentKey = ErrorPrefixKey + ".malformed_short_argument"
	ErrNotAnArgumentKey          = ErrorPrefixKey + ".not_an_argument"
	ErrInvalidNumericValueKey    = ErrorPrefixKey + ".invalid_numeric_value"
	ErrMissingValueKey           = ErrorPrefixKey + ".missing_value"
	ErrSplitCommandLineKey       = ErrorPrefixKey + ".split_command_line"
)

// Construction-time errors
const (
	ErrDuplicateArgumentKey   = ErrorPrefixKey + ".duplicate_argument"
	ErrDuplicateSubcommandKey = ErrorPrefixKey + ".duplicate_subcommand"
	ErrInvalidCommandNameKey  = ErrorPrefixKey + ".invalid_command_name"
	ErrInvalidShortNameKey    = ErrorPrefixKey + ".invalid_short_name"
	ErrInvalidLongNameKey     = ErrorPrefixKey + ".invalid_long_name"
	ErrInvalidNameKey         = ErrorPrefixKey + ".invalid_name"
	ErrSubcommandAttachedKey  = ErrorPrefixKey + ".subcommand_attached"
	ErrInvalidValueKindKey    = ErrorPrefixKey + ".invalid_value_kind"
)

// Value type names
const (
	ValueStringKey  = ValuePrefixKey + ".string"
	ValueIntegerKey = ValuePrefixKey + ".integer"
	ValueFloatKey   = ValuePrefixKey + ".float"
	ValuePathKey    = ValuePrefixKey + ".path"
	ValueFlagKey    = ValuePrefixKey + ".flag"
)

// Help page
const (
	HelpUsageKey                 = HelpPrefixKey + ".usage"
	HelpArgsKey                  = HelpPrefixKey + ".args"
	HelpSubcommandsKey           = HelpPrefixKey + ".subcommands"
	HelpArgsPlaceholderKey       = HelpPrefixKey + ".args_placeholder"
	HelpSubcommandPlaceholderKey = HelpPrefixKey + ".subcommand_placeholder"
	HelpLicensedUnderKey         = HelpPrefixKey + ".licensed_under"
)
