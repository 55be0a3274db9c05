package tinyargs

// WithAuthor sets the author shown on the help page.
func WithAuthor(author string) ConfigureCommandFunc {
	return func(command *CommandBuilder) {
		command.author = author
	}
}

// WithVersion sets the version shown next to the command name on the help page.
func WithVersion(version string) ConfigureCommandFunc {
	return func(command *CommandBuilder) {
		command.version = version
	}
}

// WithLicense sets the license line closing the help page.
func WithLicense(license string) ConfigureCommandFunc {
	return func(command *CommandBuilder) {
		command.license = license
	}
}

// WithCommandDescription replaces the description given to NewCommand.
func WithCommandDescription(description string) ConfigureCommandFunc {
	return func(command *CommandBuilder) {
		command.description = description
	}
}

// WithLongNameConverter converts the long names of this command and, unless they set their
// own, of all its descendants when the tree is built.
func WithLongNameConverter(converter NameConversionFunc) ConfigureCommandFunc {
	return func(command *CommandBuilder) {
		command.nameConverter = converter
	}
}

// WithSubcommands attaches several drafts at once, see CommandBuilder.Subcommand.
func WithSubcommands(subcommands ...*CommandBuilder) ConfigureCommandFunc {
	return func(command *CommandBuilder) {
		for _, sub := range subcommands {
			command.Subcommand(sub)
		}
	}
}
