package tinyargs

// ParseResult is the outcome of a successful parse call.
type ParseResult struct {
	// Command is the command the leading tokens resolved to.
	Command *Command
	// Args holds one state per argument declared by Command.
	Args *ArgList

	renderer *Renderer
}

// Name returns the name of the resolved command.
func (r *ParseResult) Name() string {
	return r.Command.Name()
}

// Parents returns the names of the resolved command's ancestors, root first.
func (r *ParseResult) Parents() []string {
	return r.Command.Parents()
}

// Help renders the help page of the resolved command, typically printed when a help flag
// occurred:
//
//	if res.Args.Count(tinyargs.Short('h')) > 0 {
//		fmt.Println(res.Help())
//	}
func (r *ParseResult) Help() string {
	if r.renderer == nil {
		return NewRenderer().Help(r.Command)
	}

	return r.renderer.Help(r.Command)
}
