package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/napalu/tinyargs"
	"github.com/napalu/tinyargs/errs"
)

var (
	help    = tinyargs.Both('h', "help")
	verbose = tinyargs.Both('v', "verbose")
	version = tinyargs.Short('V')
)

func commandLine() *tinyargs.Command {
	return tinyargs.NewCommand("tinyargs-demo", "Shows how a command tree is parsed.",
		tinyargs.WithAuthor("Florent Heyworth"),
		tinyargs.WithVersion("0.1.0"),
		tinyargs.WithLicense("MIT")).
		Arg(help, tinyargs.Flag(), "Shows this help.").
		Arg(verbose, tinyargs.Flag(), "Logs every resolved argument.").
		Arg(version, tinyargs.Flag(), "Shows the version.").
		Subcommand(tinyargs.NewCommand("copy", "Copies a file a number of times.").
			Arg(help, tinyargs.Flag(), "Shows this help.").
			Arg(verbose, tinyargs.Flag(), "Logs every resolved argument.").
			Arg(tinyargs.Both('s', "source"), tinyargs.FilePath(), "File to copy.").
			Arg(tinyargs.Both('n', "times"), tinyargs.IntegerOr(1), "Number of copies.").
			Arg(tinyargs.Long("ratio"), tinyargs.FloatOr(1.0), "Compression ratio.").
			Arg(tinyargs.Long("label"), tinyargs.String(), "Label written on each copy.")).
		MustBuild()
}

func main() {
	parser := tinyargs.NewParser(commandLine(), tinyargs.WithHelpColor(tinyargs.ColorAuto))

	res, err := parser.ParseOS()
	if err != nil {
		var pe *errs.ParseError
		if errors.As(err, &pe) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", pe)
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if res.Args.Count(help) > 0 {
		fmt.Println(res.Help())
		return
	}
	if res.Args.Count(version) > 0 {
		fmt.Println(res.Command.Version())
		return
	}

	if res.Args.Count(verbose) > 0 {
		logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
		for _, arg := range res.Args.All() {
			logger.Info("argument",
				"command", res.Command.FullName(),
				"name", arg.Name().String(),
				"value", arg.Value().String(),
				"count", arg.Count())
		}
	}

	if res.Name() == "copy" {
		src, ok := res.Args.Get(tinyargs.Long("source"))
		if !ok || !src.Present() {
			fmt.Fprintln(os.Stderr, "Error: --source is required")
			os.Exit(2)
		}
		times, _ := res.Args.Get(tinyargs.Long("times"))
		n, _ := times.Value().AsInt()
		path, _ := src.Value().AsPath()
		fmt.Printf("would copy %s %d time(s)\n", path, n)
	}
}
