package tinyargs

import (
	"strings"
	"testing"

	"github.com/napalu/tinyargs/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_Help(t *testing.T) {
	want := "test 0.3.0\n" +
		"Tiny Author\n" +
		"A really cool test\n\n" +
		"USAGE:\n" +
		"\ttest [ARGS]\n\n" +
		"ARGS:\n" +
		"\t-V\t\tProgram's version\n" +
		"\t--path\t\tInsert a path\n" +
		"\t--num\t\tInsert a number\n" +
		"\t--float\t\tInsert a float\n" +
		"\t--idk\t\tJust insert something\n" +
		"\t--idk2\t\tJust insert something again\n" +
		"\t-h, --help\tShow this help\n" +
		"\n" +
		"Licensed under GPL-3.0-or-later"

	assert.Equal(t, want, NewRenderer().Help(testCommand().MustBuild()))
}

func TestRenderer_HelpWithSubcommands(t *testing.T) {
	want := "testception\n" +
		"A really good test inception\n\n" +
		"USAGE:\n" +
		"\ttestception [ARGS]\n" +
		"\ttestception [SUBCOMMAND] [ARGS]\n\n" +
		"ARGS:\n" +
		"\t--idk\t\tJust insert something\n" +
		"\n" +
		"SUBCOMMANDS:\n" +
		"\ttest\t\tA really cool test\n" +
		"\n"

	assert.Equal(t, want, NewRenderer().Help(testTree()))
}

func TestRenderer_HelpOfNestedCommandUsesFullName(t *testing.T) {
	tree := NewCommand("app", "").
		Subcommand(NewCommand("remote", "").
			Subcommand(NewCommand("add", "Add a remote").
				Arg(Both('n', "name"), String(), "Remote name"))).
		MustBuild()

	remote, _ := tree.Subcommand("remote")
	add, ok := remote.Subcommand("add")
	require.True(t, ok)

	help := NewRenderer().Help(add)
	assert.True(t, strings.HasPrefix(help, "app remote add\n"))
	assert.Contains(t, help, "\tapp remote add [ARGS]")
	assert.NotContains(t, help, "[SUBCOMMAND]")
}

func TestRenderer_WithBundle(t *testing.T) {
	bundle := i18n.NewEmptyBundle()
	require.NoError(t, bundle.Add(map[string]string{
		"tinyargs.help.usage":                  "Usage:",
		"tinyargs.help.args":                   "Options:",
		"tinyargs.help.subcommands":            "Commands:",
		"tinyargs.help.args_placeholder":       "[OPTIONS]",
		"tinyargs.help.subcommand_placeholder": "<COMMAND>",
		"tinyargs.help.licensed_under":         "License: %s",
	}))
	r := NewRenderer(WithRendererBundle(bundle))

	help := r.Help(testTree())
	assert.Contains(t, help, "Usage:")
	assert.Contains(t, help, "Options:")
	assert.Contains(t, help, "Commands:")
	assert.Contains(t, help, "testception <COMMAND> [OPTIONS]")

	help = r.Help(testCommand().MustBuild())
	assert.True(t, strings.HasSuffix(help, "License: GPL-3.0-or-later"))
}

func TestRenderer_Color(t *testing.T) {
	cmd := testCommand().MustBuild()

	plain := NewRenderer(WithColor(ColorNever)).Help(cmd)
	assert.NotContains(t, plain, "\x1b[")

	colored := NewRenderer(WithColor(ColorAlways)).Help(cmd)
	assert.Contains(t, colored, "\x1b[")
	assert.Contains(t, colored, "Insert a path")

	auto := NewRenderer(WithColor(ColorAuto))
	auto.isTerminal = func() bool { return false }
	assert.NotContains(t, auto.Help(cmd), "\x1b[", "no styles when not writing to a terminal")

	auto.isTerminal = func() bool { return true }
	t.Setenv("NO_COLOR", "")
	assert.Contains(t, auto.Help(cmd), "\x1b[")

	t.Setenv("NO_COLOR", "1")
	assert.NotContains(t, auto.Help(cmd), "\x1b[")
}

func TestRenderer_ArgUsage(t *testing.T) {
	r := NewRenderer()

	assert.Equal(t, "\t-V\t\tversion\n", r.ArgUsage(ArgSpec{Name: Short('V'), Kind: Flag(), Description: "version"}))
	assert.Equal(t, "\t-o, --output\tfile\n", r.ArgUsage(ArgSpec{Name: Both('o', "output"), Kind: FilePath(), Description: "file"}))
	assert.Equal(t, "\t--a-very-long-option\n\t\t\tlong\n",
		r.ArgUsage(ArgSpec{Name: Long("a-very-long-option"), Kind: String(), Description: "long"}))
}

func TestTabs(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "\t\t"},
		{7, "\t\t"},
		{8, "\t"},
		{15, "\t"},
		{16, "\n\t\t\t"},
		{40, "\n\t\t\t"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tabs(tt.n), "n=%d", tt.n)
	}
}

func TestParseResult_Help(t *testing.T) {
	p := NewParser(testTree(), WithHelpColor(ColorAlways))

	res, err := p.Parse([]string{"test", "-h"})
	require.NoError(t, err)
	assert.Equal(t, NewRenderer(WithColor(ColorAlways)).Help(res.Command), res.Help())
	assert.Contains(t, res.Help(), "testception test")

	bare := &ParseResult{Command: res.Command, Args: res.Args}
	assert.Equal(t, NewRenderer().Help(res.Command), bare.Help())
}
