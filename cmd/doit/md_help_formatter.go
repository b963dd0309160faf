package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/kong"
)

// MarkdownHelpPrinter writes the whole command tree as a markdown document:
// a summary table of commands followed by one section per command.
func MarkdownHelpPrinter(options kong.HelpOptions, ctx *kong.Context) error {
	w := ctx.Stdout
	if w == nil {
		w = io.Discard
	}
	root := ctx.Model.Node
	name := ctx.Model.Name

	fmt.Fprintf(w, "# %s\n\n", name)
	if root.Help != "" && !options.NoAppSummary {
		fmt.Fprintf(w, "%s\n\n", root.Help)
	}

	commands := visibleCommands(root)
	if len(commands) > 0 {
		fmt.Fprintf(w, "| Command | Description |\n| --- | --- |\n")
		for _, cmd := range commands {
			fmt.Fprintf(w, "| `%s %s` | %s |\n", name, cmd.Name, escapeCell(cmd.Help))
		}
		fmt.Fprintln(w)
	}

	if flags := visibleFlags(root.Flags); len(flags) > 0 {
		fmt.Fprintf(w, "## Global Flags\n\n")
		for _, flag := range flags {
			fmt.Fprintf(w, "- %s\n", flagLine(flag))
		}
		fmt.Fprintln(w)
	}

	for _, cmd := range commands {
		writeCommand(w, name, cmd, 2)
	}
	return nil
}

func writeCommand(w io.Writer, prefix string, node *kong.Node, level int) {
	path := prefix + " " + node.Name
	fmt.Fprintf(w, "%s `%s`\n\n", strings.Repeat("#", level), path)
	if node.Help != "" {
		fmt.Fprintf(w, "%s\n\n", node.Help)
	}
	if len(node.Aliases) > 0 {
		fmt.Fprintf(w, "Aliases: `%s`\n\n", strings.Join(node.Aliases, "`, `"))
	}
	fmt.Fprintf(w, "```\n%s\n```\n\n", usageLine(path, node))

	if len(node.Positional) > 0 {
		fmt.Fprintf(w, "**Arguments:**\n\n")
		for _, arg := range node.Positional {
			fmt.Fprintf(w, "- `%s`", strings.ToUpper(arg.Name))
			if arg.Help != "" {
				fmt.Fprintf(w, " - %s", arg.Help)
			}
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w)
	}

	if flags := visibleFlags(node.Flags); len(flags) > 0 {
		fmt.Fprintf(w, "**Flags:**\n\n")
		for _, flag := range flags {
			fmt.Fprintf(w, "- %s\n", flagLine(flag))
		}
		fmt.Fprintln(w)
	}

	for _, child := range visibleCommands(node) {
		writeCommand(w, path, child, level+1)
	}
}

func visibleCommands(node *kong.Node) []*kong.Node {
	var ret []*kong.Node
	for _, child := range node.Children {
		if !child.Hidden && child.Type == kong.CommandNode {
			ret = append(ret, child)
		}
	}
	return ret
}

func visibleFlags(flags []*kong.Flag) []*kong.Flag {
	var ret []*kong.Flag
	for _, flag := range flags {
		if !flag.Hidden && flag.Name != "help" {
			ret = append(ret, flag)
		}
	}
	return ret
}

// flagLine renders e.g. "`-y, --yes` - do not ask for confirmation".
func flagLine(flag *kong.Flag) string {
	var b strings.Builder
	b.WriteString("`")
	if flag.Short != 0 {
		fmt.Fprintf(&b, "-%c, ", flag.Short)
	}
	fmt.Fprintf(&b, "--%s`", flag.Name)
	if !flag.IsBool() {
		fmt.Fprintf(&b, " _%s_", flag.FormatPlaceHolder())
	}
	if flag.Help != "" {
		fmt.Fprintf(&b, " - %s", flag.Help)
	}
	if flag.Enum != "" {
		fmt.Fprintf(&b, " (one of: `%s`)", strings.Join(flag.EnumSlice(), "`, `"))
	}
	if flag.Default != "" {
		fmt.Fprintf(&b, " (default: `%s`)", flag.Default)
	}
	return b.String()
}

func usageLine(path string, node *kong.Node) string {
	usage := path
	if len(visibleFlags(node.Flags)) > 0 {
		usage += " [flags]"
	}
	for _, arg := range node.Positional {
		if arg.Required {
			usage += fmt.Sprintf(" <%s>", strings.ToUpper(arg.Name))
		} else {
			usage += fmt.Sprintf(" [%s]", strings.ToUpper(arg.Name))
		}
		if arg.Passthrough {
			usage += "..."
		}
	}
	return usage
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
