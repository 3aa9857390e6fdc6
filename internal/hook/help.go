// SPDX-License-Identifier: MPL-2.0

package hook

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"litr-cli/pkg/cli"
	"litr-cli/pkg/litrfile"
)

var (
	helpTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7C3AED"))
	helpSectionStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#6B7280"))
	helpCommandStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#3B82F6"))
	helpMutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#9CA3AF"))
)

// Help renders usage information from the configuration query. When the
// invocation names a command before the help flag, only that command's
// entry is shown.
type Help struct {
	query   *litrfile.Query
	version string
	out     io.Writer
}

// NewHelp creates the help hook.
func NewHelp(file *litrfile.Litrfile, version string, out io.Writer) *Help {
	return &Help{
		query:   litrfile.NewQuery(file),
		version: version,
		out:     out,
	}
}

// Print implements the hook callback. It inspects the bytecode to find
// the command, if any, preceding the help flag in the scope path.
func (h *Help) Print(inst *cli.Instruction) {
	name := CommandNameBefore(inst, []string{"h", "help"})

	var b strings.Builder

	b.WriteString(helpTitleStyle.Render("Litr") + " - Language Independent Task Runner")
	b.WriteString(helpMutedStyle.Render(" (version "+h.version+")") + "\n\n")

	if name == "" {
		h.printAll(&b)
	} else {
		h.printCommand(&b, name)
	}

	h.printOptions(&b, name)

	fmt.Fprint(h.out, b.String())
}

func (h *Help) printAll(b *strings.Builder) {
	b.WriteString("Usage: litr command [options]\n\n")
	b.WriteString(helpSectionStyle.Render("Commands:") + "\n")

	for _, command := range h.query.Commands() {
		h.printCommandEntry(b, command, command.Name, 1)
	}
}

func (h *Help) printCommand(b *strings.Builder, name string) {
	command := h.query.Command(name)
	if command == nil {
		b.WriteString(fmt.Sprintf("Command %q could not be found.\n", name))
		return
	}

	b.WriteString(fmt.Sprintf("Usage: litr %s [options]\n\n", strings.ReplaceAll(name, ".", " ")))
	b.WriteString(helpSectionStyle.Render("Commands:") + "\n")
	h.printCommandEntry(b, command, name, 1)
}

// printCommandEntry renders one command and its children, dotted names
// indented under the parent.
func (h *Help) printCommandEntry(b *strings.Builder, command *litrfile.Command, path string, depth int) {
	indent := strings.Repeat("  ", depth)

	line := indent + helpCommandStyle.Render(command.Name)
	if command.Description != "" {
		line += "  " + strings.ReplaceAll(command.Description, "\n", " ")
	}
	b.WriteString(line + "\n")

	if command.Example != "" {
		for _, example := range strings.Split(command.Example, "\n") {
			b.WriteString(indent + "  " + helpMutedStyle.Render(example) + "\n")
		}
	}

	for _, child := range command.ChildCommands {
		h.printCommandEntry(b, child, path+"."+child.Name, depth+1)
	}
}

// printOptions renders the built-in flags plus the parameters the
// scoped command (or, without a scope, any command) can use.
func (h *Help) printOptions(b *strings.Builder, name string) {
	b.WriteString("\n" + helpSectionStyle.Render("Options:") + "\n")
	b.WriteString("  -h --help     Show this screen.\n")
	b.WriteString("  -v --version  Show current Litr version.\n")

	parameters := h.query.Parameters()
	if name != "" {
		parameters = h.query.CommandParameters(name)
	}

	for _, param := range parameters {
		b.WriteString("  " + parameterUsage(param) + "\n")
		if param.Description != "" {
			b.WriteString("      " + strings.ReplaceAll(param.Description, "\n", " ") + "\n")
		}
	}
}

func parameterUsage(param *litrfile.Parameter) string {
	usage := ""
	if param.Shortcut != "" {
		usage += "-" + param.Shortcut + " "
	}
	usage += "--" + param.Name

	if param.Type == litrfile.ParamArray {
		options := make([]string, len(param.TypeArguments))
		for i, option := range param.TypeArguments {
			if option == param.Default {
				option += "*"
			}
			options[i] = option
		}
		usage += "=<" + strings.Join(options, "|") + ">"
	}

	return usage
}
