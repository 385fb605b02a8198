package tui

import (
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/pbaille/meetbook/internal/command"
)

func helpMarkdown() string {
	var b strings.Builder
	b.WriteString("# Meetbook\n\n")
	b.WriteString("Type a command and press Enter. The words persons and meetings switch the list that " +
		"add, edit, delete, find, list and copy act on. Esc closes this page.\n\n")

	section := func(title string, usages ...string) {
		b.WriteString("## " + title + "\n\n")
		for _, u := range usages {
			head, rest, _ := strings.Cut(u, "\n")
			b.WriteString("- " + head + "\n")
			if rest != "" {
				b.WriteString("\n  ```\n")
				for _, line := range strings.Split(rest, "\n") {
					b.WriteString("  " + line + "\n")
				}
				b.WriteString("  ```\n")
			}
			b.WriteString("\n")
		}
	}

	section("Persons",
		command.AddPersonUsage, command.EditPersonUsage, command.DeletePersonUsage,
		command.FindPersonUsage, command.CopyPersonUsage)
	section("Meetings",
		command.AddMeetingUsage, command.EditMeetingUsage, command.DeleteMeetingUsage,
		command.FindMeetingUsage, command.CopyMeetingUsage, command.PeekMeetingUsage)
	section("General",
		"list: Shows every entry of the active list.",
		"clear: Deletes all persons and meetings.",
		command.HelpUsage,
		"exit: Saves and quits.")
	return b.String()
}

// renderHelp renders the help page for a terminal of the given width, falling
// back to the raw markdown if glamour fails.
func renderHelp(width int) string {
	if width <= 0 {
		width = 80
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath("notty"),
		glamour.WithWordWrap(width),
	)
	md := helpMarkdown()
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return out
}
