// Package parser turns command lines into commands.
package parser

import (
	"regexp"
	"slices"

	"github.com/pbaille/meetbook/internal/command"
)

var commandFormat = regexp.MustCompile(`^\s*(\S+)(.*)$`)

type parseFunc func(args string) (command.Command, error)

var (
	personParsers = map[string]parseFunc{
		"add":    parseAddPerson,
		"edit":   parseEditPerson,
		"delete": parseDeletePerson,
		"find":   parseFindPersons,
		"copy":   parseCopyPerson,
		"list":   noArgs(command.ListPersons{}),
	}
	meetingParsers = map[string]parseFunc{
		"add":    parseAddMeeting,
		"edit":   parseEditMeeting,
		"delete": parseDeleteMeeting,
		"find":   parseFindMeetings,
		"copy":   parseCopyMeeting,
		"peek":   parsePeekMeeting,
		"list":   noArgs(command.ListMeetings{}),
	}
	commonParsers = map[string]parseFunc{
		"clear":    noArgs(command.Clear{}),
		"help":     noArgs(command.Help{}),
		"exit":     noArgs(command.Exit{}),
		"persons":  noArgs(command.Switch{To: command.ModePersons}),
		"meetings": noArgs(command.Switch{To: command.ModeMeetings}),
	}
)

// noArgs ignores trailing arguments, as "list all" still means list.
func noArgs(c command.Command) parseFunc {
	return func(string) (command.Command, error) { return c, nil }
}

// Parse parses input as a command of the given mode.
func Parse(mode command.Mode, input string) (command.Command, error) {
	match := commandFormat.FindStringSubmatch(input)
	if match == nil {
		return nil, invalidFormat(command.HelpUsage, nil)
	}
	word, args := match[1], match[2]

	if f, ok := commonParsers[word]; ok {
		return f(args)
	}
	table := personParsers
	if mode == command.ModeMeetings {
		table = meetingParsers
	}
	if f, ok := table[word]; ok {
		return f(args)
	}
	return nil, newError(command.MessageUnknownCommand)
}

// CommandWords lists the words understood in mode, for help and completion.
func CommandWords(mode command.Mode) []string {
	table := personParsers
	if mode == command.ModeMeetings {
		table = meetingParsers
	}
	words := make([]string, 0, len(table)+len(commonParsers))
	for w := range table {
		words = append(words, w)
	}
	for w := range commonParsers {
		words = append(words, w)
	}
	slices.Sort(words)
	return words
}
