package command

import (
	"errors"
	"fmt"

	"github.com/pbaille/meetbook/internal/model"
)

// Messages shared by several commands.
const (
	MessageInvalidCommandFormat   = "Invalid command format! \n%s"
	MessageUnknownCommand         = "Unknown command"
	MessageInvalidPersonIndex     = "The person index provided is invalid"
	MessageInvalidMeetingIndex    = "The meeting index provided is invalid"
	MessagePersonsListedOverview  = "%d persons listed!"
	MessageMeetingsListedOverview = "%d meetings listed!"
	MessageNotEdited              = "At least one field to edit must be provided."
)

// Mode selects which list the user is working on. Command words such as
// add or find act on the list of the active mode.
type Mode int

const (
	ModePersons Mode = iota + 1
	ModeMeetings
)

func (m Mode) String() string {
	switch m {
	case ModePersons:
		return "persons"
	case ModeMeetings:
		return "meetings"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// ParseMode maps a mode name back to its Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "persons", "person", "":
		return ModePersons, nil
	case "meetings", "meeting":
		return ModeMeetings, nil
	}
	return 0, fmt.Errorf("unknown mode %q", s)
}

// Result is what a command reports back to the user interface.
type Result struct {
	Feedback string
	ShowHelp bool
	Exit     bool
	// SwitchTo is the mode to activate, or zero to keep the current one.
	SwitchTo Mode
}

// Command is a parsed user instruction ready to run against the model.
type Command interface {
	Execute(m *model.Model) (Result, error)
}

// Staged is a command with a slow step that needs no access to the model.
// Stage runs while the model is held and returns that step, which the caller
// runs after releasing it. Staged commands do not modify the model.
type Staged interface {
	Command
	Stage(m *model.Model) (func() (Result, error), error)
}

// Error is a command failure whose message is shown to the user.
type Error struct {
	msg string
}

func (e *Error) Error() string { return e.msg }

func errorf(format string, args ...any) error {
	return &Error{msg: fmt.Sprintf(format, args...)}
}

// IsUserError reports whether err carries a message meant for the user.
func IsUserError(err error) bool {
	var ce *Error
	return errors.As(err, &ce)
}

// Index is a 1-based position in a displayed list.
type Index int

// Zero returns the 0-based position.
func (i Index) Zero() int { return int(i) - 1 }

func pick[T any](list []T, i Index, invalid string) (T, error) {
	var zero T
	if i.Zero() < 0 || i.Zero() >= len(list) {
		return zero, errorf("%s", invalid)
	}
	return list[i.Zero()], nil
}
