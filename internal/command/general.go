package command

import (
	"fmt"

	"github.com/pbaille/meetbook/internal/domain"
	"github.com/pbaille/meetbook/internal/model"
)

const (
	HelpUsage = "help: Shows program usage instructions.\n" +
		"Example: help"

	MessageClearSuccess = "Address book has been cleared!"
	MessageHelpSuccess  = "Opened help window."
	MessageExitSuccess  = "Exiting Address Book as requested ..."
	MessageSwitchMode   = "Showing %s"
)

// Clear empties both lists.
type Clear struct{}

func (Clear) Execute(m *model.Model) (Result, error) {
	m.SetAddressBook(model.NewAddressBook())
	m.UpdateFilteredPersons(model.ShowAllPersons)
	m.UpdateFilteredMeetings(model.ShowAllMeetings)
	m.SortMeetings(domain.ByStartTime)
	return Result{Feedback: MessageClearSuccess}, nil
}

// Help asks the interface to show the user guide.
type Help struct{}

func (Help) Execute(*model.Model) (Result, error) {
	return Result{Feedback: MessageHelpSuccess, ShowHelp: true}, nil
}

// Exit asks the interface to close.
type Exit struct{}

func (Exit) Execute(*model.Model) (Result, error) {
	return Result{Feedback: MessageExitSuccess, Exit: true}, nil
}

// Switch activates the person or meeting list.
type Switch struct {
	To Mode
}

func (c Switch) Execute(*model.Model) (Result, error) {
	return Result{Feedback: fmt.Sprintf(MessageSwitchMode, c.To), SwitchTo: c.To}, nil
}
