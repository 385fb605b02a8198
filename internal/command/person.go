package command

import (
	"errors"
	"fmt"

	"github.com/pbaille/meetbook/internal/domain"
	"github.com/pbaille/meetbook/internal/model"
)

const (
	AddPersonUsage = "add: Adds a person to the address book. " +
		"Parameters: n/NAME p/PHONE e/EMAIL a/ADDRESS [t/TAG]...\n" +
		"Example: add n/John Doe p/98765432 e/johnd@example.com a/311, Clementi Ave 2, #02-25 t/friends t/owesMoney"
	EditPersonUsage = "edit: Edits the details of the person identified by the index number used in the displayed person list. " +
		"Existing values will be overwritten by the input values.\n" +
		"Parameters: INDEX (must be a positive integer) [n/NAME] [p/PHONE] [e/EMAIL] [a/ADDRESS] [t/TAG]...\n" +
		"Example: edit 1 p/91234567 e/johndoe@example.com"
	DeletePersonUsage = "delete: Deletes the person identified by the index number used in the displayed person list.\n" +
		"Parameters: INDEX (must be a positive integer)\n" +
		"Example: delete 1"
	FindPersonUsage = "find: Finds all persons whose names contain any of " +
		"the specified keywords (case-insensitive) and displays them as a list with index numbers.\n" +
		"Parameters: KEYWORD [MORE_KEYWORDS]...\n" +
		"Example: find alice bob charlie"
	CopyPersonUsage = "copy: Copies the person identified by the index number used in the displayed person list to the clipboard.\n" +
		"Parameters: INDEX (must be a positive integer)\n" +
		"Example: copy 1"

	MessageAddPersonSuccess    = "New person added: %s"
	MessageEditPersonSuccess   = "Edited Person: %s"
	MessageDeletePersonSuccess = "Deleted Person: %s"
	MessageCopyPersonSuccess   = "Copied Person: %s"
	MessageListPersonsSuccess  = "Listed all persons"
	MessageDuplicatePerson     = "This person already exists in the address book"
)

// AddPerson adds a new person.
type AddPerson struct {
	Person domain.Person
}

func (c AddPerson) Execute(m *model.Model) (Result, error) {
	if m.HasPerson(c.Person) {
		return Result{}, errorf(MessageDuplicatePerson)
	}
	if err := m.AddPerson(c.Person); err != nil {
		return Result{}, fmt.Errorf("add person: %w", err)
	}
	return Result{Feedback: fmt.Sprintf(MessageAddPersonSuccess, c.Person)}, nil
}

// EditPersonDescriptor holds the fields to change; nil fields keep their value.
type EditPersonDescriptor struct {
	Name    *domain.Name
	Phone   *domain.Phone
	Email   *domain.Email
	Address *domain.Address
	Tags    *[]domain.Tag
}

func (d EditPersonDescriptor) IsAnyFieldEdited() bool {
	return d.Name != nil || d.Phone != nil || d.Email != nil || d.Address != nil || d.Tags != nil
}

// Apply returns p with the descriptor's fields applied.
func (d EditPersonDescriptor) Apply(p domain.Person) domain.Person {
	out := p
	if d.Name != nil {
		out.Name = *d.Name
	}
	if d.Phone != nil {
		out.Phone = *d.Phone
	}
	if d.Email != nil {
		out.Email = *d.Email
	}
	if d.Address != nil {
		out.Address = *d.Address
	}
	if d.Tags != nil {
		out.Tags = domain.NewTagSet(*d.Tags...)
	}
	return out
}

// EditPerson replaces the person at Index in the displayed list.
type EditPerson struct {
	Index      Index
	Descriptor EditPersonDescriptor
}

func (c EditPerson) Execute(m *model.Model) (Result, error) {
	target, err := pick(m.FilteredPersons(), c.Index, MessageInvalidPersonIndex)
	if err != nil {
		return Result{}, err
	}
	edited := c.Descriptor.Apply(target)
	if err := m.SetPerson(target, edited); err != nil {
		if errors.Is(err, model.ErrDuplicatePerson) {
			return Result{}, errorf(MessageDuplicatePerson)
		}
		return Result{}, fmt.Errorf("edit person: %w", err)
	}
	m.UpdateFilteredPersons(model.ShowAllPersons)
	return Result{Feedback: fmt.Sprintf(MessageEditPersonSuccess, edited)}, nil
}

// DeletePerson removes the person at Index in the displayed list.
type DeletePerson struct {
	Index Index
}

func (c DeletePerson) Execute(m *model.Model) (Result, error) {
	target, err := pick(m.FilteredPersons(), c.Index, MessageInvalidPersonIndex)
	if err != nil {
		return Result{}, err
	}
	if err := m.DeletePerson(target); err != nil {
		return Result{}, fmt.Errorf("delete person: %w", err)
	}
	return Result{Feedback: fmt.Sprintf(MessageDeletePersonSuccess, target)}, nil
}

// FindPersons filters the person list by name keywords.
type FindPersons struct {
	Predicate domain.NameContainsKeywords
}

func (c FindPersons) Execute(m *model.Model) (Result, error) {
	m.UpdateFilteredPersons(c.Predicate.Test)
	return Result{Feedback: fmt.Sprintf(MessagePersonsListedOverview, len(m.FilteredPersons()))}, nil
}

// ListPersons shows every person.
type ListPersons struct{}

func (ListPersons) Execute(m *model.Model) (Result, error) {
	m.UpdateFilteredPersons(model.ShowAllPersons)
	return Result{Feedback: MessageListPersonsSuccess}, nil
}

// CopyPerson puts the person at Index on the clipboard.
type CopyPerson struct {
	Index Index
}

func (c CopyPerson) Execute(m *model.Model) (Result, error) {
	target, err := pick(m.FilteredPersons(), c.Index, MessageInvalidPersonIndex)
	if err != nil {
		return Result{}, err
	}
	if err := m.Copy(target.String()); err != nil {
		return Result{}, fmt.Errorf("copy person: %w", err)
	}
	return Result{Feedback: fmt.Sprintf(MessageCopyPersonSuccess, target)}, nil
}
