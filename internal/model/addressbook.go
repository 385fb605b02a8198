package model

import (
	"errors"
	"slices"

	"github.com/pbaille/meetbook/internal/domain"
)

var (
	ErrDuplicatePerson  = errors.New("duplicate person")
	ErrPersonNotFound   = errors.New("person not found")
	ErrDuplicateMeeting = errors.New("duplicate meeting")
	ErrMeetingNotFound  = errors.New("meeting not found")
	ErrNoPageFetcher    = errors.New("link lookup is not available")
)

// AddressBook holds the persons and meetings in insertion order.
// Neither list ever contains two entries that are the same person or meeting.
type AddressBook struct {
	persons  []domain.Person
	meetings []domain.Meeting
}

// NewAddressBook returns an empty book.
func NewAddressBook() *AddressBook {
	return &AddressBook{}
}

// Copy returns an independent copy of b.
func (b *AddressBook) Copy() *AddressBook {
	return &AddressBook{
		persons:  slices.Clone(b.persons),
		meetings: slices.Clone(b.meetings),
	}
}

// ResetData replaces the contents of b with those of other.
func (b *AddressBook) ResetData(other *AddressBook) {
	b.persons = slices.Clone(other.persons)
	b.meetings = slices.Clone(other.meetings)
}

// Persons returns a copy of the person list.
func (b *AddressBook) Persons() []domain.Person { return slices.Clone(b.persons) }

// Meetings returns a copy of the meeting list.
func (b *AddressBook) Meetings() []domain.Meeting { return slices.Clone(b.meetings) }

// SetPersons replaces the person list. It fails if the list has duplicates.
func (b *AddressBook) SetPersons(persons []domain.Person) error {
	for i := range persons {
		for j := i + 1; j < len(persons); j++ {
			if persons[i].IsSamePerson(persons[j]) {
				return ErrDuplicatePerson
			}
		}
	}
	b.persons = slices.Clone(persons)
	return nil
}

func (b *AddressBook) HasPerson(p domain.Person) bool {
	return slices.ContainsFunc(b.persons, p.IsSamePerson)
}

func (b *AddressBook) AddPerson(p domain.Person) error {
	if b.HasPerson(p) {
		return ErrDuplicatePerson
	}
	b.persons = append(b.persons, p)
	return nil
}

// SetPerson replaces target with edited in place.
func (b *AddressBook) SetPerson(target, edited domain.Person) error {
	i := slices.IndexFunc(b.persons, target.Equal)
	if i < 0 {
		return ErrPersonNotFound
	}
	if !target.IsSamePerson(edited) && b.HasPerson(edited) {
		return ErrDuplicatePerson
	}
	b.persons[i] = edited
	return nil
}

func (b *AddressBook) RemovePerson(p domain.Person) error {
	i := slices.IndexFunc(b.persons, p.Equal)
	if i < 0 {
		return ErrPersonNotFound
	}
	b.persons = slices.Delete(b.persons, i, i+1)
	return nil
}

// SetMeetings replaces the meeting list. It fails if the list has duplicates.
func (b *AddressBook) SetMeetings(meetings []domain.Meeting) error {
	for i := range meetings {
		for j := i + 1; j < len(meetings); j++ {
			if meetings[i].IsSameMeeting(meetings[j]) {
				return ErrDuplicateMeeting
			}
		}
	}
	b.meetings = slices.Clone(meetings)
	return nil
}

func (b *AddressBook) HasMeeting(m domain.Meeting) bool {
	return slices.ContainsFunc(b.meetings, m.IsSameMeeting)
}

func (b *AddressBook) AddMeeting(m domain.Meeting) error {
	if b.HasMeeting(m) {
		return ErrDuplicateMeeting
	}
	b.meetings = append(b.meetings, m)
	return nil
}

// SetMeeting replaces target with edited in place.
func (b *AddressBook) SetMeeting(target, edited domain.Meeting) error {
	i := slices.IndexFunc(b.meetings, target.Equal)
	if i < 0 {
		return ErrMeetingNotFound
	}
	if !target.IsSameMeeting(edited) && b.HasMeeting(edited) {
		return ErrDuplicateMeeting
	}
	b.meetings[i] = edited
	return nil
}

func (b *AddressBook) RemoveMeeting(m domain.Meeting) error {
	i := slices.IndexFunc(b.meetings, m.Equal)
	if i < 0 {
		return ErrMeetingNotFound
	}
	b.meetings = slices.Delete(b.meetings, i, i+1)
	return nil
}
