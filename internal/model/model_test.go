package model

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pbaille/meetbook/internal/domain"
)

type fakeClipboard struct{ text string }

func (f *fakeClipboard) WriteAll(text string) error {
	f.text = text
	return nil
}

type fakePages map[string]string

func (f fakePages) Title(_ context.Context, rawURL string) (string, error) {
	t, ok := f[rawURL]
	if !ok {
		return "", errors.New("not found")
	}
	return t, nil
}

func person(name string) domain.Person {
	return domain.NewPerson(domain.Name(name), "12345", "x@example.com", "somewhere", nil)
}

func meetingAt(t *testing.T, title, start string) domain.Meeting {
	t.Helper()
	st, err := domain.NewStartTime(start)
	require.NoError(t, err)
	return domain.NewMeeting(domain.Title(title), "https://zoom.us/j/1", st, 30, nil)
}

func TestAddressBookRejectsDuplicates(t *testing.T) {
	b := NewAddressBook()
	require.NoError(t, b.AddPerson(person("Alice")))

	dup := person("Alice")
	dup.Phone = "999"
	assert.ErrorIs(t, b.AddPerson(dup), ErrDuplicatePerson)
	assert.ErrorIs(t, b.SetPersons([]domain.Person{person("Bob"), person("Bob")}), ErrDuplicatePerson)

	m := meetingAt(t, "Standup", "2021-10-20 0900")
	require.NoError(t, b.AddMeeting(m))
	assert.ErrorIs(t, b.AddMeeting(meetingAt(t, "standup", "2021-10-20 0900")), ErrDuplicateMeeting)
	assert.NoError(t, b.AddMeeting(meetingAt(t, "Standup", "2021-10-21 0900")))
}

func TestAddressBookSetAndRemove(t *testing.T) {
	b := NewAddressBook()
	alice, bob := person("Alice"), person("Bob")
	require.NoError(t, b.AddPerson(alice))
	require.NoError(t, b.AddPerson(bob))

	edited := alice
	edited.Phone = "777"
	require.NoError(t, b.SetPerson(alice, edited))
	assert.Equal(t, domain.Phone("777"), b.Persons()[0].Phone)

	renamed := person("Bob")
	assert.ErrorIs(t, b.SetPerson(edited, renamed), ErrDuplicatePerson)
	assert.ErrorIs(t, b.SetPerson(person("Carol"), renamed), ErrPersonNotFound)

	require.NoError(t, b.RemovePerson(bob))
	assert.ErrorIs(t, b.RemovePerson(bob), ErrPersonNotFound)
	assert.Len(t, b.Persons(), 1)
}

func TestModelFilteredPersons(t *testing.T) {
	b := NewAddressBook()
	for _, n := range []string{"Alice Pauline", "Benson Meier", "Carl Kurz"} {
		require.NoError(t, b.AddPerson(person(n)))
	}
	m := New(b)

	m.UpdateFilteredPersons(domain.NameContainsKeywords{Keywords: []string{"meier", "kurz"}}.Test)
	got := m.FilteredPersons()
	require.Len(t, got, 2)
	assert.Equal(t, domain.Name("Benson Meier"), got[0].Name)

	// adding resets the filter so the new entry is visible
	require.NoError(t, m.AddPerson(person("Daniel Meier")))
	assert.Len(t, m.FilteredPersons(), 4)

	m.UpdateFilteredPersons(nil)
	assert.Len(t, m.FilteredPersons(), 4)
}

func TestModelMeetingsDefaultToStartTimeOrder(t *testing.T) {
	b := NewAddressBook()
	require.NoError(t, b.AddMeeting(meetingAt(t, "Late", "2021-10-22 0900")))
	require.NoError(t, b.AddMeeting(meetingAt(t, "Early", "2021-10-20 0900")))
	m := New(b)

	got := m.SortedFilteredMeetings()
	require.Len(t, got, 2)
	assert.Equal(t, domain.Title("Early"), got[0].Title)

	m.UpdateFilteredMeetings(domain.MeetingContainsKeywords{Keywords: []string{"late"}}.Test)
	got = m.SortedFilteredMeetings()
	require.Len(t, got, 1)
	assert.Equal(t, domain.Title("Late"), got[0].Title)
}

func TestModelDoesNotShareCallerBook(t *testing.T) {
	b := NewAddressBook()
	m := New(b)
	require.NoError(t, m.AddPerson(person("Alice")))
	assert.Empty(t, b.Persons())
}

func TestModelCopyAndPageTitle(t *testing.T) {
	clip := &fakeClipboard{}
	m := New(nil, WithClipboard(clip), WithPageFetcher(fakePages{"https://zoom.us/j/1": "Zoom"}))

	require.NoError(t, m.Copy("hello"))
	assert.Equal(t, "hello", clip.text)

	title, err := m.PageTitle(context.Background(), "https://zoom.us/j/1")
	require.NoError(t, err)
	assert.Equal(t, "Zoom", title)

	_, err = New(nil).PageTitle(context.Background(), "https://zoom.us/j/1")
	assert.ErrorIs(t, err, ErrNoPageFetcher)
}

func TestSampleAddressBook(t *testing.T) {
	b := SampleAddressBook()
	assert.Len(t, b.Persons(), 6)
	assert.Len(t, b.Meetings(), 3)
}
