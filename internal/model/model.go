package model

import (
	"context"
	"slices"

	"github.com/atotto/clipboard"

	"github.com/pbaille/meetbook/internal/domain"
)

// Clipboard receives text copied by the copy commands.
type Clipboard interface {
	WriteAll(text string) error
}

// PageFetcher looks up the title of the page behind a meeting link.
type PageFetcher interface {
	Title(ctx context.Context, rawURL string) (string, error)
}

// SystemClipboard writes to the operating system clipboard.
type SystemClipboard struct{}

func (SystemClipboard) WriteAll(text string) error { return clipboard.WriteAll(text) }

// ShowAllPersons and ShowAllMeetings reset the filtered views.
func ShowAllPersons(domain.Person) bool   { return true }
func ShowAllMeetings(domain.Meeting) bool { return true }

// Model is the in-memory state the commands operate on: the address book
// plus the filtered person view and the filtered, sorted meeting view.
type Model struct {
	book *AddressBook

	personFilter  func(domain.Person) bool
	meetingFilter func(domain.Meeting) bool
	meetingOrder  domain.MeetingComparator

	clipboard Clipboard
	pages     PageFetcher
}

// Option configures a Model.
type Option func(*Model)

func WithClipboard(c Clipboard) Option { return func(m *Model) { m.clipboard = c } }

func WithPageFetcher(f PageFetcher) Option { return func(m *Model) { m.pages = f } }

// New creates a Model over a copy of book showing everything.
func New(book *AddressBook, opts ...Option) *Model {
	if book == nil {
		book = NewAddressBook()
	}
	m := &Model{
		book:          book.Copy(),
		personFilter:  ShowAllPersons,
		meetingFilter: ShowAllMeetings,
		meetingOrder:  domain.ByStartTime,
		clipboard:     SystemClipboard{},
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// AddressBook returns the live book. Callers must not keep it across commands.
func (m *Model) AddressBook() *AddressBook { return m.book }

// SetAddressBook replaces the book contents.
func (m *Model) SetAddressBook(book *AddressBook) { m.book.ResetData(book) }

func (m *Model) HasPerson(p domain.Person) bool { return m.book.HasPerson(p) }

func (m *Model) AddPerson(p domain.Person) error {
	if err := m.book.AddPerson(p); err != nil {
		return err
	}
	m.personFilter = ShowAllPersons
	return nil
}

func (m *Model) SetPerson(target, edited domain.Person) error { return m.book.SetPerson(target, edited) }

func (m *Model) DeletePerson(p domain.Person) error { return m.book.RemovePerson(p) }

func (m *Model) HasMeeting(x domain.Meeting) bool { return m.book.HasMeeting(x) }

func (m *Model) AddMeeting(x domain.Meeting) error {
	if err := m.book.AddMeeting(x); err != nil {
		return err
	}
	m.meetingFilter = ShowAllMeetings
	m.meetingOrder = domain.ByStartTime
	return nil
}

func (m *Model) SetMeeting(target, edited domain.Meeting) error {
	return m.book.SetMeeting(target, edited)
}

func (m *Model) DeleteMeeting(x domain.Meeting) error { return m.book.RemoveMeeting(x) }

// FilteredPersons returns the persons passing the current filter, in book order.
func (m *Model) FilteredPersons() []domain.Person {
	var out []domain.Person
	for _, p := range m.book.persons {
		if m.personFilter(p) {
			out = append(out, p)
		}
	}
	return out
}

// UpdateFilteredPersons sets the person filter. A nil predicate shows everyone.
func (m *Model) UpdateFilteredPersons(pred func(domain.Person) bool) {
	if pred == nil {
		pred = ShowAllPersons
	}
	m.personFilter = pred
}

// SortedFilteredMeetings returns the meetings passing the current filter,
// stably sorted by the current order.
func (m *Model) SortedFilteredMeetings() []domain.Meeting {
	var out []domain.Meeting
	for _, x := range m.book.meetings {
		if m.meetingFilter(x) {
			out = append(out, x)
		}
	}
	slices.SortStableFunc(out, m.meetingOrder)
	return out
}

// UpdateFilteredMeetings sets the meeting filter. A nil predicate shows all meetings.
func (m *Model) UpdateFilteredMeetings(pred func(domain.Meeting) bool) {
	if pred == nil {
		pred = ShowAllMeetings
	}
	m.meetingFilter = pred
}

// SortMeetings sets the meeting order. A nil comparator restores start time order.
func (m *Model) SortMeetings(order domain.MeetingComparator) {
	if order == nil {
		order = domain.ByStartTime
	}
	m.meetingOrder = order
}

// Copy puts text on the clipboard.
func (m *Model) Copy(text string) error {
	return m.clipboard.WriteAll(text)
}

// PageTitle fetches the title of the page behind link. It reads no book
// state, so it may run concurrently with commands.
func (m *Model) PageTitle(ctx context.Context, link domain.Link) (string, error) {
	if m.pages == nil {
		return "", ErrNoPageFetcher
	}
	return m.pages.Title(ctx, string(link))
}
