package store

import (
	"fmt"
	"strconv"

	"github.com/pbaille/meetbook/internal/domain"
	"github.com/pbaille/meetbook/internal/model"
)

const (
	missingPersonField  = "Person's %s field is missing!"
	missingMeetingField = "Meeting's %s field is missing!"

	MessageDuplicatePersons  = "Persons list contains duplicate person(s)."
	MessageDuplicateMeetings = "Meetings list contains duplicate meeting(s)."
)

// DataError reports stored data that violates a model constraint.
type DataError struct {
	Message string
}

func (e *DataError) Error() string { return e.Message }

func dataErrorf(format string, args ...any) error {
	return &DataError{Message: fmt.Sprintf(format, args...)}
}

// jsonBook is the on-disk form of the address book.
type jsonBook struct {
	Persons  []jsonPerson  `json:"persons"`
	Meetings []jsonMeeting `json:"meetings"`
}

// Pointer fields distinguish a missing field from an empty one.
type jsonPerson struct {
	Name    *string  `json:"name"`
	Phone   *string  `json:"phone"`
	Email   *string  `json:"email"`
	Address *string  `json:"address"`
	Tagged  []string `json:"tagged"`
}

type jsonMeeting struct {
	Title     *string  `json:"title"`
	Link      *string  `json:"link"`
	StartTime *string  `json:"startTime"`
	Duration  *string  `json:"duration"`
	Tagged    []string `json:"tagged"`
}

func ptr(s string) *string { return &s }

func tagStrings(tags []domain.Tag) []string {
	out := make([]string, len(tags))
	for i, t := range tags {
		out[i] = string(t)
	}
	return out
}

func toModelTags(tagged []string) ([]domain.Tag, error) {
	tags := make([]domain.Tag, 0, len(tagged))
	for _, s := range tagged {
		t, err := domain.NewTag(s)
		if err != nil {
			return nil, err
		}
		tags = append(tags, t)
	}
	return tags, nil
}

func adaptPerson(p domain.Person) jsonPerson {
	return jsonPerson{
		Name:    ptr(string(p.Name)),
		Phone:   ptr(string(p.Phone)),
		Email:   ptr(string(p.Email)),
		Address: ptr(string(p.Address)),
		Tagged:  tagStrings(p.Tags),
	}
}

func (j jsonPerson) toModel() (domain.Person, error) {
	tags, err := toModelTags(j.Tagged)
	if err != nil {
		return domain.Person{}, err
	}
	if j.Name == nil {
		return domain.Person{}, dataErrorf(missingPersonField, "Name")
	}
	name, err := domain.NewName(*j.Name)
	if err != nil {
		return domain.Person{}, err
	}
	if j.Phone == nil {
		return domain.Person{}, dataErrorf(missingPersonField, "Phone")
	}
	phone, err := domain.NewPhone(*j.Phone)
	if err != nil {
		return domain.Person{}, err
	}
	if j.Email == nil {
		return domain.Person{}, dataErrorf(missingPersonField, "Email")
	}
	email, err := domain.NewEmail(*j.Email)
	if err != nil {
		return domain.Person{}, err
	}
	if j.Address == nil {
		return domain.Person{}, dataErrorf(missingPersonField, "Address")
	}
	address, err := domain.NewAddress(*j.Address)
	if err != nil {
		return domain.Person{}, err
	}
	return domain.NewPerson(name, phone, email, address, tags), nil
}

func adaptMeeting(m domain.Meeting) jsonMeeting {
	return jsonMeeting{
		Title:     ptr(string(m.Title)),
		Link:      ptr(string(m.Link)),
		StartTime: ptr(m.StartTime.Storage()),
		Duration:  ptr(strconv.Itoa(int(m.Duration))),
		Tagged:    tagStrings(m.Tags),
	}
}

func (j jsonMeeting) toModel() (domain.Meeting, error) {
	tags, err := toModelTags(j.Tagged)
	if err != nil {
		return domain.Meeting{}, err
	}
	if j.Title == nil {
		return domain.Meeting{}, dataErrorf(missingMeetingField, "Title")
	}
	title, err := domain.NewTitle(*j.Title)
	if err != nil {
		return domain.Meeting{}, err
	}
	if j.Link == nil {
		return domain.Meeting{}, dataErrorf(missingMeetingField, "Link")
	}
	link, err := domain.NewLink(*j.Link)
	if err != nil {
		return domain.Meeting{}, err
	}
	if j.StartTime == nil {
		return domain.Meeting{}, dataErrorf(missingMeetingField, "StartTime")
	}
	start, err := domain.NewStartTime(*j.StartTime)
	if err != nil {
		return domain.Meeting{}, err
	}
	if j.Duration == nil {
		return domain.Meeting{}, dataErrorf(missingMeetingField, "Duration")
	}
	duration, err := domain.NewDuration(*j.Duration)
	if err != nil {
		return domain.Meeting{}, err
	}
	return domain.NewMeeting(title, link, start, duration, tags), nil
}

func adaptBook(b *model.AddressBook) jsonBook {
	out := jsonBook{
		Persons:  make([]jsonPerson, 0),
		Meetings: make([]jsonMeeting, 0),
	}
	for _, p := range b.Persons() {
		out.Persons = append(out.Persons, adaptPerson(p))
	}
	for _, m := range b.Meetings() {
		out.Meetings = append(out.Meetings, adaptMeeting(m))
	}
	return out
}

func (j jsonBook) toModel() (*model.AddressBook, error) {
	persons := make([]domain.Person, 0, len(j.Persons))
	for _, jp := range j.Persons {
		p, err := jp.toModel()
		if err != nil {
			return nil, err
		}
		persons = append(persons, p)
	}
	meetings := make([]domain.Meeting, 0, len(j.Meetings))
	for _, jm := range j.Meetings {
		m, err := jm.toModel()
		if err != nil {
			return nil, err
		}
		meetings = append(meetings, m)
	}

	b := model.NewAddressBook()
	if err := b.SetPersons(persons); err != nil {
		return nil, dataErrorf(MessageDuplicatePersons)
	}
	if err := b.SetMeetings(meetings); err != nil {
		return nil, dataErrorf(MessageDuplicateMeetings)
	}
	return b, nil
}
