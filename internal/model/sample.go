package model

import (
	"github.com/pbaille/meetbook/internal/domain"
)

// SampleAddressBook is shown on first launch, when no data file exists yet.
func SampleAddressBook() *AddressBook {
	b := NewAddressBook()
	for _, p := range samplePersons() {
		_ = b.AddPerson(p)
	}
	for _, m := range sampleMeetings() {
		_ = b.AddMeeting(m)
	}
	return b
}

func samplePersons() []domain.Person {
	return []domain.Person{
		domain.NewPerson("Alex Yeoh", "87438807", "alexyeoh@example.com", "Blk 30 Geylang Street 29, #06-40", []domain.Tag{"friends"}),
		domain.NewPerson("Bernice Yu", "99272758", "berniceyu@example.com", "Blk 30 Lorong 3 Serangoon Gardens, #07-18", []domain.Tag{"colleagues", "friends"}),
		domain.NewPerson("Charlotte Oliveiro", "93210283", "charlotte@example.com", "Blk 11 Ang Mo Kio Street 74, #11-04", []domain.Tag{"neighbours"}),
		domain.NewPerson("David Li", "91031282", "lidavid@example.com", "Blk 436 Serangoon Gardens Street 26, #16-43", []domain.Tag{"family"}),
		domain.NewPerson("Irfan Ibrahim", "92492021", "irfan@example.com", "Blk 47 Tampines Street 20, #17-35", []domain.Tag{"classmates"}),
		domain.NewPerson("Roy Balakrishnan", "92624417", "royb@example.com", "Blk 45 Aljunied Street 85, #11-31", []domain.Tag{"colleagues"}),
	}
}

func sampleMeetings() []domain.Meeting {
	mk := func(title, link, start string, minutes int, tags ...domain.Tag) domain.Meeting {
		st, err := domain.NewStartTime(start)
		if err != nil {
			panic(err)
		}
		return domain.NewMeeting(domain.Title(title), domain.Link(link), st, domain.Duration(minutes), tags)
	}
	return []domain.Meeting{
		mk("CS2103 Lecture", "https://nus-sg.zoom.us/j/2103", "2021-10-22 1600", 120, "lecture"),
		mk("CS2101 Tutorial", "https://nus-sg.zoom.us/j/2101", "2021-10-21 1000", 60, "tutorial"),
		mk("Project Sync", "https://meet.google.com/abc-defg-hij", "2021-10-20 2000", 45, "project", "weekly"),
	}
}
