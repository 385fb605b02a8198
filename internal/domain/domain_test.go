package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldValidation(t *testing.T) {
	tests := []struct {
		name  string
		valid func(string) bool
		ok    []string
		bad   []string
	}{
		{"name", IsValidName, []string{"Alex Yeoh", "peter the 2nd", "Capital Tan"}, []string{"", " ", "^", "peter*", " alex"}},
		{"phone", IsValidPhone, []string{"911", "93121534", "124293842033123"}, []string{"", "91", "phone", "9011p041", "9312 1534"}},
		{"email", IsValidEmail, []string{"alexyeoh@example.com", "a@bc", "peter_jack@very-very.long.example.com", "a+b@x.io"}, []string{"", "@example.com", "peterjack@", "-peter@example.com", "peter@-example.com", "peter@example.c"}},
		{"address", IsValidAddress, []string{"Blk 456, Den Road, #01-355", "-"}, []string{"", " "}},
		{"tag", IsValidTag, []string{"friends", "cs2103"}, []string{"", "best friend", "#x"}},
		{"title", IsValidTitle, []string{"CS2103 Lecture", "x"}, []string{"", "  "}},
		{"link", IsValidLink, []string{"https://zoom.us/j/123", "http://example.com/a?b=c"}, []string{"", "zoom.us/j/1", "ftp://example.com", "https://", "https://a b.com"}},
		{"start time", IsValidStartTime, []string{"2021-10-20 1400", "2024-02-29 0000"}, []string{"", "2021-10-20", "2021-13-01 1000", "2021-02-30 1000", "2021-10-20 2500", "20-10-2021 1400"}},
		{"duration", IsValidDuration, []string{"1", "60", "240", "10080"}, []string{"", "0", "-5", "1.5", "an hour", "10081", "999999999999999"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, s := range tt.ok {
				assert.True(t, tt.valid(s), "expected %q to be valid", s)
			}
			for _, s := range tt.bad {
				assert.False(t, tt.valid(s), "expected %q to be invalid", s)
			}
		})
	}
}

func TestConstraintErrorCarriesMessage(t *testing.T) {
	_, err := NewPhone("12")
	require.Error(t, err)

	var ce *ConstraintError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, "Phone", ce.Field)
	assert.Equal(t, PhoneConstraints, err.Error())
}

func TestTagSetIsSortedAndUnique(t *testing.T) {
	tags := NewTagSet("zoom", "cs2103", "zoom")
	assert.Equal(t, []Tag{"cs2103", "zoom"}, tags)
	assert.NotNil(t, NewTagSet())
	assert.True(t, TagsEqual([]Tag{"b", "a"}, []Tag{"a", "b", "a"}))
	assert.Equal(t, "[a][b]", FormatTags([]Tag{"a", "b"}))
}

func TestPersonIdentityAndString(t *testing.T) {
	alice := NewPerson("Alice Pauline", "94351253", "alice@example.com", "123, Jurong West Ave 6", []Tag{"friends"})
	other := alice
	other.Phone = "99999999"

	assert.True(t, alice.IsSamePerson(other))
	assert.False(t, alice.Equal(other))
	assert.Equal(t, "Alice Pauline; Phone: 94351253; Email: alice@example.com; Address: 123, Jurong West Ave 6; Tags: [friends]", alice.String())
}

func TestMeetingIdentityAndEndTime(t *testing.T) {
	start, err := NewStartTime("2021-10-20 1400")
	require.NoError(t, err)
	m := NewMeeting("CS2103 Lecture", "https://zoom.us/j/1", start, 90, []Tag{"lecture"})

	other := m
	other.Title = "cs2103 lecture"
	other.Link = "https://zoom.us/j/2"
	assert.True(t, m.IsSameMeeting(other))
	assert.False(t, m.Equal(other))

	later, err := NewStartTime("2021-10-21 1400")
	require.NoError(t, err)
	other.StartTime = later
	assert.False(t, m.IsSameMeeting(other))

	assert.Equal(t, "2021-10-20 1530", m.EndTime().Format(StartTimeLayout))
	assert.Equal(t, "2021-10-20 1400", m.StartTime.Storage())
	assert.Equal(t, "CS2103 Lecture; Link: https://zoom.us/j/1; Start: Oct 20 2021 14:00; Duration: 90 min; Tags: [lecture]", m.String())
}

func TestLongestMeetingEndsOneWeekLater(t *testing.T) {
	start, err := NewStartTime("2021-10-20 1400")
	require.NoError(t, err)
	d, err := NewDuration("10080")
	require.NoError(t, err)
	assert.Equal(t, "2021-10-27 1400", NewMeeting("Retreat", "https://zoom.us/j/1", start, d, nil).EndTime().Format(StartTimeLayout))

	_, err = NewDuration("10081")
	assert.EqualError(t, err, DurationConstraints)
}
