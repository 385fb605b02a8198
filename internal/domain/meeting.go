package domain

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	// StartTimeLayout is the input and storage format, e.g. 2021-10-20 1400.
	StartTimeLayout = "2006-01-02 1504"
	// StartTimeDisplayLayout is used when rendering meetings.
	StartTimeDisplayLayout = "Jan 02 2006 15:04"

	TitleConstraints     = "Titles can take any values, and it should not be blank"
	LinkConstraints      = "Links should be valid URLs that start with http:// or https://"
	StartTimeConstraints = "Start times should be of the format yyyy-MM-dd HHmm and be a valid date and time, e.g. 2021-10-20 1400"
	DurationConstraints  = "Durations should be a positive whole number of minutes, at most 10080 (one week)"

	// MaxDuration is the longest meeting accepted, in minutes.
	MaxDuration = 7 * 24 * 60
)

var titleRe = regexp.MustCompile(`^\S.*$`)

// Title names a meeting.
type Title string

func NewTitle(s string) (Title, error) {
	if !IsValidTitle(s) {
		return "", &ConstraintError{Field: "Title", Message: TitleConstraints}
	}
	return Title(s), nil
}

func IsValidTitle(s string) bool { return titleRe.MatchString(s) }

// Link is the URL used to join a meeting.
type Link string

func NewLink(s string) (Link, error) {
	if !IsValidLink(s) {
		return "", &ConstraintError{Field: "Link", Message: LinkConstraints}
	}
	return Link(s), nil
}

func IsValidLink(s string) bool {
	if s == "" || strings.ContainsAny(s, " \t\n") {
		return false
	}
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// StartTime is the minute a meeting begins, in local time.
type StartTime struct {
	time.Time
}

func NewStartTime(s string) (StartTime, error) {
	t, err := time.ParseInLocation(StartTimeLayout, s, time.Local)
	if err != nil {
		return StartTime{}, &ConstraintError{Field: "StartTime", Message: StartTimeConstraints}
	}
	return StartTime{Time: t}, nil
}

func IsValidStartTime(s string) bool {
	_, err := NewStartTime(s)
	return err == nil
}

// Storage returns the yyyy-MM-dd HHmm form.
func (s StartTime) Storage() string { return s.Format(StartTimeLayout) }

func (s StartTime) String() string { return s.Format(StartTimeDisplayLayout) }

// Duration is a meeting length in minutes.
type Duration int

func NewDuration(s string) (Duration, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 || n > MaxDuration {
		return 0, &ConstraintError{Field: "Duration", Message: DurationConstraints}
	}
	return Duration(n), nil
}

func IsValidDuration(s string) bool {
	_, err := NewDuration(s)
	return err == nil
}

func (d Duration) Minutes() time.Duration { return time.Duration(d) * time.Minute }

// Meeting is a scheduled event with a join link.
type Meeting struct {
	Title     Title
	Link      Link
	StartTime StartTime
	Duration  Duration
	Tags      []Tag
}

// NewMeeting builds a meeting with a normalised tag set.
func NewMeeting(title Title, link Link, start StartTime, duration Duration, tags []Tag) Meeting {
	return Meeting{
		Title:     title,
		Link:      link,
		StartTime: start,
		Duration:  duration,
		Tags:      NewTagSet(tags...),
	}
}

// IsSameMeeting reports whether both records describe the same occurrence:
// same title, ignoring case, at the same start time.
func (m Meeting) IsSameMeeting(other Meeting) bool {
	return strings.EqualFold(string(m.Title), string(other.Title)) &&
		m.StartTime.Equal(other.StartTime.Time)
}

// Equal compares every field.
func (m Meeting) Equal(other Meeting) bool {
	return m.Title == other.Title &&
		m.Link == other.Link &&
		m.StartTime.Equal(other.StartTime.Time) &&
		m.Duration == other.Duration &&
		TagsEqual(m.Tags, other.Tags)
}

// EndTime is the start time plus the duration.
func (m Meeting) EndTime() time.Time {
	return m.StartTime.Add(m.Duration.Minutes())
}

func (m Meeting) String() string {
	return fmt.Sprintf("%s; Link: %s; Start: %s; Duration: %d min; Tags: %s",
		m.Title, m.Link, m.StartTime, m.Duration, FormatTags(m.Tags))
}
