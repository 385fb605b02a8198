package command

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pbaille/meetbook/internal/domain"
	"github.com/pbaille/meetbook/internal/model"
)

const (
	AddMeetingUsage = "add: Adds a meeting. " +
		"Parameters: n/TITLE l/LINK st/START_TIME d/DURATION_MINUTES [t/TAG]...\n" +
		"Example: add n/CS2103 Lecture l/https://nus-sg.zoom.us/j/2103 st/2021-10-22 1600 d/120 t/lecture"
	EditMeetingUsage = "edit: Edits the details of the meeting identified by the index number used in the displayed meeting list. " +
		"Existing values will be overwritten by the input values.\n" +
		"Parameters: INDEX (must be a positive integer) [n/TITLE] [l/LINK] [st/START_TIME] [d/DURATION_MINUTES] [t/TAG]...\n" +
		"Example: edit 1 st/2021-10-29 1600 d/90"
	DeleteMeetingUsage = "delete: Deletes the meeting identified by the index number used in the displayed meeting list.\n" +
		"Parameters: INDEX (must be a positive integer)\n" +
		"Example: delete 1"
	FindMeetingUsage = "find: Finds all meetings whose names contain any of " +
		"the specified keywords (case-insensitive) and displays them as a list with index numbers.\n" +
		"Parameters: KEYWORD [MORE_KEYWORDS]...\n" +
		"Example: find cs2103 lecture"
	CopyMeetingUsage = "copy: Copies the meeting identified by the index number used in the displayed meeting list to the clipboard.\n" +
		"Parameters: INDEX (must be a positive integer)\n" +
		"Example: copy 1"
	PeekMeetingUsage = "peek: Looks up the title of the page behind the link of the meeting identified by the index number.\n" +
		"Parameters: INDEX (must be a positive integer)\n" +
		"Example: peek 1"

	MessageAddMeetingSuccess    = "New meeting added: %s"
	MessageEditMeetingSuccess   = "Edited Meeting: %s"
	MessageDeleteMeetingSuccess = "Deleted Meeting: %s"
	MessageCopyMeetingSuccess   = "Copied Meeting: %s"
	MessagePeekMeetingSuccess   = "Link of %s points to: %s"
	MessagePeekMeetingFailure   = "Could not look up the link of %s: %v"
	MessageListMeetingsSuccess  = "Listed all meetings"
	MessageDuplicateMeeting     = "This meeting already exists in the address book"
)

// peekTimeout bounds a single link lookup.
const peekTimeout = 10 * time.Second

// AddMeeting adds a new meeting.
type AddMeeting struct {
	Meeting domain.Meeting
}

func (c AddMeeting) Execute(m *model.Model) (Result, error) {
	if m.HasMeeting(c.Meeting) {
		return Result{}, errorf(MessageDuplicateMeeting)
	}
	if err := m.AddMeeting(c.Meeting); err != nil {
		return Result{}, fmt.Errorf("add meeting: %w", err)
	}
	return Result{Feedback: fmt.Sprintf(MessageAddMeetingSuccess, c.Meeting)}, nil
}

// EditMeetingDescriptor holds the fields to change; nil fields keep their value.
type EditMeetingDescriptor struct {
	Title     *domain.Title
	Link      *domain.Link
	StartTime *domain.StartTime
	Duration  *domain.Duration
	Tags      *[]domain.Tag
}

func (d EditMeetingDescriptor) IsAnyFieldEdited() bool {
	return d.Title != nil || d.Link != nil || d.StartTime != nil || d.Duration != nil || d.Tags != nil
}

// Apply returns x with the descriptor's fields applied.
func (d EditMeetingDescriptor) Apply(x domain.Meeting) domain.Meeting {
	out := x
	if d.Title != nil {
		out.Title = *d.Title
	}
	if d.Link != nil {
		out.Link = *d.Link
	}
	if d.StartTime != nil {
		out.StartTime = *d.StartTime
	}
	if d.Duration != nil {
		out.Duration = *d.Duration
	}
	if d.Tags != nil {
		out.Tags = domain.NewTagSet(*d.Tags...)
	}
	return out
}

// EditMeeting replaces the meeting at Index in the displayed list.
type EditMeeting struct {
	Index      Index
	Descriptor EditMeetingDescriptor
}

func (c EditMeeting) Execute(m *model.Model) (Result, error) {
	target, err := pick(m.SortedFilteredMeetings(), c.Index, MessageInvalidMeetingIndex)
	if err != nil {
		return Result{}, err
	}
	edited := c.Descriptor.Apply(target)
	if err := m.SetMeeting(target, edited); err != nil {
		if errors.Is(err, model.ErrDuplicateMeeting) {
			return Result{}, errorf(MessageDuplicateMeeting)
		}
		return Result{}, fmt.Errorf("edit meeting: %w", err)
	}
	m.UpdateFilteredMeetings(model.ShowAllMeetings)
	m.SortMeetings(domain.ByStartTime)
	return Result{Feedback: fmt.Sprintf(MessageEditMeetingSuccess, edited)}, nil
}

// DeleteMeeting removes the meeting at Index in the displayed list.
type DeleteMeeting struct {
	Index Index
}

func (c DeleteMeeting) Execute(m *model.Model) (Result, error) {
	target, err := pick(m.SortedFilteredMeetings(), c.Index, MessageInvalidMeetingIndex)
	if err != nil {
		return Result{}, err
	}
	if err := m.DeleteMeeting(target); err != nil {
		return Result{}, fmt.Errorf("delete meeting: %w", err)
	}
	return Result{Feedback: fmt.Sprintf(MessageDeleteMeetingSuccess, target)}, nil
}

// FindMeetings filters meetings by title keywords and orders the result by
// how many keywords matched, then by start time.
type FindMeetings struct {
	Predicate domain.MeetingContainsKeywords
}

func (c FindMeetings) Execute(m *model.Model) (Result, error) {
	m.UpdateFilteredMeetings(c.Predicate.Test)
	m.SortMeetings(domain.KeywordMatchness(c.Predicate.Keywords).ThenBy(domain.ByStartTime))
	return Result{Feedback: fmt.Sprintf(MessageMeetingsListedOverview, len(m.SortedFilteredMeetings()))}, nil
}

// ListMeetings shows every meeting in start time order.
type ListMeetings struct{}

func (ListMeetings) Execute(m *model.Model) (Result, error) {
	m.UpdateFilteredMeetings(model.ShowAllMeetings)
	m.SortMeetings(domain.ByStartTime)
	return Result{Feedback: MessageListMeetingsSuccess}, nil
}

// CopyMeeting puts the meeting at Index on the clipboard.
type CopyMeeting struct {
	Index Index
}

func (c CopyMeeting) Execute(m *model.Model) (Result, error) {
	target, err := pick(m.SortedFilteredMeetings(), c.Index, MessageInvalidMeetingIndex)
	if err != nil {
		return Result{}, err
	}
	if err := m.Copy(target.String()); err != nil {
		return Result{}, fmt.Errorf("copy meeting: %w", err)
	}
	return Result{Feedback: fmt.Sprintf(MessageCopyMeetingSuccess, target)}, nil
}

// PeekMeeting fetches the page behind the link of the meeting at Index and reports its title.
type PeekMeeting struct {
	Index Index
}

func (c PeekMeeting) Execute(m *model.Model) (Result, error) {
	fetch, err := c.Stage(m)
	if err != nil {
		return Result{}, err
	}
	return fetch()
}

// Stage resolves the meeting; the returned step does the network lookup.
func (c PeekMeeting) Stage(m *model.Model) (func() (Result, error), error) {
	target, err := pick(m.SortedFilteredMeetings(), c.Index, MessageInvalidMeetingIndex)
	if err != nil {
		return nil, err
	}
	return func() (Result, error) {
		ctx, cancel := context.WithTimeout(context.Background(), peekTimeout)
		defer cancel()

		title, err := m.PageTitle(ctx, target.Link)
		if err != nil {
			return Result{}, errorf(MessagePeekMeetingFailure, target.Title, err)
		}
		return Result{Feedback: fmt.Sprintf(MessagePeekMeetingSuccess, target.Title, title)}, nil
	}, nil
}
