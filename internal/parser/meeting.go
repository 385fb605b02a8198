package parser

import (
	"github.com/pbaille/meetbook/internal/command"
	"github.com/pbaille/meetbook/internal/domain"
)

var meetingPrefixes = []Prefix{PrefixName, PrefixLink, PrefixStartTime, PrefixDuration, PrefixTag}

func parseAddMeeting(args string) (command.Command, error) {
	am := Tokenize(args, meetingPrefixes...)
	if !am.HasAll(PrefixName, PrefixLink, PrefixStartTime, PrefixDuration) || am.Preamble() != "" {
		return nil, invalidFormat(command.AddMeetingUsage, nil)
	}

	title, _ := am.Value(PrefixName)
	link, _ := am.Value(PrefixLink)
	start, _ := am.Value(PrefixStartTime)
	duration, _ := am.Value(PrefixDuration)

	ti, err := ParseTitle(title)
	if err != nil {
		return nil, err
	}
	l, err := ParseLink(link)
	if err != nil {
		return nil, err
	}
	st, err := ParseStartTime(start)
	if err != nil {
		return nil, err
	}
	d, err := ParseDuration(duration)
	if err != nil {
		return nil, err
	}
	tags, err := ParseTags(am.AllValues(PrefixTag))
	if err != nil {
		return nil, err
	}
	return command.AddMeeting{Meeting: domain.NewMeeting(ti, l, st, d, tags)}, nil
}

func parseEditMeeting(args string) (command.Command, error) {
	am := Tokenize(args, meetingPrefixes...)
	idx, err := index(am.Preamble(), command.EditMeetingUsage)
	if err != nil {
		return nil, err
	}

	var d command.EditMeetingDescriptor
	if v, ok := am.Value(PrefixName); ok {
		ti, err := ParseTitle(v)
		if err != nil {
			return nil, err
		}
		d.Title = &ti
	}
	if v, ok := am.Value(PrefixLink); ok {
		l, err := ParseLink(v)
		if err != nil {
			return nil, err
		}
		d.Link = &l
	}
	if v, ok := am.Value(PrefixStartTime); ok {
		st, err := ParseStartTime(v)
		if err != nil {
			return nil, err
		}
		d.StartTime = &st
	}
	if v, ok := am.Value(PrefixDuration); ok {
		du, err := ParseDuration(v)
		if err != nil {
			return nil, err
		}
		d.Duration = &du
	}
	if d.Tags, err = parseTagsForEdit(am.AllValues(PrefixTag)); err != nil {
		return nil, err
	}

	if !d.IsAnyFieldEdited() {
		return nil, newError(command.MessageNotEdited)
	}
	return command.EditMeeting{Index: idx, Descriptor: d}, nil
}

func parseDeleteMeeting(args string) (command.Command, error) {
	idx, err := index(args, command.DeleteMeetingUsage)
	if err != nil {
		return nil, err
	}
	return command.DeleteMeeting{Index: idx}, nil
}

func parseCopyMeeting(args string) (command.Command, error) {
	idx, err := index(args, command.CopyMeetingUsage)
	if err != nil {
		return nil, err
	}
	return command.CopyMeeting{Index: idx}, nil
}

func parsePeekMeeting(args string) (command.Command, error) {
	idx, err := index(args, command.PeekMeetingUsage)
	if err != nil {
		return nil, err
	}
	return command.PeekMeeting{Index: idx}, nil
}

func parseFindMeetings(args string) (command.Command, error) {
	kw, err := keywords(args, command.FindMeetingUsage)
	if err != nil {
		return nil, err
	}
	return command.FindMeetings{Predicate: domain.MeetingContainsKeywords{Keywords: kw}}, nil
}
