package parser

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/pbaille/meetbook/internal/command"
	"github.com/pbaille/meetbook/internal/domain"
)

const MessageInvalidIndex = "Index is not a non-zero unsigned integer."

// Error is a rejected command line. Its message is shown to the user.
type Error struct {
	msg string
	err error
}

func (e *Error) Error() string { return e.msg }

func (e *Error) Unwrap() error { return e.err }

func newError(msg string) *Error { return &Error{msg: msg} }

// invalidFormat wraps cause in the generic bad-format message for usage.
func invalidFormat(usage string, cause error) *Error {
	return &Error{msg: fmt.Sprintf(command.MessageInvalidCommandFormat, usage), err: cause}
}

// IsParseError reports whether err came from parsing user input.
func IsParseError(err error) bool {
	var pe *Error
	return errors.As(err, &pe)
}

// constraint turns a domain validation failure into a parse error.
func constraint(err error) error {
	if err == nil {
		return nil
	}
	return &Error{msg: err.Error(), err: err}
}

// ParseIndex parses a 1-based index.
func ParseIndex(s string) (command.Index, error) {
	s = strings.TrimSpace(s)
	n, err := strconv.ParseUint(s, 10, 31)
	if err != nil || n == 0 {
		return 0, newError(MessageInvalidIndex)
	}
	return command.Index(n), nil
}

func ParseName(s string) (domain.Name, error) {
	v, err := domain.NewName(strings.TrimSpace(s))
	return v, constraint(err)
}

func ParsePhone(s string) (domain.Phone, error) {
	v, err := domain.NewPhone(strings.TrimSpace(s))
	return v, constraint(err)
}

func ParseEmail(s string) (domain.Email, error) {
	v, err := domain.NewEmail(strings.TrimSpace(s))
	return v, constraint(err)
}

func ParseAddress(s string) (domain.Address, error) {
	v, err := domain.NewAddress(strings.TrimSpace(s))
	return v, constraint(err)
}

func ParseTag(s string) (domain.Tag, error) {
	v, err := domain.NewTag(strings.TrimSpace(s))
	return v, constraint(err)
}

// ParseTags parses every tag value; the result is a normalised set.
func ParseTags(values []string) ([]domain.Tag, error) {
	tags := make([]domain.Tag, 0, len(values))
	for _, v := range values {
		t, err := ParseTag(v)
		if err != nil {
			return nil, err
		}
		tags = append(tags, t)
	}
	return domain.NewTagSet(tags...), nil
}

func ParseTitle(s string) (domain.Title, error) {
	v, err := domain.NewTitle(strings.TrimSpace(s))
	return v, constraint(err)
}

func ParseLink(s string) (domain.Link, error) {
	v, err := domain.NewLink(strings.TrimSpace(s))
	return v, constraint(err)
}

func ParseStartTime(s string) (domain.StartTime, error) {
	v, err := domain.NewStartTime(strings.TrimSpace(s))
	return v, constraint(err)
}

func ParseDuration(s string) (domain.Duration, error) {
	v, err := domain.NewDuration(s)
	return v, constraint(err)
}

// parseTagsForEdit returns nil when no t/ was given. A single empty t/ clears all tags.
func parseTagsForEdit(values []string) (*[]domain.Tag, error) {
	if len(values) == 0 {
		return nil, nil
	}
	if len(values) == 1 && values[0] == "" {
		empty := []domain.Tag{}
		return &empty, nil
	}
	tags, err := ParseTags(values)
	if err != nil {
		return nil, err
	}
	return &tags, nil
}

// keywords splits find arguments, rejecting an empty list.
func keywords(args, usage string) ([]string, error) {
	fields := strings.Fields(args)
	if len(fields) == 0 {
		return nil, invalidFormat(usage, nil)
	}
	return fields, nil
}

// index parses an argument string that must be a lone index.
func index(args, usage string) (command.Index, error) {
	i, err := ParseIndex(args)
	if err != nil {
		return 0, invalidFormat(usage, err)
	}
	return i, nil
}
