package domain

import (
	"regexp"
	"slices"
	"strings"
)

const TagConstraints = "Tags names should be alphanumeric"

var tagRe = regexp.MustCompile(`^[\p{L}\p{N}]+$`)

// Tag labels a person or a meeting.
type Tag string

func NewTag(s string) (Tag, error) {
	if !IsValidTag(s) {
		return "", &ConstraintError{Field: "Tag", Message: TagConstraints}
	}
	return Tag(s), nil
}

func IsValidTag(s string) bool { return tagRe.MatchString(s) }

// NewTagSet returns the tags sorted with duplicates removed. The result is never nil.
func NewTagSet(tags ...Tag) []Tag {
	out := make([]Tag, 0, len(tags))
	out = append(out, tags...)
	slices.Sort(out)
	return slices.Compact(out)
}

// TagsEqual compares two normalised tag sets.
func TagsEqual(a, b []Tag) bool {
	return slices.Equal(NewTagSet(a...), NewTagSet(b...))
}

// FormatTags renders tags as [a][b].
func FormatTags(tags []Tag) string {
	var sb strings.Builder
	for _, t := range tags {
		sb.WriteString("[")
		sb.WriteString(string(t))
		sb.WriteString("]")
	}
	return sb.String()
}
