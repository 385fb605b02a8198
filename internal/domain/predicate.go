package domain

import (
	"cmp"
	"slices"
	"strings"
)

// ContainsWordIgnoreCase reports whether sentence has a whitespace-separated
// word equal to word, ignoring case.
func ContainsWordIgnoreCase(sentence, word string) bool {
	word = strings.TrimSpace(word)
	if word == "" {
		return false
	}
	for _, w := range strings.Fields(sentence) {
		if strings.EqualFold(w, word) {
			return true
		}
	}
	return false
}

// NameContainsKeywords matches persons whose name has any of the keywords as a word.
type NameContainsKeywords struct {
	Keywords []string
}

func (p NameContainsKeywords) Test(person Person) bool {
	for _, k := range p.Keywords {
		if ContainsWordIgnoreCase(string(person.Name), k) {
			return true
		}
	}
	return false
}

func (p NameContainsKeywords) Equal(other NameContainsKeywords) bool {
	return slices.Equal(p.Keywords, other.Keywords)
}

// MeetingContainsKeywords matches meetings whose title has any of the keywords as a word.
type MeetingContainsKeywords struct {
	Keywords []string
}

func (p MeetingContainsKeywords) Test(m Meeting) bool {
	return p.Matchness(m) > 0
}

// Matchness counts the distinct keywords found in the meeting title.
// Keywords differing only in case count once.
func (p MeetingContainsKeywords) Matchness(m Meeting) int {
	n := 0
	for _, k := range distinctFold(p.Keywords) {
		if ContainsWordIgnoreCase(string(m.Title), k) {
			n++
		}
	}
	return n
}

func distinctFold(keywords []string) []string {
	seen := make(map[string]bool, len(keywords))
	out := make([]string, 0, len(keywords))
	for _, k := range keywords {
		key := strings.ToLower(strings.TrimSpace(k))
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, k)
	}
	return out
}

func (p MeetingContainsKeywords) Equal(other MeetingContainsKeywords) bool {
	return slices.Equal(p.Keywords, other.Keywords)
}

// MeetingComparator orders meetings for display. Negative means a sorts first.
type MeetingComparator func(a, b Meeting) int

// KeywordMatchness sorts meetings matching more keywords first.
func KeywordMatchness(keywords []string) MeetingComparator {
	p := MeetingContainsKeywords{Keywords: distinctFold(keywords)}
	return func(a, b Meeting) int {
		return cmp.Compare(p.Matchness(b), p.Matchness(a))
	}
}

// ByStartTime sorts earlier meetings first.
func ByStartTime(a, b Meeting) int {
	return a.StartTime.Compare(b.StartTime.Time)
}

// ThenBy falls back to next when c considers two meetings equal.
func (c MeetingComparator) ThenBy(next MeetingComparator) MeetingComparator {
	return func(a, b Meeting) int {
		if r := c(a, b); r != 0 {
			return r
		}
		return next(a, b)
	}
}
