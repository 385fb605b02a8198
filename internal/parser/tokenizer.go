package parser

import (
	"cmp"
	"slices"
	"strings"
)

// Prefix marks the start of an argument, e.g. n/ in "add n/John".
type Prefix string

const (
	PrefixName      Prefix = "n/"
	PrefixPhone     Prefix = "p/"
	PrefixEmail     Prefix = "e/"
	PrefixAddress   Prefix = "a/"
	PrefixTag       Prefix = "t/"
	PrefixLink      Prefix = "l/"
	PrefixStartTime Prefix = "st/"
	PrefixDuration  Prefix = "d/"
)

// ArgMultimap maps prefixes to the values that followed them, in input order.
type ArgMultimap struct {
	preamble string
	values   map[Prefix][]string
}

// Value returns the last value given for p.
func (a ArgMultimap) Value(p Prefix) (string, bool) {
	vs := a.values[p]
	if len(vs) == 0 {
		return "", false
	}
	return vs[len(vs)-1], true
}

// AllValues returns every value given for p.
func (a ArgMultimap) AllValues(p Prefix) []string {
	return append([]string(nil), a.values[p]...)
}

// Preamble is the text before the first prefix.
func (a ArgMultimap) Preamble() string { return a.preamble }

// HasAll reports whether every prefix was given at least once.
func (a ArgMultimap) HasAll(prefixes ...Prefix) bool {
	for _, p := range prefixes {
		if _, ok := a.Value(p); !ok {
			return false
		}
	}
	return true
}

type prefixPosition struct {
	prefix Prefix
	start  int
}

// Tokenize splits args into a preamble and prefixed values. A prefix only
// counts at the start of args or right after whitespace. Values are trimmed.
func Tokenize(args string, prefixes ...Prefix) ArgMultimap {
	var positions []prefixPosition
	for _, p := range prefixes {
		positions = append(positions, findPrefixPositions(args, p)...)
	}
	slices.SortFunc(positions, func(a, b prefixPosition) int { return cmp.Compare(a.start, b.start) })

	out := ArgMultimap{values: make(map[Prefix][]string)}
	end := len(args)
	if len(positions) > 0 {
		end = positions[0].start
	}
	out.preamble = strings.TrimSpace(args[:end])

	for i, pos := range positions {
		valueStart := pos.start + len(pos.prefix)
		valueEnd := len(args)
		if i+1 < len(positions) {
			valueEnd = positions[i+1].start
		}
		out.values[pos.prefix] = append(out.values[pos.prefix], strings.TrimSpace(args[valueStart:valueEnd]))
	}
	return out
}

func findPrefixPositions(args string, p Prefix) []prefixPosition {
	var out []prefixPosition
	for i := 0; i+len(p) <= len(args); i++ {
		if !strings.HasPrefix(args[i:], string(p)) {
			continue
		}
		if i > 0 && !isSpace(args[i-1]) {
			continue
		}
		out = append(out, prefixPosition{prefix: p, start: i})
		i += len(p) - 1
	}
	return out
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}
