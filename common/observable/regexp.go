package observable

import (
	"fmt"
	"slices"

	regexp "github.com/dlclark/regexp2"
)

// RegexpGenerator scans a buffer it owns and yields one match per Next.
// When the pattern has capture groups the first group is yielded,
// otherwise the whole match.
//
// The scan position is kept as an offset into the buffer rather than as a
// slice of it, so a clone only needs a copy of the buffer to be independent.
type RegexpGenerator struct {
	pattern *regexp.Regexp
	buffer  []rune
	cursor  int
}

func NewRegexpGenerator(input string, pattern string) (*RegexpGenerator, error) {
	re, err := regexp.Compile(pattern, regexp.None)
	if err != nil {
		return nil, fmt.Errorf("compile pattern %q: %w", pattern, err)
	}
	return &RegexpGenerator{
		pattern: re,
		buffer:  []rune(input),
	}, nil
}

func (g *RegexpGenerator) Next() (string, error) {
	if g.cursor > len(g.buffer) {
		return "", ErrStreamExhausted
	}

	match, err := g.pattern.FindRunesMatchStartingAt(g.buffer, g.cursor)
	if err != nil {
		return "", fmt.Errorf("match at %d: %w", g.cursor, err)
	}
	if match == nil {
		return "", ErrStreamExhausted
	}

	end := match.Index + match.Length
	if match.Length == 0 {
		// step over empty matches
		end++
	}
	g.cursor = end

	if groups := match.Groups(); len(groups) > 1 {
		return groups[1].String(), nil
	}
	return match.String(), nil
}

func (g *RegexpGenerator) Clone() Generator[string] {
	return &RegexpGenerator{
		pattern: g.pattern,
		buffer:  slices.Clone(g.buffer),
		cursor:  g.cursor,
	}
}

// Offset returns the rune offset the next scan starts at.
func (g *RegexpGenerator) Offset() int {
	return g.cursor
}

// Rest returns the part of the buffer not consumed yet.
func (g *RegexpGenerator) Rest() string {
	if g.cursor >= len(g.buffer) {
		return ""
	}
	return string(g.buffer[g.cursor:])
}
