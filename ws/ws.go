// Package ws holds the whitespace-trimming tokenizers shared by the puzzle
// parsers.
package ws

import (
	"fmt"
	"strconv"
	"strings"
)

// Lines splits s into lines with surrounding whitespace trimmed from each.
// Leading and trailing blank lines are dropped; interior blank lines are kept
// as empty strings since several inputs use them as separators.
func Lines(s string) []string {
	s = strings.Trim(s, "\r\n\t ")
	if s == "" {
		return nil
	}
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSpace(l)
	}
	return lines
}

// Blocks splits s into groups of lines separated by one or more blank lines.
func Blocks(s string) [][]string {
	var (
		out [][]string
		cur []string
	)
	for _, l := range Lines(s) {
		if l == "" {
			if len(cur) > 0 {
				out = append(out, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, l)
	}
	if len(cur) > 0 {
		out = append(out, cur)
	}
	return out
}

// Cut is strings.Cut on the trimmed s, with both halves trimmed. ok is false
// if sep is missing.
func Cut(s, sep string) (before, after string, ok bool) {
	before, after, ok = strings.Cut(strings.TrimSpace(s), sep)
	return strings.TrimSpace(before), strings.TrimSpace(after), ok
}

// Int parses a single trimmed base-10 integer.
func Int(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("not an integer: %q", s)
	}
	return n, nil
}

// Ints parses every whitespace-separated field of s as an integer.
func Ints(s string) ([]int, error) {
	fields := strings.Fields(s)
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := Int(f)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}
