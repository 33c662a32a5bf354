package main

import (
	_ "embed"

	"aoc"
)

func main() {
	aoc.Run(2015, source, &solver{})
}

//go:embed main.go
var source []byte

type solver struct {
	*aoc.Puzzle
}

// floor moves one floor up for '(' and one down for ')'. Anything else is
// ignored.
func floor(f int, r rune) int {
	switch r {
	case '(':
		return f + 1
	case ')':
		return f - 1
	}
	return f
}

/*
want=3

(()(()(
*/
func (s solver) D1p1() any {
	f := 0
	for _, r := range s.Text() {
		f = floor(f, r)
	}
	return f
}

/*
want=5

()())
*/
func (s solver) D1p2() any {
	return basementAt(s.Text())
}

// basementAt returns the 1-based position of the instruction that first
// reaches floor -1, or 0 if none does.
func basementAt(in string) int {
	f := 0
	for i, r := range in {
		if f = floor(f, r); f == -1 {
			return i + 1
		}
	}
	return 0
}
