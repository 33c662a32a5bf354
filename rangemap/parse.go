package rangemap

import (
	"errors"
	"fmt"
	"strings"

	"aoc/ws"
)

// ErrMalformed is wrapped by every parse failure.
var ErrMalformed = errors.New("malformed almanac")

// Almanac is a parsed puzzle input: the seed list and the pipeline to push
// it through.
type Almanac struct {
	Seeds    []int
	Pipeline Pipeline
}

// Spans reads the seed list as consecutive (start, length) pairs.
func (a *Almanac) Spans() ([]Span, error) {
	if len(a.Seeds)%2 != 0 {
		return nil, fmt.Errorf("%w: %d seeds cannot be paired into ranges", ErrMalformed, len(a.Seeds))
	}
	out := make([]Span, 0, len(a.Seeds)/2)
	for i := 0; i < len(a.Seeds); i += 2 {
		out = append(out, Span{Start: a.Seeds[i], Len: a.Seeds[i+1]})
	}
	return out, nil
}

// Parse reads an almanac:
//
//	seeds: 79 14 55 13
//
//	seed-to-soil map:
//	50 98 2
//	52 50 48
//
// Each rule line is "destination source length".
func Parse(input string) (*Almanac, error) {
	blocks := ws.Blocks(input)
	if len(blocks) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrMalformed)
	}

	head := blocks[0]
	label, rest, ok := ws.Cut(head[0], ":")
	if !ok || label != "seeds" {
		return nil, fmt.Errorf("%w: want seeds line, got %q", ErrMalformed, head[0])
	}
	seeds, err := ws.Ints(rest)
	if err != nil {
		return nil, fmt.Errorf("%w: seeds: %v", ErrMalformed, err)
	}
	if len(seeds) == 0 {
		return nil, fmt.Errorf("%w: no seeds", ErrMalformed)
	}
	a := &Almanac{Seeds: seeds}

	// The seeds line may be followed directly by a map without a blank line.
	stages := blocks[1:]
	if len(head) > 1 {
		stages = append([][]string{head[1:]}, stages...)
	}
	for _, b := range stages {
		st, err := parseStage(b)
		if err != nil {
			return nil, err
		}
		a.Pipeline = append(a.Pipeline, st)
	}
	return a, nil
}

func parseStage(lines []string) (Stage, error) {
	name, ok := strings.CutSuffix(lines[0], " map:")
	if !ok {
		return Stage{}, fmt.Errorf("%w: want map header, got %q", ErrMalformed, lines[0])
	}
	from, to, ok := strings.Cut(name, "-to-")
	if !ok {
		return Stage{}, fmt.Errorf("%w: bad map name %q", ErrMalformed, name)
	}
	st := Stage{From: from, To: to}
	for _, l := range lines[1:] {
		nums, err := ws.Ints(l)
		if err != nil {
			return Stage{}, fmt.Errorf("%w: %s map: %v", ErrMalformed, name, err)
		}
		if len(nums) != 3 {
			return Stage{}, fmt.Errorf("%w: %s map: want 3 numbers, got %q", ErrMalformed, name, l)
		}
		if nums[2] < 0 {
			return Stage{}, fmt.Errorf("%w: %s map: negative length in %q", ErrMalformed, name, l)
		}
		st.Rules = append(st.Rules, Rule{Dst: nums[0], Src: nums[1], Len: nums[2]})
	}
	return st, nil
}
