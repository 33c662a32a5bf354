package main

import (
	"fmt"
	"math"
	"strings"

	"aoc"
	"aoc/ws"
)

type race struct {
	time, dist int
}

func (r race) beats(hold int) bool {
	return (r.time-hold)*hold > r.dist
}

// ways returns how many whole-millisecond hold times beat the record.
// They are the integers strictly between the roots of h^2 - t*h + d = 0.
func (r race) ways() int {
	if r.time*r.time < 4*r.dist {
		return 0
	}
	hi, lo := aoc.SolveQuad(1, -r.time, r.dist)
	// Nudge the float roots onto the exact integer bounds.
	first := int(math.Floor(lo)) + 1
	for first > 0 && r.beats(first-1) {
		first--
	}
	for first <= r.time && !r.beats(first) {
		first++
	}
	last := int(math.Ceil(hi)) - 1
	for last < r.time && r.beats(last+1) {
		last++
	}
	for last >= first && !r.beats(last) {
		last--
	}
	if last < first {
		return 0
	}
	return last - first + 1
}

// parseRaces reads the Time and Distance lines. With kerning, the digits on
// each line form a single number.
func parseRaces(lines []string, kerning bool) ([]race, error) {
	var times, dists []int
	for _, l := range lines {
		label, rest, ok := ws.Cut(l, ":")
		if !ok {
			continue
		}
		if kerning {
			rest = strings.Join(strings.Fields(rest), "")
		}
		nums, err := ws.Ints(rest)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", label, err)
		}
		switch label {
		case "Time":
			times = nums
		case "Distance":
			dists = nums
		default:
			return nil, fmt.Errorf("unknown line %q", label)
		}
	}
	if len(times) == 0 || len(times) != len(dists) {
		return nil, fmt.Errorf("%d times but %d distances", len(times), len(dists))
	}
	races := make([]race, len(times))
	for i := range times {
		races[i] = race{time: times[i], dist: dists[i]}
	}
	return races, nil
}
