package main

import (
	"fmt"
	"strings"

	"aoc/ws"
)

// cardMatches returns, per scratchcard, how many of its numbers are winning
// numbers.
func cardMatches(lines []string) ([]int, error) {
	var out []int
	for _, l := range lines {
		if strings.TrimSpace(l) == "" {
			continue
		}
		_, body, ok := ws.Cut(l, ":")
		if !ok {
			return nil, fmt.Errorf("bad card %q", l)
		}
		winStr, haveStr, ok := ws.Cut(body, "|")
		if !ok {
			return nil, fmt.Errorf("bad card %q", l)
		}
		win, err := ws.Ints(winStr)
		if err != nil {
			return nil, err
		}
		have, err := ws.Ints(haveStr)
		if err != nil {
			return nil, err
		}
		winning := make(map[int]bool, len(win))
		for _, n := range win {
			winning[n] = true
		}
		n := 0
		for _, h := range have {
			if winning[h] {
				n++
				winning[h] = false
			}
		}
		out = append(out, n)
	}
	return out, nil
}

// cardCopies returns how many copies of each card end up being held when
// every match wins one copy of each following card.
func cardCopies(matches []int) []int {
	copies := make([]int, len(matches))
	for i := range copies {
		copies[i] = 1
	}
	for i, n := range matches {
		for j := i + 1; j <= i+n && j < len(copies); j++ {
			copies[j] += copies[i]
		}
	}
	return copies
}
