package main

import (
	"strings"

	"aoc"
)

var digitWords = [...]string{"zero", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}

// digitAt returns the digit starting s, or -1. With words, spelled-out
// digits count too.
func digitAt(s string, words bool) int {
	if aoc.IsDigit(s[0]) {
		return int(s[0] - '0')
	}
	if words {
		for d, w := range digitWords {
			if strings.HasPrefix(s, w) {
				return d
			}
		}
	}
	return -1
}

// calibration is the first and last digit of line read as a two-digit
// number. Spelled-out digits may overlap ("eightwo" is 8 then 2).
func calibration(line string, words bool) int {
	first, last := -1, -1
	for i := range len(line) {
		d := digitAt(line[i:], words)
		if d < 0 {
			continue
		}
		if first < 0 {
			first = d
		}
		last = d
	}
	if first < 0 {
		return 0
	}
	return first*10 + last
}

func calibrate(lines []string, words bool) int {
	sum := 0
	for _, l := range lines {
		sum += calibration(l, words)
	}
	return sum
}
