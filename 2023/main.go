package main

import (
	_ "embed"

	"aoc"
	"aoc/camelcards"
	"aoc/rangemap"
)

func main() {
	aoc.Run(2023, source, &solver{})
}

//go:embed main.go
var source []byte

type solver struct {
	*aoc.Puzzle
}

/*
want=142

1abc2
pqr3stu8vwx
a1b2c3d4e5f
treb7uchet
*/
func (s solver) D1p1() any {
	return calibrate(s.Lines(), false)
}

/*
want=281

two1nine
eightwothree
abcone2threexyz
xtwone3four
4nineeightseven2
zoneight234
7pqrstsixteen
*/
func (s solver) D1p2() any {
	return calibrate(s.Lines(), true)
}

/*
want=8

Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green
Game 2: 1 blue, 2 green; 3 green, 4 blue, 1 red; 1 green, 1 blue
Game 3: 8 green, 6 blue, 20 red; 5 blue, 4 red, 13 green; 5 green, 1 red
Game 4: 1 green, 3 red, 6 blue; 3 green, 6 red; 3 green, 15 blue, 14 red
Game 5: 6 red, 1 blue, 3 green; 2 blue, 1 red, 2 green
*/
func (s solver) D2p1() any {
	bag := cubes{red: 12, green: 13, blue: 14}
	sum := 0
	for _, g := range aoc.MustGet(parseGames(s.Lines())) {
		if g.seen.fits(bag) {
			sum += g.id
		}
	}
	return sum
}

// want=2286
func (s solver) D2p2() any {
	sum := 0
	for _, g := range aoc.MustGet(parseGames(s.Lines())) {
		sum += g.seen.power()
	}
	return sum
}

/*
want=4361

467..114..
...*......
..35..633.
......#...
617*......
.....+.58.
..592.....
......755.
...$.*....
.664.598..
*/
func (s solver) D3p1() any {
	sum := 0
	for _, pn := range scanSchematic(aoc.ByteGrid(s.Lines())) {
		if len(pn.symbols) > 0 {
			sum += pn.value
		}
	}
	return sum
}

// want=467835
func (s solver) D3p2() any {
	return gearRatios(aoc.ByteGrid(s.Lines()))
}

/*
want=13

Card 1: 41 48 83 86 17 | 83 86  6 31 17  9 48 53
Card 2: 13 32 20 16 61 | 61 30 68 82 17 32 24 19
Card 3:  1 21 53 59 44 | 69 82 63 72 16 21 14  1
Card 4: 41 92 73 84 69 | 59 84 76 51 58  5 54 83
Card 5: 87 83 26 28 32 | 88 30 70 12 93 22 82 36
Card 6: 31 18 13 56 72 | 74 77 10 23 35 67 36 11
*/
func (s solver) D4p1() any {
	sum := 0
	for _, n := range aoc.MustGet(cardMatches(s.Lines())) {
		if n > 0 {
			sum += 1 << (n - 1)
		}
	}
	return sum
}

// want=30
func (s solver) D4p2() any {
	return aoc.Sum(cardCopies(aoc.MustGet(cardMatches(s.Lines())))...)
}

/*
want=35

seeds: 79 14 55 13

seed-to-soil map:
50 98 2
52 50 48

soil-to-fertilizer map:
0 15 37
37 52 2
39 0 15

fertilizer-to-water map:
49 53 8
0 11 42
42 0 7
57 7 4

water-to-light map:
88 18 7
18 25 70

light-to-temperature map:
45 77 23
81 45 19
68 64 13

temperature-to-humidity map:
0 69 1
1 0 69

humidity-to-location map:
60 56 37
56 93 4
*/
func (s solver) D5p1() any {
	a := aoc.MustGet(rangemap.Parse(s.Text()))
	return a.Pipeline.MinOf(a.Seeds)
}

// want=46
func (s solver) D5p2() any {
	a := aoc.MustGet(rangemap.Parse(s.Text()))
	spans := aoc.MustGet(a.Spans())
	s.Debugf("interval propagation gives %d", a.Pipeline.MinOverSpansSplit(spans))
	return a.Pipeline.MinOverSpans(spans)
}

/*
want=288

Time:      7  15   30
Distance:  9  40  200
*/
func (s solver) D6p1() any {
	races := aoc.MustGet(parseRaces(s.Lines(), false))
	return aoc.ParallelMapFold(races, race.ways, func(acc, n int) int {
		return acc * n
	}, 1)
}

// want=71503
func (s solver) D6p2() any {
	races := aoc.MustGet(parseRaces(s.Lines(), true))
	return races[0].ways()
}

/*
want=6440

32T3K 765
T55J5 684
KK677 28
KTJJT 220
QQQJA 483
*/
func (s solver) D7p1() any {
	hands := aoc.MustGet(camelcards.ParseHands(s.Text()))
	return camelcards.Plain.Winnings(hands)
}

// want=5905
func (s solver) D7p2() any {
	hands := aoc.MustGet(camelcards.ParseHands(s.Text()))
	return camelcards.Wildcard.Winnings(hands)
}

/*
want=6

LLR

AAA = (BBB, BBB)
BBB = (AAA, ZZZ)
ZZZ = (ZZZ, ZZZ)
*/
func (s solver) D8p1() any {
	n := aoc.MustGet(parseNetwork(s.Text()))
	return aoc.MustGet(n.steps("AAA", func(node string) bool { return node == "ZZZ" }))
}

/*
want=6

LR

11A = (11B, XXX)
11B = (XXX, 11Z)
11Z = (11B, XXX)
22A = (22B, XXX)
22B = (22C, 22C)
22C = (22Z, 22Z)
22Z = (22B, 22B)
XXX = (XXX, XXX)
*/
func (s solver) D8p2() any {
	n := aoc.MustGet(parseNetwork(s.Text()))
	return aoc.MustGet(n.ghostSteps())
}
