package main

import (
	"aoc"

	"tailscale.com/util/deephash"
)

// partNumber is a number in the engine schematic and the symbols touching it.
type partNumber struct {
	value   int
	symbols []aoc.Pt
}

func isSymbol(b byte) bool {
	return b != '.' && !aoc.IsDigit(b)
}

// scans caches scanSchematic by grid contents; both parts scan the same
// schematic.
var scans = map[deephash.Sum][]partNumber{}

// scanSchematic returns every number in g, left to right, top to bottom.
func scanSchematic(g aoc.Grid[byte]) []partNumber {
	key := g.Hash()
	if pns, ok := scans[key]; ok {
		return pns
	}
	var pns []partNumber
	for y, row := range g {
		for x := 0; x < len(row); {
			if !aoc.IsDigit(row[x]) {
				x++
				continue
			}
			var pn partNumber
			seen := map[aoc.Pt]bool{}
			for ; x < len(row) && aoc.IsDigit(row[x]); x++ {
				pn.value = pn.value*10 + int(row[x]-'0')
				aoc.Pt{X: x, Y: y}.ForNeighbors(func(n aoc.Pt) bool {
					if b, ok := g.AtOk(n); ok && isSymbol(b) && !seen[n] {
						seen[n] = true
						pn.symbols = append(pn.symbols, n)
					}
					return true
				})
			}
			pns = append(pns, pn)
		}
	}
	scans[key] = pns
	return pns
}

// gearRatios sums the product of the two numbers around every '*' that
// touches exactly two numbers.
func gearRatios(g aoc.Grid[byte]) int {
	gears := map[aoc.Pt][]int{}
	for _, pn := range scanSchematic(g) {
		for _, p := range pn.symbols {
			if g.At(p) == '*' {
				gears[p] = append(gears[p], pn.value)
			}
		}
	}
	sum := 0
	for _, nums := range gears {
		if len(nums) == 2 {
			sum += nums[0] * nums[1]
		}
	}
	return sum
}
