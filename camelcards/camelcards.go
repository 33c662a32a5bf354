// Package camelcards ranks five-card hands and totals their winnings.
package camelcards

import (
	"cmp"
	"slices"
)

// Symbols is the card alphabet, in plain rank order.
const Symbols = "23456789TJQKA"

// Card is one symbol from Symbols.
type Card byte

// Hand is five cards and the bid placed on them.
type Hand struct {
	Cards [5]Card
	Bid   int
}

func (h Hand) String() string {
	return string(h.Cards[:])
}

//go:generate go tool stringer -type=Category

// Category is the shape of a hand. Higher values beat lower ones.
type Category int

const (
	HighCard Category = iota
	OnePair
	TwoPair
	ThreeOfAKind
	FullHouse
	FourOfAKind
	FiveOfAKind
)

// Order is a ranking strategy: the rank of each symbol and, optionally, the
// symbol that acts as a wildcard.
type Order struct {
	rank     [256]int
	wildcard Card // 0 means none
}

// NewOrder returns an Order ranking symbols from lowest to highest as given.
// If wildcard is non-zero it must appear in symbols.
func NewOrder(symbols string, wildcard Card) *Order {
	o := &Order{wildcard: wildcard}
	for i := range o.rank {
		o.rank[i] = -1
	}
	for i := 0; i < len(symbols); i++ {
		o.rank[symbols[i]] = i
	}
	if wildcard != 0 && o.rank[wildcard] < 0 {
		panic("camelcards: wildcard " + string(rune(wildcard)) + " not in " + symbols)
	}
	return o
}

var (
	// Plain ranks cards as printed and has no wildcard.
	Plain = NewOrder(Symbols, 0)
	// Wildcard treats J as a joker that ranks lowest.
	Wildcard = NewOrder("J23456789TQKA", 'J')
)

// Rank returns c's position in o, lowest first.
func (o *Order) Rank(c Card) int {
	return o.rank[c]
}

// Category classifies h. With a wildcard, the jokers join whichever card is
// already most common; five jokers are five of a kind.
func (o *Order) Category(h Hand) Category {
	var counts [256]int
	jokers := 0
	for _, c := range h.Cards {
		if o.wildcard != 0 && c == o.wildcard {
			jokers++
			continue
		}
		counts[c]++
	}
	groups := make([]int, 0, len(h.Cards))
	for _, n := range counts {
		if n > 0 {
			groups = append(groups, n)
		}
	}
	if len(groups) == 0 {
		return FiveOfAKind
	}
	slices.Sort(groups)
	slices.Reverse(groups)
	groups[0] += jokers

	second := 0
	if len(groups) > 1 {
		second = groups[1]
	}
	switch {
	case groups[0] == 5:
		return FiveOfAKind
	case groups[0] == 4:
		return FourOfAKind
	case groups[0] == 3 && second == 2:
		return FullHouse
	case groups[0] == 3:
		return ThreeOfAKind
	case groups[0] == 2 && second == 2:
		return TwoPair
	case groups[0] == 2:
		return OnePair
	}
	return HighCard
}

// Compare orders hands by category, then card by card from the left.
func (o *Order) Compare(a, b Hand) int {
	if c := cmp.Compare(o.Category(a), o.Category(b)); c != 0 {
		return c
	}
	return o.compareCards(a, b)
}

func (o *Order) compareCards(a, b Hand) int {
	for i := range a.Cards {
		if c := cmp.Compare(o.rank[a.Cards[i]], o.rank[b.Cards[i]]); c != 0 {
			return c
		}
	}
	return 0
}

// Winnings sorts hands weakest first and sums rank*bid, ranks starting at 1.
// Equal hands keep their input order. hands is not modified.
func (o *Order) Winnings(hands []Hand) int {
	type scored struct {
		Hand
		cat Category
	}
	sorted := make([]scored, len(hands))
	for i, h := range hands {
		sorted[i] = scored{h, o.Category(h)}
	}
	slices.SortStableFunc(sorted, func(a, b scored) int {
		if c := cmp.Compare(a.cat, b.cat); c != 0 {
			return c
		}
		return o.compareCards(a.Hand, b.Hand)
	})
	total := 0
	for i, h := range sorted {
		total += (i + 1) * h.Bid
	}
	return total
}
