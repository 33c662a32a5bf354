package camelcards

import (
	"errors"
	"fmt"
	"strings"

	"aoc/ws"
)

// ErrMalformed is wrapped by every parse failure.
var ErrMalformed = errors.New("malformed hand")

// ParseHand parses "CARDS BID", e.g. "32T3K 765".
func ParseHand(line string) (Hand, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return Hand{}, fmt.Errorf("%w: want cards and bid, got %q", ErrMalformed, line)
	}
	var h Hand
	cards := fields[0]
	if len(cards) != len(h.Cards) {
		return Hand{}, fmt.Errorf("%w: %q has %d cards, want %d", ErrMalformed, cards, len(cards), len(h.Cards))
	}
	for i := 0; i < len(cards); i++ {
		if strings.IndexByte(Symbols, cards[i]) < 0 {
			return Hand{}, fmt.Errorf("%w: unknown card %q in %q", ErrMalformed, cards[i], cards)
		}
		h.Cards[i] = Card(cards[i])
	}
	bid, err := ws.Int(fields[1])
	if err != nil {
		return Hand{}, fmt.Errorf("%w: bid for %s: %v", ErrMalformed, cards, err)
	}
	h.Bid = bid
	return h, nil
}

// ParseHands parses one hand per non-blank line. The first bad line fails
// the whole input.
func ParseHands(input string) ([]Hand, error) {
	var hands []Hand
	for i, l := range ws.Lines(input) {
		if l == "" {
			continue
		}
		h, err := ParseHand(l)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		hands = append(hands, h)
	}
	return hands, nil
}
