package main

import (
	"fmt"
	"strings"

	"aoc/ws"
)

type cubes struct {
	red, green, blue int
}

func (c cubes) fits(bag cubes) bool {
	return c.red <= bag.red && c.green <= bag.green && c.blue <= bag.blue
}

func (c cubes) power() int {
	return c.red * c.green * c.blue
}

type game struct {
	id int
	// seen is the most cubes of each color shown in any one draw.
	seen cubes
}

// parseGame parses "Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue".
func parseGame(line string) (game, error) {
	var g game
	head, draws, ok := ws.Cut(line, ":")
	if !ok {
		return g, fmt.Errorf("bad game %q", line)
	}
	label, id, _ := ws.Cut(head, " ")
	if label != "Game" {
		return g, fmt.Errorf("bad game header %q", head)
	}
	var err error
	if g.id, err = ws.Int(id); err != nil {
		return g, fmt.Errorf("game id: %w", err)
	}
	for _, draw := range strings.Split(draws, ";") {
		for _, shown := range strings.Split(draw, ",") {
			num, color, _ := ws.Cut(shown, " ")
			n, err := ws.Int(num)
			if err != nil {
				return g, fmt.Errorf("game %d: %w", g.id, err)
			}
			switch color {
			case "red":
				g.seen.red = max(g.seen.red, n)
			case "green":
				g.seen.green = max(g.seen.green, n)
			case "blue":
				g.seen.blue = max(g.seen.blue, n)
			default:
				return g, fmt.Errorf("game %d: unknown color %q", g.id, color)
			}
		}
	}
	return g, nil
}

func parseGames(lines []string) ([]game, error) {
	var out []game
	for _, l := range lines {
		if strings.TrimSpace(l) == "" {
			continue
		}
		g, err := parseGame(l)
		if err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, nil
}
