package main

import (
	"fmt"
	"slices"
	"strings"

	"aoc"
	"aoc/ws"
)

type network struct {
	turns string
	nodes map[string][2]string // node -> {left, right}
}

// parseNetwork parses the turn list and the "AAA = (BBB, CCC)" node lines.
func parseNetwork(input string) (*network, error) {
	blocks := ws.Blocks(input)
	if len(blocks) != 2 || len(blocks[0]) != 1 {
		return nil, fmt.Errorf("want a turn line and a node block, got %d blocks", len(blocks))
	}
	n := &network{turns: blocks[0][0], nodes: map[string][2]string{}}
	if strings.Trim(n.turns, "LR") != "" {
		return nil, fmt.Errorf("bad turns %q", n.turns)
	}
	for _, l := range blocks[1] {
		name, rest, ok := ws.Cut(l, "=")
		if !ok {
			return nil, fmt.Errorf("bad node %q", l)
		}
		rest, ok = strings.CutPrefix(rest, "(")
		if ok {
			rest, ok = strings.CutSuffix(rest, ")")
		}
		left, right, found := ws.Cut(rest, ",")
		if !ok || !found {
			return nil, fmt.Errorf("bad node %q", l)
		}
		n.nodes[name] = [2]string{left, right}
	}
	return n, nil
}

// steps walks from start, following the turns over and over, until done
// reports true for the current node.
func (n *network) steps(start string, done func(string) bool) (int, error) {
	// A walk that repeats a (node, turn) state never finishes.
	limit := len(n.turns) * len(n.nodes)
	cur := start
	count := 0
	for ; !done(cur); count++ {
		if count > limit {
			return 0, fmt.Errorf("%s never finishes", start)
		}
		next, ok := n.nodes[cur]
		if !ok {
			return 0, fmt.Errorf("unknown node %q", cur)
		}
		if n.turns[count%len(n.turns)] == 'L' {
			cur = next[0]
		} else {
			cur = next[1]
		}
	}
	return count, nil
}

// ghostSteps walks every node ending in A at once until all stand on nodes
// ending in Z. Each ghost's path loops with the period of its first arrival,
// so the answer is the LCM of the single walks.
func (n *network) ghostSteps() (int, error) {
	var starts []string
	for name := range n.nodes {
		if strings.HasSuffix(name, "A") {
			starts = append(starts, name)
		}
	}
	if len(starts) == 0 {
		return 0, fmt.Errorf("no start nodes")
	}
	slices.Sort(starts)
	counts := make([]int, len(starts))
	for i, s := range starts {
		c, err := n.steps(s, func(node string) bool { return strings.HasSuffix(node, "Z") })
		if err != nil {
			return 0, err
		}
		counts[i] = c
	}
	return aoc.LCM(counts...), nil
}
