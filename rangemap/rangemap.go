// Package rangemap translates integers through an ordered pipeline of
// piecewise-linear mapping tables.
package rangemap

import (
	"context"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Rule maps the half-open interval [Src, Src+Len) onto [Dst, Dst+Len).
type Rule struct {
	Src, Dst, Len int
}

// Contains reports whether x lies in the rule's source interval.
func (r Rule) Contains(x int) bool {
	return x >= r.Src && x < r.Src+r.Len
}

// Stage is a single mapping table.
type Stage struct {
	From, To string
	Rules    []Rule
}

// Apply returns x translated by the first rule containing it. Values no rule
// covers pass through unchanged.
func (s Stage) Apply(x int) int {
	for _, r := range s.Rules {
		if r.Contains(x) {
			return r.Dst + (x - r.Src)
		}
	}
	return x
}

// Pipeline is an ordered list of stages, applied left to right.
type Pipeline []Stage

// Apply passes x through every stage in order.
func (p Pipeline) Apply(x int) int {
	for _, s := range p {
		x = s.Apply(x)
	}
	return x
}

// MinOf returns the smallest output of Apply over seeds, or math.MaxInt if
// seeds is empty.
func (p Pipeline) MinOf(seeds []int) int {
	lowest := math.MaxInt
	for _, s := range seeds {
		lowest = min(lowest, p.Apply(s))
	}
	return lowest
}

// Span is a run of Len consecutive seeds starting at Start.
type Span struct {
	Start, Len int
}

// End returns the first value past the span.
func (s Span) End() int { return s.Start + s.Len }

// blockSize is the number of seeds one worker maps before reporting back.
const blockSize = 1 << 20

// MinOverSpans returns the smallest output of Apply over every integer
// covered by spans, or math.MaxInt if they cover nothing.
func (p Pipeline) MinOverSpans(spans []Span) int {
	v, _ := p.MinOverSpansContext(context.Background(), spans)
	return v
}

// MinOverSpansContext is MinOverSpans with cancellation. Each seed is mapped
// individually; spans are cut into blocks that run in parallel, bounded by
// GOMAXPROCS. The only error returned is ctx's.
func (p Pipeline) MinOverSpansContext(ctx context.Context, spans []Span) (int, error) {
	var blocks []Span
	for _, s := range spans {
		for start := s.Start; start < s.End(); start += blockSize {
			blocks = append(blocks, Span{start, min(blockSize, s.End()-start)})
		}
	}

	lows := make([]int, len(blocks))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, b := range blocks {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			lowest := math.MaxInt
			for x := b.Start; x < b.End(); x++ {
				lowest = min(lowest, p.Apply(x))
			}
			lows[i] = lowest
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}
	lowest := math.MaxInt
	for _, l := range lows {
		lowest = min(lowest, l)
	}
	return lowest, nil
}

// MinOverSpansSplit computes the same value as MinOverSpans by pushing whole
// intervals through each stage instead of individual seeds.
func (p Pipeline) MinOverSpansSplit(spans []Span) int {
	cur := make([]Span, 0, len(spans))
	for _, s := range spans {
		if s.Len > 0 {
			cur = append(cur, s)
		}
	}
	for _, st := range p {
		cur = st.applySpans(cur)
	}
	lowest := math.MaxInt
	for _, s := range cur {
		lowest = min(lowest, s.Start)
	}
	return lowest
}

// applySpans maps every span through s. A piece of input is claimed by the
// first rule whose source interval overlaps it, matching Apply.
func (s Stage) applySpans(in []Span) []Span {
	var out []Span
	pending := in
	for _, r := range s.Rules {
		if r.Len <= 0 {
			continue
		}
		var rest []Span
		for _, sp := range pending {
			lo, hi := max(sp.Start, r.Src), min(sp.End(), r.Src+r.Len)
			if lo >= hi {
				rest = append(rest, sp)
				continue
			}
			out = append(out, Span{r.Dst + (lo - r.Src), hi - lo})
			if sp.Start < lo {
				rest = append(rest, Span{sp.Start, lo - sp.Start})
			}
			if hi < sp.End() {
				rest = append(rest, Span{hi, sp.End() - hi})
			}
		}
		pending = rest
	}
	return append(out, pending...)
}
