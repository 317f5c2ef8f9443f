// Package bfs provides breadth-first search over a core.Graph, ignoring
// edge weights: it answers "how many hops", not "how far".
package bfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/campusnav/core"
)

// BFS explores the campus from start level by level, taking neighbors in
// adjacency order.
//
// Errors: ErrGraphNil, ErrOptionViolation, ErrLocationNotFound, the context
// error, or a Visit error (wrapped). On error the partial Result is returned
// alongside it.
func BFS(g *core.Graph, start string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %q", ErrLocationNotFound, start)
	}

	s := newSearch(g, o)
	s.reach(start, 0, "")

	return s.res, s.run()
}

// HopDistance returns the number of walkways on the fewest-hops path from
// start to end; 0 when they are equal. ErrUnreachable when none exists.
func HopDistance(g *core.Graph, start, end string, opts ...Option) (int, error) {
	if g != nil && !g.HasVertex(end) {
		return 0, fmt.Errorf("%w: %q", ErrLocationNotFound, end)
	}

	found := errors.New("found")
	hops := -1
	opts = append(opts, WithVisit(func(id string, h int) error {
		if id != end {
			return nil
		}
		hops = h
		return found
	}))

	if _, err := BFS(g, start, opts...); err != nil && !errors.Is(err, found) {
		return 0, err
	}
	if hops < 0 {
		return 0, fmt.Errorf("%w: %q → %q", ErrUnreachable, start, end)
	}

	return hops, nil
}

// search is the per-call state; the graph is only read.
type search struct {
	g     *core.Graph
	o     Options
	queue []string
	head  int
	res   *Result
}

func newSearch(g *core.Graph, o Options) *search {
	n := g.VertexCount()

	return &search{
		g:     g,
		o:     o,
		queue: make([]string, 0, n),
		res: &Result{
			Order: make([]string, 0, n),
			Hops:  make(map[string]int, n),
			Via:   make(map[string]string, n),
		},
	}
}

// reach records id at h hops (via parent) and queues it.
func (s *search) reach(id string, h int, parent string) {
	s.res.Hops[id] = h
	if parent != "" {
		s.res.Via[id] = parent
	}
	s.queue = append(s.queue, id)
}

func (s *search) run() error {
	for s.head < len(s.queue) {
		if err := s.o.Ctx.Err(); err != nil {
			return err
		}

		id := s.queue[s.head]
		s.head++
		h := s.res.Hops[id]
		s.res.Order = append(s.res.Order, id)
		if err := s.o.Visit(id, h); err != nil {
			return fmt.Errorf("bfs: visit %q: %w", id, err)
		}
		if s.o.MaxHops > 0 && h >= s.o.MaxHops {
			continue
		}

		next, err := s.g.NeighborIDs(id)
		if err != nil {
			return fmt.Errorf("bfs: neighbors of %q: %w", id, err)
		}
		for _, nb := range next {
			if _, seen := s.res.Hops[nb]; seen || !s.o.Allow(id, nb) {
				continue
			}
			s.reach(nb, h+1, id)
		}
	}

	return nil
}
