// SPDX-License-Identifier: MIT
//
// File: present.go
// Role: per-step breakdown of a path, totals and human-readable formatting.

package route

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/campusnav/core"
	"github.com/katalvlaran/campusnav/geo"
)

// Present annotates p with per-step distance, time and display names.
//
// Unknown pairs contribute {0, 0} and unknown IDs render as core.UnknownLocation;
// Present never fails. An empty path yields zero steps.
func Present(src DetailSource, p core.Path, opts ...Option) Result {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	res := Result{
		Path:          append([]string(nil), p.Nodes...),
		Names:         make([]string, len(p.Nodes)),
		TotalDistance: p.Distance,
		StepCount:     p.Steps(),
		Steps:         make([]Step, 0, p.Steps()),
	}
	for i, id := range p.Nodes {
		res.Names[i] = src.LocationName(id)
	}
	for i := 0; i+1 < len(p.Nodes); i++ {
		from, to := p.Nodes[i], p.Nodes[i+1]
		d, _ := src.Detail(from, to)
		res.Steps = append(res.Steps, Step{
			From:     from,
			To:       to,
			FromName: res.Names[i],
			ToName:   res.Names[i+1],
			Distance: d.Distance,
			Time:     d.Time,
		})
		res.TotalTime += d.Time
	}

	if cfg.Polyline {
		res.Polyline = polylineOf(src, p.Nodes)
	}

	return res
}

func polylineOf(src DetailSource, nodes []string) string {
	loc, ok := src.(Locator)
	if !ok {
		return ""
	}
	points := make([]core.Location, 0, len(nodes))
	for _, id := range nodes {
		l, err := loc.Location(id)
		if err != nil {
			return ""
		}
		points = append(points, l)
	}
	enc, _ := geo.EncodePolyline(points)

	return enc
}

// StepDistance sums the per-step distances.
func (r Result) StepDistance() int64 {
	var sum int64
	for _, s := range r.Steps {
		sum += s.Distance
	}

	return sum
}

// Consistent reports whether the path's own distance matches its steps.
func (r Result) Consistent() bool {
	return r.StepDistance() == r.TotalDistance
}

// Summary joins the location names with arrows.
func (r Result) Summary() string {
	return strings.Join(r.Names, " → ")
}

// FormattedTime is FormatDuration(r.TotalTime).
func (r Result) FormattedTime() string {
	return FormatDuration(r.TotalTime)
}

// FormatDuration renders seconds as "45 sec", "2 min" or "2 min 5 sec".
// Negative input is treated as zero.
func FormatDuration(seconds int64) string {
	if seconds < 0 {
		seconds = 0
	}
	m, s := seconds/60, seconds%60
	switch {
	case m == 0:
		return fmt.Sprintf("%d sec", s)
	case s == 0:
		return fmt.Sprintf("%d min", m)
	default:
		return fmt.Sprintf("%d min %d sec", m, s)
	}
}
